package handlers

import (
	"net/http"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	conversationUC usecase.ConversationUsecase
}

func NewConversationHandler(conversationUC usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{conversationUC: conversationUC}
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *ConversationHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.conversationUC.SendMessage(middleware.Actor(c), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ConversationHandler) List(c *gin.Context) {
	limit := parseQueryInt64(c, "limit", 50)
	messages, err := h.conversationUC.GetMessages(middleware.Actor(c), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
