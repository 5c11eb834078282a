package handlers

import (
	"net/http"
	"strconv"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/usecase"
	transactiondto "github.com/decluttit/trade-service/internal/usecase/dto/transaction"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	txUC usecase.TransactionUsecase
}

func NewTransactionHandler(txUC usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{txUC: txUC}
}

type createTransactionRequest struct {
	ListingID      string `json:"listing_id" binding:"required"`
	BuyerRequestID string `json:"buyer_request_id"`
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.txUC.CreateTransaction(middleware.Actor(c), &transactiondto.CreateTransactionInput{
		ListingID:      req.ListingID,
		BuyerRequestID: req.BuyerRequestID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

func (h *TransactionHandler) Ship(c *gin.Context) {
	tx, err := h.txUC.MarkShipped(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) ConfirmReceipt(c *gin.Context) {
	tx, err := h.txUC.ConfirmReceipt(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) Release(c *gin.Context) {
	tx, err := h.txUC.ReleaseFunds(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) Cancel(c *gin.Context) {
	tx, err := h.txUC.CancelTransaction(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	tx, err := h.txUC.GetTransaction(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *TransactionHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	filters := domain.TransactionFilters{
		Status: domain.TransactionStatus(c.Query("status")),
	}

	transactions, total, err := h.txUC.GetTransactions(middleware.Actor(c), page, limit, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
