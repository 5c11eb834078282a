package handlers

import (
	"net/http"
	"strconv"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/usecase"
	disputedto "github.com/decluttit/trade-service/internal/usecase/dto/dispute"
	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	disputeUC usecase.DisputeUsecase
}

func NewDisputeHandler(disputeUC usecase.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{disputeUC: disputeUC}
}

type openDisputeRequest struct {
	Reason      string   `json:"reason" binding:"required"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence"`
}

func (h *DisputeHandler) Open(c *gin.Context) {
	var req openDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.disputeUC.OpenDispute(middleware.Actor(c), &disputedto.OpenDisputeInput{
		TransactionID: c.Param("id"),
		Reason:        req.Reason,
		Description:   req.Description,
		Evidence:      req.Evidence,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dispute": dispute})
}

type addEvidenceRequest struct {
	Evidence string `json:"evidence" binding:"required"`
}

func (h *DisputeHandler) AddEvidence(c *gin.Context) {
	var req addEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.disputeUC.AddEvidence(middleware.Actor(c), c.Param("id"), req.Evidence)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispute": dispute})
}

type resolveDisputeRequest struct {
	Resolution  string `json:"resolution" binding:"required"`
	RefundBuyer bool   `json:"refund_buyer"`
}

func (h *DisputeHandler) Resolve(c *gin.Context) {
	var req resolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.disputeUC.ResolveDispute(middleware.Actor(c), &disputedto.ResolveDisputeInput{
		DisputeID:   c.Param("id"),
		Resolution:  req.Resolution,
		RefundBuyer: req.RefundBuyer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DisputeHandler) GetByID(c *gin.Context) {
	dispute, err := h.disputeUC.GetDisputeByID(middleware.Actor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispute": dispute})
}

func (h *DisputeHandler) ListMine(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	disputes, total, err := h.disputeUC.GetDisputesByUserID(middleware.Actor(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"disputes": disputes,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
