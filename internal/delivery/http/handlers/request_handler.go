package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/usecase"
	requestdto "github.com/decluttit/trade-service/internal/usecase/dto/request"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RequestHandler struct {
	requestUC usecase.RequestUsecase
}

func NewRequestHandler(requestUC usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

type createRequestRequest struct {
	Title              string           `json:"title" binding:"required"`
	Description        string           `json:"description"`
	CategoryID         string           `json:"category_id"`
	MinPrice           *decimal.Decimal `json:"min_price"`
	MaxPrice           *decimal.Decimal `json:"max_price"`
	PreferredCondition string           `json:"preferred_condition"`
	LocationID         string           `json:"location_id"`
	RadiusKm           int              `json:"radius_km"`
	ExpiresAt          *time.Time       `json:"expires_at"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestUC.CreateRequest(middleware.Actor(c), &requestdto.CreateRequestInput{
		Title:              req.Title,
		Description:        req.Description,
		CategoryID:         req.CategoryID,
		MinPrice:           req.MinPrice,
		MaxPrice:           req.MaxPrice,
		PreferredCondition: req.PreferredCondition,
		LocationID:         req.LocationID,
		RadiusKm:           req.RadiusKm,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": request})
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	if err := h.requestUC.CancelRequest(middleware.Actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	request, err := h.requestUC.GetRequestByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": request})
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	requests, total, err := h.requestUC.GetRequestsByBuyerID(middleware.Actor(c).UserID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
