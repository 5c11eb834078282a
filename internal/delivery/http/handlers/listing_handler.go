package handlers

import (
	"net/http"
	"strconv"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/usecase"
	listingdto "github.com/decluttit/trade-service/internal/usecase/dto/listing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ListingHandler struct {
	listingUC usecase.ListingUsecase
}

func NewListingHandler(listingUC usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{listingUC: listingUC}
}

type createListingRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" binding:"required"`
	Condition   string          `json:"condition" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	LocationID  string          `json:"location_id"`
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingUC.CreateListing(middleware.Actor(c), &listingdto.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Condition:   req.Condition,
		Price:       req.Price,
		LocationID:  req.LocationID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

type updateListingRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Condition   *string          `json:"condition"`
	Status      *string          `json:"status"`
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingUC.UpdateListing(middleware.Actor(c), &listingdto.UpdateListingInput{
		ListingID:   c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

func (h *ListingHandler) GetByID(c *gin.Context) {
	listing, err := h.listingUC.GetListingByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

func (h *ListingHandler) ListMine(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	listings, total, err := h.listingUC.GetListingsBySellerID(middleware.Actor(c).UserID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
