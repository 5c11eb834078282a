package handlers

import (
	"net/http"

	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	"github.com/decluttit/trade-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	matchingUC usecase.MatchingUsecase
	metrics    *metrics.TradeMetrics
}

func NewMatchingHandler(matchingUC usecase.MatchingUsecase, tradeMetrics *metrics.TradeMetrics) *MatchingHandler {
	return &MatchingHandler{matchingUC: matchingUC, metrics: tradeMetrics}
}

func (h *MatchingHandler) MatchesForRequest(c *gin.Context) {
	matches, err := h.matchingUC.FindMatchesForRequest(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.RecordMatchSearch("request", len(matches))
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *MatchingHandler) MatchesForListing(c *gin.Context) {
	matches, err := h.matchingUC.FindMatchesForListing(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.RecordMatchSearch("listing", len(matches))
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
