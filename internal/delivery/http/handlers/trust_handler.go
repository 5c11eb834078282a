package handlers

import (
	"net/http"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/domain"
	"github.com/decluttit/trade-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type TrustHandler struct {
	trustUC usecase.TrustUsecase
}

func NewTrustHandler(trustUC usecase.TrustUsecase) *TrustHandler {
	return &TrustHandler{trustUC: trustUC}
}

func (h *TrustHandler) Recompute(c *gin.Context) {
	score, err := h.trustUC.RecomputeTrustScore(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": c.Param("id"), "trust_score": score})
}

// VerifyIdentity is the verification collaborator's callback. It is the
// only path that promotes a user to ID_VERIFIED.
func (h *TrustHandler) VerifyIdentity(c *gin.Context) {
	actor := middleware.Actor(c)
	if !actor.Arbitrator() {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	score, err := h.trustUC.HandleIDVerification(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": c.Param("id"), "trust_score": score})
}
