package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	"github.com/decluttit/trade-service/internal/infrastructure/paystack"
	"github.com/decluttit/trade-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentUC     usecase.PaymentUsecase
	webhookSecret string
	metrics       *metrics.TradeMetrics
	logger        *zap.Logger
}

func NewPaymentHandler(paymentUC usecase.PaymentUsecase, webhookSecret string, tradeMetrics *metrics.TradeMetrics, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:     paymentUC,
		webhookSecret: webhookSecret,
		metrics:       tradeMetrics,
		logger:        logger,
	}
}

type initializePaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req initializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	init, err := h.paymentUC.InitializePayment(c.Request.Context(), middleware.Actor(c), req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authorization_url": init.AuthorizationURL, "reference": init.Reference})
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference required"})
		return
	}

	tx, err := h.paymentUC.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true, "transaction": tx})
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Metadata struct {
			TransactionID string `json:"transactionId"`
		} `json:"metadata"`
	} `json:"data"`
}

// Webhook consumes payment gateway events. The HMAC-SHA512 signature is
// verified over the raw body before anything is parsed; a mismatch is
// rejected with no state change.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	signature := c.GetHeader(paystack.SignatureHeader)
	if !paystack.VerifySignature(h.webhookSecret, body, signature) {
		h.metrics.RecordWebhookRejected()
		h.logger.Warn("webhook signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	if err := h.paymentUC.HandleWebhookEvent(event.Event, event.Data.Metadata.TransactionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
