package http

import (
	"github.com/decluttit/trade-service/internal/delivery/http/handlers"
	"github.com/decluttit/trade-service/internal/delivery/http/middleware"
	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Listings      *handlers.ListingHandler
	Requests      *handlers.RequestHandler
	Matching      *handlers.MatchingHandler
	Transactions  *handlers.TransactionHandler
	Disputes      *handlers.DisputeHandler
	Reviews       *handlers.ReviewHandler
	Conversations *handlers.ConversationHandler
	Payments      *handlers.PaymentHandler
	Trust         *handlers.TrustHandler

	JWTSecret string
	Metrics   *metrics.TradeMetrics
	Logger    *zap.Logger
}

// NewRouter wires every route. The webhook and payment callback stay
// outside the auth group: the gateway calls them without a user token.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Observe(deps.Logger, deps.Metrics))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/api/v1/payments/webhook", deps.Payments.Webhook)
	router.GET("/api/v1/payments/verify", deps.Payments.Verify)

	api := router.Group("/api/v1")
	api.Use(middleware.ActorAuth(deps.JWTSecret))
	{
		api.POST("/listings", deps.Listings.Create)
		api.PATCH("/listings/:id", deps.Listings.Update)
		api.GET("/listings/:id", deps.Listings.GetByID)
		api.GET("/listings", deps.Listings.ListMine)
		api.GET("/listings/:id/matches", deps.Matching.MatchesForListing)

		api.POST("/requests", deps.Requests.Create)
		api.POST("/requests/:id/cancel", deps.Requests.Cancel)
		api.GET("/requests/:id", deps.Requests.GetByID)
		api.GET("/requests", deps.Requests.ListMine)
		api.GET("/requests/:id/matches", deps.Matching.MatchesForRequest)

		api.POST("/transactions", deps.Transactions.Create)
		api.POST("/transactions/:id/ship", deps.Transactions.Ship)
		api.POST("/transactions/:id/receive", deps.Transactions.ConfirmReceipt)
		api.POST("/transactions/:id/release", deps.Transactions.Release)
		api.POST("/transactions/:id/cancel", deps.Transactions.Cancel)
		api.GET("/transactions/:id", deps.Transactions.GetByID)
		api.GET("/transactions", deps.Transactions.List)

		api.POST("/transactions/:id/disputes", deps.Disputes.Open)
		api.POST("/disputes/:id/evidence", deps.Disputes.AddEvidence)
		api.POST("/disputes/:id/resolve", deps.Disputes.Resolve)
		api.GET("/disputes/:id", deps.Disputes.GetByID)
		api.GET("/disputes", deps.Disputes.ListMine)

		api.POST("/transactions/:id/reviews", deps.Reviews.Create)
		api.GET("/users/:id/reviews", deps.Reviews.ListForUser)

		api.POST("/transactions/:id/messages", deps.Conversations.Send)
		api.GET("/transactions/:id/messages", deps.Conversations.List)

		api.POST("/payments/initialize", deps.Payments.Initialize)

		api.POST("/users/:id/trust/recompute", deps.Trust.Recompute)
		api.POST("/users/:id/verify-identity", deps.Trust.VerifyIdentity)
	}

	return router
}
