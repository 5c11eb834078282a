package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decluttit/trade-service/internal/config"
	httpdelivery "github.com/decluttit/trade-service/internal/delivery/http"
	"github.com/decluttit/trade-service/internal/delivery/http/handlers"
	"github.com/decluttit/trade-service/internal/infrastructure/kafka"
	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	"github.com/decluttit/trade-service/internal/infrastructure/migrate"
	"github.com/decluttit/trade-service/internal/infrastructure/paystack"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres"
	"github.com/decluttit/trade-service/internal/infrastructure/postgres/repository"
	"github.com/decluttit/trade-service/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logger := mustBuildLogger(cfg)
	defer logger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	publisher := kafka.NewKafkaPublisher(brokers)
	defer publisher.Close()

	tradeMetrics := metrics.NewTradeMetrics()

	// Init repositories
	userRepo := repository.NewDefaultUserRepository(db)
	listingRepo := repository.NewDefaultListingRepository(db)
	requestRepo := repository.NewDefaultBuyerRequestRepository(db)
	txRepo := repository.NewDefaultTransactionRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	reviewRepo := repository.NewDefaultReviewRepository(db)
	conversationRepo := repository.NewDefaultConversationRepository(db)

	// Init payment gateway client
	gateway := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey)

	// Init usecases
	trustUC := usecase.NewDefaultTrustUsecase(userRepo, txRepo, reviewRepo, disputeRepo, publisher, logger)
	listingUC := usecase.NewDefaultListingUsecase(listingRepo)
	requestUC := usecase.NewDefaultRequestUsecase(requestRepo)
	matchingUC := usecase.NewDefaultMatchingUsecase(listingRepo, requestRepo)
	txUC := usecase.NewDefaultTransactionUsecase(txRepo, listingRepo, trustUC, publisher, tradeMetrics, logger)
	disputeUC := usecase.NewDefaultDisputeUsecase(disputeRepo, txRepo, trustUC, publisher, tradeMetrics, logger)
	reviewUC := usecase.NewDefaultReviewUsecase(reviewRepo, txRepo, trustUC)
	conversationUC := usecase.NewDefaultConversationUsecase(conversationRepo, txRepo)
	paymentUC := usecase.NewDefaultPaymentUsecase(gateway, txRepo, userRepo, txUC, logger)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Listings:      handlers.NewListingHandler(listingUC),
		Requests:      handlers.NewRequestHandler(requestUC),
		Matching:      handlers.NewMatchingHandler(matchingUC, tradeMetrics),
		Transactions:  handlers.NewTransactionHandler(txUC),
		Disputes:      handlers.NewDisputeHandler(disputeUC),
		Reviews:       handlers.NewReviewHandler(reviewUC),
		Conversations: handlers.NewConversationHandler(conversationUC),
		Payments:      handlers.NewPaymentHandler(paymentUC, cfg.Paystack.WebhookSecret, tradeMetrics, logger),
		Trust:         handlers.NewTrustHandler(trustUC),
		JWTSecret:     cfg.Auth.JWTSecret,
		Metrics:       tradeMetrics,
		Logger:        logger,
	})

	server := &nethttp.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("trade service started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func mustBuildLogger(cfg *config.TradeConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.LogConfig.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.LogConfig.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
