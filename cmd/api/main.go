package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billing-service/internal/cache"
	"billing-service/internal/config"
	"billing-service/internal/events"
	"billing-service/internal/handlers"
	"billing-service/internal/kafka"
	"billing-service/internal/repository"
	"billing-service/internal/services"
	"billing-service/pkg/logger"
	"billing-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "billing-service/docs" // Import docs for Swagger
)

// @title           Billing Service API
// @version         1.0
// @description     Invoices, buyers and products for a GST billing desk, with tax totals and buyer statements.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /

// @schemes   http https
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Billing Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("store_driver", cfg.StoreDriver),
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	// Store
	appLogger.Info("🔧 Opening document store...")
	store, err := repository.Open(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open store", zap.Error(err))
	}
	appLogger.Info("✅ Document store ready")

	// Read cache (optional). The idempotency store always needs somewhere to live.
	var readCache cache.Cache
	var requestIDCache cache.Cache
	if cfg.UseCache {
		readCache = cache.NewCache(cfg, appLogger)
		requestIDCache = readCache
	} else {
		appLogger.Info("Read cache disabled, set USE_CACHE=true to enable it")
		requestIDCache = cache.NewInMemoryCache(appLogger)
	}
	requestIDStore := cache.NewRequestIDStore(requestIDCache)

	// Change events (optional)
	var publisher events.EventPublisher = events.NewLogEventPublisher(appLogger)
	if cfg.UseKafka {
		appLogger.Info("📡 Kafka Configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_invoices", cfg.KafkaTopicInvoices),
			zap.String("topic_buyers", cfg.KafkaTopicBuyers),
			zap.String("topic_products", cfg.KafkaTopicProducts),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
		kafkaPublisher, err := events.NewKafkaEventPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Kafka unavailable, change events are only logged", zap.Error(err))
		} else {
			publisher = kafkaPublisher
		}
	}

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	var consumer *kafka.Consumer
	if cfg.UseKafka && readCache != nil {
		consumer, err = kafka.NewConsumer(cfg, readCache, appLogger)
		if err != nil {
			appLogger.Warn("Cache invalidation consumer not started", zap.Error(err))
		} else {
			go func() {
				if err := consumer.Start(consumerCtx); err != nil {
					appLogger.Error("Cache invalidation consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	// Services and handlers
	opts := services.Options{
		Logger:   appLogger,
		Events:   publisher,
		Cache:    readCache,
		CacheTTL: cache.TTL(cfg.CacheTTL),
	}
	invoiceService := services.NewInvoiceService(store.Invoices, opts)
	buyerService := services.NewBuyerService(store.Buyers, opts)
	productService := services.NewProductService(store.Products, opts)
	statementService := services.NewStatementService(store.Buyers, store.Invoices, opts)

	idempotencyTTL := time.Duration(cfg.IdempotencyTTL) * time.Second

	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.IdempotencyMiddleware(requestIDStore, appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.Use(middleware.StoreResponseMiddleware(requestIDStore, appLogger, idempotencyTTL))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Invoices:   handlers.NewInvoiceHandler(appLogger, invoiceService),
		Buyers:     handlers.NewBuyerHandler(appLogger, buyerService),
		Products:   handlers.NewProductHandler(appLogger, productService),
		Statements: handlers.NewStatementHandler(appLogger, statementService),
		Health:     handlers.NewHealthHandler(appLogger, store),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting billing service",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	stopConsumer()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			appLogger.Warn("Failed to close consumer", zap.Error(err))
		}
	}
	if err := publisher.Close(); err != nil {
		appLogger.Warn("Failed to close event publisher", zap.Error(err))
	}
	if err := requestIDCache.Close(); err != nil {
		appLogger.Warn("Failed to close cache", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		appLogger.Warn("Failed to close store", zap.Error(err))
	}

	appLogger.Info("Server exited")
}
