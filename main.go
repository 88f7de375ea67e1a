package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catdogeats/client"
	"catdogeats/config"
	"catdogeats/controllers"
	"catdogeats/middleware"
	"catdogeats/routes"
	"catdogeats/store"
	"catdogeats/utils"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const evictInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := client.New(cfg.BackendURL, &http.Client{
		Timeout:   cfg.BackendTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	storeOpts := []store.Option{
		store.WithRecommendationLimit(cfg.RecommendationLimit),
	}

	// Connect to MongoDB for persisted cart selection
	if cfg.MongoURI != "" {
		mongoClient, err := utils.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatal("mongo connect failed", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("mongo disconnect failed", zap.Error(err))
			}
		}()
		storeOpts = append(storeOpts, store.WithSelectionRepository(store.NewMongoSelectionRepository(mongoClient, cfg.MongoDB)))
		logger.Info("cart selection persisted to mongo", zap.String("db", cfg.MongoDB))
	} else {
		// survives idle eviction but not a restart
		storeOpts = append(storeOpts, store.WithSelectionRepository(store.NewMemorySelectionRepository()))
		logger.Info("cart selection kept in memory")
	}

	// Connect to Redis for cached recommendations
	if cfg.RedisURL != "" {
		redisClient, err := utils.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis connect failed", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		storeOpts = append(storeOpts, store.WithRecommendationCache(store.NewRedisRecommendationCache(redisClient, "catdogeats"), cfg.RecommendationTTL))
		logger.Info("recommendations cached in redis", zap.Duration("ttl", cfg.RecommendationTTL))
	}

	stores := store.NewRegistry(func(userID string) *store.Store {
		opts := append([]store.Option{
			store.WithUserID(userID),
			store.WithLogger(logger.With(zap.String("userId", userID))),
		}, storeOpts...)
		return store.New(backend, opts...)
	}, cfg.StoreIdleTTL)
	go stores.Run(ctx, evictInterval)

	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender, logger)
	if !emailService.Enabled() {
		logger.Warn("SENDGRID_API_KEY or EMAIL_SENDER not set, inquiry receipts are not mailed")
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, []byte(cfg.JWTSecret), routes.Controllers{
		User:    controllers.NewUserController(backend, logger),
		Cart:    controllers.NewCartController(stores, logger),
		Order:   controllers.NewOrderController(backend),
		Support: controllers.NewSupportController(backend, emailService, logger),
		Seller:  controllers.NewSellerController(backend, logger),
	})
	router.Use(middleware.RequestLogger(logger))

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(router, "storefront"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server is running", zap.String("addr", addr), zap.String("backend", cfg.BackendURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
}
