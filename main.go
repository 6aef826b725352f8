package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"nestcare/config"
	"nestcare/database"
	catalogRepo "nestcare/database/repository/catalog"
	subscriptionRepo "nestcare/database/repository/subscription"
	"nestcare/handlers"
	"nestcare/middleware"
	"nestcare/routes"
	"nestcare/services/catalog"
	"nestcare/services/subscription"
	"nestcare/services/wizard"
	"nestcare/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	subRepo := subscriptionRepo.NewMongoSubscriptionRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: catRepo,
	}
	if err := catalogService.SeedDefaults(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed service catalog: %v", err)
	}

	subscriptionService := &subscription.DefaultSubscriptionService{
		Repo: subRepo,
	}

	wizardService := &wizard.DefaultWizardService{
		CatalogSvc:      catalogService,
		SubscriptionSvc: subscriptionService,
		Cache:           wizard.NewRedisSessionCache(utils.GetSessionCacheClient()),
		SessionTTL:      time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	// handlers.
	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, logger)

	routes.RegisterRoutes(router, &routes.HandlerBundle{
		Wizard:       wizardHandler,
		Catalog:      catalogHandler,
		Subscription: subscriptionHandler,
	})

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
