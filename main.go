package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"craftly/config"
	"craftly/cron"
	"craftly/handlers"
	"craftly/middleware"
	"craftly/routes"
	"craftly/services/booking"
	"craftly/services/cart"
	"craftly/services/catalog"
	"craftly/services/session"
	"craftly/services/tasks"
	"craftly/store"
	"craftly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func openStore() (store.Store, error) {
	switch config.AppConfig.StoreBackend {
	case "sqlite":
		return store.OpenSQLite(config.AppConfig.StorePath)
	case "redis":
		return store.OpenRedis(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisStoreDB)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.AppConfig.StoreBackend)
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	st, err := openStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open store: %v", err)
	}

	ctx := context.Background()
	if err := catalog.SeedProviders(ctx, st); err != nil {
		logger.Sugar().Fatalf("main: failed to seed provider registry: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sessionService := &session.DefaultSessionService{
		Store:  st,
		Logger: logger,
	}
	cartService := &cart.DefaultCartService{
		Store:  st,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Store:  st,
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Store: st,
	}

	// Service-date reminders run only when the redis queue is configured.
	var reminderScheduler *tasks.AsynqReminderScheduler
	if config.AppConfig.RemindersEnabled {
		reminderScheduler = tasks.NewReminderScheduler(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
		defer reminderScheduler.Close()
		bookingService.Reminders = reminderScheduler
		cron.InitReminderWorker()
	}

	paymentHandler := booking.NewPaymentHandler(logger, bookingService, st)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentHandler, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	routes.RegisterRoutes(router, sessionHandler, cartHandler, bookingHandler, catalogHandler, sessionService)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := st.Close(); err != nil {
		logger.Sugar().Errorf("main: failed to close store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
