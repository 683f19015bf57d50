// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	"slotify/database/repository"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/notification"
	"slotify/services/reminder"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	businessRepo := repository.NewMongoBusinessRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	serviceRepo := repository.NewMongoServiceRepo()
	blockRepo := repository.NewMongoBlockRepo()

	// services.
	availabilitySvc := &availability.DefaultService{
		BusinessRepo: businessRepo,
		ServiceRepo:  serviceRepo,
		BookingRepo:  bookingRepo,
		BlockRepo:    blockRepo,
	}

	notificationSvc, err := notification.NewDefaultService(
		businessRepo,
		notification.NewHTTPWhatsAppSender(),
		notification.NewSMTPEmailSender(),
		utils.GetCacheClient(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	scanSvc := &reminder.DefaultScanService{
		BusinessRepo: businessRepo,
		BookingRepo:  bookingRepo,
		Queue:        asynqClient,
	}

	// Background reminder pipeline: scheduler + worker.
	cron.InitReminderWorker(scanSvc, notificationSvc)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler:     handlers.GetAvailability(availabilitySvc),
		TriggerReminderScanHandler: handlers.TriggerReminderScan(scanSvc),
		HealthHandler:              handlers.Health(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
