// File: app/app.go
package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"go-waitlist-api/config"
	"go-waitlist-api/handler"
	"go-waitlist-api/intake"
	"go-waitlist-api/logger"
	"go-waitlist-api/router"
	"go-waitlist-api/service"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	if config.AppConfig.Intake.URL == "" {
		logger.Log.Warn("Form intake endpoint not configured; signups will resolve as simulated deliveries")
	}

	// --- Wiring All Layers Together ---
	// The intake client is the only outbound dependency; the page and API
	// handlers share one signup service built around it.
	intakeClient := intake.NewClient(config.AppConfig.Intake.URL)
	signupService := service.NewSignupService(intakeClient)

	pageHandler, err := handler.NewPageHandler(signupService)
	if err != nil {
		logger.Log.Fatalf("Error building page handler: %v", err)
	}
	signupHandler := handler.NewSignupHandler(signupService)

	r := router.NewRouter(pageHandler, signupHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
