package main

import (
	"context"
	"inboxops-contact-api/config"
	_ "inboxops-contact-api/docs" // Important for Swagger
	v1 "inboxops-contact-api/internal/delivery/http/v1"
	"inboxops-contact-api/internal/usecase"
	"inboxops-contact-api/pkg/email"
	"inboxops-contact-api/pkg/logger"
	"inboxops-contact-api/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           InboxOps Contact API
// @version         1.0
// @description     Relays InboxOps contact form submissions through Resend.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.Log.Info("Starting contact API", "port", cfg.Port)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Email Client
	resendClient := email.NewResendClient(cfg)
	if !resendClient.IsConfigured() {
		logger.Log.Warn("Resend API key not configured - contact submissions will fail")
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(resendClient, validation.New(), cfg)
	healthUC := usecase.NewHealthUsecase(resendClient)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// Long enough for an in-flight lead + confirmation pair to finish
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.EmailTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
