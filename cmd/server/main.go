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

	"tours-api/internal/authz"
	"tours-api/internal/cache"
	"tours-api/internal/config"
	"tours-api/internal/database"
	"tours-api/internal/handler"
	"tours-api/internal/mail"
	"tours-api/internal/repository"
	"tours-api/internal/router"
	"tours-api/internal/service"
	"tours-api/internal/storage"
	"tours-api/internal/validator"
	"tours-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Tours API
// @version         1.0
// @description     A REST API for managing tours and users built with Gin and MongoDB.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// SMTP Mailer
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewRoleAuthorizer()

	// Service layer
	tourService := service.NewTourService(tourRepo, redisCache, s3Client)
	authService := service.NewAuthService(userRepo, jwtManager, mailer)
	userService := service.NewUserService(userRepo)

	// Handler layer
	tourHandler := handler.NewTourHandler(tourService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// Router
	r := router.Setup(&router.Config{
		TourHandler: tourHandler,
		AuthHandler: authHandler,
		UserHandler: userHandler,
		AuthService: authService,
		Authorizer:  authorizer,
		DebugMode:   cfg.GinMode != gin.ReleaseMode,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
