package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/config"
	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/handlers"
	"github.com/mentorhub/mentorship-service/internal/repositories/postgres"
	"github.com/mentorhub/mentorship-service/internal/services"
	"github.com/mentorhub/mentorship-service/internal/utils"
	"github.com/mentorhub/mentorship-service/internal/validator"
	"github.com/mentorhub/mentorship-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogLogger)
	logger := utils.NewSlogLogger(slogLogger)

	logger.Info("Starting mentorship service", "environment", cfg.Environment, "port", cfg.Port)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		logger.Error("Failed to initialize repositories", "error", err)
		os.Exit(1)
	}

	tokens, err := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.LifetimeHours)*time.Hour,
	)
	if err != nil {
		logger.Error("Failed to configure token manager", "error", err)
		os.Exit(1)
	}

	var publisher events.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.Kafka.Brokers, slogLogger)
		if err != nil {
			logger.Error("Failed to create kafka publisher", "error", err)
			os.Exit(1)
		}
		logger.Info("Publishing events to kafka", "brokers", cfg.Kafka.Brokers)
	} else {
		publisher = events.NewGoChannelPublisher(slogLogger)
	}

	serviceManager := services.NewDefaultServiceManager(
		repoManager.GetRepository(),
		auth.NewBcryptHasher(),
		tokens,
		publisher,
		slogLogger,
		validator.New(),
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Server started", "addr", server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	if err := serviceManager.Shutdown(ctx); err != nil {
		logger.Error("Service shutdown failed", "error", err)
	}
	if err := repoManager.Shutdown(ctx); err != nil {
		logger.Error("Repository shutdown failed", "error", err)
	}

	logger.Info("Server stopped")
}
