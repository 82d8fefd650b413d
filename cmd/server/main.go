package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/config"
	handler "github.com/Devanshk2004/CodeCraftX/internal/delivery/http"
	"github.com/Devanshk2004/CodeCraftX/internal/genai"
	"github.com/Devanshk2004/CodeCraftX/internal/judge"
	"github.com/Devanshk2004/CodeCraftX/internal/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting CodeCraftX API Server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Judge.APIKey == "" {
		logger.Warn("RAPIDAPI_KEY is not set; code execution requests will fail upstream")
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; assistant requests will fail upstream")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to Redis when configured (shared rate-limiter state)
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Fatal("Failed to parse Redis URL", zap.Error(err))
		}
		rdb = redis.NewClient(redisOpts)
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Failed to ping Redis", zap.Error(err))
		}
		logger.Info("Connected to Redis")
	}

	// Initialize upstream clients (constructed once, shared read-only)
	judgeClient := judge.NewJudge0Client(cfg.Judge.URL, cfg.Judge.APIKey, cfg.Judge.APIHost, cfg.Judge.Timeout, logger)
	geminiClient := genai.NewGeminiClient(cfg.Gemini.URL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout, logger)

	// Initialize use cases
	runUC := usecase.NewRunCodeUsecase(judgeClient, logger)
	chatUC := usecase.NewChatUsecase(geminiClient, logger)
	generateUC := usecase.NewGenerateProblemUsecase(geminiClient, logger)

	// Initialize router
	router := handler.NewRouter(&handler.RouterDeps{
		RunUC:           runUC,
		ChatUC:          chatUC,
		GenerateUC:      generateUC,
		Logger:          logger,
		RateLimitPerMin: cfg.Server.RateLimit,
		Redis:           rdb,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("API server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
