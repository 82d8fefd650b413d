package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Devanshk2004/CodeCraftX/internal/delivery/http/middleware"
	"github.com/Devanshk2004/CodeCraftX/internal/usecase"
)

// maxBodySize caps inbound request bodies. Large enough for a 1MB source
// file plus JSON overhead.
const maxBodySize = 2 << 20 // 2 MB

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	RunUC           *usecase.RunCodeUsecase
	ChatUC          *usecase.ChatUsecase
	GenerateUC      *usecase.GenerateProblemUsecase
	Logger          *zap.Logger
	RateLimitPerMin int
	// Redis is optional; when set the rate limiter state is shared across
	// replicas instead of kept in process memory.
	Redis *goredis.Client
}

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(deps *RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(deps.Logger))

	// Metrics endpoint (no rate limiting)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var rateLimiter gin.HandlerFunc
	if deps.Redis != nil {
		rateLimiter = middleware.RedisRateLimiter(deps.Redis, deps.RateLimitPerMin, deps.Logger)
	} else {
		rateLimiter = middleware.RateLimiter(deps.RateLimitPerMin)
	}

	api := router.Group("/api")
	{
		// Health check (no rate limiting)
		healthHandler := NewHealthHandler(deps.Logger)
		api.GET("/health", healthHandler.Health)

		// Languages
		langHandler := NewLanguageHandler()
		api.GET("/languages", langHandler.List)

		// Learning catalog
		catalogHandler := NewCatalogHandler()
		api.GET("/topics", catalogHandler.ListTopics)
		api.GET("/topics/:id", catalogHandler.GetTopic)
		api.GET("/topics/:id/lessons/:num", catalogHandler.GetLesson)

		// Proxies (rate limited, bounded bodies)
		proxies := api.Group("")
		proxies.Use(rateLimiter)
		proxies.Use(middleware.BodySizeLimit(maxBodySize))

		runHandler := NewRunHandler(deps.RunUC, deps.Logger)
		proxies.POST("/run", runHandler.Run)

		assistantHandler := NewAssistantHandler(deps.ChatUC, deps.GenerateUC, deps.Logger)
		proxies.POST("/chat", assistantHandler.Chat)
		proxies.POST("/generate", assistantHandler.Generate)
	}

	return router
}
