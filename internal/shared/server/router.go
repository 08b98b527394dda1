package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legaldecode-backend/internal/documents"
	"legaldecode-backend/internal/services/health"
	"legaldecode-backend/internal/shared/config"
	"legaldecode-backend/internal/shared/metrics"
	"legaldecode-backend/internal/shared/server/middleware"
	"legaldecode-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		payload := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if ok, _ := payload["ok"].(bool); !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, payload)
	})
	api.GET("/metrics", metrics.Handler())

	// One model round trip per upload; keep decode traffic bounded per user.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DECODE": {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/documents") {
				return "DECODE"
			}
			return ""
		},
	}))

	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
