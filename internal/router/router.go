package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akashmongoosetech/shashank-backend/internal/handler/health"
	"github.com/akashmongoosetech/shashank-backend/internal/middleware"
	"github.com/akashmongoosetech/shashank-backend/pkg/metrics"
)

// Handler is anything that can attach its routes under the API group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit   middleware.RateLimiterConfig
	CORSConfig  middleware.CORSConfig
	MetricsPath string
}

type Router struct {
	engine      *gin.Engine
	healthH     *health.Handler
	handlers    []Handler
	metrics     *metrics.Metrics
	metricsPath string
}

func NewRouter(healthH *health.Handler, m *metrics.Metrics, config Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:      engine,
		healthH:     healthH,
		handlers:    handlers,
		metrics:     m,
		metricsPath: config.MetricsPath,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	if config.RateLimit.RPS > 0 {
		rateLimiter := middleware.NewRateLimiter(config.RateLimit)
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.healthH.Check)
	if r.metricsPath != "" {
		r.engine.GET(r.metricsPath, gin.WrapH(promhttp.Handler()))
	}

	api := r.engine.Group("/api")
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		r.metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
