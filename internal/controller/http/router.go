package http

import (
	"shirtpay/internal/controller/http/handlers"
	"shirtpay/pkg/health"
	"shirtpay/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	order          *handlers.OrderHandler
	capture        *handlers.CaptureHandler
	key            *handlers.KeyHandler
	healthRegistry *health.Registry
}

func NewRouter(
	order *handlers.OrderHandler,
	capture *handlers.CaptureHandler,
	key *handlers.KeyHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		order:          order,
		capture:        capture,
		key:            key,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/", handlers.Root())

	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	// Prometheus metrics
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	{
		api.POST("/orders", r.order.Create)
		api.POST("/capture/:payment_id", r.capture.Capture)
		api.GET("/razorpay-key", r.key.Key)
	}
}
