package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"PosBridge/internal/controller/http/handlers"
	"PosBridge/pkg/health"
	"PosBridge/pkg/metrics"
)

type Router struct {
	order          handlers.OrderHandler
	kitchen        handlers.KitchenHandler
	menu           handlers.MenuHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/pos/orders", r.order.CreateBatch)

	engine.POST("/orders", r.order.Create)
	engine.GET("/orders/:order_id", r.order.Get)
	engine.POST("/orders/:order_id/dispatch", r.order.Resend)
	engine.POST("/orders/dispatch-by-reference", r.order.ResendByReference)

	engine.GET("/kitchen/orders", r.kitchen.Board)
	engine.POST("/kitchen/orders/:order_id/status", r.kitchen.UpdateStatus)

	engine.GET("/api/v1/pos-menu", r.menu.Level)
	engine.GET("/api/v1/pos-menu-languages", r.menu.Languages)
}

func NewRouter(
	order handlers.OrderHandler,
	kitchen handlers.KitchenHandler,
	menu handlers.MenuHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		order:          order,
		kitchen:        kitchen,
		menu:           menu,
		healthRegistry: healthRegistry,
	}
}
