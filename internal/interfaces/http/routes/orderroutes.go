package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
	// RateLimit guards the mutating routes; nil disables it.
	RateLimit gin.HandlerFunc
}

// SetupOrderRoutes configures order placement, cancellation and history routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	mutating := engine.Group("")
	if cfg.RateLimit != nil {
		mutating.Use(cfg.RateLimit)
	}
	{
		mutating.POST("/orders", cfg.OrderHandler.AddOrders)
		mutating.PUT("/cancel-order/:id", cfg.OrderHandler.CancelOrder)
	}

	engine.GET("/orders/:customerId", cfg.OrderHandler.ListCustomerOrders)
	engine.GET("/order-details/:customerId", cfg.OrderHandler.GetOrderDetails)
}
