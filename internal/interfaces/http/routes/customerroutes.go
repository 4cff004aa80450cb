package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers"
)

// CustomerRouteConfig holds dependencies for customer routes.
type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
	RateLimit       gin.HandlerFunc
}

// SetupCustomerRoutes configures customer routes.
func SetupCustomerRoutes(engine *gin.Engine, cfg *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	{
		if cfg.RateLimit != nil {
			customers.POST("", cfg.RateLimit, cfg.CustomerHandler.CreateCustomer)
		} else {
			customers.POST("", cfg.CustomerHandler.CreateCustomer)
		}
		customers.GET("/:id", cfg.CustomerHandler.GetCustomer)
	}
}
