package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers"
)

// SystemRouteConfig holds dependencies for health, metrics and API docs.
type SystemRouteConfig struct {
	HealthHandler *handlers.HealthHandler
	// MetricsHandler is mounted at MetricsPath when non-nil.
	MetricsHandler http.Handler
	MetricsPath    string
	// Swagger mounts the API docs UI at /swagger.
	Swagger bool
}

// SetupSystemRoutes configures operational routes.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.Health)

	if cfg.MetricsHandler != nil {
		engine.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}

	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
