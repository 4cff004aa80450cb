package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	_ "github.com/stealthycommerce/stealthy/docs"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/config"
	"github.com/stealthycommerce/stealthy/internal/interfaces/http/middleware"
	"github.com/stealthycommerce/stealthy/internal/interfaces/http/routes"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures middleware and all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.LoggerWithConfig(r.log.Named("http"), middleware.LoggerConfig{
		SkipPaths: []string{"/health", r.cfg.Metrics.Path},
	}))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware(r.cfg.Metrics.Path))
	}

	var rateLimit gin.HandlerFunc
	if r.rateLimiter != nil {
		rateLimit = r.rateLimiter.Limit()
	}

	system := &routes.SystemRouteConfig{
		HealthHandler: r.hdlrs.healthHandler,
		Swagger:       r.cfg.Server.Mode != gin.ReleaseMode,
	}
	if r.metrics != nil {
		system.MetricsHandler = r.metrics.Handler()
		system.MetricsPath = r.cfg.Metrics.Path
	}
	routes.SetupSystemRoutes(r.engine, system)

	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler: r.hdlrs.orderHandler,
		RateLimit:    rateLimit,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		ProductHandler:      r.hdlrs.productHandler,
		OfferHandler:        r.hdlrs.offerHandler,
		ProductOfferHandler: r.hdlrs.productOfferHandler,
	})

	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{
		CustomerHandler: r.hdlrs.customerHandler,
		RateLimit:       rateLimit,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases connections held by the router. Receipts already handed to
// the async notifier finish on their own timeout.
func (r *Router) Shutdown() {
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.log.Errorw("failed to close Redis client", "error", err)
		}
	}
}
