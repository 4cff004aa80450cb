package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderUsecases "github.com/stealthycommerce/stealthy/internal/application/order/usecases"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/config"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/metrics"
	"github.com/stealthycommerce/stealthy/internal/interfaces/http/middleware"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis.enabled is false
	clock  biztime.Clock

	// Cross-cutting services
	metrics     *metrics.Metrics // nil when metrics.enabled is false
	renderer    markdown.Renderer
	searchCache catalog.SearchCache
	notifier    orderUsecases.ReceiptNotifier // nil when email.enabled is false
	rateLimiter *middleware.RateLimiter       // nil unless rate limiting and redis are enabled

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		clock:  biztime.RealClock{},
	}

	// Section 1: Infrastructure - Redis, caches, metrics, receipts
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories
	c.repos = newRepositories(db, log)

	// Section 3: Use cases
	c.ucs = c.newUseCases()

	// Section 4: Handlers
	c.hdlrs = c.newHandlers()

	return c, nil
}
