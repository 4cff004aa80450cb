package http

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	orderHandler        *handlers.OrderHandler
	productHandler      *handlers.ProductHandler
	offerHandler        *handlers.OfferHandler
	productOfferHandler *handlers.ProductOfferHandler
	customerHandler     *handlers.CustomerHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) newHandlers() *allHandlers {
	ucs := c.ucs
	log := c.log

	return &allHandlers{
		orderHandler: handlers.NewOrderHandler(
			ucs.addOrdersUC, ucs.cancelOrderUC, ucs.listCustomerOrdersUC, ucs.getOrderDetailsUC, log,
		),
		productHandler: handlers.NewProductHandler(
			ucs.createProductUC, ucs.updateProductUC, ucs.deleteProductUC, ucs.getProductUC, ucs.listProductsUC, log,
		),
		offerHandler: handlers.NewOfferHandler(
			ucs.createOfferUC, ucs.updateOfferUC, ucs.deleteOfferUC, ucs.getOfferUC, ucs.listOffersUC, log,
		),
		productOfferHandler: handlers.NewProductOfferHandler(ucs.searchProductOffersUC, log),
		customerHandler:     handlers.NewCustomerHandler(ucs.createCustomerUC, ucs.getCustomerUC, log),
		healthHandler:       handlers.NewHealthHandler(c.healthChecks(), log),
	}
}

func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
