package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers"
)

// CatalogRouteConfig holds dependencies for product, offer and search routes.
type CatalogRouteConfig struct {
	ProductHandler      *handlers.ProductHandler
	OfferHandler        *handlers.OfferHandler
	ProductOfferHandler *handlers.ProductOfferHandler
}

// SetupCatalogRoutes configures catalog administration and storefront search routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	products := engine.Group("/products")
	{
		products.GET("", cfg.ProductHandler.ListProducts)
		products.POST("", cfg.ProductHandler.CreateProduct)
		products.GET("/:id", cfg.ProductHandler.GetProduct)
		products.GET("/:id/exists", cfg.ProductHandler.ProductExists)
		products.PUT("/:id", cfg.ProductHandler.UpdateProduct)
		products.DELETE("/:id", cfg.ProductHandler.DeleteProduct)
	}

	offers := engine.Group("/offers")
	{
		offers.GET("", cfg.OfferHandler.ListOffers)
		offers.POST("", cfg.OfferHandler.CreateOffer)
		offers.GET("/:id", cfg.OfferHandler.GetOffer)
		offers.PUT("/:id", cfg.OfferHandler.UpdateOffer)
		offers.DELETE("/:id", cfg.OfferHandler.DeleteOffer)
	}

	engine.GET("/product-offers", cfg.ProductOfferHandler.SearchProductOffers)
}
