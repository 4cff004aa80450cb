package http

import (
	catalogUsecases "github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
	customerUsecases "github.com/stealthycommerce/stealthy/internal/application/customer/usecases"
	orderUsecases "github.com/stealthycommerce/stealthy/internal/application/order/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Orders
	addOrdersUC          *orderUsecases.AddOrdersUseCase
	cancelOrderUC        *orderUsecases.CancelOrderUseCase
	listCustomerOrdersUC *orderUsecases.ListCustomerOrdersUseCase
	getOrderDetailsUC    *orderUsecases.GetOrderDetailsUseCase

	// Products
	createProductUC *catalogUsecases.CreateProductUseCase
	updateProductUC *catalogUsecases.UpdateProductUseCase
	deleteProductUC *catalogUsecases.DeleteProductUseCase
	getProductUC    *catalogUsecases.GetProductUseCase
	listProductsUC  *catalogUsecases.ListProductsUseCase

	// Offers
	createOfferUC         *catalogUsecases.CreateOfferUseCase
	updateOfferUC         *catalogUsecases.UpdateOfferUseCase
	deleteOfferUC         *catalogUsecases.DeleteOfferUseCase
	getOfferUC            *catalogUsecases.GetOfferUseCase
	listOffersUC          *catalogUsecases.ListOffersUseCase
	searchProductOffersUC *catalogUsecases.SearchProductOffersUseCase

	// Customers
	createCustomerUC *customerUsecases.CreateCustomerUseCase
	getCustomerUC    *customerUsecases.GetCustomerUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	log := c.log

	ucs := &allUseCases{
		addOrdersUC:          orderUsecases.NewAddOrdersUseCase(r.orderRepo, r.offerRepo, r.txMgr, c.clock, log.Named("orders")),
		cancelOrderUC:        orderUsecases.NewCancelOrderUseCase(r.orderRepo, c.clock, log.Named("orders")),
		listCustomerOrdersUC: orderUsecases.NewListCustomerOrdersUseCase(r.orderRepo, log),
		getOrderDetailsUC:    orderUsecases.NewGetOrderDetailsUseCase(r.orderRepo, log),

		createProductUC: catalogUsecases.NewCreateProductUseCase(r.productRepo, c.searchCache, c.clock, log),
		updateProductUC: catalogUsecases.NewUpdateProductUseCase(r.productRepo, c.searchCache, c.clock, log),
		deleteProductUC: catalogUsecases.NewDeleteProductUseCase(r.productRepo, c.searchCache, log),
		getProductUC:    catalogUsecases.NewGetProductUseCase(r.productRepo, log),
		listProductsUC:  catalogUsecases.NewListProductsUseCase(r.productRepo, log),

		createOfferUC:         catalogUsecases.NewCreateOfferUseCase(r.offerRepo, r.productRepo, c.searchCache, c.clock, log),
		updateOfferUC:         catalogUsecases.NewUpdateOfferUseCase(r.offerRepo, r.productRepo, c.searchCache, c.clock, log),
		deleteOfferUC:         catalogUsecases.NewDeleteOfferUseCase(r.offerRepo, c.searchCache, log),
		getOfferUC:            catalogUsecases.NewGetOfferUseCase(r.offerRepo, log),
		listOffersUC:          catalogUsecases.NewListOffersUseCase(r.offerRepo, log),
		searchProductOffersUC: catalogUsecases.NewSearchProductOffersUseCase(r.offerRepo, c.searchCache, c.renderer, log),

		createCustomerUC: customerUsecases.NewCreateCustomerUseCase(r.customerRepo, c.clock, log),
		getCustomerUC:    customerUsecases.NewGetCustomerUseCase(r.customerRepo, log),
	}

	// Optional collaborators
	ucs.addOrdersUC.SetCustomerLookup(r.customerRepo)
	if c.metrics != nil {
		ucs.addOrdersUC.SetMetrics(c.metrics)
		ucs.cancelOrderUC.SetMetrics(c.metrics)
	}
	if c.notifier != nil {
		ucs.addOrdersUC.SetReceiptNotifier(c.notifier)
		ucs.cancelOrderUC.SetReceiptNotifier(c.notifier, r.customerRepo)
	}

	return ucs
}
