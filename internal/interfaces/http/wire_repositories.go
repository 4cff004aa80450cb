package http

import (
	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/repository"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	productRepo  catalog.ProductRepository
	offerRepo    catalog.OfferRepository
	orderRepo    order.Repository
	customerRepo customer.Repository
	txMgr        *db.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		productRepo:  repository.NewProductRepository(gdb, log),
		offerRepo:    repository.NewOfferRepository(gdb, log),
		orderRepo:    repository.NewOrderRepository(gdb, log),
		customerRepo: repository.NewCustomerRepository(gdb, log),
		txMgr:        db.NewTransactionManager(gdb),
	}
}
