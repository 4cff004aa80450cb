// Package constants holds names shared across layers.
package constants

// Environments accepted by --env.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults for list endpoints.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Database drivers accepted by database.driver.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Table names.
const (
	TableProducts  = "products"
	TableOffers    = "offers"
	TableOrders    = "orders"
	TableCustomers = "customers"
)
