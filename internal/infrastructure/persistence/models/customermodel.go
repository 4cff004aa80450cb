package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
)

// CustomerModel represents the database persistence model for customers
type CustomerModel struct {
	ID           uint      `gorm:"primarykey"`
	Email        string    `gorm:"uniqueIndex;not null;size:100"`
	FirstName    string    `gorm:"size:100"`
	LastName     string    `gorm:"size:100"`
	DateCreated  time.Time `gorm:"not null"`
	DateModified *time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}

// BeforeCreate hook for GORM
func (c *CustomerModel) BeforeCreate(tx *gorm.DB) error {
	if c.DateCreated.IsZero() {
		c.DateCreated = biztime.NowUTC()
	}
	return nil
}

// AllModels lists every persistence model, in dependency order, for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&CustomerModel{},
		&ProductModel{},
		&OfferModel{},
		&OrderModel{},
	}
}
