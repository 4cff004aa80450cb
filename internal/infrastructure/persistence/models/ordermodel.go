package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders.
// CancelDate and AmountRefunded are NULL while the order is active.
type OrderModel struct {
	ID             uint                                    `gorm:"primarykey"`
	OfferID        uint                                    `gorm:"not null;index"`
	CustomerID     uint                                    `gorm:"not null;index"`
	StartDate      time.Time                               `gorm:"not null"`
	EndDate        time.Time                               `gorm:"not null"`
	AmountCharged  decimal.Decimal                         `gorm:"type:decimal(10,2);not null"`
	CancelDate     *time.Time                              `gorm:"index"`
	AmountRefunded decimal.NullDecimal                     `gorm:"type:decimal(10,2)"`
	TermsSnapshot  datatypes.JSONType[order.TermsSnapshot] `gorm:"column:terms_snapshot"`
	Version        int                                     `gorm:"not null;default:1"`
	DateCreated    time.Time                               `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// BeforeCreate hook for GORM
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.DateCreated.IsZero() {
		o.DateCreated = biztime.NowUTC()
	}
	if o.Version == 0 {
		o.Version = 1
	}
	return nil
}
