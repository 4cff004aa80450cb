package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
)

// OfferModel represents the database persistence model for offers
type OfferModel struct {
	ID            uint            `gorm:"primarykey"`
	ProductID     uint            `gorm:"not null;index"`
	Description   string          `gorm:"size:100"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NumberOfTerms *int
	Active        bool      `gorm:"not null"`
	DateCreated   time.Time `gorm:"not null"`
	DateModified  *time.Time
}

// TableName specifies the table name for GORM
func (OfferModel) TableName() string {
	return constants.TableOffers
}

// BeforeCreate hook for GORM
func (o *OfferModel) BeforeCreate(tx *gorm.DB) error {
	if o.DateCreated.IsZero() {
		o.DateCreated = biztime.NowUTC()
	}
	return nil
}

// OfferWithProductRow is the scan target of the offers-products join.
type OfferWithProductRow struct {
	OfferModel
	ProductName         string
	ProductBrand        string
	ProductTerm         string
	ProductActive       bool
	ProductDateCreated  time.Time
	ProductDateModified *time.Time
}

// ProductOfferRow is the scan target of the catalog search query.
type ProductOfferRow struct {
	ProductID         uint
	OfferID           uint
	Brand             string
	ProductName       string
	Description       string
	Price             decimal.Decimal
	OfferDateCreated  time.Time
	OfferDateModified *time.Time
}
