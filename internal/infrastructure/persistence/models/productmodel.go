package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
)

// ProductModel represents the database persistence model for products.
// Active carries no gorm default so that inserting false is not overwritten.
type ProductModel struct {
	ID           uint      `gorm:"primarykey"`
	Name         string    `gorm:"not null;size:50"`
	Brand        string    `gorm:"size:50"`
	Term         string    `gorm:"size:50"`
	Active       bool      `gorm:"not null"`
	DateCreated  time.Time `gorm:"not null;index"`
	DateModified *time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// BeforeCreate hook for GORM
func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.DateCreated.IsZero() {
		p.DateCreated = biztime.NowUTC()
	}
	return nil
}
