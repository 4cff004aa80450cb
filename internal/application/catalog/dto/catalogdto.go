package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
)

type ProductDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	Term         string     `json:"term"`
	Active       bool       `json:"active"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified"`
}

type OfferDTO struct {
	ID            uint            `json:"id"`
	ProductID     uint            `json:"product_id"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	NumberOfTerms *int            `json:"number_of_terms"`
	Active        bool            `json:"active"`
	DateCreated   time.Time       `json:"date_created"`
	DateModified  *time.Time      `json:"date_modified"`
}

// ProductOfferDTO is one row of the active catalog.
type ProductOfferDTO struct {
	ProductID       uint            `json:"product_id"`
	OfferID         uint            `json:"offer_id"`
	Brand           string          `json:"brand"`
	ProductName     string          `json:"product_name"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html"`
	Price           decimal.Decimal `json:"price"`
	CreatedDate     time.Time       `json:"created_date"`
}

func ToProductDTO(p *catalog.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Brand:        p.Brand(),
		Term:         p.Term(),
		Active:       p.IsActive(),
		DateCreated:  p.CreatedAt(),
		DateModified: p.ModifiedAt(),
	}
}

func ToProductDTOList(products []*catalog.Product) []*ProductDTO {
	return lo.Map(products, func(p *catalog.Product, _ int) *ProductDTO {
		return ToProductDTO(p)
	})
}

func ToOfferDTO(o *catalog.Offer) *OfferDTO {
	if o == nil {
		return nil
	}
	return &OfferDTO{
		ID:            o.ID(),
		ProductID:     o.ProductID(),
		Description:   o.Description(),
		Price:         o.Price(),
		NumberOfTerms: o.NumberOfTerms(),
		Active:        o.IsActive(),
		DateCreated:   o.CreatedAt(),
		DateModified:  o.ModifiedAt(),
	}
}

func ToOfferDTOList(offers []*catalog.Offer) []*OfferDTO {
	return lo.Map(offers, func(o *catalog.Offer, _ int) *OfferDTO {
		return ToOfferDTO(o)
	})
}

// ToProductOfferDTO leaves DescriptionHTML empty; the search use case renders it.
func ToProductOfferDTO(row *catalog.ProductOffer) *ProductOfferDTO {
	return &ProductOfferDTO{
		ProductID:   row.ProductID,
		OfferID:     row.OfferID,
		Brand:       row.Brand,
		ProductName: row.ProductName,
		Description: row.Description,
		Price:       row.Price,
		CreatedDate: row.CreatedDate,
	}
}
