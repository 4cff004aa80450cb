package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

// Sort keys accepted by product-offer search.
const (
	SortByPrice   = "price"
	SortByCreated = "created"
	SortByName    = "name"
)

// IsValidSortBy reports whether s is a supported search sort key.
func IsValidSortBy(s string) bool {
	switch s {
	case SortByPrice, SortByCreated, SortByName:
		return true
	}
	return false
}

// ProductOffer is one row of the active catalog: an active offer of an active product.
type ProductOffer struct {
	ProductID   uint
	OfferID     uint
	Brand       string
	ProductName string
	Description string
	Price       decimal.Decimal
	// CreatedDate is the offer's modification time, or its creation time if never modified.
	CreatedDate time.Time
}

// SearchFilter selects a page of ProductOffers. SortBy is one of the SortBy constants;
// Descending puts the highest price, newest date or last name first.
type SearchFilter struct {
	query.BaseFilter
}

// NewSearchFilter normalizes the sort key to SortByCreated when unsupported.
func NewSearchFilter(page, pageSize int, sortBy string, descending bool) SearchFilter {
	if !IsValidSortBy(sortBy) {
		sortBy = SortByCreated
	}
	return SearchFilter{
		BaseFilter: query.NewBaseFilter(query.WithPage(page, pageSize), query.WithSort(sortBy, descending)),
	}
}
