package catalog

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

// ProductRepository returns (nil, nil) from GetByID when the product does not exist.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	// Delete returns ErrProductNotFound when no row was removed.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// List orders products by last change, newest first.
	List(ctx context.Context, filter query.PageFilter) ([]*Product, int64, error)
}

// OfferRepository returns (nil, nil) from GetByID when the offer does not exist.
type OfferRepository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id uint) (*Offer, error)
	Update(ctx context.Context, offer *Offer) error
	// Delete returns ErrOfferNotFound when no row was removed.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter query.PageFilter) ([]*Offer, int64, error)

	// FindWithProducts loads the distinct offers in ids together with their
	// products in one query. Missing ids are absent from the map.
	FindWithProducts(ctx context.Context, ids []uint) (map[uint]*OfferWithProduct, error)

	// Search pages through active offers of active products.
	Search(ctx context.Context, filter SearchFilter) ([]*ProductOffer, int64, error)
}

// SearchCache stores search pages keyed by filter. Implementations must be
// safe to call when the backing store is unavailable; misses are (nil, 0, false).
type SearchCache interface {
	Get(ctx context.Context, filter SearchFilter) ([]*ProductOffer, int64, bool)
	Set(ctx context.Context, filter SearchFilter, rows []*ProductOffer, total int64)
	Invalidate(ctx context.Context) error
}
