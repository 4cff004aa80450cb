package catalog

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	vo "github.com/stealthycommerce/stealthy/internal/domain/catalog/valueobjects"
)

const MaxOfferDescriptionLength = 100

// Offer is a priced variant of a product. A nil numberOfTerms means one term.
type Offer struct {
	id            uint
	productID     uint
	description   string
	price         decimal.Decimal
	numberOfTerms *int
	active        bool
	createdAt     time.Time
	modifiedAt    *time.Time
}

func NewOffer(productID uint, description string, price decimal.Decimal, numberOfTerms *int,
	active bool, now time.Time) (*Offer, error) {

	o := &Offer{active: active, createdAt: now}
	if err := o.apply(productID, description, price, numberOfTerms); err != nil {
		return nil, err
	}
	return o, nil
}

func ReconstructOffer(id, productID uint, description string, price decimal.Decimal,
	numberOfTerms *int, active bool, createdAt time.Time, modifiedAt *time.Time) (*Offer, error) {

	if id == 0 {
		return nil, fmt.Errorf("offer ID cannot be zero")
	}

	return &Offer{
		id:            id,
		productID:     productID,
		description:   description,
		price:         price,
		numberOfTerms: numberOfTerms,
		active:        active,
		createdAt:     createdAt,
		modifiedAt:    modifiedAt,
	}, nil
}

func (o *Offer) apply(productID uint, description string, price decimal.Decimal, numberOfTerms *int) error {
	if productID == 0 {
		return ErrInvalidProductID
	}
	if utf8.RuneCountInString(description) > MaxOfferDescriptionLength {
		return errTooLong("description", MaxOfferDescriptionLength)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidPrice)
	}
	if numberOfTerms != nil && *numberOfTerms < 1 {
		return fmt.Errorf("%w: must be at least 1", ErrInvalidNumberOfTerms)
	}

	o.productID = productID
	o.description = description
	o.price = price.Round(2)
	if numberOfTerms != nil {
		n := *numberOfTerms
		o.numberOfTerms = &n
	} else {
		o.numberOfTerms = nil
	}
	return nil
}

// Update replaces the editable fields and stamps the modification time.
func (o *Offer) Update(productID uint, description string, price decimal.Decimal, numberOfTerms *int,
	active bool, now time.Time) error {

	if err := o.apply(productID, description, price, numberOfTerms); err != nil {
		return err
	}
	o.active = active
	o.modifiedAt = &now
	return nil
}

func (o *Offer) ID() uint {
	return o.id
}

func (o *Offer) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("offer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("offer ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Offer) ProductID() uint {
	return o.productID
}

func (o *Offer) Description() string {
	return o.description
}

func (o *Offer) Price() decimal.Decimal {
	return o.price
}

func (o *Offer) NumberOfTerms() *int {
	return o.numberOfTerms
}

// TermCount is the number of terms granted, at least 1.
func (o *Offer) TermCount() int {
	return vo.NormalizeTermCount(o.numberOfTerms)
}

func (o *Offer) IsActive() bool {
	return o.active
}

func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Offer) ModifiedAt() *time.Time {
	return o.modifiedAt
}

// LastChanged returns the modification time, or the creation time if never modified.
func (o *Offer) LastChanged() time.Time {
	if o.modifiedAt != nil {
		return *o.modifiedAt
	}
	return o.createdAt
}

// OfferWithProduct pairs an offer with the product it sells.
type OfferWithProduct struct {
	Offer   *Offer
	Product *Product
}

// EndDate resolves when a subscription to this offer bought at start ends.
func (op *OfferWithProduct) EndDate(start time.Time) time.Time {
	term := op.Product.Term()
	return vo.ResolveEndDate(start, &term, op.Offer.NumberOfTerms())
}
