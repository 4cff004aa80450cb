package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrInvalidProductName   = errors.New("invalid product name")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidNumberOfTerms = errors.New("invalid number of terms")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrFieldTooLong         = errors.New("field too long")
)

// ErrOffersNotFound reports offer ids that did not resolve in a batch lookup.
func ErrOffersNotFound(ids []uint) error {
	return fmt.Errorf("%w: %v", ErrOfferNotFound, ids)
}

func errTooLong(field string, max int) error {
	return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, max)
}
