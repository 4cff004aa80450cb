package usecases

import (
	"context"
	"errors"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	apperrors "github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// toAppError maps catalog validation and lookup errors to application errors.
// Anything else is reported as internal.
func toAppError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return apperrors.NewNotFoundError("product not found").Wrap(err)
	case errors.Is(err, catalog.ErrOfferNotFound):
		return apperrors.NewNotFoundError("offer not found").Wrap(err)
	case errors.Is(err, catalog.ErrInvalidProductName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidNumberOfTerms),
		errors.Is(err, catalog.ErrInvalidProductID),
		errors.Is(err, catalog.ErrFieldTooLong):
		return apperrors.NewValidationError(err.Error()).Wrap(err)
	default:
		return apperrors.NewInternalError("catalog operation failed", err.Error()).Wrap(err)
	}
}

// invalidateSearch drops cached search pages after a catalog mutation.
func invalidateSearch(ctx context.Context, cache catalog.SearchCache, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate search cache", "error", err)
	}
}
