package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type DeleteOfferUseCase struct {
	offerRepo catalog.OfferRepository
	cache     catalog.SearchCache
	logger    logger.Interface
}

func NewDeleteOfferUseCase(
	offerRepo catalog.OfferRepository,
	cache catalog.SearchCache,
	logger logger.Interface,
) *DeleteOfferUseCase {
	return &DeleteOfferUseCase{
		offerRepo: offerRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *DeleteOfferUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.offerRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete offer", "error", err, "offer_id", id)
		return toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	uc.logger.Infow("offer deleted successfully", "offer_id", id)
	return nil
}
