package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type UpdateOfferCommand struct {
	ID            uint
	ProductID     uint
	Description   string
	Price         decimal.Decimal
	NumberOfTerms *int
	Active        bool
}

type UpdateOfferUseCase struct {
	offerRepo   catalog.OfferRepository
	productRepo catalog.ProductRepository
	cache       catalog.SearchCache
	clock       biztime.Clock
	logger      logger.Interface
}

func NewUpdateOfferUseCase(
	offerRepo catalog.OfferRepository,
	productRepo catalog.ProductRepository,
	cache catalog.SearchCache,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateOfferUseCase {
	return &UpdateOfferUseCase{
		offerRepo:   offerRepo,
		productRepo: productRepo,
		cache:       cache,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *UpdateOfferUseCase) Execute(ctx context.Context, cmd UpdateOfferCommand) (*dto.OfferDTO, error) {
	offer, err := uc.offerRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get offer", "error", err, "offer_id", cmd.ID)
		return nil, toAppError(err)
	}
	if offer == nil {
		return nil, toAppError(catalog.ErrOfferNotFound)
	}

	if err := offer.Update(cmd.ProductID, cmd.Description, cmd.Price, cmd.NumberOfTerms, cmd.Active, uc.clock.Now()); err != nil {
		uc.logger.Warnw("invalid update offer command", "error", err, "offer_id", cmd.ID)
		return nil, toAppError(err)
	}

	if err := ensureProductExists(ctx, uc.productRepo, cmd.ProductID); err != nil {
		uc.logger.Warnw("cannot update offer", "error", err, "offer_id", cmd.ID, "product_id", cmd.ProductID)
		return nil, toAppError(err)
	}

	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		uc.logger.Errorw("failed to update offer", "error", err, "offer_id", cmd.ID)
		return nil, toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	uc.logger.Infow("offer updated successfully", "offer_id", cmd.ID)
	return dto.ToOfferDTO(offer), nil
}
