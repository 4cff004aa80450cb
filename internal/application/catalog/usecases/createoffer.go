package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type CreateOfferCommand struct {
	ProductID     uint
	Description   string
	Price         decimal.Decimal
	NumberOfTerms *int
	Active        bool
}

type CreateOfferUseCase struct {
	offerRepo   catalog.OfferRepository
	productRepo catalog.ProductRepository
	cache       catalog.SearchCache
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCreateOfferUseCase(
	offerRepo catalog.OfferRepository,
	productRepo catalog.ProductRepository,
	cache catalog.SearchCache,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateOfferUseCase {
	return &CreateOfferUseCase{
		offerRepo:   offerRepo,
		productRepo: productRepo,
		cache:       cache,
		clock:       clock,
		logger:      logger,
	}
}

// Execute fails with a not-found error when the referenced product does not exist.
func (uc *CreateOfferUseCase) Execute(ctx context.Context, cmd CreateOfferCommand) (*dto.OfferDTO, error) {
	offer, err := catalog.NewOffer(cmd.ProductID, cmd.Description, cmd.Price, cmd.NumberOfTerms, cmd.Active, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid create offer command", "error", err)
		return nil, toAppError(err)
	}

	if err := ensureProductExists(ctx, uc.productRepo, cmd.ProductID); err != nil {
		uc.logger.Warnw("cannot create offer", "error", err, "product_id", cmd.ProductID)
		return nil, toAppError(err)
	}

	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		uc.logger.Errorw("failed to create offer", "error", err, "product_id", cmd.ProductID)
		return nil, toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	return dto.ToOfferDTO(offer), nil
}

func ensureProductExists(ctx context.Context, repo catalog.ProductRepository, productID uint) error {
	exists, err := repo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return catalog.ErrProductNotFound
	}
	return nil
}
