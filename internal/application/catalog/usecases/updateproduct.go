package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type UpdateProductCommand struct {
	ID     uint
	Name   string
	Brand  string
	Term   string
	Active bool
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	cache       catalog.SearchCache
	clock       biztime.Clock
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo catalog.ProductRepository,
	cache catalog.SearchCache,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		cache:       cache,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ID)
		return nil, toAppError(err)
	}
	if product == nil {
		return nil, toAppError(catalog.ErrProductNotFound)
	}

	if err := product.Update(cmd.Name, cmd.Brand, cmd.Term, cmd.Active, uc.clock.Now()); err != nil {
		uc.logger.Warnw("invalid update product command", "error", err, "product_id", cmd.ID)
		return nil, toAppError(err)
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", cmd.ID)
		return nil, toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	uc.logger.Infow("product updated successfully", "product_id", cmd.ID)
	return dto.ToProductDTO(product), nil
}
