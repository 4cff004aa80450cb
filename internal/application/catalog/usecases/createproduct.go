package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type CreateProductCommand struct {
	Name   string
	Brand  string
	Term   string
	Active bool
}

type CreateProductUseCase struct {
	productRepo catalog.ProductRepository
	cache       catalog.SearchCache
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo catalog.ProductRepository,
	cache catalog.SearchCache,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		cache:       cache,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error) {
	product, err := catalog.NewProduct(cmd.Name, cmd.Brand, cmd.Term, cmd.Active, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid create product command", "error", err)
		return nil, toAppError(err)
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to create product", "error", err)
		return nil, toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	return dto.ToProductDTO(product), nil
}
