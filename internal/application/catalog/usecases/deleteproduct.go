package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type DeleteProductUseCase struct {
	productRepo catalog.ProductRepository
	cache       catalog.SearchCache
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo catalog.ProductRepository,
	cache catalog.SearchCache,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete product", "error", err, "product_id", id)
		return toAppError(err)
	}

	invalidateSearch(ctx, uc.cache, uc.logger)
	uc.logger.Infow("product deleted successfully", "product_id", id)
	return nil
}
