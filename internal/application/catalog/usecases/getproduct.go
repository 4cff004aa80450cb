package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

type GetProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", id)
		return nil, toAppError(err)
	}
	if product == nil {
		return nil, toAppError(catalog.ErrProductNotFound)
	}
	return dto.ToProductDTO(product), nil
}

// Exists reports whether a product with id is stored.
func (uc *GetProductUseCase) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := uc.productRepo.Exists(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check product existence", "error", err, "product_id", id)
		return false, toAppError(err)
	}
	return exists, nil
}

type ListProductsQuery struct {
	Page     int
	PageSize int
}

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, q ListProductsQuery) ([]*dto.ProductDTO, int64, error) {
	products, total, err := uc.productRepo.List(ctx, query.PageFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, 0, toAppError(err)
	}
	return dto.ToProductDTOList(products), total, nil
}
