package handlers

import (
	"context"

	catalogdto "github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
)

// Use case interfaces for ProductHandler

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*catalogdto.ProductDTO, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*catalogdto.ProductDTO, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type getProductUseCase interface {
	Execute(ctx context.Context, id uint) (*catalogdto.ProductDTO, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, query usecases.ListProductsQuery) ([]*catalogdto.ProductDTO, int64, error)
}
