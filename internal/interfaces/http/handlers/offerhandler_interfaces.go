package handlers

import (
	"context"

	catalogdto "github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
)

// Use case interfaces for OfferHandler and ProductOfferHandler

type createOfferUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOfferCommand) (*catalogdto.OfferDTO, error)
}

type updateOfferUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateOfferCommand) (*catalogdto.OfferDTO, error)
}

type deleteOfferUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type getOfferUseCase interface {
	Execute(ctx context.Context, id uint) (*catalogdto.OfferDTO, error)
}

type listOffersUseCase interface {
	Execute(ctx context.Context, query usecases.ListOffersQuery) ([]*catalogdto.OfferDTO, int64, error)
}

type searchProductOffersUseCase interface {
	Execute(ctx context.Context, query usecases.SearchProductOffersQuery) ([]*catalogdto.ProductOfferDTO, int64, error)
}
