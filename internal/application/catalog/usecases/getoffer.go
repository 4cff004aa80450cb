package usecases

import (
	"context"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

type GetOfferUseCase struct {
	offerRepo catalog.OfferRepository
	logger    logger.Interface
}

func NewGetOfferUseCase(offerRepo catalog.OfferRepository, logger logger.Interface) *GetOfferUseCase {
	return &GetOfferUseCase{
		offerRepo: offerRepo,
		logger:    logger,
	}
}

func (uc *GetOfferUseCase) Execute(ctx context.Context, id uint) (*dto.OfferDTO, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get offer", "error", err, "offer_id", id)
		return nil, toAppError(err)
	}
	if offer == nil {
		return nil, toAppError(catalog.ErrOfferNotFound)
	}
	return dto.ToOfferDTO(offer), nil
}

type ListOffersQuery struct {
	Page     int
	PageSize int
}

type ListOffersUseCase struct {
	offerRepo catalog.OfferRepository
	logger    logger.Interface
}

func NewListOffersUseCase(offerRepo catalog.OfferRepository, logger logger.Interface) *ListOffersUseCase {
	return &ListOffersUseCase{
		offerRepo: offerRepo,
		logger:    logger,
	}
}

func (uc *ListOffersUseCase) Execute(ctx context.Context, q ListOffersQuery) ([]*dto.OfferDTO, int64, error) {
	offers, total, err := uc.offerRepo.List(ctx, query.PageFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list offers", "error", err)
		return nil, 0, toAppError(err)
	}
	return dto.ToOfferDTOList(offers), total, nil
}
