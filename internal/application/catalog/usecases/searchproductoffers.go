package usecases

import (
	"context"

	"github.com/samber/lo"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

type SearchProductOffersQuery struct {
	Page       int
	PageSize   int
	SortBy     string
	Descending bool
}

// SearchProductOffersUseCase pages through active offers of active products,
// serving repeated pages from the search cache.
type SearchProductOffersUseCase struct {
	offerRepo catalog.OfferRepository
	cache     catalog.SearchCache
	renderer  markdown.Renderer
	logger    logger.Interface
}

func NewSearchProductOffersUseCase(
	offerRepo catalog.OfferRepository,
	cache catalog.SearchCache,
	renderer markdown.Renderer,
	logger logger.Interface,
) *SearchProductOffersUseCase {
	return &SearchProductOffersUseCase{
		offerRepo: offerRepo,
		cache:     cache,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *SearchProductOffersUseCase) Execute(ctx context.Context, q SearchProductOffersQuery) ([]*dto.ProductOfferDTO, int64, error) {
	filter := catalog.NewSearchFilter(q.Page, q.PageSize, q.SortBy, q.Descending)

	rows, total, hit := uc.cache.Get(ctx, filter)
	if !hit {
		var err error
		rows, total, err = uc.offerRepo.Search(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to search product offers", "error", err, "sort_by", filter.SortBy)
			return nil, 0, toAppError(err)
		}
		uc.cache.Set(ctx, filter, rows, total)
	}

	return lo.Map(rows, func(row *catalog.ProductOffer, _ int) *dto.ProductOfferDTO {
		out := dto.ToProductOfferDTO(row)
		html, err := uc.renderer.ToHTML(row.Description)
		if err != nil {
			uc.logger.Warnw("failed to render offer description", "error", err, "offer_id", row.OfferID)
			return out
		}
		out.DescriptionHTML = html
		return out
	}), total, nil
}
