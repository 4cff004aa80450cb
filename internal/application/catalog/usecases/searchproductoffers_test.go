package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

func searchRows() []*catalog.ProductOffer {
	return []*catalog.ProductOffer{{
		ProductID:   1,
		OfferID:     2,
		Brand:       "Stealthy",
		ProductName: "Planner",
		Description: "**Bold** <script>alert(1)</script>",
		Price:       decimal.RequireFromString("1.99"),
		CreatedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func TestSearchProductOffersUseCase_CacheMiss(t *testing.T) {
	ctx := context.Background()
	offers := new(mockOfferRepository)
	cache := new(mockSearchCache)
	filter := catalog.NewSearchFilter(1, 10, catalog.SortByPrice, false)

	cache.On("Get", ctx, filter).Return(nil, int64(0), false)
	offers.On("Search", ctx, filter).Return(searchRows(), int64(1), nil)
	cache.On("Set", ctx, filter, mock.Anything, int64(1)).Return()

	uc := NewSearchProductOffersUseCase(offers, cache, markdown.NewRenderer(), loggertest.NewRecorder())
	rows, total, err := uc.Execute(ctx, SearchProductOffersQuery{Page: 1, PageSize: 10, SortBy: "price"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].DescriptionHTML, "<strong>Bold</strong>")
	assert.NotContains(t, rows[0].DescriptionHTML, "<script>")
	cache.AssertExpectations(t)
}

func TestSearchProductOffersUseCase_CacheHit(t *testing.T) {
	ctx := context.Background()
	offers := new(mockOfferRepository)
	cache := new(mockSearchCache)
	filter := catalog.NewSearchFilter(1, 10, catalog.SortByCreated, true)

	cache.On("Get", ctx, filter).Return(searchRows(), int64(1), true)

	uc := NewSearchProductOffersUseCase(offers, cache, markdown.NewRenderer(), loggertest.NewRecorder())
	rows, _, err := uc.Execute(ctx, SearchProductOffersQuery{Page: 1, PageSize: 10, SortBy: "bogus", Descending: true})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	offers.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchProductOffersUseCase_RepositoryError(t *testing.T) {
	ctx := context.Background()
	offers := new(mockOfferRepository)
	cache := new(mockSearchCache)
	filter := catalog.NewSearchFilter(1, 10, catalog.SortByName, true)

	cache.On("Get", ctx, filter).Return(nil, int64(0), false)
	offers.On("Search", ctx, filter).Return(nil, int64(0), errors.New("boom"))

	uc := NewSearchProductOffersUseCase(offers, cache, markdown.NewRenderer(), loggertest.NewRecorder())
	_, _, err := uc.Execute(ctx, SearchProductOffersQuery{Page: 1, PageSize: 10, SortBy: "name", Descending: true})

	assert.Error(t, err)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
