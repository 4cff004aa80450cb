package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, filter query.PageFilter) ([]*catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

type mockOfferRepository struct {
	mock.Mock
}

func (m *mockOfferRepository) Create(ctx context.Context, offer *catalog.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *mockOfferRepository) GetByID(ctx context.Context, id uint) (*catalog.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*catalog.Offer)
	return o, args.Error(1)
}

func (m *mockOfferRepository) Update(ctx context.Context, offer *catalog.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *mockOfferRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOfferRepository) List(ctx context.Context, filter query.PageFilter) ([]*catalog.Offer, int64, error) {
	args := m.Called(ctx, filter)
	offers, _ := args.Get(0).([]*catalog.Offer)
	return offers, args.Get(1).(int64), args.Error(2)
}

func (m *mockOfferRepository) FindWithProducts(ctx context.Context, ids []uint) (map[uint]*catalog.OfferWithProduct, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).(map[uint]*catalog.OfferWithProduct)
	return found, args.Error(1)
}

func (m *mockOfferRepository) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.ProductOffer, int64, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*catalog.ProductOffer)
	return rows, args.Get(1).(int64), args.Error(2)
}

type mockSearchCache struct {
	mock.Mock
}

func (m *mockSearchCache) Get(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.ProductOffer, int64, bool) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*catalog.ProductOffer)
	return rows, args.Get(1).(int64), args.Bool(2)
}

func (m *mockSearchCache) Set(ctx context.Context, filter catalog.SearchFilter, rows []*catalog.ProductOffer, total int64) {
	m.Called(ctx, filter, rows, total)
}

func (m *mockSearchCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
