package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/domain/order"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateBatch(ctx context.Context, orders []*order.Order) ([]uint, error) {
	args := m.Called(ctx, orders)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockOrderRepository) GetByCustomerAndID(ctx context.Context, customerID, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, customerID, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) SaveCancellation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type mockOfferResolver struct {
	mock.Mock
}

func (m *mockOfferResolver) FindWithProducts(ctx context.Context, ids []uint) (map[uint]*catalog.OfferWithProduct, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).(map[uint]*catalog.OfferWithProduct)
	return found, args.Error(1)
}

type mockCustomerLookup struct {
	mock.Mock
}

func (m *mockCustomerLookup) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type mockOrderMetrics struct {
	mock.Mock
}

func (m *mockOrderMetrics) OrdersCreated(count int) {
	m.Called(count)
}

func (m *mockOrderMetrics) OrderCancelled(refund decimal.Decimal) {
	m.Called(refund.String())
}

type mockReceiptNotifier struct {
	mock.Mock
}

func (m *mockReceiptNotifier) SendOrderReceipt(ctx context.Context, receipt OrderReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *mockReceiptNotifier) SendCancellationReceipt(ctx context.Context, receipt CancellationReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

// inlineTransactor runs fn directly and counts calls.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func intPtr(v int) *int {
	return &v
}

func newOfferWithProduct(t *testing.T, offerID uint, price string, terms *int, term string) *catalog.OfferWithProduct {
	t.Helper()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := catalog.ReconstructProduct(100+offerID, "Planner", "Stealthy", term, true, created, nil)
	require.NoError(t, err)
	o, err := catalog.ReconstructOffer(offerID, p.ID(), "Refill pack", decimal.RequireFromString(price),
		terms, true, created, nil)
	require.NoError(t, err)

	return &catalog.OfferWithProduct{Offer: o, Product: p}
}

func newStoredOrder(t *testing.T, id uint, charged string, start, end time.Time) *order.Order {
	t.Helper()
	o, err := order.ReconstructOrder(id, 7, 3, start, end, decimal.RequireFromString(charged),
		nil, nil, order.TermsSnapshot{TermUnit: "Monthly", TermCount: 1}, 1)
	require.NoError(t, err)
	return o
}

func newCustomer(t *testing.T, id uint) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(id, "ada@example.com", "Ada", "Lovelace",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	return c
}
