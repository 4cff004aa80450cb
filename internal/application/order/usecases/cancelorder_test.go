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

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
)

var cancelNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newCancelUseCase(repo *mockOrderRepository, log *loggertest.Recorder) *CancelOrderUseCase {
	return NewCancelOrderUseCase(repo, biztime.FixedClock{FixedTime: cancelNow}, log)
}

func TestCancelOrderUseCase_ProratedRefund(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()

	// 30 whole days originally, 6 remaining.
	stored := newStoredOrder(t, 5, "1.99",
		cancelNow.Add(-24*biztime.Day+time.Hour),
		cancelNow.Add(6*biztime.Day+time.Hour))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)
	repo.On("SaveCancellation", ctx, stored).Return(nil)

	ok := newCancelUseCase(repo, log).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.True(t, ok)
	require.True(t, stored.IsCancelled())
	assert.Equal(t, cancelNow, *stored.CancelDate())
	assert.Equal(t, "0.46", stored.AmountRefunded().StringFixed(2))
	repo.AssertExpectations(t)
}

func TestCancelOrderUseCase_FirstDayFullRefund(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)

	stored := newStoredOrder(t, 5, "9.99", cancelNow, cancelNow.Add(30*biztime.Day))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)
	repo.On("SaveCancellation", ctx, stored).Return(nil)

	ok := newCancelUseCase(repo, loggertest.NewRecorder()).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.True(t, ok)
	assert.True(t, stored.AmountRefunded().Equal(decimal.RequireFromString("9.99")))
}

func TestCancelOrderUseCase_ExpiredOrderRefundsNothing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)

	stored := newStoredOrder(t, 5, "9.99", cancelNow.Add(-40*biztime.Day), cancelNow.Add(-10*biztime.Day))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)
	repo.On("SaveCancellation", ctx, stored).Return(nil)

	ok := newCancelUseCase(repo, loggertest.NewRecorder()).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.True(t, ok)
	assert.True(t, stored.AmountRefunded().IsZero())
}

func TestCancelOrderUseCase_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(nil, nil)

	ok := newCancelUseCase(repo, log).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.False(t, ok)
	repo.AssertNotCalled(t, "SaveCancellation", mock.Anything, mock.Anything)
	assert.Empty(t, log.Entries())
}

func TestCancelOrderUseCase_AlreadyCancelled(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()

	cancelled := cancelNow.Add(-time.Hour)
	refunded := decimal.RequireFromString("1.00")
	stored, err := order.ReconstructOrder(5, 7, 3, cancelNow.Add(-10*biztime.Day), cancelNow.Add(20*biztime.Day),
		decimal.RequireFromString("3.00"), &cancelled, &refunded, order.TermsSnapshot{}, 2)
	require.NoError(t, err)
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)

	ok := newCancelUseCase(repo, log).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.False(t, ok)
	assert.Equal(t, "1", stored.AmountRefunded().String())
	assert.Equal(t, cancelled, *stored.CancelDate())
	repo.AssertNotCalled(t, "SaveCancellation", mock.Anything, mock.Anything)
	assert.Len(t, log.EntriesAt("warn"), 1)
}

func TestCancelOrderUseCase_NotComputable(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()

	stored := newStoredOrder(t, 5, "0", cancelNow.Add(-time.Hour), cancelNow.Add(30*biztime.Day))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)

	ok := newCancelUseCase(repo, log).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.False(t, ok)
	assert.False(t, stored.IsCancelled())
	repo.AssertNotCalled(t, "SaveCancellation", mock.Anything, mock.Anything)
	assert.Len(t, log.EntriesAt("error"), 1)
}

func TestCancelOrderUseCase_LookupFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(nil, errors.New("timeout"))

	ok := newCancelUseCase(repo, log).Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.False(t, ok)
	assert.Len(t, log.EntriesAt("error"), 1)
}

func TestCancelOrderUseCase_SaveFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	log := loggertest.NewRecorder()
	metrics := new(mockOrderMetrics)

	stored := newStoredOrder(t, 5, "9.99", cancelNow, cancelNow.Add(30*biztime.Day))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)
	repo.On("SaveCancellation", ctx, stored).Return(order.ErrCancellationConflict)

	uc := newCancelUseCase(repo, log)
	uc.SetMetrics(metrics)
	ok := uc.Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5})

	assert.False(t, ok)
	assert.Len(t, log.EntriesAt("error"), 1)
	metrics.AssertNotCalled(t, "OrderCancelled", mock.Anything)
}

func TestCancelOrderUseCase_MetricsAndReceipt(t *testing.T) {
	ctx := context.Background()
	repo := new(mockOrderRepository)
	metrics := new(mockOrderMetrics)
	notifier := new(mockReceiptNotifier)
	customers := new(mockCustomerLookup)

	stored := newStoredOrder(t, 5, "9.99", cancelNow, cancelNow.Add(30*biztime.Day))
	repo.On("GetByCustomerAndID", ctx, uint(7), uint(5)).Return(stored, nil)
	repo.On("SaveCancellation", ctx, stored).Return(nil)
	metrics.On("OrderCancelled", "9.99").Return()
	customers.On("GetByID", ctx, uint(7)).Return(newCustomer(t, 7), nil)
	notifier.On("SendCancellationReceipt", ctx, mock.MatchedBy(func(r CancellationReceipt) bool {
		return r.OrderID == 5 && r.Email == "ada@example.com" && r.AmountRefunded.Equal(decimal.RequireFromString("9.99"))
	})).Return(nil)

	uc := newCancelUseCase(repo, loggertest.NewRecorder())
	uc.SetMetrics(metrics)
	uc.SetReceiptNotifier(notifier, customers)

	assert.True(t, uc.Execute(ctx, CancelOrderCommand{CustomerID: 7, OrderID: 5}))
	metrics.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
