package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

func newTestOrder(t *testing.T, customerID, offerID uint, start time.Time, charged string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(customerID, offerID, start, start.AddDate(0, 1, 0), decimal.RequireFromString(charged),
		order.TermsSnapshot{TermUnit: "monthly", TermCount: 1, Description: "One month"})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_CreateBatch(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	orders := []*order.Order{
		newTestOrder(t, 7, 1, baseTime, "1.99"),
		newTestOrder(t, 7, 2, baseTime, "9.99"),
		newTestOrder(t, 7, 1, baseTime, "1.99"),
	}

	ids, err := repo.CreateBatch(ctx, orders)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.True(t, ids[0] < ids[1] && ids[1] < ids[2])

	for i, id := range ids {
		found, err := repo.GetByCustomerAndID(ctx, 7, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, orders[i].OfferID(), found.OfferID())
		assert.True(t, orders[i].AmountCharged().Equal(found.AmountCharged()))
		assert.True(t, baseTime.Equal(found.StartDate()))
		assert.True(t, baseTime.AddDate(0, 1, 0).Equal(found.EndDate()))
		assert.Equal(t, "One month", found.Terms().Description)
		assert.Equal(t, 1, found.Version())
		assert.False(t, found.IsCancelled())
	}

	empty, err := repo.CreateBatch(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOrderRepository_GetByCustomerAndID_OtherCustomer(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	ids, err := repo.CreateBatch(ctx, []*order.Order{newTestOrder(t, 7, 1, baseTime, "1.99")})
	require.NoError(t, err)

	found, err := repo.GetByCustomerAndID(ctx, 8, ids[0])
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, []*order.Order{
		newTestOrder(t, 7, 1, baseTime, "1.99"),
		newTestOrder(t, 7, 2, baseTime.Add(time.Hour), "2.99"),
		newTestOrder(t, 8, 3, baseTime, "3.99"),
	})
	require.NoError(t, err)

	orders, err := repo.ListByCustomer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].OfferID())
	assert.Equal(t, uint(1), orders[1].OfferID())
}

func TestOrderRepository_SaveCancellation(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	ids, err := repo.CreateBatch(ctx, []*order.Order{newTestOrder(t, 7, 1, baseTime, "1.99")})
	require.NoError(t, err)

	first, err := repo.GetByCustomerAndID(ctx, 7, ids[0])
	require.NoError(t, err)
	stale, err := repo.GetByCustomerAndID(ctx, 7, ids[0])
	require.NoError(t, err)

	refund, err := first.Cancel(baseTime.Add(24 * time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.SaveCancellation(ctx, first))

	stored, err := repo.GetByCustomerAndID(ctx, 7, ids[0])
	require.NoError(t, err)
	require.True(t, stored.IsCancelled())
	assert.True(t, refund.Equal(*stored.AmountRefunded()))
	assert.Equal(t, 2, stored.Version())

	t.Run("concurrent cancellation affects no rows", func(t *testing.T) {
		_, err := stale.Cancel(baseTime.Add(48 * time.Hour))
		require.NoError(t, err)

		assert.ErrorIs(t, repo.SaveCancellation(ctx, stale), order.ErrCancellationConflict)

		again, err := repo.GetByCustomerAndID(ctx, 7, ids[0])
		require.NoError(t, err)
		assert.True(t, refund.Equal(*again.AmountRefunded()))
		assert.True(t, first.CancelDate().Equal(*again.CancelDate()))
	})

	t.Run("active order is rejected", func(t *testing.T) {
		active := newTestOrder(t, 7, 1, baseTime, "1.99")
		assert.Error(t, repo.SaveCancellation(ctx, active))
	})
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestOrderRepository_StorageFailures(t *testing.T) {
	storageErr := errors.New("connection reset by peer")

	t.Run("lookup", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrderRepository(db, logger.NewNopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders`")).WillReturnError(storageErr)

		found, err := repo.GetByCustomerAndID(context.Background(), 7, 1)
		assert.ErrorIs(t, err, storageErr)
		assert.Nil(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch insert", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrderRepository(db, logger.NewNopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `orders`")).WillReturnError(storageErr)
		mock.ExpectRollback()

		ids, err := repo.CreateBatch(context.Background(), []*order.Order{newTestOrder(t, 7, 1, baseTime, "1.99")})
		assert.ErrorIs(t, err, storageErr)
		assert.Nil(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancellation update", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrderRepository(db, logger.NewNopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `orders` SET")).WillReturnError(storageErr)
		mock.ExpectRollback()

		o, err := order.ReconstructOrder(1, 7, 1, baseTime, baseTime.AddDate(0, 1, 0), decimal.RequireFromString("1.99"),
			nil, nil, order.TermsSnapshot{}, 1)
		require.NoError(t, err)
		_, err = o.Cancel(baseTime.Add(24 * time.Hour))
		require.NoError(t, err)

		assert.ErrorIs(t, repo.SaveCancellation(context.Background(), o), storageErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
