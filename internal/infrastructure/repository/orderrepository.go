package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/mappers"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

func (r *OrderRepositoryImpl) CreateBatch(ctx context.Context, orders []*order.Order) ([]uint, error) {
	if len(orders) == 0 {
		return []uint{}, nil
	}

	rows := r.mapper.ToModels(orders)
	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to create orders", "error", err, "count", len(orders))
		return nil, fmt.Errorf("failed to create orders: %w", err)
	}

	ids := lo.Map(rows, func(m *models.OrderModel, _ int) uint { return m.ID })
	for i, o := range orders {
		if err := o.SetID(ids[i]); err != nil {
			return nil, err
		}
	}

	r.logger.Infow("orders created successfully", "order_ids", ids, "customer_id", orders[0].CustomerID())
	return ids, nil
}

func (r *OrderRepositoryImpl) GetByCustomerAndID(ctx context.Context, customerID, orderID uint) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order", "error", err, "order_id", orderID, "customer_id", customerID)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	var rows []*models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("start_date DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list customer orders", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}

	return r.mapper.ToDomainList(rows)
}

func (r *OrderRepositoryImpl) SaveCancellation(ctx context.Context, o *order.Order) error {
	if !o.IsCancelled() {
		return fmt.Errorf("order %d is not cancelled", o.ID())
	}

	model := r.mapper.ToModel(o)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{}).
		Where("id = ? AND customer_id = ? AND version = ? AND cancel_date IS NULL",
			o.ID(), o.CustomerID(), o.Version()).
		Updates(map[string]interface{}{
			"cancel_date":     model.CancelDate,
			"amount_refunded": model.AmountRefunded,
			"version":         gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to save order cancellation", "error", result.Error, "order_id", o.ID())
		return fmt.Errorf("failed to save order cancellation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return order.ErrCancellationConflict
	}

	r.logger.Infow("order cancellation saved", "order_id", o.ID(), "customer_id", o.CustomerID())
	return nil
}
