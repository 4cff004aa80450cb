package usecases

import (
	"context"
	"fmt"

	"github.com/stealthycommerce/stealthy/internal/application/order/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type ListCustomerOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListCustomerOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListCustomerOrdersUseCase {
	return &ListCustomerOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListCustomerOrdersUseCase) Execute(ctx context.Context, customerID uint) ([]*dto.OrderDTO, error) {
	if customerID == 0 {
		return nil, errors.NewValidationError("customer id is required")
	}

	orders, err := uc.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to list customer orders", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return dto.ToOrderDTOList(orders), nil
}

type GetOrderDetailsQuery struct {
	CustomerID uint
	OrderID    uint
}

type GetOrderDetailsUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderDetailsUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderDetailsUseCase {
	return &GetOrderDetailsUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderDetailsUseCase) Execute(ctx context.Context, query GetOrderDetailsQuery) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.GetByCustomerAndID(ctx, query.CustomerID, query.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to get order", "error", err,
			"customer_id", query.CustomerID, "order_id", query.OrderID)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, errors.NewNotFoundError("order not found")
	}

	return dto.ToOrderDTO(o), nil
}
