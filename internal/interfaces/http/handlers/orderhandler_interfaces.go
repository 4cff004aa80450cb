package handlers

import (
	"context"

	orderdto "github.com/stealthycommerce/stealthy/internal/application/order/dto"
	"github.com/stealthycommerce/stealthy/internal/application/order/usecases"
)

// Use case interfaces for OrderHandler

type addOrdersUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddOrdersCommand) []uint
}

type cancelOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelOrderCommand) bool
}

type listCustomerOrdersUseCase interface {
	Execute(ctx context.Context, customerID uint) ([]*orderdto.OrderDTO, error)
}

type getOrderDetailsUseCase interface {
	Execute(ctx context.Context, query usecases.GetOrderDetailsQuery) (*orderdto.OrderDTO, error)
}
