package handlers

import (
	"context"

	customerdto "github.com/stealthycommerce/stealthy/internal/application/customer/dto"
	"github.com/stealthycommerce/stealthy/internal/application/customer/usecases"
)

// Use case interfaces for CustomerHandler

type createCustomerUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCustomerCommand) (*customerdto.CustomerDTO, error)
}

type getCustomerUseCase interface {
	Execute(ctx context.Context, id uint) (*customerdto.CustomerDTO, error)
}
