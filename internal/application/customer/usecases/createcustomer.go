package usecases

import (
	"context"
	"errors"

	"github.com/stealthycommerce/stealthy/internal/application/customer/dto"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	apperrors "github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Email     string
	FirstName string
	LastName  string
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	clock        biztime.Clock
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.Repository, clock biztime.Clock, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error) {
	c, err := customer.NewCustomer(cmd.Email, cmd.FirstName, cmd.LastName, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid create customer command", "error", err)
		return nil, apperrors.NewValidationError(err.Error()).Wrap(err)
	}

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		if errors.Is(err, customer.ErrEmailExists) {
			return nil, apperrors.NewConflictError("email already registered").Wrap(err)
		}
		uc.logger.Errorw("failed to create customer", "error", err)
		return nil, apperrors.NewInternalError("failed to create customer").Wrap(err)
	}

	uc.logger.Infow("customer created successfully", "customer_id", c.ID())
	return dto.ToCustomerDTO(c), nil
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "customer_id", id)
		return nil, apperrors.NewInternalError("failed to get customer")
	}
	if c == nil {
		return nil, apperrors.NewNotFoundError("customer not found")
	}
	return dto.ToCustomerDTO(c), nil
}
