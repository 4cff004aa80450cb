package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	apperrors "github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
)

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var customerNow = time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

func TestCreateCustomerUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCustomerRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*customer.Customer")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*customer.Customer).SetID(5))
		}).
		Return(nil)

	uc := NewCreateCustomerUseCase(repo, biztime.FixedClock{FixedTime: customerNow}, loggertest.NewRecorder())
	got, err := uc.Execute(ctx, CreateCustomerCommand{Email: " Ada@Example.com ", FirstName: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, customerNow, got.DateCreated)
}

func TestCreateCustomerUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	clock := biztime.FixedClock{FixedTime: customerNow}

	uc := NewCreateCustomerUseCase(new(mockCustomerRepository), clock, loggertest.NewRecorder())
	_, err := uc.Execute(ctx, CreateCustomerCommand{Email: "not-an-email"})
	assert.True(t, apperrors.IsValidationError(err))

	dup := new(mockCustomerRepository)
	dup.On("Create", ctx, mock.Anything).Return(customer.ErrEmailExists)
	_, err = NewCreateCustomerUseCase(dup, clock, loggertest.NewRecorder()).
		Execute(ctx, CreateCustomerCommand{Email: "ada@example.com"})
	assert.True(t, apperrors.IsConflictError(err))

	broken := new(mockCustomerRepository)
	broken.On("Create", ctx, mock.Anything).Return(errors.New("boom"))
	_, err = NewCreateCustomerUseCase(broken, clock, loggertest.NewRecorder()).
		Execute(ctx, CreateCustomerCommand{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}

func TestGetCustomerUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCustomerRepository)
	stored, err := customer.ReconstructCustomer(5, "ada@example.com", "Ada", "", customerNow, nil)
	require.NoError(t, err)
	repo.On("GetByID", ctx, uint(5)).Return(stored, nil)
	repo.On("GetByID", ctx, uint(6)).Return(nil, nil)

	uc := NewGetCustomerUseCase(repo, loggertest.NewRecorder())

	got, err := uc.Execute(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	_, err = uc.Execute(ctx, 6)
	assert.True(t, apperrors.IsNotFoundError(err))
}
