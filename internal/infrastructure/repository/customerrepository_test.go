package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

func TestCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	c, err := customer.NewCustomer("jane@example.com", "Jane", "Doe", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID())

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "jane@example.com", found.Email())
	assert.Equal(t, "Jane Doe", found.DisplayName())

	ok, err := repo.Exists(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, ok)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup, err := customer.NewCustomer("JANE@example.com", "Other", "", baseTime)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), customer.ErrEmailExists)
}
