package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/stealthycommerce/stealthy/internal/application/catalog/dto"
	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
	"github.com/stealthycommerce/stealthy/internal/interfaces/http/handlers/testutil"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateProductUC struct {
	result *catalogdto.ProductDTO
	err    error
	cmd    usecases.CreateProductCommand
}

func (m *mockCreateProductUC) Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*catalogdto.ProductDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateProductUC struct {
	result *catalogdto.ProductDTO
	err    error
	cmd    usecases.UpdateProductCommand
}

func (m *mockUpdateProductUC) Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*catalogdto.ProductDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteProductUC struct {
	err error
}

func (m *mockDeleteProductUC) Execute(ctx context.Context, id uint) error {
	return m.err
}

type mockGetProductUC struct {
	result *catalogdto.ProductDTO
	exists bool
	err    error
}

func (m *mockGetProductUC) Execute(ctx context.Context, id uint) (*catalogdto.ProductDTO, error) {
	return m.result, m.err
}

func (m *mockGetProductUC) Exists(ctx context.Context, id uint) (bool, error) {
	return m.exists, m.err
}

type mockListProductsUC struct {
	result []*catalogdto.ProductDTO
	total  int64
	err    error
	query  usecases.ListProductsQuery
}

func (m *mockListProductsUC) Execute(ctx context.Context, query usecases.ListProductsQuery) ([]*catalogdto.ProductDTO, int64, error) {
	m.query = query
	return m.result, m.total, m.err
}

func createTestProductDTO() *catalogdto.ProductDTO {
	return &catalogdto.ProductDTO{
		ID:          42,
		Name:        "Stealth VPN",
		Brand:       "Stealthy",
		Term:        "Monthly",
		Active:      true,
		DateCreated: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// =====================================================================
// Mutations
// =====================================================================

func TestProductHandler_CreateProduct_Success(t *testing.T) {
	uc := &mockCreateProductUC{result: createTestProductDTO()}
	handler := NewProductHandler(uc, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/products", ProductRequest{
		Name:  "Stealth VPN",
		Brand: "Stealthy",
		Term:  "Monthly",
	})

	handler.CreateProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())
	assert.True(t, uc.cmd.Active, "active defaults to true")
}

func TestProductHandler_CreateProduct_Rejected(t *testing.T) {
	uc := &mockCreateProductUC{err: errors.NewValidationError("invalid product name")}
	handler := NewProductHandler(uc, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/products", ProductRequest{Brand: "Stealthy"})

	handler.CreateProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "-1", w.Body.String())
}

func TestProductHandler_CreateProduct_MalformedBody(t *testing.T) {
	handler := NewProductHandler(&mockCreateProductUC{}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/products", `{"name":`)

	handler.CreateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	inactive := false
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "updated", want: "true"},
		{name: "not found", err: errors.NewNotFoundError("product not found"), want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUpdateProductUC{result: createTestProductDTO(), err: tt.err}
			handler := NewProductHandler(nil, uc, nil, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPut, "/products/42", ProductRequest{
				Name:   "Stealth VPN Pro",
				Active: &inactive,
			})
			testutil.SetURLParam(c, "id", "42")

			handler.UpdateProduct(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, uint(42), uc.cmd.ID)
			assert.False(t, uc.cmd.Active)
		})
	}
}

func TestProductHandler_UpdateProduct_InvalidID(t *testing.T) {
	handler := NewProductHandler(nil, &mockUpdateProductUC{}, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/products/abc", ProductRequest{Name: "x"})
	testutil.SetURLParam(c, "id", "abc")

	handler.UpdateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	handler := NewProductHandler(nil, nil, &mockDeleteProductUC{}, nil, nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodDelete, "/products/42", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.DeleteProduct(c)

	assert.Equal(t, "true", w.Body.String())

	handler = NewProductHandler(nil, nil, &mockDeleteProductUC{err: errors.NewNotFoundError("product not found")}, nil, nil, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodDelete, "/products/42", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.DeleteProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Body.String())
}

// =====================================================================
// Reads
// =====================================================================

func TestProductHandler_GetProduct(t *testing.T) {
	handler := NewProductHandler(nil, nil, nil, &mockGetProductUC{result: createTestProductDTO()}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/products/42", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got catalogdto.ProductDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "Stealth VPN", got.Name)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	handler := NewProductHandler(nil, nil, nil, &mockGetProductUC{err: errors.NewNotFoundError("product not found")}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/products/7", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_ProductExists(t *testing.T) {
	handler := NewProductHandler(nil, nil, nil, &mockGetProductUC{exists: true}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/products/42/exists", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.ProductExists(c)

	assert.Equal(t, "true", w.Body.String())
}

func TestProductHandler_ListProducts(t *testing.T) {
	uc := &mockListProductsUC{result: []*catalogdto.ProductDTO{createTestProductDTO()}, total: 41}
	handler := NewProductHandler(nil, nil, nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "20"})

	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListProductsQuery{Page: 2, PageSize: 20}, uc.query)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(41), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}
