package mappers

import (
	"fmt"

	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		Email:        c.Email(),
		FirstName:    c.FirstName(),
		LastName:     c.LastName(),
		DateCreated:  c.CreatedAt(),
		DateModified: c.ModifiedAt(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}
	c, err := customer.ReconstructCustomer(model.ID, model.Email, model.FirstName, model.LastName,
		model.DateCreated, model.DateModified)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer %d: %w", model.ID, err)
	}
	return c, nil
}
