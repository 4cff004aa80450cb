package dto

import (
	"time"

	"github.com/stealthycommerce/stealthy/internal/domain/customer"
)

type CustomerDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateCreated time.Time `json:"date_created"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:          c.ID(),
		Email:       c.Email(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		DateCreated: c.CreatedAt(),
	}
}
