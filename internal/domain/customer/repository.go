package customer

import "context"

type Repository interface {
	// Create returns ErrEmailExists when the email is taken.
	Create(ctx context.Context, customer *Customer) error
	// GetByID returns (nil, nil) when the customer does not exist.
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
