package order

import "context"

type Repository interface {
	// CreateBatch inserts orders atomically and returns their ids in input order.
	CreateBatch(ctx context.Context, orders []*Order) ([]uint, error)
	// GetByCustomerAndID returns (nil, nil) when the customer has no such order.
	GetByCustomerAndID(ctx context.Context, customerID, orderID uint) (*Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
	// SaveCancellation persists the cancel date and refund of o only if the stored
	// row is still active at o's version; otherwise ErrCancellationConflict.
	SaveCancellation(ctx context.Context, o *Order) error
}
