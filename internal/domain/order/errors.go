package order

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrRefundNotComputable   = errors.New("refund cannot be computed for order")
	ErrInvalidTerm           = errors.New("order end date must be after start date")
	ErrInvalidAmount         = errors.New("invalid order amount")
	ErrCancellationConflict  = errors.New("order was modified concurrently")
)
