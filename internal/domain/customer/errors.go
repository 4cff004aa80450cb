package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrFieldTooLong     = errors.New("field too long")
)
