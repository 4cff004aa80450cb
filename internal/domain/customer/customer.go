package customer

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxEmailLength = 100
	MaxNameLength  = 100
)

type Customer struct {
	id         uint
	email      string
	firstName  string
	lastName   string
	createdAt  time.Time
	modifiedAt *time.Time
}

func NewCustomer(email, firstName, lastName string, now time.Time) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || utf8.RuneCountInString(email) > MaxEmailLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if utf8.RuneCountInString(firstName) > MaxNameLength || utf8.RuneCountInString(lastName) > MaxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrFieldTooLong, MaxNameLength)
	}

	return &Customer{
		email:     email,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		createdAt: now,
	}, nil
}

func ReconstructCustomer(id uint, email, firstName, lastName string, createdAt time.Time,
	modifiedAt *time.Time) (*Customer, error) {

	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}

	return &Customer{
		id:         id,
		email:      email,
		firstName:  firstName,
		lastName:   lastName,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
	}, nil
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

// DisplayName returns "First Last", falling back to the email address.
func (c *Customer) DisplayName() string {
	name := strings.TrimSpace(c.firstName + " " + c.lastName)
	if name == "" {
		return c.email
	}
	return name
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) ModifiedAt() *time.Time {
	return c.modifiedAt
}
