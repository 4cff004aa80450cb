package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// TermsSnapshot records what the customer bought, as the catalog described it at purchase time.
type TermsSnapshot struct {
	TermUnit    string `json:"term_unit"`
	TermCount   int    `json:"term_count"`
	Description string `json:"description"`
}

// Order is a customer's purchase of one offer. The charged amount is fixed at
// creation; cancellation is the only mutation and happens at most once.
type Order struct {
	id             uint
	customerID     uint
	offerID        uint
	startDate      time.Time
	endDate        time.Time
	amountCharged  decimal.Decimal
	cancelDate     *time.Time
	amountRefunded *decimal.Decimal
	terms          TermsSnapshot
	version        int
}

func NewOrder(customerID, offerID uint, start, end time.Time, amountCharged decimal.Decimal,
	terms TermsSnapshot) (*Order, error) {

	if customerID == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if offerID == 0 {
		return nil, fmt.Errorf("offer ID cannot be zero")
	}
	if !end.After(start) {
		return nil, ErrInvalidTerm
	}
	if amountCharged.IsNegative() {
		return nil, fmt.Errorf("%w: charged amount cannot be negative", ErrInvalidAmount)
	}

	return &Order{
		customerID:    customerID,
		offerID:       offerID,
		startDate:     start,
		endDate:       end,
		amountCharged: amountCharged,
		terms:         terms,
		version:       1,
	}, nil
}

func ReconstructOrder(id, customerID, offerID uint, start, end time.Time, amountCharged decimal.Decimal,
	cancelDate *time.Time, amountRefunded *decimal.Decimal, terms TermsSnapshot, version int) (*Order, error) {

	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if (cancelDate == nil) != (amountRefunded == nil) {
		return nil, fmt.Errorf("order %d: cancel date and refunded amount must be set together", id)
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		offerID:        offerID,
		startDate:      start,
		endDate:        end,
		amountCharged:  amountCharged,
		cancelDate:     cancelDate,
		amountRefunded: amountRefunded,
		terms:          terms,
		version:        version,
	}, nil
}

// Cancel moves an active order to cancelled at now and records the prorated refund.
// On error the order is left unchanged.
func (o *Order) Cancel(now time.Time) (decimal.Decimal, error) {
	if o.IsCancelled() {
		return decimal.Zero, ErrOrderAlreadyCancelled
	}

	refund, err := CalculateRefund(o.amountCharged, o.startDate, o.endDate, now)
	if err != nil {
		return decimal.Zero, err
	}

	o.cancelDate = &now
	o.amountRefunded = &refund
	return refund, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Order) CustomerID() uint {
	return o.customerID
}

func (o *Order) OfferID() uint {
	return o.offerID
}

func (o *Order) StartDate() time.Time {
	return o.startDate
}

func (o *Order) EndDate() time.Time {
	return o.endDate
}

func (o *Order) AmountCharged() decimal.Decimal {
	return o.amountCharged
}

func (o *Order) CancelDate() *time.Time {
	return o.cancelDate
}

func (o *Order) AmountRefunded() *decimal.Decimal {
	return o.amountRefunded
}

func (o *Order) Terms() TermsSnapshot {
	return o.terms
}

// Version is the optimistic concurrency token read from storage.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) IsCancelled() bool {
	return o.cancelDate != nil
}

func (o *Order) Status() Status {
	if o.IsCancelled() {
		return StatusCancelled
	}
	return StatusActive
}
