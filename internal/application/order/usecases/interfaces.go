package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
)

// OfferResolver loads offers with their products in one round trip.
type OfferResolver interface {
	FindWithProducts(ctx context.Context, ids []uint) (map[uint]*catalog.OfferWithProduct, error)
}

// CustomerLookup returns (nil, nil) for an unknown customer.
type CustomerLookup interface {
	GetByID(ctx context.Context, id uint) (*customer.Customer, error)
}

// OrderMetrics receives counters for committed order operations.
type OrderMetrics interface {
	OrdersCreated(count int)
	OrderCancelled(refund decimal.Decimal)
}

// ReceiptLine is one purchased offer on an order receipt.
type ReceiptLine struct {
	OrderID     uint
	ProductName string
	Brand       string
	Description string
	Amount      decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
}

type OrderReceipt struct {
	Email     string
	Name      string
	OrderedAt time.Time
	Lines     []ReceiptLine
}

func (r OrderReceipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range r.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

type CancellationReceipt struct {
	Email          string
	Name           string
	OrderID        uint
	CancelledAt    time.Time
	AmountCharged  decimal.Decimal
	AmountRefunded decimal.Decimal
}

// ReceiptNotifier delivers receipts to customers. Errors are logged by the
// caller and never affect the outcome of the order operation.
type ReceiptNotifier interface {
	SendOrderReceipt(ctx context.Context, receipt OrderReceipt) error
	SendCancellationReceipt(ctx context.Context, receipt CancellationReceipt) error
}
