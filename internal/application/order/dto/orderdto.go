package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
)

// OrderDTO is an order as shown in a customer's history.
type OrderDTO struct {
	OrderID        uint             `json:"order_id"`
	OfferID        uint             `json:"offer_id"`
	Start          time.Time        `json:"start"`
	End            time.Time        `json:"end"`
	Cancelled      *time.Time       `json:"cancelled"`
	AmountRefunded *decimal.Decimal `json:"amount_refunded"`
	AmountCharged  decimal.Decimal  `json:"amount_charged"`
	Status         string           `json:"status"`
	Terms          TermsDTO         `json:"terms"`
}

type TermsDTO struct {
	TermUnit    string `json:"term_unit,omitempty"`
	TermCount   int    `json:"term_count,omitempty"`
	Description string `json:"description,omitempty"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	terms := o.Terms()
	return &OrderDTO{
		OrderID:        o.ID(),
		OfferID:        o.OfferID(),
		Start:          o.StartDate(),
		End:            o.EndDate(),
		Cancelled:      o.CancelDate(),
		AmountRefunded: o.AmountRefunded(),
		AmountCharged:  o.AmountCharged(),
		Status:         string(o.Status()),
		Terms: TermsDTO{
			TermUnit:    terms.TermUnit,
			TermCount:   terms.TermCount,
			Description: terms.Description,
		},
	}
}

func ToOrderDTOList(orders []*order.Order) []*OrderDTO {
	return lo.Map(orders, func(o *order.Order, _ int) *OrderDTO {
		return ToOrderDTO(o)
	})
}
