package mappers

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
)

// OrderMapper converts between Order aggregates and persistence models.
type OrderMapper interface {
	ToModel(o *order.Order) *models.OrderModel
	ToModels(orders []*order.Order) []*models.OrderModel
	ToDomain(model *models.OrderModel) (*order.Order, error)
	ToDomainList(models []*models.OrderModel) ([]*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	refunded := decimal.NullDecimal{}
	if r := o.AmountRefunded(); r != nil {
		refunded = decimal.NewNullDecimal(*r)
	}

	return &models.OrderModel{
		ID:             o.ID(),
		OfferID:        o.OfferID(),
		CustomerID:     o.CustomerID(),
		StartDate:      o.StartDate(),
		EndDate:        o.EndDate(),
		AmountCharged:  o.AmountCharged(),
		CancelDate:     o.CancelDate(),
		AmountRefunded: refunded,
		TermsSnapshot:  datatypes.NewJSONType(o.Terms()),
		Version:        o.Version(),
	}
}

func (m *OrderMapperImpl) ToModels(orders []*order.Order) []*models.OrderModel {
	return lo.Map(orders, func(o *order.Order, _ int) *models.OrderModel {
		return m.ToModel(o)
	})
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	var refunded *decimal.Decimal
	if model.AmountRefunded.Valid {
		r := model.AmountRefunded.Decimal
		refunded = &r
	}

	o, err := order.ReconstructOrder(
		model.ID,
		model.CustomerID,
		model.OfferID,
		model.StartDate,
		model.EndDate,
		model.AmountCharged,
		model.CancelDate,
		refunded,
		model.TermsSnapshot.Data(),
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order %d: %w", model.ID, err)
	}
	return o, nil
}

func (m *OrderMapperImpl) ToDomainList(rows []*models.OrderModel) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := m.ToDomain(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
