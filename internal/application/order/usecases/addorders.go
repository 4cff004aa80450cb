package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type AddOrdersCommand struct {
	CustomerID uint
	OfferIDs   []uint
}

// AddOrdersUseCase creates one order per requested offer id, all or nothing.
type AddOrdersUseCase struct {
	orderRepo order.Repository
	offers    OfferResolver
	txMgr     db.Transactor
	clock     biztime.Clock
	logger    logger.Interface

	customers CustomerLookup
	metrics   OrderMetrics
	notifier  ReceiptNotifier
}

func NewAddOrdersUseCase(
	orderRepo order.Repository,
	offers OfferResolver,
	txMgr db.Transactor,
	clock biztime.Clock,
	logger logger.Interface,
) *AddOrdersUseCase {
	return &AddOrdersUseCase{
		orderRepo: orderRepo,
		offers:    offers,
		txMgr:     txMgr,
		clock:     clock,
		logger:    logger,
	}
}

// SetCustomerLookup makes an unknown customer fail the batch.
func (uc *AddOrdersUseCase) SetCustomerLookup(customers CustomerLookup) {
	uc.customers = customers
}

func (uc *AddOrdersUseCase) SetMetrics(metrics OrderMetrics) {
	uc.metrics = metrics
}

func (uc *AddOrdersUseCase) SetReceiptNotifier(notifier ReceiptNotifier) {
	uc.notifier = notifier
}

// Execute returns the new order ids in request order, or an empty slice if
// anything failed. Failures are logged, never returned.
func (uc *AddOrdersUseCase) Execute(ctx context.Context, cmd AddOrdersCommand) []uint {
	if len(cmd.OfferIDs) == 0 {
		return []uint{}
	}

	now := uc.clock.Now()

	var buyer *customer.Customer
	if uc.customers != nil {
		c, err := uc.customers.GetByID(ctx, cmd.CustomerID)
		if err != nil {
			uc.logger.Errorw("failed to get customer", "error", err, "customer_id", cmd.CustomerID)
			return []uint{}
		}
		if c == nil {
			uc.logger.Errorw("failed to add orders",
				"error", customer.ErrCustomerNotFound,
				"customer_id", cmd.CustomerID,
			)
			return []uint{}
		}
		buyer = c
	}

	resolved, err := uc.resolve(ctx, cmd.OfferIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve offers",
			"error", err,
			"customer_id", cmd.CustomerID,
			"offer_ids", cmd.OfferIDs,
		)
		return []uint{}
	}

	orders, err := uc.build(cmd, resolved, now)
	if err != nil {
		uc.logger.Errorw("failed to build orders", "error", err, "customer_id", cmd.CustomerID)
		return []uint{}
	}

	var ids []uint
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		created, err := uc.orderRepo.CreateBatch(txCtx, orders)
		if err != nil {
			return err
		}
		ids = created
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist orders",
			"error", err,
			"customer_id", cmd.CustomerID,
			"count", len(orders),
		)
		return []uint{}
	}

	uc.logger.Infow("orders created successfully",
		"customer_id", cmd.CustomerID,
		"order_ids", ids,
	)

	if uc.metrics != nil {
		uc.metrics.OrdersCreated(len(ids))
	}
	if uc.notifier != nil && buyer != nil {
		uc.sendReceipt(ctx, buyer, orders, resolved, now)
	}

	return ids
}

func (uc *AddOrdersUseCase) resolve(ctx context.Context, offerIDs []uint) (map[uint]*catalog.OfferWithProduct, error) {
	found, err := uc.offers.FindWithProducts(ctx, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	missing := lo.Uniq(lo.Filter(offerIDs, func(id uint, _ int) bool {
		_, ok := found[id]
		return !ok
	}))
	if len(missing) > 0 {
		return nil, catalog.ErrOffersNotFound(missing)
	}
	return found, nil
}

func (uc *AddOrdersUseCase) build(cmd AddOrdersCommand, resolved map[uint]*catalog.OfferWithProduct,
	now time.Time) ([]*order.Order, error) {

	orders := make([]*order.Order, 0, len(cmd.OfferIDs))
	for _, offerID := range cmd.OfferIDs {
		op := resolved[offerID]
		terms := order.TermsSnapshot{
			TermUnit:    op.Product.Term(),
			TermCount:   op.Offer.TermCount(),
			Description: op.Offer.Description(),
		}

		o, err := order.NewOrder(cmd.CustomerID, offerID, now, op.EndDate(now), op.Offer.Price(), terms)
		if err != nil {
			return nil, fmt.Errorf("offer %d: %w", offerID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (uc *AddOrdersUseCase) sendReceipt(ctx context.Context, buyer *customer.Customer, orders []*order.Order,
	resolved map[uint]*catalog.OfferWithProduct, now time.Time) {

	receipt := OrderReceipt{
		Email:     buyer.Email(),
		Name:      buyer.DisplayName(),
		OrderedAt: now,
		Lines: lo.Map(orders, func(o *order.Order, _ int) ReceiptLine {
			op := resolved[o.OfferID()]
			return ReceiptLine{
				OrderID:     o.ID(),
				ProductName: op.Product.Name(),
				Brand:       op.Product.Brand(),
				Description: op.Offer.Description(),
				Amount:      o.AmountCharged(),
				StartDate:   o.StartDate(),
				EndDate:     o.EndDate(),
			}
		}),
	}

	if err := uc.notifier.SendOrderReceipt(ctx, receipt); err != nil {
		uc.logger.Warnw("failed to send order receipt", "error", err, "customer_id", buyer.ID())
	}
}
