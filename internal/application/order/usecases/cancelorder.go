package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/stealthycommerce/stealthy/internal/domain/order"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type CancelOrderCommand struct {
	CustomerID uint
	OrderID    uint
}

// CancelOrderUseCase cancels an active order and records its prorated refund.
type CancelOrderUseCase struct {
	orderRepo order.Repository
	clock     biztime.Clock
	logger    logger.Interface

	customers CustomerLookup
	metrics   OrderMetrics
	notifier  ReceiptNotifier
}

func NewCancelOrderUseCase(
	orderRepo order.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *CancelOrderUseCase) SetMetrics(metrics OrderMetrics) {
	uc.metrics = metrics
}

// SetReceiptNotifier enables cancellation receipts; customers resolves the recipient.
func (uc *CancelOrderUseCase) SetReceiptNotifier(notifier ReceiptNotifier, customers CustomerLookup) {
	uc.notifier = notifier
	uc.customers = customers
}

// Execute reports whether the order was cancelled. An unknown order is a
// silent false; every other failure is logged.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) bool {
	o, err := uc.orderRepo.GetByCustomerAndID(ctx, cmd.CustomerID, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to get order",
			"error", err,
			"customer_id", cmd.CustomerID,
			"order_id", cmd.OrderID,
		)
		return false
	}
	if o == nil {
		return false
	}

	now := uc.clock.Now()
	refund, err := o.Cancel(now)
	if err != nil {
		if errors.Is(err, order.ErrOrderAlreadyCancelled) {
			uc.logger.Warnw("order already cancelled",
				"customer_id", cmd.CustomerID,
				"order_id", cmd.OrderID,
			)
			return false
		}
		uc.logger.Errorw("failed to cancel order",
			"error", err,
			"customer_id", cmd.CustomerID,
			"order_id", cmd.OrderID,
			"amount_charged", o.AmountCharged().String(),
		)
		return false
	}

	if err := uc.orderRepo.SaveCancellation(ctx, o); err != nil {
		uc.logger.Errorw("failed to save order cancellation",
			"error", err,
			"customer_id", cmd.CustomerID,
			"order_id", cmd.OrderID,
		)
		return false
	}

	uc.logger.Infow("order cancelled successfully",
		"customer_id", cmd.CustomerID,
		"order_id", cmd.OrderID,
		"amount_refunded", refund.String(),
	)

	if uc.metrics != nil {
		uc.metrics.OrderCancelled(refund)
	}
	if uc.notifier != nil {
		uc.sendReceipt(ctx, o, now)
	}

	return true
}

func (uc *CancelOrderUseCase) sendReceipt(ctx context.Context, o *order.Order, now time.Time) {
	if uc.customers == nil {
		return
	}
	c, err := uc.customers.GetByID(ctx, o.CustomerID())
	if err != nil || c == nil {
		uc.logger.Warnw("cancellation receipt skipped, customer unavailable",
			"error", err,
			"customer_id", o.CustomerID(),
		)
		return
	}

	receipt := CancellationReceipt{
		Email:          c.Email(),
		Name:           c.DisplayName(),
		OrderID:        o.ID(),
		CancelledAt:    now,
		AmountCharged:  o.AmountCharged(),
		AmountRefunded: *o.AmountRefunded(),
	}
	if err := uc.notifier.SendCancellationReceipt(ctx, receipt); err != nil {
		uc.logger.Warnw("failed to send cancellation receipt", "error", err, "order_id", o.ID())
	}
}
