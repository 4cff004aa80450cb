package email

import (
	"context"
	"time"

	orderUsecases "github.com/stealthycommerce/stealthy/internal/application/order/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/goroutine"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

const sendTimeout = 30 * time.Second

// AsyncReceiptNotifier hands receipts to next on a background goroutine.
// Send errors are logged.
type AsyncReceiptNotifier struct {
	next   orderUsecases.ReceiptNotifier
	logger logger.Interface
}

func NewAsyncReceiptNotifier(next orderUsecases.ReceiptNotifier, logger logger.Interface) *AsyncReceiptNotifier {
	return &AsyncReceiptNotifier{next: next, logger: logger}
}

func (n *AsyncReceiptNotifier) SendOrderReceipt(ctx context.Context, receipt orderUsecases.OrderReceipt) error {
	n.dispatch(ctx, "order-receipt", func(ctx context.Context) error {
		return n.next.SendOrderReceipt(ctx, receipt)
	})
	return nil
}

func (n *AsyncReceiptNotifier) SendCancellationReceipt(ctx context.Context, receipt orderUsecases.CancellationReceipt) error {
	n.dispatch(ctx, "cancellation-receipt", func(ctx context.Context) error {
		return n.next.SendCancellationReceipt(ctx, receipt)
	})
	return nil
}

func (n *AsyncReceiptNotifier) dispatch(ctx context.Context, name string, send func(ctx context.Context) error) <-chan struct{} {
	// The request context is cancelled once the response is written.
	bg := context.WithoutCancel(ctx)
	return goroutine.SafeGo(n.logger, name, func() {
		sendCtx, cancel := context.WithTimeout(bg, sendTimeout)
		defer cancel()
		if err := send(sendCtx); err != nil {
			n.logger.Warnw("failed to send receipt", "receipt", name, "error", err)
		}
	})
}

// NopReceiptNotifier discards receipts. Used when email is disabled.
type NopReceiptNotifier struct{}

func (NopReceiptNotifier) SendOrderReceipt(context.Context, orderUsecases.OrderReceipt) error {
	return nil
}

func (NopReceiptNotifier) SendCancellationReceipt(context.Context, orderUsecases.CancellationReceipt) error {
	return nil
}

var (
	_ orderUsecases.ReceiptNotifier = (*SMTPReceiptNotifier)(nil)
	_ orderUsecases.ReceiptNotifier = (*AsyncReceiptNotifier)(nil)
	_ orderUsecases.ReceiptNotifier = NopReceiptNotifier{}
)
