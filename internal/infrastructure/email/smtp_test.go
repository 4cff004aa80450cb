package email

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	orderUsecases "github.com/stealthycommerce/stealthy/internal/application/order/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

type capturedMail struct {
	from string
	to   []string
	body string
}

func capturingSender(out *[]capturedMail, err error) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		var buf bytes.Buffer
		if _, werr := msg.WriteTo(&buf); werr != nil {
			return werr
		}
		*out = append(*out, capturedMail{from: from, to: to, body: buf.String()})
		return err
	}
}

func testConfig() SMTPConfig {
	return SMTPConfig{FromAddress: "shop@example.com", FromName: "Stealthy"}
}

func TestSMTPReceiptNotifier_SendOrderReceipt(t *testing.T) {
	var sent []capturedMail
	n := NewReceiptNotifierWithSender(testConfig(), markdown.NewRenderer(), capturingSender(&sent, nil))

	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	err := n.SendOrderReceipt(context.Background(), orderUsecases.OrderReceipt{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
		Lines: []orderUsecases.ReceiptLine{{
			OrderID:     21,
			ProductName: "Planner",
			Brand:       "Stealthy",
			Description: "**Monthly** refills",
			Amount:      decimal.RequireFromString("1.99"),
			StartDate:   start,
			EndDate:     start.AddDate(0, 1, 0),
		}},
	})

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "shop@example.com", sent[0].from)
	assert.Equal(t, []string{"ada@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].body, "Subject: Your order receipt")
	assert.Contains(t, sent[0].body, "Stealthy Planner")
	assert.Contains(t, sent[0].body, "2024-01-31 to 2024-03-02")
	assert.Contains(t, sent[0].body, "Total charged: 1.99")
}

func TestSMTPReceiptNotifier_SendCancellationReceipt(t *testing.T) {
	var sent []capturedMail
	n := NewReceiptNotifierWithSender(testConfig(), markdown.NewRenderer(), capturingSender(&sent, nil))

	err := n.SendCancellationReceipt(context.Background(), orderUsecases.CancellationReceipt{
		Email:          "ada@example.com",
		Name:           "Ada",
		OrderID:        5,
		CancelledAt:    time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		AmountCharged:  decimal.RequireFromString("1.99"),
		AmountRefunded: decimal.RequireFromString("0.46"),
	})

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "Order #5 cancelled")
	assert.Contains(t, sent[0].body, "Amount refunded: 0.46")
}

func TestSMTPReceiptNotifier_SendFailure(t *testing.T) {
	var sent []capturedMail
	n := NewReceiptNotifierWithSender(testConfig(), markdown.NewRenderer(), capturingSender(&sent, errors.New("550 rejected")))

	err := n.SendCancellationReceipt(context.Background(), orderUsecases.CancellationReceipt{Email: "ada@example.com", OrderID: 1})

	assert.ErrorContains(t, err, "failed to send email")
}

type failingNotifier struct{}

func (failingNotifier) SendOrderReceipt(context.Context, orderUsecases.OrderReceipt) error {
	return errors.New("smtp down")
}

func (failingNotifier) SendCancellationReceipt(context.Context, orderUsecases.CancellationReceipt) error {
	panic("boom")
}

func TestAsyncReceiptNotifier_LogsFailures(t *testing.T) {
	log := loggertest.NewRecorder()
	n := NewAsyncReceiptNotifier(failingNotifier{}, log)

	done := n.dispatch(context.Background(), "order-receipt", func(ctx context.Context) error {
		return failingNotifier{}.SendOrderReceipt(ctx, orderUsecases.OrderReceipt{})
	})
	<-done
	assert.Len(t, log.EntriesAt("warn"), 1)

	done = n.dispatch(context.Background(), "cancellation-receipt", func(ctx context.Context) error {
		return failingNotifier{}.SendCancellationReceipt(ctx, orderUsecases.CancellationReceipt{})
	})
	<-done
	assert.Len(t, log.EntriesAt("error"), 1)
}

func TestAsyncReceiptNotifier_ReturnsImmediately(t *testing.T) {
	n := NewAsyncReceiptNotifier(NopReceiptNotifier{}, loggertest.NewRecorder())

	assert.NoError(t, n.SendOrderReceipt(context.Background(), orderUsecases.OrderReceipt{}))
	assert.NoError(t, n.SendCancellationReceipt(context.Background(), orderUsecases.CancellationReceipt{}))
}
