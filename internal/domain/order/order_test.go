package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, start, end time.Time, charged string) *Order {
	t.Helper()
	o, err := NewOrder(5, 9, start, end, dec(charged), TermsSnapshot{TermUnit: "monthly", TermCount: 1})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	o := newTestOrder(t, refundNow, refundNow.Add(30*day), "1.99")

	assert.Equal(t, uint(5), o.CustomerID())
	assert.Equal(t, uint(9), o.OfferID())
	assert.Equal(t, StatusActive, o.Status())
	assert.Nil(t, o.CancelDate())
	assert.Nil(t, o.AmountRefunded())
	assert.Equal(t, 1, o.Version())
}

func TestNewOrder_Validation(t *testing.T) {
	_, err := NewOrder(5, 9, refundNow, refundNow, dec("1"), TermsSnapshot{})
	assert.ErrorIs(t, err, ErrInvalidTerm)

	_, err = NewOrder(5, 9, refundNow, refundNow.Add(day), dec("-1"), TermsSnapshot{})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewOrder(0, 9, refundNow, refundNow.Add(day), dec("1"), TermsSnapshot{})
	assert.Error(t, err)
}

func TestOrder_Cancel(t *testing.T) {
	o := newTestOrder(t, refundNow.Add(-24*day+time.Hour), refundNow.Add(6*day+time.Hour), "1.99")

	refund, err := o.Cancel(refundNow)
	require.NoError(t, err)

	assert.True(t, dec("0.46").Equal(refund))
	assert.Equal(t, StatusCancelled, o.Status())
	require.NotNil(t, o.CancelDate())
	assert.Equal(t, refundNow, *o.CancelDate())
	require.NotNil(t, o.AmountRefunded())
	assert.True(t, refund.Equal(*o.AmountRefunded()))
}

func TestOrder_CancelTwiceIsRejected(t *testing.T) {
	o := newTestOrder(t, refundNow, refundNow.Add(30*day), "1.99")

	first, err := o.Cancel(refundNow)
	require.NoError(t, err)

	_, err = o.Cancel(refundNow.Add(10 * day))
	assert.ErrorIs(t, err, ErrOrderAlreadyCancelled)
	assert.True(t, first.Equal(*o.AmountRefunded()))
	assert.Equal(t, refundNow, *o.CancelDate())
}

func TestOrder_CancelNotComputableLeavesOrderActive(t *testing.T) {
	o := newTestOrder(t, refundNow, refundNow.Add(30*day), "0")

	_, err := o.Cancel(refundNow)
	assert.ErrorIs(t, err, ErrRefundNotComputable)
	assert.Equal(t, StatusActive, o.Status())
	assert.Nil(t, o.AmountRefunded())
}

func TestReconstructOrder(t *testing.T) {
	refunded := decimal.RequireFromString("0.50")
	cancelled := refundNow

	o, err := ReconstructOrder(3, 5, 9, refundNow.Add(-day), refundNow.Add(29*day), dec("1.99"),
		&cancelled, &refunded, TermsSnapshot{}, 2)
	require.NoError(t, err)
	assert.True(t, o.IsCancelled())
	assert.Equal(t, 2, o.Version())

	_, err = ReconstructOrder(3, 5, 9, refundNow, refundNow.Add(day), dec("1"), &cancelled, nil, TermsSnapshot{}, 1)
	assert.Error(t, err)

	_, err = ReconstructOrder(0, 5, 9, refundNow, refundNow.Add(day), dec("1"), nil, nil, TermsSnapshot{}, 1)
	assert.Error(t, err)
}
