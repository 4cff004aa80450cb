package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var refundNow = time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateRefund(t *testing.T) {
	tests := []struct {
		name    string
		charged string
		start   time.Time
		end     time.Time
		want    string
	}{
		{
			name:    "less than a day left",
			charged: "1.99",
			start:   refundNow.Add(-30 * day),
			end:     refundNow.Add(12 * time.Hour),
			want:    "0",
		},
		{
			name:    "already expired",
			charged: "1.99",
			start:   refundNow.Add(-40 * day),
			end:     refundNow.Add(-10 * day),
			want:    "0",
		},
		{
			name:    "first day is a full refund",
			charged: "1.99",
			start:   refundNow,
			end:     refundNow.Add(30 * day),
			want:    "1.99",
		},
		{
			name:    "six days left of thirty",
			charged: "1.99",
			start:   refundNow.Add(-24*day + time.Hour),
			end:     refundNow.Add(6*day + time.Hour),
			want:    "0.46",
		},
		{
			name:    "rounds half to even",
			charged: "0.05",
			start:   refundNow.Add(-3*day + time.Hour),
			end:     refundNow.Add(day + time.Hour),
			want:    "0.02",
		},
		{
			name:    "half of a yearly plan",
			charged: "120.00",
			start:   refundNow.Add(-180 * day),
			end:     refundNow.Add(180*day + time.Minute),
			want:    "60.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateRefund(dec(tt.charged), tt.start, tt.end, refundNow)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateRefund_NotComputable(t *testing.T) {
	_, err := CalculateRefund(decimal.Zero, refundNow, refundNow.Add(30*day), refundNow)
	assert.ErrorIs(t, err, ErrRefundNotComputable)

	_, err = CalculateRefund(dec("-1"), refundNow, refundNow.Add(30*day), refundNow)
	assert.ErrorIs(t, err, ErrRefundNotComputable)

	_, err = CalculateRefund(dec("9.99"), refundNow, refundNow.Add(23*time.Hour), refundNow)
	assert.ErrorIs(t, err, ErrRefundNotComputable)
}

func TestCalculateRefund_NeverExceedsCharge(t *testing.T) {
	charged := dec("10.00")
	start := refundNow.Add(-time.Hour)
	end := start.Add(3 * day)

	got, err := CalculateRefund(charged, start, end, refundNow)
	require.NoError(t, err)

	assert.True(t, got.LessThanOrEqual(charged))
}
