package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
)

// CalculateRefund prorates charged over the whole days of [start, end).
//
// A subscription with whole days left is refunded for those days plus the
// current one, rounded half-to-even to cents and never more than charged.
// With no whole day left the refund is zero. ErrRefundNotComputable is
// returned when nothing was charged or the term is shorter than a day.
func CalculateRefund(charged decimal.Decimal, start, end, now time.Time) (decimal.Decimal, error) {
	originalDays := biztime.WholeDays(start, end)
	if charged.Sign() <= 0 || originalDays <= 0 {
		return decimal.Zero, ErrRefundNotComputable
	}

	daysRemaining := biztime.WholeDays(now, end)
	if daysRemaining <= 0 {
		return decimal.Zero, nil
	}

	perDay := charged.Div(decimal.NewFromInt(int64(originalDays)))
	refund := perDay.Mul(decimal.NewFromInt(int64(daysRemaining + 1))).RoundBank(2)
	if refund.GreaterThan(charged) {
		return charged, nil
	}
	return refund, nil
}
