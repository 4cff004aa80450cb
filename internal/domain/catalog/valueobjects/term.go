// Package valueobjects holds catalog value types.
package valueobjects

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
)

// TermUnit is the billing period of a product. Products store the unit as
// free text; only the two recognized values change behavior.
type TermUnit string

const (
	TermUnitMonthly  TermUnit = "monthly"
	TermUnitAnnually TermUnit = "annually"
)

// ParseTermUnit folds raw (trimmed, Unicode case-insensitive) to a known unit.
// Nil, empty and unrecognized values are monthly.
func ParseTermUnit(raw *string) TermUnit {
	if raw == nil {
		return TermUnitMonthly
	}
	// A Caser carries state, so one is built per call.
	folded := cases.Fold().String(strings.TrimSpace(*raw))
	if folded == string(TermUnitAnnually) {
		return TermUnitAnnually
	}
	return TermUnitMonthly
}

func (u TermUnit) String() string {
	return string(u)
}

// Advance adds count units to start using calendar arithmetic.
func (u TermUnit) Advance(start time.Time, count int) time.Time {
	if u == TermUnitAnnually {
		return biztime.AddYears(start, count)
	}
	return biztime.AddMonths(start, count)
}

// NormalizeTermCount returns the number of terms an offer grants: nil or
// non-positive counts mean a single term.
func NormalizeTermCount(count *int) int {
	if count == nil || *count <= 0 {
		return 1
	}
	return *count
}

// ResolveEndDate returns the end of a subscription starting at start for
// termCount periods of termUnit.
func ResolveEndDate(start time.Time, termUnit *string, termCount *int) time.Time {
	return ParseTermUnit(termUnit).Advance(start, NormalizeTermCount(termCount))
}
