package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocation maps a category id to the fraction of every income event routed
// into that category's envelope. The fractions are not required to sum to 1:
// the engines apply them proportionally as given, so an allocation summing to
// 0.5 routes half of each income and leaves the rest unassigned. Whether the
// sum should be enforced at 100% is a caller-side concern.
type Allocation map[string]decimal.Decimal

// Clone returns an independent copy of the allocation.
func (a Allocation) Clone() Allocation {
	if a == nil {
		return nil
	}
	out := make(Allocation, len(a))
	for id, frac := range a {
		out[id] = frac
	}
	return out
}

// Fraction returns the fraction allocated to a category, zero when unset.
func (a Allocation) Fraction(categoryID string) decimal.Decimal {
	return a[categoryID]
}

// Validate checks that every entry names a known category and carries a
// fraction within [0, 1]. The sum of fractions is deliberately unchecked.
func (a Allocation) Validate() error {
	for id, frac := range a {
		if !KnownCategory(id) {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, id)
		}
		if frac.IsNegative() || frac.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s=%s", ErrInvalidFraction, id, frac)
		}
	}
	return nil
}
