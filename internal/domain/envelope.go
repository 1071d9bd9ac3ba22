package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DeriveEnvelopes replays the transaction history in chronological order and
// returns the resulting per-category fund balance. Each income event adds
// amount × fraction to every category's envelope, using the allocation as
// given — fractions that do not sum to 1 are applied proportionally, never
// normalized. Each categorized expense subtracts its full amount from its
// category's envelope. Balances are allowed to go negative so overspending
// stays visible.
//
// Timestamp ties keep the input's relative order, which makes the result
// reproducible run to run. The final totals are order-independent today, but
// the chronological walk is load-bearing for any future reporting of
// intermediate balances, so it is kept deliberate rather than incidental.
func DeriveEnvelopes(alloc Allocation, txs []Transaction) map[string]decimal.Decimal {
	envelopes := make(map[string]decimal.Decimal, len(registry))
	for _, c := range registry {
		envelopes[c.ID] = decimal.Zero
	}

	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	for _, tx := range ordered {
		switch tx.Kind {
		case KindIncome:
			for _, c := range registry {
				share := tx.Amount.Mul(alloc.Fraction(c.ID))
				envelopes[c.ID] = envelopes[c.ID].Add(share)
			}
		case KindExpense:
			id, ok := tx.CategoryID()
			if !ok || !KnownCategory(id) {
				continue
			}
			envelopes[id] = envelopes[id].Sub(tx.Amount)
		}
	}

	return envelopes
}
