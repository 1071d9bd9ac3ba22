package domain

import "github.com/shopspring/decimal"

// SpentByCategory sums expense amounts per category. Every registry category
// appears in the result, zero when nothing was spent. Expenses with no
// category or an unrecognized one are skipped, not errors. Income never
// contributes. The sum is commutative, so input order does not matter.
func SpentByCategory(txs []Transaction) map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal, len(registry))
	for _, c := range registry {
		spent[c.ID] = decimal.Zero
	}

	for _, tx := range txs {
		id, ok := tx.CategoryID()
		if !ok || !KnownCategory(id) {
			continue
		}
		spent[id] = spent[id].Add(tx.Amount)
	}

	return spent
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == KindIncome {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
