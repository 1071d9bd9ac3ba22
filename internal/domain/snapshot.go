package domain

// Snapshot is the full application state handed to the engines and the
// state-transition functions. Calls never mutate a snapshot in place; every
// mutation produces a fresh value, so two snapshots never share backing
// storage.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Debts        []Debt        `json:"debts"`
	Budget       Allocation    `json:"budget"`
}

// Clone returns a deep-enough copy of the snapshot: slices and the budget
// map are duplicated, element values are immutable and shared safely except
// for the expense detail pointer, which is copied per transaction.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Budget: s.Budget.Clone()}

	if s.Transactions != nil {
		out.Transactions = make([]Transaction, len(s.Transactions))
		for i, tx := range s.Transactions {
			if tx.Expense != nil {
				detail := *tx.Expense
				tx.Expense = &detail
			}
			out.Transactions[i] = tx
		}
	}

	if s.Debts != nil {
		out.Debts = make([]Debt, len(s.Debts))
		copy(out.Debts, s.Debts)
	}

	return out
}
