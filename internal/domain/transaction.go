package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tells whether a transaction adds or removes money.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// ExpenseClass distinguishes recurring fixed costs from variable ones.
type ExpenseClass string

const (
	ExpenseFixed    ExpenseClass = "fixed"
	ExpenseVariable ExpenseClass = "variable"
)

// ExpenseNecessity distinguishes must-pay expenses from discretionary ones.
type ExpenseNecessity string

const (
	ExpenseNecessary     ExpenseNecessity = "necessary"
	ExpenseDiscretionary ExpenseNecessity = "discretionary"
)

// ExpenseDetail carries the fields that exist only on expenses. CategoryID
// may be empty; an uncategorized expense stays out of every bucket.
type ExpenseDetail struct {
	CategoryID string           `json:"category,omitempty"`
	Class      ExpenseClass     `json:"class"`
	Necessity  ExpenseNecessity `json:"necessity"`
}

// Transaction is a single immutable money event. Amount is always a
// non-negative magnitude; direction comes from Kind, never from a sign.
// Expense is nil unless Kind is KindExpense, so the expense-only fields are
// unreachable on income.
type Transaction struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	Expense     *ExpenseDetail  `json:"expense,omitempty"`
}

// CategoryID returns the expense's category id, if it has one.
func (t Transaction) CategoryID() (string, bool) {
	if t.Kind != KindExpense || t.Expense == nil || t.Expense.CategoryID == "" {
		return "", false
	}
	return t.Expense.CategoryID, true
}

// Validate checks the creation-side invariants. The calculation engines
// never call it: malformed values reaching them degrade per the
// total-function rules instead of erroring.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	switch t.Kind {
	case KindIncome:
		if t.Expense != nil {
			return ErrUnexpectedExpenseDetail
		}
	case KindExpense:
		if t.Expense == nil {
			return ErrMissingExpenseDetail
		}
		if t.Expense.CategoryID != "" && !KnownCategory(t.Expense.CategoryID) {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, t.Expense.CategoryID)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}

	return nil
}
