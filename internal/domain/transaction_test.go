package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		tx          Transaction
		expectedErr error
	}{
		{
			name: "valid income",
			tx: Transaction{
				ID:        "01HTEST",
				Timestamp: time.Now(),
				Amount:    decimal.NewFromInt(1000),
				Kind:      KindIncome,
			},
		},
		{
			name: "valid categorized expense",
			tx: Transaction{
				ID:      "01HTEST",
				Amount:  decimal.NewFromInt(50),
				Kind:    KindExpense,
				Expense: &ExpenseDetail{CategoryID: "o", Class: ExpenseFixed, Necessity: ExpenseNecessary},
			},
		},
		{
			name: "valid uncategorized expense",
			tx: Transaction{
				Amount:  decimal.NewFromInt(50),
				Kind:    KindExpense,
				Expense: &ExpenseDetail{Class: ExpenseVariable, Necessity: ExpenseDiscretionary},
			},
		},
		{
			name: "negative amount",
			tx: Transaction{
				Amount: decimal.NewFromInt(-1),
				Kind:   KindIncome,
			},
			expectedErr: ErrNegativeAmount,
		},
		{
			name: "income carrying expense detail",
			tx: Transaction{
				Amount:  decimal.NewFromInt(10),
				Kind:    KindIncome,
				Expense: &ExpenseDetail{CategoryID: "o"},
			},
			expectedErr: ErrUnexpectedExpenseDetail,
		},
		{
			name: "expense missing detail",
			tx: Transaction{
				Amount: decimal.NewFromInt(10),
				Kind:   KindExpense,
			},
			expectedErr: ErrMissingExpenseDetail,
		},
		{
			name: "expense with unknown category",
			tx: Transaction{
				Amount:  decimal.NewFromInt(10),
				Kind:    KindExpense,
				Expense: &ExpenseDetail{CategoryID: "groceries"},
			},
			expectedErr: ErrUnknownCategory,
		},
		{
			name: "unknown kind",
			tx: Transaction{
				Amount: decimal.NewFromInt(10),
				Kind:   "transfer",
			},
			expectedErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_CategoryID(t *testing.T) {
	income := Transaction{Kind: KindIncome, Amount: decimal.NewFromInt(100)}
	if _, ok := income.CategoryID(); ok {
		t.Fatal("income must not expose a category")
	}

	uncategorized := Transaction{Kind: KindExpense, Expense: &ExpenseDetail{}}
	if _, ok := uncategorized.CategoryID(); ok {
		t.Fatal("uncategorized expense must not expose a category")
	}

	categorized := Transaction{Kind: KindExpense, Expense: &ExpenseDetail{CategoryID: "a"}}
	id, ok := categorized.CategoryID()
	if !ok || id != "a" {
		t.Fatalf("expected category %q, got %q (ok=%v)", "a", id, ok)
	}
}
