package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
)

// TransactionUseCase owns the transaction state transitions. Every operation
// takes a snapshot value and returns a new one; the input is never mutated.
type TransactionUseCase struct {
	idGen IDGenerator
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(idGen IDGenerator) *TransactionUseCase {
	return &TransactionUseCase{idGen: idGen}
}

// AddTransactionInput represents input for recording a transaction.
type AddTransactionInput struct {
	Timestamp   time.Time
	Description string
	Amount      decimal.Decimal
	Kind        domain.TransactionKind
	Expense     *domain.ExpenseDetail
}

// AddTransaction validates the input, assigns an id, and returns the new
// snapshot together with the created transaction.
func (uc *TransactionUseCase) AddTransaction(snap domain.Snapshot, input AddTransactionInput) (domain.Snapshot, *domain.Transaction, error) {
	tx := domain.Transaction{
		ID:          uc.idGen.Generate(),
		Timestamp:   input.Timestamp,
		Description: input.Description,
		Amount:      input.Amount,
		Kind:        input.Kind,
	}
	if input.Expense != nil {
		detail := *input.Expense
		tx.Expense = &detail
	}

	if err := tx.Validate(); err != nil {
		return snap, nil, err
	}

	next := snap.Clone()
	next.Transactions = append(next.Transactions, tx)

	return next, &tx, nil
}

// RemoveTransaction deletes a transaction by id. Transactions are immutable
// once recorded; deletion is the only way out.
func (uc *TransactionUseCase) RemoveTransaction(snap domain.Snapshot, id string) (domain.Snapshot, error) {
	idx := -1
	for i, tx := range snap.Transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, domain.ErrTransactionNotFound
	}

	next := snap.Clone()
	next.Transactions = append(next.Transactions[:idx], next.Transactions[idx+1:]...)

	return next, nil
}
