package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
)

// DebtUseCase owns the debt state transitions.
type DebtUseCase struct {
	idGen IDGenerator
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(idGen IDGenerator) *DebtUseCase {
	return &DebtUseCase{idGen: idGen}
}

// AddDebtInput represents input for registering a debt. TermMonths and
// MinPayment are both optional; leave them zero when absent.
type AddDebtInput struct {
	Name       string
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	TermMonths int
	MinPayment decimal.Decimal
	StartedAt  time.Time
}

// AddDebt validates the input, assigns an id, and returns the new snapshot
// together with the created debt.
func (uc *DebtUseCase) AddDebt(snap domain.Snapshot, input AddDebtInput) (domain.Snapshot, *domain.Debt, error) {
	debt := domain.Debt{
		ID:         uc.idGen.Generate(),
		Name:       input.Name,
		Principal:  input.Principal,
		AnnualRate: input.AnnualRate,
		TermMonths: input.TermMonths,
		MinPayment: input.MinPayment,
		StartedAt:  input.StartedAt,
	}

	if err := debt.Validate(); err != nil {
		return snap, nil, err
	}

	next := snap.Clone()
	next.Debts = append(next.Debts, debt)

	return next, &debt, nil
}

// RemoveDebt deletes a debt by id.
func (uc *DebtUseCase) RemoveDebt(snap domain.Snapshot, id string) (domain.Snapshot, error) {
	idx := -1
	for i, d := range snap.Debts {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, domain.ErrDebtNotFound
	}

	next := snap.Clone()
	next.Debts = append(next.Debts[:idx], next.Debts[idx+1:]...)

	return next, nil
}
