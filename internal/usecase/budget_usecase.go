package usecase

import (
	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
)

// BudgetUseCase owns the budget allocation state transition.
type BudgetUseCase struct{}

// NewBudgetUseCase creates a new BudgetUseCase.
func NewBudgetUseCase() *BudgetUseCase {
	return &BudgetUseCase{}
}

// SetAllocation replaces the snapshot's budget allocation. Each fraction
// must name a known category and lie within [0, 1]; the overall sum is left
// unchecked on purpose — the engines apply fractions proportionally, and
// whether a sum other than 100% is a user error is a presentation concern.
func (uc *BudgetUseCase) SetAllocation(snap domain.Snapshot, alloc domain.Allocation) (domain.Snapshot, error) {
	if err := alloc.Validate(); err != nil {
		return snap, err
	}

	next := snap.Clone()
	next.Budget = alloc.Clone()

	return next, nil
}
