package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
)

// AnalysisUseCase assembles the derived financial facts for a snapshot. The
// engines themselves are synchronous and bounded; this layer only batches
// them, simulating per-debt schedules concurrently.
type AnalysisUseCase struct {
	workers int
}

// NewAnalysisUseCase creates a new AnalysisUseCase. workers bounds the
// concurrent schedule simulations; values below 1 fall back to the default.
func NewAnalysisUseCase(workers int) *AnalysisUseCase {
	if workers < 1 {
		workers = DefaultReportWorkers
	}
	return &AnalysisUseCase{workers: workers}
}

// DebtAnalysis is the derived view of a single debt.
type DebtAnalysis struct {
	Debt           domain.Debt     `json:"debt"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Schedule       domain.Schedule `json:"schedule"`
}

// Report bundles every derived fact the engines produce for one snapshot.
type Report struct {
	SpentByCategory     map[string]decimal.Decimal `json:"spentByCategory"`
	Envelopes           map[string]decimal.Decimal `json:"envelopes"`
	TotalIncome         decimal.Decimal            `json:"totalIncome"`
	EssentialSpend      decimal.Decimal            `json:"essentialSpend"`
	TotalMonthlyPayment decimal.Decimal            `json:"totalMonthlyPayment"`
	Debts               []DebtAnalysis             `json:"debts"`
	Capacity            domain.CapacityResult      `json:"capacity"`
}

// Report computes the full derived-facts report for a snapshot: per-category
// spend, envelope balances, a payment and payoff schedule per debt, and the
// capacity analysis fed by aggregate income, the essential bucket's lifetime
// spend, and the total monthly debt payment. Cancelling the context aborts
// the per-debt batch; a completed report never carries an error.
func (uc *AnalysisUseCase) Report(ctx context.Context, snap domain.Snapshot) (*Report, error) {
	report := &Report{
		SpentByCategory: domain.SpentByCategory(snap.Transactions),
		Envelopes:       domain.DeriveEnvelopes(snap.Budget, snap.Transactions),
		TotalIncome:     domain.TotalIncome(snap.Transactions),
		Debts:           make([]DebtAnalysis, len(snap.Debts)),
	}
	report.EssentialSpend = report.SpentByCategory[domain.EssentialCategoryID]

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i, debt := range snap.Debts {
		i, debt := i, debt
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			payment := debt.MonthlyPayment()
			report.Debts[i] = DebtAnalysis{
				Debt:           debt,
				MonthlyPayment: payment,
				Schedule:       domain.BuildSchedule(debt.Principal, debt.AnnualRate, payment),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.TotalMonthlyPayment = uc.TotalMonthlyPayment(snap.Debts)
	report.Capacity = domain.ComputeCapacity(report.TotalIncome, report.EssentialSpend, report.TotalMonthlyPayment)

	return report, nil
}

// TotalMonthlyPayment sums the monthly payment across all debts.
func (uc *AnalysisUseCase) TotalMonthlyPayment(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.MonthlyPayment())
	}
	return total
}
