package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a loan to amortize. TermMonths and MinPayment are optional: a zero
// or negative value means absent. Normally exactly one of them drives the
// payment calculation; when both are set the explicit minimum payment wins
// and the term is informational only.
type Debt struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annualRate"`
	TermMonths int             `json:"termMonths,omitempty"`
	MinPayment decimal.Decimal `json:"minPayment,omitempty"`
	StartedAt  time.Time       `json:"startedAt"`
}

var twelve = decimal.NewFromInt(12)

// MonthlyRate converts an annual percentage rate to its monthly equivalent.
func MonthlyRate(apr decimal.Decimal) decimal.Decimal {
	return apr.Div(twelve)
}

// MonthlyPayment computes the debt's monthly payment.
//
// An explicit MinPayment > 0 is returned unconditionally. Otherwise the
// standard level-payment annuity applies over TermMonths; without a positive
// rate and term there is no basis to compute one, so the payment is zero and
// callers get an empty schedule downstream. Degenerate input never errors.
func (d Debt) MonthlyPayment() decimal.Decimal {
	if d.MinPayment.IsPositive() {
		return d.MinPayment
	}

	rate := MonthlyRate(d.AnnualRate)
	if !rate.IsPositive() || d.TermMonths <= 0 {
		return decimal.Zero
	}

	// payment = rate × principal × (1+rate)^term / ((1+rate)^term − 1)
	one := decimal.NewFromInt(1)
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(d.TermMonths)))
	return rate.Mul(d.Principal).Mul(growth).Div(growth.Sub(one))
}

// Validate checks the creation-side invariants. Engines never call it.
func (d Debt) Validate() error {
	if d.Name == "" {
		return ErrEmptyDebtName
	}
	if !d.Principal.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidPrincipal, d.Principal)
	}
	if d.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeRate, d.AnnualRate)
	}
	if d.TermMonths < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTerm, d.TermMonths)
	}
	if d.MinPayment.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeMinPayment, d.MinPayment)
	}
	return nil
}
