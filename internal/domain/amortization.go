package domain

import "github.com/shopspring/decimal"

// MaxScheduleMonths bounds the amortization simulation at 300 years of
// months. The ceiling is honored even when the balance has not reached zero,
// so a returned schedule may end with a positive balance.
const MaxScheduleMonths = 3600

var (
	// scheduleEpsilon is the residual balance treated as paid off.
	scheduleEpsilon = decimal.RequireFromString("0.005")
	// progressFloor is the forced principal reduction applied when the
	// payment does not even cover the month's interest. It keeps the
	// simulation terminating instead of diverging; the resulting tail of the
	// schedule is a known approximation, not a realistic amortization.
	progressFloor = decimal.RequireFromString("0.01")
)

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule is a full month-by-month payoff simulation.
type Schedule struct {
	Entries       []ScheduleEntry `json:"entries"`
	TotalMonths   int             `json:"totalMonths"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
}

// PaidOff reports whether the simulation settled the balance, as opposed to
// stopping at the iteration ceiling with debt left over. An empty schedule
// had nothing to settle.
func (s Schedule) PaidOff() bool {
	if len(s.Entries) == 0 {
		return true
	}
	return s.Entries[len(s.Entries)-1].Balance.LessThanOrEqual(scheduleEpsilon)
}

// BuildSchedule simulates paying a debt of the given principal at the given
// annual rate with a fixed monthly payment. A non-positive principal or
// payment yields an empty schedule; malformed numeric input degrades, it
// never errors. The simulation stops when the balance drops to (nearly)
// zero or at MaxScheduleMonths, whichever comes first; callers must not
// assume the final balance is zero.
func BuildSchedule(principal, apr, payment decimal.Decimal) Schedule {
	schedule := Schedule{TotalInterest: decimal.Zero}
	if !principal.IsPositive() || !payment.IsPositive() {
		return schedule
	}

	rate := MonthlyRate(apr)
	balance := principal

	for month := 1; month <= MaxScheduleMonths; month++ {
		interest := rate.Mul(balance)

		principalPart := payment.Sub(interest)
		if !principalPart.IsPositive() {
			// Underfunded payment: force minimal progress so the loop
			// terminates.
			principalPart = progressFloor
		}
		if principalPart.GreaterThan(balance) {
			principalPart = balance
		}

		balance = balance.Sub(principalPart)

		schedule.Entries = append(schedule.Entries, ScheduleEntry{
			Month:     month,
			Payment:   principalPart.Add(interest),
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
		schedule.TotalInterest = schedule.TotalInterest.Add(interest)

		if balance.LessThanOrEqual(scheduleEpsilon) {
			break
		}
	}

	schedule.TotalMonths = len(schedule.Entries)
	return schedule
}
