package domain

import "github.com/shopspring/decimal"

// RiskBand classifies a debt-to-income ratio.
type RiskBand string

const (
	BandExcelente RiskBand = "Excelente"
	BandSano      RiskBand = "Sano"
	BandAtencion  RiskBand = "Atención"
	BandRiesgo    RiskBand = "Riesgo"
)

// DTI band thresholds. Each is the exclusive upper bound of its band: a
// ratio exactly at a threshold falls into the next band up.
var (
	dtiExcelente = decimal.RequireFromString("0.20")
	dtiSano      = decimal.RequireFromString("0.36")
	dtiAtencion  = decimal.RequireFromString("0.43")
)

// CapacityResult is the borrowing-capacity analysis for one income level.
type CapacityResult struct {
	Capacity decimal.Decimal `json:"capacity"`
	DTI      decimal.Decimal `json:"dti"`
	Band     RiskBand        `json:"band"`
}

// ComputeCapacity derives disposable capacity and a debt-to-income risk band
// from monthly income, essential spending, and the total monthly debt
// payment. Capacity is floored at zero. With no positive income the DTI is
// zero rather than undefined, which lands in the best band.
func ComputeCapacity(monthlyIncome, essentialSpend, monthlyDebtPayment decimal.Decimal) CapacityResult {
	capacity := monthlyIncome.Sub(essentialSpend).Sub(monthlyDebtPayment)
	if capacity.IsNegative() {
		capacity = decimal.Zero
	}

	dti := decimal.Zero
	if monthlyIncome.IsPositive() {
		dti = monthlyDebtPayment.Div(monthlyIncome)
	}

	return CapacityResult{Capacity: capacity, DTI: dti, Band: bandFor(dti)}
}

func bandFor(dti decimal.Decimal) RiskBand {
	switch {
	case dti.LessThan(dtiExcelente):
		return BandExcelente
	case dti.LessThan(dtiSano):
		return BandSano
	case dti.LessThan(dtiAtencion):
		return BandAtencion
	default:
		return BandRiesgo
	}
}
