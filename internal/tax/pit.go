package tax

import (
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/money"
)

var (
	hundred = decimal.NewFromInt(100)

	liniowyRate         = decimal.NewFromFloat(19.00)
	progressiveLowRate  = decimal.NewFromFloat(12.00)
	progressiveHighRate = decimal.NewFromFloat(32.00)

	// The progressive scale has two thresholds in this codebase: the
	// annual statutory one used for year-scale projections, and the
	// monthly one used by the monthly engine. They are not multiples of
	// each other and must stay separate.
	annualThreshold  = decimal.NewFromFloat(120000.00)
	monthlyThreshold = decimal.NewFromFloat(10000.00)
)

// PITForIncome computes the annual income tax for one regime. Ryczałt taxes
// the full income at the configured rate and ignores the ZUS deduction.
// Liniowy and progresywny deduct zusDeductible first, flooring the taxable
// base at zero, and progresywny applies the annual 12%/32% scale.
// The second return value is the regime's nominal rate: the ryczałt rate
// itself, 19% for liniowy, 12% for progresywny below the annual threshold
// and the blended pit-over-taxable rate above it.
func PITForIncome(income decimal.Decimal, taxType company.TaxType, ryczaltRate, zusDeductible decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch taxType {
	case company.TaxRyczalt:
		return money.Round(income.Mul(ryczaltRate).Div(hundred)), ryczaltRate
	case company.TaxLiniowy:
		taxable := floorZero(income.Sub(zusDeductible))
		pit := money.Round(taxable.Mul(liniowyRate).Div(hundred))

		if income.LessThanOrEqual(decimal.Zero) {
			return pit, decimal.Zero
		}

		return pit, liniowyRate
	case company.TaxProgresywny:
		taxable := floorZero(income.Sub(zusDeductible))
		if taxable.LessThanOrEqual(annualThreshold) {
			return progressiveTax(taxable, annualThreshold), progressiveLowRate
		}

		pit := progressiveTax(taxable, annualThreshold)

		return pit, money.Round(pit.Div(taxable).Mul(hundred))
	default:
		return decimal.Zero, decimal.Zero
	}
}

// progressiveTax applies the two-bracket scale around the given threshold.
func progressiveTax(taxable, threshold decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(threshold) {
		return money.Round(taxable.Mul(progressiveLowRate).Div(hundred))
	}

	low := money.Round(threshold.Mul(progressiveLowRate).Div(hundred))
	high := money.Round(taxable.Sub(threshold).Mul(progressiveHighRate).Div(hundred))

	return low.Add(high)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
