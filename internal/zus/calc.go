package zus

import (
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/money"
)

var (
	hundred = decimal.NewFromInt(100)

	// Health insurance is always 9% of its tier-specific base.
	healthRate = decimal.NewFromFloat(9.0)

	lowTierFactor    = decimal.NewFromFloat(0.60)
	mediumTierFactor = decimal.NewFromFloat(0.75)
	highTierFloor    = decimal.NewFromFloat(0.75)
)

// Contribution computes a single contribution line as a percentage of the
// base. Non-positive bases and negative rates yield zero.
func Contribution(base, rate decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) || rate.IsNegative() {
		return decimal.Zero
	}
	return money.Round(base.Mul(rate).Div(hundred))
}

// HealthInsurance computes the monthly health-insurance contribution for
// the given tier. Low and medium tiers are fixed fractions of the average
// salary and ignore income. The high tier is 9% of monthly income, floored
// at 75% of the average salary.
func HealthInsurance(tier company.HealthInsuranceTier, monthlyIncome, averageSalary decimal.Decimal) decimal.Decimal {
	var base decimal.Decimal
	switch tier {
	case company.TierLow:
		base = averageSalary.Mul(lowTierFactor)
	case company.TierMedium:
		base = averageSalary.Mul(mediumTierFactor)
	case company.TierHigh:
		floor := averageSalary.Mul(highTierFloor)
		base = monthlyIncome
		if base.LessThan(floor) {
			base = floor
		}
	default:
		base = averageSalary.Mul(mediumTierFactor)
	}
	return Contribution(base, healthRate)
}
