// Package zus computes Polish social-insurance contributions: six
// percentage-of-base lines plus a separately tiered health-insurance
// contribution.
package zus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
)

// Rates are the configured contribution percentages, echoed in results so
// inactive lines still show the rate they would use.
type Rates struct {
	Emerytalne decimal.Decimal
	Rentowe    decimal.Decimal
	Wypadkowe  decimal.Decimal
	Chorobowe  decimal.Decimal
	LaborFund  decimal.Decimal
	FEP        decimal.Decimal
}

// Result is a monthly contribution breakdown.
type Result struct {
	BaseAmount decimal.Decimal
	Rates      Rates

	Emerytalne decimal.Decimal
	Rentowe    decimal.Decimal
	Wypadkowe  decimal.Decimal
	Chorobowe  decimal.Decimal
	LaborFund  decimal.Decimal
	FEP        decimal.Decimal

	HealthInsurance     decimal.Decimal
	HealthInsuranceTier company.HealthInsuranceTier

	// TotalZUS sums the six contribution lines; TotalWithHealth adds
	// the health insurance on top.
	TotalZUS        decimal.Decimal
	TotalWithHealth decimal.Decimal

	SettingsEffectiveFrom time.Time
}

// MonthResult is a Result annotated with its calendar month.
type MonthResult struct {
	Month int
	Result
}

// YearlyTotals sums every contribution line across the months that were
// actually computed.
type YearlyTotals struct {
	Emerytalne decimal.Decimal
	Rentowe    decimal.Decimal
	Wypadkowe  decimal.Decimal
	Chorobowe  decimal.Decimal
	LaborFund  decimal.Decimal
	FEP        decimal.Decimal

	HealthInsurance decimal.Decimal
	TotalZUS        decimal.Decimal
	TotalWithHealth decimal.Decimal
}

// YearlySummary is the month-by-month breakdown for one calendar year.
// Months whose settings lookup failed are absent from both the breakdown
// and the totals.
type YearlySummary struct {
	Year          int
	Monthly       []MonthResult
	Totals        YearlyTotals
	SkippedMonths []int
}
