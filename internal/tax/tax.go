// Package tax computes Polish VAT and PIT obligations for the three
// self-employment regimes and combines them with social-insurance
// contributions into monthly and annual views.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/zus"
)

// VATResult is the VAT position for one calendar month. VATToPay may be
// negative, which is a refund position.
type VATResult struct {
	Year  int
	Month int

	IsVATPayer bool
	VATRate    decimal.Decimal

	IncomeNet decimal.Decimal
	IncomeVAT decimal.Decimal

	ExpenseNet   decimal.Decimal
	ExpenseVAT   decimal.Decimal
	ExpenseGross decimal.Decimal

	// DeductibleExpenseVAT is the input VAT actually offset against output
	// VAT; ExpenseVAT above covers every expense in the month.
	DeductibleExpenseVAT decimal.Decimal

	VATToPay decimal.Decimal
}

// PITResult is the income-tax position for one calendar month.
type PITResult struct {
	Year  int
	Month int

	TaxType     company.TaxType
	PITRateUsed decimal.Decimal

	GrossIncome        decimal.Decimal
	NetIncome          decimal.Decimal
	DeductibleExpenses decimal.Decimal
	TaxableIncome      decimal.Decimal
	ZUSDeducted        decimal.Decimal

	PITAmount decimal.Decimal
}

// MonthlySummary combines VAT, PIT and ZUS into the full monthly burden.
type MonthlySummary struct {
	Year  int
	Month int

	GrossIncome decimal.Decimal
	NetIncome   decimal.Decimal

	VAT VATResult
	PIT PITResult
	ZUS zus.Result

	TotalTaxes          decimal.Decimal
	TotalSocial         decimal.Decimal
	TotalObligations    decimal.Decimal
	NetAfterObligations decimal.Decimal
}

// RegimeOption is one annual projection in a regime comparison.
type RegimeOption struct {
	TaxType       company.TaxType
	TaxableIncome decimal.Decimal

	PIT             decimal.Decimal
	ZUS             decimal.Decimal
	HealthInsurance decimal.Decimal

	TotalObligations    decimal.Decimal
	NetAfterObligations decimal.Decimal
	EffectiveRate       decimal.Decimal
}

// RegimeComparison projects all three regimes over a full year.
type RegimeComparison struct {
	AnnualIncome   decimal.Decimal
	AnnualExpenses decimal.Decimal

	Options []RegimeOption

	Recommended      company.TaxType
	PotentialSavings decimal.Decimal
}
