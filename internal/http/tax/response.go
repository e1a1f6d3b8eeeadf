package tax

import (
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/tax"
	"github.com/witmar/infirma/internal/zus"
)

type vatResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	IsVATPayer bool            `json:"is_vat_payer"`
	VATRate    decimal.Decimal `json:"vat_rate"`

	IncomeNet decimal.Decimal `json:"income_net"`
	IncomeVAT decimal.Decimal `json:"income_vat"`

	ExpenseNet           decimal.Decimal `json:"expense_net"`
	ExpenseVAT           decimal.Decimal `json:"expense_vat"`
	ExpenseGross         decimal.Decimal `json:"expense_gross"`
	DeductibleExpenseVAT decimal.Decimal `json:"deductible_expense_vat"`

	VATToPay decimal.Decimal `json:"vat_to_pay"`
}

func toVATResponse(r *tax.VATResult) vatResponse {
	return vatResponse{
		Year:                 r.Year,
		Month:                r.Month,
		IsVATPayer:           r.IsVATPayer,
		VATRate:              r.VATRate,
		IncomeNet:            r.IncomeNet,
		IncomeVAT:            r.IncomeVAT,
		ExpenseNet:           r.ExpenseNet,
		ExpenseVAT:           r.ExpenseVAT,
		ExpenseGross:         r.ExpenseGross,
		DeductibleExpenseVAT: r.DeductibleExpenseVAT,
		VATToPay:             r.VATToPay,
	}
}

type pitResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TaxType     company.TaxType `json:"tax_type"`
	PITRateUsed decimal.Decimal `json:"pit_rate_used"`

	GrossIncome        decimal.Decimal `json:"gross_income"`
	NetIncome          decimal.Decimal `json:"net_income"`
	DeductibleExpenses decimal.Decimal `json:"deductible_expenses"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	ZUSDeducted        decimal.Decimal `json:"zus_deducted"`

	PITAmount decimal.Decimal `json:"pit_amount"`
}

func toPITResponse(r *tax.PITResult) pitResponse {
	return pitResponse{
		Year:               r.Year,
		Month:              r.Month,
		TaxType:            r.TaxType,
		PITRateUsed:        r.PITRateUsed,
		GrossIncome:        r.GrossIncome,
		NetIncome:          r.NetIncome,
		DeductibleExpenses: r.DeductibleExpenses,
		TaxableIncome:      r.TaxableIncome,
		ZUSDeducted:        r.ZUSDeducted,
		PITAmount:          r.PITAmount,
	}
}

type zusBlockResponse struct {
	Emerytalne decimal.Decimal `json:"emerytalne"`
	Rentowe    decimal.Decimal `json:"rentowe"`
	Wypadkowe  decimal.Decimal `json:"wypadkowe"`
	Chorobowe  decimal.Decimal `json:"chorobowe"`
	LaborFund  decimal.Decimal `json:"labor_fund"`
	FEP        decimal.Decimal `json:"fep"`

	HealthInsurance decimal.Decimal `json:"health_insurance"`
	TotalZUS        decimal.Decimal `json:"total_zus"`
	TotalWithHealth decimal.Decimal `json:"total_with_health"`
}

func toZUSBlock(r zus.Result) zusBlockResponse {
	return zusBlockResponse{
		Emerytalne:      r.Emerytalne,
		Rentowe:         r.Rentowe,
		Wypadkowe:       r.Wypadkowe,
		Chorobowe:       r.Chorobowe,
		LaborFund:       r.LaborFund,
		FEP:             r.FEP,
		HealthInsurance: r.HealthInsurance,
		TotalZUS:        r.TotalZUS,
		TotalWithHealth: r.TotalWithHealth,
	}
}

type summaryResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	GrossIncome decimal.Decimal `json:"gross_income"`
	NetIncome   decimal.Decimal `json:"net_income"`

	VAT vatResponse      `json:"vat"`
	PIT pitResponse      `json:"pit"`
	ZUS zusBlockResponse `json:"zus"`

	TotalTaxes          decimal.Decimal `json:"total_taxes"`
	TotalSocial         decimal.Decimal `json:"total_social"`
	TotalObligations    decimal.Decimal `json:"total_obligations"`
	NetAfterObligations decimal.Decimal `json:"net_after_obligations"`
}

func toSummaryResponse(s *tax.MonthlySummary) summaryResponse {
	return summaryResponse{
		Year:                s.Year,
		Month:               s.Month,
		GrossIncome:         s.GrossIncome,
		NetIncome:           s.NetIncome,
		VAT:                 toVATResponse(&s.VAT),
		PIT:                 toPITResponse(&s.PIT),
		ZUS:                 toZUSBlock(s.ZUS),
		TotalTaxes:          s.TotalTaxes,
		TotalSocial:         s.TotalSocial,
		TotalObligations:    s.TotalObligations,
		NetAfterObligations: s.NetAfterObligations,
	}
}

type regimeOptionResponse struct {
	TaxType       company.TaxType `json:"tax_type"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`

	PIT             decimal.Decimal `json:"pit"`
	ZUS             decimal.Decimal `json:"zus"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`

	TotalObligations    decimal.Decimal `json:"total_obligations"`
	NetAfterObligations decimal.Decimal `json:"net_after_obligations"`
	EffectiveRate       decimal.Decimal `json:"effective_rate"`
}

type comparisonResponse struct {
	AnnualIncome   decimal.Decimal `json:"annual_income"`
	AnnualExpenses decimal.Decimal `json:"annual_expenses"`

	Options []regimeOptionResponse `json:"options"`

	Recommended      company.TaxType `json:"recommended"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
}

func toComparisonResponse(c *tax.RegimeComparison) comparisonResponse {
	out := comparisonResponse{
		AnnualIncome:     c.AnnualIncome,
		AnnualExpenses:   c.AnnualExpenses,
		Options:          make([]regimeOptionResponse, 0, len(c.Options)),
		Recommended:      c.Recommended,
		PotentialSavings: c.PotentialSavings,
	}

	for _, option := range c.Options {
		out.Options = append(out.Options, regimeOptionResponse{
			TaxType:             option.TaxType,
			TaxableIncome:       option.TaxableIncome,
			PIT:                 option.PIT,
			ZUS:                 option.ZUS,
			HealthInsurance:     option.HealthInsurance,
			TotalObligations:    option.TotalObligations,
			NetAfterObligations: option.NetAfterObligations,
			EffectiveRate:       option.EffectiveRate,
		})
	}

	return out
}
