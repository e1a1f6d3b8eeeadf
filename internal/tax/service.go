package tax

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/money"
	"github.com/witmar/infirma/internal/zus"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=tax
type SettingsSource interface {
	TaxSettings(ctx context.Context) (*company.TaxSettings, error)
}

type ExpenseSummarizer interface {
	SumExpensesInPeriod(ctx context.Context, from, to time.Time) (expense.PeriodTotals, error)
}

type ZUSCalculator interface {
	Monthly(ctx context.Context, monthlyIncome decimal.Decimal) (*zus.Result, error)
}

var twelve = decimal.NewFromInt(12)

type Service struct {
	settings SettingsSource
	expenses ExpenseSummarizer
	zus      ZUSCalculator
}

func NewService(settings SettingsSource, expenses ExpenseSummarizer, zusCalc ZUSCalculator) *Service {
	return &Service{settings: settings, expenses: expenses, zus: zusCalc}
}

// MonthlyVAT computes the VAT position for one calendar month. Income-side
// VAT is not aggregated from invoices yet and reports as zero, so a VAT
// payer with deductible expense VAT lands in a refund position.
func (s *Service) MonthlyVAT(ctx context.Context, year, month int) (*VATResult, error) {
	settings, err := s.settings.TaxSettings(ctx)
	if err != nil {
		return nil, err
	}

	from, to := expense.MonthBounds(year, month)

	totals, err := s.expenses.SumExpensesInPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &VATResult{
		Year:                 year,
		Month:                month,
		IsVATPayer:           settings.IsVATPayer,
		VATRate:              settings.VATRate,
		IncomeNet:            decimal.Zero,
		IncomeVAT:            decimal.Zero,
		ExpenseNet:           totals.TotalNet,
		ExpenseVAT:           totals.TotalVAT,
		ExpenseGross:         totals.TotalGross,
		DeductibleExpenseVAT: totals.DeductibleVAT,
	}

	if settings.IsVATPayer {
		result.VATToPay = money.Round(result.IncomeVAT.Sub(totals.DeductibleVAT))
	} else {
		result.VATToPay = decimal.Zero
	}

	return result, nil
}

// MonthlyPIT computes the income tax for one calendar month at the given
// gross income. When ZUS settings are missing, liniowy taxes the undeduced
// base at 19% and progresywny falls back to a flat 12% with no bracket
// split.
func (s *Service) MonthlyPIT(ctx context.Context, year, month int, grossIncome decimal.Decimal) (*PITResult, error) {
	settings, err := s.settings.TaxSettings(ctx)
	if err != nil {
		return nil, err
	}

	from, to := expense.MonthBounds(year, month)

	totals, err := s.expenses.SumExpensesInPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	net := decimal.Zero
	if grossIncome.GreaterThan(decimal.Zero) {
		multiplier := decimal.NewFromInt(1).Add(settings.VATRate.Div(hundred))
		net = money.Round(grossIncome.Div(multiplier))
	}

	result := &PITResult{
		Year:               year,
		Month:              month,
		TaxType:            settings.TaxType,
		GrossIncome:        grossIncome,
		NetIncome:          net,
		DeductibleExpenses: totals.DeductibleNet,
		TaxableIncome:      floorZero(net.Sub(totals.DeductibleNet)),
	}

	switch settings.TaxType {
	case company.TaxRyczalt:
		// Ryczałt taxes revenue, not profit: expenses are not deducted.
		result.PITRateUsed = settings.PITRyczaltRate
		result.PITAmount = money.Round(net.Mul(settings.PITRyczaltRate).Div(hundred))
	case company.TaxLiniowy:
		afterZUS, zusDeducted, _, err := s.deductMonthlyZUS(ctx, net, result.TaxableIncome)
		if err != nil {
			return nil, err
		}

		result.ZUSDeducted = zusDeducted
		result.PITRateUsed = liniowyRate
		result.PITAmount = money.Round(afterZUS.Mul(liniowyRate).Div(hundred))
	case company.TaxProgresywny:
		afterZUS, zusDeducted, deducted, err := s.deductMonthlyZUS(ctx, net, result.TaxableIncome)
		if err != nil {
			return nil, err
		}

		result.ZUSDeducted = zusDeducted
		result.PITRateUsed = liniowyRate

		if deducted {
			result.PITAmount = progressiveTax(afterZUS, monthlyThreshold)
		} else {
			// Without configured contributions the monthly estimate taxes
			// the whole base at the lower rate, even above the threshold.
			result.PITAmount = money.Round(afterZUS.Mul(progressiveLowRate).Div(hundred))
		}
	}

	return result, nil
}

// deductMonthlyZUS subtracts the month's social contributions from the
// taxable base. Missing ZUS settings degrade to no deduction instead of
// failing the tax calculation; the third return value reports whether a
// deduction actually happened.
func (s *Service) deductMonthlyZUS(ctx context.Context, netIncome, taxable decimal.Decimal) (decimal.Decimal, decimal.Decimal, bool, error) {
	contributions, err := s.zus.Monthly(ctx, netIncome)
	if err != nil {
		if errors.Is(err, company.ErrZUSSettingsNotFound) {
			return taxable, decimal.Zero, false, nil
		}

		return decimal.Zero, decimal.Zero, false, err
	}

	return floorZero(taxable.Sub(contributions.TotalZUS)), contributions.TotalZUS, true, nil
}

// MonthlySummary combines the month's VAT, PIT and ZUS into one view. A
// missing ZUS configuration zeroes the ZUS block rather than failing the
// whole summary; VAT and PIT errors propagate.
func (s *Service) MonthlySummary(ctx context.Context, year, month int, grossIncome decimal.Decimal) (*MonthlySummary, error) {
	vat, err := s.MonthlyVAT(ctx, year, month)
	if err != nil {
		return nil, err
	}

	pit, err := s.MonthlyPIT(ctx, year, month, grossIncome)
	if err != nil {
		return nil, err
	}

	var contributions zus.Result

	monthly, err := s.zus.Monthly(ctx, pit.NetIncome)
	switch {
	case err == nil:
		contributions = *monthly
	case errors.Is(err, company.ErrZUSSettingsNotFound):
		// Summary still renders with a zeroed social block.
	default:
		return nil, err
	}

	summary := &MonthlySummary{
		Year:        year,
		Month:       month,
		GrossIncome: grossIncome,
		NetIncome:   pit.NetIncome,
		VAT:         *vat,
		PIT:         *pit,
		ZUS:         contributions,
	}

	summary.TotalTaxes = money.Round(vat.VATToPay.Add(pit.PITAmount))
	summary.TotalSocial = contributions.TotalWithHealth
	summary.TotalObligations = money.Round(summary.TotalTaxes.Add(summary.TotalSocial))
	summary.NetAfterObligations = money.Round(grossIncome.Sub(summary.TotalObligations))

	return summary, nil
}

// CompareRegimes projects all three regimes over a year at the given income
// and expense level. Annual contributions are the monthly result at one
// twelfth of the income, times twelve; a missing ZUS configuration zeroes
// the contribution lines. When includeZUS is false the projection covers
// income tax only.
func (s *Service) CompareRegimes(ctx context.Context, annualIncome, annualExpenses decimal.Decimal, includeZUS bool) (*RegimeComparison, error) {
	settings, err := s.settings.TaxSettings(ctx)
	if err != nil {
		return nil, err
	}

	annualZUS := decimal.Zero
	annualHealth := decimal.Zero

	if includeZUS {
		monthly, err := s.zus.Monthly(ctx, money.Round(annualIncome.Div(twelve)))
		switch {
		case err == nil:
			annualZUS = monthly.TotalZUS.Mul(twelve)
			annualHealth = monthly.HealthInsurance.Mul(twelve)
		case errors.Is(err, company.ErrZUSSettingsNotFound):
		default:
			return nil, err
		}
	}

	profit := floorZero(annualIncome.Sub(annualExpenses))

	comparison := &RegimeComparison{
		AnnualIncome:   annualIncome,
		AnnualExpenses: annualExpenses,
	}

	for _, taxType := range []company.TaxType{company.TaxRyczalt, company.TaxLiniowy, company.TaxProgresywny} {
		base := profit
		if taxType == company.TaxRyczalt {
			base = annualIncome
		}

		pit, _ := PITForIncome(base, taxType, settings.PITRyczaltRate, annualZUS)

		option := RegimeOption{
			TaxType:          taxType,
			TaxableIncome:    base,
			PIT:              pit,
			ZUS:              annualZUS,
			HealthInsurance:  annualHealth,
			TotalObligations: money.Round(pit.Add(annualZUS).Add(annualHealth)),
		}

		option.NetAfterObligations = money.Round(annualIncome.Sub(option.TotalObligations))

		if annualIncome.GreaterThan(decimal.Zero) {
			option.EffectiveRate = money.Round(option.TotalObligations.Div(annualIncome).Mul(hundred))
		}

		comparison.Options = append(comparison.Options, option)
	}

	best, worst := comparison.Options[0], comparison.Options[0]
	for _, option := range comparison.Options[1:] {
		if option.TotalObligations.LessThan(best.TotalObligations) {
			best = option
		}

		if option.TotalObligations.GreaterThan(worst.TotalObligations) {
			worst = option
		}
	}

	comparison.Recommended = best.TaxType
	comparison.PotentialSavings = money.Round(worst.TotalObligations.Sub(best.TotalObligations))

	return comparison, nil
}
