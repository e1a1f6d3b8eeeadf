package zus

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
)

//go:generate mockgen -source=service.go -destination=settings_mock.go -package=zus
type SettingsSource interface {
	ZUSSettings(ctx context.Context) (*company.ZUSSettings, error)
}

type Service struct {
	settings      SettingsSource
	averageSalary decimal.Decimal
}

func NewService(settings SettingsSource, averageSalary decimal.Decimal) *Service {
	return &Service{settings: settings, averageSalary: averageSalary}
}

// Monthly computes the full contribution breakdown for one month at the
// given income. Income only affects the health insurance on the high tier.
func (s *Service) Monthly(ctx context.Context, monthlyIncome decimal.Decimal) (*Result, error) {
	settings, err := s.settings.ZUSSettings(ctx)
	if err != nil {
		return nil, err
	}

	return s.compute(settings, monthlyIncome), nil
}

func (s *Service) compute(settings *company.ZUSSettings, monthlyIncome decimal.Decimal) *Result {
	r := &Result{
		BaseAmount: settings.BaseAmount,
		Rates: Rates{
			Emerytalne: settings.EmerytalneRate,
			Rentowe:    settings.RentoweRate,
			Wypadkowe:  settings.WypadkoweRate,
			Chorobowe:  settings.ChoroboweRate,
			LaborFund:  settings.LaborFundRate,
			FEP:        settings.FEPRate,
		},
		Emerytalne:            Contribution(settings.BaseAmount, settings.EmerytalneRate),
		Rentowe:               Contribution(settings.BaseAmount, settings.RentoweRate),
		Wypadkowe:             Contribution(settings.BaseAmount, settings.WypadkoweRate),
		LaborFund:             Contribution(settings.BaseAmount, settings.LaborFundRate),
		HealthInsuranceTier:   settings.HealthInsuranceTier,
		SettingsEffectiveFrom: settings.EffectiveFrom,
	}

	if settings.IsChoroboweActive {
		r.Chorobowe = Contribution(settings.BaseAmount, settings.ChoroboweRate)
	} else {
		r.Chorobowe = decimal.Zero
	}

	if settings.IsFEPActive {
		r.FEP = Contribution(settings.BaseAmount, settings.FEPRate)
	} else {
		r.FEP = decimal.Zero
	}

	r.HealthInsurance = HealthInsurance(settings.HealthInsuranceTier, monthlyIncome, s.averageSalary)

	r.TotalZUS = r.Emerytalne.
		Add(r.Rentowe).
		Add(r.Wypadkowe).
		Add(r.Chorobowe).
		Add(r.LaborFund).
		Add(r.FEP)
	r.TotalWithHealth = r.TotalZUS.Add(r.HealthInsurance)

	return r
}

// Yearly computes the month-by-month breakdown for a calendar year. Months
// absent from monthlyIncomes count as zero income. A month whose settings
// lookup fails with company.ErrZUSSettingsNotFound is recorded in
// SkippedMonths and excluded from the totals; any other error aborts the
// summary.
func (s *Service) Yearly(ctx context.Context, year int, monthlyIncomes map[int]decimal.Decimal) (*YearlySummary, error) {
	summary := &YearlySummary{Year: year}

	for month := 1; month <= 12; month++ {
		r, err := s.Monthly(ctx, monthlyIncomes[month])
		if err != nil {
			if errors.Is(err, company.ErrZUSSettingsNotFound) {
				summary.SkippedMonths = append(summary.SkippedMonths, month)
				continue
			}

			return nil, err
		}

		summary.Monthly = append(summary.Monthly, MonthResult{Month: month, Result: *r})

		summary.Totals.Emerytalne = summary.Totals.Emerytalne.Add(r.Emerytalne)
		summary.Totals.Rentowe = summary.Totals.Rentowe.Add(r.Rentowe)
		summary.Totals.Wypadkowe = summary.Totals.Wypadkowe.Add(r.Wypadkowe)
		summary.Totals.Chorobowe = summary.Totals.Chorobowe.Add(r.Chorobowe)
		summary.Totals.LaborFund = summary.Totals.LaborFund.Add(r.LaborFund)
		summary.Totals.FEP = summary.Totals.FEP.Add(r.FEP)
		summary.Totals.HealthInsurance = summary.Totals.HealthInsurance.Add(r.HealthInsurance)
		summary.Totals.TotalZUS = summary.Totals.TotalZUS.Add(r.TotalZUS)
		summary.Totals.TotalWithHealth = summary.Totals.TotalWithHealth.Add(r.TotalWithHealth)
	}

	return summary, nil
}
