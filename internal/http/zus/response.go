package zus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/zus"
)

type ratesResponse struct {
	Emerytalne decimal.Decimal `json:"emerytalne"`
	Rentowe    decimal.Decimal `json:"rentowe"`
	Wypadkowe  decimal.Decimal `json:"wypadkowe"`
	Chorobowe  decimal.Decimal `json:"chorobowe"`
	LaborFund  decimal.Decimal `json:"labor_fund"`
	FEP        decimal.Decimal `json:"fep"`
}

type resultResponse struct {
	BaseAmount decimal.Decimal `json:"base_amount"`
	Rates      ratesResponse   `json:"rates"`

	Emerytalne decimal.Decimal `json:"emerytalne"`
	Rentowe    decimal.Decimal `json:"rentowe"`
	Wypadkowe  decimal.Decimal `json:"wypadkowe"`
	Chorobowe  decimal.Decimal `json:"chorobowe"`
	LaborFund  decimal.Decimal `json:"labor_fund"`
	FEP        decimal.Decimal `json:"fep"`

	HealthInsurance     decimal.Decimal             `json:"health_insurance"`
	HealthInsuranceTier company.HealthInsuranceTier `json:"health_insurance_tier"`

	TotalZUS        decimal.Decimal `json:"total_zus"`
	TotalWithHealth decimal.Decimal `json:"total_with_health"`

	SettingsEffectiveFrom time.Time `json:"settings_effective_from"`
}

func toResultResponse(r *zus.Result) resultResponse {
	return resultResponse{
		BaseAmount: r.BaseAmount,
		Rates: ratesResponse{
			Emerytalne: r.Rates.Emerytalne,
			Rentowe:    r.Rates.Rentowe,
			Wypadkowe:  r.Rates.Wypadkowe,
			Chorobowe:  r.Rates.Chorobowe,
			LaborFund:  r.Rates.LaborFund,
			FEP:        r.Rates.FEP,
		},
		Emerytalne:            r.Emerytalne,
		Rentowe:               r.Rentowe,
		Wypadkowe:             r.Wypadkowe,
		Chorobowe:             r.Chorobowe,
		LaborFund:             r.LaborFund,
		FEP:                   r.FEP,
		HealthInsurance:       r.HealthInsurance,
		HealthInsuranceTier:   r.HealthInsuranceTier,
		TotalZUS:              r.TotalZUS,
		TotalWithHealth:       r.TotalWithHealth,
		SettingsEffectiveFrom: r.SettingsEffectiveFrom,
	}
}

type monthResultResponse struct {
	Month int `json:"month"`
	resultResponse
}

type yearlyTotalsResponse struct {
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

type yearlyResponse struct {
	Year          int                   `json:"year"`
	Monthly       []monthResultResponse `json:"monthly"`
	Totals        yearlyTotalsResponse  `json:"totals"`
	SkippedMonths []int                 `json:"skipped_months,omitempty"`
}

func toYearlyResponse(s *zus.YearlySummary) yearlyResponse {
	out := yearlyResponse{
		Year:    s.Year,
		Monthly: make([]monthResultResponse, 0, len(s.Monthly)),
		Totals: yearlyTotalsResponse{
			Emerytalne:      s.Totals.Emerytalne,
			Rentowe:         s.Totals.Rentowe,
			Wypadkowe:       s.Totals.Wypadkowe,
			Chorobowe:       s.Totals.Chorobowe,
			LaborFund:       s.Totals.LaborFund,
			FEP:             s.Totals.FEP,
			HealthInsurance: s.Totals.HealthInsurance,
			TotalZUS:        s.Totals.TotalZUS,
			TotalWithHealth: s.Totals.TotalWithHealth,
		},
		SkippedMonths: s.SkippedMonths,
	}

	for _, m := range s.Monthly {
		out.Monthly = append(out.Monthly, monthResultResponse{
			Month:          m.Month,
			resultResponse: toResultResponse(&m.Result),
		})
	}

	return out
}
