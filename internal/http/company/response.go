package company

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
)

type profileResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	NIP   string    `json:"nip"`
	REGON string    `json:"regon,omitempty"`
	KRS   string    `json:"krs,omitempty"`

	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`

	BusinessActivity string `json:"business_activity,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toProfileResponse(p *company.Profile) profileResponse {
	return profileResponse{
		ID:               p.ID,
		Name:             p.Name,
		NIP:              p.NIP,
		REGON:            p.REGON,
		KRS:              p.KRS,
		Street:           p.Street,
		City:             p.City,
		PostalCode:       p.PostalCode,
		Country:          p.Country,
		Phone:            p.Phone,
		Email:            p.Email,
		Website:          p.Website,
		BusinessActivity: p.BusinessActivity,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type taxSettingsResponse struct {
	IsVATPayer bool            `json:"is_vat_payer"`
	VATRate    decimal.Decimal `json:"vat_rate"`

	TaxType        company.TaxType `json:"tax_type"`
	PITRyczaltRate decimal.Decimal `json:"pit_ryczalt_rate"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toTaxSettingsResponse(s *company.TaxSettings) taxSettingsResponse {
	return taxSettingsResponse{
		IsVATPayer:     s.IsVATPayer,
		VATRate:        s.VATRate,
		TaxType:        s.TaxType,
		PITRyczaltRate: s.PITRyczaltRate,
		UpdatedAt:      s.UpdatedAt,
	}
}

type zusSettingsResponse struct {
	BaseAmount decimal.Decimal `json:"base_amount"`

	EmerytalneRate decimal.Decimal `json:"emerytalne_rate"`
	RentoweRate    decimal.Decimal `json:"rentowe_rate"`
	WypadkoweRate  decimal.Decimal `json:"wypadkowe_rate"`

	IsChoroboweActive bool            `json:"is_chorobowe_active"`
	ChoroboweRate     decimal.Decimal `json:"chorobowe_rate"`

	LaborFundRate decimal.Decimal `json:"labor_fund_rate"`

	IsFEPActive bool            `json:"is_fep_active"`
	FEPRate     decimal.Decimal `json:"fep_rate"`

	HealthInsuranceTier company.HealthInsuranceTier `json:"health_insurance_tier"`

	EffectiveFrom time.Time  `json:"effective_from"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toZUSSettingsResponse(s *company.ZUSSettings) zusSettingsResponse {
	return zusSettingsResponse{
		BaseAmount:          s.BaseAmount,
		EmerytalneRate:      s.EmerytalneRate,
		RentoweRate:         s.RentoweRate,
		WypadkoweRate:       s.WypadkoweRate,
		IsChoroboweActive:   s.IsChoroboweActive,
		ChoroboweRate:       s.ChoroboweRate,
		LaborFundRate:       s.LaborFundRate,
		IsFEPActive:         s.IsFEPActive,
		FEPRate:             s.FEPRate,
		HealthInsuranceTier: s.HealthInsuranceTier,
		EffectiveFrom:       s.EffectiveFrom,
		UpdatedAt:           s.UpdatedAt,
	}
}
