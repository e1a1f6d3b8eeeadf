package company

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/nip"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company
type Repository interface {
	// CreateProfile inserts the profile together with its default tax and
	// ZUS settings in one transaction. Returns ErrAlreadyExists when a
	// profile is already present.
	CreateProfile(ctx context.Context, p *Profile, tax *TaxSettings, zus *ZUSSettings) error
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error

	TaxSettings(ctx context.Context, companyID uuid.UUID) (*TaxSettings, error)
	UpdateTaxSettings(ctx context.Context, s *TaxSettings) error

	ZUSSettings(ctx context.Context, companyID uuid.UUID) (*ZUSSettings, error)
	UpdateZUSSettings(ctx context.Context, s *ZUSSettings) error
}

// Defaults holds the statutory rates seeded into settings rows when a
// profile is created.
type Defaults struct {
	ZUSBaseAmount  decimal.Decimal
	EmerytalneRate decimal.Decimal
	RentoweRate    decimal.Decimal
	WypadkoweRate  decimal.Decimal
	ChoroboweRate  decimal.Decimal
	LaborFundRate  decimal.Decimal
	FEPRate        decimal.Decimal

	VATRate        decimal.Decimal
	PITRyczaltRate decimal.Decimal
}

type Service struct {
	repo     Repository
	defaults Defaults
}

func NewService(repo Repository, defaults Defaults) *Service {
	return &Service{repo: repo, defaults: defaults}
}

type CreateParams struct {
	Name  string
	NIP   string
	REGON string
	KRS   string

	Street     string
	City       string
	PostalCode string
	Country    string

	Phone   string
	Email   string
	Website string

	BusinessActivity string
}

// CreateProfile creates the company profile with default tax and ZUS
// settings. Only one profile may exist per deployment.
func (s *Service) CreateProfile(ctx context.Context, params CreateParams) (*Profile, error) {
	if !nip.Valid(params.NIP) {
		return nil, ErrInvalidNIP
	}

	country := params.Country
	if country == "" {
		country = "Poland"
	}

	p := &Profile{
		Name:             params.Name,
		NIP:              params.NIP,
		REGON:            params.REGON,
		KRS:              params.KRS,
		Street:           params.Street,
		City:             params.City,
		PostalCode:       params.PostalCode,
		Country:          country,
		Phone:            params.Phone,
		Email:            params.Email,
		Website:          params.Website,
		BusinessActivity: params.BusinessActivity,
	}

	tax := &TaxSettings{
		IsVATPayer:     true,
		VATRate:        s.defaults.VATRate,
		TaxType:        TaxRyczalt,
		PITRyczaltRate: s.defaults.PITRyczaltRate,
	}

	zus := &ZUSSettings{
		BaseAmount:          s.defaults.ZUSBaseAmount,
		EmerytalneRate:      s.defaults.EmerytalneRate,
		RentoweRate:         s.defaults.RentoweRate,
		WypadkoweRate:       s.defaults.WypadkoweRate,
		IsChoroboweActive:   true,
		ChoroboweRate:       s.defaults.ChoroboweRate,
		LaborFundRate:       s.defaults.LaborFundRate,
		IsFEPActive:         true,
		FEPRate:             s.defaults.FEPRate,
		HealthInsuranceTier: TierMedium,
		EffectiveFrom:       time.Now().UTC(),
	}

	if err := s.repo.CreateProfile(ctx, p, tax, zus); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	return s.repo.GetProfile(ctx)
}

type UpdateParams struct {
	Name  *string
	NIP   *string
	REGON *string
	KRS   *string

	Street     *string
	City       *string
	PostalCode *string
	Country    *string

	Phone   *string
	Email   *string
	Website *string

	BusinessActivity *string
}

func (s *Service) UpdateProfile(ctx context.Context, params UpdateParams) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if params.NIP != nil {
		if !nip.Valid(*params.NIP) {
			return nil, ErrInvalidNIP
		}

		p.NIP = *params.NIP
	}

	applyString(&p.Name, params.Name)
	applyString(&p.REGON, params.REGON)
	applyString(&p.KRS, params.KRS)
	applyString(&p.Street, params.Street)
	applyString(&p.City, params.City)
	applyString(&p.PostalCode, params.PostalCode)
	applyString(&p.Country, params.Country)
	applyString(&p.Phone, params.Phone)
	applyString(&p.Email, params.Email)
	applyString(&p.Website, params.Website)
	applyString(&p.BusinessActivity, params.BusinessActivity)

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) TaxSettings(ctx context.Context) (*TaxSettings, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.TaxSettings(ctx, p.ID)
}

type TaxSettingsUpdate struct {
	IsVATPayer     *bool
	VATRate        *decimal.Decimal
	TaxType        *TaxType
	PITRyczaltRate *decimal.Decimal
}

func (s *Service) UpdateTaxSettings(ctx context.Context, params TaxSettingsUpdate) (*TaxSettings, error) {
	settings, err := s.TaxSettings(ctx)
	if err != nil {
		return nil, err
	}

	if params.IsVATPayer != nil {
		settings.IsVATPayer = *params.IsVATPayer
	}

	if params.VATRate != nil {
		settings.VATRate = *params.VATRate
	}

	if params.TaxType != nil {
		settings.TaxType = *params.TaxType
	}

	if params.PITRyczaltRate != nil {
		settings.PITRyczaltRate = *params.PITRyczaltRate
	}

	if err := s.repo.UpdateTaxSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Service) ZUSSettings(ctx context.Context) (*ZUSSettings, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.ZUSSettings(ctx, p.ID)
}

type ZUSSettingsUpdate struct {
	BaseAmount *decimal.Decimal

	EmerytalneRate *decimal.Decimal
	RentoweRate    *decimal.Decimal
	WypadkoweRate  *decimal.Decimal

	IsChoroboweActive *bool
	ChoroboweRate     *decimal.Decimal

	LaborFundRate *decimal.Decimal

	IsFEPActive *bool
	FEPRate     *decimal.Decimal

	HealthInsuranceTier *HealthInsuranceTier

	EffectiveFrom *time.Time
}

func (s *Service) UpdateZUSSettings(ctx context.Context, params ZUSSettingsUpdate) (*ZUSSettings, error) {
	settings, err := s.ZUSSettings(ctx)
	if err != nil {
		return nil, err
	}

	applyDecimal(&settings.BaseAmount, params.BaseAmount)
	applyDecimal(&settings.EmerytalneRate, params.EmerytalneRate)
	applyDecimal(&settings.RentoweRate, params.RentoweRate)
	applyDecimal(&settings.WypadkoweRate, params.WypadkoweRate)
	applyDecimal(&settings.ChoroboweRate, params.ChoroboweRate)
	applyDecimal(&settings.LaborFundRate, params.LaborFundRate)
	applyDecimal(&settings.FEPRate, params.FEPRate)

	if params.IsChoroboweActive != nil {
		settings.IsChoroboweActive = *params.IsChoroboweActive
	}

	if params.IsFEPActive != nil {
		settings.IsFEPActive = *params.IsFEPActive
	}

	if params.HealthInsuranceTier != nil {
		settings.HealthInsuranceTier = *params.HealthInsuranceTier
	}

	if params.EffectiveFrom != nil {
		settings.EffectiveFrom = *params.EffectiveFrom
	}

	if err := s.repo.UpdateZUSSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}
