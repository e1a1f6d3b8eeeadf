package company

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("company profile not found")
	ErrAlreadyExists       = errors.New("company profile already exists")
	ErrInvalidNIP          = errors.New("invalid NIP number")
	ErrTaxSettingsNotFound = errors.New("tax settings not found for company")
	ErrZUSSettingsNotFound = errors.New("zus settings not found for company")
)

// TaxType selects the personal income tax regime.
type TaxType string

const (
	TaxRyczalt     TaxType = "ryczalt"
	TaxLiniowy     TaxType = "liniowy"
	TaxProgresywny TaxType = "progresywny"
)

func (t TaxType) Valid() bool {
	switch t {
	case TaxRyczalt, TaxLiniowy, TaxProgresywny:
		return true
	}

	return false
}

// HealthInsuranceTier selects the health-insurance contribution base.
type HealthInsuranceTier string

const (
	TierLow    HealthInsuranceTier = "low"
	TierMedium HealthInsuranceTier = "medium"
	TierHigh   HealthInsuranceTier = "high"
)

func (t HealthInsuranceTier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}

	return false
}

// Profile is the single company the deployment accounts for.
type Profile struct {
	ID    uuid.UUID
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

	CreatedAt time.Time
	UpdatedAt *time.Time
}

type TaxSettings struct {
	ID        uuid.UUID
	CompanyID uuid.UUID

	IsVATPayer bool
	VATRate    decimal.Decimal

	TaxType        TaxType
	PITRyczaltRate decimal.Decimal

	UpdatedAt *time.Time
}

type ZUSSettings struct {
	ID        uuid.UUID
	CompanyID uuid.UUID

	BaseAmount decimal.Decimal

	EmerytalneRate decimal.Decimal
	RentoweRate    decimal.Decimal
	WypadkoweRate  decimal.Decimal

	IsChoroboweActive bool
	ChoroboweRate     decimal.Decimal

	LaborFundRate decimal.Decimal

	IsFEPActive bool
	FEPRate     decimal.Decimal

	HealthInsuranceTier HealthInsuranceTier

	EffectiveFrom time.Time
	UpdatedAt     *time.Time
}
