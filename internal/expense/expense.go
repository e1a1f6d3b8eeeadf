package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("expense not found")

// Category classifies an expense for reporting. The set is closed;
// unknown values are rejected at the boundary.
type Category string

const (
	CategoryOfficeSupplies       Category = "office_supplies"
	CategoryEquipment            Category = "equipment"
	CategorySoftware             Category = "software"
	CategoryTravel               Category = "travel"
	CategoryMeals                Category = "meals"
	CategoryFuel                 Category = "fuel"
	CategoryUtilities            Category = "utilities"
	CategoryRent                 Category = "rent"
	CategoryInsurance            Category = "insurance"
	CategoryProfessionalServices Category = "professional_services"
	CategoryMarketing            Category = "marketing"
	CategoryTraining             Category = "training"
	CategoryTelecommunications   Category = "telecommunications"
	CategoryBankFees             Category = "bank_fees"
	CategoryOther                Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryOfficeSupplies, CategoryEquipment, CategorySoftware, CategoryTravel,
		CategoryMeals, CategoryFuel, CategoryUtilities, CategoryRent, CategoryInsurance,
		CategoryProfessionalServices, CategoryMarketing, CategoryTraining,
		CategoryTelecommunications, CategoryBankFees, CategoryOther:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentOnline       PaymentMethod = "online"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentBankTransfer, PaymentCard, PaymentOnline, PaymentCheck, PaymentOther:
		return true
	}

	return false
}

// Expense is a cost entry. The net/VAT/gross triple is always consistent:
// gross = net + vat, with vat derived from the rate at creation.
type Expense struct {
	ID uuid.UUID

	Date        time.Time
	VendorName  string
	Description string
	Category    Category

	AmountNet   decimal.Decimal
	VATRate     decimal.Decimal
	VATAmount   decimal.Decimal
	AmountGross decimal.Decimal

	IsVATDeductible bool
	IsTaxDeductible bool

	PaymentMethod     PaymentMethod
	DocumentReference string
	Notes             string

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// PeriodTotals are aggregate sums over active expenses in a date range,
// consumed by the tax engine.
type PeriodTotals struct {
	Count int

	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal

	// DeductibleVAT sums vat_amount over VAT-deductible expenses only.
	DeductibleVAT decimal.Decimal
	// DeductibleNet sums amount_net over tax-deductible expenses only.
	DeductibleNet decimal.Decimal
}

// CategorySummary is one row of the by-category breakdown.
type CategorySummary struct {
	Count      int
	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal
}
