// Package invoice manages sales invoices: sequential per-year numbering,
// line-item arithmetic, payment terms and the invoice status lifecycle.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("invoice not found")
	ErrClientNotFound = errors.New("invoice client not found")

	// ErrNotDraft guards mutations that are only legal before issuing.
	ErrNotDraft = errors.New("invoice is not in draft status")

	ErrNoItems                = errors.New("invoice requires at least one item")
	ErrPaymentDateRequired    = errors.New("payment date required to mark invoice as paid")
	ErrCustomDaysRequired     = errors.New("custom payment days required for custom payment terms")
	ErrCustomDaysNotAllowed   = errors.New("custom payment days only allowed for custom payment terms")
	ErrExchangeRateRequired   = errors.New("exchange rate required for non-PLN invoices")
	ErrExchangeRateNotAllowed = errors.New("exchange rate not allowed for PLN invoices")
)

// TransitionError reports an illegal status change.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition invoice from %s to %s", e.From, e.To)
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusIssued    Status = "issued"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusIssued, StatusPaid, StatusOverdue, StatusCancelled, StatusArchived:
		return true
	}

	return false
}

type PaymentTerms string

const (
	TermsImmediate PaymentTerms = "immediate"
	TermsDays7     PaymentTerms = "7_days"
	TermsDays14    PaymentTerms = "14_days"
	TermsDays30    PaymentTerms = "30_days"
	TermsDays60    PaymentTerms = "60_days"
	TermsDays90    PaymentTerms = "90_days"
	TermsCustom    PaymentTerms = "custom"
)

func (p PaymentTerms) Valid() bool {
	switch p {
	case TermsImmediate, TermsDays7, TermsDays14, TermsDays30, TermsDays60, TermsDays90, TermsCustom:
		return true
	}

	return false
}

type Invoice struct {
	ID     uuid.UUID
	Number string

	ClientID uuid.UUID

	IssueDate   time.Time
	ServiceDate time.Time
	DueDate     time.Time

	PaymentTerms PaymentTerms
	// CustomDays is set only when PaymentTerms is custom.
	CustomDays int

	Status Status

	Currency string
	// ExchangeRate against PLN, set only for foreign currencies.
	ExchangeRate *decimal.Decimal

	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal

	PaymentDate   *time.Time
	PaymentMethod string

	PlaceOfIssue  string
	Notes         string
	InternalNotes string

	Items []Item

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a single invoice line. Amounts are derived from quantity, unit
// price and VAT rate at write time and stored alongside.
type Item struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID

	Description string
	Quantity    decimal.Decimal
	Unit        string

	UnitPriceNet decimal.Decimal
	VATRate      decimal.Decimal

	AmountNet   decimal.Decimal
	AmountVAT   decimal.Decimal
	AmountGross decimal.Decimal
}

// Summary aggregates the invoice ledger for reporting.
type Summary struct {
	Count      int
	TotalNet   decimal.Decimal
	TotalGross decimal.Decimal

	ByStatus map[Status]StatusSummary

	// Outstanding covers issued and overdue invoices; Overdue only the
	// overdue ones.
	Outstanding decimal.Decimal
	Overdue     decimal.Decimal
}

type StatusSummary struct {
	Count      int
	TotalGross decimal.Decimal
}
