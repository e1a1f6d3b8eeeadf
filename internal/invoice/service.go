package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/client"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// CreateInvoice assigns the next sequential number for the issue
	// year and inserts the invoice with its items in one transaction.
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// UpdateInvoice rewrites the invoice row and replaces its items.
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoiceStatus(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, int, error)
	SummarizeInvoices(ctx context.Context) (*Summary, error)
}

type ClientDirectory interface {
	GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

const defaultCurrency = "PLN"

type Service struct {
	repo    Repository
	clients ClientDirectory
}

func NewService(repo Repository, clients ClientDirectory) *Service {
	return &Service{repo: repo, clients: clients}
}

type ItemParams struct {
	Description  string
	Quantity     decimal.Decimal
	Unit         string
	UnitPriceNet decimal.Decimal
	VATRate      decimal.Decimal
}

type CreateParams struct {
	ClientID uuid.UUID

	IssueDate   time.Time
	ServiceDate time.Time

	PaymentTerms PaymentTerms
	CustomDays   *int

	Currency     string
	ExchangeRate *decimal.Decimal

	PaymentMethod string
	PlaceOfIssue  string
	Notes         string
	InternalNotes string

	Items []ItemParams
}

// Create builds a draft invoice for an existing client. The sequential
// number is assigned by the store at insert time.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}

	customDays, err := resolveCustomDays(params.PaymentTerms, params.CustomDays)
	if err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	if err := validateExchangeRate(currency, params.ExchangeRate); err != nil {
		return nil, err
	}

	if _, err := s.clients.GetClient(ctx, params.ClientID); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrClientNotFound
		}

		return nil, err
	}

	issueDate := params.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	serviceDate := params.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = issueDate
	}

	inv := &Invoice{
		ClientID:      params.ClientID,
		IssueDate:     issueDate,
		ServiceDate:   serviceDate,
		DueDate:       DueDate(issueDate, params.PaymentTerms, customDays),
		PaymentTerms:  params.PaymentTerms,
		CustomDays:    customDays,
		Status:        StatusDraft,
		Currency:      currency,
		ExchangeRate:  params.ExchangeRate,
		PaymentMethod: params.PaymentMethod,
		PlaceOfIssue:  params.PlaceOfIssue,
		Notes:         params.Notes,
		InternalNotes: params.InternalNotes,
	}

	applyItems(inv, params.Items)

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

type UpdateParams struct {
	ClientID *uuid.UUID

	IssueDate   *time.Time
	ServiceDate *time.Time

	PaymentTerms *PaymentTerms
	CustomDays   *int

	Currency     *string
	ExchangeRate *decimal.Decimal

	PaymentMethod *string
	PlaceOfIssue  *string
	Notes         *string
	InternalNotes *string

	Items []ItemParams
}

// Update modifies a draft invoice. Touching the issue date, payment terms
// or custom days recomputes the due date; replacing items recomputes the
// totals. Issued invoices are immutable.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusDraft {
		return nil, ErrNotDraft
	}

	if params.ClientID != nil {
		if _, err := s.clients.GetClient(ctx, *params.ClientID); err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return nil, ErrClientNotFound
			}

			return nil, err
		}

		inv.ClientID = *params.ClientID
	}

	termsChanged := false

	if params.IssueDate != nil {
		inv.IssueDate = *params.IssueDate
		termsChanged = true
	}

	if params.PaymentTerms != nil || params.CustomDays != nil {
		terms := inv.PaymentTerms
		if params.PaymentTerms != nil {
			terms = *params.PaymentTerms
		}

		days := params.CustomDays
		if days == nil && terms == TermsCustom && inv.PaymentTerms == TermsCustom {
			days = &inv.CustomDays
		}

		customDays, err := resolveCustomDays(terms, days)
		if err != nil {
			return nil, err
		}

		inv.PaymentTerms = terms
		inv.CustomDays = customDays
		termsChanged = true
	}

	if termsChanged {
		inv.DueDate = DueDate(inv.IssueDate, inv.PaymentTerms, inv.CustomDays)
	}

	if params.ServiceDate != nil {
		inv.ServiceDate = *params.ServiceDate
	}

	if params.Currency != nil || params.ExchangeRate != nil {
		if params.Currency != nil {
			inv.Currency = *params.Currency
		}

		if params.ExchangeRate != nil {
			inv.ExchangeRate = params.ExchangeRate
		}

		if inv.Currency == defaultCurrency {
			inv.ExchangeRate = nil
		}

		if err := validateExchangeRate(inv.Currency, inv.ExchangeRate); err != nil {
			return nil, err
		}
	}

	applyString(&inv.PaymentMethod, params.PaymentMethod)
	applyString(&inv.PlaceOfIssue, params.PlaceOfIssue)
	applyString(&inv.Notes, params.Notes)
	applyString(&inv.InternalNotes, params.InternalNotes)

	if params.Items != nil {
		if len(params.Items) == 0 {
			return nil, ErrNoItems
		}

		applyItems(inv, params.Items)
	}

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Delete removes a draft invoice. Issued invoices must be cancelled
// through the status machine instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if inv.Status != StatusDraft {
		return ErrNotDraft
	}

	return s.repo.DeleteInvoice(ctx, id)
}

type StatusUpdate struct {
	Status        Status
	PaymentDate   *time.Time
	PaymentMethod *string
}

// UpdateStatus moves the invoice through its lifecycle. Marking as paid
// requires a payment date.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, params StatusUpdate) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(inv.Status, params.Status) {
		return nil, &TransitionError{From: inv.Status, To: params.Status}
	}

	if params.Status == StatusPaid && params.PaymentDate == nil {
		return nil, ErrPaymentDateRequired
	}

	inv.Status = params.Status

	if params.PaymentDate != nil {
		inv.PaymentDate = params.PaymentDate
	}

	applyString(&inv.PaymentMethod, params.PaymentMethod)

	if err := s.repo.UpdateInvoiceStatus(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

type ListFilter struct {
	Status   *Status
	ClientID *uuid.UUID

	IssueDateFrom *time.Time
	IssueDateTo   *time.Time
	DueDateFrom   *time.Time
	DueDateTo     *time.Time

	Currency string

	MinGross *decimal.Decimal
	MaxGross *decimal.Decimal

	// Search matches the invoice number and notes.
	Search string

	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.SummarizeInvoices(ctx)
}

func resolveCustomDays(terms PaymentTerms, days *int) (int, error) {
	if terms == TermsCustom {
		if days == nil {
			return 0, ErrCustomDaysRequired
		}

		return *days, nil
	}

	if days != nil {
		return 0, ErrCustomDaysNotAllowed
	}

	return 0, nil
}

func validateExchangeRate(currency string, rate *decimal.Decimal) error {
	if currency == defaultCurrency {
		if rate != nil {
			return ErrExchangeRateNotAllowed
		}

		return nil
	}

	if rate == nil {
		return ErrExchangeRateRequired
	}

	return nil
}

func applyItems(inv *Invoice, params []ItemParams) {
	inv.Items = inv.Items[:0]
	inv.TotalNet = decimal.Zero
	inv.TotalVAT = decimal.Zero
	inv.TotalGross = decimal.Zero

	for _, p := range params {
		net, vat, gross := ItemTotals(p.Quantity, p.UnitPriceNet, p.VATRate)

		inv.Items = append(inv.Items, Item{
			Description:  p.Description,
			Quantity:     p.Quantity,
			Unit:         p.Unit,
			UnitPriceNet: p.UnitPriceNet,
			VATRate:      p.VATRate,
			AmountNet:    net,
			AmountVAT:    vat,
			AmountGross:  gross,
		})

		inv.TotalNet = inv.TotalNet.Add(net)
		inv.TotalVAT = inv.TotalVAT.Add(vat)
		inv.TotalGross = inv.TotalGross.Add(gross)
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
