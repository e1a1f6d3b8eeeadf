package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/money"
)

// ErrAmbiguousAmounts is returned when both a net amount and a gross amount
// are supplied at creation; exactly one combination is allowed.
var ErrAmbiguousAmounts = errors.New("provide either net amount with vat rate or gross amount, not both")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, int, error)
	SumExpensesInPeriod(ctx context.Context, from, to time.Time) (PeriodTotals, error)
	SumExpensesByCategory(ctx context.Context, from, to time.Time) (map[Category]CategorySummary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date        time.Time
	VendorName  string
	Description string
	Category    Category

	// Exactly one of (AmountNet + VATRate) or AmountGross must be set.
	AmountNet   *decimal.Decimal
	VATRate     *decimal.Decimal
	AmountGross *decimal.Decimal

	IsVATDeductible bool
	IsTaxDeductible bool

	PaymentMethod     PaymentMethod
	DocumentReference string
	Notes             string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if params.AmountNet != nil && params.AmountGross != nil {
		return nil, ErrAmbiguousAmounts
	}

	breakdown, err := money.DecomposeVAT(params.AmountNet, params.VATRate, params.AmountGross)
	if err != nil {
		return nil, err
	}

	e := &Expense{
		Date:              params.Date,
		VendorName:        params.VendorName,
		Description:       params.Description,
		Category:          params.Category,
		AmountNet:         breakdown.Net,
		VATRate:           breakdown.Rate,
		VATAmount:         breakdown.VAT,
		AmountGross:       breakdown.Gross,
		IsVATDeductible:   params.IsVATDeductible,
		IsTaxDeductible:   params.IsTaxDeductible,
		PaymentMethod:     params.PaymentMethod,
		DocumentReference: params.DocumentReference,
		Notes:             params.Notes,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

type ListFilter struct {
	Search   string
	Category *Category

	DateFrom *time.Time
	DateTo   *time.Time

	IsVATDeductible *bool
	IsTaxDeductible *bool

	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	return s.repo.ListExpenses(ctx, filter)
}

type UpdateParams struct {
	Date        *time.Time
	VendorName  *string
	Description *string
	Category    *Category

	AmountNet   *decimal.Decimal
	VATRate     *decimal.Decimal
	AmountGross *decimal.Decimal

	IsVATDeductible *bool
	IsTaxDeductible *bool

	PaymentMethod     *PaymentMethod
	DocumentReference *string
	Notes             *string
}

// Update applies a partial update. Touching any financial field recomputes
// the whole net/VAT/gross triple: a supplied net amount takes precedence
// over a supplied gross amount, matching creation semantics.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Expense, error) {
	e, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.AmountNet != nil || params.VATRate != nil || params.AmountGross != nil {
		rate := e.VATRate
		if params.VATRate != nil {
			rate = *params.VATRate
		}

		breakdown, err := money.DecomposeVAT(params.AmountNet, &rate, params.AmountGross)
		if errors.Is(err, money.ErrInvalidAmounts) {
			// Only the rate changed; rederive from the stored net amount.
			breakdown, err = money.DecomposeVAT(&e.AmountNet, &rate, nil)
		}

		if err != nil {
			return nil, err
		}

		e.AmountNet = breakdown.Net
		e.VATRate = breakdown.Rate
		e.VATAmount = breakdown.VAT
		e.AmountGross = breakdown.Gross
	}

	if params.Date != nil {
		e.Date = *params.Date
	}

	if params.VendorName != nil {
		e.VendorName = *params.VendorName
	}

	if params.Description != nil {
		e.Description = *params.Description
	}

	if params.Category != nil {
		e.Category = *params.Category
	}

	if params.IsVATDeductible != nil {
		e.IsVATDeductible = *params.IsVATDeductible
	}

	if params.IsTaxDeductible != nil {
		e.IsTaxDeductible = *params.IsTaxDeductible
	}

	if params.PaymentMethod != nil {
		e.PaymentMethod = *params.PaymentMethod
	}

	if params.DocumentReference != nil {
		e.DocumentReference = *params.DocumentReference
	}

	if params.Notes != nil {
		e.Notes = *params.Notes
	}

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// Summary aggregates expenses over [from, to].
type Summary struct {
	Totals     PeriodTotals
	ByCategory map[Category]CategorySummary
}

func (s *Service) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	totals, err := s.repo.SumExpensesInPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.repo.SumExpensesByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Summary{Totals: totals, ByCategory: byCategory}, nil
}

// MonthlySummary aggregates one calendar month.
func (s *Service) MonthlySummary(ctx context.Context, year, month int) (*Summary, error) {
	from, to := MonthBounds(year, month)

	return s.Summary(ctx, from, to)
}

// MonthBounds returns the first and last day of a calendar month.
func MonthBounds(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	return from, to
}
