package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/witmar/infirma/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	id, expense_date, vendor_name, description, category,
	amount_net, vat_rate, vat_amount, amount_gross,
	is_vat_deductible, is_tax_deductible, payment_method,
	document_reference, notes, created_at, updated_at, deleted_at
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var category, paymentMethod string

	var docRef, notes sql.NullString

	if err := s.Scan(
		&e.ID, &e.Date, &e.VendorName, &e.Description, &category,
		&e.AmountNet, &e.VATRate, &e.VATAmount, &e.AmountGross,
		&e.IsVATDeductible, &e.IsTaxDeductible, &paymentMethod,
		&docRef, &notes, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Category = expense.Category(category)
	e.PaymentMethod = expense.PaymentMethod(paymentMethod)
	e.DocumentReference = docRef.String
	e.Notes = notes.String

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (expense_date, vendor_name, description, category,
			amount_net, vat_rate, vat_amount, amount_gross,
			is_vat_deductible, is_tax_deductible, payment_method,
			document_reference, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Date, e.VendorName, e.Description, e.Category,
		e.AmountNet, e.VATRate, e.VATAmount, e.AmountGross,
		e.IsVATDeductible, e.IsTaxDeductible, e.PaymentMethod,
		nullable(e.DocumentReference), nullable(e.Notes),
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, int, error) {
	where := " WHERE deleted_at IS NULL"

	var args []any

	argIdx := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (vendor_name ILIKE $%d OR description ILIKE $%d OR document_reference ILIKE $%d)",
			argIdx, argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.Category != nil {
		where += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND expense_date >= $%d", argIdx)

		args = append(args, *filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND expense_date <= $%d", argIdx)

		args = append(args, *filter.DateTo)
		argIdx++
	}

	if filter.IsVATDeductible != nil {
		where += fmt.Sprintf(" AND is_vat_deductible = $%d", argIdx)

		args = append(args, *filter.IsVATDeductible)
		argIdx++
	}

	if filter.IsTaxDeductible != nil {
		where += fmt.Sprintf(" AND is_tax_deductible = $%d", argIdx)

		args = append(args, *filter.IsTaxDeductible)
		argIdx++
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting expenses: %w", err)
	}

	query := `SELECT ` + selectExpenseColumns + ` FROM expenses` + where +
		fmt.Sprintf(" ORDER BY expense_date DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, total, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET expense_date = $1, vendor_name = $2, description = $3, category = $4,
			amount_net = $5, vat_rate = $6, vat_amount = $7, amount_gross = $8,
			is_vat_deductible = $9, is_tax_deductible = $10, payment_method = $11,
			document_reference = $12, notes = $13, updated_at = NOW()
		WHERE id = $14 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Date, e.VendorName, e.Description, e.Category,
		e.AmountNet, e.VATRate, e.VATAmount, e.AmountGross,
		e.IsVATDeductible, e.IsTaxDeductible, e.PaymentMethod,
		nullable(e.DocumentReference), nullable(e.Notes), e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE expenses
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}

// SumExpensesInPeriod aggregates active expenses dated within [from, to].
// COALESCE keeps empty periods at zero instead of NULL.
func (s *Store) SumExpensesInPeriod(ctx context.Context, from, to time.Time) (expense.PeriodTotals, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(amount_net), 0),
			COALESCE(SUM(vat_amount), 0),
			COALESCE(SUM(amount_gross), 0),
			COALESCE(SUM(vat_amount) FILTER (WHERE is_vat_deductible), 0),
			COALESCE(SUM(amount_net) FILTER (WHERE is_tax_deductible), 0)
		FROM expenses
		WHERE deleted_at IS NULL AND expense_date >= $1 AND expense_date <= $2
	`

	var totals expense.PeriodTotals

	err := s.db.QueryRowContext(ctx, query, from, to).Scan(
		&totals.Count, &totals.TotalNet, &totals.TotalVAT, &totals.TotalGross,
		&totals.DeductibleVAT, &totals.DeductibleNet,
	)
	if err != nil {
		return expense.PeriodTotals{}, fmt.Errorf("summing expenses: %w", err)
	}

	return totals, nil
}

func (s *Store) SumExpensesByCategory(ctx context.Context, from, to time.Time) (map[expense.Category]expense.CategorySummary, error) {
	query := `
		SELECT category, COUNT(*),
			COALESCE(SUM(amount_net), 0),
			COALESCE(SUM(vat_amount), 0),
			COALESCE(SUM(amount_gross), 0)
		FROM expenses
		WHERE deleted_at IS NULL AND expense_date >= $1 AND expense_date <= $2
		GROUP BY category
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summing expenses by category: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[expense.Category]expense.CategorySummary)

	for rows.Next() {
		var category string

		var summary expense.CategorySummary

		if err := rows.Scan(&category, &summary.Count, &summary.TotalNet, &summary.TotalVAT, &summary.TotalGross); err != nil {
			return nil, fmt.Errorf("scanning category summary: %w", err)
		}

		byCategory[expense.Category(category)] = summary
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return byCategory, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
