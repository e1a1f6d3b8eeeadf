package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func numberLockKey(year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "invoice_number_%d", year)

	return int64(h.Sum64())
}

const selectInvoiceColumns = `
	id, invoice_number, client_id, issue_date, service_date, due_date,
	payment_terms, custom_payment_days, status, currency, exchange_rate,
	total_net, total_vat, total_gross, payment_date, payment_method,
	place_of_issue, notes, internal_notes, created_at, updated_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var terms, status string

	var exchangeRate decimal.NullDecimal

	var paymentDate sql.NullTime

	var paymentMethod, placeOfIssue, notes, internalNotes sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.IssueDate, &inv.ServiceDate, &inv.DueDate,
		&terms, &inv.CustomDays, &status, &inv.Currency, &exchangeRate,
		&inv.TotalNet, &inv.TotalVAT, &inv.TotalGross, &paymentDate, &paymentMethod,
		&placeOfIssue, &notes, &internalNotes, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.PaymentTerms = invoice.PaymentTerms(terms)
	inv.Status = invoice.Status(status)

	if exchangeRate.Valid {
		inv.ExchangeRate = &exchangeRate.Decimal
	}

	if paymentDate.Valid {
		inv.PaymentDate = &paymentDate.Time
	}

	inv.PaymentMethod = paymentMethod.String
	inv.PlaceOfIssue = placeOfIssue.String
	inv.Notes = notes.String
	inv.InternalNotes = internalNotes.String

	return &inv, nil
}

// CreateInvoice inserts the invoice and its items in one transaction. An
// advisory lock on the issue year serializes number assignment, so two
// concurrent creates cannot take the same sequence.
func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	year := inv.IssueDate.Year()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", numberLockKey(year)); err != nil {
		return fmt.Errorf("acquiring number lock: %w", err)
	}

	// Soft-deleted invoices keep their numbers, so the max is taken over
	// all rows of the year.
	var lastNumber sql.NullString

	maxQuery := `
		SELECT invoice_number FROM invoices
		WHERE split_part(invoice_number, '/', 2) = $1::text
		ORDER BY (split_part(invoice_number, '/', 3))::int DESC
		LIMIT 1
	`

	err = tx.QueryRowContext(ctx, maxQuery, fmt.Sprint(year)).Scan(&lastNumber)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("finding last invoice number: %w", err)
	}

	inv.Number = invoice.NextNumber(lastNumber.String, year)

	insertQuery := `
		INSERT INTO invoices (invoice_number, client_id, issue_date, service_date, due_date,
			payment_terms, custom_payment_days, status, currency, exchange_rate,
			total_net, total_vat, total_gross, payment_date, payment_method,
			place_of_issue, notes, internal_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, insertQuery,
		inv.Number, inv.ClientID, inv.IssueDate, inv.ServiceDate, inv.DueDate,
		inv.PaymentTerms, inv.CustomDays, inv.Status, inv.Currency, inv.ExchangeRate,
		inv.TotalNet, inv.TotalVAT, inv.TotalGross, inv.PaymentDate, nullable(inv.PaymentMethod),
		nullable(inv.PlaceOfIssue), nullable(inv.Notes), nullable(inv.InternalNotes),
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoice_items (invoice_id, description, quantity, unit,
			unit_price_net, vat_rate, amount_net, amount_vat, amount_gross)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	for i := range inv.Items {
		item := &inv.Items[i]
		item.InvoiceID = inv.ID

		err := tx.QueryRowContext(ctx, query,
			inv.ID, item.Description, item.Quantity, nullable(item.Unit),
			item.UnitPriceNet, item.VATRate, item.AmountNet, item.AmountVAT, item.AmountGross,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("creating invoice item: %w", err)
		}
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1 AND deleted_at IS NULL`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := s.loadItems(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) loadItems(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		SELECT id, invoice_id, description, quantity, unit,
			unit_price_net, vat_rate, amount_net, amount_vat, amount_gross
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("loading invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item invoice.Item

		var unit sql.NullString

		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &unit,
			&item.UnitPriceNet, &item.VATRate, &item.AmountNet, &item.AmountVAT, &item.AmountGross,
		); err != nil {
			return fmt.Errorf("scanning invoice item: %w", err)
		}

		item.Unit = unit.String
		inv.Items = append(inv.Items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating item rows: %w", err)
	}

	return nil
}

// UpdateInvoice rewrites the invoice row and replaces its items.
func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE invoices
		SET client_id = $1, issue_date = $2, service_date = $3, due_date = $4,
			payment_terms = $5, custom_payment_days = $6, currency = $7, exchange_rate = $8,
			total_net = $9, total_vat = $10, total_gross = $11, payment_method = $12,
			place_of_issue = $13, notes = $14, internal_notes = $15, updated_at = NOW()
		WHERE id = $16 AND deleted_at IS NULL
	`

	_, err = tx.ExecContext(ctx, query,
		inv.ClientID, inv.IssueDate, inv.ServiceDate, inv.DueDate,
		inv.PaymentTerms, inv.CustomDays, inv.Currency, inv.ExchangeRate,
		inv.TotalNet, inv.TotalVAT, inv.TotalGross, nullable(inv.PaymentMethod),
		nullable(inv.PlaceOfIssue), nullable(inv.Notes), nullable(inv.InternalNotes), inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("clearing invoice items: %w", err)
	}

	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateInvoiceStatus(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $1, payment_date = $2, payment_method = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, inv.Status, inv.PaymentDate, nullable(inv.PaymentMethod), inv.ID)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int, error) {
	where := " WHERE deleted_at IS NULL"

	var args []any

	argIdx := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (invoice_number ILIKE $%d OR notes ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ClientID != nil {
		where += fmt.Sprintf(" AND client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.IssueDateFrom != nil {
		where += fmt.Sprintf(" AND issue_date >= $%d", argIdx)

		args = append(args, *filter.IssueDateFrom)
		argIdx++
	}

	if filter.IssueDateTo != nil {
		where += fmt.Sprintf(" AND issue_date <= $%d", argIdx)

		args = append(args, *filter.IssueDateTo)
		argIdx++
	}

	if filter.DueDateFrom != nil {
		where += fmt.Sprintf(" AND due_date >= $%d", argIdx)

		args = append(args, *filter.DueDateFrom)
		argIdx++
	}

	if filter.DueDateTo != nil {
		where += fmt.Sprintf(" AND due_date <= $%d", argIdx)

		args = append(args, *filter.DueDateTo)
		argIdx++
	}

	if filter.Currency != "" {
		where += fmt.Sprintf(" AND currency = $%d", argIdx)

		args = append(args, filter.Currency)
		argIdx++
	}

	if filter.MinGross != nil {
		where += fmt.Sprintf(" AND total_gross >= $%d", argIdx)

		args = append(args, *filter.MinGross)
		argIdx++
	}

	if filter.MaxGross != nil {
		where += fmt.Sprintf(" AND total_gross <= $%d", argIdx)

		args = append(args, *filter.MaxGross)
		argIdx++
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM invoices"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting invoices: %w", err)
	}

	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices` + where +
		fmt.Sprintf(" ORDER BY issue_date DESC, invoice_number DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, total, nil
}

// SummarizeInvoices aggregates the ledger: overall totals, a per-status
// breakdown and the outstanding and overdue amounts.
func (s *Store) SummarizeInvoices(ctx context.Context) (*invoice.Summary, error) {
	summary := &invoice.Summary{ByStatus: make(map[invoice.Status]invoice.StatusSummary)}

	totalsQuery := `
		SELECT COUNT(*),
			COALESCE(SUM(total_net), 0),
			COALESCE(SUM(total_gross), 0),
			COALESCE(SUM(total_gross) FILTER (WHERE status IN ('issued', 'overdue')), 0),
			COALESCE(SUM(total_gross) FILTER (WHERE status = 'overdue'), 0)
		FROM invoices
		WHERE deleted_at IS NULL
	`

	err := s.db.QueryRowContext(ctx, totalsQuery).Scan(
		&summary.Count, &summary.TotalNet, &summary.TotalGross,
		&summary.Outstanding, &summary.Overdue,
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing invoices: %w", err)
	}

	statusQuery := `
		SELECT status, COUNT(*), COALESCE(SUM(total_gross), 0)
		FROM invoices
		WHERE deleted_at IS NULL
		GROUP BY status
	`

	rows, err := s.db.QueryContext(ctx, statusQuery)
	if err != nil {
		return nil, fmt.Errorf("summarizing invoices by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string

		var ss invoice.StatusSummary

		if err := rows.Scan(&status, &ss.Count, &ss.TotalGross); err != nil {
			return nil, fmt.Errorf("scanning status summary: %w", err)
		}

		summary.ByStatus[invoice.Status(status)] = ss
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status rows: %w", err)
	}

	return summary, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
