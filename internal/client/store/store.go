package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/witmar/infirma/internal/client"
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

const selectClientColumns = `
	id, name, nip, street, city, postal_code, country, email, phone, notes,
	created_at, updated_at, deleted_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	var nipStr, street, city, postalCode, country, email, phone, notes sql.NullString

	if err := s.Scan(
		&c.ID, &c.Name, &nipStr, &street, &city, &postalCode, &country,
		&email, &phone, &notes, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.NIP = nipStr.String
	c.Street = street.String
	c.City = city.String
	c.PostalCode = postalCode.String
	c.Country = country.String
	c.Email = email.String
	c.Phone = phone.String
	c.Notes = notes.String

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (name, nip, street, city, postal_code, country, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, nullable(c.NIP), nullable(c.Street), nullable(c.City), nullable(c.PostalCode),
		nullable(c.Country), nullable(c.Email), nullable(c.Phone), nullable(c.Notes),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + ` FROM clients WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, int, error) {
	where := ""

	var args []any

	argIdx := 1

	if filter.ActiveOnly {
		where = " WHERE deleted_at IS NULL"
	} else {
		where = " WHERE TRUE"
	}

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR city ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM clients"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting clients: %w", err)
	}

	query := `SELECT ` + selectClientColumns + ` FROM clients` + where +
		fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, total, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, nip = $2, street = $3, city = $4, postal_code = $5, country = $6,
			email = $7, phone = $8, notes = $9, updated_at = NOW()
		WHERE id = $10 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name, nullable(c.NIP), nullable(c.Street), nullable(c.City), nullable(c.PostalCode),
		nullable(c.Country), nullable(c.Email), nullable(c.Phone), nullable(c.Notes), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE clients
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
