package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/witmar/infirma/internal/company"
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

func profileLockKey() int64 {
	h := fnv.New64a()
	h.Write([]byte("company_profile_singleton"))

	return int64(h.Sum64())
}

const selectProfileColumns = `
	id, name, nip, regon, krs, street, city, postal_code, country,
	phone, email, website, business_activity, created_at, updated_at
`

func scanProfile(s scanner) (*company.Profile, error) {
	var p company.Profile

	var regon, krs, phone, email, website, activity sql.NullString

	if err := s.Scan(
		&p.ID, &p.Name, &p.NIP, &regon, &krs, &p.Street, &p.City, &p.PostalCode, &p.Country,
		&phone, &email, &website, &activity, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.REGON = regon.String
	p.KRS = krs.String
	p.Phone = phone.String
	p.Email = email.String
	p.Website = website.String
	p.BusinessActivity = activity.String

	return &p, nil
}

// CreateProfile inserts the profile and both settings rows atomically.
// An advisory lock serializes concurrent creations so the singleton
// check cannot race.
func (s *Store) CreateProfile(ctx context.Context, p *company.Profile, tax *company.TaxSettings, zus *company.ZUSSettings) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", profileLockKey()); err != nil {
		return fmt.Errorf("acquiring profile lock: %w", err)
	}

	var exists bool
	if err := dbTx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM company_profiles)").Scan(&exists); err != nil {
		return fmt.Errorf("checking existing profile: %w", err)
	}

	if exists {
		return company.ErrAlreadyExists
	}

	query := `
		INSERT INTO company_profiles (name, nip, regon, krs, street, city, postal_code, country,
			phone, email, website, business_activity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		p.Name, p.NIP, nullable(p.REGON), nullable(p.KRS),
		p.Street, p.City, p.PostalCode, p.Country,
		nullable(p.Phone), nullable(p.Email), nullable(p.Website), nullable(p.BusinessActivity),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating company profile: %w", err)
	}

	taxQuery := `
		INSERT INTO tax_settings (company_id, is_vat_payer, vat_rate, tax_type, pit_ryczalt_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	tax.CompanyID = p.ID
	if err := dbTx.QueryRowContext(ctx, taxQuery,
		tax.CompanyID, tax.IsVATPayer, tax.VATRate, tax.TaxType, tax.PITRyczaltRate,
	).Scan(&tax.ID); err != nil {
		return fmt.Errorf("creating tax settings: %w", err)
	}

	zusQuery := `
		INSERT INTO zus_settings (company_id, base_amount, emerytalne_rate, rentowe_rate, wypadkowe_rate,
			is_chorobowe_active, chorobowe_rate, labor_fund_rate, is_fep_active, fep_rate,
			health_insurance_tier, effective_from, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id
	`

	zus.CompanyID = p.ID
	if err := dbTx.QueryRowContext(ctx, zusQuery,
		zus.CompanyID, zus.BaseAmount, zus.EmerytalneRate, zus.RentoweRate, zus.WypadkoweRate,
		zus.IsChoroboweActive, zus.ChoroboweRate, zus.LaborFundRate, zus.IsFEPActive, zus.FEPRate,
		zus.HealthInsuranceTier, zus.EffectiveFrom,
	).Scan(&zus.ID); err != nil {
		return fmt.Errorf("creating zus settings: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing profile creation: %w", err)
	}

	return nil
}

func (s *Store) GetProfile(ctx context.Context) (*company.Profile, error) {
	query := `SELECT ` + selectProfileColumns + ` FROM company_profiles LIMIT 1`

	p, err := scanProfile(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company profile: %w", err)
	}

	return p, nil
}

func (s *Store) UpdateProfile(ctx context.Context, p *company.Profile) error {
	query := `
		UPDATE company_profiles
		SET name = $1, nip = $2, regon = $3, krs = $4, street = $5, city = $6,
			postal_code = $7, country = $8, phone = $9, email = $10, website = $11,
			business_activity = $12, updated_at = NOW()
		WHERE id = $13
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name, p.NIP, nullable(p.REGON), nullable(p.KRS), p.Street, p.City,
		p.PostalCode, p.Country, nullable(p.Phone), nullable(p.Email), nullable(p.Website),
		nullable(p.BusinessActivity), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating company profile: %w", err)
	}

	return nil
}

func (s *Store) TaxSettings(ctx context.Context, companyID uuid.UUID) (*company.TaxSettings, error) {
	query := `
		SELECT id, company_id, is_vat_payer, vat_rate, tax_type, pit_ryczalt_rate, updated_at
		FROM tax_settings
		WHERE company_id = $1
	`

	var settings company.TaxSettings

	var taxType string

	err := s.db.QueryRowContext(ctx, query, companyID).Scan(
		&settings.ID, &settings.CompanyID, &settings.IsVATPayer, &settings.VATRate,
		&taxType, &settings.PITRyczaltRate, &settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrTaxSettingsNotFound
		}

		return nil, fmt.Errorf("getting tax settings: %w", err)
	}

	settings.TaxType = company.TaxType(taxType)

	return &settings, nil
}

func (s *Store) UpdateTaxSettings(ctx context.Context, settings *company.TaxSettings) error {
	query := `
		UPDATE tax_settings
		SET is_vat_payer = $1, vat_rate = $2, tax_type = $3, pit_ryczalt_rate = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		settings.IsVATPayer, settings.VATRate, settings.TaxType, settings.PITRyczaltRate, settings.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tax settings: %w", err)
	}

	return nil
}

const selectZUSColumns = `
	id, company_id, base_amount, emerytalne_rate, rentowe_rate, wypadkowe_rate,
	is_chorobowe_active, chorobowe_rate, labor_fund_rate, is_fep_active, fep_rate,
	health_insurance_tier, effective_from, updated_at
`

func (s *Store) ZUSSettings(ctx context.Context, companyID uuid.UUID) (*company.ZUSSettings, error) {
	query := `SELECT ` + selectZUSColumns + ` FROM zus_settings WHERE company_id = $1`

	var settings company.ZUSSettings

	var tier string

	err := s.db.QueryRowContext(ctx, query, companyID).Scan(
		&settings.ID, &settings.CompanyID, &settings.BaseAmount,
		&settings.EmerytalneRate, &settings.RentoweRate, &settings.WypadkoweRate,
		&settings.IsChoroboweActive, &settings.ChoroboweRate, &settings.LaborFundRate,
		&settings.IsFEPActive, &settings.FEPRate, &tier,
		&settings.EffectiveFrom, &settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrZUSSettingsNotFound
		}

		return nil, fmt.Errorf("getting zus settings: %w", err)
	}

	settings.HealthInsuranceTier = company.HealthInsuranceTier(tier)

	return &settings, nil
}

func (s *Store) UpdateZUSSettings(ctx context.Context, settings *company.ZUSSettings) error {
	query := `
		UPDATE zus_settings
		SET base_amount = $1, emerytalne_rate = $2, rentowe_rate = $3, wypadkowe_rate = $4,
			is_chorobowe_active = $5, chorobowe_rate = $6, labor_fund_rate = $7,
			is_fep_active = $8, fep_rate = $9, health_insurance_tier = $10,
			effective_from = $11, updated_at = NOW()
		WHERE id = $12
	`

	_, err := s.db.ExecContext(ctx, query,
		settings.BaseAmount, settings.EmerytalneRate, settings.RentoweRate, settings.WypadkoweRate,
		settings.IsChoroboweActive, settings.ChoroboweRate, settings.LaborFundRate,
		settings.IsFEPActive, settings.FEPRate, settings.HealthInsuranceTier,
		settings.EffectiveFrom, settings.ID,
	)
	if err != nil {
		return fmt.Errorf("updating zus settings: %w", err)
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
