package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies all pending migrations from dir. A no-op when dir is empty.
func Migrate(dir, connStr string) error {
	if dir == "" {
		return nil
	}

	m, err := migrate.New("file://"+dir, "pgx5://"+trimScheme(connStr))
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

func trimScheme(connStr string) string {
	const prefix = "postgres://"
	if len(connStr) > len(prefix) && connStr[:len(prefix)] == prefix {
		return connStr[len(prefix):]
	}

	return connStr
}
