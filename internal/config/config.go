package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"InFirma"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"infirma"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	// MigrationsDir, when set, makes the API apply pending schema
	// migrations at startup.
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:""`

	// Default statutory rates applied when a company profile is created.
	// 2024 placeholder values, adjustable per deployment.
	Defaults struct {
		ZUSBaseAmount  decimal.Decimal `envconfig:"DEFAULT_ZUS_BASE_AMOUNT" default:"5203.80"`
		EmerytalneRate decimal.Decimal `envconfig:"DEFAULT_EMERYTALNE_RATE" default:"19.52"`
		RentoweRate    decimal.Decimal `envconfig:"DEFAULT_RENTOWE_RATE" default:"8.00"`
		WypadkoweRate  decimal.Decimal `envconfig:"DEFAULT_WYPADKOWE_RATE" default:"1.67"`
		ChoroboweRate  decimal.Decimal `envconfig:"DEFAULT_CHOROBOWE_RATE" default:"2.45"`
		LaborFundRate  decimal.Decimal `envconfig:"DEFAULT_LABOR_FUND_RATE" default:"2.45"`
		FEPRate        decimal.Decimal `envconfig:"DEFAULT_FEP_RATE" default:"0.10"`

		VATRate        decimal.Decimal `envconfig:"DEFAULT_VAT_RATE" default:"23.00"`
		PITRyczaltRate decimal.Decimal `envconfig:"DEFAULT_PIT_RYCZALT_RATE" default:"12.00"`

		// AverageSalary is the reference salary the tiered health
		// insurance bases are derived from.
		AverageSalary decimal.Decimal `envconfig:"AVERAGE_SALARY_BASE" default:"7000.00"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
