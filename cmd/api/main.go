package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/witmar/infirma/internal/client"
	clientStore "github.com/witmar/infirma/internal/client/store"
	"github.com/witmar/infirma/internal/company"
	companyStore "github.com/witmar/infirma/internal/company/store"
	"github.com/witmar/infirma/internal/config"
	"github.com/witmar/infirma/internal/database"
	"github.com/witmar/infirma/internal/expense"
	expenseStore "github.com/witmar/infirma/internal/expense/store"
	infirmaHttp "github.com/witmar/infirma/internal/http"
	clientHandler "github.com/witmar/infirma/internal/http/client"
	companyHandler "github.com/witmar/infirma/internal/http/company"
	expenseHandler "github.com/witmar/infirma/internal/http/expense"
	importHandler "github.com/witmar/infirma/internal/http/importcsv"
	invoiceHandler "github.com/witmar/infirma/internal/http/invoice"
	taxHandler "github.com/witmar/infirma/internal/http/tax"
	zusHandler "github.com/witmar/infirma/internal/http/zus"
	"github.com/witmar/infirma/internal/importer"
	"github.com/witmar/infirma/internal/invoice"
	invoiceStore "github.com/witmar/infirma/internal/invoice/store"
	"github.com/witmar/infirma/internal/tax"
	"github.com/witmar/infirma/internal/zus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.MigrationsDir, cfg.ConnectionString()); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	clientRepo := clientStore.New(db)
	expenseRepo := expenseStore.New(db)

	var (
		companyService = company.NewService(companyStore.New(db), company.Defaults{
			ZUSBaseAmount:  cfg.Defaults.ZUSBaseAmount,
			EmerytalneRate: cfg.Defaults.EmerytalneRate,
			RentoweRate:    cfg.Defaults.RentoweRate,
			WypadkoweRate:  cfg.Defaults.WypadkoweRate,
			ChoroboweRate:  cfg.Defaults.ChoroboweRate,
			LaborFundRate:  cfg.Defaults.LaborFundRate,
			FEPRate:        cfg.Defaults.FEPRate,
			VATRate:        cfg.Defaults.VATRate,
			PITRyczaltRate: cfg.Defaults.PITRyczaltRate,
		})
		clientService  = client.NewService(clientRepo)
		expenseService = expense.NewService(expenseRepo)
		invoiceService = invoice.NewService(invoiceStore.New(db), clientRepo)
		zusService     = zus.NewService(companyService, cfg.Defaults.AverageSalary)
		taxService     = tax.NewService(companyService, expenseRepo, zusService)
		importService  = importer.NewService()
	)

	var (
		companyH = companyHandler.NewHandler(companyService)
		clientH  = clientHandler.NewHandler(clientService)
		expenseH = expenseHandler.NewHandler(expenseService)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
		taxH     = taxHandler.NewHandler(taxService)
		zusH     = zusHandler.NewHandler(zusService)
		importH  = importHandler.NewHandler(importService, expenseService)
	)

	router := infirmaHttp.New(companyH, clientH, expenseH, invoiceH, taxH, zusH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
