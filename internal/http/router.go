package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/witmar/infirma/internal/http/client"
	"github.com/witmar/infirma/internal/http/company"
	"github.com/witmar/infirma/internal/http/expense"
	"github.com/witmar/infirma/internal/http/importcsv"
	"github.com/witmar/infirma/internal/http/invoice"
	"github.com/witmar/infirma/internal/http/tax"
	"github.com/witmar/infirma/internal/http/zus"
)

func New(
	companyV1 *company.Handler,
	clientsV1 *client.Handler,
	expensesV1 *expense.Handler,
	invoicesV1 *invoice.Handler,
	taxesV1 *tax.Handler,
	zusV1 *zus.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/company", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			companyV1.Routes(r)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})

		r.Route("/taxes", func(r chi.Router) {
			taxesV1.Routes(r)
		})

		r.Route("/zus", func(r chi.Router) {
			zusV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
