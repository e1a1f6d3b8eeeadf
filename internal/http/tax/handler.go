package tax

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/tax"
)

type Handler struct {
	svc *tax.Service
}

func NewHandler(svc *tax.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/vat", h.vat)
	r.Get("/pit", h.pit)
	r.Get("/summary", h.summary)
	r.Get("/compare", h.compare)
}

func (h *Handler) vat(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.svc.MonthlyVAT(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toVATResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) pit(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	income, err := parseAmount(r.URL.Query().Get("income"))
	if err != nil {
		http.Error(w, "invalid income", http.StatusBadRequest)
		return
	}

	result, err := h.svc.MonthlyPIT(r.Context(), year, month, income)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPITResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	income, err := parseAmount(r.URL.Query().Get("income"))
	if err != nil {
		http.Error(w, "invalid income", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.MonthlySummary(r.Context(), year, month, income)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	income, err := parseAmount(r.URL.Query().Get("annual_income"))
	if err != nil {
		http.Error(w, "invalid annual income", http.StatusBadRequest)
		return
	}

	expenses, err := parseAmount(r.URL.Query().Get("annual_expenses"))
	if err != nil {
		http.Error(w, "invalid annual expenses", http.StatusBadRequest)
		return
	}

	includeZUS := true
	if s := r.URL.Query().Get("include_zus"); s != "" {
		includeZUS, err = strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid include_zus", http.StatusBadRequest)
			return
		}
	}

	comparison, err := h.svc.CompareRegimes(r.Context(), income, expenses, includeZUS)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toComparisonResponse(comparison)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parsePeriod(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return 0, 0, false
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return 0, 0, false
	}

	return year, month, true
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrTaxSettingsNotFound) {
		http.Error(w, "tax settings not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
