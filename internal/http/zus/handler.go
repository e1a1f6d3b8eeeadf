package zus

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/zus"
)

type Handler struct {
	svc *zus.Service
}

func NewHandler(svc *zus.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/yearly", h.yearly)
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	income, err := parseIncome(r.URL.Query().Get("income"))
	if err != nil {
		http.Error(w, "invalid income", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Monthly(r.Context(), income)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrZUSSettingsNotFound) {
			http.Error(w, "zus settings not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResultResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) yearly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	income, err := parseIncome(r.URL.Query().Get("income"))
	if err != nil {
		http.Error(w, "invalid income", http.StatusBadRequest)
		return
	}

	incomes := make(map[int]decimal.Decimal, 12)
	for month := 1; month <= 12; month++ {
		incomes[month] = income
	}

	summary, err := h.svc.Yearly(r.Context(), year, incomes)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			http.Error(w, "company profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toYearlyResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseIncome(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}
