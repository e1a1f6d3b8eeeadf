package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/money"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	Date        time.Time        `json:"date"`
	VendorName  string           `json:"vendor_name"`
	Description string           `json:"description"`
	Category    expense.Category `json:"category"`

	AmountNet   *decimal.Decimal `json:"amount_net,omitempty"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
	AmountGross *decimal.Decimal `json:"amount_gross,omitempty"`

	IsVATDeductible bool `json:"is_vat_deductible"`
	IsTaxDeductible bool `json:"is_tax_deductible"`

	PaymentMethod     expense.PaymentMethod `json:"payment_method"`
	DocumentReference string                `json:"document_reference"`
	Notes             string                `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Category.Valid() {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	if !req.PaymentMethod.Valid() {
		http.Error(w, "invalid payment method", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		Date:              req.Date,
		VendorName:        req.VendorName,
		Description:       req.Description,
		Category:          req.Category,
		AmountNet:         req.AmountNet,
		VATRate:           req.VATRate,
		AmountGross:       req.AmountGross,
		IsVATDeductible:   req.IsVATDeductible,
		IsTaxDeductible:   req.IsTaxDeductible,
		PaymentMethod:     req.PaymentMethod,
		DocumentReference: req.DocumentReference,
		Notes:             req.Notes,
	})
	if err != nil {
		if errors.Is(err, expense.ErrAmbiguousAmounts) || errors.Is(err, money.ErrInvalidAmounts) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{
		Search: r.URL.Query().Get("search"),
	}

	if s := r.URL.Query().Get("category"); s != "" {
		category := expense.Category(s)
		if !category.Valid() {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		filter.Category = &category
	}

	if s := r.URL.Query().Get("date_from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.DateFrom = &t
		}
	}

	if s := r.URL.Query().Get("date_to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.DateTo = &t
		}
	}

	if s := r.URL.Query().Get("is_vat_deductible"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			filter.IsVATDeductible = &b
		}
	}

	if s := r.URL.Query().Get("is_tax_deductible"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			filter.IsTaxDeductible = &b
		}
	}

	if s := r.URL.Query().Get("page"); s != "" {
		filter.Page, _ = strconv.Atoi(s)
	}

	if s := r.URL.Query().Get("per_page"); s != "" {
		filter.PerPage, _ = strconv.Atoi(s)
	}

	expenses, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toListResponse(expenses, total)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.MonthlySummary(r.Context(), year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Date        *time.Time        `json:"date,omitempty"`
	VendorName  *string           `json:"vendor_name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *expense.Category `json:"category,omitempty"`

	AmountNet   *decimal.Decimal `json:"amount_net,omitempty"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
	AmountGross *decimal.Decimal `json:"amount_gross,omitempty"`

	IsVATDeductible *bool `json:"is_vat_deductible,omitempty"`
	IsTaxDeductible *bool `json:"is_tax_deductible,omitempty"`

	PaymentMethod     *expense.PaymentMethod `json:"payment_method,omitempty"`
	DocumentReference *string                `json:"document_reference,omitempty"`
	Notes             *string                `json:"notes,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Category != nil && !req.Category.Valid() {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	if req.PaymentMethod != nil && !req.PaymentMethod.Valid() {
		http.Error(w, "invalid payment method", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Update(r.Context(), id, expense.UpdateParams{
		Date:              req.Date,
		VendorName:        req.VendorName,
		Description:       req.Description,
		Category:          req.Category,
		AmountNet:         req.AmountNet,
		VATRate:           req.VATRate,
		AmountGross:       req.AmountGross,
		IsVATDeductible:   req.IsVATDeductible,
		IsTaxDeductible:   req.IsTaxDeductible,
		PaymentMethod:     req.PaymentMethod,
		DocumentReference: req.DocumentReference,
		Notes:             req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, expense.ErrNotFound):
			http.Error(w, "expense not found", http.StatusNotFound)
		case errors.Is(err, money.ErrInvalidAmounts):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
