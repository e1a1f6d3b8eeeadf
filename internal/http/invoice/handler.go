package invoice

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

	"github.com/witmar/infirma/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/status", h.updateStatus)
}

type itemRequest struct {
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPriceNet decimal.Decimal `json:"unit_price_net"`
	VATRate      decimal.Decimal `json:"vat_rate"`
}

func toItemParams(items []itemRequest) []invoice.ItemParams {
	if items == nil {
		return nil
	}

	out := make([]invoice.ItemParams, 0, len(items))
	for _, it := range items {
		out = append(out, invoice.ItemParams{
			Description:  it.Description,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			UnitPriceNet: it.UnitPriceNet,
			VATRate:      it.VATRate,
		})
	}

	return out
}

type createInvoiceRequest struct {
	ClientID uuid.UUID `json:"client_id"`

	IssueDate   time.Time `json:"issue_date"`
	ServiceDate time.Time `json:"service_date"`

	PaymentTerms invoice.PaymentTerms `json:"payment_terms"`
	CustomDays   *int                 `json:"custom_days,omitempty"`

	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`

	PaymentMethod string `json:"payment_method"`
	PlaceOfIssue  string `json:"place_of_issue"`
	Notes         string `json:"notes"`
	InternalNotes string `json:"internal_notes"`

	Items []itemRequest `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.PaymentTerms.Valid() {
		http.Error(w, "invalid payment terms", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		ServiceDate:   req.ServiceDate,
		PaymentTerms:  req.PaymentTerms,
		CustomDays:    req.CustomDays,
		Currency:      req.Currency,
		ExchangeRate:  req.ExchangeRate,
		PaymentMethod: req.PaymentMethod,
		PlaceOfIssue:  req.PlaceOfIssue,
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
		Items:         toItemParams(req.Items),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := invoice.ListFilter{
		Currency: r.URL.Query().Get("currency"),
		Search:   r.URL.Query().Get("search"),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := invoice.Status(s)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		filter.Status = &status
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid client id", http.StatusBadRequest)
			return
		}

		filter.ClientID = &id
	}

	if s := r.URL.Query().Get("issue_date_from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.IssueDateFrom = &t
		}
	}

	if s := r.URL.Query().Get("issue_date_to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.IssueDateTo = &t
		}
	}

	if s := r.URL.Query().Get("due_date_from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.DueDateFrom = &t
		}
	}

	if s := r.URL.Query().Get("due_date_to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.DueDateTo = &t
		}
	}

	if s := r.URL.Query().Get("min_gross"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			filter.MinGross = &d
		}
	}

	if s := r.URL.Query().Get("max_gross"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			filter.MaxGross = &d
		}
	}

	if s := r.URL.Query().Get("page"); s != "" {
		filter.Page, _ = strconv.Atoi(s)
	}

	if s := r.URL.Query().Get("per_page"); s != "" {
		filter.PerPage, _ = strconv.Atoi(s)
	}

	invoices, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toListResponse(invoices, total)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
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

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateInvoiceRequest struct {
	ClientID *uuid.UUID `json:"client_id,omitempty"`

	IssueDate   *time.Time `json:"issue_date,omitempty"`
	ServiceDate *time.Time `json:"service_date,omitempty"`

	PaymentTerms *invoice.PaymentTerms `json:"payment_terms,omitempty"`
	CustomDays   *int                  `json:"custom_days,omitempty"`

	Currency     *string          `json:"currency,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`

	PaymentMethod *string `json:"payment_method,omitempty"`
	PlaceOfIssue  *string `json:"place_of_issue,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	InternalNotes *string `json:"internal_notes,omitempty"`

	Items []itemRequest `json:"items,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PaymentTerms != nil && !req.PaymentTerms.Valid() {
		http.Error(w, "invalid payment terms", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Update(r.Context(), id, invoice.UpdateParams{
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		ServiceDate:   req.ServiceDate,
		PaymentTerms:  req.PaymentTerms,
		CustomDays:    req.CustomDays,
		Currency:      req.Currency,
		ExchangeRate:  req.ExchangeRate,
		PaymentMethod: req.PaymentMethod,
		PlaceOfIssue:  req.PlaceOfIssue,
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
		Items:         toItemParams(req.Items),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
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
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status        invoice.Status `json:"status"`
	PaymentDate   *time.Time     `json:"payment_date,omitempty"`
	PaymentMethod *string        `json:"payment_method,omitempty"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.UpdateStatus(r.Context(), id, invoice.StatusUpdate{
		Status:        req.Status,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var transitionErr *invoice.TransitionError

	switch {
	case errors.Is(err, invoice.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, invoice.ErrNotDraft):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, invoice.ErrClientNotFound),
		errors.Is(err, invoice.ErrNoItems),
		errors.Is(err, invoice.ErrPaymentDateRequired),
		errors.Is(err, invoice.ErrCustomDaysRequired),
		errors.Is(err, invoice.ErrCustomDaysNotAllowed),
		errors.Is(err, invoice.ErrExchangeRateRequired),
		errors.Is(err, invoice.ErrExchangeRateNotAllowed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
