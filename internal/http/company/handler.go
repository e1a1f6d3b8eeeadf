package company

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/company"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.get)
	r.Patch("/", h.update)

	r.Get("/tax-settings", h.taxSettings)
	r.Patch("/tax-settings", h.updateTaxSettings)

	r.Get("/zus-settings", h.zusSettings)
	r.Patch("/zus-settings", h.updateZUSSettings)
}

type createProfileRequest struct {
	Name  string `json:"name"`
	NIP   string `json:"nip"`
	REGON string `json:"regon"`
	KRS   string `json:"krs"`

	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`

	BusinessActivity string `json:"business_activity"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.svc.CreateProfile(r.Context(), company.CreateParams{
		Name:             req.Name,
		NIP:              req.NIP,
		REGON:            req.REGON,
		KRS:              req.KRS,
		Street:           req.Street,
		City:             req.City,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		BusinessActivity: req.BusinessActivity,
	})
	if err != nil {
		switch {
		case errors.Is(err, company.ErrInvalidNIP):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, company.ErrAlreadyExists):
			http.Error(w, "company profile already exists", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toProfileResponse(profile)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context())
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			http.Error(w, "company profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProfileResponse(profile)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	NIP   *string `json:"nip,omitempty"`
	REGON *string `json:"regon,omitempty"`
	KRS   *string `json:"krs,omitempty"`

	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`

	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`

	BusinessActivity *string `json:"business_activity,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), company.UpdateParams{
		Name:             req.Name,
		NIP:              req.NIP,
		REGON:            req.REGON,
		KRS:              req.KRS,
		Street:           req.Street,
		City:             req.City,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		BusinessActivity: req.BusinessActivity,
	})
	if err != nil {
		switch {
		case errors.Is(err, company.ErrNotFound):
			http.Error(w, "company profile not found", http.StatusNotFound)
		case errors.Is(err, company.ErrInvalidNIP):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProfileResponse(profile)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) taxSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.TaxSettings(r.Context())
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrTaxSettingsNotFound) {
			http.Error(w, "tax settings not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTaxSettingsResponse(settings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTaxSettingsRequest struct {
	IsVATPayer     *bool            `json:"is_vat_payer,omitempty"`
	VATRate        *decimal.Decimal `json:"vat_rate,omitempty"`
	TaxType        *company.TaxType `json:"tax_type,omitempty"`
	PITRyczaltRate *decimal.Decimal `json:"pit_ryczalt_rate,omitempty"`
}

func (h *Handler) updateTaxSettings(w http.ResponseWriter, r *http.Request) {
	var req updateTaxSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TaxType != nil && !req.TaxType.Valid() {
		http.Error(w, "invalid tax type", http.StatusBadRequest)
		return
	}

	settings, err := h.svc.UpdateTaxSettings(r.Context(), company.TaxSettingsUpdate{
		IsVATPayer:     req.IsVATPayer,
		VATRate:        req.VATRate,
		TaxType:        req.TaxType,
		PITRyczaltRate: req.PITRyczaltRate,
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrTaxSettingsNotFound) {
			http.Error(w, "tax settings not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTaxSettingsResponse(settings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) zusSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.ZUSSettings(r.Context())
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrZUSSettingsNotFound) {
			http.Error(w, "zus settings not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toZUSSettingsResponse(settings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateZUSSettingsRequest struct {
	BaseAmount *decimal.Decimal `json:"base_amount,omitempty"`

	EmerytalneRate *decimal.Decimal `json:"emerytalne_rate,omitempty"`
	RentoweRate    *decimal.Decimal `json:"rentowe_rate,omitempty"`
	WypadkoweRate  *decimal.Decimal `json:"wypadkowe_rate,omitempty"`

	IsChoroboweActive *bool            `json:"is_chorobowe_active,omitempty"`
	ChoroboweRate     *decimal.Decimal `json:"chorobowe_rate,omitempty"`

	LaborFundRate *decimal.Decimal `json:"labor_fund_rate,omitempty"`

	IsFEPActive *bool            `json:"is_fep_active,omitempty"`
	FEPRate     *decimal.Decimal `json:"fep_rate,omitempty"`

	HealthInsuranceTier *company.HealthInsuranceTier `json:"health_insurance_tier,omitempty"`

	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
}

func (h *Handler) updateZUSSettings(w http.ResponseWriter, r *http.Request) {
	var req updateZUSSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.HealthInsuranceTier != nil && !req.HealthInsuranceTier.Valid() {
		http.Error(w, "invalid health insurance tier", http.StatusBadRequest)
		return
	}

	settings, err := h.svc.UpdateZUSSettings(r.Context(), company.ZUSSettingsUpdate{
		BaseAmount:          req.BaseAmount,
		EmerytalneRate:      req.EmerytalneRate,
		RentoweRate:         req.RentoweRate,
		WypadkoweRate:       req.WypadkoweRate,
		IsChoroboweActive:   req.IsChoroboweActive,
		ChoroboweRate:       req.ChoroboweRate,
		LaborFundRate:       req.LaborFundRate,
		IsFEPActive:         req.IsFEPActive,
		FEPRate:             req.FEPRate,
		HealthInsuranceTier: req.HealthInsuranceTier,
		EffectiveFrom:       req.EffectiveFrom,
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) || errors.Is(err, company.ErrZUSSettingsNotFound) {
			http.Error(w, "zus settings not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toZUSSettingsResponse(settings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
