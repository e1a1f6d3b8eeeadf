package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/importer"
)

type Handler struct {
	importSvc  *importer.Service
	expenseSvc *expense.Service
}

func NewHandler(importSvc *importer.Service, expenseSvc *expense.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		expenseSvc: expenseSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.preview)
	r.Post("/confirm", h.confirmImport)
}

type draftDTO struct {
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
	DocumentReference string                `json:"document_reference,omitempty"`
	Notes             string                `json:"notes,omitempty"`
}

type previewResponse struct {
	Parsed int        `json:"parsed"`
	Drafts []draftDTO `json:"drafts"`
}

type confirmRequest struct {
	Drafts []draftDTO `json:"drafts"`
}

type expenseResponse struct {
	ID uuid.UUID `json:"id"`

	Date        time.Time        `json:"date"`
	VendorName  string           `json:"vendor_name"`
	Description string           `json:"description,omitempty"`
	Category    expense.Category `json:"category"`

	AmountNet   decimal.Decimal `json:"amount_net"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	AmountGross decimal.Decimal `json:"amount_gross"`

	PaymentMethod expense.PaymentMethod `json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
}

type confirmResponse struct {
	Imported int               `json:"imported"`
	Expenses []expenseResponse `json:"expenses"`
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatExpenseCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := previewResponse{
		Parsed: len(params),
		Drafts: make([]draftDTO, 0, len(params)),
	}
	for _, p := range params {
		resp.Drafts = append(resp.Drafts, toDraftDTO(p))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := confirmResponse{
		Expenses: make([]expenseResponse, 0, len(req.Drafts)),
	}

	for _, d := range req.Drafts {
		e, err := h.expenseSvc.Create(r.Context(), expense.CreateParams{
			Date:              d.Date,
			VendorName:        d.VendorName,
			Description:       d.Description,
			Category:          d.Category,
			AmountNet:         d.AmountNet,
			VATRate:           d.VATRate,
			AmountGross:       d.AmountGross,
			IsVATDeductible:   d.IsVATDeductible,
			IsTaxDeductible:   d.IsTaxDeductible,
			PaymentMethod:     d.PaymentMethod,
			DocumentReference: d.DocumentReference,
			Notes:             d.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp.Expenses = append(resp.Expenses, toExpenseResponse(e))
	}

	resp.Imported = len(resp.Expenses)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toDraftDTO(p expense.CreateParams) draftDTO {
	return draftDTO{
		Date:              p.Date,
		VendorName:        p.VendorName,
		Description:       p.Description,
		Category:          p.Category,
		AmountNet:         p.AmountNet,
		VATRate:           p.VATRate,
		AmountGross:       p.AmountGross,
		IsVATDeductible:   p.IsVATDeductible,
		IsTaxDeductible:   p.IsTaxDeductible,
		PaymentMethod:     p.PaymentMethod,
		DocumentReference: p.DocumentReference,
		Notes:             p.Notes,
	}
}

func toExpenseResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		VendorName:    e.VendorName,
		Description:   e.Description,
		Category:      e.Category,
		AmountNet:     e.AmountNet,
		VATRate:       e.VATRate,
		VATAmount:     e.VATAmount,
		AmountGross:   e.AmountGross,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     e.CreatedAt,
	}
}
