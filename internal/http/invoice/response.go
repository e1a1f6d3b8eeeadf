package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/invoice"
)

type itemResponse struct {
	ID uuid.UUID `json:"id"`

	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`

	UnitPriceNet decimal.Decimal `json:"unit_price_net"`
	VATRate      decimal.Decimal `json:"vat_rate"`

	AmountNet   decimal.Decimal `json:"amount_net"`
	AmountVAT   decimal.Decimal `json:"amount_vat"`
	AmountGross decimal.Decimal `json:"amount_gross"`
}

type invoiceResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`

	ClientID uuid.UUID `json:"client_id"`

	IssueDate   time.Time `json:"issue_date"`
	ServiceDate time.Time `json:"service_date"`
	DueDate     time.Time `json:"due_date"`

	PaymentTerms invoice.PaymentTerms `json:"payment_terms"`
	CustomDays   int                  `json:"custom_days,omitempty"`

	Status invoice.Status `json:"status"`

	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`

	TotalNet   decimal.Decimal `json:"total_net"`
	TotalVAT   decimal.Decimal `json:"total_vat"`
	TotalGross decimal.Decimal `json:"total_gross"`

	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`

	PlaceOfIssue  string `json:"place_of_issue,omitempty"`
	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internal_notes,omitempty"`

	Items []itemResponse `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	out := invoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		IssueDate:     inv.IssueDate,
		ServiceDate:   inv.ServiceDate,
		DueDate:       inv.DueDate,
		PaymentTerms:  inv.PaymentTerms,
		CustomDays:    inv.CustomDays,
		Status:        inv.Status,
		Currency:      inv.Currency,
		ExchangeRate:  inv.ExchangeRate,
		TotalNet:      inv.TotalNet,
		TotalVAT:      inv.TotalVAT,
		TotalGross:    inv.TotalGross,
		PaymentDate:   inv.PaymentDate,
		PaymentMethod: inv.PaymentMethod,
		PlaceOfIssue:  inv.PlaceOfIssue,
		Notes:         inv.Notes,
		InternalNotes: inv.InternalNotes,
		Items:         make([]itemResponse, 0, len(inv.Items)),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}

	for _, it := range inv.Items {
		out.Items = append(out.Items, itemResponse{
			ID:           it.ID,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			UnitPriceNet: it.UnitPriceNet,
			VATRate:      it.VATRate,
			AmountNet:    it.AmountNet,
			AmountVAT:    it.AmountVAT,
			AmountGross:  it.AmountGross,
		})
	}

	return out
}

type listResponse struct {
	Invoices []invoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

func toListResponse(invoices []*invoice.Invoice, total int) listResponse {
	out := listResponse{
		Invoices: make([]invoiceResponse, 0, len(invoices)),
		Total:    total,
	}

	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, toResponse(inv))
	}

	return out
}

type statusSummaryResponse struct {
	Count      int             `json:"count"`
	TotalGross decimal.Decimal `json:"total_gross"`
}

type summaryResponse struct {
	Count      int             `json:"count"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalGross decimal.Decimal `json:"total_gross"`

	ByStatus map[invoice.Status]statusSummaryResponse `json:"by_status"`

	Outstanding decimal.Decimal `json:"outstanding"`
	Overdue     decimal.Decimal `json:"overdue"`
}

func toSummaryResponse(s *invoice.Summary) summaryResponse {
	out := summaryResponse{
		Count:       s.Count,
		TotalNet:    s.TotalNet,
		TotalGross:  s.TotalGross,
		ByStatus:    make(map[invoice.Status]statusSummaryResponse, len(s.ByStatus)),
		Outstanding: s.Outstanding,
		Overdue:     s.Overdue,
	}

	for status, row := range s.ByStatus {
		out.ByStatus[status] = statusSummaryResponse{
			Count:      row.Count,
			TotalGross: row.TotalGross,
		}
	}

	return out
}
