package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/expense"
)

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

	IsVATDeductible bool `json:"is_vat_deductible"`
	IsTaxDeductible bool `json:"is_tax_deductible"`

	PaymentMethod     expense.PaymentMethod `json:"payment_method"`
	DocumentReference string                `json:"document_reference,omitempty"`
	Notes             string                `json:"notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:                e.ID,
		Date:              e.Date,
		VendorName:        e.VendorName,
		Description:       e.Description,
		Category:          e.Category,
		AmountNet:         e.AmountNet,
		VATRate:           e.VATRate,
		VATAmount:         e.VATAmount,
		AmountGross:       e.AmountGross,
		IsVATDeductible:   e.IsVATDeductible,
		IsTaxDeductible:   e.IsTaxDeductible,
		PaymentMethod:     e.PaymentMethod,
		DocumentReference: e.DocumentReference,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

type listResponse struct {
	Expenses []expenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

func toListResponse(expenses []*expense.Expense, total int) listResponse {
	out := listResponse{
		Expenses: make([]expenseResponse, 0, len(expenses)),
		Total:    total,
	}

	for _, e := range expenses {
		out.Expenses = append(out.Expenses, toResponse(e))
	}

	return out
}

type periodTotalsResponse struct {
	Count int `json:"count"`

	TotalNet   decimal.Decimal `json:"total_net"`
	TotalVAT   decimal.Decimal `json:"total_vat"`
	TotalGross decimal.Decimal `json:"total_gross"`

	DeductibleVAT decimal.Decimal `json:"deductible_vat"`
	DeductibleNet decimal.Decimal `json:"deductible_net"`
}

type categorySummaryResponse struct {
	Count      int             `json:"count"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalVAT   decimal.Decimal `json:"total_vat"`
	TotalGross decimal.Decimal `json:"total_gross"`
}

type summaryResponse struct {
	Totals     periodTotalsResponse                         `json:"totals"`
	ByCategory map[expense.Category]categorySummaryResponse `json:"by_category"`
}

func toSummaryResponse(s *expense.Summary) summaryResponse {
	out := summaryResponse{
		Totals: periodTotalsResponse{
			Count:         s.Totals.Count,
			TotalNet:      s.Totals.TotalNet,
			TotalVAT:      s.Totals.TotalVAT,
			TotalGross:    s.Totals.TotalGross,
			DeductibleVAT: s.Totals.DeductibleVAT,
			DeductibleNet: s.Totals.DeductibleNet,
		},
		ByCategory: make(map[expense.Category]categorySummaryResponse, len(s.ByCategory)),
	}

	for category, row := range s.ByCategory {
		out.ByCategory[category] = categorySummaryResponse{
			Count:      row.Count,
			TotalNet:   row.TotalNet,
			TotalVAT:   row.TotalVAT,
			TotalGross: row.TotalGross,
		}
	}

	return out
}
