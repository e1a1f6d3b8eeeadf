package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemTotals(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  string
		unitPrice string
		vatRate   string
		wantNet   string
		wantVAT   string
		wantGross string
	}{
		{
			name:      "WholeQuantity",
			quantity:  "10",
			unitPrice: "150.00",
			vatRate:   "23.00",
			wantNet:   "1500.00",
			wantVAT:   "345.00",
			wantGross: "1845.00",
		},
		{
			name:      "FractionalQuantityRoundsHalfUp",
			quantity:  "2.500",
			unitPrice: "99.99",
			vatRate:   "23.00",
			wantNet:   "249.98",
			wantVAT:   "57.50",
			wantGross: "307.48",
		},
		{
			name:      "ZeroVATRate",
			quantity:  "1",
			unitPrice: "500.00",
			vatRate:   "0",
			wantNet:   "500.00",
			wantVAT:   "0",
			wantGross: "500.00",
		},
		{
			name:      "ReducedRate",
			quantity:  "3",
			unitPrice: "40.00",
			vatRate:   "8.00",
			wantNet:   "120.00",
			wantVAT:   "9.60",
			wantGross: "129.60",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			net, vat, gross := ItemTotals(
				decimal.RequireFromString(tc.quantity),
				decimal.RequireFromString(tc.unitPrice),
				decimal.RequireFromString(tc.vatRate),
			)

			assert.True(t, net.Equal(decimal.RequireFromString(tc.wantNet)), "net: got %s, want %s", net, tc.wantNet)
			assert.True(t, vat.Equal(decimal.RequireFromString(tc.wantVAT)), "vat: got %s, want %s", vat, tc.wantVAT)
			assert.True(t, gross.Equal(decimal.RequireFromString(tc.wantGross)), "gross: got %s, want %s", gross, tc.wantGross)
		})
	}
}

func TestDueDate(t *testing.T) {
	issue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		terms      PaymentTerms
		customDays int
		want       time.Time
	}{
		{
			name:  "Immediate",
			terms: TermsImmediate,
			want:  issue,
		},
		{
			name:  "SevenDays",
			terms: TermsDays7,
			want:  issue.AddDate(0, 0, 7),
		},
		{
			name:  "ThirtyDays",
			terms: TermsDays30,
			want:  issue.AddDate(0, 0, 30),
		},
		{
			name:  "NinetyDays",
			terms: TermsDays90,
			want:  issue.AddDate(0, 0, 90),
		},
		{
			name:       "Custom",
			terms:      TermsCustom,
			customDays: 45,
			want:       issue.AddDate(0, 0, 45),
		},
		{
			name:  "UnrecognizedFallsBackToThirtyDays",
			terms: PaymentTerms("45_days"),
			want:  issue.AddDate(0, 0, 30),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DueDate(issue, tc.terms, tc.customDays))
		})
	}
}

func TestNextNumber(t *testing.T) {
	testCases := []struct {
		name       string
		lastNumber string
		year       int
		want       string
	}{
		{
			name:       "FirstOfYear",
			lastNumber: "",
			year:       2026,
			want:       "FV/2026/001",
		},
		{
			name:       "Increments",
			lastNumber: "FV/2026/001",
			year:       2026,
			want:       "FV/2026/002",
		},
		{
			name:       "PreviousYearResetsSequence",
			lastNumber: "FV/2025/042",
			year:       2026,
			want:       "FV/2026/001",
		},
		{
			name:       "WidthGrowsPastThreeDigits",
			lastNumber: "FV/2026/999",
			year:       2026,
			want:       "FV/2026/1000",
		},
		{
			name:       "WideSequenceKeepsGrowing",
			lastNumber: "FV/2026/1000",
			year:       2026,
			want:       "FV/2026/1001",
		},
		{
			name:       "MalformedNumberRestartsSequence",
			lastNumber: "INV-2026-17",
			year:       2026,
			want:       "FV/2026/001",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextNumber(tc.lastNumber, tc.year))
		})
	}
}
