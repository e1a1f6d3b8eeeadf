package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/witmar/infirma/internal/company"
)

func TestPITForIncome(t *testing.T) {
	testCases := []struct {
		name          string
		income        string
		taxType       company.TaxType
		ryczaltRate   string
		zusDeductible string
		wantPIT       string
		wantRate      string
	}{
		{
			name:          "RyczaltFlatRateOnRevenue",
			income:        "120000.00",
			taxType:       company.TaxRyczalt,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "14400.00",
			wantRate:      "12.00",
		},
		{
			name:          "RyczaltIgnoresZUSDeduction",
			income:        "120000.00",
			taxType:       company.TaxRyczalt,
			ryczaltRate:   "12.00",
			zusDeductible: "21349.92",
			wantPIT:       "14400.00",
			wantRate:      "12.00",
		},
		{
			name:          "LiniowyWithoutZUS",
			income:        "100000.00",
			taxType:       company.TaxLiniowy,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "19000.00",
			wantRate:      "19.00",
		},
		{
			// The deduction lowers the amount but the regime still reports
			// its nominal 19% rate.
			name:          "LiniowyDeductsZUSKeepsNominalRate",
			income:        "100000.00",
			taxType:       company.TaxLiniowy,
			ryczaltRate:   "12.00",
			zusDeductible: "21349.92",
			wantPIT:       "14943.52",
			wantRate:      "19.00",
		},
		{
			name:          "ProgressiveBelowAnnualThreshold",
			income:        "100000.00",
			taxType:       company.TaxProgresywny,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "12000.00",
			wantRate:      "12.00",
		},
		{
			name:          "ProgressiveAboveAnnualThreshold",
			income:        "150000.00",
			taxType:       company.TaxProgresywny,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "24000.00",
			wantRate:      "16.00",
		},
		{
			// Above the threshold the blended rate divides by the taxable
			// base after the ZUS deduction, not by the raw income.
			name:          "ProgressiveAboveThresholdBlendsOverTaxable",
			income:        "150000.00",
			taxType:       company.TaxProgresywny,
			ryczaltRate:   "12.00",
			zusDeductible: "10000.00",
			wantPIT:       "20800.00",
			wantRate:      "14.86",
		},
		{
			name:          "ZUSExceedingIncomeFloorsAtZero",
			income:        "10000.00",
			taxType:       company.TaxLiniowy,
			ryczaltRate:   "12.00",
			zusDeductible: "20000.00",
			wantPIT:       "0",
			wantRate:      "19.00",
		},
		{
			name:          "ZeroIncomeProgressive",
			income:        "0",
			taxType:       company.TaxProgresywny,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "0",
			wantRate:      "12.00",
		},
		{
			name:          "ZeroIncomeLiniowy",
			income:        "0",
			taxType:       company.TaxLiniowy,
			ryczaltRate:   "12.00",
			zusDeductible: "0",
			wantPIT:       "0",
			wantRate:      "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pit, rate := PITForIncome(
				decimal.RequireFromString(tc.income),
				tc.taxType,
				decimal.RequireFromString(tc.ryczaltRate),
				decimal.RequireFromString(tc.zusDeductible),
			)

			assert.True(t, pit.Equal(decimal.RequireFromString(tc.wantPIT)), "pit: got %s, want %s", pit, tc.wantPIT)
			assert.True(t, rate.Equal(decimal.RequireFromString(tc.wantRate)), "rate: got %s, want %s", rate, tc.wantRate)
		})
	}
}
