package zus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/witmar/infirma/internal/company"
)

func TestContribution(t *testing.T) {
	testCases := []struct {
		name string
		base string
		rate string
		want string
	}{
		{
			name: "EmerytalneOnStatutoryBase",
			base: "5203.80",
			rate: "19.52",
			want: "1015.78",
		},
		{
			name: "RentoweOnStatutoryBase",
			base: "5203.80",
			rate: "8.00",
			want: "416.30",
		},
		{
			name: "WypadkoweOnStatutoryBase",
			base: "5203.80",
			rate: "1.67",
			want: "86.90",
		},
		{
			name: "FEPOnStatutoryBase",
			base: "5203.80",
			rate: "0.10",
			want: "5.20",
		},
		{
			name: "ZeroBase",
			base: "0",
			rate: "19.52",
			want: "0",
		},
		{
			name: "NegativeBase",
			base: "-100",
			rate: "19.52",
			want: "0",
		},
		{
			name: "NegativeRate",
			base: "5203.80",
			rate: "-1",
			want: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Contribution(decimal.RequireFromString(tc.base), decimal.RequireFromString(tc.rate))

			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestHealthInsurance(t *testing.T) {
	averageSalary := decimal.RequireFromString("7000.00")

	testCases := []struct {
		name   string
		tier   company.HealthInsuranceTier
		income string
		want   string
	}{
		{
			name:   "LowTierIgnoresIncome",
			tier:   company.TierLow,
			income: "50000.00",
			want:   "378.00",
		},
		{
			name:   "MediumTierIgnoresIncome",
			tier:   company.TierMedium,
			income: "50000.00",
			want:   "472.50",
		},
		{
			name:   "HighTierBelowFloor",
			tier:   company.TierHigh,
			income: "3000.00",
			want:   "472.50",
		},
		{
			name:   "HighTierAboveFloor",
			tier:   company.TierHigh,
			income: "100000.00",
			want:   "9000.00",
		},
		{
			name:   "HighTierExactlyAtFloor",
			tier:   company.TierHigh,
			income: "5250.00",
			want:   "472.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HealthInsurance(tc.tier, decimal.RequireFromString(tc.income), averageSalary)

			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}
