package zus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/witmar/infirma/internal/company"
)

func statutorySettings() *company.ZUSSettings {
	return &company.ZUSSettings{
		BaseAmount:          decimal.RequireFromString("5203.80"),
		EmerytalneRate:      decimal.RequireFromString("19.52"),
		RentoweRate:         decimal.RequireFromString("8.00"),
		WypadkoweRate:       decimal.RequireFromString("1.67"),
		IsChoroboweActive:   true,
		ChoroboweRate:       decimal.RequireFromString("2.45"),
		LaborFundRate:       decimal.RequireFromString("2.45"),
		IsFEPActive:         true,
		FEPRate:             decimal.RequireFromString("0.10"),
		HealthInsuranceTier: company.TierMedium,
		EffectiveFrom:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func assertEqualDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "got %s, want %s", got, want)
}

func TestServiceMonthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(statutorySettings(), nil)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	result, err := service.Monthly(context.Background(), decimal.RequireFromString("10000.00"))
	require.NoError(t, err)

	assertEqualDecimal(t, "1015.78", result.Emerytalne)
	assertEqualDecimal(t, "416.30", result.Rentowe)
	assertEqualDecimal(t, "86.90", result.Wypadkowe)
	assertEqualDecimal(t, "127.49", result.Chorobowe)
	assertEqualDecimal(t, "127.49", result.LaborFund)
	assertEqualDecimal(t, "5.20", result.FEP)
	assertEqualDecimal(t, "472.50", result.HealthInsurance)
	assertEqualDecimal(t, "1779.16", result.TotalZUS)
	assertEqualDecimal(t, "2251.66", result.TotalWithHealth)
	assert.Equal(t, company.TierMedium, result.HealthInsuranceTier)
}

func TestServiceMonthlyInactiveLines(t *testing.T) {
	inactive := statutorySettings()
	inactive.IsChoroboweActive = false
	inactive.IsFEPActive = false

	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(inactive, nil)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	result, err := service.Monthly(context.Background(), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, result.Chorobowe.IsZero())
	assert.True(t, result.FEP.IsZero())

	// Inactive lines still report their configured rates.
	assertEqualDecimal(t, "2.45", result.Rates.Chorobowe)
	assertEqualDecimal(t, "0.10", result.Rates.FEP)

	assertEqualDecimal(t, "1646.47", result.TotalZUS)
}

func TestServiceMonthlySettingsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(nil, company.ErrZUSSettingsNotFound)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	_, err := service.Monthly(context.Background(), decimal.Zero)
	assert.ErrorIs(t, err, company.ErrZUSSettingsNotFound)
}

func TestServiceYearly(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(statutorySettings(), nil).Times(12)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	incomes := make(map[int]decimal.Decimal, 12)
	for month := 1; month <= 12; month++ {
		incomes[month] = decimal.RequireFromString("10000.00")
	}

	summary, err := service.Yearly(context.Background(), 2026, incomes)
	require.NoError(t, err)

	assert.Equal(t, 2026, summary.Year)
	require.Len(t, summary.Monthly, 12)
	assert.Empty(t, summary.SkippedMonths)
	assert.Equal(t, 1, summary.Monthly[0].Month)
	assert.Equal(t, 12, summary.Monthly[11].Month)

	assertEqualDecimal(t, "12189.36", summary.Totals.Emerytalne)
	assertEqualDecimal(t, "21349.92", summary.Totals.TotalZUS)
	assertEqualDecimal(t, "27019.92", summary.Totals.TotalWithHealth)
}

func TestServiceYearlySkipsMonthsWithoutSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(nil, company.ErrZUSSettingsNotFound).Times(2)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(statutorySettings(), nil).Times(10)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	summary, err := service.Yearly(context.Background(), 2026, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, summary.SkippedMonths)
	require.Len(t, summary.Monthly, 10)
	assert.Equal(t, 3, summary.Monthly[0].Month)

	assertEqualDecimal(t, "10157.80", summary.Totals.Emerytalne)
}

func TestServiceYearlyAbortsOnOtherErrors(t *testing.T) {
	repoErr := errors.New("connection refused")

	ctrl := gomock.NewController(t)
	settings := NewMockSettingsSource(ctrl)
	settings.EXPECT().ZUSSettings(gomock.Any()).Return(nil, repoErr)

	service := NewService(settings, decimal.RequireFromString("7000.00"))

	_, err := service.Yearly(context.Background(), 2026, nil)
	assert.ErrorIs(t, err, repoErr)
}
