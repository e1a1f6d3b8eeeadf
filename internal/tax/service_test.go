package tax

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/witmar/infirma/internal/company"
	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/zus"
)

type serviceMocks struct {
	settings *MockSettingsSource
	expenses *MockExpenseSummarizer
	zus      *MockZUSCalculator
}

func newServiceMocks(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	mocks := serviceMocks{
		settings: NewMockSettingsSource(ctrl),
		expenses: NewMockExpenseSummarizer(ctrl),
		zus:      NewMockZUSCalculator(ctrl),
	}

	return NewService(mocks.settings, mocks.expenses, mocks.zus), mocks
}

func taxSettings(taxType company.TaxType) *company.TaxSettings {
	return &company.TaxSettings{
		IsVATPayer:     true,
		VATRate:        decimal.RequireFromString("23.00"),
		TaxType:        taxType,
		PITRyczaltRate: decimal.RequireFromString("12.00"),
	}
}

func statutoryContributions() *zus.Result {
	return &zus.Result{
		TotalZUS:        decimal.RequireFromString("1779.16"),
		HealthInsurance: decimal.RequireFromString("472.50"),
		TotalWithHealth: decimal.RequireFromString("2251.66"),
	}
}

func assertEqualDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "got %s, want %s", got, want)
}

func TestServiceMonthlyVAT(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(company.TaxRyczalt), nil)
	mocks.expenses.EXPECT().SumExpensesInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(expense.PeriodTotals{
		TotalNet:      decimal.RequireFromString("2500.00"),
		TotalVAT:      decimal.RequireFromString("575.00"),
		TotalGross:    decimal.RequireFromString("3075.00"),
		DeductibleNet: decimal.RequireFromString("2000.00"),
		DeductibleVAT: decimal.RequireFromString("460.00"),
	}, nil)

	result, err := service.MonthlyVAT(context.Background(), 2026, 3)
	require.NoError(t, err)

	assert.True(t, result.IsVATPayer)
	assert.True(t, result.IncomeVAT.IsZero())

	// Expense lines report every expense; only the deductible portion
	// offsets the output VAT.
	assertEqualDecimal(t, "2500.00", result.ExpenseNet)
	assertEqualDecimal(t, "575.00", result.ExpenseVAT)
	assertEqualDecimal(t, "3075.00", result.ExpenseGross)
	assertEqualDecimal(t, "460.00", result.DeductibleExpenseVAT)

	// More deductible VAT than output VAT is a refund, not zero.
	assertEqualDecimal(t, "-460.00", result.VATToPay)
}

func TestServiceMonthlyVATNonPayer(t *testing.T) {
	service, mocks := newServiceMocks(t)

	settings := taxSettings(company.TaxRyczalt)
	settings.IsVATPayer = false

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(settings, nil)
	mocks.expenses.EXPECT().SumExpensesInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(expense.PeriodTotals{
		DeductibleVAT: decimal.RequireFromString("460.00"),
	}, nil)

	result, err := service.MonthlyVAT(context.Background(), 2026, 3)
	require.NoError(t, err)

	assert.True(t, result.VATToPay.IsZero())
}

func TestServiceMonthlyVATSettingsMissing(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(nil, company.ErrTaxSettingsNotFound)

	_, err := service.MonthlyVAT(context.Background(), 2026, 3)
	assert.ErrorIs(t, err, company.ErrTaxSettingsNotFound)
}

func TestServiceMonthlyPIT(t *testing.T) {
	testCases := []struct {
		name        string
		taxType     company.TaxType
		grossIncome string
		expenses    string
		zusResult   *zus.Result
		zusErr      error
		wantNet     string
		wantZUS     string
		wantPIT     string
		wantRate    string
	}{
		{
			name:        "RyczaltOnNetRevenue",
			taxType:     company.TaxRyczalt,
			grossIncome: "12300.00",
			expenses:    "2000.00",
			wantNet:     "10000.00",
			wantZUS:     "0",
			wantPIT:     "1200.00",
			wantRate:    "12.00",
		},
		{
			name:        "LiniowyDeductsExpensesAndZUS",
			taxType:     company.TaxLiniowy,
			grossIncome: "12300.00",
			expenses:    "2000.00",
			zusResult:   statutoryContributions(),
			wantNet:     "10000.00",
			wantZUS:     "1779.16",
			wantPIT:     "1181.96",
			wantRate:    "19.00",
		},
		{
			name:        "LiniowyWithoutZUSSettings",
			taxType:     company.TaxLiniowy,
			grossIncome: "12300.00",
			expenses:    "2000.00",
			zusErr:      company.ErrZUSSettingsNotFound,
			wantNet:     "10000.00",
			wantZUS:     "0",
			wantPIT:     "1520.00",
			wantRate:    "19.00",
		},
		{
			name:        "ProgressiveBelowMonthlyThreshold",
			taxType:     company.TaxProgresywny,
			grossIncome: "12300.00",
			expenses:    "2000.00",
			zusResult:   statutoryContributions(),
			wantNet:     "10000.00",
			wantZUS:     "1779.16",
			wantPIT:     "746.50",
			wantRate:    "19.00",
		},
		{
			name:        "ProgressiveAboveMonthlyThreshold",
			taxType:     company.TaxProgresywny,
			grossIncome: "24600.00",
			expenses:    "2000.00",
			zusResult:   statutoryContributions(),
			wantNet:     "20000.00",
			wantZUS:     "1779.16",
			wantPIT:     "3190.67",
			wantRate:    "19.00",
		},
		{
			// Missing ZUS settings flatten the estimate to 12% of the whole
			// base, even past the bracket threshold.
			name:        "ProgressiveWithoutZUSSettingsStaysFlat",
			taxType:     company.TaxProgresywny,
			grossIncome: "24600.00",
			expenses:    "2000.00",
			zusErr:      company.ErrZUSSettingsNotFound,
			wantNet:     "20000.00",
			wantZUS:     "0",
			wantPIT:     "2160.00",
			wantRate:    "19.00",
		},
		{
			name:        "ZeroGrossIncome",
			taxType:     company.TaxRyczalt,
			grossIncome: "0",
			expenses:    "2000.00",
			wantNet:     "0",
			wantZUS:     "0",
			wantPIT:     "0",
			wantRate:    "12.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newServiceMocks(t)

			mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(tc.taxType), nil)
			mocks.expenses.EXPECT().SumExpensesInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(expense.PeriodTotals{
				DeductibleNet: decimal.RequireFromString(tc.expenses),
			}, nil)

			if tc.zusResult != nil || tc.zusErr != nil {
				mocks.zus.EXPECT().Monthly(gomock.Any(), gomock.Any()).Return(tc.zusResult, tc.zusErr)
			}

			result, err := service.MonthlyPIT(context.Background(), 2026, 3, decimal.RequireFromString(tc.grossIncome))
			require.NoError(t, err)

			assertEqualDecimal(t, tc.wantNet, result.NetIncome)
			assertEqualDecimal(t, tc.wantZUS, result.ZUSDeducted)
			assertEqualDecimal(t, tc.wantPIT, result.PITAmount)
			assertEqualDecimal(t, tc.wantRate, result.PITRateUsed)
		})
	}
}

func TestServiceMonthlySummary(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(company.TaxRyczalt), nil).Times(2)
	mocks.expenses.EXPECT().SumExpensesInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(expense.PeriodTotals{}, nil).Times(2)
	mocks.zus.EXPECT().Monthly(gomock.Any(), decimal.RequireFromString("10000.00")).Return(statutoryContributions(), nil)

	summary, err := service.MonthlySummary(context.Background(), 2026, 3, decimal.RequireFromString("12300.00"))
	require.NoError(t, err)

	assertEqualDecimal(t, "10000.00", summary.NetIncome)
	assertEqualDecimal(t, "1200.00", summary.PIT.PITAmount)
	assertEqualDecimal(t, "1200.00", summary.TotalTaxes)
	assertEqualDecimal(t, "2251.66", summary.TotalSocial)
	assertEqualDecimal(t, "3451.66", summary.TotalObligations)
	assertEqualDecimal(t, "8848.34", summary.NetAfterObligations)
}

func TestServiceMonthlySummaryZeroesZUSWhenUnconfigured(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(company.TaxRyczalt), nil).Times(2)
	mocks.expenses.EXPECT().SumExpensesInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(expense.PeriodTotals{}, nil).Times(2)
	mocks.zus.EXPECT().Monthly(gomock.Any(), gomock.Any()).Return(nil, company.ErrZUSSettingsNotFound)

	summary, err := service.MonthlySummary(context.Background(), 2026, 3, decimal.RequireFromString("12300.00"))
	require.NoError(t, err)

	assert.True(t, summary.TotalSocial.IsZero())
	assertEqualDecimal(t, "1200.00", summary.TotalObligations)
	assertEqualDecimal(t, "11100.00", summary.NetAfterObligations)
}

func TestServiceCompareRegimes(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(company.TaxRyczalt), nil)

	comparison, err := service.CompareRegimes(
		context.Background(),
		decimal.RequireFromString("120000.00"),
		decimal.RequireFromString("20000.00"),
		false,
	)
	require.NoError(t, err)

	require.Len(t, comparison.Options, 3)

	assert.Equal(t, company.TaxRyczalt, comparison.Options[0].TaxType)
	assertEqualDecimal(t, "120000.00", comparison.Options[0].TaxableIncome)
	assertEqualDecimal(t, "14400.00", comparison.Options[0].PIT)

	assert.Equal(t, company.TaxLiniowy, comparison.Options[1].TaxType)
	assertEqualDecimal(t, "100000.00", comparison.Options[1].TaxableIncome)
	assertEqualDecimal(t, "19000.00", comparison.Options[1].PIT)

	assert.Equal(t, company.TaxProgresywny, comparison.Options[2].TaxType)
	assertEqualDecimal(t, "12000.00", comparison.Options[2].PIT)

	assert.Equal(t, company.TaxProgresywny, comparison.Recommended)
	assertEqualDecimal(t, "7000.00", comparison.PotentialSavings)
	assertEqualDecimal(t, "108000.00", comparison.Options[2].NetAfterObligations)
	assertEqualDecimal(t, "10.00", comparison.Options[2].EffectiveRate)
}

func TestServiceCompareRegimesWithZUS(t *testing.T) {
	service, mocks := newServiceMocks(t)

	mocks.settings.EXPECT().TaxSettings(gomock.Any()).Return(taxSettings(company.TaxRyczalt), nil)
	mocks.zus.EXPECT().Monthly(gomock.Any(), decimal.RequireFromString("10000.00")).Return(statutoryContributions(), nil)

	comparison, err := service.CompareRegimes(
		context.Background(),
		decimal.RequireFromString("120000.00"),
		decimal.RequireFromString("20000.00"),
		true,
	)
	require.NoError(t, err)

	assertEqualDecimal(t, "21349.92", comparison.Options[0].ZUS)
	assertEqualDecimal(t, "5670.00", comparison.Options[0].HealthInsurance)

	// Liniowy and progresywny deduct the annual contributions first.
	assertEqualDecimal(t, "14943.52", comparison.Options[1].PIT)
	assertEqualDecimal(t, "9438.01", comparison.Options[2].PIT)

	assert.Equal(t, company.TaxProgresywny, comparison.Recommended)
	assertEqualDecimal(t, "5505.51", comparison.PotentialSavings)
}
