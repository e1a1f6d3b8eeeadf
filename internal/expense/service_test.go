package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestService_Create(t *testing.T) {
	type want struct {
		net   string
		vat   string
		gross string
	}

	type testCase struct {
		name    string
		params  expense.CreateParams
		want    want
		wantErr error
	}

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "FromNetAndRate",
			params: expense.CreateParams{
				Date:       date,
				VendorName: "Media Markt",
				Category:   expense.CategoryEquipment,
				AmountNet:  ptr("1000.00"),
				VATRate:    ptr("23.00"),
			},
			want: want{net: "1000.00", vat: "230.00", gross: "1230.00"},
		},
		{
			name: "FromGross",
			params: expense.CreateParams{
				Date:        date,
				VendorName:  "Orlen",
				Category:    expense.CategoryFuel,
				AmountGross: ptr("246.00"),
			},
			want: want{net: "200.00", vat: "46.00", gross: "246.00"},
		},
		{
			name: "BothCombinationsRejected",
			params: expense.CreateParams{
				Date:        date,
				AmountNet:   ptr("100.00"),
				VATRate:     ptr("23.00"),
				AmountGross: ptr("123.00"),
			},
			wantErr: expense.ErrAmbiguousAmounts,
		},
		{
			name:    "NeitherCombinationRejected",
			params:  expense.CreateParams{Date: date},
			wantErr: money.ErrInvalidAmounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						return nil
					})
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.AmountNet.Equal(d(tt.want.net)), "net: got %s", got.AmountNet)
			assert.True(t, got.VATAmount.Equal(d(tt.want.vat)), "vat: got %s", got.VATAmount)
			assert.True(t, got.AmountGross.Equal(d(tt.want.gross)), "gross: got %s", got.AmountGross)
			assert.True(t, got.AmountGross.Equal(got.AmountNet.Add(got.VATAmount)))
		})
	}
}

func TestService_Update_RecomputesFinancials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	existing := &expense.Expense{
		ID:          id,
		AmountNet:   d("100.00"),
		VATRate:     d("23.00"),
		VATAmount:   d("23.00"),
		AmountGross: d("123.00"),
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	got, err := svc.Update(context.Background(), id, expense.UpdateParams{AmountNet: ptr("200.00")})
	require.NoError(t, err)

	assert.True(t, got.AmountNet.Equal(d("200.00")))
	assert.True(t, got.VATAmount.Equal(d("46.00")))
	assert.True(t, got.AmountGross.Equal(d("246.00")))
}

func TestService_Update_RateOnlyRederivesFromNet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	existing := &expense.Expense{
		ID:          id,
		AmountNet:   d("100.00"),
		VATRate:     d("23.00"),
		VATAmount:   d("23.00"),
		AmountGross: d("123.00"),
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	got, err := svc.Update(context.Background(), id, expense.UpdateParams{VATRate: ptr("8.00")})
	require.NoError(t, err)

	assert.True(t, got.AmountNet.Equal(d("100.00")))
	assert.True(t, got.VATAmount.Equal(d("8.00")))
	assert.True(t, got.AmountGross.Equal(d("108.00")))
}

func TestService_Update_NonFinancialFieldsKeepAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	existing := &expense.Expense{
		ID:          id,
		VendorName:  "Orlen",
		AmountNet:   d("100.00"),
		VATRate:     d("23.00"),
		VATAmount:   d("23.00"),
		AmountGross: d("123.00"),
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	vendor := "BP"
	got, err := svc.Update(context.Background(), id, expense.UpdateParams{VendorName: &vendor})
	require.NoError(t, err)

	assert.Equal(t, "BP", got.VendorName)
	assert.True(t, got.AmountGross.Equal(d("123.00")))
}

func TestService_MonthlySummary_UsesCalendarBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC) // leap year

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().SumExpensesInPeriod(gomock.Any(), from, to).Return(expense.PeriodTotals{Count: 2}, nil)
	repo.EXPECT().SumExpensesByCategory(gomock.Any(), from, to).Return(map[expense.Category]expense.CategorySummary{}, nil)

	svc := expense.NewService(repo)

	summary, err := svc.MonthlySummary(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Totals.Count)
}
