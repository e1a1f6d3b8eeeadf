package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witmar/infirma/internal/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123.455", "123.46"},
		{"123.445", "123.45"},
		{"123.444", "123.44"},
		{"0.005", "0.01"},
		{"100", "100.00"},
		{"-1.005", "-1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.Round(d(tt.in))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestRound_Idempotent(t *testing.T) {
	values := []string{"123.455", "0.005", "19.525", "-45.675", "1015.78164"}

	for _, v := range values {
		once := money.Round(d(v))
		twice := money.Round(once)
		assert.True(t, once.Equal(twice), "rounding %s twice changed the value", v)
	}
}

func TestDecomposeVAT(t *testing.T) {
	type want struct {
		net   string
		vat   string
		gross string
	}

	type testCase struct {
		name    string
		net     *decimal.Decimal
		rate    *decimal.Decimal
		gross   *decimal.Decimal
		want    want
		wantErr error
	}

	ptr := func(s string) *decimal.Decimal {
		v := d(s)
		return &v
	}

	tests := []testCase{
		{
			name: "FromNetAndRate",
			net:  ptr("100.00"),
			rate: ptr("23.00"),
			want: want{net: "100.00", vat: "23.00", gross: "123.00"},
		},
		{
			name:  "FromGross",
			gross: ptr("123.00"),
			rate:  ptr("23.00"),
			want:  want{net: "100.00", vat: "23.00", gross: "123.00"},
		},
		{
			name:  "FromGrossDefaultRate",
			gross: ptr("123.00"),
			want:  want{net: "100.00", vat: "23.00", gross: "123.00"},
		},
		{
			name:  "GrossTripleSumsExactly",
			gross: ptr("100.00"),
			rate:  ptr("23.00"),
			want:  want{net: "81.30", vat: "18.70", gross: "100.00"},
		},
		{
			name: "ReducedRate",
			net:  ptr("250.00"),
			rate: ptr("8.00"),
			want: want{net: "250.00", vat: "20.00", gross: "270.00"},
		},
		{
			name:    "NoAmounts",
			wantErr: money.ErrInvalidAmounts,
		},
		{
			name:    "RateWithoutNetOrGross",
			rate:    ptr("23.00"),
			wantErr: money.ErrInvalidAmounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.DecomposeVAT(tt.net, tt.rate, tt.gross)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Net.Equal(d(tt.want.net)), "net: got %s want %s", got.Net, tt.want.net)
			assert.True(t, got.VAT.Equal(d(tt.want.vat)), "vat: got %s want %s", got.VAT, tt.want.vat)
			assert.True(t, got.Gross.Equal(d(tt.want.gross)), "gross: got %s want %s", got.Gross, tt.want.gross)
			assert.True(t, got.Gross.Equal(got.Net.Add(got.VAT)), "triple does not sum: %s != %s + %s", got.Gross, got.Net, got.VAT)
		})
	}
}

func TestDecomposeVAT_RoundTrip(t *testing.T) {
	rate := d("23.00")
	net := d("100.00")

	fromNet, err := money.DecomposeVAT(&net, &rate, nil)
	require.NoError(t, err)

	fromGross, err := money.DecomposeVAT(nil, &rate, &fromNet.Gross)
	require.NoError(t, err)

	assert.True(t, fromNet.Net.Equal(fromGross.Net))
	assert.True(t, fromNet.VAT.Equal(fromGross.VAT))
	assert.True(t, fromNet.Gross.Equal(fromGross.Gross))
}
