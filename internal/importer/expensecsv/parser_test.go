package expensecsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/importer/expensecsv"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_BankStatement(t *testing.T) {
	csv := `Historia operacji - rachunek firmowy
Numer rachunku;12 1140 2004 0000 3802 7658 1111
Okres;2026-03-01 do 2026-03-31
Waluta;PLN

Data operacji;Opis operacji;Odbiorca;Kwota;Saldo po operacji
2026-03-28;Abonament telefoniczny;Orange Polska S.A.;-123,00;12.456,78
2026-03-15;Przelew przychodzący;Klient Sp. z o.o.;8.610,00;12.579,78
2026-03-02;Zakup materiałów biurowych;Papirus Hurt;-246,00;3.969,78
`

	p := expensecsv.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	// The incoming transfer is not an expense and is skipped.
	require.Len(t, drafts, 2)

	assert.Equal(t, date(2026, 3, 28), drafts[0].Date)
	assert.Equal(t, "Orange Polska S.A.", drafts[0].VendorName)
	assert.Equal(t, "Abonament telefoniczny", drafts[0].Description)
	require.NotNil(t, drafts[0].AmountGross)
	assert.True(t, drafts[0].AmountGross.Equal(decimal.RequireFromString("123.00")))
	assert.Nil(t, drafts[0].AmountNet)
	assert.Equal(t, expense.PaymentBankTransfer, drafts[0].PaymentMethod)

	assert.Equal(t, date(2026, 3, 2), drafts[1].Date)
	require.NotNil(t, drafts[1].AmountGross)
	assert.True(t, drafts[1].AmountGross.Equal(decimal.RequireFromString("246.00")))
}

func TestParser_PurchaseLedger(t *testing.T) {
	csv := `Rejestr zakupów VAT - marzec 2026

Lp;Data;Kontrahent;Opis;Netto;Stawka VAT;Brutto
1;15.03.2026;Biuro Rachunkowe Saldo;Usługi księgowe;300,00;23%;369,00
2;20.03.2026;Orlen;Paliwo;200,00;23%;246,00
;;;Razem;500,00;;615,00
`

	p := expensecsv.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, date(2026, 3, 15), drafts[0].Date)
	assert.Equal(t, "Biuro Rachunkowe Saldo", drafts[0].VendorName)
	assert.Equal(t, "Usługi księgowe", drafts[0].Description)
	require.NotNil(t, drafts[0].AmountNet)
	assert.True(t, drafts[0].AmountNet.Equal(decimal.RequireFromString("300.00")))
	require.NotNil(t, drafts[0].VATRate)
	assert.True(t, drafts[0].VATRate.Equal(decimal.RequireFromString("23")))
	assert.Nil(t, drafts[0].AmountGross)

	assert.Equal(t, date(2026, 3, 20), drafts[1].Date)
	assert.Equal(t, "Orlen", drafts[1].VendorName)
}

func TestParser_Windows1250Input(t *testing.T) {
	csv := `Data operacji;Opis operacji;Odbiorca;Kwota
2026-03-02;Zakup materiałów biurowych;Papirus Hurt;-246,00
`

	encoder := charmap.Windows1250.NewEncoder()
	encoded, err := encoder.String(csv)
	require.NoError(t, err)

	p := expensecsv.NewParser()
	drafts, err := p.Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Zakup materiałów biurowych", drafts[0].Description)
}

func TestParser_UnknownFormat(t *testing.T) {
	csv := `kolumna1;kolumna2
a;b
`

	p := expensecsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParser_VendorFallsBackToDescription(t *testing.T) {
	csv := `Data operacji;Opis operacji;Odbiorca;Kwota
2026-03-05;Prowizja za prowadzenie rachunku;;-29,00
`

	p := expensecsv.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Prowizja za prowadzenie rachunku", drafts[0].VendorName)
}
