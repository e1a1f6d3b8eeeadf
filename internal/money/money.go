// Package money holds the monetary arithmetic shared by every domain package.
// All amounts are PLN with grosz (0.01) granularity.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmounts is returned when neither a net amount with a VAT rate
// nor a gross amount is supplied.
var ErrInvalidAmounts = errors.New("either net amount with vat rate or gross amount is required")

// DefaultVATRate is the standard Polish VAT rate assumed when a gross amount
// is given without an explicit rate.
var DefaultVATRate = decimal.RequireFromString("23.00")

var oneHundred = decimal.NewFromInt(100)

// Round quantizes an amount to grosz, rounding halves away from zero
// (123.455 -> 123.46, 123.445 -> 123.45).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// VATBreakdown is a consistent net/VAT/gross triple: Gross = Net + VAT.
type VATBreakdown struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
	Rate  decimal.Decimal
}

// DecomposeVAT derives a net/VAT/gross triple from either a net amount plus
// VAT rate, or a gross amount (rate defaults to DefaultVATRate).
//
// When deriving from gross, the VAT is computed as the remainder gross-net
// rather than rounded independently, so the triple always sums exactly.
func DecomposeVAT(net, rate, gross *decimal.Decimal) (VATBreakdown, error) {
	switch {
	case net != nil && rate != nil:
		n := Round(*net)
		v := Round(n.Mul(*rate).Div(oneHundred))

		return VATBreakdown{
			Net:   n,
			VAT:   v,
			Gross: Round(n.Add(v)),
			Rate:  *rate,
		}, nil

	case gross != nil:
		r := DefaultVATRate
		if rate != nil {
			r = *rate
		}

		g := Round(*gross)
		multiplier := decimal.NewFromInt(1).Add(r.Div(oneHundred))
		n := Round(g.Div(multiplier))

		return VATBreakdown{
			Net:   n,
			VAT:   Round(g.Sub(n)),
			Gross: g,
			Rate:  r,
		}, nil

	default:
		return VATBreakdown{}, ErrInvalidAmounts
	}
}
