package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/witmar/infirma/internal/money"
)

var hundred = decimal.NewFromInt(100)

// ItemTotals derives the stored line amounts from quantity, unit net price
// and VAT rate.
func ItemTotals(quantity, unitPriceNet, vatRate decimal.Decimal) (net, vat, gross decimal.Decimal) {
	net = money.Round(quantity.Mul(unitPriceNet))
	vat = money.Round(net.Mul(vatRate).Div(hundred))
	gross = money.Round(net.Add(vat))

	return net, vat, gross
}

// DueDate resolves the payment deadline from the issue date and payment
// terms. Unrecognized terms fall back to thirty days.
func DueDate(issueDate time.Time, terms PaymentTerms, customDays int) time.Time {
	switch terms {
	case TermsImmediate:
		return issueDate
	case TermsDays7:
		return issueDate.AddDate(0, 0, 7)
	case TermsDays14:
		return issueDate.AddDate(0, 0, 14)
	case TermsDays30:
		return issueDate.AddDate(0, 0, 30)
	case TermsDays60:
		return issueDate.AddDate(0, 0, 60)
	case TermsDays90:
		return issueDate.AddDate(0, 0, 90)
	case TermsCustom:
		return issueDate.AddDate(0, 0, customDays)
	default:
		return issueDate.AddDate(0, 0, 30)
	}
}

const numberPrefix = "FV"

// FormatNumber renders an invoice number, zero-padding the sequence to
// three digits. Sequences past 999 keep their natural width.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%s/%d/%03d", numberPrefix, year, seq)
}

// NextNumber returns the number following lastNumber within the given year.
// An empty or foreign-year lastNumber starts the year's sequence at one.
func NextNumber(lastNumber string, year int) string {
	seq, ok := parseNumber(lastNumber, year)
	if !ok {
		return FormatNumber(year, 1)
	}

	return FormatNumber(year, seq+1)
}

func parseNumber(number string, year int) (int, bool) {
	parts := strings.Split(number, "/")
	if len(parts) != 3 || parts[0] != numberPrefix {
		return 0, false
	}

	if y, err := strconv.Atoi(parts[1]); err != nil || y != year {
		return 0, false
	}

	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 1 {
		return 0, false
	}

	return seq, true
}
