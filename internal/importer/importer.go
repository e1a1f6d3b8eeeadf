// Package importer turns CSV exports from banks and accounting tools into
// draft expenses for review.
package importer

import (
	"io"

	"github.com/witmar/infirma/internal/expense"
)

type Format string

const (
	// FormatExpenseCSV auto-detects the column layout of Polish bank
	// statements and purchase-ledger exports.
	FormatExpenseCSV Format = "expense_csv"
)

type Parser interface {
	Parse(r io.Reader) ([]expense.CreateParams, error)
}
