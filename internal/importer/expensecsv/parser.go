package expensecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/witmar/infirma/internal/encoding"
	"github.com/witmar/infirma/internal/expense"
)

// Parser reads expense CSV exports and produces expense drafts. It
// auto-detects which layout (bank statement, purchase ledger) is being
// used by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching CSV format found: expected bank statement or purchase ledger columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expense drafts from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]expense.CreateParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	vendorIdx := -1
	if p.VendorCol != "" {
		if idx, ok := cols[p.VendorCol]; ok {
			vendorIdx = idx
		}
	}

	var drafts []expense.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		vendor := cellValue(row, vendorIdx)
		if vendor == "" {
			vendor = desc
		}

		draft := expense.CreateParams{
			Date:            date,
			VendorName:      vendor,
			Description:     desc,
			Category:        expense.CategoryOther,
			IsVATDeductible: true,
			IsTaxDeductible: true,
			PaymentMethod:   expense.PaymentBankTransfer,
		}

		if !applyAmounts(p, cols, row, &draft) {
			continue
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// applyAmounts fills the draft's amount fields based on the profile's
// amount mode. Returns false when the row carries no usable expense amount.
func applyAmounts(p *Profile, cols colIndex, row []string, draft *expense.CreateParams) bool {
	switch p.AmountMode {
	case amountGross:
		return applyGrossAmount(row, cols[p.AmountCol], draft)
	case amountNetRate:
		return applyNetAndRate(row, cols[p.NetCol], cols[p.VATRateCol], draft)
	}

	return false
}

// applyGrossAmount handles a single signed gross column. Outgoing bank
// movements are negative; incoming ones are not expenses and are skipped.
func applyGrossAmount(row []string, idx int, draft *expense.CreateParams) bool {
	s := cellValue(row, idx)
	if s == "" {
		return false
	}

	amount, err := parseAmount(s)
	if err != nil || amount.IsZero() {
		return false
	}

	if !amount.IsNegative() {
		return false
	}

	gross := amount.Neg()
	draft.AmountGross = &gross

	return true
}

// applyNetAndRate handles separate net amount and VAT rate columns.
func applyNetAndRate(row []string, netIdx, rateIdx int, draft *expense.CreateParams) bool {
	netStr := cellValue(row, netIdx)
	if netStr == "" {
		return false
	}

	net, err := parseAmount(netStr)
	if err != nil || net.IsZero() {
		return false
	}

	if net.IsNegative() {
		net = net.Neg()
	}

	rate, err := parseAmount(strings.TrimSuffix(cellValue(row, rateIdx), "%"))
	if err != nil || rate.IsNegative() {
		return false
	}

	draft.AmountNet = &net
	draft.VATRate = &rate

	return true
}

// parseAmount reads a European-formatted amount: spaces and dots as
// thousand separators, comma as the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	return decimal.NewFromString(clean)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
