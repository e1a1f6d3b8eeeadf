package expensecsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountGross means one signed gross column (e.g. "Kwota" with value "-123,00").
	amountGross amountMode = iota
	// amountNetRate means separate net amount and VAT rate columns.
	amountNetRate
)

// Profile describes the column layout of a supported CSV export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	VendorCol  string // optional; falls back to the description when absent
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountGross
	NetCol     string // used when AmountMode == amountNetRate
	VATRateCol string // used when AmountMode == amountNetRate
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountGross:
		cols = append(cols, p.AmountCol)
	case amountNetRate:
		cols = append(cols, p.NetCol, p.VATRateCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "rejestr zakupów",
		DateCol:    "Data",
		DescCol:    "Opis",
		VendorCol:  "Kontrahent",
		AmountMode: amountNetRate,
		NetCol:     "Netto",
		VATRateCol: "Stawka VAT",
	},
	{
		Name:       "wyciąg bankowy",
		DateCol:    "Data operacji",
		DescCol:    "Opis operacji",
		VendorCol:  "Odbiorca",
		AmountMode: amountGross,
		AmountCol:  "Kwota",
	},
}
