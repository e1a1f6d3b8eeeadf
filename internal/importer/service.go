package importer

import (
	"fmt"
	"io"

	"github.com/witmar/infirma/internal/expense"
	"github.com/witmar/infirma/internal/importer/expensecsv"
)

type Service struct {
	csvParser Parser
}

func NewService() *Service {
	return &Service{
		csvParser: expensecsv.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]expense.CreateParams, error) {
	var parser Parser

	switch format {
	case FormatExpenseCSV:
		parser = s.csvParser
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return parser.Parse(r)
}
