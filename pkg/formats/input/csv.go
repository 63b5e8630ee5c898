package input

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

// ParseCSV decodes CSV into an array of objects whose values are all
// strings. The first row names the columns unless noHeader is set, in
// which case columns are named col1..colN.
func ParseCSV(input string, noHeader bool) (any, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Invalid CSV input").
			WithDetail("Empty input provided").
			WithSuggestion("Provide valid CSV data with headers")
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(input, "\ufeff")))
	r.FieldsPerRecord = 0

	var header []string
	rows := []any{}
	for {
		record, err := r.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		if header == nil {
			if noHeader {
				header = make([]string, len(record))
				for i := range record {
					header[i] = fmt.Sprintf("col%d", i+1)
				}
			} else {
				header = record
				continue
			}
		}

		row := document.NewObject()
		for i, field := range record {
			row.Set(header[i], field)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func csvError(err error) error {
	suggestion := "Check for unclosed quotes or invalid CSV format"
	switch {
	case stderrors.Is(err, csv.ErrQuote):
		suggestion = "Ensure all quoted fields are properly closed with matching quotes"
	case stderrors.Is(err, csv.ErrFieldCount):
		suggestion = "Ensure all rows have the same number of columns as the header"
	case stderrors.Is(err, csv.ErrBareQuote):
		suggestion = "Check that quotes are at the beginning of fields"
	}
	return errors.Wrap(err, errors.ErrInvalidInput, "Invalid CSV input").
		WithSuggestion(suggestion)
}
