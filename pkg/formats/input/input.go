// Package input parses raw input text into document values.
package input

import (
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/types"
)

// Parse decodes input according to format. noHeader only affects CSV.
func Parse(input string, format types.InputFormat, noHeader bool) (any, error) {
	switch format {
	case types.InputJSON:
		return ParseJSON(input)
	case types.InputYAML:
		return ParseYAML(input)
	case types.InputJSONL:
		return ParseJSONLines(input)
	case types.InputCSV:
		return ParseCSV(input, noHeader)
	default:
		return nil, errors.New(errors.ErrInvalidFormat, "Invalid input format").
			WithDetailf("Format: %s", format).
			WithSuggestion("Use one of: json, yaml, jsonl, csv")
	}
}
