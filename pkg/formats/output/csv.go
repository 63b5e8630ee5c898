package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

// FormatCSV writes an array of objects as CSV. The header is the union
// of all keys in first-seen order. Fields containing whitespace, quotes
// or commas are quoted. There is no trailing newline.
func FormatCSV(data any, opts Options) (string, error) {
	if document.IsUndefined(data) {
		return "", nil
	}

	items, ok := data.([]any)
	if !ok {
		return "", errors.New(errors.ErrInvalidOutputFormat, "CSV output requires an array").
			WithDetailf("Input type: %s", typeName(data)).
			WithSuggestion("Use a JSONata query that returns an array of objects")
	}
	if len(items) == 0 {
		return "", nil
	}

	rows := make([]*document.Object, 0, len(items))
	for _, item := range items {
		obj, ok := item.(*document.Object)
		if !ok {
			return "", errors.New(errors.ErrInvalidOutputFormat, "CSV output requires an array of objects").
				WithDetail("Array contains non-object elements").
				WithSuggestion("Ensure all array elements are objects")
		}
		rows = append(rows, obj)
	}

	columns := unionKeys(rows)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvRecord(columns))
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			v, _ := row.Get(col)
			field, err := csvValue(v)
			if err != nil {
				return "", errors.Wrap(err, errors.ErrInvalidOutputFormat, "Failed to format as CSV").
					WithSuggestion("Check that the data structure is compatible with CSV format")
			}
			record[i] = field
		}
		lines = append(lines, csvRecord(record))
	}

	text := strings.Join(lines, "\n")
	if opts.Color {
		return colorize.CSV(text, opts.Palette), nil
	}
	return text, nil
}

func unionKeys(rows []*document.Object) []string {
	seen := map[string]bool{}
	var keys []string
	for _, row := range rows {
		for _, k := range row.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

func csvValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return document.FormatNumber(t), nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	}
	if document.IsUndefined(v) {
		return "", nil
	}
	return document.Stringify(v, "")
}

func csvRecord(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvQuote(f)
	}
	return strings.Join(quoted, ",")
}

func csvQuote(field string) string {
	if !strings.ContainsAny(field, " \t\n\r\f\v\",") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case *document.Object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
