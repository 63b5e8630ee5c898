// Package output serializes document values to the supported output
// formats, optionally colored.
package output

import (
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/types"
)

// Options control serialization
type Options struct {
	// Compact writes JSON on a single line
	Compact bool
	// RawString writes a primitive result as plain text without quoting
	RawString bool
	Color     bool
	Palette   colorize.Palette
}

// Format serializes data as format. Undefined always yields "".
func Format(data any, format types.OutputFormat, opts Options) (string, error) {
	if !format.IsValid() {
		return "", types.InvalidOutputFormat(format.String())
	}
	if document.IsUndefined(data) {
		return "", nil
	}

	switch format {
	case types.OutputJSONL:
		return FormatJSONLines(data, opts)
	case types.OutputYAML:
		return FormatYAML(data, opts)
	case types.OutputCSV:
		return FormatCSV(data, opts)
	default:
		return FormatJSON(data, opts)
	}
}
