package output

import (
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

// FormatJSON writes data as two-space indented JSON, or single-line JSON
// with Compact
func FormatJSON(data any, opts Options) (string, error) {
	if document.IsUndefined(data) {
		return "", nil
	}
	if opts.RawString {
		if text, ok := rawText(data); ok {
			if opts.Color {
				return colorize.Scalar(data, text, opts.Palette), nil
			}
			return text, nil
		}
	}

	if opts.Compact {
		text, err := document.Stringify(data, "")
		if err != nil {
			return "", outputError(err, "json")
		}
		if opts.Color {
			return colorize.JSONCompact(text, opts.Palette), nil
		}
		return text, nil
	}

	var (
		text string
		err  error
	)
	if opts.Color {
		text, err = colorize.JSONPretty(data, opts.Palette)
	} else {
		text, err = document.Stringify(data, "  ")
	}
	if err != nil {
		return "", outputError(err, "json")
	}
	return text, nil
}

// rawText returns the unquoted text of a primitive value
func rawText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return document.FormatNumber(t), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	case nil:
		return "null", true
	}
	return "", false
}

func outputError(err error, format string) error {
	return errors.Wrapf(err, errors.ErrOutputError, "Failed to format %s output", format)
}
