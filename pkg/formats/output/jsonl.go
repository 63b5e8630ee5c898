package output

import (
	"strings"

	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
)

// FormatJSONLines writes each element of an array as one compact JSON
// line; any other value becomes a single line. Undefined elements are
// skipped and there is no trailing newline.
func FormatJSONLines(data any, opts Options) (string, error) {
	if document.IsUndefined(data) {
		return "", nil
	}

	items, ok := data.([]any)
	if !ok {
		return jsonLine(data, opts)
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		if document.IsUndefined(item) {
			continue
		}
		line, err := jsonLine(item, opts)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func jsonLine(v any, opts Options) (string, error) {
	if opts.RawString {
		if text, ok := rawText(v); ok {
			if opts.Color {
				return colorize.Scalar(v, text, opts.Palette), nil
			}
			return text, nil
		}
	}

	text, err := document.Stringify(v, "")
	if err != nil {
		return "", outputError(err, "jsonl")
	}
	if opts.Color {
		return colorize.JSONCompact(text, opts.Palette), nil
	}
	return text, nil
}
