package colorize

import (
	"strings"

	"github.com/arthur-debert/jt/pkg/document"
)

// JSONPretty serializes v with two-space indentation, coloring each token
// by the kind of value it came from
func JSONPretty(v any, p Palette) (string, error) {
	return document.StringifyWith(v, "  ", painter{p})
}

// JSONCompact colors already serialized single-line JSON. It scans the
// text once, tracking whether it is inside a string or a number, and
// tells keys from string values by the colon that follows a key.
func JSONCompact(text string, p Palette) string {
	d := painter{p}
	var b strings.Builder
	b.Grow(len(text) * 2)

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"':
			end := stringEnd(text, i)
			token := text[i:end]
			if followedByColon(text, end) {
				b.WriteString(d.Key(token))
			} else {
				b.WriteString(d.String(token))
			}
			i = end
		case isDigit(c) || (c == '-' && i+1 < len(text) && isDigit(text[i+1])):
			j := i + 1
			for j < len(text) && isNumberByte(text[j]) {
				j++
			}
			b.WriteString(d.Number(text[i:j]))
			i = j
		case strings.HasPrefix(text[i:], "true"):
			b.WriteString(d.Bool("true"))
			i += 4
		case strings.HasPrefix(text[i:], "false"):
			b.WriteString(d.Bool("false"))
			i += 5
		case strings.HasPrefix(text[i:], "null"):
			b.WriteString(d.Null("null"))
			i += 4
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// stringEnd returns the index just past the string starting at the quote
// at start. An unterminated string runs to the end of text.
func stringEnd(text string, start int) int {
	escaped := false
	for j := start + 1; j < len(text); j++ {
		switch {
		case escaped:
			escaped = false
		case text[j] == '\\':
			escaped = true
		case text[j] == '"':
			return j + 1
		}
	}
	return len(text)
}

func followedByColon(text string, i int) bool {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i < len(text) && text[i] == ':'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

// Scalar colors the raw text of a primitive value by the value's kind
func Scalar(v any, text string, p Palette) string {
	d := painter{p}
	switch v.(type) {
	case string:
		return d.String(text)
	case bool:
		return d.Bool(text)
	case nil:
		return d.Null(text)
	case float64:
		if text == "null" {
			return d.Null(text)
		}
		return d.Number(text)
	}
	return text
}
