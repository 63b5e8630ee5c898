// Package detect guesses the format of input data.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/jt/pkg/types"
)

var extensions = map[string]types.InputFormat{
	".json":   types.InputJSON,
	".yaml":   types.InputYAML,
	".yml":    types.InputYAML,
	".jsonl":  types.InputJSONL,
	".ndjson": types.InputJSONL,
	".csv":    types.InputCSV,
}

// FromExtension maps a known data file extension to its format
func FromExtension(path string) (types.InputFormat, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Detect returns the input format for content read from path. A known
// extension always wins; otherwise the content shape decides, checking
// line oriented formats first. It never fails and defaults to JSON.
func Detect(content, path string) types.InputFormat {
	if path != "" {
		if f, ok := FromExtension(path); ok {
			return f
		}
	}

	trimmed := strings.TrimSpace(content)
	multiline := strings.Contains(trimmed, "\n")

	if multiline {
		lines := nonBlankLines(trimmed)
		if len(lines) > 1 {
			if allBracketed(lines) {
				return types.InputJSONL
			}
			if sameCommaCount(lines) {
				return types.InputCSV
			}
		}
	}

	if bracketed(trimmed) {
		return types.InputJSON
	}

	if looksLikeYAML(trimmed) {
		return types.InputYAML
	}

	if !multiline && strings.Contains(trimmed, ",") {
		return types.InputCSV
	}

	return types.InputJSON
}

func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func bracketed(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}

func allBracketed(lines []string) bool {
	for _, line := range lines {
		if !bracketed(strings.TrimSpace(line)) {
			return false
		}
	}
	return true
}

// sameCommaCount reports whether every line has the same positive number
// of commas outside double quoted spans
func sameCommaCount(lines []string) bool {
	want := countCommas(lines[0])
	if want == 0 {
		return false
	}
	for _, line := range lines[1:] {
		if countCommas(line) != want {
			return false
		}
	}
	return true
}

func countCommas(line string) int {
	n := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				n++
			}
		}
	}
	return n
}

func looksLikeYAML(s string) bool {
	return strings.Contains(s, ": ") ||
		strings.HasPrefix(s, "- ") ||
		strings.Contains(s, "\n  ") ||
		strings.Contains(s, "\n- ")
}
