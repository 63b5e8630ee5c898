package colorize

import (
	"regexp"
	"strings"
)

var yamlNumber = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// YAML colors serialized YAML line by line. Each line is classified as a
// comment, a "key: value" pair or a "- item" list entry, and the key and
// value parts are colored separately. Anything else is left as is.
func YAML(text string, p Palette) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = yamlLine(line, p)
	}
	return strings.Join(lines, "\n")
}

func yamlLine(line string, p Palette) string {
	d := painter{p}
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	if strings.HasPrefix(trimmed, "#") {
		return line[:len(line)-len(trimmed)] + d.Null(trimmed)
	}

	// indentation plus any list markers
	prefixEnd := len(line) - len(trimmed)
	rest := trimmed
	isItem := false
	for strings.HasPrefix(rest, "- ") || rest == "-" {
		isItem = true
		if rest == "-" {
			return line
		}
		rest = rest[2:]
		prefixEnd += 2
	}
	prefix := line[:prefixEnd]

	if key, sep, value, ok := splitKey(rest); ok {
		return prefix + d.Key(key) + sep + yamlValue(value, p)
	}
	if isItem {
		return prefix + yamlValue(rest, p)
	}
	return line
}

// splitKey finds the mapping separator in s, honoring quoted keys. sep is
// the colon plus any following spaces.
func splitKey(s string) (key, sep, value string, ok bool) {
	var end int
	switch {
	case strings.HasPrefix(s, `"`):
		end = stringEnd(s, 0)
	case strings.HasPrefix(s, `'`):
		end = singleQuotedEnd(s)
	default:
		idx := strings.Index(s, ": ")
		if idx < 0 {
			if !strings.HasSuffix(s, ":") || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
				return "", "", "", false
			}
			idx = len(s) - 1
		}
		end = idx
	}

	if end >= len(s) || s[end] != ':' {
		return "", "", "", false
	}
	after := end + 1
	for after < len(s) && s[after] == ' ' {
		after++
	}
	if after == end+1 && after < len(s) {
		return "", "", "", false
	}
	return s[:end], s[end:after], s[after:], true
}

func singleQuotedEnd(s string) int {
	for j := 1; j < len(s); j++ {
		if s[j] != '\'' {
			continue
		}
		if j+1 < len(s) && s[j+1] == '\'' {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

func yamlValue(v string, p Palette) string {
	d := painter{p}
	switch {
	case v == "":
		return v
	case v == "true" || v == "false":
		return d.Bool(v)
	case v == "null" || v == "~":
		return d.Null(v)
	case yamlNumber.MatchString(v):
		return d.Number(v)
	case v == "{}" || v == "[]" || strings.HasPrefix(v, "|") || strings.HasPrefix(v, ">"):
		return v
	default:
		return d.String(v)
	}
}
