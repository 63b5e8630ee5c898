package cli

import (
	"regexp"
	"strings"
)

var dataFilePattern = regexp.MustCompile(`(?i)\.(json|yaml|yml|jsonl|ndjson|csv)$`)

// Resolve splits positional tokens into query and file. Two tokens are
// always query then file. A lone token is the file only when it looks
// like a data file name and cannot be a query: it must not start with
// the root sigil "$" or contain a call parenthesis.
func Resolve(tokens []string) (query, file string) {
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		token := tokens[0]
		if LooksLikeFile(token) {
			return "", token
		}
		return token, ""
	default:
		return tokens[0], tokens[1]
	}
}

// LooksLikeFile reports whether a lone token should be read as a file
func LooksLikeFile(token string) bool {
	if strings.HasPrefix(token, "$") || strings.Contains(token, "(") {
		return false
	}
	return dataFilePattern.MatchString(token)
}
