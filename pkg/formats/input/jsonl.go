package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

// ParseJSONLines decodes one JSON value per line into an array. Blank
// lines are skipped and empty input gives an empty array.
func ParseJSONLines(input string) (any, error) {
	results := []any{}
	err := ScanJSONLines(strings.NewReader(input), func(_ int, v any) error {
		results = append(results, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ScanJSONLines reads r line by line and calls fn with each decoded value
// and its 1-based line number. It stops at the first malformed line or
// the first error returned by fn.
func ScanJSONLines(r io.Reader, fn func(line int, v any) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), "\r"))
		if line == "" {
			continue
		}

		v, err := document.ParseJSON(line)
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "Invalid JSON on line").
				WithDetail(fmt.Sprintf("Error on line %d: %s\nContent: %s", lineNo, err.Error(), line)).
				WithSuggestion("Each line must be valid JSON")
		}
		if err := fn(lineNo, v); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "Invalid JSON on line")
	}
	return nil
}
