package input

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

const excerptRadius = 20

// ParseJSON decodes a single JSON document
func ParseJSON(input string) (any, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Invalid JSON input").
			WithDetail("Empty input provided").
			WithSuggestion("Provide valid JSON data")
	}

	v, err := document.ParseJSON(input)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "Invalid JSON input").
			WithDetail(jsonErrorDetail(err, input)).
			WithSuggestion("Check for missing quotes, commas, or closing brackets")
	}
	return v, nil
}

// jsonErrorDetail appends an excerpt of the input around the failure with
// a caret under the offending character
func jsonErrorDetail(err error, input string) string {
	var synErr *document.SyntaxError
	if !stderrors.As(err, &synErr) || synErr.Offset < 0 || synErr.Offset >= int64(len(input)) {
		return err.Error()
	}

	pos := int(synErr.Offset)
	start := max(0, pos-excerptRadius)
	end := min(len(input), pos+excerptRadius)
	return err.Error() + "\n" + input[start:end] + "\n" + strings.Repeat(" ", pos-start) + "^"
}
