package types

import (
	"strings"

	"github.com/arthur-debert/jt/pkg/errors"
)

// InputFormat is the format of the data jt reads
type InputFormat string

const (
	InputJSON  InputFormat = "json"
	InputYAML  InputFormat = "yaml"
	InputJSONL InputFormat = "jsonl"
	InputCSV   InputFormat = "csv"
)

// InputFormats lists every supported input format in help order
var InputFormats = []InputFormat{InputJSON, InputYAML, InputJSONL, InputCSV}

// IsValid reports whether f is one of the supported input formats
func (f InputFormat) IsValid() bool {
	for _, known := range InputFormats {
		if f == known {
			return true
		}
	}
	return false
}

func (f InputFormat) String() string {
	return string(f)
}

// ParseInputFormat validates a user supplied input format name
func ParseInputFormat(s string) (InputFormat, error) {
	f := InputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", errors.New(errors.ErrInvalidFormat, "Invalid input format").
			WithDetailf("Format: %s", s).
			WithSuggestion("Use one of: json, yaml, jsonl, csv")
	}
	return f, nil
}

// OutputFormat is the format jt serializes its result to
type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputJSONL OutputFormat = "jsonl"
	OutputYAML  OutputFormat = "yaml"
	OutputCSV   OutputFormat = "csv"
)

// DefaultOutputFormat is used when neither a flag nor the config names one
const DefaultOutputFormat = OutputJSON

// OutputFormats lists every supported output format in help order
var OutputFormats = []OutputFormat{OutputJSON, OutputJSONL, OutputYAML, OutputCSV}

// IsValid reports whether f is one of the supported output formats
func (f OutputFormat) IsValid() bool {
	for _, known := range OutputFormats {
		if f == known {
			return true
		}
	}
	return false
}

func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat validates a user supplied output format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", InvalidOutputFormat(s)
	}
	return f, nil
}

// InvalidOutputFormat builds the error reported for an unknown output format
func InvalidOutputFormat(name string) *errors.JtError {
	return errors.New(errors.ErrInvalidOutputFormat, "Invalid output format").
		WithDetailf("Format: %s", name).
		WithSuggestion("Use one of: json, jsonl, yaml, csv")
}
