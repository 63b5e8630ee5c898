package pipeline

import (
	"fmt"

	"github.com/arthur-debert/jt/pkg/types"
)

// ValidationResult is the outcome of Validate. Warnings never make the
// options invalid.
type ValidationResult struct {
	Valid    bool
	Warnings []string
	Err      error
}

// Validate checks the option combination. An unknown output format is
// fatal; flags that have no effect for the chosen formats only warn.
func Validate(opts types.Options) ValidationResult {
	result := ValidationResult{Valid: true}

	if !opts.OutputFormat.IsValid() {
		result.Valid = false
		result.Err = types.InvalidOutputFormat(opts.OutputFormat.String())
	}

	if opts.Compact && opts.OutputFormat != types.OutputJSON {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Warning: --compact option is only effective with JSON output format. Current format: %s",
			opts.OutputFormat))
	}

	if opts.NoHeader && opts.InputFormat != types.InputCSV {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Warning: --no-header option is only effective with CSV input format. Current format: %s",
			opts.InputFormat))
	}

	return result
}
