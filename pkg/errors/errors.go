package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/jt/pkg/style"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the failure classes surfaced to the user
const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Input side
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Query side
	ErrInvalidQuery   ErrorCode = "INVALID_QUERY"
	ErrExecutionError ErrorCode = "EXECUTION_ERROR"

	// Output side
	ErrOutputError         ErrorCode = "OUTPUT_ERROR"
	ErrInvalidOutputFormat ErrorCode = "INVALID_OUTPUT_FORMAT"
)

// JtError represents a structured error with code, detail and suggestion
type JtError struct {
	Code       ErrorCode
	Message    string
	Detail     string
	Suggestion string
	Wrapped    error
}

// Error implements the error interface
func (e *JtError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *JtError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *JtError) Is(target error) bool {
	var targetErr *JtError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new JtError with the given code and message
func New(code ErrorCode, message string) *JtError {
	return &JtError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new JtError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *JtError {
	return &JtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a JtError. The wrapped error's message
// becomes the detail unless one is set later.
func Wrap(err error, code ErrorCode, message string) *JtError {
	if err == nil {
		return nil
	}
	return &JtError{
		Code:    code,
		Message: message,
		Detail:  err.Error(),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *JtError {
	if err == nil {
		return nil
	}
	return &JtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Detail:  err.Error(),
		Wrapped: err,
	}
}

// WithDetail sets the detail line
func (e *JtError) WithDetail(detail string) *JtError {
	e.Detail = detail
	return e
}

// WithDetailf sets a formatted detail line
func (e *JtError) WithDetailf(format string, args ...interface{}) *JtError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion sets the suggestion line
func (e *JtError) WithSuggestion(suggestion string) *JtError {
	e.Suggestion = suggestion
	return e
}

// Format renders the error as the multi-line block shown to users:
//
//	Error: <message>
//	Detail: <detail>
//	Suggestion: <suggestion>
//
// Detail and Suggestion lines are omitted when empty. With color on, the
// labels are styled; the text itself is never altered.
func (e *JtError) Format(color bool) string {
	var b strings.Builder
	b.WriteString(label(style.ErrorLabel, "Error:", color))
	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Detail != "" {
		b.WriteString("\n")
		b.WriteString(label(style.DetailLabel, "Detail:", color))
		b.WriteString(" ")
		b.WriteString(e.Detail)
	}

	if e.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(label(style.SuggestionLabel, "Suggestion:", color))
		b.WriteString(" ")
		b.WriteString(e.Suggestion)
	}

	return b.String()
}

func label(name, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(name, text)
}

// Render formats any error for the error stream. JtErrors use their own
// block format; anything else becomes a single "Error: ..." line.
func Render(err error, color bool) string {
	if err == nil {
		return ""
	}
	var jtErr *JtError
	if errors.As(err, &jtErr) {
		return jtErr.Format(color)
	}
	return label(style.ErrorLabel, "Error:", color) + " " + err.Error()
}

// As returns the JtError inside err, if any
func As(err error) (*JtError, bool) {
	var jtErr *JtError
	if errors.As(err, &jtErr) {
		return jtErr, true
	}
	return nil, false
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var jtErr *JtError
	if errors.As(err, &jtErr) {
		return jtErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a JtError
func GetErrorCode(err error) ErrorCode {
	var jtErr *JtError
	if errors.As(err, &jtErr) {
		return jtErr.Code
	}
	return ErrUnknown
}
