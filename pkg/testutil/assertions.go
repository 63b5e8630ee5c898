package testutil

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jt/pkg/errors"
)

// RequireErrorCode fails the test unless err is a JtError with code,
// and returns it for further checks
func RequireErrorCode(t *testing.T, err error, code errors.ErrorCode) *errors.JtError {
	t.Helper()
	require.Error(t, err)
	jtErr, ok := errors.As(err)
	require.True(t, ok, "expected a JtError, got %T: %v", err, err)
	require.Equal(t, code, jtErr.Code, "error: %v", err)
	return jtErr
}

// AssertColored checks that colored carries escape codes and reads as
// plain once they are stripped
func AssertColored(t *testing.T, plain, colored string) {
	t.Helper()
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, ansi.Strip(colored))
}
