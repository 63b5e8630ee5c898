// pkg/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: embedded topics, testing/fstest
// PURPOSE: Verify topic loading, lookup, listing and rendering

package topics

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jt/pkg/errors"
)

type upperRenderer struct{}

func (upperRenderer) Render(content string) string { return strings.ToUpper(content) }

func TestDefaultTopics(t *testing.T) {
	m := Default(nil)
	assert.Equal(t, []string{"colors", "config", "detection", "formats", "queries"}, m.Names())
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"help/alpha.md":   {Data: []byte("# Alpha")},
		"help/beta.md":    {Data: []byte("# Beta")},
		"help/notes.txt":  {Data: []byte("ignored")},
		"help/sub/who.md": {Data: []byte("ignored")},
	}
	m, err := Load(fsys, "help", upperRenderer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, m.Names())

	out, err := m.Show("alpha")
	require.NoError(t, err)
	assert.Equal(t, "# ALPHA", out)

	_, err = Load(fsys, "missing", nil)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	m := Default(nil)
	tests := []struct {
		name   string
		lookup string
		found  bool
	}{
		{"plain", "formats", true},
		{"double_dash", "--formats", true},
		{"single_dash", "-queries", true},
		{"unknown", "nothing", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := m.Get(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.NotEmpty(t, topic.Content)
			}
		})
	}
}

func TestShow(t *testing.T) {
	m := Default(nil)

	t.Run("list", func(t *testing.T) {
		out, err := m.Show(ListName)
		require.NoError(t, err)
		assert.Contains(t, out, "Available help topics:")
		assert.Contains(t, out, "  detection\n")
	})

	t.Run("topic", func(t *testing.T) {
		out, err := m.Show("detection")
		require.NoError(t, err)
		assert.Contains(t, out, "# Format detection")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := m.Show("nope")
		jtErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidInput, jtErr.Code)
		assert.Equal(t, "Unknown help topic: nope", jtErr.Message)
		assert.Contains(t, jtErr.Detail, "formats")
	})
}

func TestGlamourRenderer(t *testing.T) {
	assert.Equal(t, "notty", NewGlamourRenderer(false).Style)
	assert.Equal(t, "dark", NewGlamourRenderer(true).Style)

	out := NewGlamourRenderer(false).Render("# Formats\n\nSome **bold** text.")
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Formats")
	assert.Contains(t, plain, "bold")
}
