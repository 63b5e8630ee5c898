// Package style holds the lipgloss styles used for diagnostic labels.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style names
const (
	ErrorLabel      = "ErrorLabel"
	DetailLabel     = "DetailLabel"
	SuggestionLabel = "SuggestionLabel"
	WarningLabel    = "WarningLabel"
)

// Callers decide whether color is on, so the renderer never probes a
// terminal and always emits basic ANSI sequences.
var renderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	r.SetHasDarkBackground(true)
	return r
}

// StyleRegistry maps style names to their lipgloss definitions
var StyleRegistry = map[string]lipgloss.Style{
	ErrorLabel:      renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	DetailLabel:     renderer.NewStyle().Foreground(lipgloss.Color("3")),
	SuggestionLabel: renderer.NewStyle().Foreground(lipgloss.Color("6")),
	WarningLabel:    renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
}

// GetStyle returns a style by name, or an unstyled one if not found
func GetStyle(name string) lipgloss.Style {
	if s, ok := StyleRegistry[name]; ok {
		return s
	}
	return renderer.NewStyle()
}

// Render applies the named style to text
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
