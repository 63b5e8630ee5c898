package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic markdown for display
type Renderer interface {
	Render(content string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

func (PlainRenderer) Render(content string) string {
	return content
}

// GlamourRenderer renders markdown with glamour
type GlamourRenderer struct {
	Style string // "dark", "light" or "notty"
	Width int    // word wrap, 0 for none
}

// NewGlamourRenderer picks the dark style when color is on and the
// plain notty style otherwise
func NewGlamourRenderer(color bool) *GlamourRenderer {
	style := "notty"
	if color {
		style = "dark"
	}
	return &GlamourRenderer{Style: style, Width: 80}
}

// Render converts markdown to terminal output, falling back to the raw
// text when glamour fails
func (r *GlamourRenderer) Render(content string) string {
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(r.Style),
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
