package cli

import (
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// initTemplateFormatting adds formatting functions to cobra templates.
// Styling is only applied when color is on for this invocation.
func initTemplateFormatting(color bool) {
	bold := func(s string) string {
		if !color {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  bold,
		"upper": strings.ToUpper,
		"boldUpper": func(s string) string {
			return bold(strings.ToUpper(s))
		},
	})
}
