// Package colorize decorates serialized output with ANSI colors.
//
// Every colorizer only adds escape sequences: stripping them gives back
// exactly the uncolored text.
package colorize

import "github.com/arthur-debert/jt/pkg/adapters"

// Enabled decides whether output should be colored. NO_COLOR wins over
// everything, FORCE_COLOR=0 disables, any other FORCE_COLOR value forces
// color, and otherwise color follows whether the output is a terminal.
func Enabled(env adapters.Environment, out adapters.Output) bool {
	if v, _ := env.Get("NO_COLOR"); v != "" {
		return false
	}
	force, _ := env.Get("FORCE_COLOR")
	if force == "0" {
		return false
	}
	if force != "" {
		return true
	}
	return out.IsTerminal()
}
