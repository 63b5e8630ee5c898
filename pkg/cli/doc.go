// Package cli is jt's command line front end: the cobra root command,
// positional argument resolution, and Run, which drives one invocation
// against an execution context.
package cli
