package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Query and convert JSON, YAML, JSON Lines and CSV with JSONata"

	// Flag descriptions
	MsgFlagInputFormat  = "Input format: json, yaml, jsonl, csv (detected if not specified)"
	MsgFlagOutputFormat = "Output format: json, jsonl, yaml, csv"
	MsgFlagCompact      = "Compact JSON output (only works with -o json)"
	MsgFlagRawString    = "Output raw strings without quotes"
	MsgFlagNoHeader     = "Treat CSV input as having no header row (only works with -i csv)"
	MsgFlagColor        = "Force color output even when piped"
	MsgFlagNoColor      = "Disable color output"
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/jt/config.toml)"
	MsgFlagPrintConfig  = "Print the effective configuration and exit"
	MsgFlagTopic        = "Show a help topic ('topics' lists them)"

	// Usage errors
	MsgErrArguments     = "Invalid arguments"
	MsgErrArgumentsHint = "Run 'jt --help' for usage"

	MsgVersionTemplate = "jt version {{.Version}}\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
