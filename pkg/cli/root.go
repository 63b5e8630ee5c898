package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/jt/internal/version"
	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/topics"
	"github.com/arthur-debert/jt/pkg/types"
)

// flags holds the parsed command line options
type flags struct {
	inputFormat  string
	outputFormat string
	compact      bool
	rawString    bool
	noHeader     bool
	color        bool
	noColor      bool
	verbosity    int
	configPath   string
	printConfig  bool
	topic        string
}

// app is one invocation of the root command
type app struct {
	ctx   *adapters.Context
	flags flags
	// ran is set once the command body executes, which help and
	// version never reach
	ran bool
}

// NewRootCmd creates the root command bound to ctx
func NewRootCmd(ctx *adapters.Context) *cobra.Command {
	return (&app{ctx: ctx}).command()
}

func (a *app) command() *cobra.Command {
	initTemplateFormatting(colorize.Enabled(a.ctx.Env, a.ctx.Out))

	rootCmd := &cobra.Command{
		Use:     "jt [query] [file]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ran = true
			return a.run(cmd, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	f := rootCmd.Flags()
	f.StringVarP(&a.flags.inputFormat, "input-format", "i", "", MsgFlagInputFormat)
	f.StringVarP(&a.flags.outputFormat, "output-format", "o", string(types.DefaultOutputFormat), MsgFlagOutputFormat)
	f.BoolVarP(&a.flags.compact, "compact", "c", false, MsgFlagCompact)
	f.BoolVarP(&a.flags.rawString, "raw-string", "r", false, MsgFlagRawString)
	f.BoolVar(&a.flags.noHeader, "no-header", false, MsgFlagNoHeader)
	f.BoolVar(&a.flags.color, "color", false, MsgFlagColor)
	f.BoolVar(&a.flags.noColor, "no-color", false, MsgFlagNoColor)
	f.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	f.StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)
	f.BoolVar(&a.flags.printConfig, "print-config", false, MsgFlagPrintConfig)
	f.StringVar(&a.flags.topic, "topic", "", MsgFlagTopic)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))

	_ = rootCmd.RegisterFlagCompletionFunc("input-format", completeValues(inputFormatNames()))
	_ = rootCmd.RegisterFlagCompletionFunc("output-format", completeValues(outputFormatNames()))
	_ = rootCmd.RegisterFlagCompletionFunc("topic", completeValues(
		append([]string{topics.ListName}, topics.Default(nil).Names()...)))

	return rootCmd
}

func usageError(err error) error {
	return errors.Wrap(err, errors.ErrInvalidInput, MsgErrArguments).
		WithSuggestion(MsgErrArgumentsHint)
}

func completeValues(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func inputFormatNames() []string {
	names := make([]string, 0, len(types.InputFormats))
	for _, f := range types.InputFormats {
		names = append(names, f.String())
	}
	return names
}

func outputFormatNames() []string {
	names := make([]string, 0, len(types.OutputFormats))
	for _, f := range types.OutputFormats {
		names = append(names, f.String())
	}
	return names
}
