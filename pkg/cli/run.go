package cli

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/config"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/logging"
	"github.com/arthur-debert/jt/pkg/pipeline"
	"github.com/arthur-debert/jt/pkg/topics"
	"github.com/arthur-debert/jt/pkg/types"
)

// Run executes jt with args against ctx. Failures are rendered to the
// error stream followed by Exit(1); help and version end with Exit(0).
// A successful run returns without calling Exit.
func Run(args []string, ctx *adapters.Context) {
	logging.SetupLogger(0, adapters.ErrorWriter(ctx.Out))

	a := &app{ctx: ctx}
	cmd := a.command()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	flush(&stdout, ctx.Out.Log)
	flush(&stderr, ctx.Out.Error)

	if err != nil {
		pipeline.HandleError(err, ctx)
		return
	}
	if !a.ran {
		ctx.Out.Exit(0)
	}
}

func flush(buf *bytes.Buffer, emit func(string)) {
	if buf.Len() == 0 {
		return
	}
	emit(strings.TrimRight(buf.String(), "\n"))
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	color, err := a.applyColorFlags()
	if err != nil {
		return err
	}

	logging.SetupLogger(a.flags.verbosity, adapters.ErrorWriter(a.ctx.Out))
	logging.LogCommand(cmd.Name(), args)

	cfg, err := config.Load(a.flags.configPath, a.ctx)
	if err != nil {
		return err
	}
	if v := logging.VerbosityForLevel(cfg.Log.Level); v > a.flags.verbosity {
		logging.SetupLogger(v, adapters.ErrorWriter(a.ctx.Out))
	}

	if a.flags.printConfig {
		text, err := cfg.TOML()
		if err != nil {
			return err
		}
		a.ctx.Out.Log(strings.TrimRight(text, "\n"))
		return nil
	}

	if cmd.Flags().Changed("topic") {
		renderer := topics.NewGlamourRenderer(colorize.Enabled(a.ctx.Env, a.ctx.Out))
		text, err := topics.Default(renderer).Show(a.flags.topic)
		if err != nil {
			return err
		}
		a.ctx.Out.Log(strings.TrimRight(text, "\n"))
		return nil
	}

	req, err := a.request(cmd, args, cfg)
	if err != nil {
		return err
	}
	req.Color = color

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	return pipeline.New(a.ctx).WithPalette(palette).Run(req)
}

// applyColorFlags records --color or --no-color in FORCE_COLOR before any
// other stage reads the color policy. --no-color wins when both are given.
func (a *app) applyColorFlags() (types.ColorMode, error) {
	switch {
	case a.flags.noColor:
		if err := a.ctx.Env.Set("FORCE_COLOR", "0"); err != nil {
			return types.ColorAuto, errors.Wrap(err, errors.ErrUnknown, "Failed to set FORCE_COLOR")
		}
		return types.ColorDisable, nil
	case a.flags.color:
		if err := a.ctx.Env.Set("FORCE_COLOR", "1"); err != nil {
			return types.ColorAuto, errors.Wrap(err, errors.ErrUnknown, "Failed to set FORCE_COLOR")
		}
		return types.ColorForce, nil
	default:
		return types.ColorAuto, nil
	}
}

// request merges positionals, flags and config. Flags given on the
// command line win over config values.
func (a *app) request(cmd *cobra.Command, args []string, cfg *config.Config) (pipeline.Request, error) {
	query, file := Resolve(args)
	req := pipeline.Request{
		Query:        query,
		File:         file,
		InputFormat:  cfg.InputFormat(),
		OutputFormat: cfg.OutputFormat(),
		Compact:      a.flags.compact,
		RawString:    a.flags.rawString,
		NoHeader:     a.flags.noHeader,
	}

	if cmd.Flags().Changed("input-format") {
		format, err := types.ParseInputFormat(a.flags.inputFormat)
		if err != nil {
			return req, err
		}
		req.InputFormat = format
	}

	// An unknown output format is reported by validation
	if cmd.Flags().Changed("output-format") {
		req.OutputFormat = types.OutputFormat(strings.ToLower(strings.TrimSpace(a.flags.outputFormat)))
	}

	return req, nil
}
