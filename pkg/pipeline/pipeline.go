package pipeline

import (
	"strings"

	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/formats/input"
	"github.com/arthur-debert/jt/pkg/formats/output"
	"github.com/arthur-debert/jt/pkg/logging"
	"github.com/arthur-debert/jt/pkg/query"
	"github.com/arthur-debert/jt/pkg/types"
)

// Request is what the command line asks for, before any input is read
type Request struct {
	Query string
	File  string
	// InputFormat is empty when the format should be detected
	InputFormat  types.InputFormat
	OutputFormat types.OutputFormat
	Color        types.ColorMode
	Compact      bool
	RawString    bool
	NoHeader     bool
}

// Pipeline executes requests against one execution context
type Pipeline struct {
	ctx       *adapters.Context
	evaluator query.Evaluator
	palette   colorize.Palette
}

// New returns a pipeline using the JSONata evaluator and default palette
func New(ctx *adapters.Context) *Pipeline {
	return &Pipeline{
		ctx:       ctx,
		evaluator: query.New(),
		palette:   colorize.DefaultPalette(),
	}
}

// WithEvaluator replaces the query evaluator
func (p *Pipeline) WithEvaluator(e query.Evaluator) *Pipeline {
	p.evaluator = e
	return p
}

// WithPalette replaces the color palette
func (p *Pipeline) WithPalette(palette colorize.Palette) *Pipeline {
	p.palette = palette
	return p
}

// Prepare acquires the input and settles the formats, producing the
// options the rest of the run works from
func (p *Pipeline) Prepare(req Request) (types.Options, error) {
	content, err := AcquireInput(req.File, p.ctx)
	if err != nil {
		return types.Options{}, err
	}

	outputFormat := req.OutputFormat
	if outputFormat == "" {
		outputFormat = types.DefaultOutputFormat
	}

	return types.Options{
		Query:        req.Query,
		InputFormat:  ResolveFormat(req.InputFormat, content, req.File),
		OutputFormat: outputFormat,
		Input:        content,
		Color:        req.Color,
		Compact:      req.Compact,
		RawString:    req.RawString,
		NoHeader:     req.NoHeader,
	}, nil
}

// Execute parses the input, evaluates the query if there is one, and
// returns the serialized result
func (p *Pipeline) Execute(opts types.Options) (string, error) {
	logger := logging.GetLogger("pipeline")
	done := logging.LogOperationStart(logger, "execute")
	defer done()

	data, err := input.Parse(opts.Input, opts.InputFormat, opts.NoHeader)
	if err != nil {
		return "", err
	}

	result := data
	if opts.HasQuery() {
		logger.Debug().Str("query", opts.Query).Msg("Evaluating query")
		result, err = p.evaluator.Evaluate(opts.Query, data)
		if err != nil {
			return "", err
		}
	}

	return output.Format(result, opts.OutputFormat, output.Options{
		Compact:   opts.Compact,
		RawString: opts.RawString,
		Color:     colorize.Enabled(p.ctx.Env, p.ctx.Out),
		Palette:   p.palette,
	})
}

// Run prepares, validates and executes req, writing warnings and the
// result through the context. Errors are returned for HandleError.
func (p *Pipeline) Run(req Request) error {
	opts, err := p.Prepare(req)
	if err != nil {
		return err
	}

	validation := Validate(opts)
	for _, warning := range validation.Warnings {
		p.ctx.Out.Error(warning)
	}
	if !validation.Valid {
		return validation.Err
	}

	text, err := p.Execute(opts)
	if err != nil {
		return err
	}
	p.ctx.Out.Log(strings.TrimSuffix(text, "\n"))
	return nil
}

// HandleError writes the rendered error block and exits with status 1
func HandleError(err error, ctx *adapters.Context) {
	if err == nil {
		return
	}
	color := colorize.Enabled(ctx.Env, ctx.Out)
	logger := logging.GetLogger("pipeline")
	logger.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Invocation failed")
	ctx.Out.Error(errors.Render(err, color))
	ctx.Out.Exit(1)
}
