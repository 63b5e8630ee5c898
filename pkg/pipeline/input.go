package pipeline

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/detect"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/logging"
	"github.com/arthur-debert/jt/pkg/types"
)

// AcquireInput reads file through the context, or drains stdin when no
// file is given. Reading from an interactive terminal is refused rather
// than left waiting.
func AcquireInput(file string, ctx *adapters.Context) (string, error) {
	logger := logging.GetLogger("pipeline.input")

	if file != "" {
		content, err := ctx.FS.ReadFile(file)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return "", errors.Newf(errors.ErrFileNotFound, "File not found: %s", file).
					WithSuggestion("Check the file path and try again")
			}
			return "", err
		}
		logger.Debug().Str("file", file).Int("bytes", len(content)).Msg("Read input file")
		return content, nil
	}

	if ctx.In.IsInteractive() {
		return "", errors.New(errors.ErrInvalidInput, "No input provided").
			WithDetail("Use a file path or pipe data to stdin").
			WithSuggestion(`Example: cat data.json | jt "$.name"`)
	}

	content, err := ctx.In.ReadAll()
	if err != nil {
		return "", err
	}
	logger.Debug().Int("bytes", len(content)).Msg("Read standard input")
	return content, nil
}

// ResolveFormat returns explicit when set, otherwise the detected format
// of content
func ResolveFormat(explicit types.InputFormat, content, file string) types.InputFormat {
	if explicit != "" {
		return explicit
	}
	format := detect.Detect(content, file)
	logger := logging.GetLogger("pipeline.detect")
	logger.Debug().
		Str("file", file).
		Str("format", format.String()).
		Msg("Detected input format")
	return format
}
