// Package query evaluates JSONata expressions against document values.
package query

import (
	stderrors "errors"
	"strings"

	jsonata "github.com/blues/jsonata-go"

	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/logging"
)

// Evaluator runs a query against a value
type Evaluator interface {
	Evaluate(query string, data any) (any, error)
}

// JSONata evaluates expressions with the jsonata-go engine
type JSONata struct{}

// New returns the JSONata evaluator
func New() *JSONata {
	return &JSONata{}
}

// Execute evaluates query against data with the default evaluator
func Execute(query string, data any) (any, error) {
	return New().Evaluate(query, data)
}

// syntaxMarkers identify engine messages that describe a malformed query
var syntaxMarkers = []string{"position", "unexpected", "expected", "syntax", "token"}

// Evaluate compiles and runs query. A query that matches nothing yields
// document.Undefined. Objects built by the query keep the key order of
// their constructors.
func (JSONata) Evaluate(query string, data any) (any, error) {
	logger := logging.GetLogger("query")

	expr, err := jsonata.Compile(query)
	if err != nil {
		return nil, invalidQuery(err)
	}

	conv := document.NewConverter().WithKeyOrder(constructorKeys(query))
	result, err := expr.Eval(conv.ToPlain(data))
	if stderrors.Is(err, jsonata.ErrUndefined) {
		logger.Debug().Str("query", query).Msg("Query matched nothing")
		return document.Undefined, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return conv.FromPlain(result), nil
}

// classify splits engine failures into query syntax problems and runtime
// failures by looking for syntax markers in the message
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range syntaxMarkers {
		if strings.Contains(msg, marker) {
			return invalidQuery(err)
		}
	}
	return errors.Wrap(err, errors.ErrExecutionError, "Query execution failed").
		WithSuggestion("Verify data types and property paths")
}

func invalidQuery(err error) error {
	return errors.Wrap(err, errors.ErrInvalidQuery, "Invalid JSONata expression").
		WithSuggestion("Check syntax at jsonata.org")
}
