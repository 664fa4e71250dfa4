package eval

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/lumen-lang/lumen/reader"
	"github.com/lumen-lang/lumen/syntax"
	"github.com/lumen-lang/lumen/value"
)

//go:embed prelude.lisp
var preludeSource string

// LoadPrelude parses and evaluates the embedded prelude in env. It
// returns the first Error produced by a top-level prelude expression,
// if any; a non-nil error here indicates a bug in lumen itself, not in
// user code, since prelude.lisp ships with the binary.
func LoadPrelude(env *value.Environment) error {
	root, err := syntax.Parse(preludeSource)
	if err != nil {
		return errors.Wrap(err, "parsing prelude")
	}

	program := reader.Read(root)
	for _, expr := range program.Cells {
		result := Eval(env, expr)
		if result.Kind == value.Error {
			return errors.Errorf("evaluating prelude: %s", result.String())
		}
	}

	return nil
}
