package eval

import (
	"github.com/lumen-lang/lumen/reader"
	"github.com/lumen-lang/lumen/syntax"
	"github.com/lumen-lang/lumen/value"
)

// EvalSource parses src as a single program and evaluates it as one
// S-expression against env: the parsed root's children are the normal
// evaluation rule's own arguments, so a bare top-level call like
// `+ 1 2 3` reduces the usual way instead of being walked by hand. A
// parse failure is reported as an Error Value rather than a Go error,
// so REPL and file callers have one result shape to handle.
func EvalSource(env *value.Environment, src string) *value.Value {
	root, err := syntax.Parse(src)
	if err != nil {
		return value.NewError("Parse Error: %s", err)
	}

	return Eval(env, reader.Read(root))
}
