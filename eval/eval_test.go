package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/reader"
	"github.com/lumen-lang/lumen/syntax"
	"github.com/lumen-lang/lumen/value"
)

// run parses src as one program and evaluates it as a single
// S-expression, the same reduction EvalSource performs: the parsed
// root's children become that expression's own children, so a bare
// top-level call like `+ 1 2 3` dispatches through the normal
// S-expression evaluation rule instead of being run form-by-form.
func run(t *testing.T, env *value.Environment, src string) *value.Value {
	t.Helper()
	root, err := syntax.Parse(src)
	require.NoError(t, err)

	return Eval(env, reader.Read(root))
}

func newTestEnv(t *testing.T) *value.Environment {
	t.Helper()
	env := value.NewEnvironment(nil)
	LoadPrimitives(env)
	require.NoError(t, LoadPrelude(env))
	return env
}

func TestEvalSelfEvaluatingKinds(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, "5", run(t, env, "5").String())
	assert.Equal(t, `"hi"`, run(t, env, `"hi"`).String())
	assert.Equal(t, "{1 2 3}", run(t, env, "{1 2 3}").String())
}

func TestEvalArithmetic(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "+ 1 2 3")
	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(6), result.Num)
}

func TestEvalNestedSexpr(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "* (+ 1 2) (- 10 4)")
	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(18), result.Num)
}

func TestEvalDefPersistsAcrossStatements(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {x} 100")
	result := run(t, env, "x")

	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(100), result.Num)
}

func TestEvalSexprShortCircuitsOnError(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "+ 1 (/ 1 0) foo")
	require.Equal(t, value.Error, result.Kind)
	assert.Equal(t, "Error: Division By Zero!", result.String())
}

func TestEvalEmptySexprIsItself(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "()")
	assert.Equal(t, "()", result.String())
}

func TestEvalSexprStartingWithNonFunctionErrors(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "(1 2 3)")
	require.Equal(t, value.Error, result.Kind)
	assert.Contains(t, result.Str, "S-Expression starts with incorrect type")
}
