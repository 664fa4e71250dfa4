package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/value"
)

func TestApplyLambdaFullApplication(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {add-mul} (\\ {x y} {+ x (* x y)})")
	result := run(t, env, "add-mul 10 20")

	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(210), result.Num)
}

func TestApplyCurryingReturnsPartialCopy(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {add-mul} (\\ {x y} {+ x (* x y)})")
	run(t, env, "def {add-mul-ten} (add-mul 10)")
	result := run(t, env, "add-mul-ten 50")

	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(510), result.Num)
}

func TestApplyPartialFunctionPrintsAsLambda(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {add-mul} (\\ {x y} {+ x (* x y)})")
	result := run(t, env, "add-mul 10")

	require.Equal(t, value.Function, result.Kind)
	assert.False(t, result.IsBuiltin())
	assert.Equal(t, `(\ {y} {+ x (* x y)})`, result.String())
}

func TestApplyTooManyArgumentsErrors(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {add} (\\ {x y} {+ x y})")
	result := run(t, env, "add 1 2 3")

	require.Equal(t, value.Error, result.Kind)
	assert.Contains(t, result.Str, "too many arguments")
}

func TestApplyVariadicCapturesRemainder(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {firstarg} (\\ {x & xs} {x})")
	result := run(t, env, "firstarg 1 2 3")

	require.Equal(t, value.Number, result.Kind)
	assert.Equal(t, int64(1), result.Num)

	run(t, env, "def {restargs} (\\ {x & xs} {xs})")
	rest := run(t, env, "restargs 1 2 3")
	assert.Equal(t, "{2 3}", rest.String())
}

func TestApplyVariadicWithNoExtraArgsBindsEmptyQexpr(t *testing.T) {
	env := newTestEnv(t)

	run(t, env, "def {restargs} (\\ {x & xs} {xs})")
	result := run(t, env, "restargs 1")

	assert.Equal(t, "{}", result.String())
}

func TestApplyBuiltinDispatchesDirectly(t *testing.T) {
	env := newTestEnv(t)

	result := run(t, env, "head {1 2 3}")
	assert.Equal(t, "{1}", result.String())
}
