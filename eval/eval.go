package eval

import "github.com/lumen-lang/lumen/value"

// Eval evaluates v in env: a Symbol resolves through the environment
// chain, an Sexpr is reduced via S-expression evaluation, and every
// other Kind evaluates to itself.
func Eval(env *value.Environment, v *value.Value) *value.Value {
	switch v.Kind {
	case value.Symbol:
		return env.Get(v.Str)
	case value.Sexpr:
		return evalSexpr(env, v)
	default:
		return v
	}
}

// evalSexpr implements S-expression evaluation: evaluate children left
// to right, short-circuit on the first Error, auto-unwrap empty and
// single-child forms, then dispatch the remainder to Call.
func evalSexpr(env *value.Environment, v *value.Value) *value.Value {
	for i, c := range v.Cells {
		v.Cells[i] = Eval(env, c)
	}

	for _, c := range v.Cells {
		if c.Kind == value.Error {
			return c
		}
	}

	if len(v.Cells) == 0 {
		return v
	}
	if len(v.Cells) == 1 {
		return v.Cells[0]
	}

	f := v.Pop(0)
	if f.Kind != value.Function {
		return value.NewError(
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			f.Kind, value.Function)
	}
	return Call(env, f, v)
}
