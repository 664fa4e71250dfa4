package eval

import "github.com/lumen-lang/lumen/value"

// Call applies Function f to argument list args (an Sexpr stripped of
// its head). Builtins are invoked directly; lambdas bind formals to
// arguments one at a time, support `&`-variadic trailing capture, curry
// when under-applied (returning a copy of f with the bindings made so
// far), and otherwise evaluate their body in the captured environment
// reparented onto the caller's environment.
func Call(env *value.Environment, f *value.Value, args *value.Value) *value.Value {
	if f.IsBuiltin() {
		return f.Fn(env, args)
	}

	given := len(args.Cells)
	total := len(f.Formals.Cells)

	for len(args.Cells) > 0 {
		if len(f.Formals.Cells) == 0 {
			return value.NewError(
				"Function passed too many arguments. Got %d, Expected %d.", given, total)
		}

		sym := f.Formals.Pop(0)

		if sym.Str == "&" {
			if len(f.Formals.Cells) != 1 {
				return value.NewError(
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := f.Formals.Pop(0)
			f.Env.Put(rest.Str, value.NewQexpr(args.Cells...))
			args.Cells = nil
			break
		}

		val := args.Pop(0)
		f.Env.Put(sym.Str, val)
	}

	if len(f.Formals.Cells) > 0 && f.Formals.Cells[0].Str == "&" {
		if len(f.Formals.Cells) != 2 {
			return value.NewError(
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		f.Formals.Pop(0)
		rest := f.Formals.Pop(0)
		f.Env.Put(rest.Str, value.NewQexpr())
	}

	if len(f.Formals.Cells) == 0 {
		f.Env.SetParent(env)
		body := f.Body.Copy()
		body.Kind = value.Sexpr
		return Eval(f.Env, body)
	}

	return f.Copy()
}
