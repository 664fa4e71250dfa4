package eval

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/lumen-lang/lumen/reader"
	"github.com/lumen-lang/lumen/syntax"
	"github.com/lumen-lang/lumen/value"
)

// LoadPrimitives registers lumen's fixed set of builtins into env.
func LoadPrimitives(env *value.Environment) {
	register := func(name string, fn value.Builtin) {
		env.Put(name, value.NewBuiltin(name, fn))
	}

	register("list", builtinList)
	register("head", builtinHead)
	register("tail", builtinTail)
	register("eval", builtinEval)
	register("join", builtinJoin)

	register("+", func(e *value.Environment, a *value.Value) *value.Value { return builtinOp(a, "+") })
	register("-", func(e *value.Environment, a *value.Value) *value.Value { return builtinOp(a, "-") })
	register("*", func(e *value.Environment, a *value.Value) *value.Value { return builtinOp(a, "*") })
	register("/", func(e *value.Environment, a *value.Value) *value.Value { return builtinOp(a, "/") })

	register("def", builtinDef)
	register("=", builtinPut)
	register("\\", builtinLambda)
	register("fun", builtinFun)

	register("<", func(e *value.Environment, a *value.Value) *value.Value { return builtinOrd(a, "<") })
	register("<=", func(e *value.Environment, a *value.Value) *value.Value { return builtinOrd(a, "<=") })
	register(">", func(e *value.Environment, a *value.Value) *value.Value { return builtinOrd(a, ">") })
	register(">=", func(e *value.Environment, a *value.Value) *value.Value { return builtinOrd(a, ">=") })
	register("==", func(e *value.Environment, a *value.Value) *value.Value { return builtinCmp(a, "==") })
	register("!=", func(e *value.Environment, a *value.Value) *value.Value { return builtinCmp(a, "!=") })

	register("&&", func(e *value.Environment, a *value.Value) *value.Value { return builtinBool(e, a, "&&") })
	register("||", func(e *value.Environment, a *value.Value) *value.Value { return builtinBool(e, a, "||") })
	register("!", builtinNot)
	register("if", builtinIf)

	register("load", builtinLoad)
	register("error", builtinError)
	register("print", builtinPrint)
}

// assertArity returns an Error Value if args does not have exactly n
// cells, nil otherwise.
func assertArity(funcName string, args *value.Value, n int, message string) *value.Value {
	if len(args.Cells) != n {
		return value.NewError(message, funcName, len(args.Cells), n)
	}
	return nil
}

func builtinOp(a *value.Value, op string) *value.Value {
	for i, c := range a.Cells {
		if c.Kind != value.Number {
			return value.NewError(
				"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
				op, i, c.Kind, value.Number)
		}
	}

	x := a.Pop(0)

	if op == "-" && len(a.Cells) == 0 {
		x.Num = -x.Num
	}

	for len(a.Cells) > 0 {
		y := a.Pop(0)
		switch op {
		case "+":
			x.Num += y.Num
		case "-":
			x.Num -= y.Num
		case "*":
			x.Num *= y.Num
		case "/":
			if y.Num == 0 {
				return value.NewError("Division By Zero!")
			}
			x.Num /= y.Num
		}
	}

	return x
}

func builtinHead(_ *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("head", a, 1, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError(
			"Function 'head' passed incorrect type for argument 0. Got %s, Expected %s.",
			a.Cells[0].Kind, value.Qexpr)
	}
	if len(a.Cells[0].Cells) == 0 {
		return value.NewError("Function 'head' passed {}.")
	}

	v := a.Pop(0)
	return value.NewQexpr(v.Cells[0])
}

func builtinTail(_ *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("tail", a, 1, "Function '%s' passed incorrect number of arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError(
			"Function 'tail' passed incorrect type. Got %s, Expected %s.",
			a.Cells[0].Kind, value.Qexpr)
	}
	if len(a.Cells[0].Cells) == 0 {
		return value.NewError("Function 'tail' passed {}!")
	}

	v := a.Pop(0)
	return value.NewQexpr(v.Cells[1:]...)
}

func builtinList(_ *value.Environment, a *value.Value) *value.Value {
	a.Kind = value.Qexpr
	return a
}

func builtinEval(env *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("eval", a, 1, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError(
			"Function 'eval' passed incorrect type. Got %s, Expected %s.",
			a.Cells[0].Kind, value.Qexpr)
	}

	x := a.Pop(0)
	x.Kind = value.Sexpr
	return Eval(env, x)
}

func builtinJoin(_ *value.Environment, a *value.Value) *value.Value {
	for _, c := range a.Cells {
		if c.Kind != value.Qexpr {
			return value.NewError(
				"Function 'join' passed incorrect type. Got %s, Expected %s.",
				c.Kind, value.Qexpr)
		}
	}

	x := a.Pop(0)
	for len(a.Cells) > 0 {
		y := a.Pop(0)
		x.Cells = append(x.Cells, y.Cells...)
	}
	return x
}

func builtinVar(env *value.Environment, a *value.Value, funcName string) *value.Value {
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError(
			"Function '%s' passed incorrect type. Got %s, Expected %s.",
			funcName, a.Cells[0].Kind, value.Qexpr)
	}

	syms := a.Cells[0]
	for _, s := range syms.Cells {
		if s.Kind != value.Symbol {
			return value.NewError(
				"Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				funcName, s.Kind, value.Symbol)
		}
	}
	if len(syms.Cells) != len(a.Cells)-1 {
		return value.NewError(
			"Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
			funcName, len(syms.Cells), len(a.Cells)-1)
	}

	for i, sym := range syms.Cells {
		if funcName == "def" {
			env.Def(sym.Str, a.Cells[i+1])
		} else {
			env.Put(sym.Str, a.Cells[i+1])
		}
	}

	return value.NewSexpr()
}

func builtinDef(env *value.Environment, a *value.Value) *value.Value {
	return builtinVar(env, a, "def")
}

func builtinPut(env *value.Environment, a *value.Value) *value.Value {
	return builtinVar(env, a, "=")
}

func builtinLambda(_ *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("\\", a, 2, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError("Function '\\' passed incorrect type. Got %s, Expected %s.", a.Cells[0].Kind, value.Qexpr)
	}
	if a.Cells[1].Kind != value.Qexpr {
		return value.NewError("Function '\\' passed incorrect type. Got %s, Expected %s.", a.Cells[1].Kind, value.Qexpr)
	}

	for _, s := range a.Cells[0].Cells {
		if s.Kind != value.Symbol {
			return value.NewError("Cannot define non-symbol. Got %s, Expected %s.", s.Kind, value.Symbol)
		}
	}

	formals := a.Pop(0)
	body := a.Pop(0)
	return value.NewLambda(formals, body)
}

func builtinFun(env *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("fun", a, 2, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Qexpr {
		return value.NewError("Function 'fun' passed incorrect type. Got %s, Expected %s.", a.Cells[0].Kind, value.Qexpr)
	}
	if a.Cells[1].Kind != value.Qexpr {
		return value.NewError("Function 'fun' passed incorrect type. Got %s, Expected %s.", a.Cells[1].Kind, value.Qexpr)
	}
	if len(a.Cells[0].Cells) == 0 {
		return value.NewError("Function name is required.")
	}
	for _, s := range a.Cells[0].Cells {
		if s.Kind != value.Symbol {
			return value.NewError("Cannot define non-symbol. Got %s, Expected %s.", s.Kind, value.Symbol)
		}
	}

	nameArgs := a.Pop(0)
	body := a.Pop(0)

	name := nameArgs.Cells[0]
	args := value.NewQexpr(nameArgs.Cells[1:]...)

	lamb := builtinLambda(env, value.NewSexpr(args, body))
	if lamb.Kind == value.Error {
		return lamb
	}

	return builtinDef(env, value.NewSexpr(value.NewQexpr(name), lamb))
}

func builtinOrd(a *value.Value, op string) *value.Value {
	if err := assertArity(op, a, 2, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Number {
		return value.NewError("Function '%s' passed incorrect type. Got %s, Expected %s.", op, a.Cells[0].Kind, value.Number)
	}
	if a.Cells[1].Kind != value.Number {
		return value.NewError("Function '%s' passed incorrect type. Got %s, Expected %s.", op, a.Cells[1].Kind, value.Number)
	}

	n1, n2 := a.Cells[0].Num, a.Cells[1].Num
	var r bool
	switch op {
	case "<":
		r = n1 < n2
	case "<=":
		r = n1 <= n2
	case ">":
		r = n1 > n2
	case ">=":
		r = n1 >= n2
	}
	return value.NewNumber(boolToInt(r))
}

func builtinCmp(a *value.Value, op string) *value.Value {
	if err := assertArity(op, a, 2, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	eq := a.Cells[0].Equal(a.Cells[1])
	if op == "!=" {
		eq = !eq
	}
	return value.NewNumber(boolToInt(eq))
}

func builtinBool(env *value.Environment, a *value.Value, op string) *value.Value {
	if len(a.Cells) < 2 {
		return value.NewError("Boolean operation '%s' takes at least 2 arguments.", op)
	}

	isAnd := op == "&&"
	r := boolToInt(isAnd)

	for i := range a.Cells {
		a.Cells[i] = Eval(env, a.Cells[i])
		if a.Cells[i].Kind != value.Number {
			return value.NewError("Function '%s' passed incorrect type. Got %s, Expected %s.", op, a.Cells[i].Kind, value.Number)
		}
		if isAnd {
			if a.Cells[i].Num == 0 {
				r = 0
				break
			}
		} else {
			if a.Cells[i].Num != 0 {
				r = 1
				break
			}
		}
	}

	return value.NewNumber(r)
}

func builtinNot(env *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("!", a, 1, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}

	arg := Eval(env, a.Cells[0])
	if arg.Kind != value.Number {
		return value.NewError("Function '!' passed incorrect type. Got %s, Expected %s.", arg.Kind, value.Number)
	}
	return value.NewNumber(boolToInt(arg.Num == 0))
}

func builtinIf(env *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("if", a, 3, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.Number {
		return value.NewError("Function 'if' passed incorrect type. Got %s, Expected %s.", a.Cells[0].Kind, value.Number)
	}
	if a.Cells[1].Kind != value.Qexpr {
		return value.NewError("Function 'if' passed incorrect type. Got %s, Expected %s.", a.Cells[1].Kind, value.Qexpr)
	}
	if a.Cells[2].Kind != value.Qexpr {
		return value.NewError("Function 'if' passed incorrect type. Got %s, Expected %s.", a.Cells[2].Kind, value.Qexpr)
	}

	var branch *value.Value
	if a.Cells[0].Num != 0 {
		branch = a.Cells[1]
	} else {
		branch = a.Cells[2]
	}
	branch.Kind = value.Sexpr
	return Eval(env, branch)
}

// builtinLoad reads and evaluates each top-level expression of the
// named file in env. Errors from individual expressions are printed
// and evaluation continues.
func builtinLoad(env *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("load", a, 1, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.String {
		return value.NewError("Function 'load' passed incorrect type. Got %s, Expected %s.", a.Cells[0].Kind, value.String)
	}

	path := a.Cells[0].Str
	contents, err := os.ReadFile(path)
	if err != nil {
		return value.NewError("Could not load Library %s", errors.Wrap(err, "reading "+path))
	}

	root, err := syntax.Parse(string(contents))
	if err != nil {
		return value.NewError("Could not load Library %s", errors.Wrap(err, "parsing "+path))
	}

	program := reader.Read(root)
	for _, expr := range program.Cells {
		result := Eval(env, expr)
		if result.Kind == value.Error {
			fmt.Println(result.String())
		}
	}

	return value.NewSexpr()
}

func builtinError(_ *value.Environment, a *value.Value) *value.Value {
	if err := assertArity("error", a, 1, "Function '%s' passed too many arguments. Got %d, Expected %d."); err != nil {
		return err
	}
	if a.Cells[0].Kind != value.String {
		return value.NewError("Function 'error' passed incorrect type. Got %s, Expected %s.", a.Cells[0].Kind, value.String)
	}
	return value.NewErrorString(a.Cells[0].Str)
}

func builtinPrint(_ *value.Environment, a *value.Value) *value.Value {
	for _, c := range a.Cells {
		fmt.Print(c.String())
		fmt.Print(" ")
	}
	fmt.Println()
	return value.NewSexpr()
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
