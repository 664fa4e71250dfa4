package value

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Number Kind = iota
	Error
	Symbol
	String
	Sexpr
	Qexpr
	Function
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Error:
		return "Error"
	case Symbol:
		return "Symbol"
	case String:
		return "String"
	case Sexpr:
		return "S-Expression"
	case Qexpr:
		return "Q-Expression"
	case Function:
		return "Function"
	default:
		return "Unknown"
	}
}

// Builtin is the signature every primitive operation implements. It
// receives ownership of env and args and returns a freshly produced
// Value or one extracted from args.
type Builtin func(env *Environment, args *Value) *Value

// Value is lumen's single runtime value type: a tagged variant with one
// payload set active per Kind. Sexpr and Qexpr use Cells; Function uses
// either Fn (builtin) or Formals/Body/Env (lambda).
type Value struct {
	Kind Kind

	Num int64  // Number
	Str string // Error message, Symbol name, or String contents

	Cells []*Value // Sexpr / Qexpr children, insertion order

	Fn      Builtin      // non-nil for a builtin Function
	FnName  string       // builtin's registered name, used in error messages
	Formals *Value       // Qexpr of Symbols, lambda only
	Body    *Value       // Qexpr, lambda only
	Env     *Environment // captured environment, lambda only
}

// NewNumber constructs a Number Value.
func NewNumber(n int64) *Value {
	return &Value{Kind: Number, Num: n}
}

// NewError constructs an Error Value with a formatted message.
func NewError(format string, args ...interface{}) *Value {
	return &Value{Kind: Error, Str: fmt.Sprintf(format, args...)}
}

// NewErrorString constructs an Error Value from a literal message,
// without treating it as a format string. Used for the `error` builtin,
// whose message is arbitrary user-supplied text that may itself contain
// '%' characters.
func NewErrorString(msg string) *Value {
	return &Value{Kind: Error, Str: msg}
}

// NewSymbol constructs a Symbol Value.
func NewSymbol(name string) *Value {
	return &Value{Kind: Symbol, Str: name}
}

// NewString constructs a String Value holding raw (unescaped) bytes.
func NewString(s string) *Value {
	return &Value{Kind: String, Str: s}
}

// NewSexpr constructs an Sexpr Value holding cells (empty if none are given).
func NewSexpr(cells ...*Value) *Value {
	return &Value{Kind: Sexpr, Cells: cells}
}

// NewQexpr constructs a Qexpr Value holding cells (empty if none are given).
func NewQexpr(cells ...*Value) *Value {
	return &Value{Kind: Qexpr, Cells: cells}
}

// NewBuiltin constructs a Function Value wrapping a host-provided
// primitive.
func NewBuiltin(name string, fn Builtin) *Value {
	return &Value{Kind: Function, Fn: fn, FnName: name}
}

// NewLambda constructs a user-defined Function with a fresh captured
// environment. formals must be a Qexpr of Symbols; body a Qexpr.
func NewLambda(formals, body *Value) *Value {
	return &Value{
		Kind:    Function,
		Formals: formals,
		Body:    body,
		Env:     NewEnvironment(nil),
	}
}

// IsBuiltin reports whether a Function Value wraps a host primitive
// rather than a user-defined lambda.
func (v *Value) IsBuiltin() bool {
	return v.Kind == Function && v.Fn != nil
}

// Add appends x to v's Cells and returns v, mirroring the original
// lval_add accumulation idiom.
func (v *Value) Add(x *Value) *Value {
	v.Cells = append(v.Cells, x)
	return v
}

// Pop removes and returns the element at i, shifting the remainder down.
func (v *Value) Pop(i int) *Value {
	x := v.Cells[i]
	v.Cells = append(v.Cells[:i], v.Cells[i+1:]...)
	return x
}

// Copy produces a value independent of v: sequences are deep-copied,
// lambdas deep-copy formals, body, and their captured environment (the
// environment's parent link is shared, not duplicated); builtins and
// numbers copy directly.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	x := &Value{Kind: v.Kind}
	switch v.Kind {
	case Number:
		x.Num = v.Num
	case Error, Symbol, String:
		x.Str = v.Str
	case Sexpr, Qexpr:
		x.Cells = make([]*Value, len(v.Cells))
		for i, c := range v.Cells {
			x.Cells[i] = c.Copy()
		}
	case Function:
		if v.IsBuiltin() {
			x.Fn = v.Fn
			x.FnName = v.FnName
		} else {
			x.Formals = v.Formals.Copy()
			x.Body = v.Body.Copy()
			x.Env = v.Env.Copy()
		}
	}
	return x
}

// Equal implements lumen's structural equality (builtin_cmp / lval_eq):
// different Kinds are always unequal; Numbers compare by value; Error,
// Symbol, and String compare byte-wise; Sexpr/Qexpr compare length and
// elements; Functions compare by builtin identity if either side is a
// builtin, otherwise by formals and body (captured environments are
// never compared).
func (v *Value) Equal(o *Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Number:
		return v.Num == o.Num
	case Error, Symbol, String:
		return v.Str == o.Str
	case Sexpr, Qexpr:
		if len(v.Cells) != len(o.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(o.Cells[i]) {
				return false
			}
		}
		return true
	case Function:
		if v.IsBuiltin() || o.IsBuiltin() {
			return v.IsBuiltin() && o.IsBuiltin() &&
				funcPointerEqual(v.Fn, o.Fn)
		}
		return v.Formals.Equal(o.Formals) && v.Body.Equal(o.Body)
	default:
		return false
	}
}

func funcPointerEqual(a, b Builtin) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// String renders v the way the REPL prints results: the printer
// described in spec §4.2, the inverse of the reader for data subsets.
func (v *Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatInt(v.Num, 10)
	case Error:
		return "Error: " + v.Str
	case Symbol:
		return v.Str
	case String:
		return escapeString(v.Str)
	case Sexpr:
		return exprToString(v.Cells, '(', ')')
	case Qexpr:
		return exprToString(v.Cells, '{', '}')
	case Function:
		if v.IsBuiltin() {
			return "<builtin>"
		}
		return fmt.Sprintf("(\\ %s %s)", v.Formals.String(), v.Body.String())
	default:
		return "<unknown>"
	}
}

func exprToString(cells []*Value, open, close byte) string {
	var b strings.Builder
	b.WriteByte(open)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(close)
	return b.String()
}

var escapeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\a", `\a`,
	"\b", `\b`,
	"\f", `\f`,
	"\v", `\v`,
	"\x00", `\0`,
)

func escapeString(s string) string {
	return `"` + escapeReplacer.Replace(s) + `"`
}
