package reader

import (
	"strconv"

	"github.com/lumen-lang/lumen/syntax"
	"github.com/lumen-lang/lumen/value"
)

// Read converts a syntax.Node parse tree into a Value. The program root
// and sexpr-tagged nodes become Sexpr; qexpr-tagged nodes become Qexpr.
// Punctuation and comment children — present only if some other Node
// producer emits them — are skipped rather than recursed into.
func Read(n syntax.Node) *value.Value {
	switch n.Tag() {
	case syntax.TagNumber:
		return readNumber(n)
	case syntax.TagSymbol:
		return value.NewSymbol(n.Contents())
	case syntax.TagString:
		return value.NewString(n.Contents())
	case syntax.TagProgram, syntax.TagSexpr:
		return readCompound(n, value.NewSexpr())
	case syntax.TagQexpr:
		return readCompound(n, value.NewQexpr())
	default:
		return value.NewError("unrecognized syntax node tag %q", n.Tag())
	}
}

func readNumber(n syntax.Node) *value.Value {
	num, err := strconv.ParseInt(n.Contents(), 10, 64)
	if err != nil {
		return value.NewError("Invalid number. Got '%s'.", n.Contents())
	}
	return value.NewNumber(num)
}

func readCompound(n syntax.Node, into *value.Value) *value.Value {
	for _, child := range n.Children() {
		if skip(child) {
			continue
		}
		into.Add(Read(child))
	}
	return into
}

// skip reports whether child is a structural token the reader has no
// use for: a bare punctuation mark or a comment. lumen's own parser
// never emits these, but a different grammar engine swapped in behind
// syntax.Node might.
func skip(n syntax.Node) bool {
	switch n.Tag() {
	case "", "comment", "regex", "(", ")", "{", "}":
		return true
	default:
		return false
	}
}
