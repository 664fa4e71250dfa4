// Package syntax lexes and parses lumen source text into a generic
// parse tree: each Node carries a tag string, its raw text contents,
// and ordered children. This stands in for the external grammar engine
// (mpc, in the dialect's original C implementation); package reader
// is the only consumer of its output shape. Grammar:
//
//	number  ::= /-?[0-9]+/
//	symbol  ::= /[a-zA-Z0-9_+\-*\/\\=<>!&|]+/
//	string  ::= "(\\.|[^"])*"
//	comment ::= ;[^\r\n]*
//	sexpr   ::= '(' expr* ')'
//	qexpr   ::= '{' expr* '}'
//	expr    ::= number | symbol | string | comment | sexpr | qexpr
//	program ::= expr*
package syntax
