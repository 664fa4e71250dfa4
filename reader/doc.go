// Package reader bridges package syntax's parse tree and package
// value's runtime values: number nodes parse as signed base-10
// integers, symbol nodes become Symbols verbatim, string nodes are
// already unescaped, and compound nodes become Sexpr or Qexpr
// depending on tag.
package reader
