// Package eval implements lumen's evaluator: the Eval rules for each
// Value kind, the Apply/Call protocol (currying and `&`-variadic
// binding), the fixed set of builtins, and the prelude loader that
// seeds a root Environment before a REPL or file driver runs.
package eval
