// Package value implements lumen's runtime value model: a single tagged
// variant covering numbers, errors, symbols, strings, S-expressions,
// Q-expressions, and functions (builtin or lambda), plus the lexical
// Environment that binds symbols to values.
package value
