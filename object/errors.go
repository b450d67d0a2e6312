/*
File: monke/object/errors.go
*/
package object

import "fmt"

// The evaluator's error taxonomy (spec.md §7) lives here rather than in
// package evaluator because the built-in functions (len/del/rest/push),
// which construct several of these, live in this package to avoid an
// import cycle with Environment; the tree-walking evaluator imports object
// and raises the same types.

// PrefixError is raised when a prefix operator (`!` or `-`) is applied to an
// operand kind it does not support.
type PrefixError struct {
	Operator string
	Operand  Type
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("unknown operator: %s%s", e.Operator, e.Operand)
}

// InfixError is raised when a binary operator is applied to a left/right
// combination it does not support.
type InfixError struct {
	Operator string
	Left     Type
	Right    Type
}

func (e *InfixError) Error() string {
	return fmt.Sprintf("unknown operator: %s %s %s", e.Left, e.Operator, e.Right)
}

// IdentifierError is raised when an identifier has no binding anywhere in
// the scope chain.
type IdentifierError struct {
	Name string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("identifier not found: %s", e.Name)
}

// CallableError is raised when a Call expression's callee is neither a
// Function nor a Builtin.
type CallableError struct {
	Received Type
}

func (e *CallableError) Error() string {
	return fmt.Sprintf("not a function: %s", e.Received)
}

// ArgumentsError is raised when a call's argument count does not match the
// callee's declared arity.
type ArgumentsError struct {
	Expected int
	Received int
}

func (e *ArgumentsError) Error() string {
	return fmt.Sprintf("wrong number of arguments: expected %d, got %d", e.Expected, e.Received)
}

// TypeError is raised when an operation requires one Object kind and
// receives another (e.g. `len` on a non-Str/Array, indexing a non-Array).
type TypeError struct {
	Expected Type
	Received Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Received)
}

// IndexError is raised when an array index, after negative-index
// normalization, falls outside the array's bounds. Index carries the
// normalized index, matching spec.md §8's `x[-2]` → `IndexError(-1)`
// example.
type IndexError struct {
	Index int64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d", e.Index)
}

// HashError is raised when a non-hashable value (anything outside
// Integer/Boolean/Str) is used as a hash key.
type HashError struct {
	Received Type
}

func (e *HashError) Error() string {
	return fmt.Sprintf("unusable as hash key: %s", e.Received)
}

// ArithmeticError is raised by integer division by zero. spec.md §9 leaves
// this an open issue between host panic semantics and a portable explicit
// error; this repo takes the portable option rather than let it surface as
// a Go runtime panic.
type ArithmeticError struct {
	Operator string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error: %s by zero", e.Operator)
}
