/*
File: monke/parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/monke/token"
)

// EOFError is returned when the input ends in the middle of a production
// that expected more tokens (spec.md §4.2).
type EOFError struct {
	// Expected names what the parser was looking for when input ran out.
	Expected string
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
}

// UnexpectedTokenError is returned when a required token differs from what
// was actually read, e.g. a missing `)` or `=`.
type UnexpectedTokenError struct {
	Expected token.Type
	Received token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead", e.Expected, e.Received)
}

// PrefixTokenError is returned when an expression was expected and the
// current token has no registered prefix parse function.
type PrefixTokenError struct {
	Token token.Token
}

func (e *PrefixTokenError) Error() string {
	return fmt.Sprintf("no prefix parse function for %s found", e.Token)
}

// ParseIntError is returned when an integer literal's text does not fit the
// target numeric type (int64).
type ParseIntError struct {
	Literal string
	Cause   error
}

func (e *ParseIntError) Error() string {
	return fmt.Sprintf("could not parse %q as integer: %s", e.Literal, e.Cause)
}

func (e *ParseIntError) Unwrap() error { return e.Cause }
