/*
File: monke/parser/precedence.go
*/
package parser

import "github.com/akashmaji946/monke/token"

// precedence ranks bind tighter as the value increases. Ties between two
// infix operators are broken strictly: an operator's own production only
// continues folding further infix/suffix operators whose precedence is
// strictly greater than its own, which is what gives left-associative
// chains of equal-precedence operators (`a + b + c`) their
// `((a + b) + c)` shape (spec.md §4.2).
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x), arr[i]
)

var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
}

// precedenceOf returns the infix binding power of t, or LOWEST for any
// token with no registered infix production (spec.md §4.2: "tokens that do
// not appear above map to Lowest").
func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
