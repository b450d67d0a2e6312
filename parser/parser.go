/*
File: monke/parser/parser.go
*/

// Package parser implements a Pratt (top-down operator precedence) parser
// for Monke. It holds a two-token lookahead buffer (curToken, peekToken)
// over a lexer.Lexer and exposes a lazy sequence of parsed statements via
// Next, terminating cleanly with an ast.EOFStatement (spec.md §4.2).
//
// Grounded on go-mix/parser/parser.go's registration-map shape
// (UnaryFuncs/BinaryFuncs here renamed prefixParseFns/infixParseFns) and
// advance()-primes-twice lookahead, narrowed to Monke's exact grammar.
package parser

import (
	"strconv"

	"github.com/akashmaji946/monke/ast"
	"github.com/akashmaji946/monke/lexer"
	"github.com/akashmaji946/monke/token"
)

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser converts a token stream into an AST one statement at a time.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New constructs a Parser over l and primes the two-token lookahead buffer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseBlockExpression)
	p.registerPrefix(token.HASH, p.parseHashLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{token.PLUS, token.MINUS, token.SLASH, token.ASTERISK, token.EQ, token.NOT_EQ, token.LT, token.GT} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// atEOF reports whether curToken is the zero Token the lexer returns once
// its input is exhausted.
func (p *Parser) atEOF() bool {
	return p.curToken.Type == "" && p.curToken.Literal == ""
}

func (p *Parser) expectPeek(t token.Type) error {
	if p.peekAtEOF() {
		return &EOFError{Expected: string(t)}
	}
	if p.peekToken.Type != t {
		return &UnexpectedTokenError{Expected: t, Received: p.peekToken}
	}
	p.nextToken()
	return nil
}

func (p *Parser) peekAtEOF() bool {
	return p.peekToken.Type == "" && p.peekToken.Literal == ""
}

// Next parses and returns the next statement, or an *ast.EOFStatement with a
// nil error once the token stream is exhausted. A parse error is attached to
// the failing statement; the parser does not attempt to resynchronize, so
// callers that care about multiple errors must stop calling Next after the
// first one (spec.md §4.2).
func (p *Parser) Next() (ast.Statement, error) {
	p.skipSemicolons()

	if p.atEOF() {
		return &ast.EOFStatement{}, nil
	}

	stmt, err := p.parseStatementForBlock()
	if err != nil {
		return nil, err
	}
	p.nextToken()

	return stmt, nil
}

// skipSemicolons advances curToken past any run of leading `;` tokens
// (spec.md §4.2: "leading semicolons are skipped silently").
func (p *Parser) skipSemicolons() {
	for p.curToken.Type == token.SEMICOLON {
		p.nextToken()
	}
}

// ParseProgram drains Next until EOF or the first error, collecting every
// statement parsed before that point. Since Next does not resynchronize after
// an error, the returned slice holds at most one error. It is the convenience
// entry point for callers (tests, file-mode execution, the REPL one line at a
// time) that want the whole program rather than a live iterator.
func ParseProgram(l *lexer.Lexer) (*ast.Program, []error) {
	p := New(l)
	program := &ast.Program{}
	var errs []error

	for {
		stmt, err := p.Next()
		if err != nil {
			errs = append(errs, err)
			return program, errs
		}
		if _, ok := stmt.(*ast.EOFStatement); ok {
			break
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, errs
}

func (p *Parser) parseLetStatement() (ast.Statement, error) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt, nil
}

// parseExpression is the Pratt core: parse a prefix production, then keep
// folding infix/suffix productions whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		if p.atEOF() {
			return nil, &EOFError{Expected: "an expression"}
		}
		return nil, &PrefixTokenError{Token: p.curToken}
	}

	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for p.peekToken.Type != token.SEMICOLON && minPrec < precedenceOf(p.peekToken.Type) {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left, nil
		}
		p.nextToken()

		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, &ParseIntError{Literal: p.curToken.Literal, Cause: err}
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.curToken, Value: p.curToken.Type == token.TRUE}, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	prec := precedenceOf(p.curToken.Type)
	p.nextToken()

	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseBlockExpression() (ast.Expression, error) {
	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return block, nil
}

// parseBlockStatement parses a `{ ... }` sequence assuming curToken is the
// opening brace; it leaves curToken on the closing brace.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for {
		p.skipSemicolons()
		if p.curToken.Type == token.RBRACE {
			break
		}
		if p.atEOF() {
			return nil, &EOFError{Expected: "}"}
		}

		stmt, err := p.parseStatementForBlock()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block, nil
}

// parseStatementForBlock parses one statement inside a block without
// consuming the trailing token the way Next's top-level loop does; it
// shares the same three productions.
func (p *Parser) parseStatementForBlock() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expr := &ast.IfExpression{Token: p.curToken}
	p.nextToken()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expr.Consequence = consequence

	if p.peekToken.Type == token.ELSE {
		p.nextToken()

		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}

		alternative, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		expr.Alternative = alternative
	}

	return expr, nil
}

func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	lit.Parameters = params

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	lit.Body = body

	return lit, nil
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	var params []*ast.Identifier

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return params, nil
	}

	if err := p.requirePeekNotEOF("a parameter"); err != nil {
		return nil, err
	}
	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		if err := p.requirePeekNotEOF("a parameter"); err != nil {
			return nil, err
		}
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Parser) requirePeekNotEOF(what string) error {
	if p.peekAtEOF() {
		return &EOFError{Expected: what}
	}
	return nil
}

func (p *Parser) parseCallExpression(fn ast.Expression) (ast.Expression, error) {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	args, err := p.parseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	expr.Arguments = args
	return expr, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	elements, err := p.parseExpressionList(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	arr.Elements = elements
	return arr, nil
}

// parseExpressionList parses a comma-separated list of expressions up to
// and including the closing token end; curToken starts on the opening
// token ('(' or '[').
func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, error) {
	var list []ast.Expression

	if p.peekToken.Type == end {
		p.nextToken()
		return list, nil
	}

	if p.peekAtEOF() {
		return nil, &EOFError{Expected: string(end)}
	}
	p.nextToken()

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		if p.peekAtEOF() {
			return nil, &EOFError{Expected: "an expression"}
		}
		p.nextToken()

		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if err := p.expectPeek(end); err != nil {
		return nil, err
	}

	return list, nil
}

func (p *Parser) parseIndexExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()

	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Index = index

	if err := p.expectPeek(token.RBRACKET); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseHashLiteral() (ast.Expression, error) {
	hash := &ast.HashLiteral{Token: p.curToken}

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	for p.peekToken.Type != token.RBRACE {
		if p.peekAtEOF() {
			return nil, &EOFError{Expected: "}"}
		}
		p.nextToken()

		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}

		if err := p.expectPeek(token.COLON); err != nil {
			return nil, err
		}
		p.nextToken()

		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if p.peekToken.Type != token.RBRACE {
			if err := p.expectPeek(token.COMMA); err != nil {
				return nil, err
			}
		}
	}

	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}

	return hash, nil
}
