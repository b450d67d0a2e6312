/*
File: monke/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/monke/ast"
	"github.com/akashmaji946/monke/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, errs := ParseProgram(lexer.New(input))
	require.Empty(t, errs, "input=%q", input)
	return program
}

func TestLetStatements(t *testing.T) {
	program := parseOK(t, `let x = 5; let y = 10; let foobar = 838383;`)
	require.Len(t, program.Statements, 3)

	wantNames := []string{"x", "y", "foobar"}
	for i, name := range wantNames {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, name, stmt.Name.Value)
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseOK(t, `return 993322;`)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Equal(t, "993322", stmt.ReturnValue.(*ast.IntegerLiteral).Token.Literal)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
		{"a[0](1)[2]", "((a[0])(1)[2])"},
	}

	for _, tt := range tests {
		program := parseOK(t, tt.input)
		assert.Equal(t, tt.want, program.String(), "input=%q", tt.input)
	}
}

func TestIfElseExpression(t *testing.T) {
	program := parseOK(t, `if (x < y) { x } else { y }`)
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, ifExpr.Alternative)
	assert.Equal(t, "x", ifExpr.Consequence.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Identifier).Value)
}

func TestFunctionLiteralParameters(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fn() {}", []string{}},
		{"fn(x) {}", []string{"x"}},
		{"fn(x, y, z) {}", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseOK(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.params))
		for i, p := range tt.params {
			assert.Equal(t, p, fn.Parameters[i].Value)
		}
	}
}

func TestHashLiteral(t *testing.T) {
	program := parseOK(t, `hash!{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)

	want := map[string]int64{"one": 1, "two": 2, "three": 3}
	for _, pair := range hash.Pairs {
		key := pair.Key.(*ast.StringLiteral).Value
		val := pair.Value.(*ast.IntegerLiteral).Value
		assert.Equal(t, want[key], val)
	}
}

func TestEmptyHashLiteral(t *testing.T) {
	program := parseOK(t, `hash!{}`)
	hash := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.HashLiteral)
	assert.Empty(t, hash.Pairs)
}

func TestArrayLiteral(t *testing.T) {
	program := parseOK(t, `[1, 2 * 2, 3 + 3]`)
	arr := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.ArrayLiteral)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "(2 * 2)", arr.Elements[1].String())
}

func TestLeadingSemicolonsSkipped(t *testing.T) {
	program := parseOK(t, `;;; let x = 1; ;; x;`)
	require.Len(t, program.Statements, 2)
}

func TestEOFStatementTerminatesIterator(t *testing.T) {
	p := New(lexer.New(`let x = 1;`))

	stmt, err := p.Next()
	require.NoError(t, err)
	_, ok := stmt.(*ast.LetStatement)
	require.True(t, ok)

	stmt, err = p.Next()
	require.NoError(t, err)
	_, ok = stmt.(*ast.EOFStatement)
	require.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		errType interface{}
	}{
		{`let x 5;`, &UnexpectedTokenError{}},
		{`let = 5;`, &UnexpectedTokenError{}},
		{`5 +`, &EOFError{}},
		{`]`, &PrefixTokenError{}},
		{`let x = 99999999999999999999999;`, &ParseIntError{}},
	}

	for _, tt := range tests {
		p := New(lexer.New(tt.input))
		var lastErr error
		for {
			stmt, err := p.Next()
			if err != nil {
				lastErr = err
				break
			}
			if _, ok := stmt.(*ast.EOFStatement); ok {
				break
			}
		}
		require.Error(t, lastErr, "input=%q", tt.input)
		assert.IsType(t, tt.errType, lastErr, "input=%q", tt.input)
	}
}

func TestCallExpressionArguments(t *testing.T) {
	program := parseOK(t, `add(1, 2 * 3, 4 + 5)`)
	call := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.Equal(t, "add", call.Function.(*ast.Identifier).Value)
	require.Len(t, call.Arguments, 3)
	assert.Equal(t, "1", call.Arguments[0].String())
	assert.Equal(t, "(2 * 3)", call.Arguments[1].String())
}

func TestBlockExpressionAsLetValue(t *testing.T) {
	program := parseOK(t, `let x = { let a = 1; let b = 2; a + b };`)
	let := program.Statements[0].(*ast.LetStatement)
	block, ok := let.Value.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, block.Statements, 3)
}
