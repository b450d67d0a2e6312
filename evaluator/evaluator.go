/*
File: monke/evaluator/evaluator.go
*/

// Package evaluator tree-walks a Monke AST against an object.Environment,
// producing an object.Object or an error (spec.md §4.3). It is implemented
// as a single recursive Eval over every ast.Node kind, exactly the shape
// go-mix/eval/evaluator.go's Eval dispatch takes, narrowed to the handful
// of node kinds this language's ast package defines and rebuilt around
// object.Environment instead of scope.Scope.
package evaluator

import (
	"github.com/akashmaji946/monke/ast"
	"github.com/akashmaji946/monke/object"
)

// Return is the control-flow-as-error sentinel a `return` statement raises
// (spec.md §4.3 "Control-flow via error channel"). Eval propagates it
// unchanged through every production except a function call boundary,
// which catches it and unwraps Value as the call's result. EvalReturn does
// the same unwrap for the REPL's top-level `return 10;`.
type Return struct {
	Value object.Object
}

func (r *Return) Error() string { return "return outside function" }

// Eval evaluates node in env, returning its value or the first error
// encountered (which may be a *Return, not a user-visible failure).
func Eval(node ast.Node, env *object.Environment) (object.Object, error) {
	switch node := node.(type) {
	case *ast.Program:
		return evalStatements(node.Statements, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.BlockStatement:
		inner := object.NewEnclosedEnvironment(env)
		return evalStatements(node.Statements, inner)

	case *ast.LetStatement:
		val, err := Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(node.Name.Value, val)
		return object.NullValue, nil

	case *ast.ReturnStatement:
		val, err := Eval(node.ReturnValue, env)
		if err != nil {
			return nil, err
		}
		return nil, &Return{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}, nil

	case *ast.StringLiteral:
		return &object.Str{Value: node.Value}, nil

	case *ast.Boolean:
		return object.NativeBoolToObject(node.Value), nil

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left, err := Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}, nil

	case *ast.CallExpression:
		return evalCallExpression(node, env)

	case *ast.ArrayLiteral:
		elements, err := evalExpressions(node.Elements, env)
		if err != nil {
			return nil, err
		}
		return &object.Array{Elements: elements}, nil

	case *ast.IndexExpression:
		left, err := Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		index, err := Eval(node.Index, env)
		if err != nil {
			return nil, err
		}
		return evalIndexExpression(left, index)

	case *ast.HashLiteral:
		return evalHashLiteral(node, env)
	}

	return object.NullValue, nil
}

// EvalReturn runs Eval and, if the outcome is the Return sentinel, unwraps
// it into a successful value (spec.md §6: the REPL's `eval_return` helper,
// for a top-level `return 10;`).
func EvalReturn(node ast.Node, env *object.Environment) (object.Object, error) {
	val, err := Eval(node, env)
	if ret, ok := err.(*Return); ok {
		return ret.Value, nil
	}
	return val, err
}

func evalStatements(stmts []ast.Statement, env *object.Environment) (object.Object, error) {
	var result object.Object = object.NullValue
	for _, stmt := range stmts {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func evalExpressions(exprs []ast.Expression, env *object.Environment) ([]object.Object, error) {
	result := make([]object.Object, 0, len(exprs))
	for _, e := range exprs {
		val, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) (object.Object, error) {
	if val, ok := env.Get(node.Value); ok {
		return val, nil
	}
	return nil, &object.IdentifierError{Name: node.Value}
}
