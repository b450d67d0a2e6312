/*
File: monke/evaluator/expressions.go
*/
package evaluator

import (
	"github.com/akashmaji946/monke/ast"
	"github.com/akashmaji946/monke/object"
)

// isTruthy implements spec.md §4.3's truthiness table.
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj.Value
	case *object.Integer:
		return obj.Value != 0
	case *object.Null:
		return false
	case *object.Str:
		return obj.Value != ""
	case *object.Array:
		return len(obj.Elements) != 0
	case *object.Hash:
		return len(obj.Pairs) != 0
	default:
		// Function, Builtin: always truthy.
		return true
	}
}

func evalPrefixExpression(operator string, right object.Object) (object.Object, error) {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return nil, &object.PrefixError{Operator: operator, Operand: right.Type()}
	}
}

func evalBangOperator(right object.Object) (object.Object, error) {
	switch right := right.(type) {
	case *object.Integer:
		return object.NativeBoolToObject(right.Value == 0), nil
	case *object.Boolean:
		return object.NativeBoolToObject(!right.Value), nil
	case *object.Null:
		return object.True, nil
	default:
		return nil, &object.PrefixError{Operator: "!", Operand: right.Type()}
	}
}

func evalMinusPrefixOperator(right object.Object) (object.Object, error) {
	integer, ok := right.(*object.Integer)
	if !ok {
		return nil, &object.PrefixError{Operator: "-", Operand: right.Type()}
	}
	return &object.Integer{Value: -integer.Value}, nil
}

func evalInfixExpression(operator string, left, right object.Object) (object.Object, error) {
	switch {
	case left.Type() == object.IntegerObj && right.Type() == object.IntegerObj:
		return evalIntegerInfixExpression(operator, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.BooleanObj && right.Type() == object.BooleanObj:
		return evalBooleanInfixExpression(operator, left.(*object.Boolean), right.(*object.Boolean))
	case left.Type() == object.StringObj && right.Type() == object.StringObj:
		return evalStringInfixExpression(operator, left.(*object.Str), right.(*object.Str))
	default:
		return nil, &object.InfixError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) (object.Object, error) {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}, nil
	case "-":
		return &object.Integer{Value: left.Value - right.Value}, nil
	case "*":
		return &object.Integer{Value: left.Value * right.Value}, nil
	case "/":
		if right.Value == 0 {
			return nil, &object.ArithmeticError{Operator: operator}
		}
		return &object.Integer{Value: left.Value / right.Value}, nil
	case "==":
		return object.NativeBoolToObject(left.Value == right.Value), nil
	case "!=":
		return object.NativeBoolToObject(left.Value != right.Value), nil
	case "<":
		return object.NativeBoolToObject(left.Value < right.Value), nil
	case ">":
		return object.NativeBoolToObject(left.Value > right.Value), nil
	default:
		return nil, &object.InfixError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

func evalBooleanInfixExpression(operator string, left, right *object.Boolean) (object.Object, error) {
	switch operator {
	case "==":
		return object.NativeBoolToObject(left.Value == right.Value), nil
	case "!=":
		return object.NativeBoolToObject(left.Value != right.Value), nil
	default:
		return nil, &object.InfixError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

func evalStringInfixExpression(operator string, left, right *object.Str) (object.Object, error) {
	switch operator {
	case "+":
		return &object.Str{Value: left.Value + right.Value}, nil
	case "==":
		return object.NativeBoolToObject(left.Value == right.Value), nil
	case "!=":
		return object.NativeBoolToObject(left.Value != right.Value), nil
	case "<":
		return object.NativeBoolToObject(left.Value < right.Value), nil
	case ">":
		return object.NativeBoolToObject(left.Value > right.Value), nil
	default:
		return nil, &object.InfixError{Operator: operator, Left: left.Type(), Right: right.Type()}
	}
}

func evalIfExpression(node *ast.IfExpression, env *object.Environment) (object.Object, error) {
	condition, err := Eval(node.Condition, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(condition) {
		return Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return Eval(node.Alternative, env)
	}
	return object.NullValue, nil
}

func evalIndexExpression(left, index object.Object) (object.Object, error) {
	switch left := left.(type) {
	case *object.Array:
		i, ok := index.(*object.Integer)
		if !ok {
			return nil, &object.TypeError{Expected: object.IntegerObj, Received: index.Type()}
		}
		return evalArrayIndexExpression(left, i.Value)
	case *object.Hash:
		return evalHashIndexExpression(left, index)
	default:
		return nil, &object.TypeError{Expected: object.ArrayObj, Received: left.Type()}
	}
}

func evalArrayIndexExpression(arr *object.Array, idx int64) (object.Object, error) {
	length := int64(len(arr.Elements))
	normalized := idx
	if normalized < 0 {
		normalized += length
	}
	if normalized < 0 || normalized >= length {
		return nil, &object.IndexError{Index: normalized}
	}
	return arr.Elements[normalized], nil
}

func evalHashIndexExpression(hash *object.Hash, index object.Object) (object.Object, error) {
	key, ok := index.(object.Hashable)
	if !ok {
		return nil, &object.HashError{Received: index.Type()}
	}
	pair, ok := hash.Pairs[key.HashKey()]
	if !ok {
		return object.NullValue, nil
	}
	return pair.Value, nil
}

func evalHashLiteral(node *ast.HashLiteral, env *object.Environment) (object.Object, error) {
	pairs := make(map[object.HashKey]object.HashPair, len(node.Pairs))
	for _, p := range node.Pairs {
		key, err := Eval(p.Key, env)
		if err != nil {
			return nil, err
		}
		hashable, ok := key.(object.Hashable)
		if !ok {
			return nil, &object.HashError{Received: key.Type()}
		}
		value, err := Eval(p.Value, env)
		if err != nil {
			return nil, err
		}
		pairs[hashable.HashKey()] = object.HashPair{Key: key, Value: value}
	}
	return &object.Hash{Pairs: pairs}, nil
}
