/*
File: monke/evaluator/call.go
*/
package evaluator

import (
	"github.com/akashmaji946/monke/ast"
	"github.com/akashmaji946/monke/object"
)

func evalCallExpression(node *ast.CallExpression, env *object.Environment) (object.Object, error) {
	callee, err := Eval(node.Function, env)
	if err != nil {
		return nil, err
	}

	if builtin, ok := callee.(*object.Builtin); ok {
		return evalBuiltinCall(builtin, node, env)
	}

	fn, ok := callee.(*object.Function)
	if !ok {
		return nil, &object.CallableError{Received: callee.Type()}
	}
	if len(node.Arguments) != len(fn.Parameters) {
		return nil, &object.ArgumentsError{Expected: len(fn.Parameters), Received: len(node.Arguments)}
	}
	args, err := evalExpressions(node.Arguments, env)
	if err != nil {
		return nil, err
	}

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Value, args[i])
	}
	return EvalReturn(fn.Body, callEnv)
}

// evalBuiltinCall evaluates every argument left-to-right, exactly as for a
// user Function call, and hands the resulting values to the builtin
// uniformly (spec.md §4.3; ground truth in
// original_source/src/evaluator/expressions.rs, which evaluates every
// builtin argument the same way with no per-builtin special-casing). `del`
// takes the identifier's name as a Str value, i.e. `del("x")`, not a bare
// identifier reference — builtinDel type-switches on that like any other
// builtin's argument.
func evalBuiltinCall(builtin *object.Builtin, node *ast.CallExpression, env *object.Environment) (object.Object, error) {
	args, err := evalExpressions(node.Arguments, env)
	if err != nil {
		return nil, err
	}
	return builtin.Fn(env, args...)
}
