/*
File: monke/object/builtins.go
*/
package object

// builtinsEnvironment is the shared outer frame of every fresh top-level
// environment (spec.md §3/§4.3). It is populated once, at package init, with
// the four names `len`, `del`, `rest` and `push`. `let` never writes to it,
// but `del` walks the scope chain into it, so `del("len")` removes that
// builtin from this shared frame for every environment in the process.
var builtinsEnvironment = newBuiltinsEnvironment()

func newBuiltinsEnvironment() *Environment {
	env := &Environment{store: make(map[string]Object)}
	for _, b := range []*Builtin{
		{Name: BuiltinLen, Fn: builtinLen},
		{Name: BuiltinDel, Fn: builtinDel},
		{Name: BuiltinRest, Fn: builtinRest},
		{Name: BuiltinPush, Fn: builtinPush},
	} {
		env.store[string(b.Name)] = b
	}
	return env
}

// builtinLen reports the length of a Str (byte length, spec.md §4.3) or an
// Array (element count).
func builtinLen(_ *Environment, args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, &ArgumentsError{Expected: 1, Received: len(args)}
	}
	switch arg := args[0].(type) {
	case *Str:
		return &Integer{Value: int64(len(arg.Value))}, nil
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}, nil
	default:
		return nil, &TypeError{Expected: StringObj, Received: args[0].Type()}
	}
}

// builtinDel removes a binding from the calling environment's scope chain
// (spec.md §4.3: "argument must be a Str naming an identifier; removes the
// binding from the innermost scope chain where it exists"). Called as
// `del("x")`: its argument is evaluated like any other builtin's and must
// evaluate to a Str holding the binding's name. Returns the removed value,
// or Null if nothing was bound.
func builtinDel(env *Environment, args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, &ArgumentsError{Expected: 1, Received: len(args)}
	}
	name, ok := args[0].(*Str)
	if !ok {
		return nil, &TypeError{Expected: StringObj, Received: args[0].Type()}
	}
	if val, ok := env.Delete(name.Value); ok {
		return val, nil
	}
	return NullValue, nil
}

// builtinRest returns a new Array holding every element after the first, or
// an empty Array for an empty array (spec.md §4.3: "empty if empty").
func builtinRest(_ *Environment, args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, &ArgumentsError{Expected: 1, Received: len(args)}
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, &TypeError{Expected: ArrayObj, Received: args[0].Type()}
	}
	if len(arr.Elements) == 0 {
		return &Array{Elements: []Object{}}, nil
	}
	rest := make([]Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &Array{Elements: rest}, nil
}

// builtinPush returns a new Array with the given value appended, leaving
// the original array untouched (spec.md §4.3: arrays are not mutated in
// place).
func builtinPush(_ *Environment, args ...Object) (Object, error) {
	if len(args) != 2 {
		return nil, &ArgumentsError{Expected: 2, Received: len(args)}
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, &TypeError{Expected: ArrayObj, Received: args[0].Type()}
	}
	pushed := make([]Object, len(arr.Elements), len(arr.Elements)+1)
	copy(pushed, arr.Elements)
	pushed = append(pushed, args[1])
	return &Array{Elements: pushed}, nil
}
