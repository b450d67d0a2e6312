/*
File: monke/object/object_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &Str{Value: "Hello World"}
	hello2 := &Str{Value: "Hello World"}
	diff1 := &Str{Value: "My name is johnny"}
	diff2 := &Str{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerAndBooleanHashKey(t *testing.T) {
	assert.Equal(t, (&Integer{Value: 1}).HashKey(), (&Integer{Value: 1}).HashKey())
	assert.NotEqual(t, (&Integer{Value: 1}).HashKey(), (&Integer{Value: 2}).HashKey())
	assert.Equal(t, True.HashKey(), NativeBoolToObject(true).HashKey())
	assert.NotEqual(t, True.HashKey(), False.HashKey())
}

func TestEnvironmentGetSetShadowing(t *testing.T) {
	outer := NewEnclosedEnvironment(NewEnvironment())
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)

	inner.Set("x", &Integer{Value: 2})
	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*Integer).Value, "Set must not reach past the innermost frame")
}

func TestEnvironmentDeleteWalksChain(t *testing.T) {
	outer := NewEnclosedEnvironment(NewEnvironment())
	outer.Set("x", &Integer{Value: 5})
	inner := NewEnclosedEnvironment(outer)

	val, ok := inner.Delete("x")
	require.True(t, ok, "Delete should walk outward to find x")
	assert.Equal(t, int64(5), val.(*Integer).Value)

	_, ok = outer.Get("x")
	assert.False(t, ok, "the binding must be gone from the frame that held it")
}

func TestEnvironmentDeleteMissingReturnsFalse(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Delete("nope")
	assert.False(t, ok)
}

func TestNewEnvironmentSeesBuiltins(t *testing.T) {
	env := NewEnvironment()
	val, ok := env.Get("len")
	require.True(t, ok)
	_, isBuiltin := val.(*Builtin)
	assert.True(t, isBuiltin)
}

func TestBuiltinLenArity(t *testing.T) {
	env := NewEnvironment()
	lenFn, _ := env.Get("len")
	_, err := lenFn.(*Builtin).Fn(env)
	assert.IsType(t, &ArgumentsError{}, err)
}

func TestBuiltinPushDoesNotMutate(t *testing.T) {
	env := NewEnvironment()
	original := &Array{Elements: []Object{&Integer{Value: 1}}}
	pushFn, _ := env.Get("push")
	result, err := pushFn.(*Builtin).Fn(env, original, &Integer{Value: 2})
	require.NoError(t, err)
	assert.Len(t, original.Elements, 1)
	assert.Len(t, result.(*Array).Elements, 2)
}
