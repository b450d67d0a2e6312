/*
File: monke/object/environment.go
*/
package object

// Environment is a lexical scope frame: a mapping from identifier to value,
// plus an optional outer frame forming a scope chain (spec.md §3). It is
// shared by reference — closures and call frames that hold the same
// *Environment observe each other's new `let` bindings, which is how a
// counter-like closure pattern would see mutation if the language grew one
// (spec.md §4.4).
//
// Grounded on go-mix/scope/scope.go's Variables-map-plus-Parent shape,
// renamed store/outer/Get/Set, and on
// original_source/src/evaluator/object/environment.rs's outer-walking
// remove for Delete.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a fresh top-level environment whose outer is the
// shared builtins frame (spec.md §3: "a fresh top-level environment has as
// its outer a built-in environment containing the built-ins bound by
// name").
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object), outer: builtinsEnvironment}
}

// NewEnclosedEnvironment creates an inner scope whose outer is outer. Used
// for block expressions (outer = the environment the block is evaluated
// in) and function calls (outer = the environment captured by the
// function's closure).
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), outer: outer}
}

// Get walks the scope chain from inner to outer, returning the first
// binding found.
func (e *Environment) Get(name string) (Object, bool) {
	if obj, ok := e.store[name]; ok {
		return obj, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds name to val in this environment only (spec.md: "`let` binds in
// the innermost environment only; it never updates an outer binding").
func (e *Environment) Set(name string, val Object) {
	e.store[name] = val
}

// Delete walks the chain from this environment outward, removing name from
// the first frame that contains it and returning its prior value. It
// reports false if no frame in the chain held the binding.
func (e *Environment) Delete(name string) (Object, bool) {
	if obj, ok := e.store[name]; ok {
		delete(e.store, name)
		return obj, true
	}
	if e.outer != nil {
		return e.outer.Delete(name)
	}
	return nil, false
}
