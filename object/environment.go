/*
File   : gomonkey/object/environment.go
Package: object

Environment implements the lexical scope chain that backs variable
bindings and closures. Monkey has no reassignment operator: a binding
changes only when a later `let` in the same environment defines the name
again, so there is no Assign/update-in-place method here — only Get
(which walks outward) and Set (which always writes to the receiver).
*/
package object

// Environment holds the variable bindings visible at one lexical level,
// plus an optional link to the enclosing environment.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates an empty, top-level environment with no outer
// scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates an environment nested inside outer, the
// shape used both for block-less function calls and for closures: the
// function literal captures the environment in which it was defined, and
// each call gets a fresh enclosed environment for its parameters.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get resolves name in this environment, then each enclosing environment
// in turn, returning ok=false if no binding is found anywhere in the
// chain.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment only. A `let` statement
// always calls Set on the environment it executes in, so shadowing an
// outer binding never mutates it.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
