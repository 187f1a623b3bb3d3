package runtime

import (
	"fmt"
)

// This module implements a chain of environments.
// Environments are used by an interpreter to allocate local storage
// for active scopes.

// Environment is a piece of memory for a scope, representing variable
// bindings. Every environment except the global one has a parent.
type Environment struct {
	Name        string
	SymbolTable *SymbolTable
	Parent      *Environment
}

// NewEnvironment creates a new environment, enclosed by parent.
func NewEnvironment(nm string, parent *Environment) *Environment {
	env := &Environment{
		Name:        nm,
		SymbolTable: NewSymbolTable(),
		Parent:      parent,
	}
	tracer().P("env", nm).Debugf("new environment")
	return env
}

func (env *Environment) String() string {
	return fmt.Sprintf("<env %s>", env.Name)
}

// IsRoot is a predicate: Is this a root environment?
func (env *Environment) IsRoot() bool {
	return (env.Parent == nil)
}

// Define binds a name to a value in this environment. Re-defining an
// existing name overwrites its value.
func (env *Environment) Define(name string, value Value) {
	tag, _ := env.SymbolTable.DefineTag(name)
	tag.Value = value
}

// Get looks up a name in this environment only.
func (env *Environment) Get(name string) (Value, bool) {
	if tag := env.SymbolTable.ResolveTag(name); tag != nil {
		return tag.Value, true
	}
	return nil, false
}

// Assign stores a value for an existing name in this environment only.
// Returns false if the name is not bound here.
func (env *Environment) Assign(name string, value Value) bool {
	tag := env.SymbolTable.ResolveTag(name)
	if tag == nil {
		return false
	}
	tag.Value = value
	return true
}

// Ancestor returns the environment hops parent links above env.
// It returns nil if the chain is shorter than hops.
func (env *Environment) Ancestor(hops int) *Environment {
	e := env
	for i := 0; i < hops && e != nil; i++ {
		e = e.Parent
	}
	return e
}

// GetAt looks up a name in the environment hops parent links above env.
func (env *Environment) GetAt(hops int, name string) (Value, bool) {
	if e := env.Ancestor(hops); e != nil {
		return e.Get(name)
	}
	return nil, false
}

// AssignAt assigns to a name in the environment hops parent links above env.
func (env *Environment) AssignAt(hops int, name string, value Value) bool {
	if e := env.Ancestor(hops); e != nil {
		return e.Assign(name, value)
	}
	return false
}

// Each iterates over the bindings of this environment (not of its parents).
func (env *Environment) Each(f func(string, Value)) {
	env.SymbolTable.Each(func(name string, tag *Tag) {
		f(name, tag.Value)
	})
}
