/*
Package interpreter implements a tree-walking interpreter for Lox.

The interpreter executes statements against a chain of environments. Variable
references are looked up by the hop counts computed by package resolver;
references without a hop count are global.

Control flow statements ('break', 'return') do not use panics. Executing a
statement yields a flow value, which every enclosing statement checks and
propagates until a loop or a function call consumes it. Runtime errors are
Go errors of type *RuntimeError and abort the current run.

Usage

    interp := interpreter.New(interpreter.WithOutput(os.Stdout))
    interp.AddBindings(bindings)
    if err := interp.Interpret(program); err != nil {
        ...
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/resolver"
	"github.com/npillmayer/golox/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("golox.runtime")
}

// DefaultMaxCallDepth is the default limit for nested function calls.
const DefaultMaxCallDepth = 1024

// Interpreter executes Lox programs. An interpreter keeps its global
// environment between calls to Interpret.
type Interpreter struct {
	globals      *runtime.Environment
	env          *runtime.Environment // current environment
	bindings     resolver.Bindings
	out          io.Writer
	nilEqualsNil bool
	maxDepth     int
	callstack    *arraystack.Stack // of frames
}

// frame is an entry of the call stack.
type frame struct {
	name string
	line int // line of the call
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer for 'print' statements. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// NilEqualsNil sets or clears the option to treat nil as equal to nil.
// By default nil is not equal to anything, including nil.
func NilEqualsNil(b bool) Option {
	return func(i *Interpreter) {
		i.nilEqualsNil = b
	}
}

// MaxCallDepth limits the number of nested function calls. Values < 1
// select the default.
func MaxCallDepth(n int) Option {
	return func(i *Interpreter) {
		if n < 1 {
			n = DefaultMaxCallDepth
		}
		i.maxDepth = n
	}
}

// New creates an interpreter with a fresh global environment.
func New(opts ...Option) *Interpreter {
	globals := runtime.NewGlobals()
	i := &Interpreter{
		globals:   globals,
		env:       globals,
		bindings:  make(resolver.Bindings),
		out:       os.Stdout,
		maxDepth:  DefaultMaxCallDepth,
		callstack: arraystack.New(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// AddBindings merges a binding table into the interpreter's table.
// Tables of subsequent runs of the same interpreter accumulate, which keeps
// functions of earlier runs operational.
func (i *Interpreter) AddBindings(b resolver.Bindings) {
	i.bindings.Merge(b)
}

// Globals returns the global environment.
func (i *Interpreter) Globals() *runtime.Environment {
	return i.globals
}

// Interpret executes a program. The first runtime error aborts execution
// and is returned as a *RuntimeError.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	i.env = i.globals
	i.callstack.Clear()
	for _, stmt := range stmts {
		f, err := i.exec(stmt)
		if err != nil {
			tracer().Errorf(err.Error())
			return err
		}
		switch f.kind {
		case breakFlow:
			return i.runtimeError(f.token, "Can't break outside of a loop.")
		case returnFlow:
			return i.runtimeError(f.token, "Can't return from top-level code.")
		}
	}
	return nil
}

// --- Errors ----------------------------------------------------------------

// RuntimeError is an error occurring during execution of a Lox program.
type RuntimeError struct {
	Token   golox.Token
	Message string
	Trace   []string // active function calls, innermost first
}

func (e *RuntimeError) Error() string {
	return e.Diagnostic().Error()
}

// Diagnostic converts a runtime error to a diagnostic.
func (e *RuntimeError) Diagnostic() golox.Diagnostic {
	return golox.ErrorAtLine(golox.RuntimeStage, e.Token.Line, e.Message)
}

func (i *Interpreter) runtimeError(tok golox.Token, format string, args ...interface{}) *RuntimeError {
	err := &RuntimeError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
	for _, v := range i.callstack.Values() {
		fr := v.(frame)
		err.Trace = append(err.Trace, fmt.Sprintf("[line %d] in %s()", fr.line, fr.name))
	}
	return err
}
