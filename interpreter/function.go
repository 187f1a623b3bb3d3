package interpreter

import (
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Function is a user-defined function, closing over the environment of its
// declaration.
type Function struct {
	decl    *ast.FunctionDecl
	closure *runtime.Environment
	interp  *Interpreter
}

var _ runtime.Callable = (*Function)(nil)

// Kind returns CallableKind.
func (f *Function) Kind() runtime.Kind { return runtime.CallableKind }

func (f *Function) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }

// Name returns the declared name of the function.
func (f *Function) Name() string { return f.decl.Name.Lexeme }

// Arity returns the number of parameters.
func (f *Function) Arity() int { return len(f.decl.Params) }

// Call executes the function body in a new environment, enclosed by the
// closure's environment. Parameters are bound to args.
func (f *Function) Call(args []runtime.Value) (runtime.Value, error) {
	env := runtime.NewEnvironment("fun "+f.decl.Name.Lexeme, f.closure)
	for n, param := range f.decl.Params {
		env.Define(param.Lexeme, args[n])
	}
	fl, err := f.interp.executeBlock(f.decl.Body.Stmts, env)
	if err != nil {
		return nil, err
	}
	switch fl.kind {
	case returnFlow:
		return fl.value, nil
	case breakFlow:
		return nil, f.interp.runtimeError(fl.token, "Can't break outside of a loop.")
	}
	return runtime.Nil, nil
}
