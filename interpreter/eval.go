package interpreter

import (
	"errors"
	"fmt"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

func (i *Interpreter) eval(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return runtime.FromLiteral(e.Value), nil
	case *ast.Grouping:
		return i.eval(e.Inner)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		left, err := i.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == golox.Or {
			if runtime.IsTruthy(left) {
				return left, nil
			}
		} else if !runtime.IsTruthy(left) {
			return left, nil
		}
		return i.eval(e.Right)
	case *ast.Variable:
		return i.lookUp(e.Name, e)
	case *ast.Assign:
		v, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		var ok bool
		if hops, local := i.bindings[e]; local {
			ok = i.env.AssignAt(hops, e.Name.Lexeme, v)
		} else {
			ok = i.globals.Assign(e.Name.Lexeme, v)
		}
		if !ok {
			return nil, i.runtimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil
	case *ast.Call:
		return i.evalCall(e)
	}
	panic(fmt.Sprintf("interpreter: unknown expression type %T", expr))
}

// lookUp fetches a variable by hop count, or from the globals if the
// reference is unresolved.
func (i *Interpreter) lookUp(name golox.Token, expr ast.Expr) (runtime.Value, error) {
	var v runtime.Value
	var ok bool
	if hops, local := i.bindings[expr]; local {
		v, ok = i.env.GetAt(hops, name.Lexeme)
	} else {
		v, ok = i.globals.Get(name.Lexeme)
	}
	if !ok {
		return nil, i.runtimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	n, ok := right.(runtime.Number)
	if !ok {
		return nil, i.runtimeError(e.Op, "Operand must be a number.")
	}
	switch e.Op.Kind {
	case golox.Minus:
		return -n, nil
	case golox.Bang:
		return runtime.Bool(!runtime.IsTruthy(n)), nil
	}
	panic(fmt.Sprintf("interpreter: unknown unary operator %s", e.Op.Lexeme))
}

func (i *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case golox.EqualEqual:
		return runtime.Bool(runtime.Equal(left, right, i.nilEqualsNil)), nil
	case golox.BangEqual:
		return runtime.Bool(!runtime.Equal(left, right, i.nilEqualsNil)), nil
	case golox.Plus:
		_, lstr := left.(runtime.String)
		_, rstr := right.(runtime.String)
		if lstr || rstr {
			return runtime.String(runtime.Stringify(left) + runtime.Stringify(right)), nil
		}
		l, lnum := left.(runtime.Number)
		r, rnum := right.(runtime.Number)
		if lnum && rnum {
			return l + r, nil
		}
		return nil, i.runtimeError(e.Op, "Operands must be two strings or two numbers.")
	case golox.Slash:
		if r, ok := right.(runtime.Number); ok && r == 0 {
			return nil, i.runtimeError(e.Op, "Division by zero.")
		}
	}
	l, lnum := left.(runtime.Number)
	r, rnum := right.(runtime.Number)
	if !lnum || !rnum {
		return nil, i.runtimeError(e.Op, "Operand must be a number.")
	}
	switch e.Op.Kind {
	case golox.Minus:
		return l - r, nil
	case golox.Star:
		return l * r, nil
	case golox.Slash:
		return l / r, nil
	case golox.Greater:
		return runtime.Bool(l > r), nil
	case golox.GreaterEqual:
		return runtime.Bool(l >= r), nil
	case golox.Less:
		return runtime.Bool(l < r), nil
	case golox.LessEqual:
		return runtime.Bool(l <= r), nil
	}
	panic(fmt.Sprintf("interpreter: unknown binary operator %s", e.Op.Lexeme))
}

func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(e.Args))
	for _, arg := range e.Args {
		v, err := i.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	fn, ok := callee.(runtime.Callable)
	if !ok {
		return nil, i.runtimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, i.runtimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	if i.callstack.Size() >= i.maxDepth {
		return nil, i.runtimeError(e.Paren, "Stack overflow.")
	}
	i.callstack.Push(frame{name: fn.Name(), line: e.Paren.Line})
	defer i.callstack.Pop()
	tracer().Debugf("call %s/%d at line %d", fn.Name(), len(args), e.Paren.Line)
	v, err := fn.Call(args)
	if err != nil {
		var rterr *RuntimeError
		if errors.As(err, &rterr) {
			return nil, rterr
		}
		return nil, i.runtimeError(e.Paren, "%s", err.Error())
	}
	return v, nil
}
