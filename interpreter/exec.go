package interpreter

import (
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

type flowKind int8

const (
	normalFlow flowKind = iota
	breakFlow
	returnFlow
)

// flow is the result of executing a statement. Break and return carry
// their keyword token; return carries the returned value.
type flow struct {
	kind  flowKind
	token golox.Token
	value runtime.Value
}

var normal = flow{kind: normalFlow}

func (i *Interpreter) exec(stmt ast.Stmt) (flow, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expr)
		return normal, err
	case *ast.PrintStmt:
		v, err := i.eval(s.Expr)
		if err != nil {
			return normal, err
		}
		fmt.Fprintln(i.out, runtime.Stringify(v))
		return normal, nil
	case *ast.VarDecl:
		var v runtime.Value = runtime.Nil
		if s.Init != nil {
			var err error
			if v, err = i.eval(s.Init); err != nil {
				return normal, err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return normal, nil
	case *ast.Block:
		return i.executeBlock(s.Stmts, runtime.NewEnvironment("block", i.env))
	case *ast.IfStmt:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return normal, err
		}
		if runtime.IsTruthy(cond) {
			return i.exec(s.Then)
		} else if s.Else != nil {
			return i.exec(s.Else)
		}
		return normal, nil
	case *ast.WhileStmt:
		return i.execWhile(s)
	case *ast.BreakStmt:
		return flow{kind: breakFlow, token: s.Keyword}, nil
	case *ast.FunctionDecl:
		i.env.Define(s.Name.Lexeme, &Function{decl: s, closure: i.env, interp: i})
		return normal, nil
	case *ast.ReturnStmt:
		var v runtime.Value = runtime.Nil
		if s.Value != nil {
			var err error
			if v, err = i.eval(s.Value); err != nil {
				return normal, err
			}
		}
		return flow{kind: returnFlow, token: s.Keyword, value: v}, nil
	}
	panic(fmt.Sprintf("interpreter: unknown statement type %T", stmt))
}

func (i *Interpreter) execWhile(s *ast.WhileStmt) (flow, error) {
	for {
		cond, err := i.eval(s.Cond)
		if err != nil {
			return normal, err
		}
		if !runtime.IsTruthy(cond) {
			return normal, nil
		}
		f, err := i.exec(s.Body)
		if err != nil {
			return normal, err
		}
		switch f.kind {
		case breakFlow:
			return normal, nil
		case returnFlow:
			return f, nil
		}
	}
}

// executeBlock executes statements with env as the current environment.
// The previous environment is restored on every exit path.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) (flow, error) {
	previous := i.env
	i.env = env
	defer func() {
		i.env = previous
	}()
	for _, stmt := range stmts {
		f, err := i.exec(stmt)
		if err != nil || f.kind != normalFlow {
			return f, err
		}
	}
	return normal, nil
}
