package ast

import (
	"fmt"
	"strconv"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- S-expressions ---------------------------------------------------------

// Sexpr returns a Lisp-like representation of an expression, e.g.
//
//    (* (group (+ 1 2)) 3)
//
// Sexpr is a debugging aid and not intended to be parsed again.
func Sexpr(e Expr) string {
	switch x := e.(type) {
	case nil:
		return ""
	case *Literal:
		return LiteralString(x.Value)
	case *Grouping:
		return parenthesize("group", x.Inner)
	case *Unary:
		return parenthesize(x.Op.Lexeme, x.Right)
	case *Binary:
		return parenthesize(x.Op.Lexeme, x.Left, x.Right)
	case *Logical:
		return parenthesize(x.Op.Lexeme, x.Left, x.Right)
	case *Variable:
		return x.Name.Lexeme
	case *Assign:
		return parenthesize("= "+x.Name.Lexeme, x.Value)
	case *Call:
		return parenthesize("call "+Sexpr(x.Callee), x.Args...)
	}
	panic(fmt.Sprintf("unknown expression node %T", e))
}

// StmtSexpr returns a Lisp-like representation of a statement.
func StmtSexpr(s Stmt) string {
	switch x := s.(type) {
	case nil:
		return ""
	case *ExpressionStmt:
		return parenthesize("expr", x.Expr)
	case *PrintStmt:
		return parenthesize("print", x.Expr)
	case *VarDecl:
		if x.Init == nil {
			return "(var " + x.Name.Lexeme + ")"
		}
		return parenthesize("var "+x.Name.Lexeme, x.Init)
	case *Block:
		return blockSexpr("block", x.Stmts)
	case *IfStmt:
		if x.Else == nil {
			return "(if " + Sexpr(x.Cond) + " " + StmtSexpr(x.Then) + ")"
		}
		return "(if " + Sexpr(x.Cond) + " " + StmtSexpr(x.Then) + " " + StmtSexpr(x.Else) + ")"
	case *WhileStmt:
		return "(while " + Sexpr(x.Cond) + " " + StmtSexpr(x.Body) + ")"
	case *BreakStmt:
		return "(break)"
	case *FunctionDecl:
		params := make([]string, len(x.Params))
		for i, p := range x.Params {
			params[i] = p.Lexeme
		}
		head := "fun " + x.Name.Lexeme + " (" + strings.Join(params, " ") + ")"
		return blockSexpr(head, x.Body.Stmts)
	case *ReturnStmt:
		if x.Value == nil {
			return "(return)"
		}
		return parenthesize("return", x.Value)
	}
	panic(fmt.Sprintf("unknown statement node %T", s))
}

// LiteralString formats a literal value the way it appears in source code.
func LiteralString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return `"` + x + `"`
	}
	return fmt.Sprintf("%v", v)
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Sexpr(e))
	}
	b.WriteString(")")
	return b.String()
}

func blockSexpr(name string, stmts []Stmt) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, s := range stmts {
		b.WriteString(" ")
		b.WriteString(StmtSexpr(s))
	}
	b.WriteString(")")
	return b.String()
}

// --- Leveled lists ---------------------------------------------------------

// Level is an entry of a leveled list: a node label together with its depth in
// the tree. Front ends use leveled lists for rendering an AST as a tree on a
// terminal.
type Level struct {
	Depth int
	Text  string
}

// Levels flattens a program into a leveled list, in pre-order.
func Levels(stmts []Stmt) []Level {
	var ll []Level
	for _, s := range stmts {
		ll = stmtLevels(s, ll, 0)
	}
	return ll
}

func stmtLevels(s Stmt, ll []Level, depth int) []Level {
	add := func(text string) {
		ll = append(ll, Level{Depth: depth, Text: text})
	}
	switch x := s.(type) {
	case *ExpressionStmt:
		add("expr")
		ll = exprLevels(x.Expr, ll, depth+1)
	case *PrintStmt:
		add("print")
		ll = exprLevels(x.Expr, ll, depth+1)
	case *VarDecl:
		add("var " + x.Name.Lexeme)
		if x.Init != nil {
			ll = exprLevels(x.Init, ll, depth+1)
		}
	case *Block:
		add("block")
		for _, inner := range x.Stmts {
			ll = stmtLevels(inner, ll, depth+1)
		}
	case *IfStmt:
		add("if")
		ll = exprLevels(x.Cond, ll, depth+1)
		ll = stmtLevels(x.Then, ll, depth+1)
		if x.Else != nil {
			ll = append(ll, Level{Depth: depth, Text: "else"})
			ll = stmtLevels(x.Else, ll, depth+1)
		}
	case *WhileStmt:
		add("while")
		ll = exprLevels(x.Cond, ll, depth+1)
		ll = stmtLevels(x.Body, ll, depth+1)
	case *BreakStmt:
		add("break")
	case *FunctionDecl:
		params := make([]string, len(x.Params))
		for i, p := range x.Params {
			params[i] = p.Lexeme
		}
		add("fun " + x.Name.Lexeme + "(" + strings.Join(params, ", ") + ")")
		for _, inner := range x.Body.Stmts {
			ll = stmtLevels(inner, ll, depth+1)
		}
	case *ReturnStmt:
		add("return")
		if x.Value != nil {
			ll = exprLevels(x.Value, ll, depth+1)
		}
	case nil:
	default:
		panic(fmt.Sprintf("unknown statement node %T", s))
	}
	return ll
}

func exprLevels(e Expr, ll []Level, depth int) []Level {
	add := func(text string) {
		ll = append(ll, Level{Depth: depth, Text: text})
	}
	switch x := e.(type) {
	case *Literal:
		add(LiteralString(x.Value))
	case *Grouping:
		add("group")
		ll = exprLevels(x.Inner, ll, depth+1)
	case *Unary:
		add(x.Op.Lexeme)
		ll = exprLevels(x.Right, ll, depth+1)
	case *Binary:
		add(x.Op.Lexeme)
		ll = exprLevels(x.Left, ll, depth+1)
		ll = exprLevels(x.Right, ll, depth+1)
	case *Logical:
		add(x.Op.Lexeme)
		ll = exprLevels(x.Left, ll, depth+1)
		ll = exprLevels(x.Right, ll, depth+1)
	case *Variable:
		add(x.Name.Lexeme)
	case *Assign:
		add("= " + x.Name.Lexeme)
		ll = exprLevels(x.Value, ll, depth+1)
	case *Call:
		add("call")
		ll = exprLevels(x.Callee, ll, depth+1)
		for _, arg := range x.Args {
			ll = exprLevels(arg, ll, depth+1)
		}
	case nil:
	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
	return ll
}
