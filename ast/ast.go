/*
Package ast defines the abstract syntax tree for Lox programs.

Expression and statement nodes are closed sets of variants: every variant
implements a private marker method, so only types of this package may act as
nodes. Pipeline stages process nodes with type switches over all variants.

Every node exclusively owns its children. Nodes are created once by the
parser and never modified afterwards; their identity (pointer) is used as a
key for the static binding table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/golox"
)

// --- Expressions -----------------------------------------------------------

// Expr is the type for expression nodes.
type Expr interface {
	exprNode()
}

// Literal is a constant value: nil, a bool, a float64 or a string.
type Literal struct {
	Value interface{}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

// Unary is a prefix operation, either '!' or '-'.
type Unary struct {
	Op    golox.Token
	Right Expr
}

// Binary is an arithmetic, comparison or equality operation.
type Binary struct {
	Op          golox.Token
	Left, Right Expr
}

// Logical is a short-circuiting 'and' or 'or'.
type Logical struct {
	Op          golox.Token
	Left, Right Expr
}

// Variable is a reference to a variable by name.
type Variable struct {
	Name golox.Token
}

// Assign stores a value into a variable.
type Assign struct {
	Name  golox.Token
	Value Expr
}

// Call is a function call. Paren is the closing parenthesis, used for error
// reporting.
type Call struct {
	Callee Expr
	Paren  golox.Token
	Args   []Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}

// --- Statements ------------------------------------------------------------

// Stmt is the type for statement nodes.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and prints the result.
type PrintStmt struct {
	Expr Expr
}

// VarDecl declares a variable. Init may be nil.
type VarDecl struct {
	Name golox.Token
	Init Expr
}

// Block is a sequence of statements with its own lexical scope.
type Block struct {
	Stmts []Stmt
}

// IfStmt is a conditional. Else may be nil.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is a loop. 'for'-loops are represented as while-loops as well.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// BreakStmt terminates the innermost enclosing loop.
type BreakStmt struct {
	Keyword golox.Token
}

// FunctionDecl declares a named function.
type FunctionDecl struct {
	Name   golox.Token
	Params []golox.Token
	Body   *Block
}

// ReturnStmt returns from a function. Value may be nil.
type ReturnStmt struct {
	Keyword golox.Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarDecl) stmtNode()        {}
func (*Block) stmtNode()          {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*BreakStmt) stmtNode()      {}
func (*FunctionDecl) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
