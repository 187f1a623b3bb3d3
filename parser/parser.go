/*
Package parser implements a recursive-descent parser for Lox.

Grammar, from lowest to highest precedence of expressions:

    program     ➞ declaration* EOF
    declaration ➞ funDecl | varDecl | statement
    funDecl     ➞ "fun" IDENTIFIER "(" parameters? ")" block
    varDecl     ➞ "var" IDENTIFIER ( "=" expression )? ";"
    statement   ➞ exprStmt | forStmt | ifStmt | printStmt | returnStmt
                  | whileStmt | breakStmt | block
    expression  ➞ assignment
    assignment  ➞ IDENTIFIER "=" assignment | logic_or
    logic_or    ➞ logic_and ( "or" logic_and )*
    logic_and   ➞ equality ( "and" equality )*
    equality    ➞ comparison ( ( "!=" | "==" ) comparison )*
    comparison  ➞ term ( ( ">" | ">=" | "<" | "<=" ) term )*
    term        ➞ factor ( ( "-" | "+" ) factor )*
    factor      ➞ unary ( ( "/" | "*" ) unary )*
    unary       ➞ ( "!" | "-" ) unary | call
    call        ➞ primary ( "(" arguments? ")" )*
    primary     ➞ "true" | "false" | "nil" | NUMBER | STRING | IDENTIFIER
                  | "(" expression ")"

'for'-loops are de-sugared into while-loops.

After a syntax error the parser discards tokens up to the next statement
boundary and continues, so that a single run reports as many errors as
possible. A syntax tree produced with errors must not be executed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.parser'.
func tracer() tracing.Trace {
	return tracing.Select("golox.parser")
}

// MaxArgs is the maximum number of arguments of a call and of parameters of
// a function.
const MaxArgs = 255

// parseError is used as a panic value to unwind to the next declaration.
type parseError struct{}

// Parser is a recursive-descent parser for a token sequence.
type Parser struct {
	tokens  []golox.Token
	current int
	diags   golox.Diagnostics
}

// New creates a parser. The token sequence should be terminated by an EOF
// token; if it is not, one is appended.
func New(tokens []golox.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != golox.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, golox.MakeToken(golox.EOF, "", line))
	}
	return &Parser{tokens: tokens}
}

// Parse parses a token sequence into a program.
func Parse(tokens []golox.Token) ([]ast.Stmt, golox.Diagnostics) {
	p := New(tokens)
	return p.Program(), p.Diagnostics()
}

// Program parses declarations until the end of input.
func (p *Parser) Program() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	tracer().Debugf("parsed %d top-level statements, %d errors", len(stmts), len(p.diags))
	return stmts
}

// Diagnostics returns the syntax errors collected so far.
func (p *Parser) Diagnostics() golox.Diagnostics {
	return p.diags
}

// --- Declarations and statements -------------------------------------------

// declaration is the point of recovery after syntax errors. It returns nil
// if the declaration could not be parsed.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	if p.match(golox.Fun) {
		return p.function("function")
	}
	if p.match(golox.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(golox.Identifier, "Expect variable name.")
	var init ast.Expr
	if p.match(golox.Equal) {
		init = p.expression()
	}
	p.consume(golox.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarDecl{Name: name, Init: init}
}

func (p *Parser) function(kind string) *ast.FunctionDecl {
	name := p.consume(golox.Identifier, "Expect "+kind+" name.")
	p.consume(golox.LeftParen, "Expect '(' after "+kind+" name.")
	var params []golox.Token
	if !p.check(golox.RightParen) {
		for {
			if len(params) >= MaxArgs {
				p.report(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(golox.Identifier, "Expect parameter name."))
			if !p.match(golox.Comma) {
				break
			}
		}
	}
	p.consume(golox.RightParen, "Expect ')' after parameters.")
	p.consume(golox.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(golox.Print):
		return p.printStatement()
	case p.match(golox.If):
		return p.ifStatement()
	case p.match(golox.While):
		return p.whileStatement()
	case p.match(golox.For):
		return p.forStatement()
	case p.match(golox.Break):
		keyword := p.previous()
		p.consume(golox.Semicolon, "Expect ';' after 'break'.")
		return &ast.BreakStmt{Keyword: keyword}
	case p.match(golox.Return):
		return p.returnStatement()
	case p.match(golox.LeftBrace):
		return p.block()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(golox.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(golox.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(golox.Semicolon) {
		value = p.expression()
	}
	p.consume(golox.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// block parses the statements of a block; the opening brace has already been
// consumed.
func (p *Parser) block() *ast.Block {
	var stmts []ast.Stmt
	for !p.check(golox.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(golox.RightBrace, "Expect '}' after block.")
	return &ast.Block{Stmts: stmts}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(golox.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(golox.RightParen, "Expect ')' after if condition.")
	then := p.statement()
	var els ast.Stmt
	if p.match(golox.Else) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(golox.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(golox.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStatement de-sugars
//
//    for (init; cond; incr) body
//
// into
//
//    { init; while (cond) { body; incr; } }
//
func (p *Parser) forStatement() ast.Stmt {
	p.consume(golox.LeftParen, "Expect '(' after 'for'.")
	var init ast.Stmt
	switch {
	case p.match(golox.Semicolon):
	case p.match(golox.Var):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}
	var cond ast.Expr
	if !p.check(golox.Semicolon) {
		cond = p.expression()
	}
	p.consume(golox.Semicolon, "Expect ';' after loop condition.")
	var incr ast.Expr
	if !p.check(golox.RightParen) {
		incr = p.expression()
	}
	p.consume(golox.RightParen, "Expect ')' after for clauses.")
	body := p.statement()
	if incr != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	var loop ast.Stmt = &ast.WhileStmt{Cond: cond, Body: body}
	if init != nil {
		loop = &ast.Block{Stmts: []ast.Stmt{init, loop}}
	}
	return loop
}
