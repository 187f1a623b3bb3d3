package parser

import (
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Expressions -----------------------------------------------------------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// Assignment is right-associative. The left hand side is parsed as an ordinary
// expression first; only plain variables are valid targets.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if p.match(golox.Equal) {
		equals := p.previous()
		value := p.assignment()
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.report(equals, "Invalid assignment target.") // no need to synchronize
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(golox.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(golox.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Op: op, Left: expr, Right: right}
	}
	return expr
}

// binary parses a left-associative chain of operators of one precedence level.
func (p *Parser) binary(operand func() ast.Expr, ops ...golox.TokKind) ast.Expr {
	expr := operand()
	for p.match(ops...) {
		op := p.previous()
		right := operand()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, golox.BangEqual, golox.EqualEqual)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, golox.Greater, golox.GreaterEqual, golox.Less, golox.LessEqual)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, golox.Minus, golox.Plus)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, golox.Slash, golox.Star)
}

func (p *Parser) unary() ast.Expr {
	if p.match(golox.Bang, golox.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(golox.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(golox.RightParen) {
		for {
			if len(args) >= MaxArgs {
				p.report(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(golox.Comma) {
				break
			}
		}
	}
	paren := p.consume(golox.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(golox.False):
		return &ast.Literal{Value: false}
	case p.match(golox.True):
		return &ast.Literal{Value: true}
	case p.match(golox.Nil):
		return &ast.Literal{Value: nil}
	case p.match(golox.Number, golox.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(golox.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(golox.LeftParen):
		expr := p.expression()
		p.consume(golox.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}

// --- Token helpers ---------------------------------------------------------

func (p *Parser) match(kinds ...golox.TokKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind golox.TokKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() golox.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == golox.EOF
}

func (p *Parser) peek() golox.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() golox.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind golox.TokKind, msg string) golox.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), msg))
}

// report records a syntax error without unwinding.
func (p *Parser) report(tok golox.Token, msg string) {
	d := golox.ErrorAtToken(golox.ParseStage, tok, msg)
	tracer().Errorf(d.Error())
	p.diags.Add(d)
}

// error records a syntax error and returns a value to panic with.
func (p *Parser) error(tok golox.Token, msg string) parseError {
	p.report(tok, msg)
	return parseError{}
}

// synchronize discards tokens until the start of the next statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == golox.Semicolon {
			return
		}
		switch p.peek().Kind {
		case golox.Class, golox.Fun, golox.Var, golox.For, golox.If,
			golox.While, golox.Print, golox.Return:
			return
		}
		p.advance()
	}
}
