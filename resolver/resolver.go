/*
Package resolver implements a static pass over the AST of a Lox program,
binding every variable reference to its declaring scope.

For every local variable reference the resolver records the number of scopes
between the reference and the declaration (the "hop count"). References which
cannot be found in any local scope are global and are not recorded; the
interpreter looks them up in the global environment at runtime. Global
variables are late-bound and may be re-declared.

The resolver reports static errors:

    ■ re-declaring a local variable in the same scope
    ■ reading a local variable within its own initializer
    ■ returning from top-level code

Resolution never stops early, so every error in a program is reported in one
pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolver

import (
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.resolver'.
func tracer() tracing.Trace {
	return tracing.Select("golox.resolver")
}

// Bindings is the static binding table. It maps Variable and Assign nodes
// to hop counts. Nodes are compared by identity.
type Bindings map[ast.Expr]int

// Merge copies all entries of other into b.
func (b Bindings) Merge(other Bindings) {
	for expr, hops := range other {
		b[expr] = hops
	}
}

type functionKind int8

const (
	noFunction functionKind = iota
	inFunction
)

// Resolver walks an AST and collects bindings.
type Resolver struct {
	scopes   *runtime.ScopeTree
	bindings Bindings
	fnKind   functionKind
	diags    golox.Diagnostics
}

// New creates a resolver. The global scope is already in place.
func New() *Resolver {
	r := &Resolver{
		scopes:   &runtime.ScopeTree{},
		bindings: make(Bindings),
	}
	r.scopes.PushNewScope("globals")
	return r
}

// Resolve is a convenience function to resolve a complete program.
func Resolve(stmts []ast.Stmt) (Bindings, golox.Diagnostics) {
	r := New()
	r.Resolve(stmts)
	return r.Bindings(), r.Diagnostics()
}

// Resolve resolves a list of top-level statements.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.stmt(stmt)
	}
}

// Bindings returns the binding table collected so far.
func (r *Resolver) Bindings() Bindings {
	return r.bindings
}

// Diagnostics returns the static errors found so far.
func (r *Resolver) Diagnostics() golox.Diagnostics {
	return r.diags
}

// --- Statements ------------------------------------------------------------

func (r *Resolver) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.expr(s.Expr)
	case *ast.PrintStmt:
		r.expr(s.Expr)
	case *ast.VarDecl:
		r.declare(s.Name)
		if s.Init != nil {
			r.expr(s.Init)
		}
		r.define(s.Name)
	case *ast.Block:
		r.scopes.PushNewScope("block")
		r.Resolve(s.Stmts)
		r.scopes.PopScope()
	case *ast.IfStmt:
		r.expr(s.Cond)
		r.stmt(s.Then)
		if s.Else != nil {
			r.stmt(s.Else)
		}
	case *ast.WhileStmt:
		r.expr(s.Cond)
		r.stmt(s.Body)
	case *ast.BreakStmt:
		// loop context is checked at runtime
	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.define(s.Name)
		r.function(s)
	case *ast.ReturnStmt:
		if r.fnKind == noFunction {
			r.error(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.expr(s.Value)
		}
	default:
		tracer().Errorf("resolver: unknown statement type %T", stmt)
	}
}

// function resolves parameters and body of a function in a new scope.
// The body's statements share the scope of the parameters.
func (r *Resolver) function(decl *ast.FunctionDecl) {
	enclosing := r.fnKind
	r.fnKind = inFunction
	r.scopes.PushNewScope("fun " + decl.Name.Lexeme)
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.Resolve(decl.Body.Stmts)
	r.scopes.PopScope()
	r.fnKind = enclosing
}

// --- Expressions -----------------------------------------------------------

func (r *Resolver) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
	case *ast.Grouping:
		r.expr(e.Inner)
	case *ast.Unary:
		r.expr(e.Right)
	case *ast.Binary:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.Logical:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.Variable:
		if !r.scopes.IsGlobal() {
			tag := r.scopes.Current().Tags().ResolveTag(e.Name.Lexeme)
			if tag != nil && tag.State == runtime.Declared {
				r.error(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.local(e, e.Name)
	case *ast.Assign:
		r.expr(e.Value)
		r.local(e, e.Name)
	case *ast.Call:
		r.expr(e.Callee)
		for _, arg := range e.Args {
			r.expr(arg)
		}
	default:
		tracer().Errorf("resolver: unknown expression type %T", expr)
	}
}

// local records the hop count for a reference to a local variable.
// Global references are left unrecorded.
func (r *Resolver) local(expr ast.Expr, name golox.Token) {
	tag, hops := r.scopes.Current().ResolveTag(name.Lexeme, r.scopes.Globals())
	if tag == nil {
		tracer().Debugf("'%s' at line %d is global", name.Lexeme, name.Line)
		return
	}
	tracer().Debugf("'%s' at line %d resolved with %d hops", name.Lexeme, name.Line, hops)
	r.bindings[expr] = hops
}

// --- Declarations ----------------------------------------------------------

func (r *Resolver) declare(name golox.Token) {
	if r.scopes.IsGlobal() {
		return
	}
	scope := r.scopes.Current()
	if scope.Tags().ResolveTag(name.Lexeme) != nil {
		r.error(name, "Already a variable with this name in this scope.")
		return
	}
	scope.DefineTag(name.Lexeme)
}

func (r *Resolver) define(name golox.Token) {
	if r.scopes.IsGlobal() {
		return
	}
	if tag := r.scopes.Current().Tags().ResolveTag(name.Lexeme); tag != nil {
		tag.State = runtime.Defined
	}
}

func (r *Resolver) error(tok golox.Token, msg string) {
	d := golox.ErrorAtToken(golox.ResolveStage, tok, msg)
	tracer().Errorf(d.Error())
	r.diags.Add(d)
}
