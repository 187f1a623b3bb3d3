/*
Package loxlang connects the stages of the Lox pipeline: scanning, parsing,
static resolution and interpretation.

Stages report problems as diagnostics instead of setting global error flags.
Scanning and parsing always run, so that as many errors as possible are
reported in one pass. Resolution runs only for a syntactically correct
program, interpretation only for a program free of static errors.

A Session keeps one interpreter alive across runs, which is what an
interactive prompt needs: global variables and functions declared in one
run are visible in later runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loxlang

import (
	"errors"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/interpreter"
	"github.com/npillmayer/golox/parser"
	"github.com/npillmayer/golox/resolver"
	"github.com/npillmayer/golox/runtime"
	"github.com/npillmayer/golox/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.cli'.
func tracer() tracing.Trace {
	return tracing.Select("golox.cli")
}

// Result is the outcome of running a piece of Lox source text.
type Result struct {
	Program     []ast.Stmt        // possibly partial, if there were syntax errors
	Diagnostics golox.Diagnostics // in order of detection
	Trace       []string          // active calls at the point of a runtime error
}

// ExitCode returns the exit code a command-line tool should report.
func (r Result) ExitCode() int {
	return r.Diagnostics.ExitCode()
}

// Err returns the diagnostics as an error, or nil.
func (r Result) Err() error {
	return r.Diagnostics.Err()
}

// Parse scans and parses source text.
func Parse(source string) ([]ast.Stmt, golox.Diagnostics) {
	tokens, diags := scanner.Scan(source)
	program, pdiags := parser.Parse(tokens)
	diags.Append(pdiags)
	return program, diags
}

// Run executes source text with a fresh interpreter.
func Run(source string, opts ...interpreter.Option) Result {
	return NewSession(opts...).Run(source)
}

// Session runs source texts with a shared interpreter.
type Session struct {
	interp *interpreter.Interpreter
}

// NewSession creates a session with a new interpreter.
func NewSession(opts ...interpreter.Option) *Session {
	return &Session{
		interp: interpreter.New(opts...),
	}
}

// Globals returns the global environment of the session.
func (s *Session) Globals() *runtime.Environment {
	return s.interp.Globals()
}

// Run executes source text: scan → parse → resolve → interpret.
func (s *Session) Run(source string) Result {
	var r Result
	r.Program, r.Diagnostics = Parse(source)
	if r.Diagnostics.HasErrors() {
		tracer().Infof("%d syntax error(s), program will not be executed", len(r.Diagnostics))
		return r
	}
	bindings, rdiags := resolver.Resolve(r.Program)
	if rdiags.HasErrors() {
		r.Diagnostics.Append(rdiags)
		tracer().Infof("%d static error(s), program will not be executed", len(rdiags))
		return r
	}
	s.interp.AddBindings(bindings)
	if err := s.interp.Interpret(r.Program); err != nil {
		var rterr *interpreter.RuntimeError
		if errors.As(err, &rterr) {
			r.Diagnostics.Add(rterr.Diagnostic())
			r.Trace = rterr.Trace
		} else {
			r.Diagnostics.Add(golox.ErrorAtLine(golox.RuntimeStage, 0, err.Error()))
		}
	}
	return r
}
