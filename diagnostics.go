package golox

import (
	"fmt"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Stage tells which pipeline stage reported a diagnostic.
type Stage int8

// Pipeline stages, in order of execution.
const (
	ScanStage Stage = iota
	ParseStage
	ResolveStage
	RuntimeStage
)

func (s Stage) String() string {
	switch s {
	case ScanStage:
		return "scan"
	case ParseStage:
		return "parse"
	case ResolveStage:
		return "resolve"
	case RuntimeStage:
		return "runtime"
	}
	return "?"
}

// Diagnostic is an error report for a position in the source text.
// Diagnostic implements the error interface.
type Diagnostic struct {
	Stage   Stage
	Line    int
	Where   string // "", " at end" or " at '<lexeme>'"
	Message string
}

// ErrorAtLine creates a diagnostic for a source line.
func ErrorAtLine(stage Stage, line int, msg string) Diagnostic {
	return Diagnostic{Stage: stage, Line: line, Message: msg}
}

// ErrorAtToken creates a diagnostic located at a token.
func ErrorAtToken(stage Stage, tok Token, msg string) Diagnostic {
	d := Diagnostic{Stage: stage, Line: tok.Line, Message: msg}
	if tok.Kind == EOF {
		d.Where = " at end"
	} else {
		d.Where = " at '" + tok.Lexeme + "'"
	}
	return d
}

func (d Diagnostic) Error() string {
	if d.Stage == RuntimeStage {
		return fmt.Sprintf("[line %d] Runtime error: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// IsStatic is true for diagnostics of the scan, parse and resolve stages.
func (d Diagnostic) IsStatic() bool {
	return d.Stage != RuntimeStage
}

// ---------------------------------------------------------------------------

// Diagnostics is an ordered list of diagnostics, collected by a pipeline stage.
// The zero value is an empty list.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (ds *Diagnostics) Add(d Diagnostic) {
	*ds = append(*ds, d)
}

// Append appends all diagnostics of another list.
func (ds *Diagnostics) Append(other Diagnostics) {
	*ds = append(*ds, other...)
}

// HasErrors is true if at least one diagnostic has been collected.
func (ds Diagnostics) HasErrors() bool {
	return len(ds) > 0
}

// HasStaticErrors is true if a scan-, parse- or resolve-error has been collected.
func (ds Diagnostics) HasStaticErrors() bool {
	for _, d := range ds {
		if d.IsStatic() {
			return true
		}
	}
	return false
}

// HasRuntimeErrors is true if a runtime error has been collected.
func (ds Diagnostics) HasRuntimeErrors() bool {
	for _, d := range ds {
		if !d.IsStatic() {
			return true
		}
	}
	return false
}

// Err returns the diagnostics as an error, or nil if the list is empty.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// Error joins all diagnostics, one per line.
func (ds Diagnostics) Error() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Exit codes of the command-line front end, following sysexits.h.
const (
	ExitOK      = 0
	ExitUsage   = 64 // invalid invocation
	ExitStatic  = 65 // scan, parse or resolve error
	ExitRuntime = 70 // runtime error
	ExitIO      = 74 // source file not readable
)

// ExitCode selects the exit code for a list of diagnostics. Static errors
// take precedence over runtime errors.
func (ds Diagnostics) ExitCode() int {
	if ds.HasStaticErrors() {
		return ExitStatic
	}
	if ds.HasRuntimeErrors() {
		return ExitRuntime
	}
	return ExitOK
}
