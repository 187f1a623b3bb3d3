package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/config"
	"github.com/npillmayer/golox/loxlang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	cfgfile := flag.String("config", "", "Configuration file (default "+config.DefaultFile+")")
	showAST := flag.Bool("ast", false, "Print the syntax tree before execution")
	nilEq := flag.Bool("nil-equals-nil", false, "Treat nil as equal to nil")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: golox [flags] [script]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	//
	cfg, err := config.Load(*cfgfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(golox.ExitUsage)
	}
	flag.Visit(func(f *flag.Flag) { // flags set by the user override the config file
		switch f.Name {
		case "trace":
			cfg.Trace = *tlevel
		case "ast":
			cfg.ShowAST = *showAST
		case "nil-equals-nil":
			cfg.NilEqualsNil = *nilEq
		}
	})
	setTraceLevel(cfg.Trace)
	tracer().Infof("Trace level is %s", cfg.Trace)
	//
	switch flag.NArg() {
	case 0:
		os.Exit(repl(cfg))
	case 1:
		os.Exit(runFile(flag.Arg(0), cfg))
	}
	flag.Usage()
	os.Exit(golox.ExitUsage)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range []string{"golox.scanner", "golox.parser", "golox.resolver",
		"golox.runtime", "golox.cli"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// runFile executes a script and returns the exit code.
func runFile(path string, cfg *config.Config) int {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return golox.ExitIO
	}
	tracer().Infof("running %s", path)
	if cfg.ShowAST {
		program, _ := loxlang.Parse(string(source))
		printTree(program)
	}
	r := loxlang.Run(string(source), cfg.InterpreterOptions()...)
	for _, d := range r.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	for _, call := range r.Trace {
		fmt.Fprintln(os.Stderr, "    "+call)
	}
	return r.ExitCode()
}

// printTree renders a syntax tree on the terminal.
func printTree(program []ast.Stmt) {
	if len(program) == 0 {
		pterm.Info.Println("empty program")
		return
	}
	ll := pterm.LeveledList{}
	for _, l := range ast.Levels(program) {
		ll = append(ll, pterm.LeveledListItem{Level: l.Depth, Text: l.Text})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
