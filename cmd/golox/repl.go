package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/config"
	"github.com/npillmayer/golox/loxlang"
	"github.com/npillmayer/golox/runtime"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Intp is our interactive interpreter object.
type Intp struct {
	session *loxlang.Session
	repl    *readline.Instance
	showAST bool
}

// repl starts interactive mode and returns the exit code.
func repl(cfg *config.Config) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.History,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		return golox.ExitIO
	}
	defer rl.Close()
	intp := &Intp{
		session: loxlang.NewSession(cfg.InterpreterOptions()...),
		repl:    rl,
		showAST: cfg.ShowAST,
	}
	pterm.Info.Println("Welcome to golox")
	tracer().Infof("Quit with <ctrl>D or :quit")
	intp.REPL()
	return golox.ExitOK
}

// REPL reads and evaluates lines until end of input or ':quit'.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a line of input, which is either a command or Lox source.
// Returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	if strings.HasPrefix(line, ":") {
		return intp.command(line)
	}
	tracer().Debugf("eval %q", line)
	if intp.showAST {
		program, _ := loxlang.Parse(line)
		printTree(program)
	}
	r := intp.session.Run(line)
	for _, d := range r.Diagnostics {
		pterm.Error.Println(d.Error())
	}
	for _, call := range r.Trace {
		pterm.Error.Println("    " + call)
	}
	return false
}

func (intp *Intp) command(line string) bool {
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true
	case ":ast":
		program, diags := loxlang.Parse(arg)
		for _, d := range diags {
			pterm.Error.Println(d.Error())
		}
		printTree(program)
	case ":env":
		intp.printGlobals()
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s", cmd))
	}
	return false
}

// printGlobals lists global variables, sorted by name.
func (intp *Intp) printGlobals() {
	globals := intp.session.Globals()
	names := treeset.NewWith(utils.StringComparator)
	globals.Each(func(name string, _ runtime.Value) {
		names.Add(name)
	})
	for _, n := range names.Values() {
		name := n.(string)
		v, _ := globals.Get(name)
		pterm.Info.Println(fmt.Sprintf("%s = %s", name, runtime.Stringify(v)))
	}
}
