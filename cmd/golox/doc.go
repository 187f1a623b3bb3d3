/*
Command golox is an interpreter for the Lox scripting language.

Usage

    golox [flags] [script]

With a script argument, golox executes the script and exits. The exit code is
0 on success, 65 for scan, parse or resolve errors, 70 for runtime errors, 74
if the script cannot be read and 64 for invalid usage.

Without a script argument, golox starts an interactive prompt. Every line is
run as a program of its own, but global variables and functions persist from
line to line. Errors are reported and do not end the session. Besides Lox
statements, the prompt understands these commands:

    :ast <source>   print the syntax tree of <source> without running it
    :env            list global variables
    :quit           leave golox (as does <ctrl>D)

Flags

    -trace <level>      trace level [Debug|Info|Error]
    -config <file>      configuration file (default .golox.yaml)
    -ast                print the syntax tree before execution
    -nil-equals-nil     treat nil as equal to nil

Command-line flags override settings of the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.cli'
func tracer() tracing.Trace {
	return tracing.Select("golox.cli")
}
