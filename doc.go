/*
Package golox is a tree-walking interpreter for Lox, a small dynamically
typed scripting language.

Source text passes through a four-stage pipeline:

■ scanner: Package scanner turns source text into tokens, driven by a lexmachine DFA.

■ parser: Package parser builds an abstract syntax tree (package ast) by recursive descent.

■ resolver: Package resolver computes the lexical distance ("hop count") for every
variable reference.

■ interpreter: Package interpreter executes the tree against a chain of environments
(package runtime).

Package loxlang glues the stages together, and cmd/golox is a command line front end
with an interactive prompt, configured by package config.

The base package contains the token model and the diagnostics types which are
used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package golox
