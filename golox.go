package golox

import (
	"fmt"
	"strconv"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Token kinds -----------------------------------------------------------

// TokKind is a category type for a Token.
type TokKind int

// Token kinds of the Lox language.
const (
	EOF TokKind = iota

	// single-character tokens
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Break
	Class
	Continue
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var kindNames = [...]string{
	EOF: "EOF", LeftParen: "LEFT_PAREN", RightParen: "RIGHT_PAREN",
	LeftBrace: "LEFT_BRACE", RightBrace: "RIGHT_BRACE", Comma: "COMMA", Dot: "DOT",
	Minus: "MINUS", Plus: "PLUS", Semicolon: "SEMICOLON", Slash: "SLASH", Star: "STAR",
	Bang: "BANG", BangEqual: "BANG_EQUAL", Equal: "EQUAL", EqualEqual: "EQUAL_EQUAL",
	Greater: "GREATER", GreaterEqual: "GREATER_EQUAL", Less: "LESS", LessEqual: "LESS_EQUAL",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "AND", Break: "BREAK", Class: "CLASS", Continue: "CONTINUE", Else: "ELSE",
	False: "FALSE", For: "FOR", Fun: "FUN", If: "IF", Nil: "NIL", Or: "OR",
	Print: "PRINT", Return: "RETURN", Super: "SUPER", This: "THIS", True: "TRUE",
	Var: "VAR", While: "WHILE",
}

func (k TokKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokKind(%d)", int(k))
	}
	return kindNames[k]
}

// Keywords maps reserved words to their token kinds.
var Keywords = map[string]TokKind{
	"and":      And,
	"break":    Break,
	"class":    Class,
	"continue": Continue,
	"else":     Else,
	"false":    False,
	"for":      For,
	"fun":      Fun,
	"if":       If,
	"nil":      Nil,
	"or":       Or,
	"print":    Print,
	"return":   Return,
	"super":    Super,
	"this":     This,
	"true":     True,
	"var":      Var,
	"while":    While,
}

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by the scanner and
// are read-only thereafter.
//
// An example would be a token for a number:
//
//    Kind    = Number      // category of this token
//    Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//    Literal = 3.1416      // is a float64 value
//    Line    = 12          // source line of the token
//
// Literal is a float64 for numbers, a string (without quotes) for strings and
// nil for every other kind of token.
type Token struct {
	Kind    TokKind
	Lexeme  string
	Literal interface{}
	Line    int
}

// MakeToken creates a token without a literal value.
func MakeToken(kind TokKind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// String returns the source form of a token. Scanning the result again
// produces a token of the same kind and literal value.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		if f, ok := t.Literal.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	case String:
		if s, ok := t.Literal.(string); ok {
			return `"` + s + `"`
		}
	}
	return t.Lexeme
}

// Dump is a debug representation of a token.
func (t Token) Dump() string {
	if t.Literal == nil {
		return fmt.Sprintf("<%s %q @%d>", t.Kind, t.Lexeme, t.Line)
	}
	return fmt.Sprintf("<%s %q=%v @%d>", t.Kind, t.Lexeme, t.Literal, t.Line)
}
