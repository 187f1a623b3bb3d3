package scanner

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/golox"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine setup

// Token ids beyond the range of golox.TokKind, used only between the DFA and
// the scanner.
const (
	unterminatedString = 1000 + iota
)

// The tokens representing one- and two-char operator lexemes
var literals = map[string]golox.TokKind{
	"(": golox.LeftParen, ")": golox.RightParen,
	"{": golox.LeftBrace, "}": golox.RightBrace,
	",": golox.Comma, ".": golox.Dot, ";": golox.Semicolon,
	"-": golox.Minus, "+": golox.Plus, "/": golox.Slash, "*": golox.Star,
	"!": golox.Bang, "!=": golox.BangEqual,
	"=": golox.Equal, "==": golox.EqualEqual,
	">": golox.Greater, ">=": golox.GreaterEqual,
	"<": golox.Less, "<=": golox.LessEqual,
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the (shared) lexmachine lexer for Lox. The DFA is compiled on
// first use.
//
// Keywords are not part of the DFA: identifiers are matched longest-first and
// checked against golox.Keywords afterwards.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer, lexerErr = newLexer()
	})
	return lexer, lexerErr
}

func newLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`//[^\n]*`), skip) // skip comments
	lx.Add([]byte(`( |\t|\n|\r)+`), skip)
	lx.Add([]byte(`\"[^"]*\"`), makeToken(int(golox.String)))
	lx.Add([]byte(`\"[^"]*`), makeToken(unterminatedString))
	lx.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(int(golox.Number)))
	lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(int(golox.Identifier)))
	// add operators in a stable order, for deterministic DFA construction
	ops := make([]string, 0, len(literals))
	for lit := range literals {
		ops = append(ops, lit)
	}
	sort.Strings(ops)
	for _, lit := range ops {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lx.Add([]byte(r), makeToken(int(literals[lit])))
	}
	if err := lx.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
