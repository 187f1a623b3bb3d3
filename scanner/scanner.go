/*
Package scanner turns Lox source text into a sequence of tokens.

The scanner is backed by a lexmachine DFA (see Lexer). Scanning never stops
at an error: unexpected characters and unterminated strings are reported to
an error handler and skipped, and the scanner always delivers a final EOF token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'golox.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("golox.scanner")
}

// Scanner is a tokenizer for Lox source text. Create one with New.
type Scanner struct {
	scanner  *lexmachine.Scanner
	text     []byte
	newlines []int                  // byte offsets of '\n' characters
	atEOF    bool                   // EOF token has been delivered
	Error    func(golox.Diagnostic) // error handler
}

// Default error reporting function for scanners
func logError(d golox.Diagnostic) {
	tracer().Errorf("scanner error: " + d.Error())
}

// New creates a scanner for a given input.
// It returns an error only if the DFA could not be set up.
func New(source string) (*Scanner, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	text := []byte(source)
	s, err := lx.Scanner(text)
	if err != nil {
		return nil, err
	}
	sc := &Scanner{
		scanner: s,
		text:    text,
		Error:   logError,
	}
	for i, b := range text {
		if b == '\n' {
			sc.newlines = append(sc.newlines, i)
		}
	}
	return sc, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (sc *Scanner) SetErrorHandler(h func(golox.Diagnostic)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// NextToken returns the next token of the input. After the end of input has
// been reached, every call returns an EOF token.
func (sc *Scanner) NextToken() golox.Token {
	for !sc.atEOF {
		tok, err, eof := sc.scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				_, size := utf8.DecodeRune(sc.text[ui.StartTC:])
				sc.Error(golox.ErrorAtLine(golox.ScanStage, sc.lineAt(ui.StartTC+1), "Unexpected character."))
				sc.scanner.TC = ui.StartTC + size
				continue
			}
			sc.Error(golox.ErrorAtLine(golox.ScanStage, sc.lineAt(sc.scanner.TC), err.Error()))
			break
		}
		token := tok.(*lexmachine.Token)
		line := sc.lineAt(token.TC + len(token.Lexeme))
		lexeme := string(token.Lexeme)
		switch token.Type {
		case unterminatedString:
			sc.Error(golox.ErrorAtLine(golox.ScanStage, line, "Unterminated string."))
			continue
		case int(golox.Identifier):
			kind := golox.Identifier
			if kw, ok := golox.Keywords[lexeme]; ok {
				kind = kw
			}
			return sc.trace(golox.MakeToken(kind, lexeme, line))
		case int(golox.Number):
			f, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				sc.Error(golox.ErrorAtLine(golox.ScanStage, line, "Invalid number."))
				continue
			}
			return sc.trace(golox.Token{Kind: golox.Number, Lexeme: lexeme, Literal: f, Line: line})
		case int(golox.String):
			value := lexeme[1 : len(lexeme)-1] // trim off "…"
			return sc.trace(golox.Token{Kind: golox.String, Lexeme: lexeme, Literal: value, Line: line})
		default:
			return sc.trace(golox.MakeToken(golox.TokKind(token.Type), lexeme, line))
		}
	}
	sc.atEOF = true
	return golox.MakeToken(golox.EOF, "", sc.lineAt(len(sc.text)))
}

func (sc *Scanner) trace(t golox.Token) golox.Token {
	tracer().Debugf("token %s", t.Dump())
	return t
}

// lineAt returns the 1-based line number of the text just before byte
// offset pos.
func (sc *Scanner) lineAt(pos int) int {
	return 1 + sort.SearchInts(sc.newlines, pos)
}

// Scan tokenizes a complete source text. The returned token sequence is always
// terminated by an EOF token, even if errors occurred.
func Scan(source string) ([]golox.Token, golox.Diagnostics) {
	var diags golox.Diagnostics
	sc, err := New(source)
	if err != nil {
		diags.Add(golox.ErrorAtLine(golox.ScanStage, 1, err.Error()))
		return []golox.Token{golox.MakeToken(golox.EOF, "", 1)}, diags
	}
	sc.SetErrorHandler(func(d golox.Diagnostic) {
		tracer().Errorf(d.Error())
		diags.Add(d)
	})
	var tokens []golox.Token
	for {
		token := sc.NextToken()
		tokens = append(tokens, token)
		if token.Kind == golox.EOF {
			break
		}
	}
	tracer().Debugf("scanned %d tokens, %d errors", len(tokens), len(diags))
	return tokens, diags
}
