package infix

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/scanner"
	"github.com/npillmayer/symbo/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "+", "-", "*", "/", "^"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

// Token types for numbers and atoms. Function names (exp, ln) are scanned
// as atoms and classified by the operator catalogue.
const (
	NumToken  = scanner.Float
	AtomToken = scanner.Ident
)

var lexer *lexmach.LMAdapter
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

func initTokens() {
	tokenIds = make(map[string]int)
	tokenIds["NUM"] = NumToken
	tokenIds["ATOM"] = AtomToken
	for _, lit := range literals {
		tokenIds[lit] = int(lit[0])
	}
}

// Lexer returns the lexmachine-based lexer for infix expressions.
func Lexer() (*lexmach.LMAdapter, error) {
	initOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ATOM", AtomToken))
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), lexmach.MakeToken("NUM", NumToken))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, nil, tokenIds)
		if lexerErr != nil {
			tracer().Errorf("cannot create infix lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// Tokenize splits an infix expression into lexemes. Characters which do not
// start a valid token make the input malformed.
func Tokenize(input string) ([]string, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, symbo.Malformed("%v", err)
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var tokens []string
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		tokens = append(tokens, token.Lexeme())
	}
	if scanErr != nil {
		return nil, symbo.Malformed("unrecognized input: %v", scanErr)
	}
	tracer().Debugf("tokens = %v", tokens)
	return tokens, nil
}

// isNumber is true for lexemes of numeric literals.
func isNumber(token string) bool {
	if token == "" {
		return false
	}
	for i, r := range token {
		if (r < '0' || r > '9') && !(r == '.' && i > 0) {
			return false
		}
	}
	return true
}
