/*
Package scanner defines an interface for tokenizers feeding the infix parser.

A default implementation is provided as an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symbo"
)

// tracer traces with key 'symbo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("symbo.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Float   = scanner.Float
	Comment = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() symbo.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   symbo.TokType
	lexeme string
	Val    interface{}
	span   symbo.Span
}

func MakeDefaultToken(typ symbo.TokType, lexeme string, span symbo.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() symbo.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() symbo.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q@%s", t.lexeme, t.span)
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case symbo.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
