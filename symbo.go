package symbo

import (
	"errors"
	"fmt"
)

// --- Errors ----------------------------------------------------------------

// ErrMalformedExpression is reported for input which cannot be turned into an
// expression tree: unbalanced parentheses, missing operands, unrecognized tokens.
var ErrMalformedExpression = errors.New("malformed expression")

// ErrDivisionByZero is reported as soon as the reciprocal of a zero-valued operand
// is simplified. Constructing such a tree is not an error.
var ErrDivisionByZero = errors.New("division by zero")

// Malformed wraps ErrMalformedExpression with a formatted message.
func Malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedExpression, fmt.Sprintf(format, args...))
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the scanner
// package.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner.
//
// An example would be a token for a floating point numer:
//
//    TokType = Float       // identifier for this kind of tokens
//    Lexeme  = "3.1316"    // lexeme how it appreared in the input stream
//    Value   = nil         // conversion is up to the parser
//    Span    = 67…73       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
