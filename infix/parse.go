package infix

import (
	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// Parse parses an infix expression into an expression tree.
//
//    x := infix.Parse("2 * x * (y - 4)")
//
// The tree is not simplified, but sums and products are flattened.
func Parse(text string) (expr.Node, error) {
	postfix, err := Postfix(text)
	if err != nil {
		return nil, err
	}
	node, err := BuildFromPostfix(postfix)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q => %s", text, node)
	return node, nil
}

// MustParse is like Parse, but panics on malformed input.
func MustParse(text string) expr.Node {
	node, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return node
}

// Postfix tokenizes and normalizes an infix expression and returns it in
// postfix order.
func Postfix(text string) ([]string, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, symbo.Malformed("empty expression")
	}
	normalized, err := Normalize(tokens)
	if err != nil {
		return nil, err
	}
	return ToPostfix(normalized)
}
