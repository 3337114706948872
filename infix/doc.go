/*
Package infix parses infix expressions into expression trees.

Parsing is a pipeline of four stages:

  text ─▶ Tokenize ─▶ Normalize ─▶ ToPostfix ─▶ BuildFromPostfix ─▶ expr.Node

Tokenize splits the input into numbers, atoms, parentheses and operator tokens,
with or without separating spaces. Normalize rewrites surface syntax into
function form:

    a - b   ⇒  a + - b
    a / b   ⇒  a * / b
    a ^ b   ⇒  exp ( ln a * b )      (exp ( b ) for a = e)

ToPostfix converts the normalized stream by precedence climbing, and
BuildFromPostfix reconstructs the tree, flattening nested sums and products.

Parse errors wrap symbo.ErrMalformedExpression.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package infix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symbo.parse'
func tracer() tracing.Trace {
	return tracing.Select("symbo.parse")
}
