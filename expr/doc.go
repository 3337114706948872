/*
Package expr implements expression trees for Symbo.

Expression trees are built from four node variants: numeric literals, atoms
(symbolic variables), unary operator nodes (negation, reciprocal, exp, ln) and
plenary operator nodes (addition and multiplication with any number of operands).
Plenary operators are commutative and associative, therefore a plenary node never
contains a direct child of the same operator: such children are merged into the
parent's operand list ("flattening").

Trees are values. No function in this package modifies a node reachable from its
arguments; structural edits always return fresh nodes.

A canonical total order on nodes (see Compare) sorts the operands of plenary
nodes for rendering and hashing, making commutative nodes print deterministically.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symbo.expr'.
func tracer() tracing.Trace {
	return tracing.Select("symbo.expr")
}
