/*
Package simplify implements rule-driven simplification of expression trees.

Simplification rewrites a tree into an algebraically equivalent, simpler form.
Which identities are applied is controlled by a rule configuration (type Rules).
Naive application of identities in both directions would rewrite forever
(-/a ⇄ /-a), therefore every operator derives a configuration for its operands
which differs from its own: see Rules.ForOperandsOf.

Simplification is bottom-up. Operands are simplified first, under the derived
configuration; then the operator's own rewrite rules are tried on the node. A
rewrite which changes the node is followed by simplifying the result under the
node's own configuration.

Simplification never modifies its input.

Equality

Equal and Hash simplify their arguments under the configuration All and compare
or hash the canonical renderings. Two expressions which are mathematically equal
but cannot be rewritten into each other by the implemented identities compare
unequal.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simplify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symbo.expr'.
func tracer() tracing.Trace {
	return tracing.Select("symbo.expr")
}
