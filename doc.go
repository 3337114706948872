/*
Package symbo is a small computer-algebra core.

Symbo parses infix arithmetic, exponential and logarithmic expressions into
expression trees and rewrites them into equivalent, simpler forms, driven by a
configurable rule set. Package structure is as follows:

■ expr: Package expr implements the expression tree, the operator catalogue,
canonical ordering and rendering.

■ expr/simplify: Package simplify implements the rule-driven rewrite engine,
together with semantic equality and hashing.

■ infix: Package infix implements the parsing pipeline from infix text to
expression trees.

■ scanner: Package scanner defines an interface for tokenizers. Sub-package lexmach
adapts lexmachine.

■ runtime: Package runtime provides scopes and symbol tables for variable bindings.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbo
