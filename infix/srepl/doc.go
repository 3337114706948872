/*
Package srepl/main provides an interactive command line tool (S.REPL)
for infix expressions. Every line entered is parsed, simplified under the
current rule configuration, and printed in canonical form.

Lines starting with a colon are commands:

    :rules                 show the current rule configuration
    :set <option> <value>  change a rule option, e.g. :set ln-mode expand
    :tree <expr>           display the tree of an expression
    :postfix <expr>        display the normalized postfix form of an expression
    :eq <expr> ; <expr>    check two expressions for equality
    :eval <expr>           compute the numeric value of an expression
    :let <name> = <expr>   bind a name, same as <name> := <expr>
    :defs                  list all bindings
    :quit                  leave S.REPL


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symbo.parse'
func tracer() tracing.Trace {
	return tracing.Select("symbo.parse")
}
