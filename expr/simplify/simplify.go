package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symbo/expr"
)

// Simplify rewrites a tree under a rule configuration. The input tree is left
// untouched; the result shares no nodes with it.
//
// The only possible error is symbo.ErrDivisionByZero, reported when the
// reciprocal of an operand simplifying to zero is encountered.
func Simplify(n expr.Node, rules Rules) (expr.Node, error) {
	if n == nil {
		panic("attempt to simplify a nil node")
	}
	if expr.IsLeaf(n) {
		return expr.Copy(n), nil
	}
	switch x := n.(type) {
	case *expr.Unary:
		operand, err := Simplify(x.Child, rules.ForOperandsOf(x.Op))
		if err != nil {
			return nil, err
		}
		return rewriteUnary(&expr.Unary{Op: x.Op, Child: operand}, rules)
	case *expr.Plenary:
		operandRules := rules.ForOperandsOf(x.Op)
		operands := make([]expr.Node, len(x.Children))
		for i, ch := range x.Children {
			s, err := Simplify(ch, operandRules)
			if err != nil {
				return nil, err
			}
			operands[i] = s
		}
		p := expr.NewPlenary(x.Op, operands...) // re-establish flattening
		if x.Op == expr.AddOp {
			return simplifySum(p, rules)
		}
		return simplifyProduct(p, rules)
	}
	panic("attempt to simplify an unknown node kind")
}

// rewritten is called whenever a rewrite rule changed a node. The result of the
// rewrite is simplified again under the node's own configuration.
func rewritten(name string, from, to expr.Node, rules Rules) (expr.Node, error) {
	tracer().Debugf("%s: %s => %s", name, from, to)
	return Simplify(to, rules)
}

// MustSimplify is like Simplify, but panics on error. It is intended for
// expressions known not to contain divisions.
func MustSimplify(n expr.Node, rules Rules) expr.Node {
	s, err := Simplify(n, rules)
	if err != nil {
		panic(err.Error())
	}
	return s
}
