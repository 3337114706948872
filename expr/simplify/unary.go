package simplify

import (
	"fmt"
	"math"

	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// rewriteRule is a rewrite for unary nodes. Guard checks the node's rule
// configuration, pattern checks the (already simplified) operand, and rewrite
// produces the replacement for the whole node from the operand.
type rewriteRule struct {
	name    string
	guard   func(Rules) bool
	pattern func(expr.Node) bool
	rewrite func(expr.Node) (expr.Node, error)
}

func always(Rules) bool { return true }

func isLiteral(n expr.Node) bool {
	return n.Kind() == expr.NumberKind
}

func isOp(op expr.Op) func(expr.Node) bool {
	return func(n expr.Node) bool {
		return expr.Is(n, op)
	}
}

func operand(n expr.Node) expr.Node {
	return n.(*expr.Unary).Child
}

func operands(n expr.Node) []expr.Node {
	return n.(*expr.Plenary).Children
}

func value(n expr.Node) float64 {
	return n.(*expr.Number).Value
}

func mapUnary(op expr.Op, nodes []expr.Node) []expr.Node {
	mapped := make([]expr.Node, len(nodes))
	for i, n := range nodes {
		mapped[i] = expr.MakeUnary(op, n)
	}
	return mapped
}

// unaryRules holds the rewrite rules for every unary operator. The first rule
// matching a node will fire.
var unaryRules map[expr.Op][]rewriteRule

func init() {
	unaryRules = map[expr.Op][]rewriteRule{
		expr.NegOp: {
			{"double negation", always, isOp(expr.NegOp),
				func(a expr.Node) (expr.Node, error) { return operand(a), nil }},
			{"negate literal", always, isLiteral,
				func(a expr.Node) (expr.Node, error) { return expr.Num(-value(a)), nil }},
			{"distribute negation over sum",
				func(r Rules) bool { return r.DistributeNegative }, isOp(expr.AddOp),
				func(a expr.Node) (expr.Node, error) {
					return expr.Sum(mapUnary(expr.NegOp, operands(a))...), nil
				}},
			{"distribute negation over product",
				func(r Rules) bool { return r.DistributeNegative }, isOp(expr.MulOp),
				func(a expr.Node) (expr.Node, error) { return negateProduct(a.(*expr.Plenary)), nil }},
			// not guarded by DistributeDivision alone: that would undo "move reciprocal into negation"
			{"move negation into reciprocal",
				func(r Rules) bool { return r.DistributeNegative && !r.DistributeDivision },
				isOp(expr.RecipOp),
				func(a expr.Node) (expr.Node, error) { return expr.Recip(expr.Neg(operand(a))), nil }},
		},
		expr.RecipOp: {
			{"reciprocal of literal", always, isLiteral,
				func(a expr.Node) (expr.Node, error) {
					v := value(a)
					if v == 0 {
						return nil, fmt.Errorf("%w: / %s", symbo.ErrDivisionByZero, a)
					}
					return expr.Num(1 / v), nil
				}},
			{"double reciprocal", always, isOp(expr.RecipOp),
				func(a expr.Node) (expr.Node, error) { return operand(a), nil }},
			{"distribute reciprocal over product",
				func(r Rules) bool { return r.DistributeDivision }, isOp(expr.MulOp),
				func(a expr.Node) (expr.Node, error) {
					return expr.Product(mapUnary(expr.RecipOp, operands(a))...), nil
				}},
			{"move reciprocal into negation",
				func(r Rules) bool { return r.DistributeDivision }, isOp(expr.NegOp),
				func(a expr.Node) (expr.Node, error) { return expr.Neg(expr.Recip(operand(a))), nil }},
		},
		expr.ExpOp: { // exp(exp a) has no simpler form
			{"exp of literal", always,
				func(a expr.Node) bool { return isLiteral(a) && !math.IsInf(math.Exp(value(a)), 0) },
				func(a expr.Node) (expr.Node, error) { return expr.Num(math.Exp(value(a))), nil }},
			{"exp of ln", always, isOp(expr.LnOp),
				func(a expr.Node) (expr.Node, error) { return operand(a), nil }},
			{"expand exp of negation",
				func(r Rules) bool { return r.ExpMode == Expand }, isOp(expr.NegOp),
				func(a expr.Node) (expr.Node, error) { return expr.Recip(expr.Exp(operand(a))), nil }},
			{"expand exp of sum",
				func(r Rules) bool { return r.ExpMode == Expand }, isOp(expr.AddOp),
				func(a expr.Node) (expr.Node, error) {
					return expr.Product(mapUnary(expr.ExpOp, operands(a))...), nil
				}},
		},
		expr.LnOp: {
			{"ln of literal", always,
				func(a expr.Node) bool { return isLiteral(a) && value(a) > 0 },
				func(a expr.Node) (expr.Node, error) { return expr.Num(math.Log(value(a))), nil }},
			{"ln of exp", always, isOp(expr.ExpOp),
				func(a expr.Node) (expr.Node, error) { return operand(a), nil }},
			{"expand ln of reciprocal",
				func(r Rules) bool { return r.LnMode == Expand }, isOp(expr.RecipOp),
				func(a expr.Node) (expr.Node, error) { return expr.Neg(expr.Ln(operand(a))), nil }},
			{"expand ln of product",
				func(r Rules) bool { return r.LnMode == Expand }, isOp(expr.MulOp),
				func(a expr.Node) (expr.Node, error) {
					return expr.Sum(mapUnary(expr.LnOp, operands(a))...), nil
				}},
		},
	}
}

// rewriteUnary applies the first matching rule to a unary node with a simplified
// operand. Nodes without a matching rule are returned unchanged.
func rewriteUnary(u *expr.Unary, rules Rules) (expr.Node, error) {
	for _, rule := range unaryRules[u.Op] {
		if !rule.guard(rules) || !rule.pattern(u.Child) {
			continue
		}
		to, err := rule.rewrite(u.Child)
		if err != nil {
			tracer().Errorf("%s: %v", rule.name, err)
			return nil, err
		}
		return rewritten(rule.name, u, to, rules)
	}
	return u, nil
}

// negateProduct pushes a negation onto a single factor of a product: onto the
// literal factor if there is one, else onto the first factor in canonical order.
func negateProduct(p *expr.Plenary) expr.Node {
	factors := expr.Sorted(p.Children)
	at := 0
	for i, f := range factors {
		if isLiteral(f) {
			at = i
			break
		}
	}
	if len(factors) == 0 {
		return expr.Int(-1)
	}
	factors[at] = expr.Neg(factors[at])
	return expr.Product(factors...)
}
