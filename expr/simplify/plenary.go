package simplify

import (
	"math"

	"github.com/npillmayer/symbo/expr"
)

// maxRepeatedAddition limits the conversion n*a ⇒ a + a + … to |n| ≤ 64.
const maxRepeatedAddition = 64

// simplifySum applies the rules for addition to a flattened sum with simplified
// operands: drop zeros, fold literals, cancel additive inverses.
func simplifySum(p *expr.Plenary, rules Rules) (expr.Node, error) {
	terms, lit, haveLit := splitLiterals(p.Children, expr.AddOp)
	terms = cancel(terms, additiveInverses)
	if haveLit && lit != 0 {
		terms = append(terms, expr.Num(lit))
	}
	return collect(p, expr.AddOp, terms, rules)
}

// simplifyProduct applies the rules for multiplication to a flattened product
// with simplified operands.
func simplifyProduct(p *expr.Plenary, rules Rules) (expr.Node, error) {
	for _, f := range p.Children {
		if expr.IsZero(f) {
			return rewritten("zero factor", p, expr.Int(0), rules)
		}
	}
	factors, lit, haveLit := splitLiterals(p.Children, expr.MulOp)
	if haveLit && lit == 0 {
		return rewritten("zero product", p, expr.Int(0), rules)
	}
	factors = cancel(factors, multiplicativeInverses)
	if rules.DistributeAddition {
		for i, f := range factors {
			if !expr.Is(f, expr.AddOp) {
				continue
			}
			others := make([]expr.Node, 0, len(factors))
			others = append(others, factors[:i]...)
			others = append(others, factors[i+1:]...)
			if haveLit && lit != 1 {
				others = append(others, expr.Num(lit))
			}
			terms := make([]expr.Node, len(operands(f)))
			for j, t := range operands(f) {
				terms[j] = expr.Product(append([]expr.Node{t}, others...)...)
			}
			return rewritten("distribute product over sum", p, expr.Sum(terms...), rules)
		}
	}
	if haveLit && lit != 1 && repeatedAddition(rules, lit) && len(factors) > 0 {
		n := int(math.Abs(lit))
		terms := make([]expr.Node, n)
		for i := range terms {
			var rest expr.Node = expr.Product(factors...)
			if lit < 0 {
				rest = expr.Neg(rest)
			}
			terms[i] = rest
		}
		return rewritten("multiplication to repeated addition", p, expr.Sum(terms...), rules)
	}
	if haveLit && lit != 1 {
		factors = append(factors, expr.Num(lit))
	}
	return collect(p, expr.MulOp, factors, rules)
}

func repeatedAddition(rules Rules, n float64) bool {
	if rules.Preference != expr.AddOp || rules.PreferRepeatedMultiplication {
		return false
	}
	return expr.Num(n).IsInteger() && math.Abs(n) <= maxRepeatedAddition
}

// collect creates the result of a plenary simplification from the remaining
// operands. An empty operand list yields the operator's identity, a single
// operand is returned by itself.
func collect(p *expr.Plenary, op expr.Op, remaining []expr.Node, rules Rules) (expr.Node, error) {
	switch len(remaining) {
	case 0:
		return rewritten("empty "+op.Name(), p, expr.Num(op.Identity()), rules)
	case 1:
		return rewritten("single operand "+op.Name(), p, remaining[0], rules)
	}
	return expr.NewPlenary(op, expr.Sorted(remaining)...), nil
}

// splitLiterals separates literal operands from the others and folds them by
// op. Operands equal to the identity of op are dropped.
func splitLiterals(nodes []expr.Node, op expr.Op) ([]expr.Node, float64, bool) {
	acc, have := op.Identity(), false
	rest := make([]expr.Node, 0, len(nodes))
	for _, n := range nodes {
		v, ok := expr.NumberValue(n)
		if !ok {
			rest = append(rest, n)
			continue
		}
		have = true
		if op == expr.AddOp {
			acc += v
		} else {
			acc *= v
		}
	}
	return rest, acc, have
}

// --- Cancellation ----------------------------------------------------------

// cancel removes pairs of operands for which inverse is true. Every operand
// cancels at most once.
func cancel(nodes []expr.Node, inverse func(a, b expr.Node) bool) []expr.Node {
	gone := make([]bool, len(nodes))
	for i := range nodes {
		if gone[i] {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			if !gone[j] && inverse(nodes[i], nodes[j]) {
				tracer().Debugf("cancel %s against %s", nodes[i], nodes[j])
				gone[i], gone[j] = true, true
				break
			}
		}
	}
	rest := make([]expr.Node, 0, len(nodes))
	for i, n := range nodes {
		if !gone[i] {
			rest = append(rest, n)
		}
	}
	return rest
}

// signed splits a term into a sign and a magnitude: -(x*y), (-x)*y and x*(-1)*y
// all have magnitude x*y and a negative sign.
func signed(n expr.Node) (bool, expr.Node) {
	switch x := n.(type) {
	case *expr.Number:
		if x.Value < 0 {
			return true, expr.Num(-x.Value)
		}
	case *expr.Unary:
		if x.Op == expr.NegOp {
			neg, mag := signed(x.Child)
			return !neg, mag
		}
	case *expr.Plenary:
		if x.Op == expr.MulOp {
			neg := false
			mags := make([]expr.Node, 0, len(x.Children))
			for _, f := range x.Children {
				n, m := signed(f)
				neg = neg != n
				if !expr.IsOne(m) {
					mags = append(mags, m)
				}
			}
			switch len(mags) {
			case 0:
				return neg, expr.Int(1)
			case 1:
				return neg, mags[0]
			}
			return neg, expr.Product(mags...)
		}
	}
	return false, n
}

func additiveInverses(a, b expr.Node) bool {
	nega, maga := signed(a)
	negb, magb := signed(b)
	return nega != negb && maga.String() == magb.String()
}

func multiplicativeInverses(a, b expr.Node) bool {
	if expr.Is(a, expr.RecipOp) {
		return operand(a).String() == b.String()
	}
	if expr.Is(b, expr.RecipOp) {
		return operand(b).String() == a.String()
	}
	return false
}
