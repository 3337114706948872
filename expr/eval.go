package expr

import (
	"fmt"
	"math"

	"github.com/npillmayer/symbo"
)

// Bindings resolves atoms to numeric values during evaluation.
type Bindings func(name string) (float64, bool)

// Evaluate computes the numeric value of a tree. Every atom of the tree has to be
// bound by env (env may be nil for trees without atoms). The reciprocal of zero
// is reported as symbo.ErrDivisionByZero.
func Evaluate(n Node, env Bindings) (float64, error) {
	switch x := n.(type) {
	case *Number:
		return x.Value, nil
	case *Atom:
		if env != nil {
			if v, ok := env(x.Name); ok {
				return v, nil
			}
		}
		return 0, fmt.Errorf("cannot evaluate unbound atom %q", x.Name)
	case *Unary:
		v, err := Evaluate(x.Child, env)
		if err != nil {
			return 0, err
		}
		switch x.Op {
		case NegOp:
			return -v, nil
		case RecipOp:
			if v == 0 {
				return 0, fmt.Errorf("%w: / %s", symbo.ErrDivisionByZero, x.Child)
			}
			return 1 / v, nil
		case ExpOp:
			return math.Exp(v), nil
		case LnOp:
			return math.Log(v), nil
		}
	case *Plenary:
		acc := x.Op.Identity()
		for _, ch := range x.Children {
			v, err := Evaluate(ch, env)
			if err != nil {
				return 0, err
			}
			if x.Op == AddOp {
				acc += v
			} else {
				acc *= v
			}
		}
		return acc, nil
	}
	return 0, fmt.Errorf("cannot evaluate node %v", n)
}

// Substitute replaces atoms by trees. Atoms for which lookup reports false are
// kept. Substituted trees are copied, and plenary nodes are flattened again.
func Substitute(n Node, lookup func(name string) (Node, bool)) Node {
	switch x := n.(type) {
	case *Atom:
		if r, ok := lookup(x.Name); ok && r != nil {
			tracer().Debugf("substituting %s := %s", x.Name, r)
			return Copy(r)
		}
		return Copy(x)
	case *Unary:
		return &Unary{Op: x.Op, Child: Substitute(x.Child, lookup)}
	case *Plenary:
		ch := make([]Node, len(x.Children))
		for i, c := range x.Children {
			ch[i] = Substitute(c, lookup)
		}
		return NewPlenary(x.Op, ch...)
	}
	return Copy(n)
}
