package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/symbo"
)

// Kind discriminates the node variants.
type Kind int8

// Node kinds
const (
	NumberKind Kind = iota
	AtomKind
	UnaryKind
	PlenaryKind
)

// Node is an expression tree node. The set of implementations is closed:
// *Number, *Atom, *Unary and *Plenary. Clients switch on the concrete type.
//
// Nodes must be treated as immutable once they are part of a tree.
type Node interface {
	Kind() Kind
	String() string // canonical rendering
	isNode()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Atom is a symbolic name, i.e. a variable.
type Atom struct {
	Name string
}

// Unary is an operator node with exactly one operand.
type Unary struct {
	Op    Op
	Child Node
}

// Plenary is an addition or multiplication of any number of operands.
type Plenary struct {
	Op       Op
	Children []Node
}

func (*Number) isNode()  {}
func (*Atom) isNode()    {}
func (*Unary) isNode()   {}
func (*Plenary) isNode() {}

func (*Number) Kind() Kind  { return NumberKind }
func (*Atom) Kind() Kind    { return AtomKind }
func (*Unary) Kind() Kind   { return UnaryKind }
func (*Plenary) Kind() Kind { return PlenaryKind }

// --- Constructors ----------------------------------------------------------

// Num creates a numeric literal.
func Num(v float64) *Number {
	if v == 0 {
		v = 0 // no negative zero
	}
	return &Number{Value: v}
}

// Int creates an integer-valued literal.
func Int(n int64) *Number {
	return &Number{Value: float64(n)}
}

// Sym creates an atom.
func Sym(name string) *Atom {
	return &Atom{Name: name}
}

// NewUnary creates a unary operator node. It is an error to pass a non-unary
// operator or a number of operands other than one.
func NewUnary(op Op, children ...Node) (*Unary, error) {
	if !op.IsUnary() {
		return nil, symbo.Malformed("%s is not a unary operator", op.Name())
	}
	if len(children) != 1 || children[0] == nil {
		return nil, symbo.Malformed("unary operator %s needs exactly one operand, has %d",
			op.Name(), len(children))
	}
	return &Unary{Op: op, Child: children[0]}, nil
}

// MakeUnary creates a unary node for one of the unary operators of the catalogue.
// It panics if op is not unary; use NewUnary for unchecked input.
func MakeUnary(op Op, child Node) *Unary {
	u, err := NewUnary(op, child)
	if err != nil {
		panic(err.Error())
	}
	return u
}

// Neg creates (- x).
func Neg(x Node) *Unary { return MakeUnary(NegOp, x) }

// Recip creates (/ x).
func Recip(x Node) *Unary { return MakeUnary(RecipOp, x) }

// Exp creates exp(x).
func Exp(x Node) *Unary { return MakeUnary(ExpOp, x) }

// Ln creates ln(x).
func Ln(x Node) *Unary { return MakeUnary(LnOp, x) }

// NewPlenary creates a plenary operator node. Operands which are plenary nodes of
// the same operator are merged into the operand list. The argument slice is
// not retained.
func NewPlenary(op Op, children ...Node) *Plenary {
	if !op.IsPlenary() {
		panic("attempt to create plenary node for operator " + op.Name())
	}
	return &Plenary{Op: op, Children: flatten(op, make([]Node, 0, len(children)), children)}
}

// Sum creates (a + b + …).
func Sum(children ...Node) *Plenary { return NewPlenary(AddOp, children...) }

// Product creates (a * b * …).
func Product(children ...Node) *Plenary { return NewPlenary(MulOp, children...) }

func flatten(op Op, into []Node, children []Node) []Node {
	for _, ch := range children {
		if p, ok := ch.(*Plenary); ok && p.Op == op {
			into = flatten(op, into, p.Children)
			continue
		}
		into = append(into, ch)
	}
	return into
}

// Flatten re-establishes the flattening invariant for a tree, returning a new tree
// in which no plenary node has a direct child of the same operator.
func Flatten(n Node) Node {
	switch x := n.(type) {
	case *Unary:
		return &Unary{Op: x.Op, Child: Flatten(x.Child)}
	case *Plenary:
		ch := make([]Node, len(x.Children))
		for i, c := range x.Children {
			ch[i] = Flatten(c)
		}
		return NewPlenary(x.Op, ch...)
	}
	return n
}

// --- Structural operations -------------------------------------------------

// Children returns a copy of the operand list of a node. Leaves have no children.
func Children(n Node) []Node {
	switch x := n.(type) {
	case *Unary:
		return []Node{x.Child}
	case *Plenary:
		ch := make([]Node, len(x.Children))
		copy(ch, x.Children)
		return ch
	}
	return nil
}

// OpOf returns the operator of an operator node, NoOp for leaves.
func OpOf(n Node) Op {
	switch x := n.(type) {
	case *Unary:
		return x.Op
	case *Plenary:
		return x.Op
	}
	return NoOp
}

// Is checks if n is an operator node for op.
func Is(n Node, op Op) bool {
	return n != nil && OpOf(n) == op
}

// Copy deep-copies a tree.
func Copy(n Node) Node {
	switch x := n.(type) {
	case *Number:
		return &Number{Value: x.Value}
	case *Atom:
		return &Atom{Name: x.Name}
	case *Unary:
		return &Unary{Op: x.Op, Child: Copy(x.Child)}
	case *Plenary:
		ch := make([]Node, len(x.Children))
		for i, c := range x.Children {
			ch[i] = Copy(c)
		}
		return &Plenary{Op: x.Op, Children: ch}
	}
	return nil
}

// Size counts the nodes of a tree.
func Size(n Node) int {
	size := 0
	Walk(n, func(Node, int) bool {
		size++
		return true
	})
	return size
}

// --- Numeric properties ----------------------------------------------------

// NumberValue returns the value of a numeric literal.
func NumberValue(n Node) (float64, bool) {
	if num, ok := n.(*Number); ok {
		return num.Value, true
	}
	return 0, false
}

// IsZero is true for a literal of value 0. Atoms are never zero.
func IsZero(n Node) bool {
	v, ok := NumberValue(n)
	return ok && v == 0
}

// IsOne is true for a literal of value 1. Atoms are never one.
func IsOne(n Node) bool {
	v, ok := NumberValue(n)
	return ok && v == 1
}

// IsInteger is true if a literal has an integral value.
func (n *Number) IsInteger() bool {
	return !math.IsInf(n.Value, 0) && n.Value == math.Trunc(n.Value)
}

// IsLeaf is true for literals and atoms.
func IsLeaf(n Node) bool {
	k := n.Kind()
	return k == NumberKind || k == AtomKind
}
