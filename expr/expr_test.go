package expr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symbo"
)

func TestOperatorCatalogue(t *testing.T) {
	for _, token := range []string{"-", "/", "exp", "ln"} {
		if op := Classify(token); !op.IsUnary() || op.IsPlenary() || op.String() != token {
			t.Errorf("expected %q to denote a unary operator, is %s", token, op.Name())
		}
	}
	for _, token := range []string{"+", "*"} {
		if op := Classify(token); !op.IsPlenary() || op.IsUnary() || !op.IsLeftAssociative() {
			t.Errorf("expected %q to denote a plenary operator, is %s", token, op.Name())
		}
	}
	if Classify("x") != NoOp || Classify("(") != NoOp {
		t.Errorf("expected operands and parentheses to classify as NoOp")
	}
	if AddOp.Precedence() >= MulOp.Precedence() {
		t.Errorf("expected multiplication to bind tighter than addition")
	}
	if AddOp.Identity() != 0 || MulOp.Identity() != 1 {
		t.Errorf("unexpected identity elements")
	}
}

func TestPrecedenceOfUnary(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected precedence of negation to panic")
		}
	}()
	NegOp.Precedence()
}

func TestNewUnaryArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	a, b := Sym("a"), Sym("b")
	if _, err := NewUnary(NegOp); !errors.Is(err, symbo.ErrMalformedExpression) {
		t.Errorf("expected negation without operand to be malformed, got %v", err)
	}
	if _, err := NewUnary(NegOp, a, b); !errors.Is(err, symbo.ErrMalformedExpression) {
		t.Errorf("expected negation with two operands to be malformed, got %v", err)
	}
	if _, err := NewUnary(AddOp, a); !errors.Is(err, symbo.ErrMalformedExpression) {
		t.Errorf("expected addition to be rejected as unary operator, got %v", err)
	}
	u, err := NewUnary(LnOp, a)
	if err != nil || u.Op != LnOp || u.Child != Node(a) {
		t.Errorf("expected ln(a), got %v, %v", u, err)
	}
}

func TestFlattening(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	a, b, c := Sym("a"), Sym("b"), Sym("c")
	s := Sum(a, Sum(b, c))
	if len(s.Children) != 3 {
		t.Errorf("expected a + (b + c) to flatten into 3 terms, has %d", len(s.Children))
	}
	p := Product(a, Sum(b, c))
	if len(p.Children) != 2 {
		t.Errorf("expected a * (b + c) to keep 2 factors, has %d", len(p.Children))
	}
	nested := &Plenary{Op: AddOp, Children: []Node{a, &Plenary{Op: AddOp, Children: []Node{b, c}}}}
	if IsFlat(nested) {
		t.Errorf("expected nested sum to be detected as not flat")
	}
	if flat := Flatten(Neg(nested)); !IsFlat(flat) || Size(flat) != 5 {
		t.Errorf("expected - (a + b + c) with 5 nodes, got %s", flat)
	}
}

func TestCanonicalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	a := Sym("a")
	ordered := []Node{Sum(a, Int(1)), Neg(a), Int(2), Int(3), a}
	for i := 0; i < len(ordered)-1; i++ {
		if Compare(ordered[i], ordered[i+1]) >= 0 {
			t.Errorf("expected %s < %s", ordered[i], ordered[i+1])
		}
		if Compare(ordered[i+1], ordered[i]) <= 0 {
			t.Errorf("expected %s > %s", ordered[i+1], ordered[i])
		}
	}
	if Compare(Sym("x"), Sym("x")) != 0 {
		t.Errorf("expected identical atoms to compare equal")
	}
	x, y, z := Sym("x"), Sym("y"), Sym("z")
	first := Sorted([]Node{x, y, z})
	second := Sorted([]Node{z, x, y})
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Errorf("expected sort order independent of input order, got %v vs %v", first, second)
		}
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	a, x := Sym("a"), Sym("x")
	inputs := []struct {
		node Node
		form string
	}{
		{Num(2.5), "2.5"},
		{Num(-8), "-8"},
		{Num(-0.0), "0"},
		{Sum(a, Int(1)), "1 + a"},
		{Product(Sum(a, Int(1)), Int(2)), "( 1 + a ) * 2"},
		{Neg(Sum(x, Int(1))), "- ( 1 + x )"},
		{Recip(x), "/ x"},
		{Exp(x), "exp ( x )"},
		{Exp(Product(Ln(x), Int(2))), "exp ( ln ( x ) * 2 )"},
		{Sum(), "0"},
		{Product(), "1"},
		{Product(x), "x"},
	}
	for i, input := range inputs {
		if s := input.node.String(); s != input.form {
			t.Errorf("test %d: expected %q, got %q", i, input.form, s)
		}
	}
	if Sum(a, x).String() != Sum(x, a).String() {
		t.Errorf("expected rendering to be independent of operand order")
	}
	if !bytes.Equal(StructuralHash(Product(a, x)), StructuralHash(Product(x, a))) {
		t.Errorf("expected structural hash to be independent of operand order")
	}
}

func TestCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	n := Product(Int(2), Sum(Sym("b"), Sym("a")))
	c := Canonical(n).(*Plenary)
	if c.Children[0].Kind() != PlenaryKind {
		t.Errorf("expected sum to be the first factor of %s", c)
	}
	if c.String() != n.String() {
		t.Errorf("expected canonical copy to render like the original")
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	n := Sum(Neg(Sym("a")), Product(Int(2), Sym("b")))
	var depths []int
	Walk(n, func(_ Node, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	expected := []int{0, 1, 2, 1, 2, 2}
	if len(depths) != len(expected) {
		t.Fatalf("expected %d nodes, walked %d", len(expected), len(depths))
	}
	for i := range expected {
		if depths[i] != expected[i] {
			t.Errorf("expected depths %v, got %v", expected, depths)
			break
		}
	}
	count := 0
	Walk(n, func(m Node, _ int) bool {
		count++
		return m == Node(n)
	})
	if count != 3 {
		t.Errorf("expected pruned walk to visit 3 nodes, visited %d", count)
	}
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	x := Sym("x")
	env := func(name string) (float64, bool) {
		if name == "x" {
			return 3, true
		}
		return 0, false
	}
	// 2*x + 1 - /x
	n := Sum(Product(Int(2), x), Int(1), Neg(Recip(x)))
	v, err := Evaluate(n, env)
	if err != nil {
		t.Fatal(err)
	}
	if v < 6.66 || v > 6.67 {
		t.Errorf("expected 2*3 + 1 - 1/3, got %g", v)
	}
	if _, err = Evaluate(Recip(Sum(x, Int(-3))), env); !errors.Is(err, symbo.ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
	if _, err = Evaluate(Sym("y"), env); err == nil {
		t.Errorf("expected unbound atom to be reported")
	}
	if v, _ = Evaluate(Exp(Ln(Int(5))), nil); v < 4.999 || v > 5.001 {
		t.Errorf("expected exp(ln 5) = 5, got %g", v)
	}
}

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	x, y := Sym("x"), Sym("y")
	n := Sum(x, Int(1), Neg(x))
	s := Substitute(n, func(name string) (Node, bool) {
		if name == "x" {
			return Sum(y, Int(2)), true
		}
		return nil, false
	})
	p, ok := s.(*Plenary)
	if !ok || len(p.Children) != 4 || !IsFlat(s) {
		t.Errorf("expected flat sum of 4 terms, got %s", s)
	}
	if len(n.Children) != 3 || n.Children[0] != Node(x) {
		t.Errorf("expected original tree to be unchanged, is %s", n)
	}
}

func TestNumericPredicates(t *testing.T) {
	if !Int(-4).IsInteger() || Num(2.5).IsInteger() {
		t.Errorf("unexpected integer classification")
	}
	if !IsLeaf(Int(1)) || !IsLeaf(Sym("x")) || IsLeaf(Neg(Sym("x"))) || IsLeaf(Sum()) {
		t.Errorf("unexpected leaf classification")
	}
}
