package simplify

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symbo/expr"
	"github.com/npillmayer/symbo/infix"
)

func TestUnaryRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	a, b, z := expr.Sym("a"), expr.Sym("b"), expr.Sym("z")
	expExpand := Default(WithExpMode(Expand))
	lnExpand := Default(WithLnMode(Expand))
	inputs := []struct {
		rule   string
		input  string
		rules  Rules
		result expr.Node
	}{
		{"double negation", "- - a", Default(), a},
		{"negate literal", "- 3", Default(), expr.Num(-3)},
		{"distribute negation over sum", "- ( a + b )", Default(WithDistributeNegative(true)),
			expr.Sum(expr.Neg(a), expr.Neg(b))},
		{"no negation over sum", "- ( a + b )", Default(), expr.Neg(expr.Sum(a, b))},
		{"distribute negation over product", "- ( 2 * a )", Default(WithDistributeNegative(true)),
			expr.Product(expr.Num(-2), a)},
		{"move negation into reciprocal", "- / a", Default(WithDistributeNegative(true)),
			expr.Recip(expr.Neg(a))},
		{"keep negation before reciprocal", "- / a", All(), expr.Neg(expr.Recip(a))},
		{"reciprocal of literal", "/ 4", Default(), expr.Num(0.25)},
		{"double reciprocal", "/ / a", Default(), a},
		{"distribute reciprocal over product", "/ ( a * b )", Default(WithDistributeDivision(true)),
			expr.Product(expr.Recip(a), expr.Recip(b))},
		{"no reciprocal over product", "/ ( a * b )", Default(), expr.Recip(expr.Product(a, b))},
		{"move reciprocal into negation", "/ - a", Default(WithDistributeDivision(true)),
			expr.Neg(expr.Recip(a))},
		{"keep reciprocal before negation", "/ - a", Default(), expr.Recip(expr.Neg(a))},
		{"exp of literal", "exp ( 0 )", Default(), expr.Num(1)},
		{"exp of ln", "exp ( ln ( z ) )", Default(), z},
		{"expand exp of negation", "exp ( - a )", expExpand, expr.Recip(expr.Exp(a))},
		{"condense exp of negation", "exp ( - a )", Default(), expr.Exp(expr.Neg(a))},
		{"expand exp of sum", "exp ( a + b )", expExpand, expr.Product(expr.Exp(a), expr.Exp(b))},
		{"condense exp of sum", "exp ( a + b )", Default(), expr.Exp(expr.Sum(a, b))},
		{"ln of literal", "ln ( 1 )", Default(), expr.Num(0)},
		{"ln of non-positive literal", "ln ( - 2 )", Default(), expr.Ln(expr.Num(-2))},
		{"ln of exp", "ln ( exp ( z ) )", All(), z},
		{"expand ln of reciprocal", "ln ( / a )", lnExpand, expr.Neg(expr.Ln(a))},
		{"condense ln of reciprocal", "ln ( / a )", Default(), expr.Ln(expr.Recip(a))},
		{"expand ln of product", "ln ( a * b )", lnExpand, expr.Sum(expr.Ln(a), expr.Ln(b))},
		{"condense ln of product", "ln ( a * b )", Default(), expr.Ln(expr.Product(a, b))},
	}
	for _, input := range inputs {
		s, err := Simplify(infix.MustParse(input.input), input.rules)
		if err != nil {
			t.Errorf("%s: %v", input.rule, err)
			continue
		}
		if s.String() != input.result.String() {
			t.Errorf("%s: expected %q => %q, got %q", input.rule, input.input, input.result, s)
		}
	}
}

func TestExpOverflowStaysSymbolic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.expr")
	defer teardown()
	//
	for _, input := range []string{"exp ( 1000 )", "- exp ( 1000 )"} {
		n := infix.MustParse(input)
		s := MustSimplify(n, All())
		expr.Walk(s, func(m expr.Node, _ int) bool {
			if v, ok := expr.NumberValue(m); ok && v > 1e300 {
				t.Errorf("%q: expected overflowing exp to stay unfolded, got %s", input, s)
			}
			return true
		})
		again, err := infix.Parse(s.String())
		if err != nil {
			t.Fatalf("%q: cannot re-parse %q: %v", input, s, err)
		}
		if eq, _ := Equal(again, n); !eq {
			t.Errorf("%q: expected re-parsed %q to be equal", input, s)
		}
	}
	if s := MustSimplify(infix.MustParse("exp ( 2 )"), Default()); s.Kind() != expr.NumberKind {
		t.Errorf("expected exp ( 2 ) to fold, got %s", s)
	}
}
