package simplify

import (
	"strings"
	"testing"

	"github.com/npillmayer/symbo/expr"
)

func TestRulesAreValues(t *testing.T) {
	r := Default()
	s := r.With(WithDistributeNegative(true))
	if r.DistributeNegative || !s.DistributeNegative {
		t.Errorf("expected With to return a modified copy")
	}
	c := r.ForOperandsOf(expr.AddOp)
	if r.DistributeAddition || !c.DistributeAddition || c.Preference != expr.AddOp {
		t.Errorf("expected operands of addition to distribute, got %s", c)
	}
}

func TestOperandRulesForUnary(t *testing.T) {
	r := All()
	if neg := r.ForOperandsOf(expr.NegOp); neg.DistributeDivision {
		t.Errorf("expected operands of negation not to distribute division")
	}
	if recip := r.ForOperandsOf(expr.RecipOp); recip.DistributeNegative || recip.DistributeAddition {
		t.Errorf("expected operands of reciprocal not to distribute negation or addition")
	}
	if ln := r.ForOperandsOf(expr.LnOp); ln.ExpMode != Condense || ln.DistributeAddition {
		t.Errorf("expected operands of ln to condense exponentials, got %s", ln)
	}
	if e := r.ForOperandsOf(expr.ExpOp); e.LnMode != Condense || e.Preference != expr.AddOp {
		t.Errorf("expected operands of exp to condense logarithms, got %s", e)
	}
}

func TestRuleFlags(t *testing.T) {
	r, err := ParseRuleFlag(Default(), OptDistributeNegative, "on")
	if err != nil || !r.DistributeNegative {
		t.Errorf("expected distribute-negative=on, got %s (%v)", r, err)
	}
	r, err = ParseRuleFlag(r, OptLnMode, "expand")
	if err != nil || r.LnMode != Expand {
		t.Errorf("expected ln-mode=expand, got %s (%v)", r, err)
	}
	r, err = ParseRuleFlag(r, OptPreference, "add")
	if err != nil || r.Preference != expr.AddOp {
		t.Errorf("expected preference=add, got %s (%v)", r, err)
	}
	if _, err = ParseRuleFlag(r, "no-such-option", "on"); err == nil {
		t.Errorf("expected unknown option to be rejected")
	}
	if _, err = ParseRuleFlag(r, OptExpMode, "sideways"); err == nil {
		t.Errorf("expected unknown mode to be rejected")
	}
	s := r.String()
	for _, part := range []string{"distribute-negative=on", "ln-mode=expand", "preference=add", "exp-mode=condense"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected %q in %q", part, s)
		}
	}
}
