package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symbo/expr"
	"github.com/npillmayer/symbo/expr/simplify"
	"github.com/npillmayer/symbo/runtime"
)

func TestRuleOptions(t *testing.T) {
	rules, err := applyRuleOptions(simplify.Default(), "distribute-negative=on, ln-mode=expand")
	if err != nil {
		t.Fatal(err)
	}
	if !rules.DistributeNegative || rules.LnMode != simplify.Expand {
		t.Errorf("expected rule options to be applied, got %s", rules)
	}
	if _, err = applyRuleOptions(rules, "distribute-negative"); err == nil {
		t.Errorf("expected option without value to be rejected")
	}
}

func TestSplitLine(t *testing.T) {
	if cmd, args := splitCommand(":eq a + b ; b + a"); cmd != "eq" || args != "a + b ; b + a" {
		t.Errorf("unexpected split %q / %q", cmd, args)
	}
	if cmd, _ := splitCommand("a + b"); cmd != "" {
		t.Errorf("expected expression not to be a command")
	}
	if name, value, ok := splitDefinition("x := y + 1"); !ok || name != "x" || value != "y + 1" {
		t.Errorf("unexpected definition %q := %q", name, value)
	}
}

func TestSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.parse")
	defer teardown()
	//
	intp := &Intp{rules: simplify.Default(), rt: runtime.NewRuntimeEnvironment()}
	for _, line := range []string{
		"y := 2",
		":let x = y * 3",
		":set distribute-negative on",
		"- ( x + z )",
		":eq a + b ; b + a",
		":tree 2 * ( a - b )",
		":postfix a - b",
		":eval x + 1",
		":defs",
	} {
		if err := intp.Eval(line); err != nil {
			t.Errorf("line %q: %v", line, err)
		}
	}
	v, ok := intp.rt.Lookup("x")
	if n, isNum := expr.NumberValue(v); !ok || !isNum || n != 6 {
		t.Errorf("expected x = 6, got %v", v)
	}
	if !intp.rules.DistributeNegative {
		t.Errorf("expected :set to change the rules")
	}
	for _, line := range []string{":nope", "( a", ":set ln-mode sideways", "exp := 1", ":eval q"} {
		if err := intp.Eval(line); err == nil {
			t.Errorf("expected line %q to fail", line)
		}
	}
	if err := intp.Eval(":quit"); err != errQuit {
		t.Errorf("expected :quit to end the session, got %v", err)
	}
}
