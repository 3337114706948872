package runtime

import (
	"fmt"

	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// Runtime is the environment of a session: a tree of scopes, with the
// scope of recent definitions on top.
type Runtime struct {
	ScopeTree *ScopeTree  // collect scopes
	UData     interface{} // extension point
}

// NewRuntimeEnvironment constructs a new runtime environment with an empty
// global scope.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	return rt
}

// Define binds a name to an expression in the current scope. Names bound
// earlier are substituted into value first. Define returns the expression
// stored and the one it replaced in the current scope, if any.
func (rt *Runtime) Define(name string, value expr.Node) (expr.Node, expr.Node, error) {
	if name == "" || value == nil {
		return nil, nil, symbo.Malformed("definition needs a name and a value")
	}
	if op := expr.Classify(name); op != expr.NoOp {
		return nil, nil, symbo.Malformed("cannot bind operator %q", name)
	}
	value = expr.Substitute(value, rt.Lookup)
	tag, old := rt.ScopeTree.Current().DefineTag(name)
	tag.Value = value
	tracer().P("scope", rt.ScopeTree.Current().Name).Debugf("%s := %s", name, value)
	if old == nil {
		return value, nil, nil
	}
	return value, old.Value, nil
}

// Lookup resolves a name, starting in the current scope. It has the signature
// expected by expr.Substitute.
func (rt *Runtime) Lookup(name string) (expr.Node, bool) {
	tag, _ := rt.ScopeTree.Current().ResolveTag(name)
	if tag == nil || tag.Value == nil {
		return nil, false
	}
	return tag.Value, true
}

// Substitute replaces every bound name in n by its definition.
func (rt *Runtime) Substitute(n expr.Node) expr.Node {
	return expr.Substitute(n, rt.Lookup)
}

// Bindings returns the numeric values of all names bound to expressions
// which can be evaluated.
func (rt *Runtime) Bindings() expr.Bindings {
	return func(name string) (float64, bool) {
		n, ok := rt.Lookup(name)
		if !ok {
			return 0, false
		}
		v, err := expr.Evaluate(n, nil)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

// Definitions lists the bindings visible from the current scope, inner
// scopes shadowing outer ones, as "name := expression".
func (rt *Runtime) Definitions() []string {
	seen := make(map[string]bool)
	var defs []string
	for sc := rt.ScopeTree.Current(); sc != nil; sc = sc.Parent {
		for _, tag := range sc.Tags().Sorted() {
			if seen[tag.Name()] {
				continue
			}
			seen[tag.Name()] = true
			defs = append(defs, fmt.Sprintf("%s := %s", tag.Name(), tag.Value))
		}
	}
	return defs
}
