package infix

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// ToPostfix converts a normalized infix token stream into postfix order, using
// the shunting-yard algorithm.
//
// Unary operators are function applications: they bind to the operand directly
// following them. They are popped whenever a plenary operator arrives, and
// after the closing parenthesis of their argument list.
func ToPostfix(tokens []string) ([]string, error) {
	output := arraylist.New()
	ops := arraystack.New()
	for i, t := range tokens {
		op := expr.Classify(t)
		switch {
		case t == "(":
			ops.Push(t)
		case t == ")":
			if !popUntilOpen(ops, output) {
				return nil, symbo.Malformed("unbalanced ')' at token %d", i)
			}
			if top, ok := ops.Peek(); ok && expr.Classify(top.(string)).IsUnary() {
				ops.Pop()
				output.Add(top)
			}
		case op.IsUnary():
			ops.Push(t)
		case op.IsPlenary():
			for {
				top, ok := ops.Peek()
				if !ok || top == "(" || !yields(expr.Classify(top.(string)), op) {
					break
				}
				ops.Pop()
				output.Add(top)
			}
			ops.Push(t)
		case t == "^":
			return nil, symbo.Malformed("exponentiation left in normalized input at token %d", i)
		default: // number or atom
			output.Add(t)
		}
	}
	for !ops.Empty() {
		top, _ := ops.Pop()
		if top == "(" {
			return nil, symbo.Malformed("unbalanced '('")
		}
		output.Add(top)
	}
	postfix := make([]string, output.Size())
	for i, v := range output.Values() {
		postfix[i] = v.(string)
	}
	tracer().Debugf("postfix = %v", postfix)
	return postfix, nil
}

// yields is true if an operator on the stack has to be emitted before
// incoming operator op is pushed.
func yields(top, op expr.Op) bool {
	if top.IsUnary() {
		return true
	}
	if op.IsLeftAssociative() {
		return top.Precedence() >= op.Precedence()
	}
	return top.Precedence() > op.Precedence()
}

// popUntilOpen moves operators to the output up to the nearest "(", which
// is discarded. It returns false if there is no "(" on the stack.
func popUntilOpen(ops *arraystack.Stack, output *arraylist.List) bool {
	for !ops.Empty() {
		top, _ := ops.Pop()
		if top == "(" {
			return true
		}
		output.Add(top)
	}
	return false
}
