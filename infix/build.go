package infix

import (
	"strconv"

	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// OperandSpans locates the two operands of the plenary operator ending a
// postfix token stream. The spans are half-open token ranges, arg1 covering
// the first operand and arg2 the second one.
//
// Scanning backwards, every token fills one pending slot while unary operators
// open one and plenary operators open two new slots. An operand is complete
// as soon as no slots are pending.
func OperandSpans(tokens []string) (arg1, arg2 symbo.Span, err error) {
	n := len(tokens)
	if n == 0 || !expr.Classify(tokens[n-1]).IsPlenary() {
		return arg1, arg2, symbo.Malformed("postfix %v does not end with a plenary operator", tokens)
	}
	s2, err := operandStart(tokens, n-1)
	if err != nil {
		return arg1, arg2, err
	}
	s1, err := operandStart(tokens, s2)
	if err != nil {
		return arg1, arg2, err
	}
	if s1 != 0 {
		return arg1, arg2, symbo.Malformed("surplus operands in %v", tokens[:s1])
	}
	arg1 = symbo.Span{uint64(s1), uint64(s2)}
	arg2 = symbo.Span{uint64(s2), uint64(n - 1)}
	return arg1, arg2, nil
}

// operandStart finds the start of the operand ending before position end.
func operandStart(tokens []string, end int) (int, error) {
	pending := 1
	for i := end - 1; i >= 0; i-- {
		pending--
		switch op := expr.Classify(tokens[i]); {
		case op.IsUnary():
			pending++
		case op.IsPlenary():
			pending += 2
		}
		if pending == 0 {
			return i, nil
		}
	}
	return 0, symbo.Malformed("missing operand in %v", tokens[:end])
}

// BuildFromPostfix reconstructs an expression tree from a postfix token
// stream. Nested sums and products are flattened on construction.
func BuildFromPostfix(tokens []string) (expr.Node, error) {
	n := len(tokens)
	if n == 0 {
		return nil, symbo.Malformed("empty operand")
	}
	last := tokens[n-1]
	switch op := expr.Classify(last); {
	case op.IsUnary():
		child, err := BuildFromPostfix(tokens[:n-1])
		if err != nil {
			return nil, err
		}
		u, err := expr.NewUnary(op, child)
		if err != nil {
			return nil, err
		}
		return u, nil
	case op.IsPlenary():
		arg1, arg2, err := OperandSpans(tokens)
		if err != nil {
			return nil, err
		}
		left, err := BuildFromPostfix(tokens[arg1.From():arg1.To()])
		if err != nil {
			return nil, err
		}
		right, err := BuildFromPostfix(tokens[arg2.From():arg2.To()])
		if err != nil {
			return nil, err
		}
		return expr.NewPlenary(op, left, right), nil
	}
	if n > 1 {
		return nil, symbo.Malformed("surplus operands in %v", tokens)
	}
	if isNumber(last) {
		v, err := strconv.ParseFloat(last, 64)
		if err != nil {
			return nil, symbo.Malformed("illegal number %q: %v", last, err)
		}
		return expr.Num(v), nil
	}
	if last == "(" || last == ")" || last == "^" || last == "" {
		return nil, symbo.Malformed("unexpected token %q", last)
	}
	return expr.Sym(last), nil
}
