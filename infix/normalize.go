package infix

import (
	"github.com/npillmayer/symbo"
	"github.com/npillmayer/symbo/expr"
)

// Normalize rewrites an infix token stream into function form. The resulting
// stream contains only literals, atoms, parentheses, unary function names and
// the plenary operators + and *.
//
// A "-" or "/" without a left operand (at the start, after an operator or after
// an opening parenthesis) is a prefix application. Otherwise the combining
// operator is injected: a - b ⇒ a + - b, a / b ⇒ a * / b.
//
// Exponentiation is right-associative and is always eliminated:
// a ^ b ⇒ exp ( ln a * b ), or exp ( b ) if the base is e.
func Normalize(tokens []string) ([]string, error) {
	if err := checkParens(tokens); err != nil {
		return nil, err
	}
	out := injectCombiningOps(tokens)
	out, err := eliminatePowers(out)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("normalized = %v", out)
	return out, nil
}

func isOperatorToken(t string) bool {
	return t == "^" || expr.Classify(t).IsOperator()
}

func checkParens(tokens []string) error {
	depth := 0
	for i, t := range tokens {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
			if depth < 0 {
				return symbo.Malformed("unbalanced ')' at token %d", i)
			}
		}
	}
	if depth != 0 {
		return symbo.Malformed("%d unclosed '('", depth)
	}
	return nil
}

func injectCombiningOps(tokens []string) []string {
	out := make([]string, 0, len(tokens)+len(tokens)/2)
	for _, t := range tokens {
		if (t == "-" || t == "/") && len(out) > 0 {
			left := out[len(out)-1]
			if left != "(" && !isOperatorToken(left) {
				if t == "-" {
					out = append(out, expr.AddOp.String())
				} else {
					out = append(out, expr.MulOp.String())
				}
			}
		}
		out = append(out, t)
	}
	return out
}

// eliminatePowers replaces the rightmost "^" until none is left.
func eliminatePowers(tokens []string) ([]string, error) {
	for i := lastIndex(tokens, "^"); i >= 0; i = lastIndex(tokens, "^") {
		bs, err := baseStart(tokens, i)
		if err != nil {
			return nil, err
		}
		ee, err := exponentEnd(tokens, i)
		if err != nil {
			return nil, err
		}
		base, exponent := tokens[bs:i], tokens[i+1:ee]
		repl := make([]string, 0, len(base)+len(exponent)+8)
		repl = append(repl, expr.ExpOp.String(), "(")
		if !(len(base) == 1 && base[0] == "e") {
			repl = append(repl, expr.LnOp.String())
			repl = append(repl, base...)
			repl = append(repl, expr.MulOp.String())
		}
		if len(exponent) == 1 {
			repl = append(repl, exponent[0])
		} else {
			repl = append(repl, "(")
			repl = append(repl, exponent...)
			repl = append(repl, ")")
		}
		repl = append(repl, ")")
		tracer().Debugf("%v ^ %v => %v", base, exponent, repl)
		rewritten := make([]string, 0, len(tokens)+len(repl))
		rewritten = append(rewritten, tokens[:bs]...)
		rewritten = append(rewritten, repl...)
		rewritten = append(rewritten, tokens[ee:]...)
		tokens = rewritten
	}
	return tokens, nil
}

func lastIndex(tokens []string, t string) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] == t {
			return i
		}
	}
	return -1
}

// baseStart finds the first token of the base of the "^" at position i.
// A parenthesized base directly preceded by exp or ln includes the function.
func baseStart(tokens []string, i int) (int, error) {
	if i == 0 {
		return 0, symbo.Malformed("missing base for '^'")
	}
	left := tokens[i-1]
	if left == ")" {
		j, err := matchBackward(tokens, i-1)
		if err != nil {
			return 0, err
		}
		if j > 0 {
			if op := expr.Classify(tokens[j-1]); op == expr.ExpOp || op == expr.LnOp {
				j--
			}
		}
		return j, nil
	}
	if left == "(" || isOperatorToken(left) {
		return 0, symbo.Malformed("missing base for '^' at token %d", i)
	}
	return i - 1, nil
}

// exponentEnd finds the position behind the exponent of the "^" at position i.
// The exponent may carry unary prefixes.
func exponentEnd(tokens []string, i int) (int, error) {
	k := i + 1
	for k < len(tokens) && expr.Classify(tokens[k]).IsUnary() {
		k++
	}
	if k >= len(tokens) {
		return 0, symbo.Malformed("missing exponent for '^' at token %d", i)
	}
	switch t := tokens[k]; {
	case t == "(":
		m, err := matchForward(tokens, k)
		if err != nil {
			return 0, err
		}
		return m + 1, nil
	case t == ")" || isOperatorToken(t):
		return 0, symbo.Malformed("missing exponent for '^' at token %d", i)
	}
	return k + 1, nil
}

func matchBackward(tokens []string, close int) (int, error) {
	depth := 0
	for j := close; j >= 0; j-- {
		switch tokens[j] {
		case ")":
			depth++
		case "(":
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, symbo.Malformed("unbalanced ')' at token %d", close)
}

func matchForward(tokens []string, open int) (int, error) {
	depth := 0
	for j := open; j < len(tokens); j++ {
		switch tokens[j] {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, symbo.Malformed("unbalanced '(' at token %d", open)
}
