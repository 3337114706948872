package expr

import (
	"math"
	"strconv"
	"strings"
)

// Canonical rendering is infix notation with redundant parentheses:
//
//   - nested plenary nodes are parenthesized:        ( a + b ) * c
//   - arguments of exp and ln are parenthesized:      exp ( ln ( x ) * 2 )
//   - negation and reciprocal prefix their operand:   a + - b,  a * / b
//
// Operands of plenary nodes appear in canonical order. The rendering is
// accepted by the infix parser.

func (n *Number) String() string { return formatNumber(n.Value) }

func (a *Atom) String() string { return a.Name }

func (u *Unary) String() string { return render(u) }

func (p *Plenary) String() string { return render(p) }

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func render(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Number:
		b.WriteString(formatNumber(x.Value))
	case *Atom:
		b.WriteString(x.Name)
	case *Unary:
		b.WriteString(x.Op.String())
		b.WriteByte(' ')
		_, compound := x.Child.(*Plenary)
		if compound || x.Op == ExpOp || x.Op == LnOp {
			b.WriteString("( ")
			write(b, x.Child)
			b.WriteString(" )")
		} else {
			write(b, x.Child)
		}
	case *Plenary:
		writePlenary(b, x)
	}
}

func writePlenary(b *strings.Builder, p *Plenary) {
	switch len(p.Children) {
	case 0:
		b.WriteString(formatNumber(p.Op.Identity()))
		return
	case 1:
		write(b, p.Children[0])
		return
	}
	forms := make([]string, len(p.Children))
	for i, ch := range p.Children {
		forms[i] = render(ch)
	}
	for i, k := range sortedKeys(p.Children, forms) {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(p.Op.String())
			b.WriteByte(' ')
		}
		if k.node.Kind() == PlenaryKind && len(k.node.(*Plenary).Children) > 1 {
			b.WriteString("( ")
			b.WriteString(k.form)
			b.WriteString(" )")
		} else {
			b.WriteString(k.form)
		}
	}
}
