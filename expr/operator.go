package expr

import "fmt"

// Op is the operator of an operator node.
type Op int8

// Operators of the catalogue. NoOp is returned when classifying a token which is
// not an operator.
const (
	NoOp    Op = iota
	NegOp      // unary negation, token "-"
	RecipOp    // unary reciprocal, token "/"
	ExpOp      // exponential function, token "exp"
	LnOp       // natural logarithm, token "ln"
	AddOp      // plenary addition, token "+"
	MulOp      // plenary multiplication, token "*"
)

var opTokens = [...]string{"", "-", "/", "exp", "ln", "+", "*"}
var opNames = [...]string{"NoOp", "Negate", "Reciprocal", "Exp", "Ln", "Add", "Multiply"}

// Classify returns the operator a token denotes, or NoOp.
func Classify(token string) Op {
	switch token {
	case "-":
		return NegOp
	case "/":
		return RecipOp
	case "exp":
		return ExpOp
	case "ln":
		return LnOp
	case "+":
		return AddOp
	case "*":
		return MulOp
	}
	return NoOp
}

// IsUnary is true for negation, reciprocal, exp and ln.
func (op Op) IsUnary() bool {
	return op >= NegOp && op <= LnOp
}

// IsPlenary is true for addition and multiplication.
func (op Op) IsPlenary() bool {
	return op == AddOp || op == MulOp
}

// IsOperator is true for every operator of the catalogue.
func (op Op) IsOperator() bool {
	return op.IsUnary() || op.IsPlenary()
}

// Precedence returns the infix precedence of a plenary operator.
// Asking for the precedence of any other operator is a programming error: unary
// operators are function applications and never compete for operands.
func (op Op) Precedence() int {
	switch op {
	case AddOp:
		return 0
	case MulOp:
		return 1
	}
	panic(fmt.Sprintf("attempt to get precedence of non-plenary operator %s", op.Name()))
}

// IsLeftAssociative is true for all operators of the catalogue.
func (op Op) IsLeftAssociative() bool {
	return op.IsOperator()
}

// Identity returns the neutral element of a plenary operator.
func (op Op) Identity() float64 {
	if op == MulOp {
		return 1
	}
	return 0
}

// String returns the display token of an operator.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opTokens) {
		return "?"
	}
	return opTokens[op]
}

// Name returns a descriptive name for an operator, as used in diagnostics.
func (op Op) Name() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", op)
	}
	return opNames[op]
}
