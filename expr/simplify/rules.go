package simplify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/symbo/expr"
)

// Mode selects between condensing and expanding exp/ln identities.
type Mode int8

// Modes for exp and ln identities.
const (
	Condense Mode = iota // keep exp(a+b), ln(a*b) as they are
	Expand               // split exp(a+b) into exp(a)*exp(b), ln(a*b) into ln(a)+ln(b)
)

func (m Mode) String() string {
	if m == Expand {
		return "expand"
	}
	return "condense"
}

// Rules is a rule configuration. It is a value type: operations on a Rules value
// return a modified copy and never alter the receiver.
type Rules struct {
	DistributeNegative           bool    // -(a+b) = -a + -b, else keep the negation as factor
	DistributeDivision           bool    // /(a*b) = /a * /b, else keep the reciprocal as factor
	DistributeAddition           bool    // a*(b+c) = a*b + a*c, else keep the sum as factor
	PreferRepeatedMultiplication bool    // keep n*a rather than converting to a + a + …
	Preference                   expr.Op // AddOp or MulOp
	ExpMode                      Mode
	LnMode                       Mode
}

// Option modifies a rule configuration.
type Option func(*Rules)

// Default is the configuration without any distribution or expansion.
func Default(opts ...Option) Rules {
	r := Rules{
		PreferRepeatedMultiplication: true,
		Preference:                   expr.MulOp,
		ExpMode:                      Condense,
		LnMode:                       Condense,
	}
	return r.With(opts...)
}

// All is the configuration with every distribution and expansion enabled.
// Equality and hashing use it.
func All(opts ...Option) Rules {
	r := Rules{
		DistributeNegative:           true,
		DistributeDivision:           true,
		DistributeAddition:           true,
		PreferRepeatedMultiplication: true,
		Preference:                   expr.MulOp,
		ExpMode:                      Expand,
		LnMode:                       Expand,
	}
	return r.With(opts...)
}

// With returns a copy of r with options applied.
func (r Rules) With(opts ...Option) Rules {
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithDistributeNegative sets or clears negation distribution.
func WithDistributeNegative(b bool) Option {
	return func(r *Rules) { r.DistributeNegative = b }
}

// WithDistributeDivision sets or clears reciprocal distribution.
func WithDistributeDivision(b bool) Option {
	return func(r *Rules) { r.DistributeDivision = b }
}

// WithDistributeAddition sets or clears distribution of products over sums.
func WithDistributeAddition(b bool) Option {
	return func(r *Rules) { r.DistributeAddition = b }
}

// WithPreferRepeatedMultiplication controls conversion of n*a to a repeated sum.
func WithPreferRepeatedMultiplication(b bool) Option {
	return func(r *Rules) { r.PreferRepeatedMultiplication = b }
}

// WithPreference sets the preferred plenary operator. Operators other than
// AddOp and MulOp are ignored.
func WithPreference(op expr.Op) Option {
	return func(r *Rules) {
		if op.IsPlenary() {
			r.Preference = op
		}
	}
}

// WithExpMode sets the mode for exponential identities.
func WithExpMode(m Mode) Option {
	return func(r *Rules) { r.ExpMode = m }
}

// WithLnMode sets the mode for logarithm identities.
func WithLnMode(m Mode) Option {
	return func(r *Rules) { r.LnMode = m }
}

// ForOperandsOf derives the configuration under which the operands of an
// operator node are simplified. The derivation is a pure function of r.
//
// Negation and reciprocal toggle each other's distribution for their operands,
// which prevents -(/a) and /(-a) from being rewritten into each other forever.
func (r Rules) ForOperandsOf(op expr.Op) Rules {
	switch op {
	case expr.NegOp:
		r.DistributeDivision = !r.DistributeNegative
	case expr.RecipOp:
		r.DistributeNegative = !r.DistributeDivision
		r.DistributeAddition = false
		r.Preference = expr.MulOp
		r.ExpMode = Condense
		r.LnMode = Condense
	case expr.ExpOp:
		r.DistributeNegative = true
		r.DistributeDivision = true
		r.DistributeAddition = true
		r.Preference = expr.AddOp
		r.LnMode = Condense
	case expr.LnOp:
		r.DistributeNegative = true
		r.DistributeDivision = false
		r.DistributeAddition = false
		r.Preference = expr.MulOp
		r.ExpMode = Condense
	case expr.AddOp:
		r.DistributeNegative = true
		r.DistributeDivision = true
		r.DistributeAddition = true
		r.Preference = expr.AddOp
		r.LnMode = Expand
	case expr.MulOp:
		r.DistributeNegative = true
		r.DistributeDivision = true
		r.DistributeAddition = false
		r.Preference = expr.MulOp
		r.ExpMode = Expand
	}
	return r
}

// --- Textual form ----------------------------------------------------------

// Names of rule options, as accepted by ParseRuleFlag.
const (
	OptDistributeNegative           = "distribute-negative"
	OptDistributeDivision           = "distribute-division"
	OptDistributeAddition           = "distribute-addition"
	OptPreferRepeatedMultiplication = "prefer-repeated-multiplication"
	OptPreference                   = "preference"
	OptExpMode                      = "exp-mode"
	OptLnMode                       = "ln-mode"
)

func onoff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (r Rules) String() string {
	pref := "multiply"
	if r.Preference == expr.AddOp {
		pref = "add"
	}
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		OptDistributeNegative, onoff(r.DistributeNegative),
		OptDistributeDivision, onoff(r.DistributeDivision),
		OptDistributeAddition, onoff(r.DistributeAddition),
		OptPreferRepeatedMultiplication, onoff(r.PreferRepeatedMultiplication),
		OptPreference, pref,
		OptExpMode, r.ExpMode,
		OptLnMode, r.LnMode)
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(value)
}

func parseMode(value string) (Mode, error) {
	switch strings.ToLower(value) {
	case "condense":
		return Condense, nil
	case "expand":
		return Expand, nil
	}
	return Condense, fmt.Errorf("unknown mode %q, expected condense or expand", value)
}

// ParseRuleFlag returns a copy of r with a single named option set from its
// textual value, e.g. ("distribute-negative", "on") or ("ln-mode", "expand").
func ParseRuleFlag(r Rules, name, value string) (Rules, error) {
	var err error
	var b bool
	var m Mode
	switch strings.ToLower(name) {
	case OptDistributeNegative:
		if b, err = parseBool(value); err == nil {
			r.DistributeNegative = b
		}
	case OptDistributeDivision:
		if b, err = parseBool(value); err == nil {
			r.DistributeDivision = b
		}
	case OptDistributeAddition:
		if b, err = parseBool(value); err == nil {
			r.DistributeAddition = b
		}
	case OptPreferRepeatedMultiplication:
		if b, err = parseBool(value); err == nil {
			r.PreferRepeatedMultiplication = b
		}
	case OptPreference:
		switch strings.ToLower(value) {
		case "add", "+":
			r.Preference = expr.AddOp
		case "multiply", "mult", "*":
			r.Preference = expr.MulOp
		default:
			err = fmt.Errorf("unknown preference %q, expected add or multiply", value)
		}
	case OptExpMode:
		if m, err = parseMode(value); err == nil {
			r.ExpMode = m
		}
	case OptLnMode:
		if m, err = parseMode(value); err == nil {
			r.LnMode = m
		}
	default:
		err = fmt.Errorf("unknown rule option %q", name)
	}
	return r, err
}
