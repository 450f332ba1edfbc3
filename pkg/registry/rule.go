package registry

import (
	"fmt"
	"strings"

	"github.com/polisai/measure/pkg/number"
)

// RuleKind distinguishes purely multiplicative rules from affine ones.
type RuleKind int

const (
	KindMultiplicative RuleKind = iota
	KindAffine
)

func (k RuleKind) String() string {
	if k == KindAffine {
		return "affine"
	}
	return "multiplicative"
}

// Rule maps a unit onto the base unit of its dimension:
//
//	value_in_base = (value + Offset) * Factor / Divisor
//
// Factor/Divisor keep ratios such as 5/9 exact. Offset is zero for
// multiplicative rules.
type Rule struct {
	Kind    RuleKind
	Factor  number.Number
	Divisor number.Number
	Offset  number.Number
}

// Identity is the rule of a base unit.
func Identity() Rule {
	return Rule{Kind: KindMultiplicative, Factor: number.One(), Divisor: number.One(), Offset: number.Zero()}
}

// Factor returns a multiplicative rule for a decimal literal. It panics on an
// invalid literal and is meant for static tables.
func Factor(factor string) Rule {
	return Ratio(factor, "1")
}

// Ratio returns a multiplicative rule num/den for static tables.
func Ratio(num, den string) Rule {
	return Rule{Kind: KindMultiplicative, Factor: number.MustParse(num), Divisor: number.MustParse(den), Offset: number.Zero()}
}

// Affine returns (value + offset) * num/den for static tables.
func Affine(offset, num, den string) Rule {
	return Rule{Kind: KindAffine, Factor: number.MustParse(num), Divisor: number.MustParse(den), Offset: number.MustParse(offset)}
}

// ParseRule reads a factor literal ("0.3048" or "5/9") and an optional offset
// literal. A non-empty, non-zero offset makes the rule affine.
func ParseRule(factor, offset string) (Rule, error) {
	num, den := strings.TrimSpace(factor), "1"
	if i := strings.Index(num, "/"); i >= 0 {
		num, den = strings.TrimSpace(num[:i]), strings.TrimSpace(num[i+1:])
	}
	f, err := number.Parse(num)
	if err != nil {
		return Rule{}, fmt.Errorf("registry: factor %q: %w", factor, err)
	}
	d, err := number.Parse(den)
	if err != nil {
		return Rule{}, fmt.Errorf("registry: factor %q: %w", factor, err)
	}
	if d.IsZero() {
		return Rule{}, fmt.Errorf("registry: factor %q has a zero denominator", factor)
	}

	rule := Rule{Kind: KindMultiplicative, Factor: f, Divisor: d, Offset: number.Zero()}
	if strings.TrimSpace(offset) != "" {
		off, err := number.Parse(offset)
		if err != nil {
			return Rule{}, fmt.Errorf("registry: offset %q: %w", offset, err)
		}
		if !off.IsZero() {
			rule.Kind = KindAffine
			rule.Offset = off
		}
	}
	return rule, nil
}

// IsIdentity reports whether the rule maps values onto themselves.
func (r Rule) IsIdentity() bool {
	return r.Factor != nil && r.Divisor != nil &&
		r.Factor.Cmp(r.Divisor) == 0 &&
		(r.Offset == nil || r.Offset.IsZero())
}

func (r Rule) validate() error {
	if r.Factor == nil || r.Divisor == nil {
		return fmt.Errorf("factor and divisor are required")
	}
	if r.Divisor.IsZero() {
		return fmt.Errorf("divisor is zero")
	}
	if r.Kind == KindAffine && r.Offset == nil {
		return fmt.Errorf("affine rule without offset")
	}
	return nil
}

func (r Rule) String() string {
	ratio := r.Factor.String()
	if r.Divisor.Cmp(number.One()) != 0 {
		ratio += "/" + r.Divisor.String()
	}
	if r.Kind == KindAffine {
		return fmt.Sprintf("(x + %s) * %s", r.Offset, ratio)
	}
	return "x * " + ratio
}
