// Package convert performs precision-controlled unit conversions.
//
// A conversion is computed as one exact fraction and divided once at the
// requested scale, so rounding happens exactly once regardless of how many
// rules are involved.
package convert

import (
	"context"
	"time"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
	"github.com/polisai/measure/pkg/quantity"
	"github.com/polisai/measure/pkg/registry"
	"github.com/polisai/measure/pkg/telemetry"
)

// RuleSource resolves conversion rules. *registry.Registry satisfies it.
type RuleSource interface {
	Rule(unit domain.Unit) (registry.Rule, error)
}

// Converter converts values between units of the same dimension.
type Converter struct {
	rules      RuleSource
	instrument bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithInstrumentation records OpenTelemetry metrics for every conversion.
func WithInstrumentation() Option {
	return func(c *Converter) {
		c.instrument = true
	}
}

// NewConverter returns a converter reading rules from rules.
func NewConverter(rules RuleSource, opts ...Option) *Converter {
	c := &Converter{rules: rules}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert re-expresses value, given in from, in the unit to. Same-unit
// conversions return value unchanged.
func (c *Converter) Convert(value number.Number, from, to domain.Unit, scale int32, mode number.RoundingMode) (number.Number, error) {
	if !c.instrument {
		result, _, err := c.convert(value, from, to, scale, mode)
		return result, err
	}

	start := time.Now()
	result, kind, err := c.convert(value, from, to, scale, mode)
	m := telemetry.ConversionMetrics{
		Kind:     kind,
		Outcome:  telemetry.OutcomeOK,
		Duration: time.Since(start),
	}
	if from != nil && from.Dimension() != nil {
		m.Dimension = from.Dimension().Name()
	}
	if err != nil {
		m.Outcome = telemetry.OutcomeError
		m.ErrorCode = domain.ErrorCode(err)
	}
	telemetry.RecordConversion(context.Background(), m)
	return result, err
}

// ConvertQuantity is Convert over a quantity. A same-unit conversion returns
// q itself.
func (c *Converter) ConvertQuantity(q *quantity.Quantity, to domain.Unit, scale int32, mode number.RoundingMode) (*quantity.Quantity, error) {
	if q == nil {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "cannot convert a nil quantity")
	}
	if to != nil && q.Unit() == to {
		return q, nil
	}
	value, err := c.Convert(q.Value(), q.Unit(), to, scale, mode)
	if err != nil {
		return nil, err
	}
	return quantity.Of(value, to)
}

const kindIdentity = "identity"

func (c *Converter) convert(value number.Number, from, to domain.Unit, scale int32, mode number.RoundingMode) (number.Number, string, error) {
	if value == nil {
		return nil, "", domain.InvalidOperation(domain.CodeInvalidArgument, "cannot convert a nil value")
	}
	if from == nil || to == nil {
		return nil, "", domain.InvalidUnit(domain.CodeUnitMissing, nil, "conversion requires a source and a target unit")
	}
	if from.Dimension() != to.Dimension() {
		return nil, "", domain.IncompatibleDimension(from.Dimension(), to.Dimension())
	}
	if from == to {
		return value, kindIdentity, nil
	}

	src, err := c.rules.Rule(from)
	if err != nil {
		return nil, "", err
	}
	dst, err := c.rules.Rule(to)
	if err != nil {
		return nil, src.Kind.String(), err
	}
	kind := src.Kind
	if dst.Kind == registry.KindAffine {
		kind = registry.KindAffine
	}

	// value_in_base = (v + off_s) * f_s / d_s
	// result        = value_in_base * d_t / f_t - off_t
	//               = ((v + off_s)*f_s*d_t - off_t*d_s*f_t) / (d_s*f_t)
	num := value.Add(offset(src)).Mul(src.Factor).Mul(dst.Divisor)
	if o := offset(dst); !o.IsZero() {
		num = num.Sub(o.Mul(src.Divisor).Mul(dst.Factor))
	}
	den := src.Divisor.Mul(dst.Factor)
	if den.IsZero() {
		return nil, kind.String(), domain.InvalidOperation(domain.CodeDivisionByZero,
			"rule for %s has a zero factor", to.Name())
	}

	result, err := num.Div(den, scale, mode)
	if err != nil {
		return nil, kind.String(), err
	}
	return result, kind.String(), nil
}

func offset(r registry.Rule) number.Number {
	if r.Offset == nil {
		return number.Zero()
	}
	return r.Offset
}
