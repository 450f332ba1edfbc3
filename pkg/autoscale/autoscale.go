// Package autoscale re-expresses a quantity in the most readable unit of its
// family.
//
// Candidates are scored on a base-10 logarithmic scale against a target
// range (default [1, 1000]). In-range values score log10(v) - log10(min), so
// the smallest in-range value wins; out-of-range values always score worse
// than any in-range one, growing with their distance from the range. The
// original unit is the initial best, so the result is never worse than the
// input. Affine units such as degrees Celsius are never rescaled, and never
// offered as candidates.
package autoscale

import (
	"context"
	"math"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
	"github.com/polisai/measure/pkg/quantity"
	"github.com/polisai/measure/pkg/registry"
	"github.com/polisai/measure/pkg/telemetry"
)

const (
	// candidateScale is the precision at which candidate values are scored.
	candidateScale = 30
	defaultScale   = 10
)

var zeroThreshold = number.MustParse("1e-10")

// Converter is the conversion capability the scaler needs.
// *convert.Converter satisfies it.
type Converter interface {
	Convert(value number.Number, from, to domain.Unit, scale int32, mode number.RoundingMode) (number.Number, error)
}

// UnitSource enumerates candidate units in a stable order and exposes their
// rules. *registry.Registry satisfies it.
type UnitSource interface {
	Units() []domain.Unit
	Rule(unit domain.Unit) (registry.Rule, error)
}

type settings struct {
	system     domain.UnitSystem
	hasSystem  bool
	min, max   number.Number
	scale      int32
	mode       number.RoundingMode
	instrument bool
}

// Option adjusts one scaling call, or the scaler defaults when passed to New.
type Option func(*settings)

// WithSystem restricts candidates to units of system.
func WithSystem(system domain.UnitSystem) Option {
	return func(s *settings) {
		s.system = system
		s.hasSystem = true
	}
}

// WithRange sets the target range of the converted value.
func WithRange(lo, hi number.Number) Option {
	return func(s *settings) {
		s.min = lo
		s.max = hi
	}
}

// WithPrecision sets the scale and rounding of the returned value (default 10
// digits, half-up).
func WithPrecision(scale int32, mode number.RoundingMode) Option {
	return func(s *settings) {
		s.scale = scale
		if mode != nil {
			s.mode = mode
		}
	}
}

// WithInstrumentation records an OpenTelemetry counter per scaling call.
func WithInstrumentation() Option {
	return func(s *settings) {
		s.instrument = true
	}
}

// AutoScaler picks the most readable unit among same-family candidates.
type AutoScaler struct {
	conv     Converter
	units    UnitSource
	defaults settings
}

// New returns a scaler converting through conv and drawing candidates from
// units.
func New(conv Converter, units UnitSource, opts ...Option) *AutoScaler {
	a := &AutoScaler{
		conv:  conv,
		units: units,
		defaults: settings{
			min:   number.One(),
			max:   number.FromInt64(1000),
			scale: defaultScale,
			mode:  number.HalfUp,
		},
	}
	for _, opt := range opts {
		opt(&a.defaults)
	}
	return a
}

// Scale returns q re-expressed in the best-scoring unit. When the original
// unit wins, or no candidate exists, q itself is returned.
func (a *AutoScaler) Scale(q *quantity.Quantity, opts ...Option) (*quantity.Quantity, error) {
	s := a.defaults
	for _, opt := range opts {
		opt(&s)
	}
	if s.min == nil || s.max == nil || s.min.Sign() <= 0 || s.min.Cmp(s.max) >= 0 {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument,
			"auto-scale range must satisfy 0 < min < max, got [%v, %v]", s.min, s.max)
	}
	if q == nil {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "cannot scale a nil quantity")
	}

	candidates, err := a.candidates(q.Unit(), s)
	if err != nil {
		return nil, err
	}
	best, err := a.pick(q, candidates, s)
	if err != nil {
		return nil, err
	}
	if s.instrument {
		telemetry.RecordAutoScale(context.Background(), telemetry.AutoScaleMetrics{
			Dimension:  q.Dimension().Name(),
			Family:     q.Unit().Family().Name(),
			Candidates: len(candidates),
			Rescaled:   best != q.Unit(),
		})
	}
	if best == q.Unit() {
		return q, nil
	}

	value, err := a.conv.Convert(q.Value(), q.Unit(), best, s.scale, s.mode)
	if err != nil {
		return nil, err
	}
	return quantity.Of(value, best)
}

// candidates lists the units sharing unit's dimension and family, in source
// order, excluding unit itself. Affine units never take part: an offset moves
// the zero point, so rescaling to or from one changes the reading rather than
// its magnitude.
func (a *AutoScaler) candidates(unit domain.Unit, s settings) ([]domain.Unit, error) {
	affine, err := a.isAffine(unit)
	if err != nil || affine {
		return nil, err
	}
	var out []domain.Unit
	for _, u := range a.units.Units() {
		if u == unit || u.Dimension() != unit.Dimension() || u.Family() != unit.Family() {
			continue
		}
		if s.hasSystem && u.System() != s.system {
			continue
		}
		if affine, err := a.isAffine(u); err != nil {
			return nil, err
		} else if affine {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (a *AutoScaler) isAffine(unit domain.Unit) (bool, error) {
	rule, err := a.units.Rule(unit)
	if err != nil {
		return false, err
	}
	return rule.Kind == registry.KindAffine || (rule.Offset != nil && !rule.Offset.IsZero()), nil
}

func (a *AutoScaler) pick(q *quantity.Quantity, candidates []domain.Unit, s settings) (domain.Unit, error) {
	best := q.Unit()
	if len(candidates) == 0 {
		return best, nil
	}
	bestScore := score(q.Value(), s.min, s.max)
	for _, u := range candidates {
		v, err := a.conv.Convert(q.Value(), q.Unit(), u, candidateScale, number.HalfEven)
		if err != nil {
			return nil, err
		}
		if sc := score(v, s.min, s.max); sc < bestScore {
			best, bestScore = u, sc
		}
	}
	return best, nil
}

// score rates how readable value is against [lo, hi]; lower is better.
func score(value, lo, hi number.Number) float64 {
	v := value.Abs()
	if v.Cmp(zeroThreshold) < 0 {
		return math.Inf(1)
	}
	logV := math.Log10(v.Float64())
	logMin := math.Log10(lo.Float64())
	logMax := math.Log10(hi.Float64())
	span := logMax - logMin

	switch {
	case v.Cmp(lo) < 0:
		return span + (logMin - logV)
	case v.Cmp(hi) > 0:
		return span + (logV - logMax)
	default:
		return logV - logMin
	}
}
