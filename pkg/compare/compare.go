// Package compare orders quantities of the same dimension.
//
// When the operands carry different units, the second operand is converted
// into the unit of the first before the values are compared. Folding
// operations such as Min and Max rely on that direction being fixed.
//
// The converted operand is rounded at the comparator's scale, so differences
// finer than that scale are invisible in one direction only: Compare(a, b)
// may report 0 while Compare(b, a) does not. Raise the scale with
// WithPrecision when operands carry more digits than the default 32.
package compare

import (
	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
	"github.com/polisai/measure/pkg/quantity"
)

const (
	defaultScale = 32
)

// Converter is the conversion capability the comparator needs.
// *convert.Converter satisfies it.
type Converter interface {
	Convert(value number.Number, from, to domain.Unit, scale int32, mode number.RoundingMode) (number.Number, error)
}

// Comparator compares quantities through a Converter.
type Comparator struct {
	conv  Converter
	scale int32
	mode  number.RoundingMode
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithPrecision sets the scale and rounding mode used when the second operand
// is converted (default 32 digits, half-even).
func WithPrecision(scale int32, mode number.RoundingMode) Option {
	return func(c *Comparator) {
		c.scale = scale
		if mode != nil {
			c.mode = mode
		}
	}
}

// New returns a comparator converting through conv.
func New(conv Converter, opts ...Option) *Comparator {
	c := &Comparator{conv: conv, scale: defaultScale, mode: number.HalfEven}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (c *Comparator) Compare(a, b *quantity.Quantity) (int, error) {
	bv, err := c.align(a, b)
	if err != nil {
		return 0, err
	}
	return a.Value().Cmp(bv), nil
}

// Equal reports whether a and b are equal within tolerance. A nil tolerance
// requires numeric equality after conversion.
func (c *Comparator) Equal(a, b *quantity.Quantity, tolerance number.Number) (bool, error) {
	bv, err := c.align(a, b)
	if err != nil {
		return false, err
	}
	return a.Value().Equal(bv, tolerance), nil
}

func (c *Comparator) GreaterThan(a, b *quantity.Quantity) (bool, error) {
	cmp, err := c.Compare(a, b)
	return cmp > 0, err
}

func (c *Comparator) GreaterOrEqual(a, b *quantity.Quantity) (bool, error) {
	cmp, err := c.Compare(a, b)
	return cmp >= 0 && err == nil, err
}

func (c *Comparator) LessThan(a, b *quantity.Quantity) (bool, error) {
	cmp, err := c.Compare(a, b)
	return cmp < 0, err
}

func (c *Comparator) LessOrEqual(a, b *quantity.Quantity) (bool, error) {
	cmp, err := c.Compare(a, b)
	return cmp <= 0 && err == nil, err
}

// Min returns the smallest quantity. The first element is the initial
// accumulator and ties keep the accumulator.
func (c *Comparator) Min(qs ...*quantity.Quantity) (*quantity.Quantity, error) {
	return c.fold(qs, func(cmp int) bool { return cmp > 0 })
}

// Max returns the largest quantity. The first element is the initial
// accumulator and ties keep the accumulator.
func (c *Comparator) Max(qs ...*quantity.Quantity) (*quantity.Quantity, error) {
	return c.fold(qs, func(cmp int) bool { return cmp < 0 })
}

func (c *Comparator) fold(qs []*quantity.Quantity, replace func(cmp int) bool) (*quantity.Quantity, error) {
	if len(qs) == 0 {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "min/max of an empty sequence")
	}
	acc := qs[0]
	for _, q := range qs[1:] {
		cmp, err := c.Compare(acc, q)
		if err != nil {
			return nil, err
		}
		if replace(cmp) {
			acc = q
		}
	}
	return acc, nil
}

// Clamp returns lo when v < lo, hi when v > hi and v otherwise. The result is
// always one of the three arguments, so v == lo returns v. Bounds with
// lo > hi fail with ErrInvalidOperation.
func (c *Comparator) Clamp(v, lo, hi *quantity.Quantity) (*quantity.Quantity, error) {
	if err := c.checkBounds(lo, hi); err != nil {
		return nil, err
	}
	cmp, err := c.Compare(v, lo)
	if err != nil {
		return nil, err
	}
	if cmp < 0 {
		return lo, nil
	}
	cmp, err = c.Compare(v, hi)
	if err != nil {
		return nil, err
	}
	if cmp > 0 {
		return hi, nil
	}
	return v, nil
}

// IsBetween reports lo <= v <= hi. Bounds with lo > hi fail with
// ErrInvalidOperation.
func (c *Comparator) IsBetween(v, lo, hi *quantity.Quantity) (bool, error) {
	if err := c.checkBounds(lo, hi); err != nil {
		return false, err
	}
	below, err := c.Compare(v, lo)
	if err != nil {
		return false, err
	}
	above, err := c.Compare(v, hi)
	if err != nil {
		return false, err
	}
	return below >= 0 && above <= 0, nil
}

func (c *Comparator) checkBounds(lo, hi *quantity.Quantity) error {
	cmp, err := c.Compare(lo, hi)
	if err != nil {
		return err
	}
	if cmp > 0 {
		return domain.InvalidOperation(domain.CodeInvalidArgument, "lower bound %s exceeds upper bound %s", lo, hi)
	}
	return nil
}

// align returns b's value expressed in a's unit.
func (c *Comparator) align(a, b *quantity.Quantity) (number.Number, error) {
	if a == nil || b == nil {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "cannot compare a nil quantity")
	}
	if a.Dimension() != b.Dimension() {
		return nil, domain.IncompatibleDimension(a.Dimension(), b.Dimension())
	}
	if a.Unit() == b.Unit() {
		return b.Value(), nil
	}
	return c.conv.Convert(b.Value(), b.Unit(), a.Unit(), c.scale, c.mode)
}
