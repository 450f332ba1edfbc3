// Package quantity defines the immutable value-plus-unit pair that the
// converter, comparator and auto-scaler operate on.
package quantity

import (
	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
)

// Quantity is an immutable (value, unit) pair. It has no setters; every
// transformation returns a new Quantity.
type Quantity struct {
	value number.Number
	unit  domain.Unit
}

// Of returns a quantity of value expressed in unit.
func Of(value number.Number, unit domain.Unit) (*Quantity, error) {
	if unit == nil || unit.Dimension() == nil {
		return nil, domain.InvalidUnit(domain.CodeUnitMissing, unit, "quantity requires a unit with a dimension")
	}
	if value == nil {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "quantity requires a value")
	}
	return &Quantity{value: value, unit: unit}, nil
}

// Parse reads a plain decimal literal such as "12.5" or "-3e2". It does not
// parse unit symbols.
func Parse(value string, unit domain.Unit) (*Quantity, error) {
	v, err := number.Parse(value)
	if err != nil {
		return nil, err
	}
	return Of(v, unit)
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(value string, unit domain.Unit) *Quantity {
	q, err := Parse(value, unit)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Quantity) Value() number.Number {
	return q.value
}

func (q *Quantity) Unit() domain.Unit {
	return q.unit
}

func (q *Quantity) Dimension() *domain.Dimension {
	return q.unit.Dimension()
}

// WithValue returns a new quantity carrying value in the same unit.
func (q *Quantity) WithValue(value number.Number) (*Quantity, error) {
	return Of(value, q.unit)
}

// String renders "<value> <symbol>" for debugging; it is not locale aware.
func (q *Quantity) String() string {
	if q == nil {
		return "<nil>"
	}
	return q.value.String() + " " + q.unit.Symbol(domain.NotationUnicode)
}
