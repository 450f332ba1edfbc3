package quantity

import (
	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
)

// Kind is a construction-time constraint on the units a quantity may carry.
// A Kind restricts to a dimension, a unit family or one exact unit.
type Kind struct {
	name      string
	dimension *domain.Dimension
	family    *domain.Family
	unit      domain.Unit
}

// OfDimension accepts any unit of dim.
func OfDimension(dim *domain.Dimension) Kind {
	return Kind{name: dim.Name(), dimension: dim}
}

// OfFamily accepts only units of family.
func OfFamily(family *domain.Family) Kind {
	return Kind{name: family.Name(), dimension: family.Dimension(), family: family}
}

// OfUnit accepts exactly unit.
func OfUnit(unit domain.Unit) Kind {
	return Kind{name: unit.Name(), dimension: unit.Dimension(), family: unit.Family(), unit: unit}
}

var (
	Length      = OfDimension(domain.Length)
	Mass        = OfDimension(domain.Mass)
	Time        = OfDimension(domain.Time)
	Temperature = OfDimension(domain.Temperature)
	Energy      = OfDimension(domain.Energy)
	Power       = OfDimension(domain.Power)
	Area        = OfDimension(domain.Area)
	Volume      = OfDimension(domain.Volume)
	Pressure    = OfDimension(domain.Pressure)
	Data        = OfDimension(domain.Data)
)

func (k Kind) Name() string {
	return k.name
}

// Check reports whether unit satisfies the constraint. The error wraps
// domain.ErrInvalidUnit with a code naming the violated level.
func (k Kind) Check(unit domain.Unit) error {
	if unit == nil {
		return domain.InvalidUnit(domain.CodeUnitMissing, nil, "%s quantity requires a unit", k.name)
	}
	if unit.Dimension() != k.dimension {
		return domain.InvalidUnit(domain.CodeUnitDimensionMismatch, unit,
			"%s quantity cannot hold %s (dimension %s)", k.name, unit.Name(), unit.Dimension())
	}
	if k.family != nil && unit.Family() != k.family {
		return domain.InvalidUnit(domain.CodeUnitFamilyMismatch, unit,
			"%s quantity cannot hold %s (family %s)", k.name, unit.Name(), unit.Family())
	}
	if k.unit != nil && unit != k.unit {
		return domain.InvalidUnit(domain.CodeUnitExactMismatch, unit,
			"%s quantity cannot hold %s", k.name, unit.Name())
	}
	return nil
}

// New builds a quantity after checking unit against the constraint.
func (k Kind) New(value number.Number, unit domain.Unit) (*Quantity, error) {
	if err := k.Check(unit); err != nil {
		return nil, err
	}
	return Of(value, unit)
}

// Parse is New over a decimal literal.
func (k Kind) Parse(value string, unit domain.Unit) (*Quantity, error) {
	if err := k.Check(unit); err != nil {
		return nil, err
	}
	return Parse(value, unit)
}
