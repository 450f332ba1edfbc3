package units

import "github.com/polisai/measure/pkg/domain"

// MetricMassUnit enumerates the metric mass units.
type MetricMassUnit int

const (
	Microgram MetricMassUnit = iota
	Milligram
	Gram
	Kilogram
	Tonne
)

// MetricMass is the family of every MetricMassUnit.
var MetricMass = domain.NewFamily("metric-mass", domain.Mass)

func (u MetricMassUnit) info() unitInfo {
	switch u {
	case Microgram:
		return unitInfo{"µg", "ug", "microgram", domain.SystemSI}
	case Milligram:
		return unitInfo{"mg", "mg", "milligram", domain.SystemSI}
	case Gram:
		return unitInfo{"g", "g", "gram", domain.SystemSI}
	case Kilogram:
		return unitInfo{"kg", "kg", "kilogram", domain.SystemSI}
	case Tonne:
		return unitInfo{"t", "t", "tonne", domain.SystemMetric}
	}
	return unknownUnit
}

func (u MetricMassUnit) Dimension() *domain.Dimension { return domain.Mass }
func (u MetricMassUnit) Family() *domain.Family { return MetricMass }
func (u MetricMassUnit) System() domain.UnitSystem { return u.info().system }
func (u MetricMassUnit) Name() string { return u.info().name }
func (u MetricMassUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u MetricMassUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// MetricMassUnits lists the MetricMass family in ascending magnitude.
func MetricMassUnits() []domain.Unit {
	return []domain.Unit{Microgram, Milligram, Gram, Kilogram, Tonne}
}

// ImperialMassUnit enumerates the avoirdupois mass units.
type ImperialMassUnit int

const (
	Ounce ImperialMassUnit = iota
	Pound
	Stone
)

// ImperialMass is the family of every ImperialMassUnit.
var ImperialMass = domain.NewFamily("imperial-mass", domain.Mass)

func (u ImperialMassUnit) info() unitInfo {
	switch u {
	case Ounce:
		return unitInfo{"oz", "oz", "ounce", domain.SystemImperial}
	case Pound:
		return unitInfo{"lb", "lb", "pound", domain.SystemImperial}
	case Stone:
		return unitInfo{"st", "st", "stone", domain.SystemImperial}
	}
	return unknownUnit
}

func (u ImperialMassUnit) Dimension() *domain.Dimension { return domain.Mass }
func (u ImperialMassUnit) Family() *domain.Family { return ImperialMass }
func (u ImperialMassUnit) System() domain.UnitSystem { return u.info().system }
func (u ImperialMassUnit) Name() string { return u.info().name }
func (u ImperialMassUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u ImperialMassUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// ImperialMassUnits lists the ImperialMass family in ascending magnitude.
func ImperialMassUnits() []domain.Unit {
	return []domain.Unit{Ounce, Pound, Stone}
}
