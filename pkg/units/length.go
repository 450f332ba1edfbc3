package units

import "github.com/polisai/measure/pkg/domain"

// MetricLengthUnit enumerates the SI length units from nanometre to kilometre.
type MetricLengthUnit int

const (
	Nanometer MetricLengthUnit = iota
	Micrometer
	Millimeter
	Centimeter
	Decimeter
	Meter
	Decameter
	Hectometer
	Kilometer
)

// MetricLength is the family of every MetricLengthUnit.
var MetricLength = domain.NewFamily("metric-length", domain.Length)

func (u MetricLengthUnit) info() unitInfo {
	switch u {
	case Nanometer:
		return unitInfo{"nm", "nm", "nanometer", domain.SystemSI}
	case Micrometer:
		return unitInfo{"µm", "um", "micrometer", domain.SystemSI}
	case Millimeter:
		return unitInfo{"mm", "mm", "millimeter", domain.SystemSI}
	case Centimeter:
		return unitInfo{"cm", "cm", "centimeter", domain.SystemSI}
	case Decimeter:
		return unitInfo{"dm", "dm", "decimeter", domain.SystemSI}
	case Meter:
		return unitInfo{"m", "m", "meter", domain.SystemSI}
	case Decameter:
		return unitInfo{"dam", "dam", "decameter", domain.SystemSI}
	case Hectometer:
		return unitInfo{"hm", "hm", "hectometer", domain.SystemSI}
	case Kilometer:
		return unitInfo{"km", "km", "kilometer", domain.SystemSI}
	}
	return unknownUnit
}

func (u MetricLengthUnit) Dimension() *domain.Dimension { return domain.Length }
func (u MetricLengthUnit) Family() *domain.Family { return MetricLength }
func (u MetricLengthUnit) System() domain.UnitSystem { return u.info().system }
func (u MetricLengthUnit) Name() string { return u.info().name }
func (u MetricLengthUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u MetricLengthUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// MetricLengthUnits lists the MetricLength family in ascending magnitude.
func MetricLengthUnits() []domain.Unit {
	return []domain.Unit{Nanometer, Micrometer, Millimeter, Centimeter, Decimeter, Meter, Decameter, Hectometer, Kilometer}
}

// ImperialLengthUnit enumerates the imperial length units.
type ImperialLengthUnit int

const (
	Inch ImperialLengthUnit = iota
	Foot
	Yard
	Mile
)

// ImperialLength is the family of every ImperialLengthUnit.
var ImperialLength = domain.NewFamily("imperial-length", domain.Length)

func (u ImperialLengthUnit) info() unitInfo {
	switch u {
	case Inch:
		return unitInfo{"in", "in", "inch", domain.SystemImperial}
	case Foot:
		return unitInfo{"ft", "ft", "foot", domain.SystemImperial}
	case Yard:
		return unitInfo{"yd", "yd", "yard", domain.SystemImperial}
	case Mile:
		return unitInfo{"mi", "mi", "mile", domain.SystemImperial}
	}
	return unknownUnit
}

func (u ImperialLengthUnit) Dimension() *domain.Dimension { return domain.Length }
func (u ImperialLengthUnit) Family() *domain.Family { return ImperialLength }
func (u ImperialLengthUnit) System() domain.UnitSystem { return u.info().system }
func (u ImperialLengthUnit) Name() string { return u.info().name }
func (u ImperialLengthUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u ImperialLengthUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// ImperialLengthUnits lists the ImperialLength family in ascending magnitude.
func ImperialLengthUnits() []domain.Unit {
	return []domain.Unit{Inch, Foot, Yard, Mile}
}

// NauticalLengthUnit enumerates the nautical length units.
type NauticalLengthUnit int

const (
	Fathom NauticalLengthUnit = iota
	Cable
	NauticalMile
)

// NauticalLength is the family of every NauticalLengthUnit.
var NauticalLength = domain.NewFamily("nautical-length", domain.Length)

func (u NauticalLengthUnit) info() unitInfo {
	switch u {
	case Fathom:
		return unitInfo{"ftm", "ftm", "fathom", domain.SystemNautical}
	case Cable:
		return unitInfo{"cb", "cb", "cable", domain.SystemNautical}
	case NauticalMile:
		return unitInfo{"NM", "NM", "nautical mile", domain.SystemNautical}
	}
	return unknownUnit
}

func (u NauticalLengthUnit) Dimension() *domain.Dimension { return domain.Length }
func (u NauticalLengthUnit) Family() *domain.Family { return NauticalLength }
func (u NauticalLengthUnit) System() domain.UnitSystem { return u.info().system }
func (u NauticalLengthUnit) Name() string { return u.info().name }
func (u NauticalLengthUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u NauticalLengthUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// NauticalLengthUnits lists the NauticalLength family in ascending magnitude.
func NauticalLengthUnits() []domain.Unit {
	return []domain.Unit{Fathom, Cable, NauticalMile}
}
