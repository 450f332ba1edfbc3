package units

import "github.com/polisai/measure/pkg/domain"

// PressureUnit enumerates the SI pressure units and the bar.
type PressureUnit int

const (
	Pascal PressureUnit = iota
	Hectopascal
	Kilopascal
	Bar
	Megapascal
)

// Pascals is the family of every PressureUnit.
var Pascals = domain.NewFamily("pascal", domain.Pressure)

func (u PressureUnit) info() unitInfo {
	switch u {
	case Pascal:
		return unitInfo{"Pa", "Pa", "pascal", domain.SystemSI}
	case Hectopascal:
		return unitInfo{"hPa", "hPa", "hectopascal", domain.SystemSI}
	case Kilopascal:
		return unitInfo{"kPa", "kPa", "kilopascal", domain.SystemSI}
	case Bar:
		return unitInfo{"bar", "bar", "bar", domain.SystemMetric}
	case Megapascal:
		return unitInfo{"MPa", "MPa", "megapascal", domain.SystemSI}
	}
	return unknownUnit
}

func (u PressureUnit) Dimension() *domain.Dimension { return domain.Pressure }
func (u PressureUnit) Family() *domain.Family { return Pascals }
func (u PressureUnit) System() domain.UnitSystem { return u.info().system }
func (u PressureUnit) Name() string { return u.info().name }
func (u PressureUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u PressureUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// PressureUnits lists the Pascals family in ascending magnitude.
func PressureUnits() []domain.Unit {
	return []domain.Unit{Pascal, Hectopascal, Kilopascal, Bar, Megapascal}
}
