package units

import "github.com/polisai/measure/pkg/domain"

// AreaUnit enumerates the metric area units.
type AreaUnit int

const (
	SquareMillimeter AreaUnit = iota
	SquareCentimeter
	SquareMeter
	Hectare
	SquareKilometer
)

// MetricArea is the family of every AreaUnit.
var MetricArea = domain.NewFamily("metric-area", domain.Area)

func (u AreaUnit) info() unitInfo {
	switch u {
	case SquareMillimeter:
		return unitInfo{"mm²", "mm2", "square millimeter", domain.SystemSI}
	case SquareCentimeter:
		return unitInfo{"cm²", "cm2", "square centimeter", domain.SystemSI}
	case SquareMeter:
		return unitInfo{"m²", "m2", "square meter", domain.SystemSI}
	case Hectare:
		return unitInfo{"ha", "ha", "hectare", domain.SystemMetric}
	case SquareKilometer:
		return unitInfo{"km²", "km2", "square kilometer", domain.SystemSI}
	}
	return unknownUnit
}

func (u AreaUnit) Dimension() *domain.Dimension { return domain.Area }
func (u AreaUnit) Family() *domain.Family { return MetricArea }
func (u AreaUnit) System() domain.UnitSystem { return u.info().system }
func (u AreaUnit) Name() string { return u.info().name }
func (u AreaUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u AreaUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// AreaUnits lists the MetricArea family in ascending magnitude.
func AreaUnits() []domain.Unit {
	return []domain.Unit{SquareMillimeter, SquareCentimeter, SquareMeter, Hectare, SquareKilometer}
}
