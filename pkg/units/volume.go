package units

import "github.com/polisai/measure/pkg/domain"

// VolumeUnit enumerates the metric volume units.
type VolumeUnit int

const (
	Milliliter VolumeUnit = iota
	Centiliter
	Deciliter
	Liter
	CubicMeter
)

// MetricVolume is the family of every VolumeUnit.
var MetricVolume = domain.NewFamily("metric-volume", domain.Volume)

func (u VolumeUnit) info() unitInfo {
	switch u {
	case Milliliter:
		return unitInfo{"mL", "mL", "milliliter", domain.SystemMetric}
	case Centiliter:
		return unitInfo{"cL", "cL", "centiliter", domain.SystemMetric}
	case Deciliter:
		return unitInfo{"dL", "dL", "deciliter", domain.SystemMetric}
	case Liter:
		return unitInfo{"L", "L", "liter", domain.SystemMetric}
	case CubicMeter:
		return unitInfo{"m³", "m3", "cubic meter", domain.SystemSI}
	}
	return unknownUnit
}

func (u VolumeUnit) Dimension() *domain.Dimension { return domain.Volume }
func (u VolumeUnit) Family() *domain.Family { return MetricVolume }
func (u VolumeUnit) System() domain.UnitSystem { return u.info().system }
func (u VolumeUnit) Name() string { return u.info().name }
func (u VolumeUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u VolumeUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// VolumeUnits lists the MetricVolume family in ascending magnitude.
func VolumeUnits() []domain.Unit {
	return []domain.Unit{Milliliter, Centiliter, Deciliter, Liter, CubicMeter}
}
