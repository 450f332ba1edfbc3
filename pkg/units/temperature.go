package units

import "github.com/polisai/measure/pkg/domain"

// TemperatureUnit enumerates the temperature scales. Conversions between them
// are affine.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
	Rankine
)

// TemperatureScale is the family of every TemperatureUnit.
var TemperatureScale = domain.NewFamily("temperature", domain.Temperature)

func (u TemperatureUnit) info() unitInfo {
	switch u {
	case Kelvin:
		return unitInfo{"K", "K", "kelvin", domain.SystemSI}
	case Celsius:
		return unitInfo{"°C", "degC", "degree Celsius", domain.SystemMetric}
	case Fahrenheit:
		return unitInfo{"°F", "degF", "degree Fahrenheit", domain.SystemImperial}
	case Rankine:
		return unitInfo{"°R", "degR", "degree Rankine", domain.SystemImperial}
	}
	return unknownUnit
}

func (u TemperatureUnit) Dimension() *domain.Dimension { return domain.Temperature }
func (u TemperatureUnit) Family() *domain.Family { return TemperatureScale }
func (u TemperatureUnit) System() domain.UnitSystem { return u.info().system }
func (u TemperatureUnit) Name() string { return u.info().name }
func (u TemperatureUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u TemperatureUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// TemperatureUnits lists the TemperatureScale family, reference scale first.
func TemperatureUnits() []domain.Unit {
	return []domain.Unit{Kelvin, Celsius, Fahrenheit, Rankine}
}
