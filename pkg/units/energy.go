package units

import "github.com/polisai/measure/pkg/domain"

// EnergyUnit enumerates the SI energy units.
type EnergyUnit int

const (
	Millijoule EnergyUnit = iota
	Joule
	Kilojoule
	Megajoule
	Gigajoule
)

// Joules is the family of every EnergyUnit.
var Joules = domain.NewFamily("joule", domain.Energy)

func (u EnergyUnit) info() unitInfo {
	switch u {
	case Millijoule:
		return unitInfo{"mJ", "mJ", "millijoule", domain.SystemSI}
	case Joule:
		return unitInfo{"J", "J", "joule", domain.SystemSI}
	case Kilojoule:
		return unitInfo{"kJ", "kJ", "kilojoule", domain.SystemSI}
	case Megajoule:
		return unitInfo{"MJ", "MJ", "megajoule", domain.SystemSI}
	case Gigajoule:
		return unitInfo{"GJ", "GJ", "gigajoule", domain.SystemSI}
	}
	return unknownUnit
}

func (u EnergyUnit) Dimension() *domain.Dimension { return domain.Energy }
func (u EnergyUnit) Family() *domain.Family { return Joules }
func (u EnergyUnit) System() domain.UnitSystem { return u.info().system }
func (u EnergyUnit) Name() string { return u.info().name }
func (u EnergyUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u EnergyUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// EnergyUnits lists the Joules family in ascending magnitude.
func EnergyUnits() []domain.Unit {
	return []domain.Unit{Millijoule, Joule, Kilojoule, Megajoule, Gigajoule}
}

// WattHourUnit enumerates the watt-hour energy units used for metering.
type WattHourUnit int

const (
	WattHour WattHourUnit = iota
	KilowattHour
	MegawattHour
	GigawattHour
)

// WattHours is the family of every WattHourUnit.
var WattHours = domain.NewFamily("watt-hour", domain.Energy)

func (u WattHourUnit) info() unitInfo {
	switch u {
	case WattHour:
		return unitInfo{"Wh", "Wh", "watt-hour", domain.SystemMetric}
	case KilowattHour:
		return unitInfo{"kWh", "kWh", "kilowatt-hour", domain.SystemMetric}
	case MegawattHour:
		return unitInfo{"MWh", "MWh", "megawatt-hour", domain.SystemMetric}
	case GigawattHour:
		return unitInfo{"GWh", "GWh", "gigawatt-hour", domain.SystemMetric}
	}
	return unknownUnit
}

func (u WattHourUnit) Dimension() *domain.Dimension { return domain.Energy }
func (u WattHourUnit) Family() *domain.Family { return WattHours }
func (u WattHourUnit) System() domain.UnitSystem { return u.info().system }
func (u WattHourUnit) Name() string { return u.info().name }
func (u WattHourUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u WattHourUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// WattHourUnits lists the WattHours family in ascending magnitude.
func WattHourUnits() []domain.Unit {
	return []domain.Unit{WattHour, KilowattHour, MegawattHour, GigawattHour}
}

// CalorieUnit enumerates the thermochemical calorie units.
type CalorieUnit int

const (
	Calorie CalorieUnit = iota
	Kilocalorie
)

// Calories is the family of every CalorieUnit.
var Calories = domain.NewFamily("calorie", domain.Energy)

func (u CalorieUnit) info() unitInfo {
	switch u {
	case Calorie:
		return unitInfo{"cal", "cal", "calorie", domain.SystemMetric}
	case Kilocalorie:
		return unitInfo{"kcal", "kcal", "kilocalorie", domain.SystemMetric}
	}
	return unknownUnit
}

func (u CalorieUnit) Dimension() *domain.Dimension { return domain.Energy }
func (u CalorieUnit) Family() *domain.Family { return Calories }
func (u CalorieUnit) System() domain.UnitSystem { return u.info().system }
func (u CalorieUnit) Name() string { return u.info().name }
func (u CalorieUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u CalorieUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// CalorieUnits lists the Calories family in ascending magnitude.
func CalorieUnits() []domain.Unit {
	return []domain.Unit{Calorie, Kilocalorie}
}
