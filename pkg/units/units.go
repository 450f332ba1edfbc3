// Package units declares the builtin unit families. Each family is a closed Go
// enum whose metadata (symbol, name, unit system) is resolved by a switch over
// every enum value. Conversion factors are not attached to units; they live in
// the registry package.
package units

import "github.com/polisai/measure/pkg/domain"

type unitInfo struct {
	symbol string
	ascii  string
	name   string
	system domain.UnitSystem
}

func (i unitInfo) render(n domain.Notation) string {
	if n == domain.NotationASCII && i.ascii != "" {
		return i.ascii
	}
	return i.symbol
}

// unknownUnit describes enum values outside their declared constants.
var unknownUnit = unitInfo{symbol: "?", ascii: "?", name: "unknown"}

// Families returns every builtin family in declaration order.
func Families() []*domain.Family {
	return []*domain.Family{
		MetricLength, ImperialLength, NauticalLength,
		MetricMass, ImperialMass,
		TemperatureScale,
		Duration,
		Joules, WattHours, Calories,
		Watts,
		MetricArea,
		MetricVolume,
		Pascals,
		DecimalData, BinaryData,
	}
}

// All returns every builtin unit, family by family, each family in ascending
// magnitude. The order is stable across calls.
func All() []domain.Unit {
	groups := [][]domain.Unit{
		MetricLengthUnits(), ImperialLengthUnits(), NauticalLengthUnits(),
		MetricMassUnits(), ImperialMassUnits(),
		TemperatureUnits(),
		TimeUnits(),
		EnergyUnits(), WattHourUnits(), CalorieUnits(),
		PowerUnits(),
		AreaUnits(),
		VolumeUnits(),
		PressureUnits(),
		DecimalDataUnits(), BinaryDataUnits(),
	}
	var all []domain.Unit
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
