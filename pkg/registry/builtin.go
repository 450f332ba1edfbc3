package registry

import (
	"fmt"
	"sync"

	"github.com/polisai/measure/pkg/units"
)

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry populated with the builtin units.
// It is built on first use. Prefer passing an explicit *Registry to
// constructors; Default exists for convenience call sites.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := BuiltinBuilder().Build()
		if err != nil {
			panic(fmt.Sprintf("registry: builtin table is invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// BuiltinBuilder returns a builder holding every builtin unit and rule.
func BuiltinBuilder() *Builder {
	b := NewBuilder()

	// Length, base meter.
	b.Register(units.Nanometer, Factor("0.000000001")).
		Register(units.Micrometer, Factor("0.000001")).
		Register(units.Millimeter, Factor("0.001")).
		Register(units.Centimeter, Factor("0.01")).
		Register(units.Decimeter, Factor("0.1")).
		Base(units.Meter).
		Register(units.Decameter, Factor("10")).
		Register(units.Hectometer, Factor("100")).
		Register(units.Kilometer, Factor("1000")).
		Register(units.Inch, Factor("0.0254")).
		Register(units.Foot, Factor("0.3048")).
		Register(units.Yard, Factor("0.9144")).
		Register(units.Mile, Factor("1609.344")).
		Register(units.Fathom, Factor("1.8288")).
		Register(units.Cable, Factor("185.2")).
		Register(units.NauticalMile, Factor("1852"))

	// Mass, base kilogram.
	b.Register(units.Microgram, Factor("0.000000001")).
		Register(units.Milligram, Factor("0.000001")).
		Register(units.Gram, Factor("0.001")).
		Base(units.Kilogram).
		Register(units.Tonne, Factor("1000")).
		Register(units.Ounce, Factor("0.028349523125")).
		Register(units.Pound, Factor("0.45359237")).
		Register(units.Stone, Factor("6.35029318"))

	// Temperature, base kelvin. Celsius and Fahrenheit are affine.
	b.Base(units.Kelvin).
		Register(units.Celsius, Affine("273.15", "1", "1")).
		Register(units.Fahrenheit, Affine("459.67", "5", "9")).
		Register(units.Rankine, Ratio("5", "9"))

	// Time, base second.
	b.Register(units.Nanosecond, Factor("0.000000001")).
		Register(units.Microsecond, Factor("0.000001")).
		Register(units.Millisecond, Factor("0.001")).
		Base(units.Second).
		Register(units.Minute, Factor("60")).
		Register(units.Hour, Factor("3600")).
		Register(units.Day, Factor("86400")).
		Register(units.Week, Factor("604800"))

	// Energy, base joule.
	b.Register(units.Millijoule, Factor("0.001")).
		Base(units.Joule).
		Register(units.Kilojoule, Factor("1000")).
		Register(units.Megajoule, Factor("1000000")).
		Register(units.Gigajoule, Factor("1000000000")).
		Register(units.WattHour, Factor("3600")).
		Register(units.KilowattHour, Factor("3600000")).
		Register(units.MegawattHour, Factor("3600000000")).
		Register(units.GigawattHour, Factor("3600000000000")).
		Register(units.Calorie, Factor("4.184")).
		Register(units.Kilocalorie, Factor("4184"))

	// Power, base watt.
	b.Register(units.Milliwatt, Factor("0.001")).
		Base(units.Watt).
		Register(units.Kilowatt, Factor("1000")).
		Register(units.Megawatt, Factor("1000000")).
		Register(units.Gigawatt, Factor("1000000000"))

	// Area, base square meter.
	b.Register(units.SquareMillimeter, Factor("0.000001")).
		Register(units.SquareCentimeter, Factor("0.0001")).
		Base(units.SquareMeter).
		Register(units.Hectare, Factor("10000")).
		Register(units.SquareKilometer, Factor("1000000"))

	// Volume, base cubic meter.
	b.Register(units.Milliliter, Factor("0.000001")).
		Register(units.Centiliter, Factor("0.00001")).
		Register(units.Deciliter, Factor("0.0001")).
		Register(units.Liter, Factor("0.001")).
		Base(units.CubicMeter)

	// Pressure, base pascal.
	b.Base(units.Pascal).
		Register(units.Hectopascal, Factor("100")).
		Register(units.Kilopascal, Factor("1000")).
		Register(units.Bar, Factor("100000")).
		Register(units.Megapascal, Factor("1000000"))

	// Data, base byte.
	b.Register(units.Bit, Ratio("1", "8")).
		Base(units.Byte).
		Register(units.Kilobyte, Factor("1000")).
		Register(units.Megabyte, Factor("1000000")).
		Register(units.Gigabyte, Factor("1000000000")).
		Register(units.Terabyte, Factor("1000000000000")).
		Register(units.Petabyte, Factor("1000000000000000")).
		Register(units.Kibibyte, Factor("1024")).
		Register(units.Mebibyte, Factor("1048576")).
		Register(units.Gibibyte, Factor("1073741824")).
		Register(units.Tebibyte, Factor("1099511627776")).
		Register(units.Pebibyte, Factor("1125899906842624"))

	return b
}
