package units

import "github.com/polisai/measure/pkg/domain"

// PowerUnit enumerates the SI power units.
type PowerUnit int

const (
	Milliwatt PowerUnit = iota
	Watt
	Kilowatt
	Megawatt
	Gigawatt
)

// Watts is the family of every PowerUnit.
var Watts = domain.NewFamily("watt", domain.Power)

func (u PowerUnit) info() unitInfo {
	switch u {
	case Milliwatt:
		return unitInfo{"mW", "mW", "milliwatt", domain.SystemSI}
	case Watt:
		return unitInfo{"W", "W", "watt", domain.SystemSI}
	case Kilowatt:
		return unitInfo{"kW", "kW", "kilowatt", domain.SystemSI}
	case Megawatt:
		return unitInfo{"MW", "MW", "megawatt", domain.SystemSI}
	case Gigawatt:
		return unitInfo{"GW", "GW", "gigawatt", domain.SystemSI}
	}
	return unknownUnit
}

func (u PowerUnit) Dimension() *domain.Dimension { return domain.Power }
func (u PowerUnit) Family() *domain.Family { return Watts }
func (u PowerUnit) System() domain.UnitSystem { return u.info().system }
func (u PowerUnit) Name() string { return u.info().name }
func (u PowerUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u PowerUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// PowerUnits lists the Watts family in ascending magnitude.
func PowerUnits() []domain.Unit {
	return []domain.Unit{Milliwatt, Watt, Kilowatt, Megawatt, Gigawatt}
}
