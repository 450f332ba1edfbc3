package units

import "github.com/polisai/measure/pkg/domain"

// TimeUnit enumerates time units from nanosecond to week.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

// Duration is the family of every TimeUnit.
var Duration = domain.NewFamily("duration", domain.Time)

func (u TimeUnit) info() unitInfo {
	switch u {
	case Nanosecond:
		return unitInfo{"ns", "ns", "nanosecond", domain.SystemSI}
	case Microsecond:
		return unitInfo{"µs", "us", "microsecond", domain.SystemSI}
	case Millisecond:
		return unitInfo{"ms", "ms", "millisecond", domain.SystemSI}
	case Second:
		return unitInfo{"s", "s", "second", domain.SystemSI}
	case Minute:
		return unitInfo{"min", "min", "minute", domain.SystemNone}
	case Hour:
		return unitInfo{"h", "h", "hour", domain.SystemNone}
	case Day:
		return unitInfo{"d", "d", "day", domain.SystemNone}
	case Week:
		return unitInfo{"wk", "wk", "week", domain.SystemNone}
	}
	return unknownUnit
}

func (u TimeUnit) Dimension() *domain.Dimension { return domain.Time }
func (u TimeUnit) Family() *domain.Family { return Duration }
func (u TimeUnit) System() domain.UnitSystem { return u.info().system }
func (u TimeUnit) Name() string { return u.info().name }
func (u TimeUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u TimeUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// TimeUnits lists the Duration family in ascending magnitude.
func TimeUnits() []domain.Unit {
	return []domain.Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day, Week}
}
