package domain

import (
	"fmt"
	"strings"
)

// UnitSystem classifies a unit. It only filters auto-scaling candidates and
// never affects conversion math.
type UnitSystem int

const (
	SystemNone UnitSystem = iota
	SystemSI
	SystemMetric
	SystemImperial
	SystemUSCustomary
	SystemNautical
	SystemIEC
	SystemCGS
)

var systemNames = map[UnitSystem]string{
	SystemNone:        "none",
	SystemSI:          "si",
	SystemMetric:      "metric",
	SystemImperial:    "imperial",
	SystemUSCustomary: "us_customary",
	SystemNautical:    "nautical",
	SystemIEC:         "iec",
	SystemCGS:         "cgs",
}

func (s UnitSystem) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UnitSystem(%d)", int(s))
}

// ParseUnitSystem resolves a system name such as "si" or "US_CUSTOMARY".
func ParseUnitSystem(name string) (UnitSystem, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for s, n := range systemNames {
		if n == key || strings.ReplaceAll(n, "_", "") == key {
			return s, nil
		}
	}
	return SystemNone, fmt.Errorf("unknown unit system %q", name)
}

// Notation selects how a unit symbol is rendered.
type Notation int

const (
	// NotationUnicode renders symbols such as "°C" and "µm".
	NotationUnicode Notation = iota
	// NotationASCII renders plain ASCII symbols such as "degC" and "um".
	NotationASCII
)

// Family identifies a concrete enumeration of sibling units, such as the
// metric length units. Families are singletons; compare them by pointer.
type Family struct {
	name      string
	dimension *Dimension
}

// NewFamily declares a unit family within a dimension.
func NewFamily(name string, dimension *Dimension) *Family {
	return &Family{name: name, dimension: dimension}
}

// Name returns the family name.
func (f *Family) Name() string {
	if f == nil {
		return "<nil>"
	}
	return f.name
}

// Dimension returns the dimension every unit of the family belongs to.
func (f *Family) Dimension() *Dimension {
	if f == nil {
		return nil
	}
	return f.dimension
}

func (f *Family) String() string {
	return f.Name()
}

// Unit is a single member of a unit family. Implementations must be
// comparable so that units can be used as map keys.
type Unit interface {
	Dimension() *Dimension
	System() UnitSystem
	Symbol(Notation) string
	Name() string
	Family() *Family
}
