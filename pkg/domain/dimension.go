package domain

import (
	"sort"
	"strings"
)

// Dimension identifies a physical kind of quantity. Dimensions are singletons;
// compare them by pointer.
type Dimension struct {
	name string
}

// Builtin dimensions.
var (
	Length      = newDimension("length")
	Mass        = newDimension("mass")
	Time        = newDimension("time")
	Temperature = newDimension("temperature")
	Energy      = newDimension("energy")
	Power       = newDimension("power")
	Area        = newDimension("area")
	Volume      = newDimension("volume")
	Pressure    = newDimension("pressure")
	Data        = newDimension("data")
)

var dimensions = map[string]*Dimension{}

func newDimension(name string) *Dimension {
	d := &Dimension{name: name}
	dimensions[name] = d
	return d
}

// Name returns the lower-case dimension name.
func (d *Dimension) Name() string {
	if d == nil {
		return "<nil>"
	}
	return d.name
}

func (d *Dimension) String() string {
	return d.Name()
}

// Compatible reports whether d and other are the same dimension.
func (d *Dimension) Compatible(other *Dimension) bool {
	return d != nil && d == other
}

// LookupDimension resolves a builtin dimension by name, ignoring case.
func LookupDimension(name string) (*Dimension, bool) {
	d, ok := dimensions[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Dimensions returns every builtin dimension ordered by name.
func Dimensions() []*Dimension {
	out := make([]*Dimension, 0, len(dimensions))
	for _, d := range dimensions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
