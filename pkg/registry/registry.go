// Package registry owns the authoritative Unit → Rule table.
//
// A Registry is built once through a Builder and is immutable afterwards, so
// every read is lock-free and safe for concurrent use. Each dimension present
// in a registry has exactly one base unit whose rule is the identity; every
// other rule is expressed relative to it.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
)

// Registry is an immutable catalog of conversion rules.
type Registry struct {
	rules map[domain.Unit]Rule
	order []domain.Unit
	bases map[*domain.Dimension]domain.Unit
	dims  []*domain.Dimension
}

// Rule returns the conversion rule of unit.
func (r *Registry) Rule(unit domain.Unit) (Rule, error) {
	rule, ok := r.rules[unit]
	if !ok {
		return Rule{}, domain.UnregisteredUnit(unit)
	}
	return rule, nil
}

// Units returns every registered unit in registration order. The slice is a
// copy.
func (r *Registry) Units() []domain.Unit {
	out := make([]domain.Unit, len(r.order))
	copy(out, r.order)
	return out
}

// Contains reports whether unit has a rule.
func (r *Registry) Contains(unit domain.Unit) bool {
	_, ok := r.rules[unit]
	return ok
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.order)
}

// Base returns the reference unit of a dimension.
func (r *Registry) Base(dim *domain.Dimension) (domain.Unit, bool) {
	u, ok := r.bases[dim]
	return u, ok
}

// Dimensions returns the dimensions present, in order of first registration.
func (r *Registry) Dimensions() []*domain.Dimension {
	out := make([]*domain.Dimension, len(r.dims))
	copy(out, r.dims)
	return out
}

// Lookup finds the first registered unit whose Unicode or ASCII symbol equals
// symbol.
func (r *Registry) Lookup(symbol string) (domain.Unit, bool) {
	symbol = strings.TrimSpace(symbol)
	for _, u := range r.order {
		if u.Symbol(domain.NotationUnicode) == symbol || u.Symbol(domain.NotationASCII) == symbol {
			return u, true
		}
	}
	return nil, false
}

// Builder accumulates rules for a Registry. It is not safe for concurrent use.
type Builder struct {
	rules map[domain.Unit]Rule
	order []domain.Unit
	bases map[*domain.Dimension]domain.Unit
	dims  []*domain.Dimension
	errs  []error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		rules: make(map[domain.Unit]Rule),
		bases: make(map[*domain.Dimension]domain.Unit),
	}
}

// Extend returns a builder pre-populated with every rule of reg.
func Extend(reg *Registry) *Builder {
	b := NewBuilder()
	if reg == nil {
		return b
	}
	for _, u := range reg.order {
		b.rules[u] = reg.rules[u]
		b.order = append(b.order, u)
	}
	for d, u := range reg.bases {
		b.bases[d] = u
	}
	b.dims = append(b.dims, reg.dims...)
	return b
}

// Base registers unit as the reference unit of its dimension.
func (b *Builder) Base(unit domain.Unit) *Builder {
	if unit == nil || unit.Dimension() == nil {
		b.errs = append(b.errs, fmt.Errorf("registry: base unit must belong to a dimension"))
		return b
	}
	dim := unit.Dimension()
	if existing, ok := b.bases[dim]; ok && existing != unit {
		b.errs = append(b.errs, fmt.Errorf("registry: dimension %s already has base unit %s, cannot add %s",
			dim, existing.Name(), unit.Name()))
		return b
	}
	b.bases[dim] = unit
	return b.put(unit, Identity())
}

// Register inserts or replaces the rule of unit. Registration order is kept
// from the first insertion.
func (b *Builder) Register(unit domain.Unit, rule Rule) *Builder {
	if unit == nil || unit.Dimension() == nil {
		b.errs = append(b.errs, fmt.Errorf("registry: unit must belong to a dimension"))
		return b
	}
	if err := rule.validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("registry: rule for %s: %w", unit.Name(), err))
		return b
	}
	if base, ok := b.bases[unit.Dimension()]; ok && base == unit && !rule.IsIdentity() {
		b.errs = append(b.errs, fmt.Errorf("registry: base unit %s must keep the identity rule", unit.Name()))
		return b
	}
	return b.put(unit, rule)
}

func (b *Builder) put(unit domain.Unit, rule Rule) *Builder {
	if rule.Offset == nil {
		rule.Offset = number.Zero()
	}
	if _, exists := b.rules[unit]; !exists {
		b.order = append(b.order, unit)
		if !b.hasDimension(unit.Dimension()) {
			b.dims = append(b.dims, unit.Dimension())
		}
	}
	b.rules[unit] = rule
	return b
}

func (b *Builder) hasDimension(dim *domain.Dimension) bool {
	for _, d := range b.dims {
		if d == dim {
			return true
		}
	}
	return false
}

// HasBase reports whether dim already has a reference unit.
func (b *Builder) HasBase(dim *domain.Dimension) bool {
	_, ok := b.bases[dim]
	return ok
}

// Build validates the accumulated rules and freezes them into a Registry. The
// builder may keep being used; later changes do not affect the result.
func (b *Builder) Build() (*Registry, error) {
	errs := append([]error(nil), b.errs...)
	for _, d := range b.dims {
		if _, ok := b.bases[d]; !ok {
			errs = append(errs, fmt.Errorf("registry: dimension %s has no base unit", d))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	reg := &Registry{
		rules: make(map[domain.Unit]Rule, len(b.rules)),
		order: append([]domain.Unit(nil), b.order...),
		bases: make(map[*domain.Dimension]domain.Unit, len(b.bases)),
		dims:  append([]*domain.Dimension(nil), b.dims...),
	}
	for u, r := range b.rules {
		reg.rules[u] = r
	}
	for d, u := range b.bases {
		reg.bases[d] = u
	}
	return reg, nil
}
