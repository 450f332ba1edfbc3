package units

import "github.com/polisai/measure/pkg/domain"

// CustomUnit is a unit declared at runtime, typically by a rule catalog.
// Custom units compare by identity: two values are equal only when they come
// from the same NewCustomUnit call.
type CustomUnit struct {
	def *customDef
}

type customDef struct {
	family *domain.Family
	info   unitInfo
}

// NewCustomUnit declares a unit belonging to family. ascii may be empty when
// the symbol is already plain ASCII.
func NewCustomUnit(family *domain.Family, system domain.UnitSystem, symbol, ascii, name string) CustomUnit {
	if name == "" {
		name = symbol
	}
	return CustomUnit{def: &customDef{
		family: family,
		info:   unitInfo{symbol: symbol, ascii: ascii, name: name, system: system},
	}}
}

func (u CustomUnit) Dimension() *domain.Dimension { return u.Family().Dimension() }

func (u CustomUnit) Family() *domain.Family {
	if u.def == nil {
		return nil
	}
	return u.def.family
}

func (u CustomUnit) System() domain.UnitSystem { return u.info().system }
func (u CustomUnit) Name() string { return u.info().name }
func (u CustomUnit) Symbol(n domain.Notation) string { return u.info().render(n) }
func (u CustomUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u CustomUnit) info() unitInfo {
	if u.def == nil {
		return unknownUnit
	}
	return u.def.info
}
