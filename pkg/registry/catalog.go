package registry

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/units"
)

// Catalog declares additional unit families and their rules, usually read
// from a YAML file:
//
//	families:
//	  - name: typography
//	    dimension: length
//	    system: imperial
//	    units:
//	      - symbol: pt
//	        name: point
//	        factor: "0.0254/72"
type Catalog struct {
	Families []FamilySpec `yaml:"families"`
}

// FamilySpec declares one family of custom units.
type FamilySpec struct {
	Name      string     `yaml:"name"`
	Dimension string     `yaml:"dimension"`
	System    string     `yaml:"system"`
	Units     []UnitSpec `yaml:"units"`
}

// UnitSpec declares one custom unit. Factor accepts a decimal or "num/den";
// a non-zero Offset makes the rule affine. Base marks the reference unit of a
// dimension that has none yet.
type UnitSpec struct {
	Symbol string `yaml:"symbol"`
	ASCII  string `yaml:"ascii"`
	Name   string `yaml:"name"`
	System string `yaml:"system"`
	Factor string `yaml:"factor"`
	Offset string `yaml:"offset"`
	Base   bool   `yaml:"base"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("registry: parse catalog: %w", err)
	}
	return &c, nil
}

// LoadCatalog reads and decodes a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	//nolint:gosec // Catalog paths come from operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// UnitCache keeps custom unit identities stable across repeated catalog
// applications, so quantities built before a reload still resolve afterwards.
// It is safe for concurrent use.
type UnitCache struct {
	mu       sync.Mutex
	families map[string]*domain.Family
	units    map[string]units.CustomUnit
}

// NewUnitCache returns an empty cache.
func NewUnitCache() *UnitCache {
	return &UnitCache{
		families: make(map[string]*domain.Family),
		units:    make(map[string]units.CustomUnit),
	}
}

func (c *UnitCache) family(name string, dim *domain.Dimension) *domain.Family {
	if c == nil {
		return domain.NewFamily(name, dim)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.families[name]; ok && f.Dimension() == dim {
		return f
	}
	f := domain.NewFamily(name, dim)
	c.families[name] = f
	return f
}

func (c *UnitCache) unit(family *domain.Family, system domain.UnitSystem, spec UnitSpec) units.CustomUnit {
	if c == nil {
		return units.NewCustomUnit(family, system, spec.Symbol, spec.ASCII, spec.Name)
	}
	key := family.Name() + "/" + spec.Symbol
	c.mu.Lock()
	defer c.mu.Unlock()
	if u, ok := c.units[key]; ok &&
		u.Family() == family && u.System() == system &&
		u.Symbol(domain.NotationASCII) == asciiOrSymbol(spec) && u.Name() == nameOrSymbol(spec) {
		return u
	}
	u := units.NewCustomUnit(family, system, spec.Symbol, spec.ASCII, spec.Name)
	c.units[key] = u
	return u
}

func asciiOrSymbol(spec UnitSpec) string {
	if spec.ASCII != "" {
		return spec.ASCII
	}
	return spec.Symbol
}

func nameOrSymbol(spec UnitSpec) string {
	if spec.Name != "" {
		return spec.Name
	}
	return spec.Symbol
}

// Apply registers every unit of the catalog on b and returns the declared
// units in catalog order. cache may be nil.
func (c *Catalog) Apply(b *Builder, cache *UnitCache) ([]domain.Unit, error) {
	seen := make(map[string]bool)
	var declared []domain.Unit

	for i, fs := range c.Families {
		name := strings.TrimSpace(fs.Name)
		if name == "" {
			return nil, fmt.Errorf("registry: catalog family %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("registry: duplicate catalog family %q", name)
		}
		seen[name] = true

		dim, ok := domain.LookupDimension(fs.Dimension)
		if !ok {
			return nil, fmt.Errorf("registry: family %s: unknown dimension %q", name, fs.Dimension)
		}
		familySystem, err := parseSystem(fs.System, domain.SystemNone)
		if err != nil {
			return nil, fmt.Errorf("registry: family %s: %w", name, err)
		}
		if len(fs.Units) == 0 {
			return nil, fmt.Errorf("registry: family %s declares no units", name)
		}

		family := cache.family(name, dim)
		symbols := make(map[string]bool)
		for _, us := range fs.Units {
			if strings.TrimSpace(us.Symbol) == "" {
				return nil, fmt.Errorf("registry: family %s: unit without symbol", name)
			}
			if symbols[us.Symbol] {
				return nil, fmt.Errorf("registry: family %s: duplicate symbol %q", name, us.Symbol)
			}
			symbols[us.Symbol] = true

			system, err := parseSystem(us.System, familySystem)
			if err != nil {
				return nil, fmt.Errorf("registry: unit %s/%s: %w", name, us.Symbol, err)
			}
			unit := cache.unit(family, system, us)

			if us.Base {
				if b.HasBase(dim) {
					return nil, fmt.Errorf("registry: unit %s/%s: dimension %s already has a base unit", name, us.Symbol, dim)
				}
				b.Base(unit)
			} else {
				if strings.TrimSpace(us.Factor) == "" {
					return nil, fmt.Errorf("registry: unit %s/%s: factor is required", name, us.Symbol)
				}
				rule, err := ParseRule(us.Factor, us.Offset)
				if err != nil {
					return nil, fmt.Errorf("registry: unit %s/%s: %w", name, us.Symbol, err)
				}
				b.Register(unit, rule)
			}
			declared = append(declared, unit)
		}

		if !b.HasBase(dim) {
			return nil, fmt.Errorf("registry: family %s: dimension %s has no base unit", name, dim)
		}
	}
	return declared, nil
}

func parseSystem(name string, fallback domain.UnitSystem) (domain.UnitSystem, error) {
	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}
	return domain.ParseUnitSystem(name)
}
