package number

import (
	"fmt"
	"strings"

	"gopkg.in/inf.v0"

	"github.com/polisai/measure/pkg/domain"
)

// CustomCodeMin is the lowest code a custom rounding mode may use. Codes below
// it are reserved for the builtin modes.
const CustomCodeMin = 100

// RoundingMode is an opaque rounding strategy. The set is open: callers may
// define their own modes with NewRoundingMode, and nothing in the conversion
// pipeline switches on the concrete mode.
type RoundingMode interface {
	Code() int
	String() string
	Rounder() inf.Rounder
}

type roundingMode struct {
	code    int
	name    string
	rounder inf.Rounder
}

func (m *roundingMode) Code() int            { return m.code }
func (m *roundingMode) String() string       { return m.name }
func (m *roundingMode) Rounder() inf.Rounder { return m.rounder }

// Builtin rounding modes.
var (
	// Up rounds away from zero.
	Up RoundingMode = &roundingMode{0, "UP", inf.RoundUp}
	// Down truncates toward zero.
	Down RoundingMode = &roundingMode{1, "DOWN", inf.RoundDown}
	// Ceiling rounds toward positive infinity.
	Ceiling RoundingMode = &roundingMode{2, "CEILING", inf.RoundCeil}
	// Floor rounds toward negative infinity.
	Floor RoundingMode = &roundingMode{3, "FLOOR", inf.RoundFloor}
	// HalfUp rounds to nearest, ties away from zero.
	HalfUp RoundingMode = &roundingMode{4, "HALF_UP", inf.RoundHalfUp}
	// HalfDown rounds to nearest, ties toward zero.
	HalfDown RoundingMode = &roundingMode{5, "HALF_DOWN", inf.RoundHalfDown}
	// HalfEven rounds to nearest, ties to the even neighbour.
	HalfEven RoundingMode = &roundingMode{6, "HALF_EVEN", inf.RoundHalfEven}
	// Unnecessary fails with ErrInvalidOperation when rounding would lose digits.
	Unnecessary RoundingMode = &roundingMode{7, "UNNECESSARY", inf.RoundExact}
)

var builtinModes = []RoundingMode{Up, Down, Ceiling, Floor, HalfUp, HalfDown, HalfEven, Unnecessary}

// RoundingModes returns the builtin modes ordered by code.
func RoundingModes() []RoundingMode {
	out := make([]RoundingMode, len(builtinModes))
	copy(out, builtinModes)
	return out
}

// NewRoundingMode defines a custom rounding strategy. Codes below
// CustomCodeMin are rejected.
func NewRoundingMode(code int, name string, rounder inf.Rounder) (RoundingMode, error) {
	if code < CustomCodeMin {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument,
			"custom rounding mode code %d is reserved, use %d or above", code, CustomCodeMin)
	}
	if rounder == nil {
		return nil, domain.InvalidOperation(domain.CodeInvalidArgument, "rounding mode %q has no rounder", name)
	}
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("CUSTOM_%d", code)
	}
	return &roundingMode{code: code, name: name, rounder: rounder}, nil
}

// ParseRoundingMode resolves a builtin mode by name. "half_up", "HALF_UP",
// "half-up" and "halfup" all resolve to HalfUp.
func ParseRoundingMode(name string) (RoundingMode, error) {
	key := normalizeModeName(name)
	for _, m := range builtinModes {
		if normalizeModeName(m.String()) == key {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown rounding mode %q", name)
}

func normalizeModeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	if key == "ceil" {
		key = "ceiling"
	}
	return key
}
