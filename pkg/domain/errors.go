package domain

import (
	"errors"
	"fmt"
)

// Quantity error kinds. Every error returned by the measurement packages
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrIncompatibleDimension = errors.New("incompatible dimension")
	ErrInvalidOperation      = errors.New("invalid operation")
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrUnregisteredUnit      = errors.New("unregistered unit")
)

// Error codes carried by QuantityError.Code.
const (
	CodeIncompatibleDimension = "dimension.incompatible"
	CodeDivisionByZero        = "arith.division_by_zero"
	CodeNegativeSqrt          = "arith.negative_sqrt"
	CodeRoundingNecessary     = "arith.rounding_necessary"
	CodeInvalidArgument       = "arith.invalid_argument"
	CodeUnitExactMismatch     = "unit.exact_mismatch"
	CodeUnitFamilyMismatch    = "unit.family_mismatch"
	CodeUnitDimensionMismatch = "unit.dimension_mismatch"
	CodeUnitMissing           = "unit.missing"
	CodeUnregisteredUnit      = "registry.unregistered_unit"
)

// QuantityError wraps one of the quantity error kinds with a stable code and
// optional structured details.
type QuantityError struct {
	Err     error
	Code    string
	Message string
	Details map[string]any
}

func (e *QuantityError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

func (e *QuantityError) Unwrap() error {
	return e.Err
}

// IncompatibleDimension reports an operation attempted across unrelated dimensions.
func IncompatibleDimension(a, b *Dimension) error {
	return &QuantityError{
		Err:     ErrIncompatibleDimension,
		Code:    CodeIncompatibleDimension,
		Message: fmt.Sprintf("%s is not compatible with %s", a, b),
		Details: map[string]any{"left": a.Name(), "right": b.Name()},
	}
}

// InvalidOperation reports invalid arithmetic such as division by zero.
func InvalidOperation(code, format string, args ...any) error {
	return &QuantityError{
		Err:     ErrInvalidOperation,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidUnit reports a unit rejected by a quantity factory constraint.
func InvalidUnit(code string, unit Unit, format string, args ...any) error {
	details := map[string]any{}
	if unit != nil {
		details["unit"] = unit.Name()
	}
	return &QuantityError{
		Err:     ErrInvalidUnit,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: details,
	}
}

// UnregisteredUnit reports a registry lookup for a unit that has no rule.
func UnregisteredUnit(unit Unit) error {
	name := "<nil>"
	if unit != nil {
		name = unit.Name()
	}
	return &QuantityError{
		Err:     ErrUnregisteredUnit,
		Code:    CodeUnregisteredUnit,
		Message: fmt.Sprintf("no conversion rule for %s", name),
		Details: map[string]any{"unit": name},
	}
}

// ErrorCode returns the QuantityError code carried by err, or "" when err is
// not a quantity error.
func ErrorCode(err error) string {
	var qe *QuantityError
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}
