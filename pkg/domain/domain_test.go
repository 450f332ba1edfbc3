package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionIdentity(t *testing.T) {
	d, ok := LookupDimension(" Length ")
	require.True(t, ok)
	assert.Same(t, Length, d)
	assert.True(t, Length.Compatible(d))
	assert.False(t, Length.Compatible(Mass))
	assert.False(t, (*Dimension)(nil).Compatible(nil))

	_, ok = LookupDimension("luminosity")
	assert.False(t, ok)

	dims := Dimensions()
	require.Len(t, dims, 10)
	assert.Same(t, Area, dims[0])
	assert.Same(t, Volume, dims[len(dims)-1])
}

func TestUnitSystemNames(t *testing.T) {
	for _, name := range []string{"us_customary", "US-CUSTOMARY", "uscustomary"} {
		s, err := ParseUnitSystem(name)
		require.NoError(t, err, name)
		assert.Equal(t, SystemUSCustomary, s)
	}
	assert.Equal(t, "si", SystemSI.String())
	assert.Equal(t, "UnitSystem(42)", UnitSystem(42).String())

	_, err := ParseUnitSystem("martian")
	assert.Error(t, err)
}

func TestFamily(t *testing.T) {
	f := NewFamily("typography", Length)
	assert.Equal(t, "typography", f.Name())
	assert.Same(t, Length, f.Dimension())
	assert.NotSame(t, f, NewFamily("typography", Length))

	var missing *Family
	assert.Equal(t, "<nil>", missing.Name())
	assert.Nil(t, missing.Dimension())
}

func TestQuantityErrors(t *testing.T) {
	err := IncompatibleDimension(Energy, Length)
	assert.True(t, errors.Is(err, ErrIncompatibleDimension))
	assert.Equal(t, "incompatible dimension: energy is not compatible with length", err.Error())

	var qe *QuantityError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "energy", qe.Details["left"])

	wrapped := fmt.Errorf("compare: %w", InvalidOperation(CodeDivisionByZero, "divide %d by zero", 7))
	assert.True(t, errors.Is(wrapped, ErrInvalidOperation))
	assert.Equal(t, CodeDivisionByZero, ErrorCode(wrapped))

	err = UnregisteredUnit(nil)
	assert.True(t, errors.Is(err, ErrUnregisteredUnit))
	assert.Contains(t, err.Error(), "<nil>")

	err = InvalidUnit(CodeUnitMissing, nil, "no unit")
	assert.True(t, errors.Is(err, ErrInvalidUnit))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
}
