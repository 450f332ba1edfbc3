package number

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/polisai/measure/pkg/domain"
)

type countingRounder struct {
	inf.Rounder
	calls *int
}

func (r countingRounder) Round(z, quo *inf.Dec, remNum, remDen *big.Int) *inf.Dec {
	*r.calls++
	return r.Rounder.Round(z, quo, remNum, remDen)
}

func TestParseRoundingMode(t *testing.T) {
	for _, name := range []string{"half_up", "HALF_UP", "half-up", "HalfUp"} {
		m, err := ParseRoundingMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, HalfUp, m)
	}
	m, err := ParseRoundingMode("ceil")
	require.NoError(t, err)
	assert.Equal(t, Ceiling, m)

	_, err = ParseRoundingMode("sideways")
	assert.Error(t, err)
}

func TestBuiltinCodesAreReserved(t *testing.T) {
	for i, m := range RoundingModes() {
		assert.Equal(t, i, m.Code())
		assert.Less(t, m.Code(), CustomCodeMin)
	}
}

func TestCustomRoundingModeIsUsedAsStrategy(t *testing.T) {
	calls := 0
	mode, err := NewRoundingMode(120, "COUNTING_HALF_UP", countingRounder{Rounder: inf.RoundHalfUp, calls: &calls})
	require.NoError(t, err)
	assert.Equal(t, 120, mode.Code())
	assert.Equal(t, "COUNTING_HALF_UP", mode.String())

	q, err := FromInt64(2).Div(FromInt64(3), 3, mode)
	require.NoError(t, err)
	assert.Equal(t, "0.667", q.String())
	assert.Positive(t, calls)
}

func TestNewRoundingModeRejectsReservedCodes(t *testing.T) {
	_, err := NewRoundingMode(99, "X", inf.RoundDown)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = NewRoundingMode(100, "X", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	m, err := NewRoundingMode(101, "", inf.RoundDown)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM_101", m.String())
}
