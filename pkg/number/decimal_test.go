package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/polisai/measure/pkg/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.50", "12.50"},
		{"-0.001", "-0.001"},
		{" 42 ", "42"},
		{"1e3", "1000"},
		{"1.5e-2", "0.015"},
		{"-2.5E1", "-25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	for _, bad := range []string{"", "abc", "1.2.3", "1e", "1ex"} {
		_, err := Parse(bad)
		assert.Error(t, err, "literal %q", bad)
	}
}

// sciNumber is a Number from another implementation that prints itself in
// exponent notation.
type sciNumber struct {
	Decimal
	text string
}

func (n sciNumber) String() string { return n.text }

func TestForeignNumberInExponentNotation(t *testing.T) {
	thousand := sciNumber{Decimal: FromInt64(1000), text: "1E+3"}
	hundredth := sciNumber{Decimal: MustParse("0.025"), text: "2.5e-2"}

	assert.Equal(t, "1001", One().Add(thousand).String())
	assert.Zero(t, MustParse("25").Cmp(MustParse("0.025").Mul(thousand)))
	assert.Zero(t, MustParse("1000.025").Cmp(hundredth.Add(thousand)), "receiver is a Decimal")
	assert.Equal(t, 0, FromInt64(1000).Cmp(thousand))

	q, err := FromInt64(5).Div(thousand, 3, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0.005", q.String())

	assert.Panics(t, func() { One().Add(sciNumber{Decimal: One(), text: "one"}) })
}

func TestZeroValueIsZero(t *testing.T) {
	var d Decimal
	assert.True(t, d.IsZero())
	assert.Equal(t, "0", d.String())
	assert.Equal(t, 0, d.Cmp(Zero()))
}

func TestFromFloat64(t *testing.T) {
	d, err := FromFloat64(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", d.String())

	_, err = FromFloat64(math.NaN())
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	_, err = FromFloat64(math.Inf(1))
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestDiv(t *testing.T) {
	one := FromInt64(1)
	two := FromInt64(2)
	three := FromInt64(3)

	q, err := one.Div(three, 4, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0.3333", q.String())

	q, err = two.Div(three, 4, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0.6667", q.String())

	q, err = two.Div(three, 4, Down)
	require.NoError(t, err)
	assert.Equal(t, "0.6666", q.String())

	q, err = one.Div(FromInt64(4), 2, Unnecessary)
	require.NoError(t, err)
	assert.Equal(t, "0.25", q.String())

	_, err = one.Div(three, 2, Unnecessary)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, domain.CodeRoundingNecessary, domain.ErrorCode(err))

	_, err = one.Div(Zero(), 2, HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, domain.CodeDivisionByZero, domain.ErrorCode(err))
}

func TestRoundModes(t *testing.T) {
	tests := []struct {
		value string
		mode  RoundingMode
		want  string
	}{
		{"2.345", HalfEven, "2.34"},
		{"2.355", HalfEven, "2.36"},
		{"2.345", HalfUp, "2.35"},
		{"2.345", HalfDown, "2.34"},
		{"-2.341", Ceiling, "-2.34"},
		{"-2.341", Floor, "-2.35"},
		{"2.341", Up, "2.35"},
		{"-2.341", Up, "-2.35"},
		{"2.349", Down, "2.34"},
		{"2.3", HalfUp, "2.30"},
	}
	for _, tt := range tests {
		t.Run(tt.value+"/"+tt.mode.String(), func(t *testing.T) {
			r, err := MustParse(tt.value).Round(2, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}

	_, err := MustParse("2.345").Round(2, Unnecessary)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestSqrt(t *testing.T) {
	r, err := FromInt64(2).Sqrt(10, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "1.4142135624", r.String())

	r, err = FromInt64(16).Sqrt(2, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "4.00", r.String())

	r, err = MustParse("0.25").Sqrt(1, Unnecessary)
	require.NoError(t, err)
	assert.Equal(t, "0.5", r.String())

	_, err = FromInt64(2).Sqrt(3, Unnecessary)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = FromInt64(-4).Sqrt(2, HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, domain.CodeNegativeSqrt, domain.ErrorCode(err))
}

func TestSqrtHalfwayIsNotFalseTie(t *testing.T) {
	// sqrt(0.0225) is exactly 0.15, a genuine tie at scale 1.
	r, err := MustParse("0.0225").Sqrt(1, HalfDown)
	require.NoError(t, err)
	assert.Equal(t, "0.1", r.String())

	// sqrt(0.02250001) is just above 0.15 and must round up even for HalfDown.
	r, err = MustParse("0.02250001").Sqrt(1, HalfDown)
	require.NoError(t, err)
	assert.Equal(t, "0.2", r.String())
}

func TestPow(t *testing.T) {
	r, err := MustParse("1.5").Pow(3, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "3.375", r.String())

	r, err = FromInt64(2).Pow(-2, 4, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0.2500", r.String())

	r, err = MustParse("7.25").Pow(0, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())

	_, err = Zero().Pow(-1, 2, HalfUp)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestEqual(t *testing.T) {
	assert.True(t, MustParse("1.0").Equal(MustParse("1.00"), nil))
	assert.False(t, MustParse("1.0").Equal(MustParse("1.01"), nil))
	assert.True(t, MustParse("1.001").Equal(MustParse("1.0"), MustParse("0.01")))
	assert.True(t, MustParse("1.001").Equal(MustParse("1.0"), MustParse("-0.01")))
	assert.False(t, MustParse("1.001").Equal(MustParse("1.0"), MustParse("0.0001")))
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := MustParse("1.25")
	b := MustParse("2.5")
	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Neg()
	_, _ = a.Round(0, HalfUp)
	assert.Equal(t, "1.25", a.String())
	assert.Equal(t, "2.5", b.String())
}

func TestTextRoundTrip(t *testing.T) {
	var d Decimal
	require.NoError(t, d.UnmarshalText([]byte("1000.5")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1000.5", string(text))
	assert.Error(t, d.UnmarshalText([]byte("x")))
}

func TestFloat64(t *testing.T) {
	assert.InDelta(t, 1200.5, MustParse("1200.5").Float64(), 1e-12)
	assert.InDelta(t, -0.001, MustParse("-0.001").Float64(), 1e-15)
}

func decimalGen() *rapid.Generator[Decimal] {
	return rapid.Custom(func(t *rapid.T) Decimal {
		unscaled := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, "unscaled")
		scale := rapid.Int32Range(0, 8).Draw(t, "scale")
		return FromUnscaled(unscaled, scale)
	})
}

func TestAddSubInverseProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := decimalGen().Draw(t, "a")
		b := decimalGen().Draw(t, "b")
		if a.Add(b).Sub(b).Cmp(a) != 0 {
			t.Fatalf("(%s + %s) - %s != %s", a, b, b, a)
		}
	})
}

func TestMulDivInverseProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := decimalGen().Draw(t, "a")
		b := decimalGen().Draw(t, "b")
		if b.IsZero() {
			t.Skip("zero divisor")
		}
		q, err := a.Mul(b).Div(b, a.Scale(), Unnecessary)
		if err != nil {
			t.Fatalf("(%s * %s) / %s: %v", a, b, b, err)
		}
		if q.Cmp(a) != 0 {
			t.Fatalf("(%s * %s) / %s = %s", a, b, b, q)
		}
	})
}

func TestCmpAntisymmetryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := decimalGen().Draw(t, "a")
		b := decimalGen().Draw(t, "b")
		if a.Cmp(b) != -b.Cmp(a) {
			t.Fatalf("Cmp(%s, %s) not antisymmetric", a, b)
		}
	})
}
