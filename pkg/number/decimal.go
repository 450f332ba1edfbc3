package number

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"

	"github.com/polisai/measure/pkg/domain"
)

// Decimal is the default Number implementation: an unscaled big integer and a
// decimal scale. The zero value is 0.
type Decimal struct {
	d *inf.Dec
}

var (
	zeroDec = inf.NewDec(0, 0)
	oneDec  = inf.NewDec(1, 0)
)

// Zero returns the decimal 0.
func Zero() Decimal { return Decimal{d: zeroDec} }

// One returns the decimal 1.
func One() Decimal { return Decimal{d: oneDec} }

// FromInt64 returns the exact decimal value of v.
func FromInt64(v int64) Decimal {
	return Decimal{d: inf.NewDec(v, 0)}
}

// FromUnscaled returns unscaled * 10**-scale.
func FromUnscaled(unscaled int64, scale int32) Decimal {
	return Decimal{d: inf.NewDec(unscaled, inf.Scale(scale))}
}

// FromFloat64 returns the shortest decimal that round-trips to v. NaN and
// infinities are rejected.
func FromFloat64(v float64) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}, domain.InvalidOperation(domain.CodeInvalidArgument, "cannot represent %v as a decimal", v)
	}
	return Parse(strconv.FormatFloat(v, 'f', -1, 64))
}

// Parse reads a plain decimal literal such as "-12.50". Exponent notation
// ("1e3") is also accepted.
func Parse(s string) (Decimal, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return Decimal{}, fmt.Errorf("number: empty decimal literal")
	}
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		return parseExponent(lit[:i], lit[i+1:], s)
	}
	d, ok := new(inf.Dec).SetString(lit)
	if !ok {
		return Decimal{}, fmt.Errorf("number: invalid decimal literal %q", s)
	}
	return Decimal{d: d}, nil
}

func parseExponent(mantissa, exponent, raw string) (Decimal, error) {
	m, ok := new(inf.Dec).SetString(mantissa)
	if !ok {
		return Decimal{}, fmt.Errorf("number: invalid decimal literal %q", raw)
	}
	exp, err := strconv.ParseInt(exponent, 10, 32)
	if err != nil {
		return Decimal{}, fmt.Errorf("number: invalid exponent in %q: %w", raw, err)
	}
	scale := int64(m.Scale()) - exp
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return Decimal{}, fmt.Errorf("number: exponent out of range in %q", raw)
	}
	d := inf.NewDecBig(new(big.Int).Set(m.UnscaledBig()), inf.Scale(scale))
	if d.Scale() < 0 {
		// Normalise to a non-negative scale so String never prints exponents.
		d = new(inf.Dec).Round(d, 0, inf.RoundExact)
	}
	return Decimal{d: d}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Of converts any Number into a Decimal.
func Of(n Number) (Decimal, error) {
	if d, ok := n.(Decimal); ok {
		return d, nil
	}
	if n == nil {
		return Decimal{}, domain.InvalidOperation(domain.CodeInvalidArgument, "nil number")
	}
	return Parse(n.String())
}

func (x Decimal) dec() *inf.Dec {
	if x.d == nil {
		return zeroDec
	}
	return x.d
}

// toDec reads the value of n. Foreign Number implementations are read through
// their string form, which may use exponent notation.
func toDec(n Number) *inf.Dec {
	switch v := n.(type) {
	case Decimal:
		return v.dec()
	case nil:
		return zeroDec
	default:
		d, err := Parse(v.String())
		if err != nil {
			panic(fmt.Sprintf("number: %T produced an invalid decimal string: %v", n, err))
		}
		return d.dec()
	}
}

func (x Decimal) Add(y Number) Number {
	return Decimal{d: new(inf.Dec).Add(x.dec(), toDec(y))}
}

func (x Decimal) Sub(y Number) Number {
	return Decimal{d: new(inf.Dec).Sub(x.dec(), toDec(y))}
}

func (x Decimal) Mul(y Number) Number {
	return Decimal{d: new(inf.Dec).Mul(x.dec(), toDec(y))}
}

func (x Decimal) Div(y Number, scale int32, mode RoundingMode) (Number, error) {
	divisor := toDec(y)
	if divisor.Sign() == 0 {
		return nil, domain.InvalidOperation(domain.CodeDivisionByZero, "%s / 0", x)
	}
	q := new(inf.Dec).QuoRound(x.dec(), divisor, inf.Scale(scale), rounder(mode))
	if q == nil {
		return nil, domain.InvalidOperation(domain.CodeRoundingNecessary,
			"%s / %s is not exact at scale %d", x, divisor, scale)
	}
	return Decimal{d: q}, nil
}

func (x Decimal) Pow(n int, scale int32, mode RoundingMode) (Number, error) {
	base := x.dec()
	exp := n
	if exp < 0 {
		exp = -exp
	}
	result := new(inf.Dec).Set(oneDec)
	sq := new(inf.Dec).Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, sq)
		}
		exp >>= 1
		if exp > 0 {
			sq.Mul(sq, sq)
		}
	}
	if n >= 0 {
		return Decimal{d: result}, nil
	}
	return One().Div(Decimal{d: result}, scale, mode)
}

// Sqrt is correctly rounded for every mode: the integer square root is taken
// one digit past the requested scale and a sticky digit marks inexact roots so
// that half-way modes never see a false tie.
func (x Decimal) Sqrt(scale int32, mode RoundingMode) (Number, error) {
	d := x.dec()
	switch d.Sign() {
	case -1:
		return nil, domain.InvalidOperation(domain.CodeNegativeSqrt, "square root of negative value %s", x)
	case 0:
		return x.Round(scale, mode)
	}

	work := int64(scale) + 1
	if work < 0 {
		work = 0
	}
	if half := (int64(d.Scale()) + 1) / 2; half > work {
		work = half
	}
	shift := 2*work - int64(d.Scale())
	radicand := new(big.Int).Mul(d.UnscaledBig(), new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil))

	root := new(big.Int).Sqrt(radicand)
	var approx *inf.Dec
	if new(big.Int).Mul(root, root).Cmp(radicand) == 0 {
		approx = inf.NewDecBig(root, inf.Scale(work))
	} else {
		sticky := new(big.Int).Mul(root, big.NewInt(10))
		sticky.Add(sticky, big.NewInt(1))
		approx = inf.NewDecBig(sticky, inf.Scale(work+1))
	}
	return Decimal{d: approx}.Round(scale, mode)
}

func (x Decimal) Round(scale int32, mode RoundingMode) (Number, error) {
	r := new(inf.Dec).Round(x.dec(), inf.Scale(scale), rounder(mode))
	if r == nil {
		return nil, domain.InvalidOperation(domain.CodeRoundingNecessary,
			"%s cannot be represented at scale %d without rounding", x, scale)
	}
	return Decimal{d: r}, nil
}

func (x Decimal) Cmp(y Number) int {
	return x.dec().Cmp(toDec(y))
}

func (x Decimal) Equal(y Number, tolerance Number) bool {
	if tolerance == nil {
		return x.Cmp(y) == 0
	}
	diff := new(inf.Dec).Sub(x.dec(), toDec(y))
	diff.Abs(diff)
	tol := new(inf.Dec).Abs(toDec(tolerance))
	return diff.Cmp(tol) <= 0
}

func (x Decimal) Sign() int {
	return x.dec().Sign()
}

func (x Decimal) IsZero() bool {
	return x.dec().Sign() == 0
}

func (x Decimal) Abs() Number {
	return Decimal{d: new(inf.Dec).Abs(x.dec())}
}

func (x Decimal) Neg() Number {
	return Decimal{d: new(inf.Dec).Neg(x.dec())}
}

func (x Decimal) Scale() int32 {
	return int32(x.dec().Scale())
}

func (x Decimal) Float64() float64 {
	// Out-of-range values come back as ±Inf together with a range error.
	f, _ := strconv.ParseFloat(x.dec().String(), 64)
	return f
}

func (x Decimal) String() string {
	return x.dec().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so decimals can be read
// from YAML and JSON documents as strings.
func (x *Decimal) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = d
	return nil
}

func rounder(mode RoundingMode) inf.Rounder {
	if mode == nil {
		return inf.RoundHalfUp
	}
	return mode.Rounder()
}
