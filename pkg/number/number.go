// Package number provides the arbitrary-precision decimal arithmetic used by
// every conversion.
//
// Number is the capability boundary: converters, comparators and the
// auto-scaler only ever call Number methods, so the backing big-decimal
// implementation can be swapped without touching them. Decimal is the default
// implementation and is backed by gopkg.in/inf.v0.
//
// Every operation returns a new value; receivers are never mutated.
package number

// Number is an immutable arbitrary-precision decimal value.
type Number interface {
	// Add, Sub and Mul are exact.
	Add(y Number) Number
	Sub(y Number) Number
	Mul(y Number) Number
	// Div returns x/y rounded to scale decimal places.
	Div(y Number, scale int32, mode RoundingMode) (Number, error)
	// Pow returns x**n. Non-negative exponents are exact; negative exponents
	// divide at the requested scale.
	Pow(n int, scale int32, mode RoundingMode) (Number, error)
	// Sqrt returns the square root rounded to scale decimal places.
	Sqrt(scale int32, mode RoundingMode) (Number, error)
	// Round returns x rounded to scale decimal places.
	Round(scale int32, mode RoundingMode) (Number, error)

	Cmp(y Number) int
	// Equal reports |x-y| <= |tolerance|. A nil tolerance requires numeric
	// equality, ignoring trailing zeros.
	Equal(y Number, tolerance Number) bool
	Sign() int
	IsZero() bool
	Abs() Number
	Neg() Number
	// Scale is the number of digits after the decimal point.
	Scale() int32
	Float64() float64
	String() string
}
