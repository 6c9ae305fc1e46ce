// Package num provides the decimal number type used by the calculator.
//
// A Number is an immutable arbitrary-precision decimal. Arithmetic is
// carried out to 28 significant digits with round-half-even, which
// matches the behaviour people expect from a desk calculator rather
// than from binary floating point.
package num

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/errgo.v2/fmt/errors"
)

// Precision holds the number of significant digits kept by
// arithmetic operations.
const Precision = 28

var (
	// ErrDivisionByZero is the cause of errors from dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefined is the cause of errors from operations
	// whose result is not a finite real number.
	ErrUndefined = errors.New("undefined result")

	// ErrSyntax is the cause of errors from Parse.
	ErrSyntax = errors.New("invalid number syntax")
)

var ctx = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(Precision)
	c.Rounding = apd.RoundHalfEven
	return c
}()

var zero apd.Decimal

// Number is a decimal number. The zero value is 0.
// Numbers are never modified once created, so they may be
// freely copied and shared.
type Number struct {
	d *apd.Decimal
}

// Zero holds the number 0.
var Zero = Number{}

func (n Number) dec() *apd.Decimal {
	if n.d == nil {
		return &zero
	}
	return n.d
}

// Parse parses a decimal literal such as "-43.5", ".5" or "1.5E+7".
// Digits are preserved exactly; rounding only happens
// when the number takes part in arithmetic.
func Parse(s string) (Number, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return Number{}, errors.Becausef(nil, ErrSyntax, "invalid number %q", s)
	}
	return Number{d}, nil
}

// MustParse is like Parse but panics on error.
// It is intended for constants.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt returns the number with the value i.
func FromInt(i int64) Number {
	return Number{apd.New(i, 0)}
}

// FromBigInt returns the number with the value i.
func FromBigInt(i *big.Int) Number {
	d, _, err := apd.NewFromString(i.String())
	if err != nil {
		panic(err)
	}
	return Number{d}
}

// FromFloat returns the number closest to the shortest decimal
// representation of f. It fails if f is not finite.
func FromFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, errors.Becausef(nil, ErrUndefined, "result is not a real number")
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Number{}, errors.Because(err, ErrUndefined, "")
	}
	return Number{d}, nil
}

// Float64 returns the nearest float64 to n.
func (n Number) Float64() float64 {
	f, err := n.dec().Float64()
	if err != nil {
		if n.Sign() < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return f
}

// String returns n in the decimal string syntax accepted by Parse.
func (n Number) String() string {
	return n.dec().String()
}

// Cmp compares n and m and returns -1, 0 or 1.
func (n Number) Cmp(m Number) int {
	return n.dec().Cmp(m.dec())
}

// Sign returns -1, 0 or 1 according to the sign of n.
func (n Number) Sign() int {
	return n.dec().Sign()
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return n.dec().IsZero()
}

// Equal reports whether n and m have the same value.
// 2.50 and 2.5 are equal.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// Trunc returns the integer part of n, truncated towards zero.
func (n Number) Trunc() Number {
	var integ, frac apd.Decimal
	n.dec().Modf(&integ, &frac)
	return Number{&integ}
}

// Frac returns the fractional part of n. It has the same sign as n.
func (n Number) Frac() Number {
	var integ, frac apd.Decimal
	n.dec().Modf(&integ, &frac)
	return Number{&frac}
}

// IsInt reports whether n has no fractional part.
func (n Number) IsInt() bool {
	return n.Frac().IsZero()
}

// Int64 returns the integer part of n. The boolean result
// is false if n has a fractional part or does not fit in an int64.
func (n Number) Int64() (int64, bool) {
	var integ, frac apd.Decimal
	n.dec().Modf(&integ, &frac)
	i, err := integ.Int64()
	if err != nil {
		return 0, false
	}
	return i, frac.IsZero()
}

// BigInt returns the integer part of n, truncated towards zero.
func (n Number) BigInt() *big.Int {
	i, ok := new(big.Int).SetString(n.Trunc().Fixed(0), 10)
	if !ok {
		panic(errors.Newf("cannot convert %v to integer", n))
	}
	return i
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{new(apd.Decimal).Neg(n.dec())}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{new(apd.Decimal).Abs(n.dec())}
}

type binaryFunc func(d, x, y *apd.Decimal) (apd.Condition, error)

type unaryFunc func(d, x *apd.Decimal) (apd.Condition, error)

func apply2(f binaryFunc, x, y Number) (Number, error) {
	d := new(apd.Decimal)
	cond, err := f(d, x.dec(), y.dec())
	return result(d, cond, err)
}

func apply1(f unaryFunc, x Number) (Number, error) {
	d := new(apd.Decimal)
	cond, err := f(d, x.dec())
	return result(d, cond, err)
}

func result(d *apd.Decimal, cond apd.Condition, err error) (Number, error) {
	if err != nil {
		if cond&(apd.DivisionByZero|apd.DivisionUndefined) != 0 {
			return Number{}, errors.Because(err, ErrDivisionByZero, "")
		}
		return Number{}, errors.Because(err, ErrUndefined, "")
	}
	if d.Form != apd.Finite {
		return Number{}, errors.Becausef(nil, ErrUndefined, "result is not a finite number")
	}
	return Number{d}, nil
}

// Add returns x + y.
func Add(x, y Number) (Number, error) {
	return apply2(ctx.Add, x, y)
}

// Sub returns x - y.
func Sub(x, y Number) (Number, error) {
	return apply2(ctx.Sub, x, y)
}

// Mul returns x * y.
func Mul(x, y Number) (Number, error) {
	return apply2(ctx.Mul, x, y)
}

// Quo returns x / y.
func Quo(x, y Number) (Number, error) {
	return apply2(ctx.Quo, x, y)
}

// Rem returns the remainder of x / y, with the sign of x.
func Rem(x, y Number) (Number, error) {
	if y.IsZero() {
		return Number{}, errors.Becausef(nil, ErrDivisionByZero, "remainder of division by zero")
	}
	return apply2(ctx.Rem, x, y)
}

// Pow returns x ** y.
func Pow(x, y Number) (Number, error) {
	if x.IsZero() && y.Sign() < 0 {
		return Number{}, errors.Becausef(nil, ErrDivisionByZero, "zero to a negative power")
	}
	return apply2(ctx.Pow, x, y)
}

// Sqrt returns the square root of x.
func Sqrt(x Number) (Number, error) {
	return apply1(ctx.Sqrt, x)
}

// Ln returns the natural logarithm of x.
func Ln(x Number) (Number, error) {
	return apply1(ctx.Ln, x)
}

// Log10 returns the base 10 logarithm of x.
func Log10(x Number) (Number, error) {
	return apply1(ctx.Log10, x)
}

// Exp returns e ** x.
func Exp(x Number) (Number, error) {
	return apply1(ctx.Exp, x)
}

// Ceil returns the smallest integer >= x.
func Ceil(x Number) Number {
	n, err := apply1(ctx.Ceil, x)
	if err != nil {
		return x
	}
	return n
}

// Floor returns the largest integer <= x.
func Floor(x Number) Number {
	n, err := apply1(ctx.Floor, x)
	if err != nil {
		return x
	}
	return n
}

// Round returns x rounded half-even to the given number
// of decimal places.
func Round(x Number, places int32) (Number, error) {
	d := new(apd.Decimal)
	cond, err := ctx.Quantize(d, x.dec(), -places)
	return result(d, cond, err)
}

// Float applies a float64 function to n. It is used for
// functions, such as trigonometry, that the decimal
// package does not provide.
func Float(f func(float64) float64, n Number) (Number, error) {
	return FromFloat(f(n.Float64()))
}
