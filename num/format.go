package num

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Fixed returns n formatted with exactly the given number of digits
// after the decimal point, rounding half-even. Unlike Round, it
// never fails for lack of precision: all integer digits are kept.
func (n Number) Fixed(places int) string {
	if places < 0 {
		places = 0
	}
	d := n.dec()
	p := d.NumDigits() + int64(d.Exponent) + int64(places) + 2
	if p < Precision {
		p = Precision
	}
	c := apd.BaseContext.WithPrecision(uint32(p))
	c.Rounding = apd.RoundHalfEven
	var r apd.Decimal
	if _, err := c.Quantize(&r, d, int32(-places)); err != nil {
		return d.Text('f')
	}
	return r.Text('f')
}

// Sci returns n formatted in scientific notation with one digit
// before the decimal point and the given number of digits after it,
// for example "1.2346e+5".
func (n Number) Sci(places int) string {
	if places < 0 {
		places = 0
	}
	d := n.dec()
	var r apd.Decimal
	c := apd.BaseContext.WithPrecision(uint32(places + 1))
	c.Rounding = apd.RoundHalfEven
	if _, err := c.Round(&r, d); err != nil {
		return d.Text('e')
	}
	digits := r.Coeff.Text(10)
	exp := len(digits) + int(r.Exponent) - 1
	if r.IsZero() {
		exp = 0
	}
	if len(digits) < places+1 {
		digits += strings.Repeat("0", places+1-len(digits))
	}
	var b strings.Builder
	if r.Negative {
		b.WriteByte('-')
	}
	b.WriteString(digits[:1])
	if places > 0 {
		b.WriteByte('.')
		b.WriteString(digits[1 : places+1])
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
