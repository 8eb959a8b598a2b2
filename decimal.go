package decimal

import (
	"fmt"
	"math"
	"strings"
)

// Decimal type is a representation of a finite, arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is kept in a normalized form of three fields:
//
//   - Sign: -1 for negative numbers, 1 for positive numbers, 0 for zero.
//   - Digits: the significant digits, without leading or trailing zeros.
//   - Scale: the power of ten of the first digit.
//
// For example, -123.45 has the sign -1, the digits "12345" and the scale 2,
// while 0.005 has the sign 1, the digits "5" and the scale -3.
// Because the form is unique, two decimals with the same numeric value are
// equal with the == operator and can be used as map keys.
//
// Decimals never represent NaN, Infinity or negative zero.
type Decimal struct {
	sign   int8   // -1, 0 or 1
	digits string // significant digits, never starts or ends with '0'
	scale  int    // power of ten of the first digit
}

var (
	// Zero represents the decimal value of 0.
	Zero = Decimal{}
	// One represents the decimal value of 1.
	One  = Decimal{sign: 1, digits: "1"}
	// Two represents the decimal value of 2.
	Two  = Decimal{sign: 1, digits: "2"}
	// Ten represents the decimal value of 10.
	Ten  = Decimal{sign: 1, digits: "1", scale: 1}
	half = Decimal{sign: 1, digits: "5", scale: -1}
)

// normalize builds a decimal from a sign, a buffer of digit values (0 to 9)
// and the scale of the first digit in the buffer.
// Leading zeros are stripped, each one lowering the scale, and so are
// trailing zeros. A buffer of zeros yields [Zero].
func normalize(sign int, digs []byte, scale int) Decimal {
	lo, hi := 0, len(digs)
	for lo < hi && digs[lo] == 0 {
		lo++
		scale--
	}
	if lo == hi {
		return Decimal{}
	}
	for digs[hi-1] == 0 {
		hi--
	}
	buf := make([]byte, hi-lo)
	for i, v := range digs[lo:hi] {
		buf[i] = v + '0'
	}
	d := Decimal{sign: 1, digits: string(buf), scale: scale}
	if sign < 0 {
		d.sign = -1
	}
	return d
}

// trim is like normalize, but takes the digits as text.
func trim(sign int, s string, scale int) Decimal {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
		scale--
	}
	s = strings.TrimRight(s[i:], "0")
	if s == "" {
		return Decimal{}
	}
	d := Decimal{sign: 1, digits: s, scale: scale}
	if sign < 0 {
		d.sign = -1
	}
	return d
}

// digit returns the value of the i-th digit of s, or 0 if i is out of range.
func digit(s string, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return int(s[i] - '0')
}

// values returns the digit values of d, padded with zeros up to n digits.
func (d Decimal) values(n int) []byte {
	if n < len(d.digits) {
		n = len(d.digits)
	}
	buf := make([]byte, n)
	for i := 0; i < len(d.digits); i++ {
		buf[i] = d.digits[i] - '0'
	}
	return buf
}

// Compose returns the decimal sign × 0.digits × 10^(scale+1), that is a
// decimal whose first digit has the weight 10^scale.
// Leading and trailing zeros of digits are removed and the scale adjusted.
// Only the negativity of sign is consulted; an empty or all-zero digits
// string yields 0.
//
// Compose returns an error if digits contains anything but '0' to '9'.
func Compose(sign int, digits string, scale int) (Decimal, error) {
	buf := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Decimal{}, newError(NotNum, "compose", digits)
		}
		buf[i] = c - '0'
	}
	return normalize(sign, buf, scale), nil
}

// Decompose returns the normalized representation of d: its sign, its
// significant digits, the power of ten of the first digit and the number
// of digits.
// Zero decomposes to (0, "", 0, 0).
// Also see function [Compose].
func (d Decimal) Decompose() (sign int, digits string, scale, prec int) {
	return int(d.sign), d.digits, d.scale, len(d.digits)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return int(d.sign)
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.sign == 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.sign < 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.sign > 0
}

// IsInt returns true if d has no fractional digits.
func (d Decimal) IsInt() bool {
	return d.scale+1 >= len(d.digits)
}

// Precision returns the number of significant digits of d.
// Zero has no significant digits.
func (d Decimal) Precision() int {
	return len(d.digits)
}

// Scale returns the order of magnitude of d, which is the power of ten of
// its most significant digit.
// It is equal to the exponent printed by [Decimal.ToExponential].
func (d Decimal) Scale() int {
	return d.scale
}

// Exponent is an alias of [Decimal.Scale].
func (d Decimal) Exponent() int {
	return d.scale
}

// Places returns the number of significant digits after the decimal point.
func (d Decimal) Places() int {
	if p := len(d.digits) - d.scale - 1; p > 0 {
		return p
	}
	return 0
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	d.sign = -d.sign
	return d
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	if d.sign < 0 {
		d.sign = 1
	}
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero, sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	if e.sign != 0 && d.sign != 0 && d.sign != e.sign {
		return d.Neg()
	}
	return d
}

// MovePoint returns d with its decimal point moved n places to the right,
// or to the left if n is negative.
// It is equivalent to, but much faster than, multiplying by 10^n.
//
// MovePoint panics if the resulting scale overflows an int.
func (d Decimal) MovePoint(n int) Decimal {
	if d.sign == 0 {
		return d
	}
	if (n > 0 && d.scale > math.MaxInt-n) || (n < 0 && d.scale < math.MinInt-n) {
		panic(fmt.Sprintf("MovePoint(%v) failed: scale overflow", n))
	}
	d.scale += n
	return d
}
