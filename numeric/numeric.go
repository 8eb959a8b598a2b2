// Package numeric provides the decimal operations over loosely typed values.
//
// Every numeric argument accepts anything [decimal.New] accepts: strings,
// Go integers and floats, booleans, *big.Int, decimals and values with a
// String or MarshalText method. Every decimal result is returned as
// canonical text, the unique string form of a number that parses back to
// itself:
//
//	numeric.Add("0.1", 0.2)                     // "0.3", nil
//	numeric.Div(1, 3, numeric.Rules{Places: 2}) // "0.33", nil
//
// Errors are [*decimal.Error] values carrying a [decimal.Code].
package numeric

import (
	"github.com/decimalish/decimal"
)

func pair(a, b any) (decimal.Decimal, decimal.Decimal, error) {
	x, err := decimal.New(a)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	y, err := decimal.New(b)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return x, y, nil
}

func text(d decimal.Decimal, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Construction and inspection

// Decimal returns the canonical text of v.
func Decimal(v any) (string, error) {
	return text(decimal.New(v))
}

// IsDecimal returns true if v is a [decimal.Decimal] or a string already
// in canonical form.
func IsDecimal(v any) bool {
	return decimal.IsDecimal(v)
}

// IsNumeric returns true if v can be converted to a decimal.
func IsNumeric(v any) bool {
	return decimal.IsNumeric(v)
}

// IsInteger returns true if v is numeric and has no fractional part.
func IsInteger(v any) bool {
	d, err := decimal.New(v)
	return err == nil && d.IsInt()
}

// Deconstruct returns the normalized representation of v.
// See [decimal.Decimal.Decompose].
func Deconstruct(v any) (sign int, digits string, scale, precision int, err error) {
	d, err := decimal.New(v)
	if err != nil {
		return 0, "", 0, 0, err
	}
	sign, digits, scale, precision = d.Decompose()
	return sign, digits, scale, precision, nil
}

// Construct returns the canonical text of the decimal with the given
// sign, digits and scale. See [decimal.Compose].
func Construct(sign int, digits string, scale int) (string, error) {
	return text(decimal.Compose(sign, digits, scale))
}

// Arithmetic

// Add returns a + b.
func Add(a, b any) (string, error) {
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return x.Add(y).String(), nil
}

// Sub returns a - b.
func Sub(a, b any) (string, error) {
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return x.Sub(y).String(), nil
}

// Mul returns a × b.
func Mul(a, b any) (string, error) {
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return x.Mul(y).String(), nil
}

// Div returns a / b, with 34 significant digits rounded half to even
// unless rules say otherwise. See [decimal.Decimal.Div].
func Div(a, b any, rules ...Rules) (string, error) {
	r, err := resolve("div", rules)
	if err != nil {
		return "", err
	}
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return text(x.Div(y, r))
}

// DivRem returns the quotient and the remainder of a / b, with the
// quotient truncated to an integer unless rules say otherwise.
// See [decimal.Decimal.DivRem].
func DivRem(a, b any, rules ...Rules) (q, r string, err error) {
	rr, err := resolve("divrem", rules)
	if err != nil {
		return "", "", err
	}
	x, y, err := pair(a, b)
	if err != nil {
		return "", "", err
	}
	dq, dr, err := x.DivRem(y, rr)
	if err != nil {
		return "", "", err
	}
	return dq.String(), dr.String(), nil
}

// DivInt returns the quotient of [DivRem].
func DivInt(a, b any, rules ...Rules) (string, error) {
	r, err := resolve("divint", rules)
	if err != nil {
		return "", err
	}
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return text(x.DivInt(y, r))
}

// Rem returns the remainder of [DivRem], which has the sign of a by
// default.
func Rem(a, b any, rules ...Rules) (string, error) {
	r, err := resolve("rem", rules)
	if err != nil {
		return "", err
	}
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return text(x.Rem(y, r))
}

// Mod returns the remainder of the floored division of a by b, which has
// the sign of b.
func Mod(a, b any) (string, error) {
	x, y, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return text(x.Mod(y))
}

// Pow returns base raised to the power of exp, a non-negative integer.
func Pow(base, exp any) (string, error) {
	x, err := decimal.New(base)
	if err != nil {
		return "", err
	}
	n, err := toInt("pow", "exponent", exp)
	if err != nil {
		return "", err
	}
	return text(x.Pow(n))
}

// Sqrt returns the square root of v, with 34 significant digits rounded
// half to even unless rules say otherwise.
func Sqrt(v any, rules ...Rules) (string, error) {
	r, err := resolve("sqrt", rules)
	if err != nil {
		return "", err
	}
	x, err := decimal.New(v)
	if err != nil {
		return "", err
	}
	return text(x.Sqrt(r))
}

// Comparison

// Cmp returns -1, 0 or +1 when a is less than, equal to or greater than b.
func Cmp(a, b any) (int, error) {
	x, y, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// Eq returns true if a = b.
func Eq(a, b any) (bool, error) {
	c, err := Cmp(a, b)
	return err == nil && c == 0, err
}

// Gt returns true if a > b.
func Gt(a, b any) (bool, error) {
	c, err := Cmp(a, b)
	return err == nil && c > 0, err
}

// Gte returns true if a ≥ b.
func Gte(a, b any) (bool, error) {
	c, err := Cmp(a, b)
	return err == nil && c >= 0, err
}

// Lt returns true if a < b.
func Lt(a, b any) (bool, error) {
	c, err := Cmp(a, b)
	return err == nil && c < 0, err
}

// Lte returns true if a ≤ b.
func Lte(a, b any) (bool, error) {
	c, err := Cmp(a, b)
	return err == nil && c <= 0, err
}

func all(values []any) ([]decimal.Decimal, error) {
	res := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.New(v)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}

// Min returns the smallest of the values.
// It fails with [decimal.NotNum] if there are none.
func Min(values ...any) (string, error) {
	if len(values) == 0 {
		return "", &decimal.Error{Code: decimal.NotNum, Op: "min"}
	}
	ds, err := all(values)
	if err != nil {
		return "", err
	}
	return decimal.Min(ds...).String(), nil
}

// Max returns the largest of the values.
// It fails with [decimal.NotNum] if there are none.
func Max(values ...any) (string, error) {
	if len(values) == 0 {
		return "", &decimal.Error{Code: decimal.NotNum, Op: "max"}
	}
	ds, err := all(values)
	if err != nil {
		return "", err
	}
	return decimal.Max(ds...).String(), nil
}

// Clamp limits v to the range [low, high].
func Clamp(v, low, high any) (string, error) {
	ds, err := all([]any{v, low, high})
	if err != nil {
		return "", err
	}
	return ds[0].Clamp(ds[1], ds[2]).String(), nil
}

// Magnitude

// Abs returns the absolute value of v.
func Abs(v any) (string, error) {
	d, err := decimal.New(v)
	return text(d.Abs(), err)
}

// Neg returns v with the opposite sign.
func Neg(v any) (string, error) {
	d, err := decimal.New(v)
	return text(d.Neg(), err)
}

// Sign returns -1, 0 or +1 for negative values, zero and positive values.
func Sign(v any) (int, error) {
	d, err := decimal.New(v)
	return d.Sign(), err
}

// Places returns the number of significant digits after the decimal point.
func Places(v any) (int, error) {
	d, err := decimal.New(v)
	return d.Places(), err
}

// Precision returns the number of significant digits.
func Precision(v any) (int, error) {
	d, err := decimal.New(v)
	return d.Precision(), err
}

// Scale returns the power of ten of the most significant digit.
func Scale(v any) (int, error) {
	d, err := decimal.New(v)
	return d.Scale(), err
}

// Exponent is an alias of [Scale].
func Exponent(v any) (int, error) {
	return Scale(v)
}

// MovePoint returns v with its decimal point moved n places to the right,
// or to the left if n is negative.
func MovePoint(v, n any) (string, error) {
	d, err := decimal.New(v)
	if err != nil {
		return "", err
	}
	k, err := toInt("movepoint", "places", n)
	if err != nil {
		return "", err
	}
	return d.MovePoint(k).String(), nil
}

// Rounding

// Round returns v rounded to 0 places, half to even, unless rules say
// otherwise.
func Round(v any, rules ...Rules) (string, error) {
	r, err := resolve("round", rules)
	if err != nil {
		return "", err
	}
	d, err := decimal.New(v)
	if err != nil {
		return "", err
	}
	return text(d.Round(r))
}

// RoundRem is like [Round], but also returns the remainder.
func RoundRem(v any, rules ...Rules) (rounded, remainder string, err error) {
	r, err := resolve("round", rules)
	if err != nil {
		return "", "", err
	}
	d, err := decimal.New(v)
	if err != nil {
		return "", "", err
	}
	q, m, err := d.RoundRem(r)
	if err != nil {
		return "", "", err
	}
	return q.String(), m.String(), nil
}

// Floor returns the largest integer not greater than v.
func Floor(v any) (string, error) {
	d, err := decimal.New(v)
	return text(d.Floor(), err)
}

// Ceil returns the smallest integer not less than v.
func Ceil(v any) (string, error) {
	d, err := decimal.New(v)
	return text(d.Ceil(), err)
}

// Trunc returns the integer part of v.
func Trunc(v any) (string, error) {
	d, err := decimal.New(v)
	return text(d.Trunc(), err)
}

// Int is an alias of [Trunc].
func Int(v any) (string, error) {
	return Trunc(v)
}

// IntFrac returns the integer and fractional parts of v.
func IntFrac(v any) (integer, fraction string, err error) {
	d, err := decimal.New(v)
	if err != nil {
		return "", "", err
	}
	i, f := d.IntFrac()
	return i.String(), f.String(), nil
}

// Formatting and conversion

// ToNumber converts v to a float64, failing with [decimal.Inexact] if the
// float would not represent v exactly.
func ToNumber(v any) (float64, error) {
	d, err := decimal.New(v)
	if err != nil {
		return 0, err
	}
	return d.Float64()
}

// ToString is an alias of [Decimal].
func ToString(v any) (string, error) {
	return Decimal(v)
}

// ToFixed returns v in fixed notation, rounded and padded according to
// rules when given. See [decimal.Decimal.ToFixed].
func ToFixed(v any, rules ...Rules) (string, error) {
	r, err := resolve("tofixed", rules)
	if err != nil {
		return "", err
	}
	if len(rules) > 0 && r.Mode == 0 {
		// Rules given without a mode still round.
		r.Mode = decimal.HalfEven
	}
	d, err := decimal.New(v)
	if err != nil {
		return "", err
	}
	return d.ToFixed(r)
}

// ToExponential returns v in exponential notation, rounded and padded
// according to rules when given. See [decimal.Decimal.ToExponential].
func ToExponential(v any, rules ...Rules) (string, error) {
	r, err := resolve("toexponential", rules)
	if err != nil {
		return "", err
	}
	if len(rules) > 0 && r.Mode == 0 {
		// Rules given without a mode still round.
		r.Mode = decimal.HalfEven
	}
	d, err := decimal.New(v)
	if err != nil {
		return "", err
	}
	return d.ToExponential(r)
}
