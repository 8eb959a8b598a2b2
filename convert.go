package decimal

import (
	"math"
	"strconv"
)

// Float64 returns the float nearest to d.
//
// Float64 returns an error with code [Inexact] if the float does not
// represent d exactly, that is, if converting it back with
// [NewFromFloat64] does not give d. Also see [Decimal.InexactFloat64].
func (d Decimal) Float64() (float64, error) {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, newError(Inexact, "float64", d.String())
	}
	e, err := NewFromFloat64(f)
	if err != nil || e != d {
		return 0, newError(Inexact, "float64", d.String())
	}
	return f, nil
}

// InexactFloat64 returns the float nearest to d.
// Values beyond the float range are converted to infinities.
func (d Decimal) InexactFloat64() float64 {
	if d.sign == 0 {
		return 0
	}
	s := d.digits[:1]
	if len(d.digits) > 1 {
		s += "." + d.digits[1:]
	}
	s += "e" + strconv.Itoa(d.scale)
	if d.sign < 0 {
		s = "-" + s
	}
	// Out of range values are returned as ±Inf or ±0 with an error.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// Int64 returns d as an int64.
//
// Int64 returns an error if:
//   - d has a fractional part (code [NotInt]);
//   - d is outside the range of int64 (code [Inexact]).
func (d Decimal) Int64() (int64, error) {
	if !d.IsInt() {
		return 0, newError(NotInt, "int64", d.String())
	}
	z, ok := fintFromDecimal(d)
	switch {
	case !ok:
		return 0, newError(Inexact, "int64", d.String())
	case d.sign < 0 && z <= 1<<63:
		return int64(-z), nil
	case d.sign >= 0 && z <= math.MaxInt64:
		return int64(z), nil
	}
	return 0, newError(Inexact, "int64", d.String())
}

// Uint64 returns d as a uint64.
//
// Uint64 returns an error if:
//   - d has a fractional part (code [NotInt]);
//   - d is negative (code [NotPos]);
//   - d is greater than the maximum uint64 (code [Inexact]).
func (d Decimal) Uint64() (uint64, error) {
	switch {
	case !d.IsInt():
		return 0, newError(NotInt, "uint64", d.String())
	case d.sign < 0:
		return 0, newError(NotPos, "uint64", d.String())
	}
	z, ok := fintFromDecimal(d)
	if !ok {
		return 0, newError(Inexact, "uint64", d.String())
	}
	return uint64(z), nil
}
