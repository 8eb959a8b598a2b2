package decimal

import (
	"math"
	"strconv"
)

// Pow returns d raised to the power of exp.
// The result is exact, so its precision is up to exp × d.Precision().
// Zero raised to the power of zero is 1.
//
// Pow returns an error with code [NotPos] if exp is negative.
func (d Decimal) Pow(exp int) (Decimal, error) {
	if exp < 0 {
		return Decimal{}, newError(NotPos, "pow", "exponent: "+strconv.Itoa(exp))
	}
	res, base := One, d
	for exp > 0 {
		if exp&1 == 1 {
			res = res.Mul(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}
	return res, nil
}

// sqrtMaxIter bounds the number of Newton iterations.
const sqrtMaxIter = 100

// Sqrt returns the square root of d rounded according to r.
// When r sets neither places nor precision, the root has [DefaultPrecision]
// significant digits, and when r sets no mode, [HalfEven] is used.
// Places are counted from the decimal point of the root.
//
// The result is correctly rounded: it is the value the true root would be
// rounded to, even at a midpoint.
//
// Sqrt returns an error if:
//   - d is negative;
//   - r is invalid;
//   - r uses the [Exact] mode and the root cannot be represented exactly.
func (d Decimal) Sqrt(r Rules) (Decimal, error) {
	res, err := r.resolve("sqrt", HalfEven, DefaultPrecision)
	if err != nil {
		return Decimal{}, err
	}
	switch {
	case d.sign < 0:
		return Decimal{}, newError(SqrtNeg, "sqrt", d.String())
	case d.sign == 0:
		return Decimal{}, nil
	}

	// The root of a value of scale s has the scale floor(s/2).
	scale := d.scale >> 1
	prec := res.cutoff(scale)
	unit := Decimal{sign: 1, digits: "1", scale: scale - prec + 1}

	x := d.sqrtNewton(max(prec, 1))

	// Truncate at the unit and step until t ≤ √d < t + unit.
	t, _, _ := x.roundRem(rounding{places: -unit.scale, mode: Down}, "sqrt")
	for t.Mul(t).Cmp(d) > 0 {
		t = t.Sub(unit)
	}
	for {
		n := t.Add(unit)
		if n.Mul(n).Cmp(d) > 0 {
			break
		}
		t = n
	}

	// Pick a value that rounds the same way as the true root.
	rep := t
	if t.Mul(t) != d {
		mid := t.Add(unit.Mul(half))
		var frac Decimal
		switch mid.Mul(mid).Cmp(d) {
		case 1:
			frac = Decimal{sign: 1, digits: "25", scale: -1}
		case 0:
			frac = half
		default:
			frac = Decimal{sign: 1, digits: "75", scale: -1}
		}
		rep = t.Add(unit.Mul(frac))
	}
	q, _, err := rep.roundRem(rounding{places: -unit.scale, mode: res.mode}, "sqrt")
	if err != nil {
		return Decimal{}, newError(Inexact, "sqrt", d.String())
	}
	return q, nil
}

// sqrtNewton approximates the square root of a positive d to at least prec
// significant digits.
func (d Decimal) sqrtNewton(prec int) Decimal {
	// Seed with the float root of a prefix of at most 16 digits, with an
	// even power of ten left over.
	m := min(len(d.digits), 16)
	prefix := d.digits[:m]
	exp := d.scale - m + 1
	if exp%2 != 0 {
		prefix += "0"
		exp--
	}
	f, _ := strconv.ParseFloat(prefix, 64)
	x, _ := NewFromFloat64(math.Sqrt(f))
	x = x.MovePoint(exp / 2)

	// Refine with x = (x + d/x) / 2 until the leading digits settle.
	work := rounding{precision: prec + 4, byPrec: true, mode: HalfEven}
	lead := rounding{precision: prec, byPrec: true, mode: Down}
	var prev Decimal
	for i := 0; i < sqrtMaxIter; i++ {
		q, _, _ := d.divRem(x, work, "sqrt")
		x, _, _ = x.Add(q).Mul(half).roundRem(work, "sqrt")
		cur, _, _ := x.roundRem(lead, "sqrt")
		if cur == prev {
			break
		}
		prev = cur
	}
	return x
}
