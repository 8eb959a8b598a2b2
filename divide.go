package decimal

import "fmt"

// DefaultPrecision is the number of significant digits of [Decimal.Div]
// and [Decimal.Sqrt] results when no rules are given.
const DefaultPrecision = 34

// Div returns the quotient of d and e rounded according to r.
// When r sets neither places nor precision, the quotient has
// [DefaultPrecision] significant digits, and when r sets no mode,
// [HalfEven] is used.
//
// Div returns an error if:
//   - the divisor is 0;
//   - r is invalid;
//   - r uses the [Exact] mode and the quotient cannot be represented exactly.
func (d Decimal) Div(e Decimal, r Rules) (Decimal, error) {
	res, err := r.resolve("div", HalfEven, DefaultPrecision)
	if err != nil {
		return Decimal{}, err
	}
	q, _, err := d.divRem(e, res, "div")
	return q, err
}

// DivRem returns the quotient q and remainder r of d divided by e, such that
//
//	d = e × q + r
//
// The quotient is rounded according to rules. When rules set neither places
// nor precision, the quotient is rounded to an integer, and when rules set
// no mode, [Down] is used, so by default r has the sign of d and |r| < |e|.
// The rounding mode determines the sign of the remainder:
//
//	DivRem(10, -3, Down)       = -3,  1
//	DivRem(10, -3, Floor)      = -4, -2
//	DivRem(-10, 3, Euclidean)  = -4,  2
//
// DivRem returns an error if:
//   - the divisor is 0;
//   - rules are invalid;
//   - rules use the [Exact] mode and the remainder would be non-zero.
func (d Decimal) DivRem(e Decimal, rules Rules) (q, r Decimal, err error) {
	res, err := rules.resolve("divrem", Down, -1)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return d.divRem(e, res, "divrem")
}

// DivInt returns the quotient of [Decimal.DivRem].
func (d Decimal) DivInt(e Decimal, r Rules) (Decimal, error) {
	res, err := r.resolve("divint", Down, -1)
	if err != nil {
		return Decimal{}, err
	}
	q, _, err := d.divRem(e, res, "divint")
	return q, err
}

// Rem returns the remainder of [Decimal.DivRem].
// With the default rules it has the sign of d, like the % operator.
func (d Decimal) Rem(e Decimal, r Rules) (Decimal, error) {
	res, err := r.resolve("rem", Down, -1)
	if err != nil {
		return Decimal{}, err
	}
	_, rem, err := d.divRem(e, res, "rem")
	return rem, err
}

// Mod returns the remainder of the floored division of d by e.
// The result has the sign of e, or is 0.
//
// Mod returns an error if the divisor is 0.
func (d Decimal) Mod(e Decimal) (Decimal, error) {
	_, rem, err := d.divRem(e, rounding{mode: Floor}, "mod")
	return rem, err
}

// divRem implements long division: the divisor is subtracted from a
// remainder buffer, seeded with the digits of the dividend, as many times
// as it fits at each place, producing one quotient digit per place.
func (d Decimal) divRem(e Decimal, r rounding, op string) (Decimal, Decimal, error) {
	if e.sign == 0 {
		return Decimal{}, Decimal{}, newError(DivZero, op, fmt.Sprintf("%v/%v", d, e))
	}
	if d.sign == 0 {
		return Decimal{}, Decimal{}, nil
	}

	sign := int(d.sign * e.sign)
	scale := d.scale - e.scale
	prec := r.cutoff(scale)
	pa, pb := len(d.digits), len(e.digits)

	div := make([]int8, pb)
	for i := range div {
		div[i] = int8(e.digits[i] - '0')
	}
	rem := make([]int8, max(pa, pb))
	for i := 0; i < pa; i++ {
		rem[i] = int8(d.digits[i] - '0')
	}
	quo := make([]byte, 0, max(prec, 0)+1)

	// msd is the position of the most significant non-zero digit of rem,
	// or len(rem) once the remainder is zero.
	msd, place, dig := 0, 0, 0
	for ; place < prec && (place <= pa-pb || msd < place+pb-1); place++ {
		if len(rem) < place+pb {
			rem = append(rem, 0)
		}
		for dig = 0; dig < 10; dig++ {
			// A non-zero digit above the current place means the divisor fits.
			if msd >= place && lessDigits(rem[place:place+pb], div) {
				break
			}
			for i := place + pb - 1; i >= place; i-- {
				rem[i] -= div[i-place]
				if rem[i] < 0 {
					rem[i] += 10
					rem[i-1]--
				}
			}
			for msd < len(rem) && rem[msd] == 0 {
				msd++
			}
		}
		// A leading zero does not count as a significant digit.
		if place == 0 && dig == 0 && r.byPrec {
			prec++
		}
		quo = append(quo, byte(dig))
	}

	buf := make([]byte, len(rem))
	for i, v := range rem {
		buf[i] = byte(v)
	}
	q := normalize(sign, quo, scale)
	m := normalize(int(d.sign), buf, d.scale)
	if m.sign == 0 {
		return q, m, nil
	}

	// The division stopped at the cutoff with a non-zero remainder, so the
	// last quotient digit has the weight 10^(scale-prec+1).
	var up bool
	switch mode := r.mode.reduce(sign, int(d.sign), dig); mode {
	case roundExact:
		return Decimal{}, Decimal{}, newError(Inexact, op, fmt.Sprintf("%v/%v", d, e))
	case roundUp:
		up = true
	case roundHalfUp, roundHalfDown:
		// Compare the remainder with half of the divisor scaled to the unit
		// of the last quotient digit.
		unit := Decimal{sign: 1, digits: e.digits, scale: d.scale - prec + 1}
		c := m.Abs().Mul(Two).Cmp(unit)
		up = c > 0 || c == 0 && mode == roundHalfUp
	}
	if up {
		q = q.Add(Decimal{sign: int8(sign), digits: "1", scale: scale - prec + 1})
		m = m.Sub(Decimal{sign: d.sign, digits: e.digits, scale: d.scale - prec + 1})
	}
	return q, m, nil
}

// lessDigits reports whether the digit sequence a is less than b.
// Both sequences have the same length.
func lessDigits(a, b []int8) bool {
	for i := range b {
		switch {
		case a[i] < b[i]:
			return true
		case a[i] > b[i]:
			return false
		}
	}
	return false
}
