package decimal

// Round returns d rounded according to r.
// When r sets neither places nor precision, d is rounded to 0 places, and
// when r sets no mode, [HalfEven] is used.
//
// Round returns an error if r is invalid, or if r uses the [Exact] mode and
// rounding would discard a non-zero digit.
func (d Decimal) Round(r Rules) (Decimal, error) {
	q, _, err := d.RoundRem(r)
	return q, err
}

// RoundRem is like [Decimal.Round], but also returns the remainder, that is
// the amount by which d exceeds the rounded value:
//
//	d = rounded + remainder
//
// The remainder is negative when d was rounded away from zero.
func (d Decimal) RoundRem(r Rules) (rounded, remainder Decimal, err error) {
	res, err := r.resolve("round", HalfEven, -1)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return d.roundRem(res, "round")
}

func (d Decimal) roundRem(r rounding, op string) (Decimal, Decimal, error) {
	if d.sign == 0 {
		return Decimal{}, Decimal{}, nil
	}
	prec, n := r.cutoff(d.scale), len(d.digits)
	if prec >= n {
		return d, Decimal{}, nil
	}

	sign := int(d.sign)
	cut := max(prec, 0)
	rounded := trim(sign, d.digits[:cut], d.scale)
	remainder := trim(sign, d.digits[cut:], d.scale-cut)

	var up bool
	switch r.mode.reduce(sign, sign, digit(d.digits, prec-1)) {
	case roundExact:
		return Decimal{}, Decimal{}, newError(Inexact, op, d.String())
	case roundUp:
		up = true
	case roundHalfUp:
		up = digit(d.digits, prec) > 4
	case roundHalfDown:
		rd := digit(d.digits, prec)
		up = rd > 5 || rd == 5 && n > prec+1
	}
	if up {
		unit := Decimal{sign: d.sign, digits: "1", scale: d.scale - prec + 1}
		rounded = rounded.Add(unit)
		remainder = remainder.Sub(unit)
	}
	return rounded, remainder, nil
}

// mustRound rounds d to 0 places with a mode that cannot fail.
func (d Decimal) mustRound(m Mode, op string) (Decimal, Decimal) {
	q, r, err := d.roundRem(rounding{mode: m}, op)
	if err != nil {
		panic(err)
	}
	return q, r
}

// Floor returns the largest integer less than or equal to d.
func (d Decimal) Floor() Decimal {
	q, _ := d.mustRound(Floor, "floor")
	return q
}

// Ceil returns the smallest integer greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	q, _ := d.mustRound(Ceil, "ceil")
	return q
}

// Trunc returns the integer part of d, discarding its fractional digits.
func (d Decimal) Trunc() Decimal {
	q, _ := d.mustRound(Down, "trunc")
	return q
}

// Int is an alias of [Decimal.Trunc].
func (d Decimal) Int() Decimal {
	return d.Trunc()
}

// IntFrac returns the integer and fractional parts of d.
// Both parts have the sign of d:
//
//	-1.25 -> -1, -0.25
func (d Decimal) IntFrac() (integer, fraction Decimal) {
	return d.mustRound(Down, "intfrac")
}
