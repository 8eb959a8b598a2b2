package decimal

// cmpAbs compares absolute values of d and e and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
//
// Both values must be non-zero.
func cmpAbs(d, e Decimal) int {
	switch {
	case d.scale > e.scale:
		return 1
	case d.scale < e.scale:
		return -1
	}
	n := min(len(d.digits), len(e.digits))
	for i := 0; i < n; i++ {
		switch {
		case d.digits[i] > e.digits[i]:
			return 1
		case d.digits[i] < e.digits[i]:
			return -1
		}
	}
	switch {
	case len(d.digits) > len(e.digits):
		return 1
	case len(d.digits) < len(e.digits):
		return -1
	}
	return 0
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// See also methods [Decimal.Eq], [Decimal.Gt] and [Decimal.Lt].
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d == e:
		return 0
	case d.sign == 0:
		return -int(e.sign)
	case e.sign == 0:
		return int(d.sign)
	case d.sign != e.sign:
		return int(d.sign)
	}
	return int(d.sign) * cmpAbs(d, e)
}

// CmpAbs compares absolute values of decimals and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
func (d Decimal) CmpAbs(e Decimal) int {
	return d.Abs().Cmp(e.Abs())
}

// Eq returns true if d = e.
func (d Decimal) Eq(e Decimal) bool {
	return d == e
}

// Gt returns true if d > e.
func (d Decimal) Gt(e Decimal) bool {
	return d.Cmp(e) > 0
}

// Gte returns true if d ≥ e.
func (d Decimal) Gte(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Lt returns true if d < e.
func (d Decimal) Lt(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Lte returns true if d ≤ e.
func (d Decimal) Lte(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Min returns the smallest of the given decimals, or 0 if none are given.
func Min(values ...Decimal) Decimal {
	if len(values) == 0 {
		return Zero
	}
	res := values[0]
	for _, v := range values[1:] {
		if v.Cmp(res) < 0 {
			res = v
		}
	}
	return res
}

// Max returns the largest of the given decimals, or 0 if none are given.
func Max(values ...Decimal) Decimal {
	if len(values) == 0 {
		return Zero
	}
	res := values[0]
	for _, v := range values[1:] {
		if v.Cmp(res) > 0 {
			res = v
		}
	}
	return res
}

// Clamp limits d to the range [low, high].
// If low is greater than high, the result is high.
func (d Decimal) Clamp(low, high Decimal) Decimal {
	if d.Cmp(low) < 0 {
		d = low
	}
	if d.Cmp(high) > 0 {
		d = high
	}
	return d
}
