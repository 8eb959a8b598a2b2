package decimal

// Add returns the (exact) sum of decimals d and e.
// Addition never rounds, so the result has as many digits as needed.
func (d Decimal) Add(e Decimal) Decimal {
	switch {
	case d.sign == 0:
		return e
	case e.sign == 0:
		return d
	}

	// Digits are aligned by weight: position p holds the digit of
	// weight 10^-p, running from the least significant digit of either
	// operand up to the larger scale.
	scale := max(d.scale, e.scale)
	lo := max(len(d.digits)-d.scale, len(e.digits)-e.scale)
	buf := make([]byte, lo+scale+1)

	sign, dir := int(d.sign), 1
	if d.sign != e.sign {
		dir = cmpAbs(d, e)
		if dir == 0 {
			return Zero
		}
		sign *= dir
	}

	r := 0
	for p := lo - 1; p >= -scale; p-- {
		a, b := digit(d.digits, p+d.scale), digit(e.digits, p+e.scale)
		if d.sign == e.sign {
			r += a + b
			buf[p+scale+1] = byte(r % 10)
			r /= 10
		} else {
			// Subtract the smaller magnitude from the larger one, borrowing
			// one from the next position whenever the digit underflows.
			r += 10 + dir*(a-b)
			buf[p+scale+1] = byte(r % 10)
			r = r/10 - 1
		}
	}
	if d.sign == e.sign {
		buf[0] = byte(r)
	}
	return normalize(sign, buf, scale+1)
}

// Sub returns the (exact) difference between decimals d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the (exact) product of decimals d and e.
// The product has at most d.Precision() + e.Precision() digits.
func (d Decimal) Mul(e Decimal) Decimal {
	if d.sign == 0 || e.sign == 0 {
		return Zero
	}
	pa, pb := len(d.digits), len(e.digits)
	buf := make([]byte, pa+pb)
	for i := pa - 1; i >= 0; i-- {
		a := int(d.digits[i] - '0')
		r := 0
		for j := pb - 1; j >= 0; j-- {
			r += int(buf[i+j+1]) + a*int(e.digits[j]-'0')
			buf[i+j+1] = byte(r % 10)
			r /= 10
		}
		buf[i] = byte(r)
	}
	return normalize(int(d.sign*e.sign), buf, d.scale+e.scale+1)
}

// Sum returns the (exact) sum of the given decimals, or 0 if none are given.
func Sum(values ...Decimal) Decimal {
	var res Decimal
	for _, v := range values {
		res = res.Add(v)
	}
	return res
}
