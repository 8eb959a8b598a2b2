package decimal

// fint (Fast INTeger) is a wrapper around uint64.
// It is used when a decimal is converted from or to a machine integer.
type fint uint64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	z = x + y
	if z < x {
		return 0, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	return z.add(fint(b))
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// digits returns the decimal digit values of x, most significant first.
// Zero has no digits.
func (x fint) digits() []byte {
	buf := make([]byte, x.prec())
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(x % 10)
		x /= 10
	}
	return buf
}

// fintFromDecimal converts the absolute value of an integral d to fint.
// It returns false if d has a fractional part or overflows uint64.
func fintFromDecimal(d Decimal) (fint, bool) {
	if !d.IsInt() {
		return 0, false
	}
	var (
		z  fint
		ok bool
	)
	for i := 0; i < len(d.digits); i++ {
		z, ok = z.fsa(1, d.digits[i]-'0')
		if !ok {
			return 0, false
		}
	}
	return z.lsh(d.scale + 1 - len(d.digits))
}
