package decimal

import (
	"math/big"
	"strings"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It is used when a decimal is converted from or to an arbitrary-width
// integer.
type bint big.Int

// setString sets z to the integer with the given decimal digits.
func (z *bint) setString(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// string returns the decimal text of z.
func (z *bint) string() string {
	return (*big.Int)(z).String()
}

// sign returns -1, 0 or +1 depending on the sign of z.
func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// NewFromBigInt converts an arbitrary-width integer to a decimal.
func NewFromBigInt(i *big.Int) Decimal {
	var b bint
	b.abs((*bint)(i))
	digs := []byte(b.string())
	for j := range digs {
		digs[j] -= '0'
	}
	return normalize((*bint)(i).sign(), digs, len(digs)-1)
}

// BigInt returns d as an arbitrary-width integer.
//
// BigInt returns an error with code [NotInt] if d has a fractional part.
func (d Decimal) BigInt() (*big.Int, error) {
	if !d.IsInt() {
		return nil, newError(NotInt, "bigint", d.String())
	}
	z := new(big.Int)
	if d.sign == 0 {
		return z, nil
	}
	var b strings.Builder
	b.Grow(d.scale + 2)
	if d.sign < 0 {
		b.WriteByte('-')
	}
	b.WriteString(d.digits)
	b.WriteString(strings.Repeat("0", d.scale+1-len(d.digits)))
	(*bint)(z).setString(b.String())
	return z, nil
}
