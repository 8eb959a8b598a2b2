package decimal

import "fmt"

// MustNew is like [New] but panics if v is not numeric.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(v any) Decimal {
	d, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustCompose is like [Compose] but panics if digits are invalid.
func MustCompose(sign int, digits string, scale int) Decimal {
	d, err := Compose(sign, digits, scale)
	if err != nil {
		panic(fmt.Sprintf("MustCompose(%v, %q, %v) failed: %v", sign, digits, scale, err))
	}
	return d
}

// MustDiv is like [Decimal.Div] but panics if computing error.
func (d Decimal) MustDiv(e Decimal, r Rules) Decimal {
	f, err := d.Div(e, r)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed: %v", e, r, err))
	}
	return f
}

// MustDivRem is like [Decimal.DivRem] but panics if computing error.
func (d Decimal) MustDivRem(e Decimal, r Rules) (Decimal, Decimal) {
	q, m, err := d.DivRem(e, r)
	if err != nil {
		panic(fmt.Sprintf("MustDivRem(%v, %v) failed: %v", e, r, err))
	}
	return q, m
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal, r Rules) Decimal {
	f, err := d.Rem(e, r)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v, %v) failed: %v", e, r, err))
	}
	return f
}

// MustMod is like [Decimal.Mod] but panics if computing error.
func (d Decimal) MustMod(e Decimal) Decimal {
	f, err := d.Mod(e)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(exp int) Decimal {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics if computing error.
func (d Decimal) MustSqrt(r Rules) Decimal {
	f, err := d.Sqrt(r)
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", r, err))
	}
	return f
}

// MustRound is like [Decimal.Round] but panics if rounding error.
func (d Decimal) MustRound(r Rules) Decimal {
	f, err := d.Round(r)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", r, err))
	}
	return f
}
