package decimal

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// maxExp bounds the magnitude of a parsed exponent.
const maxExp = math.MaxInt32

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	12.
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' [digits] | '.' digits | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse does not round: every digit of the input is kept, except leading
// and trailing zeros, which carry no information.
//
// Parse returns an error with code [NotNum] if the string does not match the
// grammar or if the exponent does not fit in 32 bits.
func Parse(s string) (Decimal, error) {
	d, ok := parse(s)
	if !ok {
		return Decimal{}, newError(NotNum, "parse", s)
	}
	return d, nil
}

func parse(s string) (Decimal, bool) {
	var (
		pos      int
		width    int
		neg      bool
		intdigs  int
		fracdigs int
		eneg     bool
		exp      int
		hasexp   bool
	)

	width = len(s)
	buf := make([]byte, 0, width)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		buf = append(buf, s[pos]-'0')
		intdigs++
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		// A lone point needs a fractional digit
		if intdigs == 0 && (pos+1 == width || !isDigit(s[pos+1])) {
			return Decimal{}, false
		}
		pos++
		for pos < width && isDigit(s[pos]) {
			buf = append(buf, s[pos]-'0')
			fracdigs++
			pos++
		}
	}
	if intdigs+fracdigs == 0 {
		return Decimal{}, false
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		if pos < width && (s[pos] == '-' || s[pos] == '+') {
			eneg = s[pos] == '-'
			pos++
		}
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxExp {
				return Decimal{}, false
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return Decimal{}, false
		}
	}

	if pos != width {
		return Decimal{}, false
	}
	if eneg {
		exp = -exp
	}

	sign := 1
	if neg {
		sign = -1
	}
	return normalize(sign, buf, exp+intdigs-1), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// New converts a numeric value to a decimal.
// The following types are accepted:
//
//   - [Decimal] and *Decimal;
//   - string, []byte and [json.Number] in the format described by [Parse];
//   - bool, where true is 1 and false is 0;
//   - all integer types, float32 and float64;
//   - *[big.Int] and *[big.Float];
//   - any [encoding.TextMarshaler] or [fmt.Stringer] producing numeric text.
//
// New returns an error with code [NotNum] for other types, for non-finite
// floating-point values and for text that [Parse] rejects.
func New(v any) (Decimal, error) {
	switch v := v.(type) {
	case Decimal:
		return v, nil
	case *Decimal:
		if v == nil {
			break
		}
		return *v, nil
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	case json.Number:
		return Parse(string(v))
	case bool:
		return NewFromBool(v), nil
	case int:
		return NewFromInt64(int64(v)), nil
	case int8:
		return NewFromInt64(int64(v)), nil
	case int16:
		return NewFromInt64(int64(v)), nil
	case int32:
		return NewFromInt64(int64(v)), nil
	case int64:
		return NewFromInt64(v), nil
	case uint:
		return NewFromUint64(uint64(v)), nil
	case uint8:
		return NewFromUint64(uint64(v)), nil
	case uint16:
		return NewFromUint64(uint64(v)), nil
	case uint32:
		return NewFromUint64(uint64(v)), nil
	case uint64:
		return NewFromUint64(v), nil
	case uintptr:
		return NewFromUint64(uint64(v)), nil
	case float32:
		return newFromFloat(float64(v), 32)
	case float64:
		return newFromFloat(v, 64)
	case *big.Int:
		if v == nil {
			break
		}
		return NewFromBigInt(v), nil
	case *big.Float:
		if v == nil || v.IsInf() {
			break
		}
		return Parse(v.Text('e', -1))
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return Decimal{}, fmt.Errorf("marshaling %T: %w", v, newError(NotNum, "new", err.Error()))
		}
		return Parse(string(text))
	case fmt.Stringer:
		return Parse(v.String())
	}
	return Decimal{}, newError(NotNum, "new", fmt.Sprint(v))
}

// NewFromBool returns 1 for true and 0 for false.
func NewFromBool(b bool) Decimal {
	if b {
		return One
	}
	return Zero
}

// NewFromInt64 converts an integer to a decimal.
func NewFromInt64(i int64) Decimal {
	u := uint64(i)
	if i < 0 {
		u = -u
	}
	digs := fint(u).digits()
	sign := 1
	if i < 0 {
		sign = -1
	}
	return normalize(sign, digs, len(digs)-1)
}

// NewFromUint64 converts an unsigned integer to a decimal.
func NewFromUint64(u uint64) Decimal {
	digs := fint(u).digits()
	return normalize(1, digs, len(digs)-1)
}

// NewFromFloat64 converts a float to the decimal with the shortest text
// that round-trips to the same float, as [strconv.FormatFloat] with
// precision -1 would print it.
// Negative zero is converted to 0.
//
// NewFromFloat64 returns an error with code [NotNum] if f is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	return newFromFloat(f, 64)
}

func newFromFloat(f float64, bitSize int) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, newError(NotNum, "new", strconv.FormatFloat(f, 'g', -1, bitSize))
	}
	return Parse(strconv.FormatFloat(f, 'e', -1, bitSize))
}

// IsNumeric returns true if v can be converted to a decimal by [New].
func IsNumeric(v any) bool {
	_, err := New(v)
	return err == nil
}

// IsDecimal returns true if v is a [Decimal] or a string holding the
// canonical text of a decimal, that is, a string s for which
// Parse(s).String() == s.
func IsDecimal(v any) bool {
	switch v := v.(type) {
	case Decimal:
		return true
	case string:
		d, ok := parse(v)
		return ok && d.String() == v
	}
	return false
}
