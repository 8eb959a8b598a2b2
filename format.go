package decimal

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strings"
)

// print lays out the digits of a decimal with the decimal point after the
// first point digits, padding the digits with zeros up to printPrec.
// A point of zero or less puts the digits after "0." and as many zeros.
func print(sign int, digits string, printPrec, point int) string {
	var b strings.Builder
	prec := max(len(digits), printPrec)
	pad := prec - len(digits)
	b.Grow(prec + max(-point, point-prec, 0) + 3)

	if sign < 0 {
		b.WriteByte('-')
	}
	switch {
	case point < 1:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", pad))
	case point < prec:
		if point < len(digits) {
			b.WriteString(digits[:point])
			b.WriteByte('.')
			b.WriteString(digits[point:])
			b.WriteString(strings.Repeat("0", pad))
		} else {
			b.WriteString(digits)
			b.WriteString(strings.Repeat("0", point-len(digits)))
			b.WriteByte('.')
			b.WriteString(strings.Repeat("0", prec-point))
		}
	default:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-len(digits)))
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// text of d.
// The text never uses exponential notation and is formatted according to
// the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Parsing the text with [Parse] gives back d.
func (d Decimal) String() string {
	return print(int(d.sign), d.digits, len(d.digits), d.scale+1)
}

// ToFixed returns d in fixed notation.
// When r is the zero value, d is printed without rounding, like
// [Decimal.String]. Otherwise d is rounded according to r, as by
// [Decimal.Round], and padded with zeros up to the requested places or
// precision:
//
//	1.5   ToFixed(Places(2))    = "1.50"
//	123   ToFixed(Precision(5)) = "123.00"
//	1234  ToFixed(Places(-2))   = "1200"
func (d Decimal) ToFixed(r Rules) (string, error) {
	return d.toFormat(false, r)
}

// ToExponential returns d in exponential notation, with exactly one digit
// before the decimal point:
//
//	1234  ToExponential(Rules{})      = "1.234e+3"
//	0.05  ToExponential(Rules{})      = "5e-2"
//	1234  ToExponential(Places(1))    = "1.2e+3"
//	1234  ToExponential(Precision(6)) = "1.23400e+3"
//
// Places count the digits after the point of the exponential form, so
// Places(n) is the same as Precision(n + 1).
func (d Decimal) ToExponential(r Rules) (string, error) {
	if r.Places != nil && r.Precision == nil {
		r = Precision(*r.Places + 1).WithMode(r.Mode)
	}
	return d.toFormat(true, r)
}

func (d Decimal) toFormat(exponential bool, r Rules) (string, error) {
	printPrec := len(d.digits)
	if r != (Rules{}) {
		res, err := r.resolve("format", HalfEven, -1)
		if err != nil {
			return "", err
		}
		d, _, err = d.roundRem(res, "format")
		if err != nil {
			return "", err
		}
		printPrec = res.cutoff(d.scale)
	}
	if !exponential {
		return print(int(d.sign), d.digits, printPrec, d.scale+1), nil
	}
	s := print(int(d.sign), d.digits, printPrec, 1)
	if d.scale < 0 {
		return fmt.Sprintf("%ve%d", s, d.scale), nil
	}
	return fmt.Sprintf("%ve+%d", s, d.scale), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//	%f:     -123.456
//	%e:     -1.23456e+2
//	%E:     -1.23456E+2
//	%k:     -12345.6%
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f, %e and %k verbs. It is the number of
// digits after the decimal point, and the value is rounded half to even.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (d Decimal) Format(state fmt.State, verb rune) {
	// Percentage
	if verb == 'k' || verb == 'K' {
		d = d.MovePoint(2)
	}

	var r Rules
	if p, ok := state.Precision(); ok {
		r = Places(p)
	}

	var body string
	switch verb {
	case 'e', 'E':
		body, _ = d.Abs().ToExponential(r)
		if verb == 'E' {
			body = strings.ToUpper(body)
		}
	case 'f', 'F', 'k', 'K':
		body, _ = d.Abs().ToFixed(r)
	default:
		body = d.Abs().String()
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Percentage sign
	psign := 0
	if verb == 'k' || verb == 'K' {
		psign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + psign + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Repeat(" ", lspaces))
	if lquote > 0 {
		buf.WriteByte('"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf.WriteByte('-')
		case state.Flag(' '):
			buf.WriteByte(' ')
		default:
			buf.WriteByte('+')
		}
	}
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(body)
	if psign > 0 {
		buf.WriteByte('%')
	}
	if tquote > 0 {
		buf.WriteByte('"')
	}
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'e', 'E', 'k', 'K':
		state.Write(buf.Bytes())
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(decimal.Decimal="))
		state.Write(buf.Bytes())
		state.Write([]byte(")"))
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is the same as the text form.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	return d.UnmarshalText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, and null leaves d
// unchanged.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return d.UnmarshalText(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is written as a JSON string holding its canonical text,
// so no digits are lost by readers that decode numbers as floats.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts the types a database driver produces for numeric columns:
// float64, int64, string and []byte.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case float64, int64, string, []byte:
		*d, err = New(value)
	default:
		err = newError(NotNum, "scan", fmt.Sprintf("%T", value))
	}
	return err
}

// Value implements the [driver.Valuer] interface.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is not thread-safe.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}
