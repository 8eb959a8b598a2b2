package decimal

import (
	"fmt"
	"strings"
)

// Mode specifies the direction in which a result is rounded when it does
// not fit the requested number of places or significant digits.
// The zero value selects the default mode of the operation.
type Mode int

const (
	// Up rounds away from zero.
	Up Mode = iota + 1
	// Down rounds towards zero.
	Down
	// Ceil rounds towards positive infinity.
	Ceil
	// Floor rounds towards negative infinity.
	Floor
	// Euclidean rounds a quotient so that the remainder is never negative.
	// When used for rounding a single value, it is an alias of [Floor].
	Euclidean
	// HalfUp rounds to the nearest neighbor, or away from zero at a midpoint.
	HalfUp
	// HalfDown rounds to the nearest neighbor, or towards zero at a midpoint.
	HalfDown
	// HalfCeil rounds to the nearest neighbor, or towards positive infinity at a midpoint.
	HalfCeil
	// HalfFloor rounds to the nearest neighbor, or towards negative infinity at a midpoint.
	HalfFloor
	// HalfEven rounds to the nearest neighbor, or to the even neighbor at a midpoint.
	HalfEven
	// Exact never rounds and fails with [ErrInexact] instead.
	Exact
)

var modeNames = [...]string{
	Up:        "up",
	Down:      "down",
	Ceil:      "ceil",
	Floor:     "floor",
	Euclidean: "euclidean",
	HalfUp:    "half up",
	HalfDown:  "half down",
	HalfCeil:  "half ceil",
	HalfFloor: "half floor",
	HalfEven:  "half even",
	Exact:     "exact",
}

func (m Mode) valid() bool {
	return m >= Up && m <= Exact
}

// String returns the name of the mode, words separated by a space,
// for example "half even".
func (m Mode) String() string {
	if m == 0 {
		return "default"
	}
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a mode name to a mode.
// Letter case is ignored and words may be separated by spaces, hyphens or
// underscores, so "half even", "half-even" and "HALF_EVEN" are all accepted.
// "half ceiling" and "half floor" are accepted alongside "half ceil".
//
// ParseMode returns an error with code [NotMode] if the name is unknown.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(s)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	switch name {
	case "ceiling":
		name = "ceil"
	case "half ceiling":
		name = "half ceil"
	}
	for m := Up; m <= Exact; m++ {
		if modeNames[m] == name {
			return m, nil
		}
	}
	return 0, newError(NotMode, "parse mode", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Mode) MarshalText() ([]byte, error) {
	if m == 0 {
		return []byte{}, nil
	}
	if !m.valid() {
		return nil, newError(NotMode, "marshal mode", m.String())
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// An empty text yields the zero mode.
func (m *Mode) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = 0
		return nil
	}
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Rules describe how the result of an operation is rounded.
// At most one of Places and Precision may be set:
//
//   - Places is the number of digits kept after the decimal point.
//     Negative values round to tens, hundreds and so on.
//   - Precision is the number of significant digits kept.
//
// When neither is set, the operation uses its default.
// The zero value of Mode also selects the operation's default.
//
// Rules are usually built with [Places] or [Precision]:
//
//	d.Div(e, decimal.Precision(10).WithMode(decimal.HalfUp))
type Rules struct {
	Places    *int
	Precision *int
	Mode      Mode
}

// Places returns rules keeping n digits after the decimal point.
func Places(n int) Rules {
	return Rules{Places: &n}
}

// Precision returns rules keeping n significant digits.
func Precision(n int) Rules {
	return Rules{Precision: &n}
}

// WithMode returns a copy of r using the rounding mode m.
func (r Rules) WithMode(m Mode) Rules {
	r.Mode = m
	return r
}

// String returns the rules in the form "places: 2, mode: half up".
func (r Rules) String() string {
	var parts []string
	if r.Places != nil {
		parts = append(parts, fmt.Sprintf("places: %d", *r.Places))
	}
	if r.Precision != nil {
		parts = append(parts, fmt.Sprintf("precision: %d", *r.Precision))
	}
	if r.Mode != 0 {
		parts = append(parts, "mode: "+r.Mode.String())
	}
	return strings.Join(parts, ", ")
}

// rounding is the resolved form of [Rules].
type rounding struct {
	places    int
	precision int
	byPrec    bool // precision rather than places was selected
	mode      Mode
}

// resolve validates r and fills in the defaults of an operation.
// A negative defaultPrec means the operation rounds to 0 places by default.
func (r Rules) resolve(op string, defaultMode Mode, defaultPrec int) (rounding, error) {
	var res rounding
	switch {
	case r.Places != nil && r.Precision != nil:
		return res, newError(NotBoth, op, r.String())
	case r.Places != nil:
		res.places = *r.Places
	case r.Precision != nil:
		res.precision, res.byPrec = *r.Precision, true
	case defaultPrec >= 0:
		res.precision, res.byPrec = defaultPrec, true
	}
	res.mode = r.Mode
	if res.mode == 0 {
		res.mode = defaultMode
	}
	if !res.mode.valid() {
		return res, newError(NotMode, op, res.mode.String())
	}
	return res, nil
}

// cutoff returns the number of significant digits kept for a value whose
// first digit has the given scale.
func (r rounding) cutoff(scale int) int {
	if r.byPrec {
		return r.precision
	}
	return r.places + scale + 1
}

// roundMode is the reduced set of modes applying to absolute values.
type roundMode int

const (
	roundUp roundMode = iota
	roundDown
	roundHalfUp
	roundHalfDown
	roundExact
)

// reduce collapses m to one of the five modes acting on an absolute value,
// given the sign of the result, the sign of the dividend and the last kept
// digit.
func (m Mode) reduce(sign, dividendSign, last int) roundMode {
	switch m {
	case Up:
		return roundUp
	case Ceil:
		if sign < 0 {
			return roundDown
		}
		return roundUp
	case Floor:
		if sign < 0 {
			return roundUp
		}
		return roundDown
	case Euclidean:
		if dividendSign < 0 {
			return roundUp
		}
		return roundDown
	case HalfUp:
		return roundHalfUp
	case HalfDown:
		return roundHalfDown
	case HalfCeil:
		if sign < 0 {
			return roundHalfDown
		}
		return roundHalfUp
	case HalfFloor:
		if sign < 0 {
			return roundHalfUp
		}
		return roundHalfDown
	case HalfEven:
		if last%2 == 1 {
			return roundHalfUp
		}
		return roundHalfDown
	case Exact:
		return roundExact
	}
	return roundDown
}
