package numeric

import (
	"fmt"
	"math"

	"github.com/decimalish/decimal"
)

// Rules configure rounding, like [decimal.Rules], but with loosely typed
// fields. Places and Precision accept any numeric value holding an
// integer, and Mode accepts any name understood by [decimal.ParseMode].
// A nil field, or an empty Mode, selects the default of the operation.
type Rules struct {
	Places    any
	Precision any
	Mode      string
}

// resolve converts optional rules to [decimal.Rules].
// Only the first element of rules is used.
func resolve(op string, rules []Rules) (decimal.Rules, error) {
	var res decimal.Rules
	if len(rules) == 0 {
		return res, nil
	}
	r := rules[0]
	switch {
	case r.Places != nil && r.Precision != nil:
		return res, &decimal.Error{
			Code:  decimal.NotBoth,
			Op:    op,
			Input: fmt.Sprintf("places: %v, precision: %v", r.Places, r.Precision),
		}
	case r.Places != nil:
		n, err := toInt(op, "places", r.Places)
		if err != nil {
			return res, err
		}
		res.Places = &n
	case r.Precision != nil:
		n, err := toInt(op, "precision", r.Precision)
		if err != nil {
			return res, err
		}
		res.Precision = &n
	}
	if r.Mode != "" {
		m, err := decimal.ParseMode(r.Mode)
		if err != nil {
			return res, err
		}
		res.Mode = m
	}
	return res, nil
}

// toInt converts v to an int, failing with [decimal.NotInt] unless v is a
// whole number within the 32-bit range.
func toInt(op, name string, v any) (int, error) {
	d, err := decimal.New(v)
	if err == nil {
		var i int64
		i, err = d.Int64()
		if err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int(i), nil
		}
	}
	return 0, &decimal.Error{Code: decimal.NotInt, Op: op, Input: fmt.Sprintf("%v: %v", name, v)}
}
