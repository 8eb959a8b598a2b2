package decimal

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable identifier of an error kind.
type Code string

const (
	NotNum  Code = "NOT_NUM"  // value is not a finite number
	NotInt  Code = "NOT_INT"  // value must be a whole number
	NotPos  Code = "NOT_POS"  // value must not be negative
	NotMode Code = "NOT_MODE" // unknown rounding mode
	NotBoth Code = "NOT_BOTH" // places and precision given together
	Inexact Code = "INEXACT"  // result would lose information
	DivZero Code = "DIV_ZERO" // division by zero
	SqrtNeg Code = "SQRT_NEG" // square root of a negative number
)

var (
	ErrNotNum  = errors.New("not a number")
	ErrNotInt  = errors.New("not an integer")
	ErrNotPos  = errors.New("not a non-negative number")
	ErrNotMode = errors.New("unknown rounding mode")
	ErrNotBoth = errors.New("places and precision are mutually exclusive")
	ErrInexact = errors.New("inexact result")
	ErrDivZero = errors.New("division by zero")
	ErrSqrtNeg = errors.New("square root of negative number")
)

var sentinels = map[Code]error{
	NotNum:  ErrNotNum,
	NotInt:  ErrNotInt,
	NotPos:  ErrNotPos,
	NotMode: ErrNotMode,
	NotBoth: ErrNotBoth,
	Inexact: ErrInexact,
	DivZero: ErrDivZero,
	SqrtNeg: ErrSqrtNeg,
}

// Error describes a failed operation.
// It unwraps to one of the Err* sentinels, so callers can use [errors.Is]:
//
//	if errors.Is(err, decimal.ErrDivZero) { ... }
type Error struct {
	Code  Code   // kind of the failure
	Op    string // operation that failed, e.g. "div"
	Input string // offending input as text
}

func newError(code Code, op, input string) *Error {
	return &Error{Code: code, Op: op, Input: input}
}

func (e *Error) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("decimal: %v: %v", e.Op, sentinels[e.Code])
	}
	return fmt.Sprintf("decimal: %v: %v: %v", e.Op, sentinels[e.Code], e.Input)
}

func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// CodeOf returns the code of the first [*Error] in err's chain, or an empty
// code if there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
