// Package expr evaluates arithmetic expressions over decimals.
//
// An expression combines numbers, variables, the operators + - * / % ^,
// parentheses and calls of the following functions:
//
//	sqrt(x)  abs(x)  neg(x)  floor(x)  ceil(x)  trunc(x)
//	round(x) round(x, places)
//	pow(x, n)  mod(x, y)  rem(x, y)  divint(x, y)
//	min(x, ...)  max(x, ...)
//
// Addition, subtraction, multiplication and powers are exact. Division and
// square roots are rounded with the rules of the [Evaluator].
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decimalish/decimal"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrFunction = errors.New("unknown function")
	ErrArity    = errors.New("wrong number of arguments")
	ErrVariable = errors.New("undefined variable")
)

// Evaluator evaluates expressions.
// The zero value divides with 34 significant digits rounded half to even
// and has no variables.
type Evaluator struct {
	// Rules round the results of "/" and sqrt; their mode also applies to round.
	Rules decimal.Rules
	// Vars hold the values of variables, by name.
	Vars map[string]decimal.Decimal
}

// Eval parses and evaluates the expression src.
func (ev *Evaluator) Eval(src string) (decimal.Decimal, error) {
	if strings.TrimSpace(src) == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	ast, err := exprParser.ParseString("", src)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return ev.expression(ast)
}

// Eval evaluates src with the default [Evaluator].
func Eval(src string) (decimal.Decimal, error) {
	var ev Evaluator
	return ev.Eval(src)
}

func (ev *Evaluator) expression(x *expression) (decimal.Decimal, error) {
	res, err := ev.term(x.Left)
	if err != nil {
		return decimal.Decimal{}, err
	}
	for _, r := range x.Right {
		v, err := ev.term(r.Term)
		if err != nil {
			return decimal.Decimal{}, err
		}
		switch r.Op {
		case "+":
			res = res.Add(v)
		case "-":
			res = res.Sub(v)
		}
	}
	return res, nil
}

func (ev *Evaluator) term(x *term) (decimal.Decimal, error) {
	res, err := ev.unary(x.Left)
	if err != nil {
		return decimal.Decimal{}, err
	}
	for _, r := range x.Right {
		v, err := ev.unary(r.Unary)
		if err != nil {
			return decimal.Decimal{}, err
		}
		switch r.Op {
		case "*":
			res = res.Mul(v)
		case "/":
			res, err = res.Div(v, ev.Rules)
		case "%":
			res, err = res.Rem(v, decimal.Rules{})
		}
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return res, nil
}

func (ev *Evaluator) unary(x *unary) (decimal.Decimal, error) {
	if x.Power != nil {
		return ev.power(x.Power)
	}
	v, err := ev.unary(x.Unary)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if x.Op == "-" {
		v = v.Neg()
	}
	return v, nil
}

func (ev *Evaluator) power(x *power) (decimal.Decimal, error) {
	base, err := ev.primary(x.Base)
	if err != nil || x.Exp == nil {
		return base, err
	}
	exp, err := ev.unary(x.Exp)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pow(base, exp)
}

func (ev *Evaluator) primary(x *primary) (decimal.Decimal, error) {
	switch {
	case x.Number != nil:
		return decimal.Parse(*x.Number)
	case x.Call != nil:
		return ev.call(x.Call)
	case x.Var != nil:
		v, ok := ev.Vars[*x.Var]
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrVariable, *x.Var)
		}
		return v, nil
	}
	return ev.expression(x.Sub)
}

func pow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	n, err := exp.Int64()
	if err != nil {
		return decimal.Decimal{}, &decimal.Error{Code: decimal.NotInt, Op: "pow", Input: "exponent: " + exp.String()}
	}
	return base.Pow(int(n))
}

func (ev *Evaluator) call(x *call) (decimal.Decimal, error) {
	args := make([]decimal.Decimal, len(x.Args))
	for i, a := range x.Args {
		v, err := ev.expression(a)
		if err != nil {
			return decimal.Decimal{}, err
		}
		args[i] = v
	}

	arity := func(lo, hi int) error {
		if len(args) < lo || hi >= 0 && len(args) > hi {
			return fmt.Errorf("%w: %v(%d arguments)", ErrArity, x.Name, len(args))
		}
		return nil
	}

	switch name := strings.ToLower(x.Name); name {
	case "sqrt", "abs", "neg", "floor", "ceil", "trunc":
		if err := arity(1, 1); err != nil {
			return decimal.Decimal{}, err
		}
		switch name {
		case "sqrt":
			return args[0].Sqrt(ev.Rules)
		case "abs":
			return args[0].Abs(), nil
		case "neg":
			return args[0].Neg(), nil
		case "floor":
			return args[0].Floor(), nil
		case "ceil":
			return args[0].Ceil(), nil
		}
		return args[0].Trunc(), nil

	case "round":
		if err := arity(1, 2); err != nil {
			return decimal.Decimal{}, err
		}
		r := decimal.Rules{Mode: ev.Rules.Mode}
		if len(args) == 2 {
			n, err := args[1].Int64()
			if err != nil {
				return decimal.Decimal{}, &decimal.Error{Code: decimal.NotInt, Op: "round", Input: "places: " + args[1].String()}
			}
			r = decimal.Places(int(n)).WithMode(ev.Rules.Mode)
		}
		return args[0].Round(r)

	case "pow", "mod", "rem", "divint":
		if err := arity(2, 2); err != nil {
			return decimal.Decimal{}, err
		}
		switch name {
		case "pow":
			return pow(args[0], args[1])
		case "mod":
			return args[0].Mod(args[1])
		case "rem":
			return args[0].Rem(args[1], decimal.Rules{})
		}
		return args[0].DivInt(args[1], decimal.Rules{})

	case "min", "max":
		if err := arity(1, -1); err != nil {
			return decimal.Decimal{}, err
		}
		if name == "min" {
			return decimal.Min(args...), nil
		}
		return decimal.Max(args...), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrFunction, x.Name)
}
