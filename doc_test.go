package decimal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/decimalish/decimal"
)

func evaluate(input string) (decimal.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return decimal.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]decimal.Decimal, error) {
	stack := make([]decimal.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result decimal.Decimal
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Div(right, decimal.Rules{})
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	d, err := decimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix (or Polish) notation.
// Sums, differences and products are exact, while quotients keep
// 34 significant digits.
func Example_prefixCalculator() {
	d, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = evaluate("/ 1 - 2 2")
	fmt.Println(err)
	// Output:
	// 57.9
	// processing tokens: processing token "/": evaluating "1 / 0": decimal: div: division by zero: 1/0
}

func approximate(terms int) (decimal.Decimal, error) {
	pi := decimal.Zero
	sign := decimal.One
	denominator := decimal.One
	multiplier := decimal.MustParse("4")

	for i := 0; i < terms; i++ {
		term, err := multiplier.Div(denominator, decimal.Rules{})
		if err != nil {
			return decimal.Decimal{}, err
		}
		pi = pi.Add(term.CopySign(sign))
		denominator = denominator.Add(decimal.Two)
		sign = sign.Neg()
	}
	return pi, nil
}

// This example calculates an approximate value of pi using the Leibniz formula for pi.
// The Leibniz formula is an infinite series that converges to pi/4, and is
// given by the equation: 1 - 1/3 + 1/5 - 1/7 + 1/9 - 1/11 + ... = pi/4.
// This example sums the first 1,000 terms of the series.
func Example_piApproximation() {
	pi, err := approximate(1000)
	if err != nil {
		panic(err)
	}
	fmt.Println(pi)
	fmt.Println(pi.MustRound(decimal.Places(2)))
	// Output:
	// 3.140592653839792925963596502869396457
	// 3.14
}

func ExampleNew() {
	a, _ := decimal.New("1.50")
	b, _ := decimal.New(42)
	c, _ := decimal.New(0.1)
	d, _ := decimal.New(big.NewInt(-7))
	_, err := decimal.New([]int{1})
	fmt.Println(a, b, c, d)
	fmt.Println(err)
	// Output:
	// 1.5 42 0.1 -7
	// decimal: new: not a number: [1]
}

func ExampleMustNew() {
	fmt.Println(decimal.MustNew("-0.00"))
	fmt.Println(decimal.MustNew(uint8(255)))
	fmt.Println(decimal.MustNew(true))
	// Output:
	// 0
	// 255
	// 1
}

func ExampleNewFromInt64() {
	fmt.Println(decimal.NewFromInt64(-123))
	fmt.Println(decimal.NewFromInt64(math.MinInt64))
	// Output:
	// -123
	// -9223372036854775808
}

func ExampleNewFromFloat64() {
	fmt.Println(decimal.NewFromFloat64(0.1))
	fmt.Println(decimal.NewFromFloat64(1e-20))
	fmt.Println(decimal.NewFromFloat64(math.NaN()))
	// Output:
	// 0.1 <nil>
	// 0.00000000000000000001 <nil>
	// 0 decimal: new: not a number: NaN
}

func ExampleParse() {
	fmt.Println(decimal.Parse("1.2500"))
	fmt.Println(decimal.Parse("-1.83e5"))
	fmt.Println(decimal.Parse(".5"))
	fmt.Println(decimal.Parse("1,5"))
	// Output:
	// 1.25 <nil>
	// -183000 <nil>
	// 0.5 <nil>
	// 0 decimal: parse: not a number: 1,5
}

func ExampleMustParse() {
	fmt.Println(decimal.MustParse("-1.23"))
	// Output: -1.23
}

func ExampleCompose() {
	d, err := decimal.Compose(-1, "0012345", 2)
	fmt.Println(d, err)
	fmt.Println(d.Decompose())
	// Output:
	// -1.2345 <nil>
	// -1 12345 0 5
}

func ExampleDecimal_Decompose() {
	fmt.Println(decimal.MustParse("0.005").Decompose())
	fmt.Println(decimal.MustParse("-1200").Decompose())
	fmt.Println(decimal.Zero.Decompose())
	// Output:
	// 1 5 -3 1
	// -1 12 3 2
	// 0  0 0
}

func ExampleDecimal_String() {
	fmt.Println(decimal.MustParse("1e-7").String())
	fmt.Println(decimal.MustParse("-1.5E+3").String())
	// Output:
	// 0.0000001
	// -1500
}

func ExampleIsDecimal() {
	fmt.Println(decimal.IsDecimal("1.5"))
	fmt.Println(decimal.IsDecimal("1.50"))
	fmt.Println(decimal.IsDecimal(decimal.One))
	fmt.Println(decimal.IsDecimal(1.5))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleIsNumeric() {
	fmt.Println(decimal.IsNumeric("1.50"))
	fmt.Println(decimal.IsNumeric(1.5))
	fmt.Println(decimal.IsNumeric("one"))
	// Output:
	// true
	// true
	// false
}

func ExampleDecimal_Float64() {
	fmt.Println(decimal.MustParse("0.1").Float64())
	fmt.Println(decimal.MustParse("0.1234567890123456789").Float64())
	fmt.Println(decimal.MustParse("0.1234567890123456789").InexactFloat64())
	// Output:
	// 0.1 <nil>
	// 0 decimal: float64: inexact result: 0.1234567890123456789
	// 0.12345678901234568
}

func ExampleDecimal_Int64() {
	fmt.Println(decimal.MustParse("-42").Int64())
	fmt.Println(decimal.MustParse("1.5").Int64())
	fmt.Println(decimal.MustParse("1e19").Int64())
	// Output:
	// -42 <nil>
	// 0 decimal: int64: not an integer: 1.5
	// 0 decimal: int64: inexact result: 10000000000000000000
}

func ExampleDecimal_UnmarshalJSON() {
	type Payment struct {
		Amount decimal.Decimal `json:"amount"`
	}
	var p Payment
	err := json.Unmarshal([]byte(`{"amount":"-15.67"}`), &p)
	fmt.Println(p.Amount, err)
	err = json.Unmarshal([]byte(`{"amount":1.5e2}`), &p)
	fmt.Println(p.Amount, err)
	// Output:
	// -15.67 <nil>
	// 150 <nil>
}

func ExampleDecimal_MarshalJSON() {
	type Payment struct {
		Amount decimal.Decimal `json:"amount"`
	}
	data, err := json.Marshal(Payment{Amount: decimal.MustParse("-15.670")})
	fmt.Println(string(data), err)
	// Output:
	// {"amount":"-15.67"} <nil>
}

func ExampleDecimal_Scan() {
	var d decimal.Decimal
	_ = d.Scan([]byte("-1.234"))
	fmt.Println(d)
	_ = d.Scan(int64(42))
	fmt.Println(d)
	fmt.Println(d.Scan(true))
	// Output:
	// -1.234
	// 42
	// decimal: scan: not a number: bool
}

func ExampleDecimal_Value() {
	fmt.Println(decimal.MustParse("-1.2300").Value())
	// Output: -1.23 <nil>
}

func ExampleDecimal_Format() {
	d := decimal.MustParse("-123.456")
	fmt.Printf("%v %.2f %e %k %q\n", d, d, d, d, d)
	fmt.Printf("[%10v] [%-10v] [%+v] [%010.1f]\n", d, d, d.Neg(), d)
	// Output:
	// -123.456 -123.46 -1.23456e+2 -12345.6% "-123.456"
	// [  -123.456] [-123.456  ] [+123.456] [-0000123.5]
}

func ExampleDecimal_ToFixed() {
	fmt.Println(decimal.MustParse("1.5").ToFixed(decimal.Places(2)))
	fmt.Println(decimal.MustParse("123").ToFixed(decimal.Precision(5)))
	fmt.Println(decimal.MustParse("1234").ToFixed(decimal.Places(-2)))
	// Output:
	// 1.50 <nil>
	// 123.00 <nil>
	// 1200 <nil>
}

func ExampleDecimal_ToExponential() {
	fmt.Println(decimal.MustParse("1234").ToExponential(decimal.Rules{}))
	fmt.Println(decimal.MustParse("1234").ToExponential(decimal.Places(1)))
	fmt.Println(decimal.MustParse("0.05").ToExponential(decimal.Precision(3)))
	// Output:
	// 1.234e+3 <nil>
	// 1.2e+3 <nil>
	// 5.00e-2 <nil>
}

func ExampleDecimal_Add() {
	d := decimal.MustParse("5.67")
	e := decimal.MustParse("8")
	fmt.Println(d.Add(e))
	// Output: 13.67
}

func ExampleDecimal_Sub() {
	d := decimal.MustParse("-5.67")
	e := decimal.MustParse("8")
	fmt.Println(d.Sub(e))
	// Output: -13.67
}

func ExampleDecimal_Mul() {
	d := decimal.MustParse("5.7")
	e := decimal.MustParse("3")
	fmt.Println(d.Mul(e))
	// Output: 17.1
}

func ExampleSum() {
	fmt.Println(decimal.Sum(decimal.MustParse("0.1"), decimal.MustParse("0.2")))
	// Output: 0.3
}

func ExampleDecimal_Pow() {
	fmt.Println(decimal.MustParse("1.1").Pow(2))
	fmt.Println(decimal.MustParse("2").Pow(64))
	fmt.Println(decimal.MustParse("2").Pow(-1))
	// Output:
	// 1.21 <nil>
	// 18446744073709551616 <nil>
	// 0 decimal: pow: not a non-negative number: exponent: -1
}

func ExampleDecimal_Div() {
	d := decimal.MustParse("1")
	e := decimal.MustParse("3")
	fmt.Println(d.Div(e, decimal.Rules{}))
	fmt.Println(d.Div(e, decimal.Places(2)))
	fmt.Println(d.Div(e, decimal.Precision(5).WithMode(decimal.Up)))
	fmt.Println(d.Div(e, decimal.Rules{Mode: decimal.Exact}))
	fmt.Println(d.Div(decimal.Zero, decimal.Rules{}))
	// Output:
	// 0.3333333333333333333333333333333333 <nil>
	// 0.33 <nil>
	// 0.33334 <nil>
	// 0 decimal: div: inexact result: 1/3
	// 0 decimal: div: division by zero: 1/0
}

func ExampleDecimal_DivRem() {
	ten, three := decimal.MustParse("10"), decimal.MustParse("3")
	fmt.Println(ten.DivRem(three.Neg(), decimal.Rules{}))
	fmt.Println(ten.DivRem(three.Neg(), decimal.Rules{Mode: decimal.Floor}))
	fmt.Println(ten.Neg().DivRem(three, decimal.Rules{Mode: decimal.Euclidean}))
	// Output:
	// -3 1 <nil>
	// -4 -2 <nil>
	// -4 2 <nil>
}

func ExampleDecimal_Rem() {
	d := decimal.MustParse("-7")
	e := decimal.MustParse("2")
	fmt.Println(d.Rem(e, decimal.Rules{}))
	fmt.Println(d.Mod(e))
	// Output:
	// -1 <nil>
	// 1 <nil>
}

func ExampleDecimal_Sqrt() {
	fmt.Println(decimal.Two.Sqrt(decimal.Rules{}))
	fmt.Println(decimal.Two.Sqrt(decimal.Precision(10)))
	fmt.Println(decimal.MustParse("1.44").Sqrt(decimal.Rules{Mode: decimal.Exact}))
	fmt.Println(decimal.MustParse("-1").Sqrt(decimal.Rules{}))
	// Output:
	// 1.414213562373095048801688724209698 <nil>
	// 1.414213562 <nil>
	// 1.2 <nil>
	// 0 decimal: sqrt: square root of negative number: -1
}

func ExampleDecimal_Round() {
	fmt.Println(decimal.MustParse("2.5").Round(decimal.Rules{}))
	fmt.Println(decimal.MustParse("2.5").Round(decimal.Rules{Mode: decimal.HalfUp}))
	d := decimal.MustParse("1234.5678")
	fmt.Println(d.Round(decimal.Places(2)))
	fmt.Println(d.Round(decimal.Places(-2)))
	fmt.Println(d.Round(decimal.Precision(3)))
	// Output:
	// 2 <nil>
	// 3 <nil>
	// 1234.57 <nil>
	// 1200 <nil>
	// 1230 <nil>
}

func ExampleDecimal_RoundRem() {
	fmt.Println(decimal.MustParse("1.26").RoundRem(decimal.Places(1)))
	// Output: 1.3 -0.04 <nil>
}

func ExampleDecimal_Floor() {
	fmt.Println(decimal.MustParse("1.5").Floor())
	fmt.Println(decimal.MustParse("-1.5").Floor())
	// Output:
	// 1
	// -2
}

func ExampleDecimal_Ceil() {
	fmt.Println(decimal.MustParse("1.5").Ceil())
	fmt.Println(decimal.MustParse("-1.5").Ceil())
	// Output:
	// 2
	// -1
}

func ExampleDecimal_Trunc() {
	fmt.Println(decimal.MustParse("1.5").Trunc())
	fmt.Println(decimal.MustParse("-1.5").Trunc())
	// Output:
	// 1
	// -1
}

func ExampleDecimal_IntFrac() {
	fmt.Println(decimal.MustParse("-1.25").IntFrac())
	// Output: -1 -0.25
}

func ExampleDecimal_Cmp() {
	d := decimal.MustParse("1.1")
	fmt.Println(d.Cmp(decimal.MustParse("1.10")))
	fmt.Println(d.Cmp(decimal.MustParse("-2")))
	fmt.Println(d.Lt(decimal.Two))
	// Output:
	// 0
	// 1
	// true
}

func ExampleMin() {
	a, b, c := decimal.MustParse("3"), decimal.MustParse("-1.5"), decimal.MustParse("2")
	fmt.Println(decimal.Min(a, b, c))
	fmt.Println(decimal.Max(a, b, c))
	// Output:
	// -1.5
	// 3
}

func ExampleDecimal_Clamp() {
	low, high := decimal.One, decimal.MustParse("3")
	fmt.Println(decimal.MustParse("5").Clamp(low, high))
	fmt.Println(decimal.MustParse("2.5").Clamp(low, high))
	fmt.Println(decimal.Zero.Clamp(low, high))
	// Output:
	// 3
	// 2.5
	// 1
}

func ExampleDecimal_Scale() {
	d := decimal.MustParse("123.45")
	fmt.Println(d.Scale(), d.Precision(), d.Places())
	d = decimal.MustParse("0.00123")
	fmt.Println(d.Scale(), d.Precision(), d.Places())
	// Output:
	// 2 5 2
	// -3 3 5
}

func ExampleDecimal_MovePoint() {
	d := decimal.MustParse("1.234")
	fmt.Println(d.MovePoint(2))
	fmt.Println(d.MovePoint(-2))
	// Output:
	// 123.4
	// 0.01234
}

func ExampleDecimal_IsInt() {
	fmt.Println(decimal.MustParse("1.0").IsInt())
	fmt.Println(decimal.MustParse("1.5").IsInt())
	fmt.Println(decimal.MustParse("1e3").IsInt())
	// Output:
	// true
	// false
	// true
}

func ExampleDecimal_Sign() {
	fmt.Println(decimal.MustParse("-2.5").Sign())
	fmt.Println(decimal.Zero.Sign())
	fmt.Println(decimal.MustParse("0.001").Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleDecimal_CopySign() {
	d := decimal.MustParse("23")
	fmt.Println(d.CopySign(decimal.MustParse("-1")))
	fmt.Println(d.Neg().Abs())
	// Output:
	// -23
	// 23
}

func ExampleParseMode() {
	m, err := decimal.ParseMode("HALF_EVEN")
	fmt.Println(m, err)
	_, err = decimal.ParseMode("sideways")
	fmt.Println(errors.Is(err, decimal.ErrNotMode))
	// Output:
	// half even <nil>
	// true
}

func ExampleCodeOf() {
	_, err := decimal.One.Div(decimal.Zero, decimal.Rules{})
	fmt.Println(decimal.CodeOf(err))
	fmt.Println(errors.Is(err, decimal.ErrDivZero))
	// Output:
	// DIV_ZERO
	// true
}
