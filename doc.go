/*
Package decimal implements immutable arbitrary-precision decimal numbers.
Addition, subtraction and multiplication are always exact, while division
and square roots are rounded to a precision chosen by the caller.

# Representation

[Decimal] is a struct with three fields:

  - Sign: -1 for negative numbers, 1 for positive numbers and 0 for zero.
  - Digits: the significant digits of the number, without leading or trailing
    zeros. Zero has no digits.
  - Scale: the power of ten of the first digit.
    For example, digits "12345" with a scale of 2 represent 123.45,
    and digits "5" with a scale of -3 represent 0.005.

The numerical value of a decimal is calculated as:

	Sign × 0.Digits × 10^(Scale+1)

In this approach, every numeric value has exactly one representation.
For example, 1, 1.0 and 1.00 all parse to the same value.
As a consequence, decimals can be compared with the == operator and used as
map keys. See [Compose] and [Decimal.Decompose] for building custom
operations on top of the representation.

Special values such as NaN, Infinity or negative zeros are not supported.
This ensures that operations always produce either valid decimals or errors.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.ToFixed], [Decimal.ToExponential],
    [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64], [Decimal.InexactFloat64].
  - from/to int64 and uint64:
    [NewFromInt64], [NewFromUint64], [Decimal.Int64], [Decimal.Uint64].
  - from/to big.Int:
    [NewFromBigInt], [Decimal.BigInt].
  - from any numeric value:
    [New], [IsNumeric].

See the documentation for each method for more details.

# Operations

[Decimal.Add], [Decimal.Sub], [Decimal.Mul] and [Decimal.Pow] are exact and
never fail: the result has as many digits as it needs.

[Decimal.Div], [Decimal.DivRem], [Decimal.DivInt], [Decimal.Rem],
[Decimal.Mod] and [Decimal.Sqrt] compute digits by long division, so the
number of digits they produce is chosen with [Rules]:

	q, err := x.Div(y, decimal.Precision(10))
	q, err := x.Div(y, decimal.Places(2).WithMode(decimal.HalfUp))

Rules with neither places nor precision select the default of the
operation. [Decimal.Div] and [Decimal.Sqrt] keep 34 significant digits,
while [Decimal.DivRem] and [Decimal.Rem] produce an integer quotient.

# Rounding

There is no implicit rounding and no global context. Rounding happens only
in the operations that take [Rules], and the rounding [Mode] applies to
that call alone. Eleven modes are available:

	| Mode      | 2.5 | -2.5 | 1.4 | 1.6 |
	| --------- | --- | ---- | --- | --- |
	| Up        |   3 |   -3 |   2 |   2 |
	| Down      |   2 |   -2 |   1 |   1 |
	| Ceil      |   3 |   -2 |   2 |   2 |
	| Floor     |   2 |   -3 |   1 |   1 |
	| Euclidean |   2 |   -3 |   1 |   1 |
	| HalfUp    |   3 |   -3 |   1 |   2 |
	| HalfDown  |   2 |   -2 |   1 |   2 |
	| HalfCeil  |   3 |   -2 |   1 |   2 |
	| HalfFloor |   2 |   -3 |   1 |   2 |
	| HalfEven  |   2 |   -2 |   1 |   2 |

The [Exact] mode never rounds; it fails with [ErrInexact] instead, which
asserts that a result fits the requested places or precision.

# Errors

All errors are values of type [*Error]. Each carries a stable [Code] and
unwraps to one of the sentinel errors, so either form of check works:

	if errors.Is(err, decimal.ErrDivZero) { ... }
	if decimal.CodeOf(err) == decimal.DivZero { ... }
*/
package decimal
