package numeric

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/decimalish/decimal"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{"1.50", "1.5"},
		{"-0", "0"},
		{42, "42"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000"},
		{big.NewInt(-5), "-5"},
		{decimal.Two, "2"},
		{true, "1"},
	}
	for _, tt := range tests {
		got, err := Decimal(tt.v)
		if err != nil {
			t.Errorf("Decimal(%v) failed: %v", tt.v, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Decimal(%v) mismatch (-want +got):\n%s", tt.v, diff)
		}
		if s, _ := ToString(tt.v); s != got {
			t.Errorf("ToString(%v) = %q, want %q", tt.v, s, got)
		}
	}

	for _, v := range []any{"bad", nil, []int{1}} {
		if _, err := Decimal(v); decimal.CodeOf(err) != decimal.NotNum {
			t.Errorf("Decimal(%v) error = %v, want code %v", v, err, decimal.NotNum)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		v                                 any
		wantDecimal, wantNumeric, wantInt bool
	}{
		{"1.5", true, true, false},
		{"1.50", false, true, false},
		{"1.0", false, true, true},
		{"12", true, true, true},
		{7, false, true, true},
		{"x", false, false, false},
	}
	for _, tt := range tests {
		got := []bool{IsDecimal(tt.v), IsNumeric(tt.v), IsInteger(tt.v)}
		want := []bool{tt.wantDecimal, tt.wantNumeric, tt.wantInt}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("predicates of %v mismatch (-want +got):\n%s", tt.v, diff)
		}
	}
}

type parts struct {
	Sign      int
	Digits    string
	Scale     int
	Precision int
}

func TestDeconstruct(t *testing.T) {
	tests := []struct {
		v    any
		want parts
	}{
		{"-12.5", parts{-1, "125", 1, 3}},
		{"0.005", parts{1, "5", -3, 1}},
		{0, parts{0, "", 0, 0}},
	}
	for _, tt := range tests {
		var got parts
		var err error
		got.Sign, got.Digits, got.Scale, got.Precision, err = Deconstruct(tt.v)
		if err != nil {
			t.Errorf("Deconstruct(%v) failed: %v", tt.v, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Deconstruct(%v) mismatch (-want +got):\n%s", tt.v, diff)
		}
		s, err := Construct(got.Sign, got.Digits, got.Scale)
		if err != nil {
			t.Errorf("Construct(%+v) failed: %v", got, err)
			continue
		}
		if want, _ := Decimal(tt.v); s != want {
			t.Errorf("Construct(%+v) = %q, want %q", got, s, want)
		}
	}

	if _, err := Construct(1, "1a", 0); decimal.CodeOf(err) != decimal.NotNum {
		t.Errorf("Construct(1, \"1a\", 0) error = %v, want code %v", err, decimal.NotNum)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		f    func() (string, error)
		want string
	}{
		{"add", func() (string, error) { return Add("0.1", 0.2) }, "0.3"},
		{"sub", func() (string, error) { return Sub(1, "0.9") }, "0.1"},
		{"mul", func() (string, error) { return Mul("1.5", "-2") }, "-3"},
		{"div", func() (string, error) { return Div(1, 3) }, "0.3333333333333333333333333333333333"},
		{"div places", func() (string, error) { return Div(1, 3, Rules{Places: 2}) }, "0.33"},
		{"div places text", func() (string, error) { return Div(2, 3, Rules{Places: "1", Mode: "down"}) }, "0.6"},
		{"div precision", func() (string, error) { return Div(200, 3, Rules{Precision: 2}) }, "67"},
		{"divint", func() (string, error) { return DivInt("7.5", 2) }, "3"},
		{"rem", func() (string, error) { return Rem(-7, 2) }, "-1"},
		{"mod", func() (string, error) { return Mod(-7, 2) }, "1"},
		{"pow", func() (string, error) { return Pow(2, "10") }, "1024"},
		{"sqrt", func() (string, error) { return Sqrt(2, Rules{Precision: 5}) }, "1.4142"},
		{"sqrt default", func() (string, error) { return Sqrt("0.25") }, "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDivRem(t *testing.T) {
	tests := []struct {
		a, b         any
		rules        []Rules
		wantQ, wantR string
	}{
		{-7, 2, nil, "-3", "-1"},
		{-7, 2, []Rules{{Mode: "euclidean"}}, "-4", "1"},
		{"10", "-3", []Rules{{Mode: "floor"}}, "-4", "-2"},
		{1, 3, []Rules{{Places: 2}}, "0.33", "0.01"},
	}
	for _, tt := range tests {
		q, r, err := DivRem(tt.a, tt.b, tt.rules...)
		if err != nil {
			t.Errorf("DivRem(%v, %v, %v) failed: %v", tt.a, tt.b, tt.rules, err)
			continue
		}
		if diff := cmp.Diff([]string{tt.wantQ, tt.wantR}, []string{q, r}); diff != "" {
			t.Errorf("DivRem(%v, %v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, tt.rules, diff)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		f    func() error
		want decimal.Code
	}{
		{"not num", func() error { _, err := Add("x", 1); return err }, decimal.NotNum},
		{"not num second", func() error { _, err := Mul(1, "1..2"); return err }, decimal.NotNum},
		{"div zero", func() error { _, err := Div(1, 0); return err }, decimal.DivZero},
		{"divrem zero", func() error { _, _, err := DivRem(1, "0.0"); return err }, decimal.DivZero},
		{"mod zero", func() error { _, err := Mod(1, 0); return err }, decimal.DivZero},
		{"not both", func() error { _, err := Div(1, 3, Rules{Places: 2, Precision: 3}); return err }, decimal.NotBoth},
		{"not int places", func() error { _, err := Round(1, Rules{Places: "1.5"}); return err }, decimal.NotInt},
		{"not num places", func() error { _, err := Round(1, Rules{Places: "abc"}); return err }, decimal.NotInt},
		{"not num precision", func() error { _, err := Div(1, 3, Rules{Precision: []int{3}}); return err }, decimal.NotInt},
		{"huge places", func() error { _, err := Round(1, Rules{Places: "1e10"}); return err }, decimal.NotInt},
		{"not num exponent", func() error { _, err := Pow(2, "two"); return err }, decimal.NotInt},
		{"not num shift", func() error { _, err := MovePoint(1, "x"); return err }, decimal.NotInt},
		{"not mode", func() error { _, err := Round(1, Rules{Mode: "bogus"}); return err }, decimal.NotMode},
		{"inexact", func() error { _, err := Div(1, 3, Rules{Mode: "exact"}); return err }, decimal.Inexact},
		{"pow negative", func() error { _, err := Pow(2, -1); return err }, decimal.NotPos},
		{"pow fraction", func() error { _, err := Pow(2, 0.5); return err }, decimal.NotInt},
		{"sqrt negative", func() error { _, err := Sqrt(-4); return err }, decimal.SqrtNeg},
		{"move point", func() error { _, err := MovePoint(1, 1.5); return err }, decimal.NotInt},
		{"to number", func() error { _, err := ToNumber("0.1234567890123456789"); return err }, decimal.Inexact},
		{"cmp", func() error { _, err := Cmp(1, "one"); return err }, decimal.NotNum},
		{"min", func() error { _, err := Min(1, "one"); return err }, decimal.NotNum},
		{"min empty", func() error { _, err := Min(); return err }, decimal.NotNum},
		{"max empty", func() error { _, err := Max(); return err }, decimal.NotNum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.f()
			if got := decimal.CodeOf(err); got != tt.want {
				t.Errorf("got error %v, want code %v", err, tt.want)
			}
		})
	}
}

func TestComparison(t *testing.T) {
	type result struct {
		Cmp                  int
		Eq, Gt, Gte, Lt, Lte bool
	}
	tests := []struct {
		a, b any
		want result
	}{
		{"1.0", 1, result{0, true, false, true, false, true}},
		{"-2", "1", result{-1, false, false, false, true, true}},
		{2.5, "2.49", result{1, false, true, true, false, false}},
	}
	for _, tt := range tests {
		var got result
		got.Cmp, _ = Cmp(tt.a, tt.b)
		got.Eq, _ = Eq(tt.a, tt.b)
		got.Gt, _ = Gt(tt.a, tt.b)
		got.Gte, _ = Gte(tt.a, tt.b)
		got.Lt, _ = Lt(tt.a, tt.b)
		got.Lte, _ = Lte(tt.a, tt.b)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("comparing %v and %v mismatch (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}

	if eq, err := Eq("abc", 1); eq || err == nil {
		t.Errorf("Eq(\"abc\", 1) = %v, %v, want false and an error", eq, err)
	}

	got := make([]string, 0, 3)
	for _, f := range []func() (string, error){
		func() (string, error) { return Min(3, "1.5", -2) },
		func() (string, error) { return Max(3, "1.5", -2) },
		func() (string, error) { return Clamp(5, 1, "3") },
	} {
		s, err := f()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, s)
	}
	if diff := cmp.Diff([]string{"-2", "3", "3"}, got); diff != "" {
		t.Errorf("min, max and clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestMagnitude(t *testing.T) {
	type result struct {
		Abs, Neg                       string
		Sign, Places, Precision, Scale int
	}
	tests := []struct {
		v    any
		want result
	}{
		{"-1.250", result{"1.25", "1.25", -1, 2, 3, 0}},
		{"1200", result{"1200", "-1200", 1, 0, 2, 3}},
		{"0.05", result{"0.05", "-0.05", 1, 2, 1, -2}},
		{0, result{"0", "0", 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		var got result
		got.Abs, _ = Abs(tt.v)
		got.Neg, _ = Neg(tt.v)
		got.Sign, _ = Sign(tt.v)
		got.Places, _ = Places(tt.v)
		got.Precision, _ = Precision(tt.v)
		got.Scale, _ = Scale(tt.v)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("magnitude of %v mismatch (-want +got):\n%s", tt.v, diff)
		}
		if e, _ := Exponent(tt.v); e != got.Scale {
			t.Errorf("Exponent(%v) = %v, want %v", tt.v, e, got.Scale)
		}
	}

	s, err := MovePoint("1.5", 2)
	if err != nil || s != "150" {
		t.Errorf("MovePoint(\"1.5\", 2) = %q, %v, want \"150\"", s, err)
	}
	s, err = MovePoint("1.5", "-3")
	if err != nil || s != "0.0015" {
		t.Errorf("MovePoint(\"1.5\", \"-3\") = %q, %v, want \"0.0015\"", s, err)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name string
		f    func() (string, error)
		want string
	}{
		{"round", func() (string, error) { return Round("2.5") }, "2"},
		{"round mode", func() (string, error) { return Round("2.5", Rules{Mode: "half up"}) }, "3"},
		{"round places", func() (string, error) { return Round(1234.5678, Rules{Places: 2}) }, "1234.57"},
		{"round precision", func() (string, error) { return Round(1234.5678, Rules{Precision: int64(2)}) }, "1200"},
		{"floor", func() (string, error) { return Floor("-1.5") }, "-2"},
		{"ceil", func() (string, error) { return Ceil("-1.5") }, "-1"},
		{"trunc", func() (string, error) { return Trunc("-1.5") }, "-1"},
		{"int", func() (string, error) { return Int("9.99") }, "9"},
		{"to fixed", func() (string, error) { return ToFixed("1.5", Rules{Places: 2}) }, "1.50"},
		{"to fixed plain", func() (string, error) { return ToFixed("1.50") }, "1.5"},
		{"to fixed mode", func() (string, error) { return ToFixed("1.25", Rules{Places: 1, Mode: "up"}) }, "1.3"},
		{"to exponential", func() (string, error) { return ToExponential(1234, Rules{Precision: 2}) }, "1.2e+3"},
		{"to exponential plain", func() (string, error) { return ToExponential("0.05") }, "5e-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	q, r, err := RoundRem("1.26", Rules{Places: 1})
	if err != nil {
		t.Fatalf("RoundRem failed: %v", err)
	}
	if diff := cmp.Diff([]string{"1.3", "-0.04"}, []string{q, r}); diff != "" {
		t.Errorf("RoundRem mismatch (-want +got):\n%s", diff)
	}

	i, f, err := IntFrac("-1.25")
	if err != nil {
		t.Fatalf("IntFrac failed: %v", err)
	}
	if diff := cmp.Diff([]string{"-1", "-0.25"}, []string{i, f}); diff != "" {
		t.Errorf("IntFrac mismatch (-want +got):\n%s", diff)
	}
}

func TestToNumber(t *testing.T) {
	got, err := ToNumber("0.1")
	if err != nil || got != 0.1 {
		t.Errorf("ToNumber(\"0.1\") = %v, %v, want 0.1", got, err)
	}
	got, err = ToNumber(-25)
	if err != nil || got != -25 {
		t.Errorf("ToNumber(-25) = %v, %v, want -25", got, err)
	}
}
