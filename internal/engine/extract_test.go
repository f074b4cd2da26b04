package engine

import (
	"math"
	"testing"
)

func TestExtractInteger(t *testing.T) {
	cases := []struct {
		c    Components
		want int64
		code string
	}{
		{Components{Base: Decimal, Integer: "42"}, 42, ""},
		{Components{Base: Decimal, Integer: "42", Negative: true}, -42, ""},
		{Components{Base: Hexadecimal, Integer: "ff"}, 255, ""},
		{Components{Base: Binary, Integer: "101"}, 5, ""},
		{Components{Base: Octal, Integer: "17"}, 15, ""},
		{Components{Base: Decimal, Integer: ""}, 0, ""},
		{Components{Base: Decimal, Integer: "9223372036854775807"}, math.MaxInt64, ""},
		{Components{Base: Decimal, Integer: "9223372036854775808", Negative: true}, math.MinInt64, ""},
		{Components{Base: Decimal, Integer: "9223372036854775808"}, 0, CodeIntegerOverflow},
		{Components{Base: Decimal, Integer: "9223372036854775809", Negative: true}, 0, CodeIntegerOverflow},
		{Components{Base: Decimal, Integer: "99999999999999999999999"}, 0, CodeIntegerOverflow},
	}
	for _, tc := range cases {
		got, r := ExtractInteger(tc.c)
		if tc.code != "" {
			if r == nil || r.Code != tc.code {
				t.Errorf("%+v: expected %s, got %d %+v", tc.c, tc.code, got, r)
			}
			continue
		}
		if r != nil || got != tc.want {
			t.Errorf("%+v: expected %d, got %d %+v", tc.c, tc.want, got, r)
		}
	}
}

func TestExtractInteger_OverflowOffset(t *testing.T) {
	cases := []struct {
		text string
		s    *Spec
		req  Request
		at   int
	}{
		{"9223372036854775808", baseSpec(0), stringInt, 0},
		{"-9223372036854775809", baseSpec(0), stringInt, 1},
		{"-0x8000_0000_0000_0001", rustRadix(), Request{Mode: ModeLiteral, Kind: KindInteger, Base: Hexadecimal}, 3},
	}
	for _, tc := range cases {
		c, r := Scan(tc.text, tc.s, tc.req)
		if r != nil {
			t.Fatalf("%q: unexpected reject %+v", tc.text, r)
		}
		_, r = ExtractInteger(c)
		if r == nil || r.Code != CodeIntegerOverflow || r.Offset != tc.at {
			t.Errorf("%q: expected integer_overflow at %d, got %+v", tc.text, tc.at, r)
		}
	}
}

func TestExtractFloat(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"0.1", 0.1},
		{"1.", 1},
		{".5", 0.5},
		{"1e3", 1000},
		{"-2.5e-3", -0.0025},
		{"1_000.000_1", 1000.0001},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"1e-400", 0},
		{"inf", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}
	s := baseSpec(IntegerInternalSeparator | FractionInternalSeparator | AllowIntegerFloats)
	for _, tc := range cases {
		c, r := Scan(tc.text, s, stringFloat)
		if r != nil {
			t.Fatalf("%q: unexpected reject %+v", tc.text, r)
		}
		got, r := ExtractFloat(c)
		if r != nil || got != tc.want {
			t.Errorf("%q: expected %v, got %v %+v", tc.text, tc.want, got, r)
		}
	}

	c, _ := Scan("nan", s, stringFloat)
	if got, r := ExtractFloat(c); r != nil || !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v %+v", got, r)
	}
}

func TestExtractFloat_NegativeZero(t *testing.T) {
	c, r := Scan("-0.0", baseSpec(0), stringFloat)
	if r != nil {
		t.Fatalf("unexpected reject %+v", r)
	}
	got, _ := ExtractFloat(c)
	if got != 0 || !math.Signbit(got) {
		t.Fatalf("expected -0, got %v", got)
	}
}
