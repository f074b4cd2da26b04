package engine

import (
	"math"
	"testing"
)

func TestWriteFloat_Layout(t *testing.T) {
	s := baseSpec(0)
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1234.5, "1234.5"},
		{1e20, "1.0e20"},
		{1.5e-7, "1.5e-7"},
		{0.00001, "0.00001"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range cases {
		got, r := WriteFloat(tc.v, s)
		if r != nil || got != tc.want {
			t.Errorf("%v: expected %q, got %q %+v", tc.v, tc.want, got, r)
		}
	}
}

func TestWriteFloat_Flags(t *testing.T) {
	s := baseSpec(RequiredExponentNotation | RequiredExponentSign | RequiredMantissaSign)
	got, r := WriteFloat(1500, s)
	if r != nil || got != "+1.5e+3" {
		t.Fatalf("expected +1.5e+3, got %q %+v", got, r)
	}

	s = baseSpec(NoExponentNotation)
	got, _ = WriteFloat(1e20, s)
	if got != "100000000000000000000.0" {
		t.Fatalf("expected positional layout, got %q", got)
	}

	s = baseSpec(NoSpecialValues)
	if _, r := WriteFloat(math.NaN(), s); r == nil || r.Code != CodeSpecialValueDisallowed {
		t.Fatalf("expected special_value_disallowed, got %+v", r)
	}

	s = baseSpec(0)
	s.Flags &^= SupportsWritingFloats
	if _, r := WriteFloat(1, s); r == nil || r.Code != CodeCapabilityDisabled {
		t.Fatalf("expected capability_disabled, got %+v", r)
	}
}

func TestWriteInteger(t *testing.T) {
	s := baseSpec(RequiredBasePrefix)
	cases := []struct {
		v    int64
		base Base
		want string
	}{
		{0, Decimal, "0"},
		{-42, Decimal, "-42"},
		{255, Hexadecimal, "0xff"},
		{-5, Binary, "-0b101"},
		{8, Octal, "0o10"},
		{math.MinInt64, Decimal, "-9223372036854775808"},
	}
	for _, tc := range cases {
		got, r := WriteInteger(tc.v, s, tc.base)
		if r != nil || got != tc.want {
			t.Errorf("%d/%v: expected %q, got %q %+v", tc.v, tc.base, tc.want, got, r)
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	s := rustString()
	for _, v := range []float64{0, 0.1, 1, 123.456, 1e-10, 6.02214076e23, math.MaxFloat64, math.SmallestNonzeroFloat64, -7.25} {
		text, r := WriteFloat(v, s)
		if r != nil {
			t.Fatalf("%v: write failed %+v", v, r)
		}
		c, r := Scan(text, s, stringFloat)
		if r != nil {
			t.Fatalf("%q: rescan failed %+v", text, r)
		}
		got, r := ExtractFloat(c)
		if r != nil || got != v {
			t.Fatalf("%v: round trip produced %v via %q", v, got, text)
		}
	}
}
