package numlit_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	numlit "github.com/reoring/numlit"
)

var (
	stringFloat   = numlit.Request{Mode: numlit.String, Kind: numlit.Float, Base: numlit.Decimal}
	stringInteger = numlit.Request{Mode: numlit.String, Kind: numlit.Integer, Base: numlit.Decimal}
	literalFloat  = numlit.Request{Mode: numlit.Literal, Kind: numlit.Float, Base: numlit.Decimal}
)

func TestValidate_DecimalFloat(t *testing.T) {
	o := numlit.Validate("0.1", numlit.Standard(), stringFloat)
	if !o.Accepted() {
		t.Fatalf("expected 0.1 to be accepted: %v", o.AsError())
	}
	want := numlit.Components{Base: numlit.Decimal, Integer: "0", HasPoint: true, Fraction: "1"}
	if diff := cmp.Diff(want, o.Components); diff != "" {
		t.Fatalf("components mismatch (-want +got):\n%s", diff)
	}

	o = numlit.Validate(".", numlit.RustString(), stringFloat)
	if o.Accepted() || o.Err.Code != numlit.CodeEmptyRequiredDigits {
		t.Fatalf("expected empty_required_digits for '.', got %+v", o.Err)
	}
	if o.AsError() == nil {
		t.Fatalf("AsError must return the rejection")
	}
}

func TestValidate_SeparatorOnlyWhenEnabled(t *testing.T) {
	o := numlit.Validate("1_1.11e11", numlit.RustString(), stringFloat)
	if o.Accepted() {
		t.Fatalf("rust strings have no digit separators")
	}
	if o.Err.Code != numlit.CodeInvalidSeparatorPosition || o.Err.Offset != 1 ||
		o.Err.Group != numlit.GroupInteger || o.Err.Position != numlit.PositionInternal {
		t.Fatalf("unexpected rejection: %+v", o.Err)
	}
	if o.Err.Input != "1_1.11e11" {
		t.Fatalf("input not recorded: %q", o.Err.Input)
	}

	if _, err := numlit.ValidateLiteral("1_1.11e11", numlit.RustLiteral(), numlit.Float, numlit.Decimal); err != nil {
		t.Fatalf("rust literals allow internal separators: %v", err)
	}
}

func TestValidate_SignByMode(t *testing.T) {
	n, err := numlit.ParseInteger("+01", numlit.Standard(), numlit.Decimal)
	if err != nil || n != 1 {
		t.Fatalf("string mode: got %d, %v", n, err)
	}
	_, err = numlit.ValidateLiteral("+01", numlit.Standard(), numlit.Integer, numlit.Decimal)
	if !numlit.IsCode(err, numlit.CodeDisallowedSign) {
		t.Fatalf("literal mode: expected disallowed_sign, got %v", err)
	}
}

func TestValidate_SpecialValues(t *testing.T) {
	for _, text := range []string{"NaN", "nan", "-NaN"} {
		f, err := numlit.ParseFloat(text, numlit.Standard())
		if err != nil || !math.IsNaN(f) {
			t.Fatalf("%q: got %v, %v", text, f, err)
		}
	}
	for text, sign := range map[string]int{"inf": 1, "-Infinity": -1, "+INF": 1} {
		f, err := numlit.ParseFloat(text, numlit.Standard())
		if err != nil || !math.IsInf(f, sign) {
			t.Fatalf("%q: got %v, %v", text, f, err)
		}
	}

	_, err := numlit.ParseFloat("NaN", numlit.Standard().With(numlit.NoSpecialValues))
	if !numlit.IsCode(err, numlit.CodeSpecialValueDisallowed) {
		t.Fatalf("expected special_value_disallowed, got %v", err)
	}
	o := numlit.Validate("NaN", numlit.Standard(), literalFloat)
	if o.Accepted() || o.Err.Code != numlit.CodeSpecialValueDisallowed {
		t.Fatalf("special values are never literals, got %+v", o.Err)
	}
	_, err = numlit.ParseFloat("nan", numlit.Standard().With(numlit.CaseSensitiveSpecialValues))
	if err == nil {
		t.Fatalf("case-sensitive spellings must reject nan")
	}
}

func TestValidate_HexTrailingSeparatorToggle(t *testing.T) {
	spec := numlit.RustRadixLiteral()
	if _, err := numlit.ValidateLiteral("0x01_", spec, numlit.Integer, numlit.Hexadecimal); err != nil {
		t.Fatalf("trailing separator enabled: %v", err)
	}
	_, err := numlit.ValidateLiteral("0x01_", spec.Without(numlit.IntegerTrailingSeparator), numlit.Integer, numlit.Hexadecimal)
	ne, ok := numlit.AsNumberError(err)
	if !ok || ne.Code != numlit.CodeInvalidSeparatorPosition || ne.Position != numlit.PositionTrailing {
		t.Fatalf("expected trailing separator rejection, got %v", err)
	}
}

func TestValidate_OrderOfChecks(t *testing.T) {
	// base before capability
	o := numlit.Validate("1.0", numlit.RustRadixLiteral(), numlit.Request{Mode: numlit.Literal, Kind: numlit.Float, Base: numlit.Hexadecimal})
	if o.Err == nil || o.Err.Code != numlit.CodeUnsupportedBase {
		t.Fatalf("expected unsupported_base, got %+v", o.Err)
	}
	// capability before text
	o = numlit.Validate("not a number", numlit.RustRadixLiteral(), stringFloat)
	if o.Err == nil || o.Err.Code != numlit.CodeCapabilityDisabled {
		t.Fatalf("expected capability_disabled, got %+v", o.Err)
	}
	o = numlit.Validate("1", numlit.Standard(), numlit.Request{Mode: numlit.String, Kind: numlit.Integer, Base: 7})
	if o.Err == nil || o.Err.Code != numlit.CodeUnsupportedBase {
		t.Fatalf("expected unsupported_base for base 7, got %+v", o.Err)
	}
}

func TestParseInteger_Range(t *testing.T) {
	n, err := numlit.ParseInteger("-9223372036854775808", numlit.Standard(), numlit.Decimal)
	if err != nil || n != math.MinInt64 {
		t.Fatalf("min int64: got %d, %v", n, err)
	}
	_, err = numlit.ParseInteger("9223372036854775808", numlit.Standard(), numlit.Decimal)
	if !numlit.IsCode(err, numlit.CodeIntegerOverflow) {
		t.Fatalf("expected integer_overflow, got %v", err)
	}
	ne, _ := numlit.AsNumberError(err)
	if ne.Input != "9223372036854775808" {
		t.Fatalf("overflow error should carry the input, got %q", ne.Input)
	}

	_, err = numlit.ParseInteger("-9223372036854775809", numlit.Standard(), numlit.Decimal)
	if ne, ok := numlit.AsNumberError(err); !ok || ne.Code != numlit.CodeIntegerOverflow || ne.Offset != 1 {
		t.Fatalf("expected integer_overflow at offset 1, got %v", err)
	}
}

func TestParseFloat_Overflow(t *testing.T) {
	_, err := numlit.ParseFloat("1e400", numlit.JSON())
	if ne, ok := numlit.AsNumberError(err); !ok || ne.Code != numlit.CodeFloatOverflow || ne.Offset != 0 {
		t.Fatalf("expected float_overflow at offset 0, got %v", err)
	}
	if _, err := numlit.ParseValue("-1e400", numlit.RustLiteral(), literalFloat); !numlit.IsCode(err, numlit.CodeFloatOverflow) {
		t.Fatalf("expected float_overflow, got %v", err)
	}
	if _, err := numlit.ParseFloat("1.7976931348623157e308", numlit.JSON()); err != nil {
		t.Fatalf("max float64 must be accepted: %v", err)
	}

	// formats with special values read overflow as infinity
	f, err := numlit.ParseFloat("1e400", numlit.Standard())
	if err != nil || !math.IsInf(f, 1) {
		t.Fatalf("expected +Inf, got %v, %v", f, err)
	}
}

func TestParseValue_Hex(t *testing.T) {
	v, err := numlit.ParseValue("-0x_ff", numlit.RustRadixLiteral(), numlit.Request{Mode: numlit.Literal, Kind: numlit.Integer, Base: numlit.Hexadecimal})
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(numlit.IntValue(-255)) {
		t.Fatalf("got %v", v)
	}
}

func TestSeparatorStripping(t *testing.T) {
	spec := numlit.RustLiteral()
	for _, text := range []string{"1_000.5", "1__0.2_5e1_0", "7_.5_"} {
		got, err := numlit.ParseValue(text, spec, literalFloat)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		stripped := strings.ReplaceAll(text, "_", "")
		want, err := numlit.ParseValue(stripped, spec.Without(numlit.SeparatorFlags), literalFloat)
		if err != nil {
			t.Fatalf("%q: %v", stripped, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q parsed to %v, stripped %q to %v", text, got, stripped, want)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	floats := []float64{0, 1.5, -2.25, 0.1, 1e300, 5e-324, 123456789.125, 1e-7, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, spec := range []numlit.FormatSpec{numlit.Standard(), numlit.RustString()} {
		for _, f := range floats {
			text, err := numlit.FormatFloat(f, spec)
			if err != nil {
				t.Fatalf("format %v: %v", f, err)
			}
			got, err := numlit.ParseFloat(text, spec)
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if !numlit.FloatValue(got).Equal(numlit.FloatValue(f)) {
				t.Fatalf("round trip %v -> %q -> %v", f, text, got)
			}
		}
	}

	for _, n := range []int64{0, 42, -255, math.MaxInt64, math.MinInt64} {
		for _, base := range []numlit.Base{numlit.Binary, numlit.Octal, numlit.Decimal, numlit.Hexadecimal} {
			text, err := numlit.FormatInteger(n, numlit.Standard(), base)
			if err != nil {
				t.Fatalf("format %d base %v: %v", n, base, err)
			}
			got, err := numlit.ParseInteger(text, numlit.Standard(), base)
			if err != nil || got != n {
				t.Fatalf("round trip %d base %v -> %q -> %d, %v", n, base, text, got, err)
			}
		}
	}
}

var builtinPresets = []string{
	"standard", "rust-literal", "rust-string", "rust-hex-literal", "rust-octal-literal",
	"rust-binary-literal", "python-literal", "python-string", "go-literal", "go-hex-literal", "json",
}

// Every accepted text formats back to text that parses to the same value.
func TestPresets_RoundTripAtRangeBounds(t *testing.T) {
	floats := []string{
		"0.1", "-0.0", "1e308", "1.7976931348623157e308", "-1.7976931348623157e308", "1.8e308",
		"1e400", "-1e400", "7e312", "5e645", "5e-324", "2.2250738585072014e-308", "1e-320",
		"1e-400", "-1e-400",
	}
	integers := []uint64{0, 1, math.MaxInt64, math.MaxInt64 + 1, math.MaxInt64 + 2, math.MaxUint64}

	accepted := 0
	check := func(name string, p numlit.Preset, text string, req numlit.Request) {
		t.Helper()
		o := numlit.Validate(text, p.Spec, req)
		if !o.Accepted() {
			return
		}
		v, err := numlit.Extract(o.Components, req.Kind)
		if err != nil {
			if !numlit.IsCode(err, numlit.CodeIntegerOverflow) {
				t.Errorf("%s %q: unexpected extract error %v", name, text, err)
			}
			return
		}
		if v.Class != numlit.Finite && p.Spec.Has(numlit.NoSpecialValues) {
			t.Errorf("%s %q: accepted as %v without special values", name, text, v)
			return
		}
		out, err := numlit.FormatValue(v, p.Spec, req.Base)
		if err != nil {
			t.Errorf("%s %q: format %v: %v", name, text, v, err)
			return
		}
		back, err := numlit.ParseValue(out, p.Spec, numlit.Request{Mode: numlit.String, Kind: req.Kind, Base: req.Base})
		if err != nil || !back.Equal(v) {
			t.Errorf("%s %q -> %v -> %q -> %v, %v", name, text, v, out, back, err)
			return
		}
		accepted++
	}

	for _, name := range builtinPresets {
		p, ok := numlit.Lookup(name)
		if !ok {
			t.Fatalf("missing preset %s", name)
		}
		if p.Spec.Has(numlit.SupportsParsingFloats) && p.Base == numlit.Decimal {
			for _, text := range floats {
				check(name, p, text, p.Request(numlit.Float))
			}
		}
		prefix := ""
		if p.Base != numlit.Decimal {
			prefix = "0" + string(p.Base.PrefixLetter())
		}
		for _, u := range integers {
			digits := strconv.FormatUint(u, int(p.Base))
			check(name, p, prefix+digits, p.Request(numlit.Integer))
			check(name, p, "-"+prefix+digits, p.Request(numlit.Integer))
		}
	}
	if accepted == 0 {
		t.Fatalf("no case was accepted")
	}
}

func TestFormatInteger_Prefix(t *testing.T) {
	text, err := numlit.FormatInteger(255, numlit.RustRadixLiteral(), numlit.Hexadecimal)
	if err != nil || text != "0xff" {
		t.Fatalf("got %q, %v", text, err)
	}
	text, err = numlit.FormatValue(numlit.IntValue(-5), numlit.RustRadixLiteral(), numlit.Binary)
	if err != nil || text != "-0b101" {
		t.Fatalf("got %q, %v", text, err)
	}
}

func TestFormat_Rejections(t *testing.T) {
	if _, err := numlit.FormatFloat(math.NaN(), numlit.JSON()); !numlit.IsCode(err, numlit.CodeSpecialValueDisallowed) {
		t.Fatalf("expected special_value_disallowed, got %v", err)
	}
	if _, err := numlit.FormatFloat(1.5, numlit.RustRadixLiteral()); !numlit.IsCode(err, numlit.CodeCapabilityDisabled) {
		t.Fatalf("expected capability_disabled, got %v", err)
	}

	// the writer emits '+' but the grammar refuses it
	contradictory := numlit.NewFormat().Set(numlit.RequiredMantissaSign, numlit.NoPositiveMantissaSign).MustBuild()
	text, err := numlit.FormatInteger(1, contradictory, numlit.Decimal)
	if text != "" || !numlit.IsCode(err, numlit.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %q, %v", text, err)
	}
	var cause *numlit.NumberError
	if !errors.As(errors.Unwrap(err), &cause) || cause.Code != numlit.CodeDisallowedSign {
		t.Fatalf("expected disallowed_sign cause, got %v", errors.Unwrap(err))
	}
}

func TestFormatFloat_Layout(t *testing.T) {
	tests := []struct {
		spec numlit.FormatSpec
		in   float64
		want string
	}{
		{numlit.Standard(), 1, "1.0"},
		{numlit.Standard(), -0.001, "-0.001"},
		{numlit.Standard(), 1e20, "1.0e20"},
		{numlit.Standard().With(numlit.RequiredExponentNotation), 150, "1.5e2"},
		{numlit.Standard().With(numlit.RequiredExponentSign), 1e-9, "1.0e-9"},
		{numlit.Standard().With(numlit.RequiredExponentSign), 1e20, "1.0e+20"},
	}
	for _, tt := range tests {
		got, err := numlit.FormatFloat(tt.in, tt.spec)
		if err != nil {
			t.Fatalf("%v: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%v: got %q want %q", tt.in, got, tt.want)
		}
	}
}
