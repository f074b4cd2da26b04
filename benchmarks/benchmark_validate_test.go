package numlit_test

import (
	"strconv"
	"testing"

	numlit "github.com/reoring/numlit"
)

var (
	benchFloat   = numlit.Request{Mode: numlit.String, Kind: numlit.Float, Base: numlit.Decimal}
	benchLiteral = numlit.Request{Mode: numlit.Literal, Kind: numlit.Float, Base: numlit.Decimal}
)

// Micro: a short float string
func Benchmark_Validate_Short(b *testing.B) {
	spec := numlit.RustString()
	text := "-12.5e-3"
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if o := numlit.Validate(text, spec, benchFloat); !o.Accepted() {
			b.Fatal(o.Err)
		}
	}
}

// Micro: separators in every group
func Benchmark_Validate_Separators(b *testing.B) {
	spec := numlit.RustLiteral()
	text := "1_234_567.891_011e1_2"
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if o := numlit.Validate(text, spec, benchLiteral); !o.Accepted() {
			b.Fatal(o.Err)
		}
	}
}

// Rejections allocate the error; keep an eye on that path too.
func Benchmark_Validate_Reject(b *testing.B) {
	spec := numlit.JSON()
	text := "0123.5"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if o := numlit.Validate(text, spec, benchFloat); o.Accepted() {
			b.Fatal("expected rejection")
		}
	}
}

func Benchmark_ParseFloat_Numlit(b *testing.B) {
	spec := numlit.RustString()
	text := "6.02214076e23"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numlit.ParseFloat(text, spec); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline for Benchmark_ParseFloat_Numlit.
func Benchmark_ParseFloat_Strconv(b *testing.B) {
	text := "6.02214076e23"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseInteger_Hex(b *testing.B) {
	spec := numlit.RustRadixLiteral()
	text := "0x7fff_ffff_ffff_ffff"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numlit.ParseInteger(text, spec, numlit.Hexadecimal); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_FormatFloat(b *testing.B) {
	spec := numlit.Standard()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numlit.FormatFloat(1234.5678, spec); err != nil {
			b.Fatal(err)
		}
	}
}
