package numlit

import (
	"fmt"

	eng "github.com/reoring/numlit/internal/engine"
)

// FormatSpec is an immutable grammar configuration. Copies are independent;
// derive variants with With and Without.
type FormatSpec struct {
	spec eng.Spec
}

// Flags returns the full flag set.
func (f FormatSpec) Flags() Flag { return f.spec.Flags }

// Has reports whether every given flag is set.
func (f FormatSpec) Has(flag Flag) bool { return f.spec.Has(flag) }

// Separator returns the digit separator, if the spec has one.
func (f FormatSpec) Separator() (byte, bool) { return f.spec.Separator, f.spec.Separator != 0 }

func (f FormatSpec) DecimalPoint() byte { return f.spec.Point }

func (f FormatSpec) ExponentChar() byte { return f.spec.Exponent }

// Spellings returns the NaN, inf and Infinity spellings.
func (f FormatSpec) Spellings() (nan, inf, infinity string) {
	return f.spec.NaN, f.spec.Inf, f.spec.Infinity
}

// SeparatorAllowed reports whether a separator may appear at p within g.
func (f FormatSpec) SeparatorAllowed(g Group, p Position) bool {
	return eng.SeparatorAllowed(&f.spec, g, p)
}

// With returns a copy with the flags set.
func (f FormatSpec) With(flags ...Flag) FormatSpec {
	for _, fl := range flags {
		f.spec.Flags |= fl
	}
	return f
}

// Without returns a copy with the flags cleared.
func (f FormatSpec) Without(flags ...Flag) FormatSpec {
	for _, fl := range flags {
		f.spec.Flags &^= fl
	}
	return f
}

// String renders the flags as short codes, e.g. "I/R E/R sep='_'".
func (f FormatSpec) String() string {
	s := f.spec.Flags.Codes()
	if f.spec.Separator != 0 {
		s += fmt.Sprintf(" sep=%q", f.spec.Separator)
	}
	return s
}

func (f FormatSpec) engine() *eng.Spec { return &f.spec }

// FormatBuilder assembles a FormatSpec. The zero builder is not usable; start
// from NewFormat or FormatSpec.Builder.
type FormatBuilder struct {
	spec eng.Spec
}

// NewFormat starts a builder with default characters and spellings, every
// capability enabled and no other flag set.
func NewFormat() *FormatBuilder {
	return &FormatBuilder{spec: eng.Spec{
		Flags:    CapabilityFlags,
		Point:    eng.DefaultPoint,
		Exponent: eng.DefaultExponent,
		NaN:      eng.DefaultNaN,
		Inf:      eng.DefaultInf,
		Infinity: eng.DefaultInfinity,
	}}
}

// Builder starts a builder from f.
func (f FormatSpec) Builder() *FormatBuilder { return &FormatBuilder{spec: f.spec} }

func (b *FormatBuilder) Set(flags ...Flag) *FormatBuilder {
	for _, f := range flags {
		b.spec.Flags |= f
	}
	return b
}

func (b *FormatBuilder) Clear(flags ...Flag) *FormatBuilder {
	for _, f := range flags {
		b.spec.Flags &^= f
	}
	return b
}

// Separator sets the digit separator; 0 disables separators.
func (b *FormatBuilder) Separator(c byte) *FormatBuilder {
	b.spec.Separator = c
	return b
}

// SeparatorsAt enables the separator toggles for g at each position.
func (b *FormatBuilder) SeparatorsAt(g Group, positions ...Position) *FormatBuilder {
	for _, p := range positions {
		b.spec.Flags |= eng.SeparatorFlag(g, p)
	}
	return b
}

func (b *FormatBuilder) DecimalPoint(c byte) *FormatBuilder {
	b.spec.Point = c
	return b
}

func (b *FormatBuilder) ExponentChar(c byte) *FormatBuilder {
	b.spec.Exponent = c
	return b
}

// Spellings sets the NaN, inf and Infinity spellings. Empty strings keep the
// current spelling.
func (b *FormatBuilder) Spellings(nan, inf, infinity string) *FormatBuilder {
	if nan != "" {
		b.spec.NaN = nan
	}
	if inf != "" {
		b.spec.Inf = inf
	}
	if infinity != "" {
		b.spec.Infinity = infinity
	}
	return b
}

// Build validates the characters and returns the spec. Flag combinations are
// never rejected.
func (b *FormatBuilder) Build() (FormatSpec, error) {
	s := b.spec
	bad := func(what string, c byte) error {
		return &NumberError{Code: CodeInvalidFormat, Offset: -1, Hint: fmt.Sprintf("%s %q", what, c)}
	}
	if !isPunct(s.Point) {
		return FormatSpec{}, bad("decimal point", s.Point)
	}
	if !isASCIILetter(s.Exponent) || isPrefixLetter(s.Exponent|0x20) {
		return FormatSpec{}, bad("exponent character", s.Exponent)
	}
	if s.Separator != 0 && (!isPunct(s.Separator) || s.Separator == s.Point) {
		return FormatSpec{}, bad("separator", s.Separator)
	}
	for _, sp := range []string{s.NaN, s.Inf, s.Infinity} {
		if sp == "" || !isASCIILetter(sp[0]) {
			return FormatSpec{}, &NumberError{Code: CodeInvalidFormat, Offset: -1, Hint: fmt.Sprintf("special spelling %q", sp)}
		}
	}
	return FormatSpec{spec: s}, nil
}

// MustBuild is Build that panics on error, for package-level presets.
func (b *FormatBuilder) MustBuild() FormatSpec {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// isPunct accepts printable ASCII that is not a digit, letter, sign or space.
func isPunct(c byte) bool {
	if c <= ' ' || c >= 0x7f || c == '+' || c == '-' {
		return false
	}
	return !(c >= '0' && c <= '9') && !isASCIILetter(c)
}

func isASCIILetter(c byte) bool { return c|0x20 >= 'a' && c|0x20 <= 'z' }

func isPrefixLetter(c byte) bool { return c == 'x' || c == 'o' || c == 'b' }
