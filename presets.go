package numlit

import (
	"errors"
	"sort"
	"sync"
)

// Preset is a named format with the base and mode it is meant for.
type Preset struct {
	Name        string
	Description string
	Spec        FormatSpec
	Base        Base
	Mode        Mode
}

// Request returns the Validate request of p for kind.
func (p Preset) Request(kind Kind) Request {
	base := p.Base
	if base == 0 {
		base = Decimal
	}
	return Request{Mode: p.Mode, Kind: kind, Base: base}
}

var (
	presetMu sync.RWMutex
	presets  = map[string]Preset{}
)

// Register adds or replaces a preset.
func Register(p Preset) error {
	if p.Name == "" {
		return errors.New("numlit: preset name is required")
	}
	if p.Base == 0 {
		p.Base = Decimal
	}
	if !p.Base.Valid() {
		return &NumberError{Code: CodeUnsupportedBase, Offset: -1, Hint: p.Name}
	}
	presetMu.Lock()
	presets[p.Name] = p
	presetMu.Unlock()
	return nil
}

// Lookup finds a preset by name.
func Lookup(name string) (Preset, bool) {
	presetMu.RLock()
	p, ok := presets[name]
	presetMu.RUnlock()
	return p, ok
}

// Presets lists the registered presets sorted by name.
func Presets() []Preset {
	presetMu.RLock()
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	presetMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Standard is a permissive decimal string format: optional sign, optional
// integer or fraction digits, exponent, and case-insensitive special values.
func Standard() FormatSpec { return standardSpec }

// RustLiteral is the grammar of Rust float and decimal integer literals.
func RustLiteral() FormatSpec { return rustLiteralSpec }

// RustString is the grammar accepted by Rust's str::parse for f64 and i64.
func RustString() FormatSpec { return rustStringSpec }

// RustRadixLiteral is the grammar of Rust hex, octal and binary literals.
func RustRadixLiteral() FormatSpec { return rustRadixSpec }

// JSON is the RFC 8259 number grammar.
func JSON() FormatSpec { return jsonSpec }

var (
	standardSpec      = buildStandard()
	rustLiteralSpec   = buildRustLiteral()
	rustStringSpec    = buildRustString()
	rustRadixSpec     = buildRustRadix()
	pythonLiteralSpec = buildPythonLiteral()
	pythonStringSpec  = buildPythonString()
	goLiteralSpec     = buildGoLiteral()
	goHexSpec         = buildGoHex()
	jsonSpec          = buildJSON()
)

func buildStandard() FormatSpec {
	b := NewFormat()
	b.Set(RequiredExponentDigits, RequiredMantissaDigits, RequireMantissaDigitsWithExponent)
	b.Set(AllowIntegerFloats)
	return b.MustBuild()
}

func buildRustLiteral() FormatSpec {
	b := NewFormat()
	b.Set(RequiredIntegerDigits, RequiredExponentDigits, RequiredMantissaDigits)
	b.Set(NoPositiveMantissaSign, NoSpecialValues)
	b.Set(RequireIntegerDigitsWithExponent, RequireFractionDigitsWithExponent, RequireMantissaDigitsWithExponent)
	b.Separator('_')
	b.SeparatorsAt(GroupInteger, PositionInternal, PositionTrailing, PositionConsecutive)
	b.SeparatorsAt(GroupFraction, PositionInternal, PositionTrailing, PositionConsecutive)
	b.SeparatorsAt(GroupExponent, PositionInternal, PositionLeading, PositionTrailing, PositionConsecutive)
	return b.MustBuild()
}

func buildRustString() FormatSpec {
	b := NewFormat()
	b.Set(RequiredExponentDigits, RequiredMantissaDigits, RequireMantissaDigitsWithExponent)
	b.Set(AllowIntegerFloats)
	b.Separator('_')
	return b.MustBuild()
}

// Shared by the hex, octal and binary presets.
func buildRustRadix() FormatSpec {
	b := NewFormat()
	b.Set(RequiredIntegerDigits, NoPositiveMantissaSign)
	b.Set(CaseSensitiveBasePrefix, RequiredBasePrefix, BasePrefixTrailingSeparator)
	b.Clear(SupportsParsingFloats, SupportsWritingFloats)
	b.Separator('_')
	b.SeparatorsAt(GroupInteger, PositionInternal, PositionTrailing, PositionConsecutive)
	return b.MustBuild()
}

func buildPythonLiteral() FormatSpec {
	b := NewFormat()
	b.Set(RequiredExponentDigits, RequiredMantissaDigits, RequireMantissaDigitsWithExponent)
	b.Set(NoPositiveMantissaSign, NoSpecialValues, NoIntegerLeadingZeros)
	internalSeparators(b)
	return b.MustBuild()
}

func buildPythonString() FormatSpec {
	b := NewFormat()
	b.Set(RequiredExponentDigits, RequiredMantissaDigits, RequireMantissaDigitsWithExponent)
	b.Set(AllowIntegerFloats)
	internalSeparators(b)
	return b.MustBuild()
}

func buildGoLiteral() FormatSpec {
	b := NewFormat()
	b.Set(RequiredExponentDigits, RequiredMantissaDigits, RequireMantissaDigitsWithExponent)
	b.Set(NoPositiveMantissaSign, NoSpecialValues)
	internalSeparators(b)
	return b.MustBuild()
}

func buildGoHex() FormatSpec {
	b := NewFormat()
	b.Set(RequiredIntegerDigits, NoPositiveMantissaSign, RequiredBasePrefix, BasePrefixTrailingSeparator)
	b.Clear(SupportsParsingFloats, SupportsWritingFloats)
	b.Separator('_')
	b.SeparatorsAt(GroupInteger, PositionInternal)
	return b.MustBuild()
}

func buildJSON() FormatSpec {
	b := NewFormat()
	b.Set(RequiredIntegerDigits, RequiredFractionDigits, RequiredExponentDigits)
	b.Set(NoPositiveMantissaSign, NoSpecialValues, NoIntegerLeadingZeros, NoFloatLeadingZeros)
	b.Set(AllowIntegerFloats)
	return b.MustBuild()
}

// internalSeparators allows '_' between digits of every group.
func internalSeparators(b *FormatBuilder) {
	b.Separator('_')
	b.SeparatorsAt(GroupInteger, PositionInternal)
	b.SeparatorsAt(GroupFraction, PositionInternal)
	b.SeparatorsAt(GroupExponent, PositionInternal)
}

func init() {
	builtins := []Preset{
		{Name: "standard", Description: "permissive decimal strings", Spec: standardSpec, Mode: String},
		{Name: "rust-literal", Description: "Rust float and decimal integer literals", Spec: rustLiteralSpec, Mode: Literal},
		{Name: "rust-string", Description: "Rust str::parse for f64 and i64", Spec: rustStringSpec, Mode: String},
		{Name: "rust-hex-literal", Description: "Rust hexadecimal integer literals", Spec: rustRadixSpec, Base: Hexadecimal, Mode: Literal},
		{Name: "rust-octal-literal", Description: "Rust octal integer literals", Spec: rustRadixSpec, Base: Octal, Mode: Literal},
		{Name: "rust-binary-literal", Description: "Rust binary integer literals", Spec: rustRadixSpec, Base: Binary, Mode: Literal},
		{Name: "python-literal", Description: "Python float and int literals", Spec: pythonLiteralSpec, Mode: Literal},
		{Name: "python-string", Description: "Python float() and int() strings", Spec: pythonStringSpec, Mode: String},
		{Name: "go-literal", Description: "Go decimal float and int literals", Spec: goLiteralSpec, Mode: Literal},
		{Name: "go-hex-literal", Description: "Go hexadecimal integer literals", Spec: goHexSpec, Base: Hexadecimal, Mode: Literal},
		{Name: "json", Description: "JSON numbers", Spec: jsonSpec, Mode: String},
	}
	for _, p := range builtins {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}
