package engine

import (
	"strconv"
	"strings"
)

// Flag is a single grammar toggle. A Spec carries every toggle in one bitset.
type Flag uint64

const (
	RequiredIntegerDigits Flag = 1 << iota
	RequiredFractionDigits
	RequiredExponentDigits
	RequiredMantissaDigits
	RequireIntegerDigitsWithExponent
	RequireFractionDigitsWithExponent
	RequireMantissaDigitsWithExponent

	NoPositiveMantissaSign
	RequiredMantissaSign
	NoPositiveExponentSign
	RequiredExponentSign

	NoExponentNotation
	NoExponentWithoutFraction
	RequiredExponentNotation
	CaseSensitiveExponent

	NoIntegerLeadingZeros
	NoFloatLeadingZeros

	NoSpecialValues
	CaseSensitiveSpecialValues

	CaseSensitiveBasePrefix
	RequiredBasePrefix
	NoBasePrefix
	BasePrefixTrailingSeparator

	AllowIntegerFloats

	SupportsParsingIntegers
	SupportsParsingFloats
	SupportsWritingIntegers
	SupportsWritingFloats

	IntegerInternalSeparator
	IntegerLeadingSeparator
	IntegerTrailingSeparator
	IntegerConsecutiveSeparator
	FractionInternalSeparator
	FractionLeadingSeparator
	FractionTrailingSeparator
	FractionConsecutiveSeparator
	ExponentInternalSeparator
	ExponentLeadingSeparator
	ExponentTrailingSeparator
	ExponentConsecutiveSeparator
)

const (
	// SeparatorFlags covers the twelve separator toggles.
	SeparatorFlags = IntegerInternalSeparator | IntegerLeadingSeparator | IntegerTrailingSeparator | IntegerConsecutiveSeparator |
		FractionInternalSeparator | FractionLeadingSeparator | FractionTrailingSeparator | FractionConsecutiveSeparator |
		ExponentInternalSeparator | ExponentLeadingSeparator | ExponentTrailingSeparator | ExponentConsecutiveSeparator

	// CapabilityFlags covers the parse/write capabilities.
	CapabilityFlags = SupportsParsingIntegers | SupportsParsingFloats | SupportsWritingIntegers | SupportsWritingFloats
)

// FlagInfo names a flag. Code is the short form used by vector files
// ("I/R", "F/E", ...).
type FlagInfo struct {
	Flag Flag
	Name string
	Code string
}

var flagInfos = []FlagInfo{
	{RequiredIntegerDigits, "required_integer_digits", "I/R"},
	{RequiredFractionDigits, "required_fraction_digits", "F/R"},
	{RequiredExponentDigits, "required_exponent_digits", "E/R"},
	{RequiredMantissaDigits, "required_mantissa_digits", "M/R"},
	{RequireIntegerDigitsWithExponent, "required_integer_digits_with_exponent", "I/E"},
	{RequireFractionDigitsWithExponent, "required_fraction_digits_with_exponent", "F/E"},
	{RequireMantissaDigitsWithExponent, "required_mantissa_digits_with_exponent", "M/E"},
	{NoPositiveMantissaSign, "no_positive_mantissa_sign", "+/M"},
	{RequiredMantissaSign, "required_mantissa_sign", "R/M"},
	{NoPositiveExponentSign, "no_positive_exponent_sign", "+/E"},
	{RequiredExponentSign, "required_exponent_sign", "R/E"},
	{NoExponentNotation, "no_exponent_notation", "e/e"},
	{NoExponentWithoutFraction, "no_exponent_without_fraction", "e/F"},
	{RequiredExponentNotation, "required_exponent_notation", "R/e"},
	{CaseSensitiveExponent, "case_sensitive_exponent", "e/C"},
	{NoIntegerLeadingZeros, "no_integer_leading_zeros", "N/I"},
	{NoFloatLeadingZeros, "no_float_leading_zeros", "N/F"},
	{NoSpecialValues, "no_special_values", "S/S"},
	{CaseSensitiveSpecialValues, "case_sensitive_special_values", "S/c"},
	{CaseSensitiveBasePrefix, "case_sensitive_base_prefix", "e/P"},
	{RequiredBasePrefix, "required_base_prefix", "r/P"},
	{NoBasePrefix, "no_base_prefix", "n/P"},
	{BasePrefixTrailingSeparator, "base_prefix_trailing_separator", "s/P"},
	{AllowIntegerFloats, "allow_integer_floats", "I/F"},
	{SupportsParsingIntegers, "supports_parsing_integers", "p/I"},
	{SupportsParsingFloats, "supports_parsing_floats", "p/F"},
	{SupportsWritingIntegers, "supports_writing_integers", "w/I"},
	{SupportsWritingFloats, "supports_writing_floats", "w/F"},
	{IntegerInternalSeparator, "integer_internal_separator", "I/I"},
	{IntegerLeadingSeparator, "integer_leading_separator", "I/L"},
	{IntegerTrailingSeparator, "integer_trailing_separator", "I/T"},
	{IntegerConsecutiveSeparator, "integer_consecutive_separator", "I/C"},
	{FractionInternalSeparator, "fraction_internal_separator", "F/I"},
	{FractionLeadingSeparator, "fraction_leading_separator", "F/L"},
	{FractionTrailingSeparator, "fraction_trailing_separator", "F/T"},
	{FractionConsecutiveSeparator, "fraction_consecutive_separator", "F/C"},
	{ExponentInternalSeparator, "exponent_internal_separator", "E/I"},
	{ExponentLeadingSeparator, "exponent_leading_separator", "E/L"},
	{ExponentTrailingSeparator, "exponent_trailing_separator", "E/T"},
	{ExponentConsecutiveSeparator, "exponent_consecutive_separator", "E/C"},
}

// Flags lists every known flag in declaration order.
func Flags() []FlagInfo {
	out := make([]FlagInfo, len(flagInfos))
	copy(out, flagInfos)
	return out
}

// LookupFlag resolves a flag by snake_case name or short code.
func LookupFlag(s string) (Flag, bool) {
	for _, fi := range flagInfos {
		if s == fi.Code || strings.EqualFold(s, fi.Name) {
			return fi.Flag, true
		}
	}
	return 0, false
}

// Codes renders the set flags as space separated short codes.
func (f Flag) Codes() string {
	var parts []string
	for _, fi := range flagInfos {
		if f&fi.Flag != 0 {
			parts = append(parts, fi.Code)
		}
	}
	return strings.Join(parts, " ")
}

func (f Flag) String() string {
	var parts []string
	for _, fi := range flagInfos {
		if f&fi.Flag != 0 {
			parts = append(parts, fi.Name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Default characters and spellings.
const (
	DefaultPoint    = '.'
	DefaultExponent = 'e'
	DefaultNaN      = "NaN"
	DefaultInf      = "inf"
	DefaultInfinity = "Infinity"
)

// Spec is the resolved grammar configuration. Separator 0 means separators
// are never permitted regardless of the toggles.
type Spec struct {
	Flags     Flag
	Separator byte
	Point     byte
	Exponent  byte
	NaN       string
	Inf       string
	Infinity  string
}

// Has reports whether every bit of f is set.
func (s *Spec) Has(f Flag) bool { return s.Flags&f == f }

// Base is a numeric radix.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Valid reports whether b is one of the four supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// PrefixLetter is the lowercase prefix letter of b, or 0 for decimal.
func (b Base) PrefixLetter() byte {
	switch b {
	case Binary:
		return 'b'
	case Octal:
		return 'o'
	case Hexadecimal:
		return 'x'
	}
	return 0
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return "base(" + strconv.Itoa(int(b)) + ")"
}

// Mode selects between source-code literals and textual numeric strings.
type Mode int

const (
	ModeLiteral Mode = iota
	ModeString
)

func (m Mode) String() string {
	if m == ModeString {
		return "string"
	}
	return "literal"
}

// Kind is the numeric kind being parsed or produced.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
)

func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "integer"
}

// Request describes one scan: surface form, numeric kind and base.
type Request struct {
	Mode Mode
	Kind Kind
	Base Base
}
