package numlit

import eng "github.com/reoring/numlit/internal/engine"

// Flag is one grammar toggle of a FormatSpec. Flags combine with |.
type Flag = eng.Flag

const (
	RequiredIntegerDigits             = eng.RequiredIntegerDigits             // I/R
	RequiredFractionDigits            = eng.RequiredFractionDigits            // F/R
	RequiredExponentDigits            = eng.RequiredExponentDigits            // E/R
	RequiredMantissaDigits            = eng.RequiredMantissaDigits            // M/R
	RequireIntegerDigitsWithExponent  = eng.RequireIntegerDigitsWithExponent  // I/E
	RequireFractionDigitsWithExponent = eng.RequireFractionDigitsWithExponent // F/E
	RequireMantissaDigitsWithExponent = eng.RequireMantissaDigitsWithExponent // M/E

	NoPositiveMantissaSign = eng.NoPositiveMantissaSign // +/M
	RequiredMantissaSign   = eng.RequiredMantissaSign   // R/M
	NoPositiveExponentSign = eng.NoPositiveExponentSign // +/E
	RequiredExponentSign   = eng.RequiredExponentSign   // R/E

	NoExponentNotation        = eng.NoExponentNotation        // e/e
	NoExponentWithoutFraction = eng.NoExponentWithoutFraction // e/F
	RequiredExponentNotation  = eng.RequiredExponentNotation  // R/e
	CaseSensitiveExponent     = eng.CaseSensitiveExponent     // e/C

	NoIntegerLeadingZeros = eng.NoIntegerLeadingZeros // N/I
	NoFloatLeadingZeros   = eng.NoFloatLeadingZeros   // N/F

	NoSpecialValues            = eng.NoSpecialValues            // S/S
	CaseSensitiveSpecialValues = eng.CaseSensitiveSpecialValues // S/c

	CaseSensitiveBasePrefix     = eng.CaseSensitiveBasePrefix     // e/P
	RequiredBasePrefix          = eng.RequiredBasePrefix          // r/P
	NoBasePrefix                = eng.NoBasePrefix                // n/P
	BasePrefixTrailingSeparator = eng.BasePrefixTrailingSeparator // s/P

	// AllowIntegerFloats accepts a bare integer ("1") as a float.
	AllowIntegerFloats = eng.AllowIntegerFloats

	SupportsParsingIntegers = eng.SupportsParsingIntegers
	SupportsParsingFloats   = eng.SupportsParsingFloats
	SupportsWritingIntegers = eng.SupportsWritingIntegers
	SupportsWritingFloats   = eng.SupportsWritingFloats

	IntegerInternalSeparator     = eng.IntegerInternalSeparator
	IntegerLeadingSeparator      = eng.IntegerLeadingSeparator
	IntegerTrailingSeparator     = eng.IntegerTrailingSeparator
	IntegerConsecutiveSeparator  = eng.IntegerConsecutiveSeparator
	FractionInternalSeparator    = eng.FractionInternalSeparator
	FractionLeadingSeparator     = eng.FractionLeadingSeparator
	FractionTrailingSeparator    = eng.FractionTrailingSeparator
	FractionConsecutiveSeparator = eng.FractionConsecutiveSeparator
	ExponentInternalSeparator    = eng.ExponentInternalSeparator
	ExponentLeadingSeparator     = eng.ExponentLeadingSeparator
	ExponentTrailingSeparator    = eng.ExponentTrailingSeparator
	ExponentConsecutiveSeparator = eng.ExponentConsecutiveSeparator

	SeparatorFlags  = eng.SeparatorFlags
	CapabilityFlags = eng.CapabilityFlags
)

// Base is the radix of a number.
type Base = eng.Base

const (
	Binary      = eng.Binary
	Octal       = eng.Octal
	Decimal     = eng.Decimal
	Hexadecimal = eng.Hexadecimal
)

// Mode selects the surface form being judged.
type Mode = eng.Mode

const (
	Literal = eng.ModeLiteral // source-code literal: no '+', no special values
	String  = eng.ModeString  // serialized numeric string
)

// Kind is the numeric kind of a request or value.
type Kind = eng.Kind

const (
	Integer = eng.KindInteger
	Float   = eng.KindFloat
)

// Group names a digit group in rejections.
type Group = eng.Group

const (
	GroupNone     = eng.GroupNone
	GroupInteger  = eng.GroupInteger
	GroupFraction = eng.GroupFraction
	GroupExponent = eng.GroupExponent
	GroupMantissa = eng.GroupMantissa
)

// Position is where a separator run sits within its group.
type Position = eng.Position

const (
	PositionNone        = eng.PositionNone
	PositionInternal    = eng.PositionInternal
	PositionLeading     = eng.PositionLeading
	PositionTrailing    = eng.PositionTrailing
	PositionConsecutive = eng.PositionConsecutive
)

// Special tags NaN and infinity.
type Special = eng.Special

const (
	SpecialNone     = eng.SpecialNone
	SpecialNaN      = eng.SpecialNaN
	SpecialInfinity = eng.SpecialInfinity
)

// Components are the parts of an accepted number with separators removed.
type Components = eng.Components

// Request selects mode, kind and base for Validate.
type Request = eng.Request

// FlagInfo names a flag: snake_case Name and short Code ("I/R").
type FlagInfo = eng.FlagInfo

// Flags lists every flag with its names.
func Flags() []FlagInfo { return eng.Flags() }

// ParseFlag resolves a flag from its snake_case name or short code.
func ParseFlag(name string) (Flag, error) {
	f, ok := eng.LookupFlag(name)
	if !ok {
		return 0, &NumberError{Code: CodeInvalidFormat, Offset: -1, Hint: "unknown flag " + name}
	}
	return f, nil
}
