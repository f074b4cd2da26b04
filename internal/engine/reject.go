package engine

// Rejection codes.
const (
	CodeEmptyRequiredDigits      = "empty_required_digits"
	CodeInvalidSeparatorPosition = "invalid_separator_position"
	CodeUnsupportedBase          = "unsupported_base"
	CodeMissingBasePrefix        = "missing_base_prefix"
	CodeUnexpectedBasePrefix     = "unexpected_base_prefix"
	CodeDisallowedSign           = "disallowed_sign"
	CodeSpecialValueDisallowed   = "special_value_disallowed"
	CodeMalformedSpecialValue    = "malformed_special_value"
	CodeIntegerOverflow          = "integer_overflow"
	CodeFloatOverflow            = "float_overflow"
	CodeCapabilityDisabled       = "capability_disabled"
	CodeInvalidCharacter         = "invalid_character"
	CodeMissingSign              = "missing_sign"
	CodeLeadingZeros             = "leading_zeros"
	CodeExponentDisallowed       = "exponent_disallowed"
	CodeMissingExponent          = "missing_exponent"
	CodeIntegerOnly              = "integer_only"
	CodeInvalidFormat            = "invalid_format"
)

// Reject describes why a text was not accepted. Offset is a byte offset into
// the scanned text.
type Reject struct {
	Code     string
	Offset   int
	Group    Group
	Position Position
	Hint     string
}

func reject(code string, off int) *Reject { return &Reject{Code: code, Offset: off} }

func rejectGroup(code string, off int, g Group) *Reject {
	return &Reject{Code: code, Offset: off, Group: g}
}

// CheckRequest validates the base/kind combination. It does not depend on a Spec.
func CheckRequest(req Request) *Reject {
	if !req.Base.Valid() {
		return &Reject{Code: CodeUnsupportedBase, Hint: req.Base.String()}
	}
	if req.Kind == KindFloat && req.Base != Decimal {
		return &Reject{Code: CodeUnsupportedBase, Hint: "floats are decimal only"}
	}
	return nil
}

// CheckCapability rejects parse requests the spec does not support.
func CheckCapability(s *Spec, kind Kind) *Reject {
	f := SupportsParsingIntegers
	if kind == KindFloat {
		f = SupportsParsingFloats
	}
	if !s.Has(f) {
		return &Reject{Code: CodeCapabilityDisabled, Hint: "parse " + kind.String()}
	}
	return nil
}
