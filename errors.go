package numlit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/numlit/i18n"
	eng "github.com/reoring/numlit/internal/engine"
)

// Rejection codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyRequiredDigits      = eng.CodeEmptyRequiredDigits
	CodeInvalidSeparatorPosition = eng.CodeInvalidSeparatorPosition
	CodeUnsupportedBase          = eng.CodeUnsupportedBase
	CodeMissingBasePrefix        = eng.CodeMissingBasePrefix
	CodeUnexpectedBasePrefix     = eng.CodeUnexpectedBasePrefix
	CodeDisallowedSign           = eng.CodeDisallowedSign
	CodeSpecialValueDisallowed   = eng.CodeSpecialValueDisallowed
	CodeMalformedSpecialValue    = eng.CodeMalformedSpecialValue
	CodeIntegerOverflow          = eng.CodeIntegerOverflow
	CodeFloatOverflow            = eng.CodeFloatOverflow
	CodeCapabilityDisabled       = eng.CodeCapabilityDisabled
	// Finer-grained syntax rejections
	CodeInvalidCharacter   = eng.CodeInvalidCharacter
	CodeMissingSign        = eng.CodeMissingSign
	CodeLeadingZeros       = eng.CodeLeadingZeros
	CodeExponentDisallowed = eng.CodeExponentDisallowed
	CodeMissingExponent    = eng.CodeMissingExponent
	CodeIntegerOnly        = eng.CodeIntegerOnly
	// Configuration and conversion failures
	CodeInvalidFormat = eng.CodeInvalidFormat
)

// NumberError is a structured rejection.
type NumberError struct {
	Code     string // One of the codes listed above.
	Message  string
	Offset   int      // Byte offset into the input (-1 when unknown).
	Group    Group    // Digit group involved, if any.
	Position Position // Separator position, for invalid_separator_position.
	Hint     string   // Optional remediation hint.
	// Input is the rejected text. It is empty for errors not tied to an input.
	Input string
	Cause error // Optional underlying error.
}

// Error renders e.g. "invalid_separator_position at offset 1 (integer internal): ...".
func (e *NumberError) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Code)
	if e.Offset >= 0 {
		fmt.Fprintf(b, " at offset %d", e.Offset)
	}
	if e.Group != GroupNone {
		b.WriteString(" (")
		b.WriteString(e.Group.String())
		if e.Position != PositionNone {
			b.WriteByte(' ')
			b.WriteString(e.Position.String())
		}
		b.WriteByte(')')
	}
	msg := e.Message
	if msg == "" {
		msg = i18n.T(e.Code, e.params())
	}
	if msg != "" && msg != e.Code {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	if e.Hint != "" {
		fmt.Fprintf(b, " [%s]", e.Hint)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *NumberError) Unwrap() error { return e.Cause }

// Is matches another *NumberError by code, so errors.Is(err, &NumberError{Code: c}) works.
func (e *NumberError) Is(target error) bool {
	t, ok := target.(*NumberError)
	return ok && t.Code == e.Code
}

func (e *NumberError) params() map[string]string {
	return map[string]string{
		"group":    e.Group.String(),
		"position": e.Position.String(),
		"hint":     e.Hint,
	}
}

// AsNumberError extracts a *NumberError using errors.As internally.
func AsNumberError(err error) (*NumberError, bool) {
	if err == nil {
		return nil, false
	}
	var ne *NumberError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// IsCode reports whether err carries a *NumberError with the given code.
func IsCode(err error, code string) bool {
	ne, ok := AsNumberError(err)
	return ok && ne.Code == code
}

func fromReject(r *eng.Reject, input string) *NumberError {
	if r == nil {
		return nil
	}
	ne := &NumberError{
		Code:     r.Code,
		Offset:   r.Offset,
		Group:    r.Group,
		Position: r.Position,
		Hint:     r.Hint,
		Input:    input,
	}
	ne.Message = i18n.T(ne.Code, ne.params())
	return ne
}
