package numlit

import (
	"context"

	eng "github.com/reoring/numlit/internal/engine"
)

// Outcome is the tagged result of Validate: either Components (Err == nil)
// or a rejection.
type Outcome struct {
	Components Components
	Err        *NumberError
}

// Accepted reports whether the text was accepted.
func (o Outcome) Accepted() bool { return o.Err == nil }

// AsError returns the rejection as an error, or nil.
func (o Outcome) AsError() error {
	if o.Err == nil {
		return nil
	}
	return o.Err
}

// Validate judges text under spec for the requested mode, kind and base.
// The base is checked first, then the spec's parse capability, then the text.
func Validate(text string, spec FormatSpec, req Request) Outcome {
	if r := eng.CheckRequest(req); r != nil {
		return Outcome{Components: Components{Base: req.Base}, Err: fromReject(r, text)}
	}
	if r := eng.CheckCapability(spec.engine(), req.Kind); r != nil {
		return Outcome{Components: Components{Base: req.Base}, Err: fromReject(r, text)}
	}
	c, r := eng.Scan(text, spec.engine(), req)
	if r != nil {
		return Outcome{Components: c, Err: fromReject(r, text)}
	}
	return Outcome{Components: c}
}

// ValidateLiteral judges text as a source-code literal.
func ValidateLiteral(text string, spec FormatSpec, kind Kind, base Base) (Components, error) {
	o := Validate(text, spec, Request{Mode: Literal, Kind: kind, Base: base})
	return o.Components, o.AsError()
}

// ParseInteger validates text as an integer string in base and extracts it.
func ParseInteger(text string, spec FormatSpec, base Base) (int64, error) {
	v, err := ParseValue(text, spec, Request{Mode: String, Kind: Integer, Base: base})
	if err != nil {
		return 0, err
	}
	return v.Int, nil
}

// ParseFloat validates text as a decimal float string and extracts it.
func ParseFloat(text string, spec FormatSpec) (float64, error) {
	v, err := ParseValue(text, spec, Request{Mode: String, Kind: Float, Base: Decimal})
	if err != nil {
		return 0, err
	}
	return v.Float, nil
}

// ParseValue validates and extracts in one call.
func ParseValue(text string, spec FormatSpec, req Request) (Value, error) {
	o := Validate(text, spec, req)
	if o.Err != nil {
		return Value{Kind: req.Kind}, o.Err
	}
	v, err := Extract(o.Components, req.Kind)
	if ne, ok := AsNumberError(err); ok {
		ne.Input = text
	}
	return v, err
}

// Extract converts accepted components into a Value.
func Extract(c Components, kind Kind) (Value, error) {
	if kind == Integer {
		i, r := eng.ExtractInteger(c)
		if r != nil {
			return Value{Kind: Integer}, fromReject(r, "")
		}
		return IntValue(i), nil
	}
	f, r := eng.ExtractFloat(c)
	if r != nil {
		return Value{Kind: Float}, fromReject(r, "")
	}
	return FloatValue(f), nil
}

// FormatInteger renders v in base. The result is checked against spec in
// String mode before it is returned.
func FormatInteger(v int64, spec FormatSpec, base Base) (string, error) {
	text, r := eng.WriteInteger(v, spec.engine(), base)
	if r != nil {
		return "", fromReject(r, "")
	}
	if err := revalidate(text, spec, Request{Mode: String, Kind: Integer, Base: base}); err != nil {
		return "", err
	}
	return text, nil
}

// FormatFloat renders v as a decimal float string. The result is checked
// against spec in String mode before it is returned.
func FormatFloat(v float64, spec FormatSpec) (string, error) {
	text, r := eng.WriteFloat(v, spec.engine())
	if r != nil {
		return "", fromReject(r, "")
	}
	if err := revalidate(text, spec, Request{Mode: String, Kind: Float, Base: Decimal}); err != nil {
		return "", err
	}
	return text, nil
}

// FormatValue renders v with FormatInteger or FormatFloat. base applies to
// integers only.
func FormatValue(v Value, spec FormatSpec, base Base) (string, error) {
	if v.Kind == Integer {
		return FormatInteger(v.Int, spec, base)
	}
	return FormatFloat(v.Float, spec)
}

func revalidate(text string, spec FormatSpec, req Request) error {
	if _, r := eng.Scan(text, spec.engine(), req); r != nil {
		return &NumberError{
			Code:   CodeInvalidFormat,
			Offset: -1,
			Hint:   "format cannot represent the written text",
			Input:  text,
			Cause:  fromReject(r, text),
		}
	}
	return nil
}

// Codec converts between a textual form A and a numeric form B. Encode
// re-validates what it produces.
type Codec[A any, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}
