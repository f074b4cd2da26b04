package codec

import (
	"context"

	"github.com/reoring/numlit"
)

// Integer returns a Codec that converts between integer strings and int64
// under spec. Encode renders with FormatInteger and re-validates the text
// through Decode.
func Integer(spec numlit.FormatSpec, base numlit.Base) numlit.Codec[string, int64] {
	return &integerCodec{spec: spec, base: base}
}

type integerCodec struct {
	spec numlit.FormatSpec
	base numlit.Base
}

func (c *integerCodec) Decode(ctx context.Context, a string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return numlit.ParseInteger(a, c.spec, c.base)
}

func (c *integerCodec) Encode(ctx context.Context, b int64) (string, error) {
	s, err := numlit.FormatInteger(b, c.spec, c.base)
	if err != nil {
		return "", err
	}
	// wire(string) -> domain(int64) must give b back
	got, err := c.Decode(ctx, s)
	if err != nil {
		return "", err
	}
	if got != b {
		return "", &numlit.NumberError{Code: numlit.CodeInvalidFormat, Offset: -1, Input: s, Hint: "encoded text does not round-trip"}
	}
	return s, nil
}

// Float returns a Codec that converts between decimal float strings and
// float64 under spec.
func Float(spec numlit.FormatSpec) numlit.Codec[string, float64] {
	return &floatCodec{spec: spec}
}

type floatCodec struct {
	spec numlit.FormatSpec
}

func (c *floatCodec) Decode(ctx context.Context, a string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return numlit.ParseFloat(a, c.spec)
}

func (c *floatCodec) Encode(ctx context.Context, b float64) (string, error) {
	s, err := numlit.FormatFloat(b, c.spec)
	if err != nil {
		return "", err
	}
	got, err := c.Decode(ctx, s)
	if err != nil {
		return "", err
	}
	if !numlit.FloatValue(got).Equal(numlit.FloatValue(b)) {
		return "", &numlit.NumberError{Code: numlit.CodeInvalidFormat, Offset: -1, Input: s, Hint: "encoded text does not round-trip"}
	}
	return s, nil
}

// Preset returns a Codec over numlit.Value for a registered preset. The
// preset's mode and base apply in both directions; kind selects integers or
// floats.
func Preset(p numlit.Preset, kind numlit.Kind) numlit.Codec[string, numlit.Value] {
	return &presetCodec{preset: p, kind: kind}
}

type presetCodec struct {
	preset numlit.Preset
	kind   numlit.Kind
}

func (c *presetCodec) Decode(ctx context.Context, a string) (numlit.Value, error) {
	if err := ctx.Err(); err != nil {
		return numlit.Value{Kind: c.kind}, err
	}
	return numlit.ParseValue(a, c.preset.Spec, c.preset.Request(c.kind))
}

func (c *presetCodec) Encode(ctx context.Context, b numlit.Value) (string, error) {
	if b.Kind != c.kind {
		return "", &numlit.NumberError{Code: numlit.CodeInvalidFormat, Offset: -1, Hint: "value kind is " + b.Kind.String()}
	}
	s, err := numlit.FormatValue(b, c.preset.Spec, c.preset.Request(c.kind).Base)
	if err != nil {
		return "", err
	}
	got, err := c.Decode(ctx, s)
	if err != nil {
		return "", err
	}
	if !got.Equal(b) {
		return "", &numlit.NumberError{Code: numlit.CodeInvalidFormat, Offset: -1, Input: s, Hint: "encoded text does not round-trip"}
	}
	return s, nil
}
