package numlit

import (
	"math"
	"strconv"
)

// Class classifies a float value.
type Class int

const (
	Finite Class = iota
	NaN
	Infinity
)

func (c Class) String() string {
	switch c {
	case NaN:
		return "nan"
	case Infinity:
		return "infinity"
	}
	return "finite"
}

// Value is an extracted number. Kind selects which of Int and Float is
// meaningful; Class is always Finite for integers.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Class Class
}

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{Kind: Integer, Int: i} }

// FloatValue wraps a float and classifies it.
func FloatValue(f float64) Value {
	v := Value{Kind: Float, Float: f}
	switch {
	case math.IsNaN(f):
		v.Class = NaN
	case math.IsInf(f, 0):
		v.Class = Infinity
	}
	return v
}

// Equal compares values. NaN equals NaN: only the classification is
// compared, never the payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == Integer {
		return v.Int == o.Int
	}
	if v.Class == NaN || o.Class == NaN {
		return v.Class == o.Class
	}
	return v.Float == o.Float
}

func (v Value) String() string {
	if v.Kind == Integer {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}
