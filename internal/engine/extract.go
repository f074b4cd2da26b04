package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ExtractInteger converts accepted components to an int64.
func ExtractInteger(c Components) (int64, *Reject) {
	if c.Integer == "" {
		return 0, nil
	}
	u, err := strconv.ParseUint(c.Integer, int(c.Base), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rejectGroup(CodeIntegerOverflow, c.IntegerAt, GroupInteger)
		}
		return 0, &Reject{Code: CodeInvalidFormat, Hint: err.Error()}
	}
	if c.Negative {
		if u > 1<<63 {
			return 0, rejectGroup(CodeIntegerOverflow, c.IntegerAt, GroupInteger)
		}
		return int64(-u), nil
	}
	if u > math.MaxInt64 {
		return 0, rejectGroup(CodeIntegerOverflow, c.IntegerAt, GroupInteger)
	}
	return int64(u), nil
}

// ExtractFloat converts accepted components to the nearest float64.
// Magnitudes beyond the float64 range become infinities; Scan refuses them
// for specs with NoSpecialValues.
func ExtractFloat(c Components) (float64, *Reject) {
	switch c.Special {
	case SpecialNaN:
		return math.NaN(), nil
	case SpecialInfinity:
		if c.Negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	if c.Base != Decimal {
		return 0, &Reject{Code: CodeUnsupportedBase, Hint: "floats are decimal only"}
	}
	var b strings.Builder
	b.Grow(len(c.Integer) + len(c.Fraction) + len(c.Exponent) + 6)
	if c.Negative {
		b.WriteByte('-')
	}
	if c.Integer == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(c.Integer)
	}
	if c.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(c.Fraction)
	}
	if c.Exponent != "" {
		b.WriteByte('e')
		if c.ExponentNegative {
			b.WriteByte('-')
		}
		b.WriteString(c.Exponent)
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &Reject{Code: CodeInvalidFormat, Hint: err.Error()}
	}
	return f, nil
}
