package engine

import (
	"math"
	"strconv"
	"strings"
)

// Positional layout is used for decimal exponents in [minPositional, maxPositional).
const (
	minPositional = -5
	maxPositional = 17
)

// WriteInteger renders v in base under s. Digit separators are never emitted.
func WriteInteger(v int64, s *Spec, base Base) (string, *Reject) {
	if !s.Has(SupportsWritingIntegers) {
		return "", &Reject{Code: CodeCapabilityDisabled, Hint: "write integer"}
	}
	if r := CheckRequest(Request{Kind: KindInteger, Base: base}); r != nil {
		return "", r
	}
	var b strings.Builder
	u := uint64(v)
	if v < 0 {
		b.WriteByte('-')
		u = -u
	} else if s.Has(RequiredMantissaSign) {
		b.WriteByte('+')
	}
	if base != Decimal && s.Has(RequiredBasePrefix) && !s.Has(NoBasePrefix) {
		b.WriteByte('0')
		b.WriteByte(base.PrefixLetter())
	}
	b.WriteString(strconv.FormatUint(u, int(base)))
	return b.String(), nil
}

// WriteFloat renders v under s: positional for moderate magnitudes, scientific
// otherwise or when the spec demands an exponent.
func WriteFloat(v float64, s *Spec) (string, *Reject) {
	if !s.Has(SupportsWritingFloats) {
		return "", &Reject{Code: CodeCapabilityDisabled, Hint: "write float"}
	}
	neg := math.Signbit(v)
	var b strings.Builder
	switch {
	case neg:
		b.WriteByte('-')
	case s.Has(RequiredMantissaSign):
		b.WriteByte('+')
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if s.Has(NoSpecialValues) {
			return "", reject(CodeSpecialValueDisallowed, 0)
		}
		if math.IsNaN(v) {
			// NaN carries no sign in text.
			b.Reset()
			if s.Has(RequiredMantissaSign) {
				b.WriteByte('+')
			}
			b.WriteString(s.NaN)
		} else {
			b.WriteString(s.Inf)
		}
		return b.String(), nil
	}

	digits, exp := shortestDigits(math.Abs(v))
	sci := s.Has(RequiredExponentNotation) ||
		(!s.Has(NoExponentNotation) && (exp < minPositional || exp >= maxPositional))
	if sci {
		b.WriteByte(digits[0])
		b.WriteByte(s.Point)
		if len(digits) > 1 {
			b.WriteString(digits[1:])
		} else {
			b.WriteByte('0')
		}
		b.WriteByte(s.Exponent)
		switch {
		case exp < 0:
			b.WriteByte('-')
			exp = -exp
		case s.Has(RequiredExponentSign):
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exp))
		return b.String(), nil
	}

	var intPart, frac string
	if exp >= 0 {
		if exp+1 >= len(digits) {
			intPart = digits + strings.Repeat("0", exp+1-len(digits))
		} else {
			intPart, frac = digits[:exp+1], digits[exp+1:]
		}
	} else {
		intPart = "0"
		frac = strings.Repeat("0", -exp-1) + digits
	}
	if frac == "" {
		frac = "0"
	}
	b.WriteString(intPart)
	b.WriteByte(s.Point)
	b.WriteString(frac)
	return b.String(), nil
}

// shortestDigits returns the shortest round-tripping decimal digits of a
// non-negative finite f and the decimal exponent of the first digit.
func shortestDigits(f float64) (string, int) {
	e := strconv.FormatFloat(f, 'e', -1, 64) // d.ddde±xx
	i := strings.IndexByte(e, 'e')
	mant, expText := e[:i], e[i+1:]
	exp, _ := strconv.Atoi(expText)
	digits := strings.Replace(mant, ".", "", 1)
	return digits, exp
}
