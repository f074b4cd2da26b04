package engine

import "math"

// Components are the parts of an accepted number. Digit strings have the
// separators and the base prefix removed.
type Components struct {
	Negative         bool
	Signed           bool // an explicit sign was present
	Base             Base
	Prefixed         bool
	Integer          string
	IntegerAt        int // byte offset of the integer digits
	HasPoint         bool
	Fraction         string
	HasExponent      bool
	ExponentNegative bool
	Exponent         string
	Special          Special
}

// Scan validates text under s and req in a single pass. On success the
// returned Components are complete; on failure the Reject carries the
// offending byte offset.
func Scan(text string, s *Spec, req Request) (Components, *Reject) {
	if r := CheckRequest(req); r != nil {
		return Components{Base: req.Base}, r
	}
	sc := scanner{text: text, spec: s, req: req}
	return sc.scan()
}

type scanner struct {
	text string
	pos  int
	spec *Spec
	req  Request

	// offsets of the group starts, used by the digit rules
	intAt, fracAt, expAt, expDigitsAt int
}

func (sc *scanner) peek() (byte, bool) {
	if sc.pos < len(sc.text) {
		return sc.text[sc.pos], true
	}
	return 0, false
}

func (sc *scanner) scan() (Components, *Reject) {
	c := Components{Base: sc.req.Base}
	if r := sc.sign(&c); r != nil {
		return c, r
	}
	if sc.req.Kind == KindFloat {
		if ch, ok := sc.peek(); ok && isLetter(ch) {
			return c, sc.special(&c)
		}
	}
	if r := sc.prefix(&c); r != nil {
		return c, r
	}

	var r *Reject
	sc.intAt = sc.pos
	c.IntegerAt = sc.pos
	if c.Integer, r = sc.group(GroupInteger, c.Prefixed); r != nil {
		return c, r
	}
	if sc.req.Kind == KindFloat {
		if ch, ok := sc.peek(); ok && ch == sc.spec.Point {
			c.HasPoint = true
			sc.pos++
			sc.fracAt = sc.pos
			if c.Fraction, r = sc.group(GroupFraction, false); r != nil {
				return c, r
			}
		}
		if ch, ok := sc.peek(); ok && isLetter(ch) && ch|0x20 == sc.spec.Exponent|0x20 {
			if ch != sc.spec.Exponent && sc.spec.Has(CaseSensitiveExponent) {
				return c, &Reject{Code: CodeInvalidCharacter, Offset: sc.pos, Group: GroupExponent, Hint: "exponent character is case-sensitive"}
			}
			c.HasExponent = true
			sc.expAt = sc.pos
			sc.pos++
			if r := sc.exponentSign(&c); r != nil {
				return c, r
			}
			sc.expDigitsAt = sc.pos
			if c.Exponent, r = sc.group(GroupExponent, false); r != nil {
				return c, r
			}
		}
	}
	if sc.pos < len(sc.text) {
		return c, reject(CodeInvalidCharacter, sc.pos)
	}
	if sc.req.Kind == KindInteger {
		return c, sc.integerRules(c)
	}
	return c, sc.floatRules(c)
}

func (sc *scanner) sign(c *Components) *Reject {
	ch, ok := sc.peek()
	switch {
	case ok && ch == '-':
		c.Negative, c.Signed = true, true
		sc.pos++
	case ok && ch == '+':
		if sc.req.Mode == ModeLiteral {
			return &Reject{Code: CodeDisallowedSign, Offset: sc.pos, Group: GroupMantissa, Hint: "literals have no positive sign"}
		}
		if sc.spec.Has(NoPositiveMantissaSign) {
			return rejectGroup(CodeDisallowedSign, sc.pos, GroupMantissa)
		}
		c.Signed = true
		sc.pos++
	case sc.spec.Has(RequiredMantissaSign):
		return rejectGroup(CodeMissingSign, sc.pos, GroupMantissa)
	}
	return nil
}

func (sc *scanner) exponentSign(c *Components) *Reject {
	ch, ok := sc.peek()
	switch {
	case ok && ch == '-':
		c.ExponentNegative = true
		sc.pos++
	case ok && ch == '+':
		if sc.spec.Has(NoPositiveExponentSign) {
			return rejectGroup(CodeDisallowedSign, sc.pos, GroupExponent)
		}
		sc.pos++
	case sc.spec.Has(RequiredExponentSign):
		return rejectGroup(CodeMissingSign, sc.pos, GroupExponent)
	}
	return nil
}

// special handles a float whose body starts with a letter. Such a text is
// either a special value or not a number at all.
func (sc *scanner) special(c *Components) *Reject {
	rest := sc.text[sc.pos:]
	if sp, ok := LookupSpecial(sc.spec, rest); ok {
		if sc.req.Mode == ModeLiteral {
			return &Reject{Code: CodeSpecialValueDisallowed, Offset: sc.pos, Hint: "special values are not literals"}
		}
		if sc.spec.Has(NoSpecialValues) {
			return reject(CodeSpecialValueDisallowed, sc.pos)
		}
		c.Special = sp
		sc.pos = len(sc.text)
		return nil
	}
	if resemblesSpecial(sc.spec, rest) {
		return reject(CodeMalformedSpecialValue, sc.pos)
	}
	return reject(CodeInvalidCharacter, sc.pos)
}

func (sc *scanner) prefix(c *Components) *Reject {
	base := sc.req.Base
	if sc.pos+1 < len(sc.text) && sc.text[sc.pos] == '0' {
		letter := sc.text[sc.pos+1]
		lower := letter | 0x20
		if base != Decimal && isLetter(letter) && lower == base.PrefixLetter() {
			if sc.spec.Has(NoBasePrefix) {
				return reject(CodeUnexpectedBasePrefix, sc.pos)
			}
			if letter != lower && sc.spec.Has(CaseSensitiveBasePrefix) {
				return &Reject{Code: CodeUnexpectedBasePrefix, Offset: sc.pos + 1, Hint: "base prefix is case-sensitive"}
			}
			c.Prefixed = true
			sc.pos += 2
			return nil
		}
		if isLetter(letter) && isPrefixLetter(lower) && !isDigit(letter, base) && lower != sc.spec.Exponent|0x20 {
			return &Reject{Code: CodeUnexpectedBasePrefix, Offset: sc.pos + 1, Hint: "prefix of another base"}
		}
	}
	if base != Decimal && sc.spec.Has(RequiredBasePrefix) {
		return &Reject{Code: CodeMissingBasePrefix, Offset: sc.pos, Hint: "0" + string(base.PrefixLetter())}
	}
	return nil
}

type sepRun struct {
	at     int // offset of the first separator
	n      int
	before int // digits of the group preceding the run
}

// group consumes the digits and separators of g and returns the digits.
func (sc *scanner) group(g Group, afterPrefix bool) (string, *Reject) {
	start := sc.pos
	sep := sc.spec.Separator
	base := sc.req.Base
	var runs []sepRun
	count := 0
	for sc.pos < len(sc.text) {
		ch := sc.text[sc.pos]
		switch {
		case isDigit(ch, base):
			count++
		case sep != 0 && ch == sep:
			if n := len(runs); n > 0 && runs[n-1].at+runs[n-1].n == sc.pos {
				runs[n-1].n++
			} else {
				runs = append(runs, sepRun{at: sc.pos, n: 1, before: count})
			}
		default:
			return sc.groupDigits(g, start, runs, count, afterPrefix)
		}
		sc.pos++
	}
	return sc.groupDigits(g, start, runs, count, afterPrefix)
}

func (sc *scanner) groupDigits(g Group, start int, runs []sepRun, count int, afterPrefix bool) (string, *Reject) {
	raw := sc.text[start:sc.pos]
	if len(runs) == 0 {
		return raw, nil
	}
	for _, r := range runs {
		p := classifyRun(r.before, count)
		bad, ok := CheckRun(sc.spec, g, p, r.n)
		// Rust permits 0x_1 without permitting _1.
		if !ok && bad == PositionLeading && afterPrefix && sc.spec.Has(BasePrefixTrailingSeparator) {
			bad, ok = PositionConsecutive, r.n == 1 || SeparatorAllowed(sc.spec, g, PositionConsecutive)
		}
		if !ok {
			off := r.at
			if bad == PositionConsecutive {
				off++
			}
			return "", &Reject{Code: CodeInvalidSeparatorPosition, Offset: off, Group: g, Position: bad}
		}
	}
	digits := make([]byte, 0, count)
	for i := 0; i < len(raw); i++ {
		if raw[i] != sc.spec.Separator {
			digits = append(digits, raw[i])
		}
	}
	return string(digits), nil
}

func (sc *scanner) integerRules(c Components) *Reject {
	s := sc.spec
	if c.Integer == "" && (s.Has(RequiredIntegerDigits) || s.Has(RequiredMantissaDigits)) {
		return rejectGroup(CodeEmptyRequiredDigits, sc.intAt, GroupInteger)
	}
	if c.Base == Decimal && s.Has(NoIntegerLeadingZeros) && hasLeadingZero(c.Integer) {
		return rejectGroup(CodeLeadingZeros, sc.intAt, GroupInteger)
	}
	return nil
}

func (sc *scanner) floatRules(c Components) *Reject {
	s := sc.spec
	end := len(sc.text)
	mantissaEmpty := c.Integer == "" && c.Fraction == ""
	fractionEmpty := c.HasPoint && c.Fraction == ""

	if c.Integer == "" && s.Has(RequiredIntegerDigits) {
		return rejectGroup(CodeEmptyRequiredDigits, sc.intAt, GroupInteger)
	}
	if fractionEmpty && s.Has(RequiredFractionDigits) {
		return rejectGroup(CodeEmptyRequiredDigits, sc.fracAt, GroupFraction)
	}
	if mantissaEmpty && s.Has(RequiredMantissaDigits) {
		return rejectGroup(CodeEmptyRequiredDigits, sc.intAt, GroupMantissa)
	}
	if c.HasExponent {
		if s.Has(NoExponentNotation) {
			return rejectGroup(CodeExponentDisallowed, sc.expAt, GroupExponent)
		}
		if !c.HasPoint && s.Has(NoExponentWithoutFraction) {
			return &Reject{Code: CodeExponentDisallowed, Offset: sc.expAt, Group: GroupExponent, Hint: "exponent needs a fraction"}
		}
		if c.Exponent == "" && s.Has(RequiredExponentDigits) {
			return rejectGroup(CodeEmptyRequiredDigits, sc.expDigitsAt, GroupExponent)
		}
		if c.Integer == "" && s.Has(RequireIntegerDigitsWithExponent) {
			return rejectGroup(CodeEmptyRequiredDigits, sc.intAt, GroupInteger)
		}
		if fractionEmpty && s.Has(RequireFractionDigitsWithExponent) {
			return rejectGroup(CodeEmptyRequiredDigits, sc.fracAt, GroupFraction)
		}
		if mantissaEmpty && s.Has(RequireMantissaDigitsWithExponent) {
			return rejectGroup(CodeEmptyRequiredDigits, sc.intAt, GroupMantissa)
		}
	} else if s.Has(RequiredExponentNotation) {
		return rejectGroup(CodeMissingExponent, end, GroupExponent)
	}
	if !c.HasPoint && !c.HasExponent && !s.Has(AllowIntegerFloats) {
		return reject(CodeIntegerOnly, end)
	}
	if s.Has(NoFloatLeadingZeros) && hasLeadingZero(c.Integer) {
		return rejectGroup(CodeLeadingZeros, sc.intAt, GroupInteger)
	}
	// overflow to infinity counts as a special value
	if s.Has(NoSpecialValues) {
		if f, _ := ExtractFloat(c); math.IsInf(f, 0) {
			return &Reject{Code: CodeFloatOverflow, Offset: sc.intAt, Group: GroupMantissa, Hint: "magnitude exceeds float64"}
		}
	}
	return nil
}

func hasLeadingZero(digits string) bool { return len(digits) > 1 && digits[0] == '0' }

func isPrefixLetter(c byte) bool { return c == 'x' || c == 'o' || c == 'b' }

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

func isDigit(c byte, b Base) bool { return digitValue(c) < int(b) }
