package engine

import (
	"strings"

	"golang.org/x/text/cases"
)

// Special tags a non-finite value.
type Special int

const (
	SpecialNone Special = iota
	SpecialNaN
	SpecialInfinity
)

func (s Special) String() string {
	switch s {
	case SpecialNaN:
		return "nan"
	case SpecialInfinity:
		return "infinity"
	}
	return ""
}

type spelling struct {
	text    string
	special Special
}

func spellings(s *Spec) [3]spelling {
	return [3]spelling{
		{s.NaN, SpecialNaN},
		{s.Inf, SpecialInfinity},
		{s.Infinity, SpecialInfinity},
	}
}

// fold returns the case-folded form of text. A Caser is not safe for
// concurrent use, so one is made per call.
func fold(text string) string { return cases.Fold().String(text) }

// LookupSpecial matches the whole text against the spec's spellings.
func LookupSpecial(s *Spec, text string) (Special, bool) {
	if text == "" {
		return SpecialNone, false
	}
	sensitive := s.Has(CaseSensitiveSpecialValues)
	var folded string
	if !sensitive {
		folded = fold(text)
	}
	for _, sp := range spellings(s) {
		if sp.text == "" {
			continue
		}
		if sensitive {
			if text == sp.text {
				return sp.special, true
			}
			continue
		}
		if folded == fold(sp.text) {
			return sp.special, true
		}
	}
	return SpecialNone, false
}

// resemblesSpecial reports texts that look like a misspelt special value:
// a spelling followed by junk ("infx") or a spelling broken up by
// non-letters ("na_n"). Case is ignored.
func resemblesSpecial(s *Spec, text string) bool {
	folded := fold(text)
	var letters strings.Builder
	for i := 0; i < len(folded); i++ {
		if isLetter(folded[i]) {
			letters.WriteByte(folded[i])
		}
	}
	squeezed := letters.String()
	for _, sp := range spellings(s) {
		if sp.text == "" {
			continue
		}
		want := fold(sp.text)
		if strings.HasPrefix(folded, want) || strings.HasPrefix(squeezed, want) {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool { return c|0x20 >= 'a' && c|0x20 <= 'z' }
