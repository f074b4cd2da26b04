package engine

// Group identifies a digit group of a number.
type Group int

const (
	GroupNone Group = iota
	GroupInteger
	GroupFraction
	GroupExponent
	// GroupMantissa is only reported by errors: integer and fraction digits together.
	GroupMantissa
)

func (g Group) String() string {
	switch g {
	case GroupInteger:
		return "integer"
	case GroupFraction:
		return "fraction"
	case GroupExponent:
		return "exponent"
	case GroupMantissa:
		return "mantissa"
	}
	return ""
}

// Position is where a separator run sits within its group.
type Position int

const (
	PositionNone Position = iota
	PositionInternal
	PositionLeading
	PositionTrailing
	PositionConsecutive
)

func (p Position) String() string {
	switch p {
	case PositionInternal:
		return "internal"
	case PositionLeading:
		return "leading"
	case PositionTrailing:
		return "trailing"
	case PositionConsecutive:
		return "consecutive"
	}
	return ""
}

// separatorTable maps (group, position) to the flag that permits it.
var separatorTable = [3][4]Flag{
	{IntegerInternalSeparator, IntegerLeadingSeparator, IntegerTrailingSeparator, IntegerConsecutiveSeparator},
	{FractionInternalSeparator, FractionLeadingSeparator, FractionTrailingSeparator, FractionConsecutiveSeparator},
	{ExponentInternalSeparator, ExponentLeadingSeparator, ExponentTrailingSeparator, ExponentConsecutiveSeparator},
}

// SeparatorFlag returns the toggle for (g, p), or 0 when the pair has none.
func SeparatorFlag(g Group, p Position) Flag {
	gi, pi := int(g-GroupInteger), int(p-PositionInternal)
	if gi < 0 || gi >= len(separatorTable) || pi < 0 || pi >= len(separatorTable[0]) {
		return 0
	}
	return separatorTable[gi][pi]
}

// SeparatorAllowed reports whether a separator may appear at p within g.
// A spec without a separator character never allows one.
func SeparatorAllowed(s *Spec, g Group, p Position) bool {
	if s.Separator == 0 {
		return false
	}
	f := SeparatorFlag(g, p)
	return f != 0 && s.Has(f)
}

// CheckRun validates a run of n separators at position p within g. When the
// run is illegal it returns the position that is not permitted.
func CheckRun(s *Spec, g Group, p Position, n int) (Position, bool) {
	if !SeparatorAllowed(s, g, p) {
		return p, false
	}
	if n > 1 && !SeparatorAllowed(s, g, PositionConsecutive) {
		return PositionConsecutive, false
	}
	return PositionNone, true
}

// classifyRun places a run given the digits seen before it and the group total.
func classifyRun(before, total int) Position {
	switch {
	case before == 0:
		return PositionLeading
	case before == total:
		return PositionTrailing
	}
	return PositionInternal
}
