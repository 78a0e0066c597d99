package core

// PositionAffinity resolves which view position a model position maps to
// when it sits exactly on a wrap boundary or next to injected text.
type PositionAffinity uint8

const (
	// AffinityNone uses the default: the start of the next sub-line at a
	// wrap boundary, the left edge of injected text.
	AffinityNone PositionAffinity = iota

	// AffinityLeft prefers the end of the previous sub-line.
	AffinityLeft

	// AffinityRight prefers the start of the next sub-line.
	AffinityRight
)

// String returns the affinity name.
func (a PositionAffinity) String() string {
	switch a {
	case AffinityNone:
		return "none"
	case AffinityLeft:
		return "left"
	case AffinityRight:
		return "right"
	default:
		return "unknown"
	}
}

// IndentGuideRepeat decides whether an indent guide value continues on the
// wrapped continuations of a model line.
type IndentGuideRepeat uint8

const (
	// GuideRepeatBlockNone repeats the value on every continuation.
	GuideRepeatBlockNone IndentGuideRepeat = iota

	// GuideRepeatBlockSubsequent keeps the value on the first view line only.
	GuideRepeatBlockSubsequent

	// GuideRepeatBlockAll suppresses the value on every view line.
	GuideRepeatBlockAll
)

// String returns the repeat policy name.
func (r IndentGuideRepeat) String() string {
	switch r {
	case GuideRepeatBlockNone:
		return "blockNone"
	case GuideRepeatBlockSubsequent:
		return "blockSubsequent"
	case GuideRepeatBlockAll:
		return "blockAll"
	default:
		return "unknown"
	}
}

// BlockIndex returns the index of the first view line, among count view
// lines of one model line, whose guide value is suppressed. count means
// nothing is suppressed.
func (r IndentGuideRepeat) BlockIndex(count int) int {
	switch r {
	case GuideRepeatBlockAll:
		return 0
	case GuideRepeatBlockSubsequent:
		return 1
	default:
		return count
	}
}
