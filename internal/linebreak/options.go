package linebreak

// WrappingIndent controls the indentation of wrapped continuation lines.
type WrappingIndent uint8

const (
	// IndentNone starts continuations at column 1.
	IndentNone WrappingIndent = iota
	// IndentSame aligns continuations with the line's indentation.
	IndentSame
	// IndentIndent adds one tab stop to the line's indentation.
	IndentIndent
	// IndentDeep adds two tab stops to the line's indentation.
	IndentDeep
)

// ParseWrappingIndent parses a wrapping indent name. Unknown names map to
// IndentSame.
func ParseWrappingIndent(s string) WrappingIndent {
	switch s {
	case "none":
		return IndentNone
	case "indent":
		return IndentIndent
	case "deepIndent":
		return IndentDeep
	default:
		return IndentSame
	}
}

// String returns the wrapping indent name.
func (w WrappingIndent) String() string {
	switch w {
	case IndentNone:
		return "none"
	case IndentSame:
		return "same"
	case IndentIndent:
		return "indent"
	case IndentDeep:
		return "deepIndent"
	default:
		return "unknown"
	}
}

// WordBreak controls break opportunities inside CJK text.
type WordBreak uint8

const (
	// WordBreakNormal allows breaks around wide characters.
	WordBreakNormal WordBreak = iota
	// WordBreakKeepAll only breaks at whitespace.
	WordBreakKeepAll
)

// ParseWordBreak parses a word break name. Unknown names map to
// WordBreakNormal.
func ParseWordBreak(s string) WordBreak {
	if s == "keepAll" {
		return WordBreakKeepAll
	}
	return WordBreakNormal
}

// Strategy selects which computer factory produces line breaks.
type Strategy uint8

const (
	// StrategySimple assumes every character has a fixed cell width.
	StrategySimple Strategy = iota
	// StrategyAdvanced measures rendered text.
	StrategyAdvanced
)

// ParseStrategy parses a wrapping strategy name. Unknown names map to
// StrategySimple.
func ParseStrategy(s string) Strategy {
	if s == "advanced" {
		return StrategyAdvanced
	}
	return StrategySimple
}

// FontInfo identifies the font used to measure text.
type FontInfo struct {
	Family                         string
	Size                           float64
	TypicalHalfwidthCharacterWidth float64
}

// Options are the wrapping settings a Computer is created with.
type Options struct {
	Font     FontInfo
	TabSize  int
	Strategy Strategy

	// WrappingColumn is the column lines wrap at; 0 or less disables
	// wrapping.
	WrappingColumn int

	WrappingIndent         WrappingIndent
	WordBreak              WordBreak
	WrapOnEscapedLineFeeds bool
}

// DefaultOptions returns options with wrapping disabled.
func DefaultOptions() Options {
	return Options{
		Font:           FontInfo{Family: "monospace", Size: 14, TypicalHalfwidthCharacterWidth: 1},
		TabSize:        4,
		Strategy:       StrategySimple,
		WrappingColumn: 0,
		WrappingIndent: IndentSame,
		WordBreak:      WordBreakNormal,
	}
}

// OnlyWrappingColumnDiffers reports whether o and other differ in the
// wrapping column and nothing else that affects break computation. Tab size
// is compared separately by the view model.
func (o Options) OnlyWrappingColumnDiffers(other Options) bool {
	return o.Font == other.Font &&
		o.Strategy == other.Strategy &&
		o.WrappingColumn != other.WrappingColumn &&
		o.WrappingIndent == other.WrappingIndent &&
		o.WordBreak == other.WordBreak &&
		o.WrapOnEscapedLineFeeds == other.WrapOnEscapedLineFeeds
}
