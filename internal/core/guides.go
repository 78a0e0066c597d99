package core

// HorizontalGuideLine is the horizontal part of a bracket pair guide.
type HorizontalGuideLine struct {
	// Top is true when the line is drawn at the top of the view line.
	Top bool
	// EndColumn is where the horizontal line ends.
	EndColumn int
}

// IndentGuide is one guide drawn on a line. Unused numeric fields are -1.
type IndentGuide struct {
	VisibleColumn  int
	Column         int
	ClassName      string
	HorizontalLine *HorizontalGuideLine

	// ForWrappedLinesAfterColumn restricts the guide to view lines after the
	// one containing this model column.
	ForWrappedLinesAfterColumn int
	// ForWrappedLinesBeforeOrAtColumn restricts the guide to view lines up to
	// the one containing this model column.
	ForWrappedLinesBeforeOrAtColumn int
}

// ActiveIndentGuide is the guide block surrounding a line.
type ActiveIndentGuide struct {
	StartLine int
	EndLine   int
	Indent    int
}

// HorizontalGuidesMode selects which bracket pairs get horizontal lines.
type HorizontalGuidesMode uint8

const (
	HorizontalGuidesNone HorizontalGuidesMode = iota
	HorizontalGuidesEnabledForActive
	HorizontalGuidesEnabled
)

// BracketGuideOptions configures bracket pair guide queries.
type BracketGuideOptions struct {
	IncludeInactive  bool
	HorizontalGuides HorizontalGuidesMode
	HighlightActive  bool
}
