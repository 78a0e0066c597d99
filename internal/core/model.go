package core

// Model is the text buffer consumed by the view-model engine. The engine
// only reads content and decorations; it writes decorations solely for its
// own fold markers.
type Model interface {
	LinesContent() []string
	LineCount() int
	LineContent(line int) string
	LineLength(line int) int
	LineMinColumn(line int) int
	LineMaxColumn(line int) int

	// LineIndentColumn returns the column after the leading whitespace.
	LineIndentColumn(line int) int

	ValidatePosition(p Position) Position
	ValidateRange(r Range) Range

	VersionID() int

	// DecorationRange returns the current range of a decoration.
	DecorationRange(id string) (Range, bool)
	DecorationsInRange(r Range, filter DecorationFilter) []Decoration
	// DeltaDecorations removes oldIDs, adds the new decorations and returns
	// their ids in order.
	DeltaDecorations(oldIDs []string, decorations []NewDecoration) []string

	// InjectedTexts returns every injected text, sorted by line then column.
	InjectedTexts() []LineInjectedText

	NormalizePosition(p Position, affinity PositionAffinity) Position

	Guides() Guides
}

// Guides answers indent and bracket guide queries in model coordinates.
type Guides interface {
	ActiveIndentGuide(line, minLine, maxLine int) ActiveIndentGuide
	// LinesIndentGuides returns one indent level per line startLine..endLine.
	LinesIndentGuides(startLine, endLine int) []int
	// LinesBracketGuides returns the guides per line startLine..endLine.
	LinesBracketGuides(startLine, endLine int, active *Position, opts BracketGuideOptions) [][]IndentGuide
}
