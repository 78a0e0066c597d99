package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/logging"
)

// Lines maps model lines to view lines. Positions passed as view
// coordinates are clamped into the view; model coordinates are validated
// through the model.
type Lines interface {
	CoordinatesConverter() CoordinatesConverter
	Dispose()

	// CreateLineBreaksComputer returns a computer configured with the
	// current wrapping settings, for new or changed model lines.
	CreateLineBreaksComputer() linebreak.Computer

	OnModelFlushed()
	OnModelLinesDeleted(versionID, fromLine, toLine int) *LinesDeletedEvent
	OnModelLinesInserted(versionID, fromLine, toLine int, breaks []*linebreak.LineBreakData) *LinesInsertedEvent
	OnModelLineChanged(versionID, line int, data *linebreak.LineBreakData) (bool, *LinesChangedEvent, *LinesInsertedEvent, *LinesDeletedEvent)
	AcceptVersionID(versionID int)

	SetHiddenAreas(ranges []core.Range) bool
	HiddenAreas() []core.Range
	SetTabSize(tabSize int) bool
	SetWrappingSettings(opts linebreak.Options) bool

	ViewLineCount() int
	ViewLineContent(viewLine int) string
	ViewLineLength(viewLine int) int
	ViewLineMinColumn(viewLine int) int
	ViewLineMaxColumn(viewLine int) int
	ViewLineData(viewLine int) core.ViewLineData
	// ViewLinesData returns one entry per view line start..end. Entries whose
	// needed flag is false are nil; a nil needed slice means all.
	ViewLinesData(start, end int, needed []bool) []*core.ViewLineData

	ActiveIndentGuide(viewLine, minLine, maxLine int) core.ActiveIndentGuide
	ViewLinesIndentGuides(start, end int) []int
	ViewLinesBracketGuides(start, end int, active *core.Position, opts core.BracketGuideOptions) [][]core.IndentGuide
	DecorationsInRange(viewRange core.Range, filter core.DecorationFilter) []core.Decoration

	InjectedTextAt(viewPos core.Position) *core.InjectedText
	NormalizePosition(viewPos core.Position, affinity core.PositionAffinity) core.Position
	LineIndentColumn(viewLine int) int

	ConvertViewPositionToModelPosition(viewLine, viewColumn int) core.Position
	ConvertViewRangeToModelRange(viewRange core.Range) core.Range
	ConvertModelPositionToViewPosition(modelLine, modelColumn int, affinity core.PositionAffinity, allowZeroLine, belowHiddenRanges bool) core.Position
	ConvertModelRangeToViewRange(modelRange core.Range, affinity core.PositionAffinity) core.Range
	ValidateViewPosition(viewLine, viewColumn int, expected core.Position) core.Position
	ValidateViewRange(viewRange core.Range, expected core.Range) core.Range
	ViewLineNumberOfModelPosition(modelLine, modelColumn int) int
	ModelPositionIsVisible(modelLine, modelColumn int) bool
	ModelLineViewLineCount(modelLine int) int
}

// Option configures ProjectedLines and AsIsLines.
type Option func(*settings)

type settings struct {
	logger *logging.Logger
}

// WithLogger sets the logger used for stale-version drops and visibility
// repairs. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

func applyOptions(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	s.logger = logging.OrDiscard(s.logger)
	return s
}
