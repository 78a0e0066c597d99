package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/logging"
)

// AsIsLines shows the model without wrapping or folding: every model line
// is exactly one view line.
type AsIsLines struct {
	model     core.Model
	converter identityConverter
	log       *logging.Logger
}

// NewAsIsLines creates identity lines over model.
func NewAsIsLines(model core.Model, options ...Option) *AsIsLines {
	s := applyOptions(options)
	return &AsIsLines{
		model:     model,
		converter: identityConverter{model: model},
		log:       s.logger.WithComponent("viewmodel"),
	}
}

// CoordinatesConverter returns the identity converter.
func (l *AsIsLines) CoordinatesConverter() CoordinatesConverter {
	return l.converter
}

// Dispose is a no-op.
func (l *AsIsLines) Dispose() {}

// CreateLineBreaksComputer returns a computer answering nil for every
// request.
func (l *AsIsLines) CreateLineBreaksComputer() linebreak.Computer {
	return &nullComputer{}
}

type nullComputer struct {
	n int
}

func (c *nullComputer) AddRequest(string, []core.LineInjectedText, *linebreak.LineBreakData) {
	c.n++
}

func (c *nullComputer) Finalize() []*linebreak.LineBreakData {
	out := make([]*linebreak.LineBreakData, c.n)
	c.n = 0
	return out
}

func (l *AsIsLines) OnModelFlushed() {}

func (l *AsIsLines) OnModelLinesDeleted(_, fromLine, toLine int) *LinesDeletedEvent {
	return &LinesDeletedEvent{FromLine: fromLine, ToLine: toLine}
}

func (l *AsIsLines) OnModelLinesInserted(_, fromLine, toLine int, _ []*linebreak.LineBreakData) *LinesInsertedEvent {
	return &LinesInsertedEvent{FromLine: fromLine, ToLine: toLine}
}

func (l *AsIsLines) OnModelLineChanged(_, line int, _ *linebreak.LineBreakData) (bool, *LinesChangedEvent, *LinesInsertedEvent, *LinesDeletedEvent) {
	return false, &LinesChangedEvent{FromLine: line, Count: 1}, nil, nil
}

func (l *AsIsLines) AcceptVersionID(int) {}

// SetHiddenAreas always reports no change; AsIsLines cannot fold.
func (l *AsIsLines) SetHiddenAreas(ranges []core.Range) bool {
	if len(ranges) > 0 {
		l.log.Debug("ignoring %d hidden areas on unprojected lines", len(ranges))
	}
	return false
}

func (l *AsIsLines) HiddenAreas() []core.Range { return nil }

func (l *AsIsLines) SetTabSize(int) bool { return false }

func (l *AsIsLines) SetWrappingSettings(linebreak.Options) bool { return false }

func (l *AsIsLines) ViewLineCount() int {
	return l.model.LineCount()
}

func (l *AsIsLines) ViewLineContent(viewLine int) string {
	return l.model.LineContent(viewLine)
}

func (l *AsIsLines) ViewLineLength(viewLine int) int {
	return l.model.LineLength(viewLine)
}

func (l *AsIsLines) ViewLineMinColumn(viewLine int) int {
	return l.model.LineMinColumn(viewLine)
}

func (l *AsIsLines) ViewLineMaxColumn(viewLine int) int {
	return l.model.LineMaxColumn(viewLine)
}

func (l *AsIsLines) ViewLineData(viewLine int) core.ViewLineData {
	return core.ViewLineData{
		Content:   l.model.LineContent(viewLine),
		MinColumn: l.model.LineMinColumn(viewLine),
		MaxColumn: l.model.LineMaxColumn(viewLine),
	}
}

func (l *AsIsLines) ViewLinesData(start, end int, needed []bool) []*core.ViewLineData {
	if end < start {
		return nil
	}
	out := make([]*core.ViewLineData, end-start+1)
	for i := range out {
		if needed == nil || (i < len(needed) && needed[i]) {
			d := l.ViewLineData(start + i)
			out[i] = &d
		}
	}
	return out
}

func (l *AsIsLines) ActiveIndentGuide(viewLine, _, _ int) core.ActiveIndentGuide {
	return core.ActiveIndentGuide{StartLine: viewLine, EndLine: viewLine}
}

func (l *AsIsLines) ViewLinesIndentGuides(start, end int) []int {
	if end < start {
		return nil
	}
	return make([]int, end-start+1)
}

func (l *AsIsLines) ViewLinesBracketGuides(start, end int, _ *core.Position, _ core.BracketGuideOptions) [][]core.IndentGuide {
	if end < start {
		return nil
	}
	out := make([][]core.IndentGuide, end-start+1)
	for i := range out {
		out[i] = []core.IndentGuide{}
	}
	return out
}

func (l *AsIsLines) DecorationsInRange(viewRange core.Range, filter core.DecorationFilter) []core.Decoration {
	return l.model.DecorationsInRange(viewRange, filter)
}

func (l *AsIsLines) InjectedTextAt(core.Position) *core.InjectedText { return nil }

func (l *AsIsLines) NormalizePosition(viewPos core.Position, affinity core.PositionAffinity) core.Position {
	return l.model.NormalizePosition(viewPos, affinity)
}

func (l *AsIsLines) LineIndentColumn(viewLine int) int {
	return l.model.LineIndentColumn(viewLine)
}

func (l *AsIsLines) ConvertViewPositionToModelPosition(viewLine, viewColumn int) core.Position {
	return l.converter.ConvertViewPositionToModelPosition(core.NewPosition(viewLine, viewColumn))
}

func (l *AsIsLines) ConvertViewRangeToModelRange(viewRange core.Range) core.Range {
	return l.converter.ConvertViewRangeToModelRange(viewRange)
}

func (l *AsIsLines) ConvertModelPositionToViewPosition(modelLine, modelColumn int, affinity core.PositionAffinity, _, _ bool) core.Position {
	return l.converter.ConvertModelPositionToViewPosition(core.NewPosition(modelLine, modelColumn), affinity)
}

func (l *AsIsLines) ConvertModelRangeToViewRange(modelRange core.Range, affinity core.PositionAffinity) core.Range {
	return l.converter.ConvertModelRangeToViewRange(modelRange, affinity)
}

func (l *AsIsLines) ValidateViewPosition(viewLine, viewColumn int, expected core.Position) core.Position {
	return l.converter.ValidateViewPosition(core.NewPosition(viewLine, viewColumn), expected)
}

func (l *AsIsLines) ValidateViewRange(viewRange core.Range, expected core.Range) core.Range {
	return l.converter.ValidateViewRange(viewRange, expected)
}

func (l *AsIsLines) ViewLineNumberOfModelPosition(modelLine, modelColumn int) int {
	return l.converter.ViewLineNumberOfModelPosition(modelLine, modelColumn)
}

func (l *AsIsLines) ModelPositionIsVisible(modelLine, modelColumn int) bool {
	return l.converter.ModelPositionIsVisible(core.NewPosition(modelLine, modelColumn))
}

func (l *AsIsLines) ModelLineViewLineCount(modelLine int) int {
	return l.converter.ModelLineViewLineCount(modelLine)
}

var (
	_ Lines = (*ProjectedLines)(nil)
	_ Lines = (*AsIsLines)(nil)
)
