package projection

import (
	"strings"

	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
)

// LineSource is the part of the model a projection reads.
type LineSource interface {
	LineContent(line int) string
	LineLength(line int) int
	LineMinColumn(line int) int
	LineMaxColumn(line int) int
}

// Projection is the wrap and visibility state of one model line. A nil
// break data means the line renders as exactly one unwrapped view line.
type Projection struct {
	data    *linebreak.LineBreakData
	visible bool
}

// New creates a projection.
func New(data *linebreak.LineBreakData, visible bool) Projection {
	return Projection{data: data, visible: visible}
}

// IsVisible returns false for lines inside a hidden area.
func (p Projection) IsVisible() bool {
	return p.visible
}

// SetVisible returns a projection with the same break data and the given
// visibility.
func (p Projection) SetVisible(visible bool) Projection {
	return Projection{data: p.data, visible: visible}
}

// Data returns the break data, for reuse when only the wrapping column
// changes.
func (p Projection) Data() *linebreak.LineBreakData {
	return p.data
}

// ViewLineCount returns 0 when hidden, otherwise the number of wrapped
// sub-lines (at least 1).
func (p Projection) ViewLineCount() int {
	if !p.visible {
		return 0
	}
	if p.data == nil {
		return 1
	}
	return max(1, p.data.OutputLineCount())
}

// ViewLineContent returns the text of a sub-line, including the wrapped
// indent and injected text.
func (p Projection) ViewLineContent(src LineSource, line, sub int) string {
	p.assertVisible()
	if p.data == nil {
		return src.LineContent(line)
	}

	text := []rune(linebreak.ApplyInjections(src.LineContent(line), p.data.InjectionOffsets, p.data.InjectedTexts))
	start := min(p.data.LineStartOffset(sub), len(text))
	end := min(p.data.BreakOffsets[sub], len(text))
	content := string(text[start:end])
	if sub > 0 && p.data.WrappedTextIndentLength > 0 {
		content = strings.Repeat(" ", p.data.WrappedTextIndentLength) + content
	}
	return content
}

// ViewLineLength returns the length of a sub-line in runes.
func (p Projection) ViewLineLength(src LineSource, line, sub int) int {
	p.assertVisible()
	if p.data == nil {
		return src.LineLength(line)
	}
	return p.data.LineLength(sub)
}

// ViewLineMinColumn returns the first valid column of a sub-line.
func (p Projection) ViewLineMinColumn(src LineSource, line, sub int) int {
	p.assertVisible()
	if p.data == nil {
		return src.LineMinColumn(line)
	}
	return p.data.MinOutputOffset(sub) + 1
}

// ViewLineMaxColumn returns the last valid column of a sub-line.
func (p Projection) ViewLineMaxColumn(src LineSource, line, sub int) int {
	p.assertVisible()
	if p.data == nil {
		return src.LineMaxColumn(line)
	}
	return p.data.MaxOutputOffset(sub) + 1
}

// ViewLineData returns the rendering payload of a sub-line.
func (p Projection) ViewLineData(src LineSource, line, sub int) core.ViewLineData {
	p.assertVisible()
	d := core.ViewLineData{
		Content:   p.ViewLineContent(src, line, sub),
		MinColumn: p.ViewLineMinColumn(src, line, sub),
		MaxColumn: p.ViewLineMaxColumn(src, line, sub),
	}
	if p.data != nil {
		d.ContinuesWithWrappedLine = sub+1 < p.data.OutputLineCount()
		d.StartVisibleColumn = p.data.StartVisibleColumn(sub)
	}
	return d
}

// ModelColumnOfViewPosition maps a view column of a sub-line back to a
// model column.
func (p Projection) ModelColumnOfViewPosition(sub, viewColumn int) int {
	p.assertVisible()
	if p.data == nil {
		return viewColumn
	}
	return p.data.TranslateToInputOffset(sub, viewColumn-1) + 1
}

// ViewPositionOfModelPosition maps a model column to a view position.
// deltaLine is the view line number of the projection's first sub-line.
func (p Projection) ViewPositionOfModelPosition(deltaLine, modelColumn int, affinity core.PositionAffinity) core.Position {
	p.assertVisible()
	if p.data == nil {
		return core.Position{Line: deltaLine, Column: modelColumn}
	}
	return p.data.TranslateToOutputPosition(modelColumn-1, affinity).ToPosition(deltaLine)
}

// ViewLineNumberOfModelPosition returns the view line a model column lands
// on.
func (p Projection) ViewLineNumberOfModelPosition(deltaLine, modelColumn int) int {
	p.assertVisible()
	if p.data == nil {
		return deltaLine
	}
	return deltaLine + p.data.TranslateToOutputPosition(modelColumn-1, core.AffinityNone).OutputLineIndex
}

// NormalizePosition moves a view position out of injected text or across a
// wrap boundary according to affinity.
func (p Projection) NormalizePosition(sub int, pos core.Position, affinity core.PositionAffinity) core.Position {
	p.assertVisible()
	if p.data == nil {
		return pos
	}
	base := pos.Line - sub
	return p.data.NormalizeOutputPosition(sub, pos.Column-1, affinity).ToPosition(base)
}

// InjectedTextAt returns the injected text at a view column, or nil.
func (p Projection) InjectedTextAt(sub, viewColumn int) *core.InjectedText {
	p.assertVisible()
	if p.data == nil {
		return nil
	}
	return p.data.InjectedTextAt(sub, viewColumn-1)
}

func (p Projection) assertVisible() {
	if !p.visible {
		panic("projection: view query on a hidden line")
	}
}
