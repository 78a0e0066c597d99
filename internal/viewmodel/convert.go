package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
)

// ConvertViewPositionToModelPosition maps a view position to a validated
// model position. The view line is clamped first.
func (l *ProjectedLines) ConvertViewPositionToModelPosition(viewLine, viewColumn int) core.Position {
	idx, sub := l.locate(viewLine)
	column := l.projections[idx].ModelColumnOfViewPosition(sub, viewColumn)
	return l.model.ValidatePosition(core.NewPosition(idx+1, column))
}

// ConvertViewRangeToModelRange maps both ends of a view range.
func (l *ProjectedLines) ConvertViewRangeToModelRange(viewRange core.Range) core.Range {
	start := l.ConvertViewPositionToModelPosition(viewRange.StartLine, viewRange.StartColumn)
	end := l.ConvertViewPositionToModelPosition(viewRange.EndLine, viewRange.EndColumn)
	return core.RangeFromPositions(start, end)
}

// ConvertModelPositionToViewPosition maps a model position to a view
// position. A position on a hidden line moves to the end of the nearest
// visible line above it, or with belowHiddenRanges to the start of the
// nearest visible line below it. If no visible line can be reached the
// result is line 1, or line 0 when allowZeroLine is set.
func (l *ProjectedLines) ConvertModelPositionToViewPosition(modelLine, modelColumn int, affinity core.PositionAffinity, allowZeroLine, belowHiddenRanges bool) core.Position {
	valid := l.model.ValidatePosition(core.NewPosition(modelLine, modelColumn))

	idx, moved, down := valid.Line-1, false, false
	if belowHiddenRanges {
		for idx < len(l.projections) && !l.projections[idx].IsVisible() {
			idx++
			moved, down = true, true
		}
		if idx == len(l.projections) {
			idx, moved, down = valid.Line-1, false, false
		}
	}
	if !down {
		for idx > 0 && !l.projections[idx].IsVisible() {
			idx--
			moved = true
		}
	}

	p := l.projections[idx]
	if !p.IsVisible() {
		if allowZeroLine {
			return core.NewPosition(0, 1)
		}
		return core.NewPosition(1, 1)
	}

	delta := l.viewLinesBefore(idx) + 1
	switch {
	case !moved:
		return p.ViewPositionOfModelPosition(delta, valid.Column, affinity)
	case down:
		return p.ViewPositionOfModelPosition(delta, 1, affinity)
	default:
		return p.ViewPositionOfModelPosition(delta, l.model.LineMaxColumn(idx+1), affinity)
	}
}

// ConvertModelRangeToViewRange maps a model range to the view. An empty
// range maps with affinity; a non-empty one keeps both ends inside it.
func (l *ProjectedLines) ConvertModelRangeToViewRange(modelRange core.Range, affinity core.PositionAffinity) core.Range {
	if modelRange.IsEmpty() {
		start := l.ConvertModelPositionToViewPosition(modelRange.StartLine, modelRange.StartColumn, affinity, false, false)
		return core.EmptyRangeAt(start)
	}
	start := l.ConvertModelPositionToViewPosition(modelRange.StartLine, modelRange.StartColumn, core.AffinityRight, false, false)
	end := l.ConvertModelPositionToViewPosition(modelRange.EndLine, modelRange.EndColumn, core.AffinityLeft, false, false)
	return core.RangeFromPositions(start, end)
}

// ViewLineNumberOfModelPosition returns the view line showing a model
// position, or the last view line above it when the line is hidden.
func (l *ProjectedLines) ViewLineNumberOfModelPosition(modelLine, modelColumn int) int {
	valid := l.model.ValidatePosition(core.NewPosition(modelLine, modelColumn))
	idx := valid.Line - 1
	if p := l.projections[idx]; p.IsVisible() {
		return p.ViewLineNumberOfModelPosition(l.viewLinesBefore(idx)+1, valid.Column)
	}

	for idx > 0 && !l.projections[idx].IsVisible() {
		idx--
	}
	p := l.projections[idx]
	if !p.IsVisible() {
		return 1
	}
	return p.ViewLineNumberOfModelPosition(l.viewLinesBefore(idx)+1, l.model.LineMaxColumn(idx+1))
}

// ModelPositionIsVisible reports whether a model line is shown. Lines
// outside the model are not.
func (l *ProjectedLines) ModelPositionIsVisible(modelLine, _ int) bool {
	if modelLine < 1 || modelLine > len(l.projections) {
		return false
	}
	return l.projections[modelLine-1].IsVisible()
}

// ModelLineViewLineCount returns how many view lines a model line renders
// as. Lines outside the model count as 1.
func (l *ProjectedLines) ModelLineViewLineCount(modelLine int) int {
	if modelLine < 1 || modelLine > len(l.projections) {
		return 1
	}
	return l.projections[modelLine-1].ViewLineCount()
}

// ValidateViewPosition clamps a view position and checks that it still maps
// to expected. When it does not, because folding or decorations changed
// since the view position was computed, the view position is recomputed
// from expected.
func (l *ProjectedLines) ValidateViewPosition(viewLine, viewColumn int, expected core.Position) core.Position {
	viewLine = l.toValidViewLine(viewLine)
	idx, sub := l.locate(viewLine)
	p := l.projections[idx]

	minCol := p.ViewLineMinColumn(l.model, idx+1, sub)
	maxCol := p.ViewLineMaxColumn(l.model, idx+1, sub)
	viewColumn = min(max(viewColumn, minCol), maxCol)

	modelColumn := p.ModelColumnOfViewPosition(sub, viewColumn)
	computed := l.model.ValidatePosition(core.NewPosition(idx+1, modelColumn))
	if computed == expected {
		return core.NewPosition(viewLine, viewColumn)
	}
	return l.ConvertModelPositionToViewPosition(expected.Line, expected.Column, core.AffinityNone, false, false)
}

// ValidateViewRange validates both ends of a view range.
func (l *ProjectedLines) ValidateViewRange(viewRange core.Range, expected core.Range) core.Range {
	start := l.ValidateViewPosition(viewRange.StartLine, viewRange.StartColumn, expected.Start())
	end := l.ValidateViewPosition(viewRange.EndLine, viewRange.EndColumn, expected.End())
	return core.RangeFromPositions(start, end)
}
