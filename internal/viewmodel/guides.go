package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
)

// ActiveIndentGuide returns the active indent guide block around a view
// line, in view lines.
func (l *ProjectedLines) ActiveIndentGuide(viewLine, minLine, maxLine int) core.ActiveIndentGuide {
	viewLine = l.toValidViewLine(viewLine)
	minLine = l.toValidViewLine(minLine)
	maxLine = l.toValidViewLine(maxLine)

	modelPos := l.ConvertViewPositionToModelPosition(viewLine, l.ViewLineMinColumn(viewLine))
	modelMin := l.ConvertViewPositionToModelPosition(minLine, l.ViewLineMinColumn(minLine))
	modelMax := l.ConvertViewPositionToModelPosition(maxLine, l.ViewLineMinColumn(maxLine))
	guide := l.model.Guides().ActiveIndentGuide(modelPos.Line, modelMin.Line, modelMax.Line)

	start := l.ConvertModelPositionToViewPosition(guide.StartLine, 1, core.AffinityNone, false, false)
	end := l.ConvertModelPositionToViewPosition(guide.EndLine, l.model.LineMaxColumn(guide.EndLine), core.AffinityNone, false, false)
	return core.ActiveIndentGuide{StartLine: start.Line, EndLine: end.Line, Indent: guide.Indent}
}

// ViewLinesIndentGuides returns one indent guide level per view line
// start..end. The model is queried once per run of visible lines. A wrapped
// line whose continuations start at column 1 blocks its guides on those
// continuations.
func (l *ProjectedLines) ViewLinesIndentGuides(start, end int) []int {
	start, end = l.toValidViewLine(start), l.toValidViewLine(end)
	if end < start {
		return nil
	}
	modelStart := l.ConvertViewPositionToModelPosition(start, l.ViewLineMinColumn(start))
	modelEnd := l.ConvertViewPositionToModelPosition(end, l.ViewLineMaxColumn(end))

	guides := l.model.Guides()
	var levels, repeatCounts []int
	var repeats []core.IndentGuideRepeat
	runStart := 0
	for idx := modelStart.Line - 1; idx <= modelEnd.Line-1; idx++ {
		p := l.projections[idx]
		if !p.IsVisible() {
			if runStart != 0 {
				levels = append(levels, guides.LinesIndentGuides(runStart, idx)...)
				runStart = 0
			}
			continue
		}

		column := 1
		if idx == modelStart.Line-1 {
			column = modelStart.Column
		}
		firstSub := p.ViewLineNumberOfModelPosition(0, column)
		lastSub := p.ViewLineNumberOfModelPosition(0, l.model.LineMaxColumn(idx+1))
		count := lastSub - firstSub + 1

		repeat := core.GuideRepeatBlockNone
		if count > 1 && p.ViewLineMinColumn(l.model, idx+1, lastSub) == 1 {
			repeat = core.GuideRepeatBlockAll
			if firstSub == 0 {
				repeat = core.GuideRepeatBlockSubsequent
			}
		}
		repeatCounts = append(repeatCounts, count)
		repeats = append(repeats, repeat)
		if runStart == 0 {
			runStart = idx + 1
		}
	}
	if runStart != 0 {
		levels = append(levels, guides.LinesIndentGuides(runStart, modelEnd.Line)...)
	}

	out := make([]int, end-start+1)
	cur := 0
	for i, level := range levels {
		if i >= len(repeatCounts) || cur >= len(out) {
			break
		}
		count := min(len(out)-cur, repeatCounts[i])
		block := repeats[i].BlockIndex(count)
		for j := 0; j < count; j++ {
			if j == block {
				level = 0
			}
			out[cur] = level
			cur++
		}
	}
	return out
}

type viewLineGroup struct {
	modelRange core.Range
	viewLines  []core.ViewLineInfo
}

// viewLineInfosGroupedByModelRanges splits view lines start..end into runs
// of consecutive visible model lines.
func (l *ProjectedLines) viewLineInfosGroupedByModelRanges(start, end int) []viewLineGroup {
	first := l.ViewLineInfo(start)
	last := l.ViewLineInfo(end)

	var groups []viewLineGroup
	var infos []core.ViewLineInfo
	runStart := l.modelStartPositionOfViewLine(first)
	open := true
	for line := first.ModelLine; line <= last.ModelLine; line++ {
		p := l.projections[line-1]
		if p.IsVisible() {
			from, to := 0, p.ViewLineCount()
			if line == first.ModelLine {
				from = first.SublineIndex
			}
			if line == last.ModelLine {
				to = last.SublineIndex + 1
			}
			for sub := from; sub < to; sub++ {
				infos = append(infos, core.ViewLineInfo{ModelLine: line, SublineIndex: sub})
			}
		}

		switch {
		case !p.IsVisible() && open:
			runEnd := core.NewPosition(line-1, l.model.LineMaxColumn(line-1)+1)
			groups = append(groups, viewLineGroup{modelRange: core.RangeFromPositions(runStart, runEnd), viewLines: infos})
			infos, open = nil, false
		case p.IsVisible() && !open:
			runStart, open = core.NewPosition(line, 1), true
		}
	}
	if open {
		groups = append(groups, viewLineGroup{
			modelRange: core.RangeFromPositions(runStart, l.modelEndPositionOfViewLine(last)),
			viewLines:  infos,
		})
	}
	return groups
}

func (l *ProjectedLines) minColumnOfViewLine(info core.ViewLineInfo) int {
	return l.projections[info.ModelLine-1].ViewLineMinColumn(l.model, info.ModelLine, info.SublineIndex)
}

func (l *ProjectedLines) maxColumnOfViewLine(info core.ViewLineInfo) int {
	return l.projections[info.ModelLine-1].ViewLineMaxColumn(l.model, info.ModelLine, info.SublineIndex)
}

func (l *ProjectedLines) modelStartPositionOfViewLine(info core.ViewLineInfo) core.Position {
	p := l.projections[info.ModelLine-1]
	column := p.ModelColumnOfViewPosition(info.SublineIndex, l.minColumnOfViewLine(info))
	return l.model.ValidatePosition(core.NewPosition(info.ModelLine, column))
}

func (l *ProjectedLines) modelEndPositionOfViewLine(info core.ViewLineInfo) core.Position {
	p := l.projections[info.ModelLine-1]
	column := p.ModelColumnOfViewPosition(info.SublineIndex, l.maxColumnOfViewLine(info))
	return l.model.ValidatePosition(core.NewPosition(info.ModelLine, column))
}

// ViewLinesBracketGuides returns the bracket pair guides of view lines
// start..end. Model columns are converted to view columns and guides
// restricted to some wrapped lines are dropped elsewhere. VisibleColumn is
// passed through unchanged: it stays a model visible column even on
// wrapped continuations.
func (l *ProjectedLines) ViewLinesBracketGuides(start, end int, active *core.Position, opts core.BracketGuideOptions) [][]core.IndentGuide {
	start, end = l.toValidViewLine(start), l.toValidViewLine(end)

	var modelActive *core.Position
	if active != nil {
		p := l.ConvertViewPositionToModelPosition(active.Line, active.Column)
		modelActive = &p
	}

	var out [][]core.IndentGuide
	for _, group := range l.viewLineInfosGroupedByModelRanges(start, end) {
		first := group.modelRange.StartLine
		perLine := l.model.Guides().LinesBracketGuides(first, group.modelRange.EndLine, modelActive, opts)

		for _, info := range group.viewLines {
			var modelGuides []core.IndentGuide
			if k := info.ModelLine - first; k < len(perLine) {
				modelGuides = perLine[k]
			}
			guides := make([]core.IndentGuide, 0, len(modelGuides))
			for _, g := range modelGuides {
				if v, ok := l.remapBracketGuide(g, info); ok {
					guides = append(guides, v)
				}
			}
			out = append(out, guides)
		}
	}
	return out
}

func (l *ProjectedLines) remapBracketGuide(g core.IndentGuide, info core.ViewLineInfo) (core.IndentGuide, bool) {
	p := l.projections[info.ModelLine-1]
	sub := info.SublineIndex
	subOf := func(column int) core.Position {
		return p.ViewPositionOfModelPosition(0, column, core.AffinityNone)
	}

	if g.ForWrappedLinesAfterColumn != -1 && subOf(g.ForWrappedLinesAfterColumn).Line >= sub {
		return core.IndentGuide{}, false
	}
	if g.ForWrappedLinesBeforeOrAtColumn != -1 && subOf(g.ForWrappedLinesBeforeOrAtColumn).Line < sub {
		return core.IndentGuide{}, false
	}
	if g.HorizontalLine == nil {
		return g, true
	}

	column := -1
	if g.Column != -1 {
		pos := subOf(g.Column)
		switch {
		case pos.Line == sub:
			column = pos.Column
		case pos.Line < sub:
			column = l.minColumnOfViewLine(info)
		default:
			return core.IndentGuide{}, false
		}
	}

	guide := core.IndentGuide{
		VisibleColumn:                   g.VisibleColumn,
		Column:                          column,
		ClassName:                       g.ClassName,
		ForWrappedLinesAfterColumn:      -1,
		ForWrappedLinesBeforeOrAtColumn: -1,
	}
	endPos := subOf(g.HorizontalLine.EndColumn)
	switch {
	case endPos.Line == sub:
		viewEnd := l.ConvertModelPositionToViewPosition(info.ModelLine, g.HorizontalLine.EndColumn, core.AffinityNone, false, false)
		guide.HorizontalLine = &core.HorizontalGuideLine{Top: g.HorizontalLine.Top, EndColumn: viewEnd.Column}
	case endPos.Line < sub:
		return core.IndentGuide{}, false
	default:
		// Horizontal lines anchored to a visible column are not repeated on
		// the sub-lines before their end.
		if g.VisibleColumn != -1 {
			return core.IndentGuide{}, false
		}
		guide.HorizontalLine = &core.HorizontalGuideLine{Top: g.HorizontalLine.Top, EndColumn: l.maxColumnOfViewLine(info)}
	}
	return guide, true
}
