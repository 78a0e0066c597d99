package viewmodel

import (
	"cmp"
	"slices"

	"github.com/dshills/viewlines/internal/core"
)

// ViewLineContent returns the text of a view line.
func (l *ProjectedLines) ViewLineContent(viewLine int) string {
	idx, sub := l.locate(viewLine)
	return l.projections[idx].ViewLineContent(l.model, idx+1, sub)
}

// ViewLineLength returns the length of a view line in runes.
func (l *ProjectedLines) ViewLineLength(viewLine int) int {
	idx, sub := l.locate(viewLine)
	return l.projections[idx].ViewLineLength(l.model, idx+1, sub)
}

// ViewLineMinColumn returns the first valid column of a view line.
func (l *ProjectedLines) ViewLineMinColumn(viewLine int) int {
	idx, sub := l.locate(viewLine)
	return l.projections[idx].ViewLineMinColumn(l.model, idx+1, sub)
}

// ViewLineMaxColumn returns the last valid column of a view line.
func (l *ProjectedLines) ViewLineMaxColumn(viewLine int) int {
	idx, sub := l.locate(viewLine)
	return l.projections[idx].ViewLineMaxColumn(l.model, idx+1, sub)
}

// ViewLineData returns the rendering payload of a view line.
func (l *ProjectedLines) ViewLineData(viewLine int) core.ViewLineData {
	idx, sub := l.locate(viewLine)
	return l.projections[idx].ViewLineData(l.model, idx+1, sub)
}

// ViewLinesData returns the payloads of view lines start..end, walking the
// projections once instead of locating every line.
func (l *ProjectedLines) ViewLinesData(start, end int, needed []bool) []*core.ViewLineData {
	start, end = l.toValidViewLine(start), l.toValidViewLine(end)
	if end < start {
		return nil
	}
	first := l.counts.IndexOf(start - 1)

	out := make([]*core.ViewLineData, 0, end-start+1)
	v := start
	for idx := first.Index; idx < len(l.projections) && v <= end; idx++ {
		p := l.projections[idx]
		if !p.IsVisible() {
			continue
		}
		sub := 0
		if idx == first.Index {
			sub = first.Remainder
		}
		for ; sub < p.ViewLineCount() && v <= end; sub++ {
			if i := v - start; needed == nil || (i < len(needed) && needed[i]) {
				d := p.ViewLineData(l.model, idx+1, sub)
				out = append(out, &d)
			} else {
				out = append(out, nil)
			}
			v++
		}
	}
	return out
}

// InjectedTextAt returns the injected text at a view position, or nil.
func (l *ProjectedLines) InjectedTextAt(viewPos core.Position) *core.InjectedText {
	idx, sub := l.locate(viewPos.Line)
	return l.projections[idx].InjectedTextAt(sub, viewPos.Column)
}

// NormalizePosition moves a view position out of injected text and across
// wrap boundaries according to affinity.
func (l *ProjectedLines) NormalizePosition(viewPos core.Position, affinity core.PositionAffinity) core.Position {
	viewPos.Line = l.toValidViewLine(viewPos.Line)
	idx, sub := l.locate(viewPos.Line)
	return l.projections[idx].NormalizePosition(sub, viewPos, affinity)
}

// LineIndentColumn returns the indent column of the model line for the
// first view line of it, and 0 for wrapped continuations.
func (l *ProjectedLines) LineIndentColumn(viewLine int) int {
	idx, sub := l.locate(viewLine)
	if sub == 0 {
		return l.model.LineIndentColumn(idx + 1)
	}
	return 0
}

// DecorationsInRange returns the model decorations shown in a view range.
// When the range crosses hidden lines the model is queried once per visible
// run and the results are merged, sorted by range start then id, with
// duplicates from adjacent runs removed.
func (l *ProjectedLines) DecorationsInRange(viewRange core.Range, filter core.DecorationFilter) []core.Decoration {
	modelStart := l.ConvertViewPositionToModelPosition(viewRange.StartLine, viewRange.StartColumn)
	modelEnd := l.ConvertViewPositionToModelPosition(viewRange.EndLine, viewRange.EndColumn)

	if !l.anyHidden(modelStart.Line, modelEnd.Line) {
		// Start at column 1 so whole-line decorations of a wrapped line are
		// included.
		return l.model.DecorationsInRange(core.NewRange(modelStart.Line, 1, modelEnd.Line, modelEnd.Column), filter)
	}

	var result []core.Decoration
	runLine, runColumn := 0, 0
	for idx := modelStart.Line - 1; idx <= modelEnd.Line-1; idx++ {
		if l.projections[idx].IsVisible() {
			if runLine == 0 {
				runLine, runColumn = idx+1, 1
				if idx == modelStart.Line-1 {
					runColumn = modelStart.Column
				}
			}
			continue
		}
		if runLine != 0 {
			r := core.NewRange(runLine, runColumn, idx, l.model.LineMaxColumn(idx))
			result = append(result, l.model.DecorationsInRange(r, filter)...)
			runLine = 0
		}
	}
	if runLine != 0 {
		r := core.NewRange(runLine, runColumn, modelEnd.Line, modelEnd.Column)
		result = append(result, l.model.DecorationsInRange(r, filter)...)
	}

	slices.SortStableFunc(result, func(a, b core.Decoration) int {
		if c := core.CompareRangesUsingStarts(a.Range, b.Range); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return slices.CompactFunc(result, func(a, b core.Decoration) bool {
		return a.ID == b.ID
	})
}

// anyHidden reports whether a model line in from..to is hidden. Span lengths
// cannot tell, since wrapped lines can offset the lines a fold removes.
func (l *ProjectedLines) anyHidden(from, to int) bool {
	for i := from - 1; i < to; i++ {
		if !l.projections[i].IsVisible() {
			return true
		}
	}
	return false
}
