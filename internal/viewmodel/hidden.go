package viewmodel

import (
	"slices"

	"github.com/dshills/viewlines/internal/core"
)

// normalizeLineRanges sorts ranges by start and merges those that overlap
// or leave a gap of at most one line. Columns are dropped; results are
// whole-line ranges.
func normalizeLineRanges(ranges []core.Range) []core.Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, core.CompareRangesUsingStarts)

	var out []core.Range
	start, end := sorted[0].StartLine, sorted[0].EndLine
	for _, r := range sorted[1:] {
		if r.StartLine > end+1 {
			out = append(out, core.LineRange(start, end))
			start, end = r.StartLine, r.EndLine
		} else if r.EndLine > end {
			end = r.EndLine
		}
	}
	return append(out, core.LineRange(start, end))
}

// HiddenAreas returns the current hidden areas sorted by start. They are
// read back from the model, so they reflect edits made since they were
// set.
func (l *ProjectedLines) HiddenAreas() []core.Range {
	out := make([]core.Range, 0, len(l.hiddenIDs))
	for _, id := range l.hiddenIDs {
		if r, ok := l.model.DecorationRange(id); ok {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, core.CompareRangesUsingStarts)
	return out
}

// SetHiddenAreas replaces the hidden areas and reports whether anything
// changed. Ranges are validated and merged first. If the result would hide
// every line, all areas are cleared instead.
func (l *ProjectedLines) SetHiddenAreas(ranges []core.Range) bool {
	validated := make([]core.Range, len(ranges))
	for i, r := range ranges {
		validated[i] = l.model.ValidateRange(r)
	}
	next := normalizeLineRanges(validated)
	if slices.Equal(next, l.HiddenAreas()) {
		return false
	}

	l.hiddenIDs = l.model.DeltaDecorations(l.hiddenIDs, hiddenAreaDecorations(next))

	hasVisible := false
	h := 0
	for i, p := range l.projections {
		line := i + 1
		for h < len(next) && next[h].EndLine < line {
			h++
		}
		hide := h < len(next) && next[h].StartLine <= line
		if !hide {
			hasVisible = true
		}
		if p.IsVisible() == hide {
			l.projections[i] = p.SetVisible(!hide)
			l.counts.SetValue(i, l.projections[i].ViewLineCount())
		}
	}

	if !hasVisible {
		l.log.Debug("hidden areas %v cover every line, revealing all", next)
		l.revealAll()
	}
	return true
}

func hiddenAreaDecorations(ranges []core.Range) []core.NewDecoration {
	out := make([]core.NewDecoration, len(ranges))
	for i, r := range ranges {
		out[i] = core.NewDecoration{
			Range:   r,
			Options: core.DecorationOptions{Description: hiddenAreaDescription},
		}
	}
	return out
}

// hiddenRuns returns the maximal runs of hidden model lines.
func (l *ProjectedLines) hiddenRuns() []core.Range {
	var runs []core.Range
	start := 0
	for i, p := range l.projections {
		line := i + 1
		switch {
		case !p.IsVisible() && start == 0:
			start = line
		case p.IsVisible() && start != 0:
			runs = append(runs, core.LineRange(start, line-1))
			start = 0
		}
	}
	if start != 0 {
		runs = append(runs, core.LineRange(start, len(l.projections)))
	}
	return runs
}

// syncHiddenAreas rewrites the hidden area decorations when edits left them
// out of step with the hidden lines: a line inserted right below a fold, or
// a fold whose lines were all deleted.
func (l *ProjectedLines) syncHiddenAreas() {
	runs := l.hiddenRuns()
	if slices.Equal(runs, l.HiddenAreas()) {
		return
	}
	l.log.Debug("hidden areas %v resynced to %v", l.HiddenAreas(), runs)
	l.hiddenIDs = l.model.DeltaDecorations(l.hiddenIDs, hiddenAreaDecorations(runs))
}

// revealAll drops every hidden area and makes every line visible, even if
// the hidden area decorations were already lost.
func (l *ProjectedLines) revealAll() {
	l.hiddenIDs = l.model.DeltaDecorations(l.hiddenIDs, nil)
	for i, p := range l.projections {
		if !p.IsVisible() {
			l.projections[i] = p.SetVisible(true)
			l.counts.SetValue(i, l.projections[i].ViewLineCount())
		}
	}
}
