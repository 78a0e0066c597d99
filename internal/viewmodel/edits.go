package viewmodel

import (
	"slices"

	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/projection"
)

// stale reports whether a change computed for versionID predates the last
// rebuild or accepted batch.
func (l *ProjectedLines) stale(versionID int, op string) bool {
	if versionID > l.validVersionID {
		return false
	}
	l.log.WithField("op", op).Debug("dropping version %d, already at %d", versionID, l.validVersionID)
	return true
}

// OnModelLinesDeleted removes model lines fromLine..toLine and returns the
// view lines they covered.
func (l *ProjectedLines) OnModelLinesDeleted(versionID, fromLine, toLine int) *LinesDeletedEvent {
	if l.stale(versionID, "linesDeleted") {
		return nil
	}
	fromLine, toLine = max(fromLine, 1), min(toLine, len(l.projections))
	if fromLine > toLine {
		return nil
	}

	outFrom := l.viewLinesBefore(fromLine-1) + 1
	outTo := l.counts.PrefixSum(toLine - 1)

	l.projections = slices.Delete(l.projections, fromLine-1, toLine)
	l.counts.RemoveValues(fromLine-1, toLine-fromLine+1)

	return &LinesDeletedEvent{FromLine: outFrom, ToLine: outTo}
}

// OnModelLinesInserted adds projections for new model lines starting at
// fromLine, one per break data entry. The new lines are hidden when the
// line above them is hidden, so typing inside a fold keeps it folded.
func (l *ProjectedLines) OnModelLinesInserted(versionID, fromLine, toLine int, breaks []*linebreak.LineBreakData) *LinesInsertedEvent {
	if l.stale(versionID, "linesInserted") {
		return nil
	}
	if want := max(toLine-fromLine+1, 0); want != len(breaks) {
		// Missing entries are shown unwrapped; extra entries are dropped.
		l.log.Debug("inserting %d lines with %d break entries", want, len(breaks))
		fitted := make([]*linebreak.LineBreakData, want)
		copy(fitted, breaks)
		breaks = fitted
	}
	fromLine = min(max(fromLine, 1), len(l.projections)+1)

	hidden := fromLine > 1 && !l.projections[fromLine-2].IsVisible()
	outFrom := l.viewLinesBefore(fromLine-1) + 1

	inserted := make([]projection.Projection, len(breaks))
	values := make([]int, len(breaks))
	total := 0
	for i, data := range breaks {
		inserted[i] = projection.New(data, !hidden)
		values[i] = inserted[i].ViewLineCount()
		total += values[i]
	}

	l.projections = slices.Insert(l.projections, fromLine-1, inserted...)
	l.counts.InsertValues(fromLine-1, values)

	return &LinesInsertedEvent{FromLine: outFrom, ToLine: outFrom + total - 1}
}

// OnModelLineChanged replaces the projection of one model line. The view
// lines it keeps are reported as changed; the surplus or deficit is
// reported as inserted or deleted at the exact view offsets. The first
// result is true when the view line count of the line changed.
func (l *ProjectedLines) OnModelLineChanged(versionID, line int, data *linebreak.LineBreakData) (bool, *LinesChangedEvent, *LinesInsertedEvent, *LinesDeletedEvent) {
	if l.stale(versionID, "lineChanged") {
		return false, nil, nil, nil
	}
	if line < 1 || line > len(l.projections) {
		return false, nil, nil, nil
	}

	idx := line - 1
	old := l.projections[idx]
	oldCount := old.ViewLineCount()
	l.projections[idx] = projection.New(data, old.IsVisible())
	newCount := l.projections[idx].ViewLineCount()

	from := l.viewLinesBefore(idx) + 1
	l.counts.SetValue(idx, newCount)

	var changed *LinesChangedEvent
	if n := min(oldCount, newCount); n > 0 {
		changed = &LinesChangedEvent{FromLine: from, Count: n}
	}
	switch {
	case newCount > oldCount:
		return true, changed, &LinesInsertedEvent{FromLine: from + oldCount, ToLine: from + newCount - 1}, nil
	case newCount < oldCount:
		return true, changed, nil, &LinesDeletedEvent{FromLine: from + newCount, ToLine: from + oldCount - 1}
	default:
		return false, changed, nil, nil
	}
}

// AcceptVersionID records that every change up to versionID was applied,
// then restores a visible line if edits left none. Otherwise the hidden
// areas are resynced with the hidden lines, since inserted lines inherit
// visibility without moving the fold decorations.
func (l *ProjectedLines) AcceptVersionID(versionID int) {
	l.validVersionID = versionID
	if len(l.projections) > 0 && l.counts.TotalSum() == 0 {
		l.log.Debug("no visible line at version %d, revealing all", versionID)
		l.revealAll()
		return
	}
	l.syncHiddenAreas()
}
