package dirty

import (
	"cmp"
	"slices"
	"sync"

	"github.com/dshills/viewlines/internal/viewmodel"
)

// Tracker collects dirty view lines between paints.
type Tracker struct {
	mu sync.RWMutex

	regions    []Region
	fullRedraw bool

	// maxRegions is the number of regions above which a full redraw is
	// cheaper than tracking.
	maxRegions int
}

// NewTracker creates a tracker that starts out needing a full redraw.
func NewTracker() *Tracker {
	return &Tracker{
		regions:    make([]Region, 0, 16),
		fullRedraw: true,
		maxRegions: 32,
	}
}

// SetMaxRegions sets the maximum number of regions before forcing full redraw.
// Values less than 1 are clamped to 1.
func (t *Tracker) SetMaxRegions(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maxRegions = max(1, n)
}

// MarkFullRedraw marks every line as needing a repaint.
func (t *Tracker) MarkFullRedraw() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fullRedraw = true
	t.regions = t.regions[:0]
}

// MarkLine marks a single view line as dirty.
func (t *Tracker) MarkLine(line int) {
	t.MarkRegion(NewSingleLine(line))
}

// MarkLines marks a range of view lines as dirty.
func (t *Tracker) MarkLines(startLine, endLine int) {
	t.MarkRegion(NewLineRegion(startLine, endLine))
}

// MarkFrom marks line and everything below it as dirty.
func (t *Tracker) MarkFrom(line int) {
	t.MarkRegion(NewRegionFrom(line))
}

// MarkRegion marks a region as dirty.
func (t *Tracker) MarkRegion(region Region) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addRegion(region)
}

// MarkEvents marks the lines touched by view events. Flushes force a full
// redraw; inserts and deletes dirty everything from their first line down
// because the lines below move.
func (t *Tracker) MarkEvents(events []viewmodel.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ev := range events {
		switch e := ev.(type) {
		case viewmodel.FlushedEvent:
			t.fullRedraw = true
			t.regions = t.regions[:0]
		case viewmodel.LinesChangedEvent:
			t.addRegion(NewLineRegion(e.FromLine, e.ToLine()))
		case viewmodel.LinesInsertedEvent:
			if e.ToLine >= e.FromLine {
				t.addRegion(NewRegionFrom(e.FromLine))
			}
		case viewmodel.LinesDeletedEvent:
			if e.ToLine >= e.FromLine {
				t.addRegion(NewRegionFrom(e.FromLine))
			}
		}
	}
}

// addRegion merges region into the set. Callers hold t.mu.
func (t *Tracker) addRegion(region Region) {
	if t.fullRedraw || region.IsEmpty() {
		return
	}
	region.StartLine = max(1, region.StartLine)
	if region.IsEmpty() {
		return
	}

	t.regions = append(t.regions, region)
	t.coalesce()
	if len(t.regions) > t.maxRegions {
		t.fullRedraw = true
		t.regions = t.regions[:0]
	}
}

// coalesce sorts the regions and merges overlapping or adjacent ones.
func (t *Tracker) coalesce() {
	slices.SortFunc(t.regions, func(a, b Region) int {
		return cmp.Compare(a.StartLine, b.StartLine)
	})
	out := t.regions[:1]
	for _, r := range t.regions[1:] {
		if merged, ok := out[len(out)-1].Merge(r); ok {
			out[len(out)-1] = merged
			continue
		}
		out = append(out, r)
	}
	t.regions = out
}

// IsDirty returns true if any line needs a repaint.
func (t *Tracker) IsDirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fullRedraw || len(t.regions) > 0
}

// NeedsFullRedraw returns true if every line needs a repaint.
func (t *Tracker) NeedsFullRedraw() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fullRedraw
}

// DirtyRegions returns a copy of the dirty regions, sorted. A full redraw
// is reported as a single unbounded region from line 1.
func (t *Tracker) DirtyRegions() []Region {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.fullRedraw {
		return []Region{NewRegionFrom(1)}
	}
	return slices.Clone(t.regions)
}

// IsLineDirty returns true if the given view line needs a repaint.
func (t *Tracker) IsLineDirty(line int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.fullRedraw {
		return true
	}
	for _, r := range t.regions {
		if r.ContainsLine(line) {
			return true
		}
	}
	return false
}

// DirtyLines returns the dirty view lines within first..last, ascending.
// The result is empty when last < first.
func (t *Tracker) DirtyLines(first, last int) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	window := Region{StartLine: first, EndLine: last}
	if t.fullRedraw {
		return expand(window)
	}
	var lines []int
	for _, r := range t.regions {
		lines = append(lines, expand(r.Intersect(window))...)
	}
	return lines
}

func expand(r Region) []int {
	if r.IsEmpty() {
		return nil
	}
	lines := make([]int, 0, r.EndLine-r.StartLine+1)
	for line := r.StartLine; line <= r.EndLine; line++ {
		lines = append(lines, line)
	}
	return lines
}

// Clear forgets every dirty line after a paint.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.regions = t.regions[:0]
	t.fullRedraw = false
}

// RegionCount returns the number of dirty regions.
func (t *Tracker) RegionCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.fullRedraw {
		return 1
	}
	return len(t.regions)
}
