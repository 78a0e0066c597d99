package dirty

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/viewmodel"
)

func cleanTracker() *Tracker {
	t := NewTracker()
	t.Clear()
	return t
}

func TestNewTrackerNeedsFullRedraw(t *testing.T) {
	tracker := NewTracker()
	if !tracker.NeedsFullRedraw() || !tracker.IsLineDirty(1000) {
		t.Error("new tracker should need a full redraw")
	}
	tracker.Clear()
	if tracker.IsDirty() {
		t.Error("tracker dirty after Clear")
	}
}

func TestTrackerCoalesces(t *testing.T) {
	tracker := cleanTracker()
	tracker.MarkLine(5)
	tracker.MarkLines(7, 9)
	tracker.MarkLine(6)
	tracker.MarkLine(20)

	want := []Region{NewLineRegion(5, 9), NewSingleLine(20)}
	if diff := cmp.Diff(want, tracker.DirtyRegions()); diff != "" {
		t.Errorf("DirtyRegions mismatch (-want +got):\n%s", diff)
	}
	if tracker.RegionCount() != 2 {
		t.Errorf("RegionCount = %d", tracker.RegionCount())
	}
}

func TestTrackerMaxRegions(t *testing.T) {
	tracker := cleanTracker()
	tracker.SetMaxRegions(2)
	tracker.MarkLine(1)
	tracker.MarkLine(3)
	if tracker.NeedsFullRedraw() {
		t.Fatal("full redraw before the limit")
	}
	tracker.MarkLine(5)
	if !tracker.NeedsFullRedraw() {
		t.Error("exceeding max regions should force a full redraw")
	}
}

func TestTrackerMarkEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []viewmodel.Event
		want   []Region
	}{
		{
			"changed",
			[]viewmodel.Event{viewmodel.LinesChangedEvent{FromLine: 4, Count: 3}},
			[]Region{NewLineRegion(4, 6)},
		},
		{
			"inserted shifts everything below",
			[]viewmodel.Event{viewmodel.LinesInsertedEvent{FromLine: 10, ToLine: 11}},
			[]Region{NewRegionFrom(10)},
		},
		{
			"deleted shifts everything below",
			[]viewmodel.Event{
				viewmodel.LinesChangedEvent{FromLine: 2, Count: 1},
				viewmodel.LinesDeletedEvent{FromLine: 8, ToLine: 8},
			},
			[]Region{NewSingleLine(2), NewRegionFrom(8)},
		},
		{
			"hidden inserts and deletes are no-ops",
			[]viewmodel.Event{
				viewmodel.LinesInsertedEvent{FromLine: 3, ToLine: 2},
				viewmodel.LinesDeletedEvent{FromLine: 5, ToLine: 4},
			},
			[]Region{},
		},
		{
			"flush",
			[]viewmodel.Event{viewmodel.LinesChangedEvent{FromLine: 2, Count: 1}, viewmodel.FlushedEvent{}},
			[]Region{NewRegionFrom(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := cleanTracker()
			tracker.MarkEvents(tt.events)
			if diff := cmp.Diff(tt.want, tracker.DirtyRegions()); diff != "" {
				t.Errorf("DirtyRegions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrackerDirtyLines(t *testing.T) {
	tracker := cleanTracker()
	tracker.MarkLines(2, 3)
	tracker.MarkFrom(9)

	if diff := cmp.Diff([]int{2, 3, 9, 10}, tracker.DirtyLines(1, 10)); diff != "" {
		t.Errorf("DirtyLines mismatch (-want +got):\n%s", diff)
	}
	if got := tracker.DirtyLines(4, 8); len(got) != 0 {
		t.Errorf("DirtyLines(4, 8) = %v, want none", got)
	}
	if got := tracker.DirtyLines(1, 0); len(got) != 0 {
		t.Errorf("DirtyLines on an empty window = %v", got)
	}

	tracker.MarkFullRedraw()
	if diff := cmp.Diff([]int{5, 6, 7}, tracker.DirtyLines(5, 7)); diff != "" {
		t.Errorf("full redraw DirtyLines mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerIgnoresLinesAboveFirst(t *testing.T) {
	tracker := cleanTracker()
	tracker.MarkLines(-3, 0)
	if tracker.IsDirty() {
		t.Error("lines before 1 should be ignored")
	}
	tracker.MarkLines(-3, 2)
	if diff := cmp.Diff([]Region{NewLineRegion(1, 2)}, tracker.DirtyRegions()); diff != "" {
		t.Errorf("DirtyRegions mismatch (-want +got):\n%s", diff)
	}
}
