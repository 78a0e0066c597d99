package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/core"
)

func decorationIDs(ds []core.Decoration) []string {
	ids := make([]string, len(ds))
	for i, d := range ds {
		ids[i] = d.ID
	}
	return ids
}

func TestDecorationsInRangeAcrossFolds(t *testing.T) {
	f := newFixture(t, lineNumbers(6), 0)
	f.model.DeltaDecorations(nil, []core.NewDecoration{
		{Range: core.NewRange(1, 1, 1, 2)},
		{Range: core.NewRange(1, 3, 5, 2)},
		{Range: core.NewRange(3, 1, 3, 4)},
		{Range: core.NewRange(5, 1, 5, 3)},
	})
	f.lines.SetHiddenAreas([]core.Range{core.LineRange(2, 4)})

	got := f.lines.DecorationsInRange(core.NewRange(1, 1, 3, 7), core.DecorationFilter{})
	if diff := cmp.Diff([]string{"d01", "d02", "d04"}, decorationIDs(got)); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}

	got = f.lines.DecorationsInRange(core.NewRange(1, 1, 1, 7), core.DecorationFilter{})
	if diff := cmp.Diff([]string{"d01", "d02"}, decorationIDs(got)); diff != "" {
		t.Errorf("single line mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorationsInRangeWrappedLine(t *testing.T) {
	f := newFixture(t, []string{"aaaabbbbcc", "x"}, 4)
	f.model.DeltaDecorations(nil, []core.NewDecoration{
		{Range: core.NewRange(1, 1, 1, 11), Options: core.DecorationOptions{IsWholeLine: true}},
		{Range: core.NewRange(2, 1, 2, 2)},
	})

	// View line 2 is a continuation; whole-line decorations still apply.
	got := f.lines.DecorationsInRange(core.NewRange(2, 1, 2, 5), core.DecorationFilter{})
	if diff := cmp.Diff([]string{"d01"}, decorationIDs(got)); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorationsInRangeWrappedAndFolded(t *testing.T) {
	tests := []struct {
		name  string
		first string
		end   core.Position
	}{
		// Two extra view lines, one hidden line.
		{"wrap outgrows fold", "aaaabbbbcccc", core.NewPosition(4, 2)},
		// One extra view line, one hidden line: the spans match.
		{"wrap offsets fold", "aaaabbbb", core.NewPosition(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []string{tt.first, "hidden", "z"}, 4)
			f.model.DeltaDecorations(nil, []core.NewDecoration{
				{Range: core.NewRange(1, 5, 1, 6)},
				{Range: core.NewRange(2, 1, 2, 4)},
				{Range: core.NewRange(3, 1, 3, 2)},
			})
			f.lines.SetHiddenAreas([]core.Range{core.LineRange(2, 2)})

			r := core.RangeFromPositions(core.NewPosition(1, 1), tt.end)
			got := f.lines.DecorationsInRange(r, core.DecorationFilter{})
			if diff := cmp.Diff([]string{"d01", "d03"}, decorationIDs(got)); diff != "" {
				t.Errorf("decorations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyContentChangesLineGrows(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, 4)

	batch, err := f.model.SetLineContent(1, "abcdefghij")
	if err != nil {
		t.Fatalf("SetLineContent: %v", err)
	}
	events := ApplyContentChanges(f.lines, batch)
	want := []Event{
		LinesChangedEvent{FromLine: 1, Count: 1},
		LinesInsertedEvent{FromLine: 2, ToLine: 3},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if got := f.lines.ViewLineContent(3); got != "ij" {
		t.Errorf("ViewLineContent(3) = %q", got)
	}
	if f.lines.validVersionID != f.model.VersionID() {
		t.Errorf("watermark %d, model version %d", f.lines.validVersionID, f.model.VersionID())
	}

	// Replaying the batch is a no-op.
	if events := ApplyContentChanges(f.lines, batch); len(events) != 0 {
		t.Errorf("replayed batch produced %v", events)
	}
	checkInvariants(t, f.lines)
}

func TestApplyContentChangesFlush(t *testing.T) {
	f := newFixture(t, lineNumbers(4), 0)
	f.lines.SetHiddenAreas([]core.Range{core.LineRange(2, 3)})

	events := ApplyContentChanges(f.lines, f.model.SetContent("x\ny\nz"))
	if diff := cmp.Diff([]Event{FlushedEvent{}}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if f.lines.ViewLineCount() != 3 {
		t.Errorf("ViewLineCount() = %d, want 3", f.lines.ViewLineCount())
	}
	if len(f.lines.HiddenAreas()) != 0 {
		t.Errorf("flush kept hidden areas %v", f.lines.HiddenAreas())
	}
	checkInvariants(t, f.lines)
}

func TestAcceptVersionIDRevealsWhenEverythingHidden(t *testing.T) {
	f := newFixture(t, lineNumbers(3), 0)
	f.lines.SetHiddenAreas([]core.Range{core.LineRange(2, 3)})

	batch, err := f.model.DeleteLines(1, 1)
	if err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	events := ApplyContentChanges(f.lines, batch)
	want := []Event{LinesDeletedEvent{FromLine: 1, ToLine: 1}, FlushedEvent{}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if f.lines.ViewLineCount() != 2 {
		t.Errorf("ViewLineCount() = %d, want 2", f.lines.ViewLineCount())
	}
	if len(f.lines.HiddenAreas()) != 0 {
		t.Errorf("HiddenAreas() = %v, want none", f.lines.HiddenAreas())
	}
	checkInvariants(t, f.lines)
}

func TestStaleVersionsIgnored(t *testing.T) {
	f := newFixture(t, lineNumbers(3), 0)
	f.lines.AcceptVersionID(5)

	if e := f.lines.OnModelLinesDeleted(5, 1, 1); e != nil {
		t.Errorf("OnModelLinesDeleted at watermark = %v", e)
	}
	if e := f.lines.OnModelLinesInserted(4, 1, 1, nil); e != nil {
		t.Errorf("OnModelLinesInserted below watermark = %v", e)
	}
	if f.lines.ViewLineCount() != 3 {
		t.Errorf("stale changes altered the view: %d lines", f.lines.ViewLineCount())
	}
	if e := f.lines.OnModelLinesDeleted(6, 3, 3); e == nil || *e != (LinesDeletedEvent{FromLine: 3, ToLine: 3}) {
		t.Errorf("fresh delete = %v", e)
	}
}

func TestEventStrings(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{FlushedEvent{}, "flushed"},
		{LinesChangedEvent{FromLine: 2, Count: 3}, "changed 2+3"},
		{LinesInsertedEvent{FromLine: 4, ToLine: 5}, "inserted 4..5"},
		{LinesDeletedEvent{FromLine: 1, ToLine: 1}, "deleted 1..1"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
