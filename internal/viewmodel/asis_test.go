package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/textmodel"
)

func TestAsIsLinesIdentity(t *testing.T) {
	model := textmodel.FromLines([]string{"a", "bb", "ccc"})
	l := NewAsIsLines(model)

	if l.ViewLineCount() != 3 {
		t.Errorf("ViewLineCount() = %d, want 3", l.ViewLineCount())
	}
	if got := l.ViewLineContent(2); got != "bb" {
		t.Errorf("ViewLineContent(2) = %q", got)
	}
	if got := l.ViewLineMaxColumn(3); got != 4 {
		t.Errorf("ViewLineMaxColumn(3) = %d, want 4", got)
	}
	if got := l.ConvertModelPositionToViewPosition(9, 9, core.AffinityNone, false, false); got != core.NewPosition(3, 4) {
		t.Errorf("clamped conversion = %v, want (3,4)", got)
	}
	if got := l.ConvertViewPositionToModelPosition(2, 1); got != core.NewPosition(2, 1) {
		t.Errorf("view to model = %v", got)
	}
	if l.ModelPositionIsVisible(4, 1) || !l.ModelPositionIsVisible(3, 1) {
		t.Error("ModelPositionIsVisible should follow the model line count")
	}
	if l.ModelLineViewLineCount(2) != 1 {
		t.Error("every model line is one view line")
	}
	if got := l.ValidateViewPosition(1, 1, core.NewPosition(3, 2)); got != core.NewPosition(3, 2) {
		t.Errorf("ValidateViewPosition = %v", got)
	}
}

func TestAsIsLinesIgnoresLayoutChanges(t *testing.T) {
	l := NewAsIsLines(textmodel.FromLines([]string{"a", "b"}))

	if l.SetHiddenAreas([]core.Range{core.LineRange(1, 1)}) {
		t.Error("SetHiddenAreas reported a change")
	}
	if l.HiddenAreas() != nil {
		t.Error("HiddenAreas should be empty")
	}
	if l.SetTabSize(8) {
		t.Error("SetTabSize reported a change")
	}

	c := l.CreateLineBreaksComputer()
	c.AddRequest("aaaaaaaaaaaa", nil, nil)
	c.AddRequest("b", nil, nil)
	breaks := c.Finalize()
	if len(breaks) != 2 || breaks[0] != nil || breaks[1] != nil {
		t.Errorf("Finalize() = %v, want two nil entries", breaks)
	}

	mapping, changed, inserted, deleted := l.OnModelLineChanged(2, 2, nil)
	if mapping || inserted != nil || deleted != nil {
		t.Error("a changed line never changes the mapping")
	}
	if changed == nil || *changed != (LinesChangedEvent{FromLine: 2, Count: 1}) {
		t.Errorf("changed = %v", changed)
	}
}

func TestAsIsLinesGuides(t *testing.T) {
	l := NewAsIsLines(textmodel.FromLines(goSource))

	if diff := cmp.Diff([]int{0, 0, 0}, l.ViewLinesIndentGuides(2, 4)); diff != "" {
		t.Errorf("indent guides mismatch (-want +got):\n%s", diff)
	}
	if got := l.ViewLinesBracketGuides(1, 2, nil, core.BracketGuideOptions{IncludeInactive: true}); len(got) != 2 {
		t.Errorf("bracket guides = %v", got)
	}
	if got := l.ActiveIndentGuide(3, 1, 6); got != (core.ActiveIndentGuide{StartLine: 3, EndLine: 3}) {
		t.Errorf("ActiveIndentGuide = %+v", got)
	}
}

func TestAsIsLinesApplyContentChanges(t *testing.T) {
	model := textmodel.FromLines([]string{"a", "b"})
	l := NewAsIsLines(model)

	batch, err := model.InsertLines(2, []string{"x", "y"})
	if err != nil {
		t.Fatalf("InsertLines: %v", err)
	}
	events := ApplyContentChanges(l, batch)
	if diff := cmp.Diff([]Event{LinesInsertedEvent{FromLine: 2, ToLine: 3}}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if l.ViewLineCount() != 4 || l.ViewLineContent(3) != "y" {
		t.Errorf("view after insert: %d lines, line 3 %q", l.ViewLineCount(), l.ViewLineContent(3))
	}

	conv := l.CoordinatesConverter()
	if got := conv.ConvertModelRangeToViewRange(core.NewRange(1, 1, 9, 9), core.AffinityNone); got != core.NewRange(1, 1, 4, 2) {
		t.Errorf("converter range = %v", got)
	}
}
