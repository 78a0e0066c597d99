package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	textcore "github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/renderer/core"
)

func runes(l *Line) string {
	return core.StringFromCells(l.Cells)
}

func TestTabExpander(t *testing.T) {
	tabs := NewTabExpander(4)
	tests := []struct {
		col, offset, next int
		stop              bool
	}{
		{0, 4, 4, true},
		{1, 3, 4, false},
		{3, 1, 4, false},
		{4, 4, 8, true},
	}
	for _, tt := range tests {
		if got := tabs.TabStopOffset(tt.col); got != tt.offset {
			t.Errorf("TabStopOffset(%d) = %d, want %d", tt.col, got, tt.offset)
		}
		if got := tabs.NextTabStop(tt.col); got != tt.next {
			t.Errorf("NextTabStop(%d) = %d, want %d", tt.col, got, tt.next)
		}
		if got := tabs.IsTabStop(tt.col); got != tt.stop {
			t.Errorf("IsTabStop(%d) = %v, want %v", tt.col, got, tt.stop)
		}
	}

	if NewTabExpander(0).TabWidth() != 4 {
		t.Error("NewTabExpander(0) should fall back to 4")
	}
	tabs.SetTabWidth(-1)
	if tabs.TabWidth() != 1 {
		t.Errorf("SetTabWidth(-1) gave %d, want 1", tabs.TabWidth())
	}
}

func TestLayoutPlain(t *testing.T) {
	e := NewEngine(4)
	l := e.Layout(&textcore.ViewLineData{Content: "abc", MinColumn: 1, MaxColumn: 4}, core.DefaultStyle())

	if got := runes(l); got != "abc" {
		t.Errorf("cells = %q, want %q", got, "abc")
	}
	if diff := cmp.Diff([]int{1, 2, 3}, l.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	if got := l.CellOfColumn(4); got != 3 {
		t.Errorf("CellOfColumn(4) = %d, want 3", got)
	}
	if got := l.ColumnOfCell(10); got != 4 {
		t.Errorf("ColumnOfCell(10) = %d, want 4", got)
	}
}

func TestLayoutTabs(t *testing.T) {
	e := NewEngine(4)
	l := e.Layout(&textcore.ViewLineData{Content: "a\tb", MinColumn: 1, MaxColumn: 4}, core.DefaultStyle())

	if got := runes(l); got != "a   b" {
		t.Errorf("cells = %q, want %q", got, "a   b")
	}
	if diff := cmp.Diff([]int{1, 2, 2, 2, 3}, l.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	if got := l.CellOfColumn(3); got != 4 {
		t.Errorf("CellOfColumn(3) = %d, want 4", got)
	}
}

func TestLayoutWrappedContinuationKeepsTabStops(t *testing.T) {
	e := NewEngine(4)
	// Continuation with a 2 space wrapped indent starting at visible
	// column 6: the tab advances to column 8.
	l := e.Layout(&textcore.ViewLineData{
		Content:            "  x\ty",
		MinColumn:          3,
		MaxColumn:          6,
		StartVisibleColumn: 6,
	}, core.DefaultStyle())

	if got := runes(l); got != "  x y" {
		t.Errorf("cells = %q, want %q", got, "  x y")
	}
	if l.Indent != 2 {
		t.Errorf("Indent = %d, want 2", l.Indent)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, l.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutWideRunes(t *testing.T) {
	e := NewEngine(4)
	l := e.Layout(&textcore.ViewLineData{Content: "世a", MinColumn: 1, MaxColumn: 3}, core.DefaultStyle())

	if l.Width() != 3 {
		t.Fatalf("Width() = %d, want 3", l.Width())
	}
	if !l.Cells[1].IsContinuation() {
		t.Error("cell 1 should continue the wide rune")
	}
	if diff := cmp.Diff([]int{1, 1, 2}, l.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := NewEngine(4).Layout(&textcore.ViewLineData{MinColumn: 1, MaxColumn: 1}, core.DefaultStyle())
	if l.Width() != 0 {
		t.Errorf("Width() = %d, want 0", l.Width())
	}
	if got := l.ColumnOfCell(0); got != 1 {
		t.Errorf("ColumnOfCell(0) = %d, want 1", got)
	}
	if got := l.CellOfColumn(1); got != 0 {
		t.Errorf("CellOfColumn(1) = %d, want 0", got)
	}
}
