package textmodel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/core"
)

func decorationRange(t *testing.T, m *Model, id string) core.Range {
	t.Helper()
	r, ok := m.DecorationRange(id)
	if !ok {
		t.Fatalf("decoration %s missing", id)
	}
	return r
}

func TestInsertLines(t *testing.T) {
	m := FromLines([]string{"a", "b", "c"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.LineRange(2, 3)}})

	batch, err := m.InsertLines(2, []string{"x", "y"})
	if err != nil {
		t.Fatalf("InsertLines: %v", err)
	}

	want := core.ContentChangeBatch{
		VersionID: 2,
		Changes: []core.ContentChange{{
			Kind:     core.ChangeLinesInserted,
			FromLine: 2,
			ToLine:   3,
			Texts:    []string{"x", "y"},
			Injected: [][]core.LineInjectedText{nil, nil},
		}},
	}
	if diff := cmp.Diff(want, batch); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "x", "y", "b", "c"}, m.LinesContent()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	if got := decorationRange(t, m, "d1"); got != core.LineRange(4, 5) {
		t.Errorf("decoration = %v, want lines 4..5", got)
	}
}

func TestInsertLinesAppend(t *testing.T) {
	m := FromLines([]string{"a"})
	if _, err := m.InsertLines(2, []string{"b\nc"}); err != nil {
		t.Fatalf("InsertLines: %v", err)
	}
	if m.LineCount() != 3 || m.LineContent(3) != "c" {
		t.Errorf("content = %v", m.LinesContent())
	}
	if _, err := m.InsertLines(9, []string{"z"}); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("err = %v, want ErrLineOutOfRange", err)
	}
}

func TestDeleteLines(t *testing.T) {
	m := FromLines([]string{"1", "2", "3", "4", "5"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.LineRange(3, 5)}})

	batch, err := m.DeleteLines(2, 3)
	if err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	if len(batch.Changes) != 1 || batch.Changes[0].Kind != core.ChangeLinesDeleted ||
		batch.Changes[0].FromLine != 2 || batch.Changes[0].ToLine != 3 {
		t.Errorf("batch = %+v", batch)
	}
	if got := decorationRange(t, m, "d1"); got != core.LineRange(2, 3) {
		t.Errorf("decoration = %v, want lines 2..3", got)
	}
}

func TestDeleteTailCollapsesDecorations(t *testing.T) {
	m := FromLines([]string{"a", "bb", "c"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.NewRange(3, 1, 3, 2)}})

	if _, err := m.DeleteLines(3, 3); err != nil {
		t.Fatalf("DeleteLines: %v", err)
	}
	if got := decorationRange(t, m, "d1"); got != core.NewRange(2, 3, 2, 3) {
		t.Errorf("decoration = %v", got)
	}
}

func TestDeleteLinesErrors(t *testing.T) {
	m := FromLines([]string{"a", "b"})
	tests := []struct {
		from, to int
	}{
		{0, 1},
		{2, 1},
		{1, 3},
		{1, 2},
	}
	for _, tt := range tests {
		if _, err := m.DeleteLines(tt.from, tt.to); !errors.Is(err, ErrRangeInvalid) {
			t.Errorf("DeleteLines(%d,%d) err = %v, want ErrRangeInvalid", tt.from, tt.to, err)
		}
	}
	if m.VersionID() != 1 {
		t.Error("failed edits must not bump the version")
	}
}

func TestApplyEditGrowing(t *testing.T) {
	m := FromLines([]string{"abc", "def", "ghi"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.NewRange(3, 2, 3, 3)}})

	batch, err := m.ApplyEdit(core.NewRange(1, 2, 2, 2), "X\nY\nZ")
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	if diff := cmp.Diff([]string{"aX", "Y", "Zef", "ghi"}, m.LinesContent()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	kinds := []core.ContentChangeKind{}
	for _, c := range batch.Changes {
		kinds = append(kinds, c.Kind)
	}
	wantKinds := []core.ContentChangeKind{core.ChangeLineChanged, core.ChangeLineChanged, core.ChangeLinesInserted}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	ins := batch.Changes[2]
	if ins.FromLine != 3 || ins.ToLine != 3 || ins.Texts[0] != "Zef" {
		t.Errorf("inserted change = %+v", ins)
	}
	if got := decorationRange(t, m, "d1"); got != core.NewRange(4, 2, 4, 3) {
		t.Errorf("decoration = %v", got)
	}
}

func TestApplyEditShrinking(t *testing.T) {
	m := FromLines([]string{"a", "b", "c", "d"})
	batch, err := m.ApplyEdit(core.NewRange(1, 2, 3, 1), "")
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if diff := cmp.Diff([]string{"ac", "d"}, m.LinesContent()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	want := []core.ContentChange{
		{Kind: core.ChangeLineChanged, FromLine: 1, ToLine: 1, Texts: []string{"ac"}, Injected: [][]core.LineInjectedText{nil}},
		{Kind: core.ChangeLinesDeleted, FromLine: 2, ToLine: 3},
	}
	if diff := cmp.Diff(want, batch.Changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEditShiftsSameLineDecoration(t *testing.T) {
	m := FromLines([]string{"abcd"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.NewRange(1, 3, 1, 4)}})

	if _, err := m.ApplyEdit(core.NewRange(1, 1, 1, 2), "XY"); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if got := decorationRange(t, m, "d1"); got != core.NewRange(1, 4, 1, 5) {
		t.Errorf("decoration = %v", got)
	}
	if m.LineContent(1) != "XYbcd" {
		t.Errorf("content = %q", m.LineContent(1))
	}
}

func TestApplyEditRejectsInvalidRange(t *testing.T) {
	m := FromLines([]string{"ab"})
	if _, err := m.ApplyEdit(core.Range{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 9}, "x"); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("err = %v, want ErrRangeInvalid", err)
	}
}

func TestSetLineContentAndSetContent(t *testing.T) {
	m := FromLines([]string{"a", "b"}, seqIDs())
	m.DeltaDecorations(nil, []core.NewDecoration{{Range: core.LineRange(1, 2)}})

	batch, err := m.SetLineContent(2, "bbb")
	if err != nil {
		t.Fatalf("SetLineContent: %v", err)
	}
	if len(batch.Changes) != 1 || batch.Changes[0].Kind != core.ChangeLineChanged {
		t.Errorf("batch = %+v", batch)
	}
	if _, err := m.SetLineContent(3, "x"); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("err = %v, want ErrLineOutOfRange", err)
	}

	flush := m.SetContent("x\ny\nz")
	if flush.Changes[0].Kind != core.ChangeFlush || flush.VersionID != m.VersionID() {
		t.Errorf("flush batch = %+v", flush)
	}
	if m.DecorationCount() != 0 {
		t.Error("SetContent should drop decorations")
	}
	if m.Text() != "x\ny\nz" {
		t.Errorf("Text() = %q", m.Text())
	}
}
