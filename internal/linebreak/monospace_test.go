package linebreak

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/core"
)

func computeOne(t *testing.T, opts Options, text string, injected []core.LineInjectedText) *LineBreakData {
	t.Helper()
	c := NewMonospaceFactory().CreateLineBreaksComputer(opts)
	c.AddRequest(text, injected, nil)
	out := c.Finalize()
	if len(out) != 1 {
		t.Fatalf("Finalize returned %d results, want 1", len(out))
	}
	return out[0]
}

func wrapAt(column int) Options {
	opts := DefaultOptions()
	opts.WrappingColumn = column
	opts.WrappingIndent = IndentNone
	return opts
}

func TestMonospaceNoWrapReturnsNil(t *testing.T) {
	if d := computeOne(t, wrapAt(0), "a fairly long line that is never wrapped", nil); d != nil {
		t.Errorf("wrapping disabled: got %+v, want nil", d)
	}
	if d := computeOne(t, wrapAt(20), "short", nil); d != nil {
		t.Errorf("fitting line: got %+v, want nil", d)
	}
}

func TestMonospaceWrapsAtWords(t *testing.T) {
	d := computeOne(t, wrapAt(8), "hello world foo", nil)
	if d == nil {
		t.Fatal("expected break data")
	}
	if diff := cmp.Diff([]int{6, 12, 15}, d.BreakOffsets); diff != "" {
		t.Errorf("BreakOffsets mismatch (-want +got):\n%s", diff)
	}
}

func TestMonospaceHardBreakWithoutSpaces(t *testing.T) {
	d := computeOne(t, wrapAt(4), "abcdefghij", nil)
	if diff := cmp.Diff([]int{4, 8, 10}, d.BreakOffsets); diff != "" {
		t.Errorf("BreakOffsets mismatch (-want +got):\n%s", diff)
	}
}

func TestMonospaceWideCharacters(t *testing.T) {
	// Each CJK character is two cells wide.
	d := computeOne(t, wrapAt(4), "日本語字", nil)
	if diff := cmp.Diff([]int{2, 4}, d.BreakOffsets); diff != "" {
		t.Errorf("BreakOffsets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 8}, d.BreakOffsetsVisibleColumn); diff != "" {
		t.Errorf("BreakOffsetsVisibleColumn mismatch (-want +got):\n%s", diff)
	}
}

func TestMonospaceWrappedIndent(t *testing.T) {
	opts := wrapAt(10)
	opts.WrappingIndent = IndentSame
	d := computeOne(t, opts, "  aaaa bbbb cccc", nil)
	if d.WrappedTextIndentLength != 2 {
		t.Errorf("WrappedTextIndentLength = %d, want 2", d.WrappedTextIndentLength)
	}
	if d.OutputLineCount() < 2 {
		t.Errorf("OutputLineCount() = %d, want at least 2", d.OutputLineCount())
	}
}

func TestMonospaceEscapedLineFeeds(t *testing.T) {
	opts := wrapAt(80)
	opts.WrapOnEscapedLineFeeds = true
	d := computeOne(t, opts, `one\ntwo`, nil)
	if d == nil {
		t.Fatal("expected break data")
	}
	if diff := cmp.Diff([]int{5, 8}, d.BreakOffsets); diff != "" {
		t.Errorf("BreakOffsets mismatch (-want +got):\n%s", diff)
	}
}

func TestMonospaceInjectedTextKeepsData(t *testing.T) {
	injected := []core.LineInjectedText{{Line: 1, Column: 2, Text: core.InjectedText{Content: ": int"}}}
	d := computeOne(t, wrapAt(0), "xy", injected)
	if d == nil {
		t.Fatal("expected break data for injected text")
	}
	if diff := cmp.Diff([]int{7}, d.BreakOffsets); diff != "" {
		t.Errorf("BreakOffsets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, d.InjectionOffsets); diff != "" {
		t.Errorf("InjectionOffsets mismatch (-want +got):\n%s", diff)
	}
}

func TestMonospaceReusesPreviousFittingData(t *testing.T) {
	injected := []core.LineInjectedText{{Line: 1, Column: 1, Text: core.InjectedText{Content: "> "}}}
	prev := computeOne(t, wrapAt(40), "abc", injected)

	c := NewMonospaceFactory().CreateLineBreaksComputer(wrapAt(30))
	c.AddRequest("abc", injected, prev)
	if got := c.Finalize()[0]; got != prev {
		t.Errorf("expected previous data to be reused")
	}
}

func TestMonospaceFinalizeResetsRequests(t *testing.T) {
	c := NewMonospaceFactory().CreateLineBreaksComputer(wrapAt(4))
	c.AddRequest("abcdef", nil, nil)
	c.AddRequest("ab", nil, nil)
	out := c.Finalize()
	if len(out) != 2 || out[0] == nil || out[1] != nil {
		t.Fatalf("unexpected results %+v", out)
	}
	if len(c.Finalize()) != 0 {
		t.Error("second Finalize should be empty")
	}
}

func TestOnlyWrappingColumnDiffers(t *testing.T) {
	a := DefaultOptions()
	b := a
	b.WrappingColumn = 40
	if !a.OnlyWrappingColumnDiffers(b) {
		t.Error("expected column-only difference")
	}
	b.WordBreak = WordBreakKeepAll
	if a.OnlyWrappingColumnDiffers(b) {
		t.Error("word break change is not column-only")
	}
}
