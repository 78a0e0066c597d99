package viewport

import (
	"testing"
)

func newViewport(height, lines int) *Viewport {
	v := NewViewport(height)
	v.SetLineCount(lines)
	return v
}

func TestNewViewport(t *testing.T) {
	v := NewViewport(24)
	if v.Height() != 24 {
		t.Errorf("expected height 24, got %d", v.Height())
	}
	if v.Top() != 1 {
		t.Errorf("expected top line 1, got %d", v.Top())
	}
	if v.Bottom() != 0 {
		t.Errorf("expected bottom 0 with no lines, got %d", v.Bottom())
	}
	if NewViewport(-5).Height() != 1 {
		t.Error("height should be clamped to 1")
	}
}

func TestViewportVisibleLineRange(t *testing.T) {
	v := newViewport(24, 100)

	if start, end := v.VisibleLineRange(); start != 1 || end != 24 {
		t.Errorf("range = %d..%d, want 1..24", start, end)
	}

	v.ScrollTo(10)
	if start, end := v.VisibleLineRange(); start != 10 || end != 33 {
		t.Errorf("range = %d..%d, want 10..33", start, end)
	}

	short := newViewport(24, 5)
	if start, end := short.VisibleLineRange(); start != 1 || end != 5 {
		t.Errorf("short range = %d..%d, want 1..5", start, end)
	}
}

func TestViewportScrollClamps(t *testing.T) {
	v := newViewport(10, 50)

	tests := []struct {
		name  string
		move  func() bool
		top   int
		moved bool
	}{
		{"scroll up at top", func() bool { return v.ScrollBy(-3) }, 1, false},
		{"scroll down", func() bool { return v.ScrollBy(5) }, 6, true},
		{"past the end", func() bool { return v.ScrollTo(500) }, 50, true},
		{"to bottom page", v.ScrollToBottom, 41, true},
		{"page up", v.PageUp, 33, true},
		{"page down", v.PageDown, 41, true},
		{"center", func() bool { return v.CenterOn(20) }, 15, true},
	}

	for _, tt := range tests {
		moved := tt.move()
		if v.Top() != tt.top || moved != tt.moved {
			t.Errorf("%s: top=%d moved=%v, want top=%d moved=%v", tt.name, v.Top(), moved, tt.top, tt.moved)
		}
	}
}

func TestViewportShrinkingContentClampsTop(t *testing.T) {
	v := newViewport(10, 50)
	v.ScrollTo(40)
	v.SetLineCount(12)
	if v.Top() != 12 {
		t.Errorf("top = %d, want 12", v.Top())
	}
	v.SetLineCount(0)
	if v.Top() != 1 {
		t.Errorf("top = %d, want 1", v.Top())
	}
}

func TestViewportScrollToReveal(t *testing.T) {
	v := newViewport(12, 100)
	v.SetMargins(2, 2)

	if v.ScrollToReveal(5) {
		t.Error("line inside the margins should not scroll")
	}
	if !v.ScrollToReveal(20) || v.Top() != 11 {
		t.Errorf("reveal 20: top = %d, want 11", v.Top())
	}
	if !v.ScrollToReveal(11) || v.Top() != 9 {
		t.Errorf("reveal 11: top = %d, want 9", v.Top())
	}
	if !v.ScrollToReveal(1) || v.Top() != 1 {
		t.Errorf("reveal 1: top = %d, want 1", v.Top())
	}
}

func TestViewportMarginsClamped(t *testing.T) {
	v := NewViewport(9)
	v.SetMargins(10, -1)
	if top, bottom := v.Margins(); top != 3 || bottom != 0 {
		t.Errorf("Margins() = %d, %d; want 3, 0", top, bottom)
	}
}

func TestViewportRowMapping(t *testing.T) {
	v := newViewport(5, 7)
	v.ScrollTo(4)

	if got := v.LineToScreenRow(6); got != 2 {
		t.Errorf("LineToScreenRow(6) = %d, want 2", got)
	}
	if got := v.LineToScreenRow(3); got != -1 {
		t.Errorf("LineToScreenRow(3) = %d, want -1", got)
	}
	if got := v.ScreenRowToLine(3); got != 7 {
		t.Errorf("ScreenRowToLine(3) = %d, want 7", got)
	}
	if got := v.ScreenRowToLine(4); got != 0 {
		t.Errorf("ScreenRowToLine(4) past the last line = %d, want 0", got)
	}
}
