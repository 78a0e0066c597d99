package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/viewlines/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(40, 10)
	return term, screen
}

func TestTerminalCellRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t)

	tests := []struct {
		name  string
		style core.Style
	}{
		{"default", core.DefaultStyle()},
		{"rgb", core.NewStyle(core.ColorFromRGB(255, 0, 16)).WithBackground(core.ColorFromRGB(1, 2, 3))},
		{"indexed", core.NewStyle(core.ColorFromIndex(12))},
		{"attributes", core.DefaultStyle().Bold().Reverse()},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := core.NewStyledCell('x', tt.style)
			term.SetCell(i, 0, cell)
			if got := term.GetCell(i, 0); !got.Equals(cell) {
				t.Errorf("GetCell = %+v, want %+v", got, cell)
			}
		})
	}
}

func TestTerminalFill(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.Fill(core.RectFromSize(2, 3, 2, 4), core.NewCell('#'))
	term.Show()

	for _, pos := range [][2]int{{3, 2}, {6, 3}} {
		if r, _, _, _ := screen.GetContent(pos[0], pos[1]); r != '#' { //nolint:staticcheck // GetContent is the correct API
			t.Errorf("cell %v = %q, want '#'", pos, r)
		}
	}
	if r, _, _, _ := screen.GetContent(7, 2); r == '#' { //nolint:staticcheck // GetContent is the correct API
		t.Error("cell right of the rect was filled")
	}
}

func TestTerminalSkipsContinuationCells(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.SetCell(0, 1, core.NewCell('中'))
	term.SetCell(1, 1, core.ContinuationCell())
	if got := term.GetCell(0, 1); got.Rune != '中' {
		t.Errorf("wide cell = %q", got.Rune)
	}
}

func TestTerminalPostEvent(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})
	term.PostEvent(Event{Type: EventInterrupt})

	// Init may have queued a resize event first.
	var got []Event
	for len(got) < 2 {
		ev := term.PollEvent()
		if ev.Type != EventKey && ev.Type != EventInterrupt {
			continue
		}
		got = append(got, ev)
	}
	if got[0].Type != EventKey || got[0].Key != KeyRune || got[0].Rune != 'q' {
		t.Errorf("first event = %+v, want rune q", got[0])
	}
	if got[1].Type != EventInterrupt {
		t.Errorf("second event = %+v, want interrupt", got[1])
	}
}

func TestKeyConversion(t *testing.T) {
	for tk, key := range keyMap {
		if got := convertKey(tk); got != key {
			t.Errorf("convertKey(%v) = %v, want %v", tk, got, key)
		}
		if got := convertToTcellKey(key); got != tk {
			t.Errorf("convertToTcellKey(%v) = %v, want %v", key, got, tk)
		}
	}
	if got := convertKey(tcell.KeyF5); got != KeyNone {
		t.Errorf("unmapped key = %v, want KeyNone", got)
	}
}

func TestModConversion(t *testing.T) {
	mods := ModShift | ModAlt
	if got := convertMod(convertToTcellMod(mods)); got != mods {
		t.Errorf("round trip = %v, want %v", got, mods)
	}
}
