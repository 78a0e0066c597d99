package renderer

import (
	textcore "github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/renderer/core"
	"github.com/dshills/viewlines/internal/renderer/gutter"
	"github.com/dshills/viewlines/internal/renderer/layout"
)

// Render paints every dirty view line, positions the cursor and flushes
// the backend.
func (v *View) Render() {
	if v.rect.IsEmpty() {
		return
	}

	cursor := v.CursorViewPosition()
	if cursor.Line != v.lastCursorLine {
		if v.gutter.Config().Mode != gutter.LineNumberAbsolute {
			// Relative numbers change on every row.
			v.dirty.MarkFullRedraw()
		} else {
			if v.lastCursorLine > 0 {
				v.dirty.MarkLine(v.lastCursorLine)
			}
			v.dirty.MarkLine(cursor.Line)
		}
		v.gutter.SetCurrentLine(v.cursor.Line)
	}

	if v.dirty.IsDirty() {
		v.paint()
	}
	v.placeCursor(cursor)
	v.lastCursorLine = cursor.Line

	v.backend.Show()
	v.dirty.Clear()
}

func (v *View) paint() {
	full := v.dirty.NeedsFullRedraw()
	top, bottom := v.viewport.VisibleLineRange()
	rows := v.rect.Height()

	var lines []*textcore.ViewLineData
	var guides []int
	if bottom >= top {
		needed := make([]bool, bottom-top+1)
		for i := range needed {
			needed[i] = full || v.dirty.IsLineDirty(top+i)
		}
		lines = v.lines.ViewLinesData(top, bottom, needed)
		if v.opts.ShowIndentGuides {
			guides = v.lines.ViewLinesIndentGuides(top, bottom)
		}
	}

	folded := v.foldStarts()
	for row := 0; row < rows; row++ {
		line := top + row
		switch {
		case row < len(lines) && lines[row] != nil:
			level := 0
			if row < len(guides) {
				level = guides[row]
			}
			v.paintLine(row, line, lines[row], level, folded)
		case row >= len(lines) && (full || v.dirty.IsLineDirty(line)):
			v.clearRow(row)
		}
	}
}

// foldStarts returns the model lines directly above a hidden range.
func (v *View) foldStarts() map[int]bool {
	if !v.opts.Gutter.ShowFoldMarkers {
		return nil
	}
	hidden := v.lines.HiddenAreas()
	out := make(map[int]bool, len(hidden))
	for _, r := range hidden {
		out[r.StartLine-1] = true
	}
	return out
}

func (v *View) paintLine(row, viewLine int, data *textcore.ViewLineData, guideLevel int, folded map[int]bool) {
	y := v.rect.Top + row
	x := v.rect.Left
	styles := v.opts.Styles

	modelLine := v.lines.ConvertViewPositionToModelPosition(viewLine, data.MinColumn).Line
	first := v.lines.ViewLineNumberOfModelPosition(modelLine, 1) == viewLine
	g := v.gutter.Format(modelLine, first, folded[modelLine])
	for _, r := range g.Text {
		if x >= v.rect.Right {
			return
		}
		style := styles.LineNumber
		switch {
		case r == gutter.FoldMarker:
			style = styles.FoldMarker
		case g.Current:
			style = styles.CurrentLineNumber
		}
		v.backend.SetCell(x, y, core.NewStyledCell(r, style))
		x++
	}

	l := v.layout.Layout(data, styles.Text)
	v.styleInjected(viewLine, l)
	v.drawGuides(l, guideLevel)

	width := v.TextWidth()
	for i := 0; i < len(l.Cells) && i < width; i++ {
		cell := l.Cells[i]
		if cell.Width > 1 && i+cell.Width > width {
			// Wide rune cut by the right edge.
			cell = core.NewStyledCell(' ', cell.Style)
		}
		v.backend.SetCell(x+i, y, cell)
	}
	if n := len(l.Cells); n < width {
		v.backend.Fill(core.NewScreenRect(y, x+n, y+1, x+width), core.NewStyledCell(' ', styles.Text))
	}
}

// styleInjected restyles the cells that show injected text.
func (v *View) styleInjected(viewLine int, l *layout.Line) {
	prev := 0
	injected := false
	for i, col := range l.Columns {
		if col != prev {
			injected = v.isInjected(viewLine, col)
			prev = col
		}
		if injected && !l.Cells[i].IsContinuation() {
			l.Cells[i].Style = v.opts.Styles.InjectedText
		}
	}
}

// isInjected reports whether the character at view column col belongs to
// injected text. Both edges of the character must touch the same
// injection.
func (v *View) isInjected(viewLine, col int) bool {
	before := v.lines.InjectedTextAt(textcore.Position{Line: viewLine, Column: col})
	if before == nil {
		return false
	}
	after := v.lines.InjectedTextAt(textcore.Position{Line: viewLine, Column: col + 1})
	return after != nil && *after == *before
}

// drawGuides puts indent guides on the blank cells at each indent level.
func (v *View) drawGuides(l *layout.Line, level int) {
	tab := v.layout.TabWidth()
	for k := 0; k < level; k++ {
		x := k * tab
		if x >= len(l.Cells) {
			break
		}
		if l.Cells[x].Rune == ' ' {
			l.Cells[x] = core.NewStyledCell(IndentGuideRune, v.opts.Styles.IndentGuide)
		}
	}
}

func (v *View) clearRow(row int) {
	y := v.rect.Top + row
	v.backend.Fill(core.NewScreenRect(y, v.rect.Left, y+1, v.rect.Right), core.NewStyledCell(' ', v.opts.Styles.Text))
}

func (v *View) placeCursor(cursor textcore.Position) {
	row := v.viewport.LineToScreenRow(cursor.Line)
	if row < 0 {
		v.backend.HideCursor()
		return
	}
	data := v.lines.ViewLineData(cursor.Line)
	cell := v.layout.Layout(&data, v.opts.Styles.Text).CellOfColumn(cursor.Column)
	if cell >= v.TextWidth() {
		cell = v.TextWidth() - 1
	}
	v.backend.ShowCursor(v.rect.Left+v.gutter.Width()+cell, v.rect.Top+row)
}
