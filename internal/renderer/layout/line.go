// Package layout turns view line payloads into screen cells.
//
// Tabs expand against the visible column of the model line, so a wrapped
// continuation keeps the same tab stops as the text it continues.
package layout

import (
	textcore "github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/renderer/core"
)

// Line is a laid-out view line.
type Line struct {
	// Cells holds one entry per screen column.
	Cells []core.Cell

	// Columns[i] is the 1-based view column of the character drawn in
	// Cells[i]. Tab padding and continuation cells repeat the column.
	Columns []int

	// Indent is the number of wrapped-indent cells at the start of Cells.
	Indent int

	// StartVisibleColumn is the model visible column of Cells[Indent].
	StartVisibleColumn int
}

// Width returns the number of cells in the line.
func (l *Line) Width() int {
	return len(l.Cells)
}

// CellOfColumn returns the first cell drawing view column col. Columns past
// the end of the line map to the cell after the last one.
func (l *Line) CellOfColumn(col int) int {
	for i, c := range l.Columns {
		if c >= col {
			return i
		}
	}
	return len(l.Cells)
}

// ColumnOfCell returns the view column drawn at cell x. Cells past the end
// map to the column after the last character.
func (l *Line) ColumnOfCell(x int) int {
	if x < 0 {
		x = 0
	}
	if x < len(l.Columns) {
		return l.Columns[x]
	}
	if len(l.Columns) == 0 {
		return 1
	}
	return l.Columns[len(l.Columns)-1] + 1
}


// Engine lays out view lines.
type Engine struct {
	tabs *TabExpander
}

// NewEngine creates a layout engine with the given tab width.
func NewEngine(tabWidth int) *Engine {
	return &Engine{tabs: NewTabExpander(tabWidth)}
}

// TabWidth returns the current tab width.
func (e *Engine) TabWidth() int {
	return e.tabs.TabWidth()
}

// SetTabWidth sets the tab width.
func (e *Engine) SetTabWidth(width int) {
	e.tabs.SetTabWidth(width)
}

// Layout expands a view line into cells styled with style.
func (e *Engine) Layout(data *textcore.ViewLineData, style core.Style) *Line {
	runes := []rune(data.Content)
	indent := max(0, min(data.MinColumn-1, len(runes)))

	l := &Line{
		Cells:              make([]core.Cell, 0, len(runes)),
		Columns:            make([]int, 0, len(runes)),
		Indent:             indent,
		StartVisibleColumn: data.StartVisibleColumn,
	}

	for i := 0; i < indent; i++ {
		l.push(core.NewStyledCell(' ', style), i+1)
	}

	vc := data.StartVisibleColumn
	for i := indent; i < len(runes); i++ {
		col := i + 1
		r := runes[i]
		if r == '\t' {
			n := e.tabs.TabStopOffset(vc)
			for k := 0; k < n; k++ {
				l.push(core.NewStyledCell(' ', style), col)
			}
			vc += n
			continue
		}

		w := core.RuneWidth(r)
		switch w {
		case 0:
			// Zero-width runes get a placeholder so every column owns a cell.
			l.push(core.NewStyledCell('·', style), col)
			vc++
		case 1:
			l.push(core.NewStyledCell(r, style), col)
			vc++
		default:
			l.push(core.NewStyledCell(r, style), col)
			for k := 1; k < w; k++ {
				l.push(core.ContinuationCell(), col)
			}
			vc += w
		}
	}
	return l
}

func (l *Line) push(c core.Cell, col int) {
	l.Cells = append(l.Cells, c)
	l.Columns = append(l.Columns, col)
}
