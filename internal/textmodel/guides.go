package textmodel

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/viewlines/internal/core"
)

const bracketGuideClass = "bracket-guide"

type guides struct {
	m *Model
}

// indentWidth returns the visible width of the leading whitespace, or -1
// for a blank line.
func (g guides) indentWidth(line int) int {
	width := 0
	for _, r := range g.m.LineContent(line) {
		switch r {
		case ' ':
			width++
		case '\t':
			width += g.m.tabSize - width%g.m.tabSize
		default:
			return width
		}
	}
	return -1
}

// level returns the indent guide level of a line. Blank lines take their
// level from the nearest content lines around them.
func (g guides) level(line int) int {
	tab := g.m.tabSize
	if w := g.indentWidth(line); w >= 0 {
		return (w + tab - 1) / tab
	}

	above, below := -1, -1
	for l := line - 1; l >= 1; l-- {
		if w := g.indentWidth(l); w >= 0 {
			above = w
			break
		}
	}
	for l := line + 1; l <= g.m.LineCount(); l++ {
		if w := g.indentWidth(l); w >= 0 {
			below = w
			break
		}
	}
	switch {
	case above < 0 || below < 0:
		return 0
	case above < below:
		return 1 + above/tab
	case above == below:
		return (below + tab - 1) / tab
	default:
		return 1 + below/tab
	}
}

func (g guides) clampLine(line int) int {
	return min(max(line, 1), g.m.LineCount())
}

// LinesIndentGuides returns the indent level of every line start..end.
func (g guides) LinesIndentGuides(start, end int) []int {
	start, end = g.clampLine(start), g.clampLine(end)
	if end < start {
		return nil
	}
	out := make([]int, end-start+1)
	for line := start; line <= end; line++ {
		out[line-start] = g.level(line)
	}
	return out
}

// ActiveIndentGuide returns the block of lines sharing the indent level of
// line, limited to minLine..maxLine. A line opening a deeper block selects
// that block.
func (g guides) ActiveIndentGuide(line, minLine, maxLine int) core.ActiveIndentGuide {
	line, minLine, maxLine = g.clampLine(line), g.clampLine(minLine), g.clampLine(maxLine)

	lvl, anchor := g.level(line), line
	if line < maxLine {
		if next := g.level(line + 1); next > lvl {
			lvl, anchor = next, line+1
		}
	}
	if lvl == 0 {
		return core.ActiveIndentGuide{StartLine: line, EndLine: line}
	}

	start, end := anchor, anchor
	for start > minLine && g.level(start-1) >= lvl {
		start--
	}
	for end < maxLine && g.level(end+1) >= lvl {
		end++
	}
	return core.ActiveIndentGuide{StartLine: start, EndLine: end, Indent: lvl}
}

type bracketPair struct {
	open  core.Position
	close core.Position
}

var closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// bracketPairs matches brackets across the whole buffer. Unmatched closers
// are ignored.
func (g guides) bracketPairs() []bracketPair {
	type opener struct {
		pos   core.Position
		close rune
	}
	var stack []opener
	var pairs []bracketPair
	for line := 1; line <= g.m.LineCount(); line++ {
		col := 0
		for _, r := range g.m.LineContent(line) {
			col++
			if c, ok := closerOf[r]; ok {
				stack = append(stack, opener{pos: core.NewPosition(line, col), close: c})
				continue
			}
			if n := len(stack); n > 0 && stack[n-1].close == r {
				pairs = append(pairs, bracketPair{open: stack[n-1].pos, close: core.NewPosition(line, col)})
				stack = stack[:n-1]
			}
		}
	}
	return pairs
}

// visibleColumn returns the 0-based visible column of a model column.
func (g guides) visibleColumn(line, column int) int {
	vis := 0
	for i, r := range []rune(g.m.LineContent(line)) {
		if i+1 >= column {
			break
		}
		if r == '\t' {
			vis += g.m.tabSize - vis%g.m.tabSize
			continue
		}
		vis += runewidth.RuneWidth(r)
	}
	return vis
}

// LinesBracketGuides returns the bracket pair guides of lines start..end.
// The opening line gets a guide restricted to wrapped lines after the
// bracket; the closing line one restricted to wrapped lines up to the
// closing bracket, or a horizontal line when enabled.
func (g guides) LinesBracketGuides(start, end int, active *core.Position, opts core.BracketGuideOptions) [][]core.IndentGuide {
	start, end = g.clampLine(start), g.clampLine(end)
	if end < start {
		return nil
	}
	out := make([][]core.IndentGuide, end-start+1)
	for i := range out {
		out[i] = []core.IndentGuide{}
	}

	pairs := g.bracketPairs()
	activeIdx := -1
	if active != nil {
		for i, p := range pairs {
			if p.open.Before(*active) && !p.close.Before(*active) {
				if activeIdx < 0 || pairs[activeIdx].open.Before(p.open) {
					activeIdx = i
				}
			}
		}
	}

	for i, p := range pairs {
		if p.open.Line == p.close.Line {
			continue
		}
		isActive := i == activeIdx
		if !isActive && !opts.IncludeInactive {
			continue
		}
		class := bracketGuideClass
		if isActive && opts.HighlightActive {
			class += " active"
		}
		horizontal := opts.HorizontalGuides == core.HorizontalGuidesEnabled ||
			(opts.HorizontalGuides == core.HorizontalGuidesEnabledForActive && isActive)

		indentCol := min(g.m.LineIndentColumn(p.open.Line), p.open.Column)
		vis := g.visibleColumn(p.open.Line, indentCol)
		vertical := core.IndentGuide{
			VisibleColumn:                   vis,
			Column:                          -1,
			ClassName:                       class,
			ForWrappedLinesAfterColumn:      -1,
			ForWrappedLinesBeforeOrAtColumn: -1,
		}

		for line := max(p.open.Line, start); line <= min(p.close.Line, end); line++ {
			idx := line - start
			switch line {
			case p.open.Line:
				gd := vertical
				gd.ForWrappedLinesAfterColumn = p.open.Column
				out[idx] = append(out[idx], gd)
				if horizontal {
					out[idx] = append(out[idx], horizontalGuide(indentCol, class, true, p.open.Column+1))
				}
			case p.close.Line:
				if horizontal {
					out[idx] = append(out[idx], horizontalGuide(indentCol, class, false, p.close.Column))
					continue
				}
				gd := vertical
				gd.ForWrappedLinesBeforeOrAtColumn = p.close.Column
				out[idx] = append(out[idx], gd)
			default:
				out[idx] = append(out[idx], vertical)
			}
		}
	}
	return out
}

func horizontalGuide(column int, class string, top bool, endColumn int) core.IndentGuide {
	return core.IndentGuide{
		VisibleColumn:                   -1,
		Column:                          column,
		ClassName:                       class,
		HorizontalLine:                  &core.HorizontalGuideLine{Top: top, EndColumn: endColumn},
		ForWrappedLinesAfterColumn:      -1,
		ForWrappedLinesBeforeOrAtColumn: -1,
	}
}
