package linebreak

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/viewlines/internal/core"
)

// MonospaceFactory creates computers that wrap on a fixed-width cell grid.
// Grapheme clusters are never split; wide (East Asian) clusters take two
// cells; tabs advance to the next tab stop.
type MonospaceFactory struct{}

// NewMonospaceFactory creates a monospace factory.
func NewMonospaceFactory() *MonospaceFactory {
	return &MonospaceFactory{}
}

// CreateLineBreaksComputer implements Factory.
func (f *MonospaceFactory) CreateLineBreaksComputer(opts Options) Computer {
	if opts.TabSize < 1 {
		opts.TabSize = 1
	}
	return &monospaceComputer{opts: opts}
}

type breakRequest struct {
	text     string
	injected []core.LineInjectedText
	previous *LineBreakData
}

type monospaceComputer struct {
	opts     Options
	requests []breakRequest
}

func (c *monospaceComputer) AddRequest(lineText string, injected []core.LineInjectedText, previous *LineBreakData) {
	c.requests = append(c.requests, breakRequest{text: lineText, injected: injected, previous: previous})
}

func (c *monospaceComputer) Finalize() []*LineBreakData {
	out := make([]*LineBreakData, len(c.requests))
	for i, req := range c.requests {
		out[i] = c.compute(req)
	}
	c.requests = nil
	return out
}

// cluster is one grapheme cluster of the input with injections.
type cluster struct {
	offset int // rune offset
	width  int // cells
	visCol int // visible column at the cluster start
	text   string
	space  bool
	wide   bool
}

func (c *monospaceComputer) compute(req breakRequest) *LineBreakData {
	column := c.opts.WrappingColumn
	if c.canReuse(req.previous, len(req.injected), column) {
		return req.previous
	}

	injOffsets, injTexts := InjectionsFor(req.injected)
	text := ApplyInjections(req.text, injOffsets, injTexts)
	clusters, totalRunes, totalWidth := c.segment(text)

	if column <= 0 || (totalWidth <= column && !c.hasEscapedLineFeed(clusters)) {
		if injOffsets == nil {
			return nil
		}
		return &LineBreakData{
			InjectionOffsets:          injOffsets,
			InjectedTexts:             injTexts,
			BreakOffsets:              []int{totalRunes},
			BreakOffsetsVisibleColumn: []int{totalWidth},
		}
	}

	indent := c.wrappedIndent(req.text, column)
	breaks := make([]int, 0, 1+totalWidth/column)
	breakCols := make([]int, 0, cap(breaks))

	lineStart := 0
	lineCap := column
	used := 0
	lastOpportunity := -1

	startLine := func(at int) {
		breaks = append(breaks, clusters[at].offset)
		breakCols = append(breakCols, clusters[at].visCol)
		lineStart = at
		lineCap = column - indent
		used = 0
		lastOpportunity = -1
	}

	for i := 0; i < len(clusters); i++ {
		cl := clusters[i]
		if i > lineStart {
			if c.forcedBreakBefore(clusters, i) {
				startLine(i)
				used = cl.width
				continue
			}
			if c.canBreakBefore(clusters, i) {
				lastOpportunity = i
			}
		}

		if used+cl.width > lineCap && i > lineStart && !cl.space {
			at := i
			if lastOpportunity > lineStart {
				at = lastOpportunity
			}
			startLine(at)
			i = at - 1
			continue
		}
		used += cl.width
	}

	breaks = append(breaks, totalRunes)
	breakCols = append(breakCols, totalWidth)

	if len(breaks) == 1 && injOffsets == nil {
		return nil
	}
	return &LineBreakData{
		InjectionOffsets:          injOffsets,
		InjectedTexts:             injTexts,
		BreakOffsets:              breaks,
		BreakOffsetsVisibleColumn: breakCols,
		WrappedTextIndentLength:   indent,
	}
}

// canReuse reports whether break data computed for the same text under a
// different wrapping column is still valid: it produced a single line that
// fits the new column.
func (c *monospaceComputer) canReuse(prev *LineBreakData, injected, column int) bool {
	if prev == nil || prev.OutputLineCount() != 1 || len(prev.BreakOffsetsVisibleColumn) != 1 {
		return false
	}
	if len(prev.InjectionOffsets) != injected {
		return false
	}
	return column <= 0 || prev.BreakOffsetsVisibleColumn[0] <= column
}

// segment splits text into grapheme clusters and measures them.
func (c *monospaceComputer) segment(text string) (clusters []cluster, runes, width int) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s := g.Str()
		w := 0
		if s == "\t" {
			w = c.opts.TabSize - width%c.opts.TabSize
		} else {
			w = runewidth.StringWidth(s)
		}
		clusters = append(clusters, cluster{
			offset: runes,
			width:  w,
			visCol: width,
			text:   s,
			space:  s == " " || s == "\t",
			wide:   w >= 2,
		})
		runes += len(g.Runes())
		width += w
	}
	return clusters, runes, width
}

// wrappedIndent returns the indent of continuation lines, or 0 when it
// would leave too little room.
func (c *monospaceComputer) wrappedIndent(text string, column int) int {
	if c.opts.WrappingIndent == IndentNone {
		return 0
	}

	lead := 0
	for _, r := range text {
		if r == ' ' {
			lead++
		} else if r == '\t' {
			lead += c.opts.TabSize - lead%c.opts.TabSize
		} else {
			break
		}
	}

	indent := lead
	switch c.opts.WrappingIndent {
	case IndentIndent:
		indent += c.opts.TabSize
	case IndentDeep:
		indent += 2 * c.opts.TabSize
	}
	if indent+2 > column {
		return 0
	}
	return indent
}

func (c *monospaceComputer) canBreakBefore(clusters []cluster, i int) bool {
	prev, cur := clusters[i-1], clusters[i]
	if prev.space && !cur.space {
		return true
	}
	return c.opts.WordBreak == WordBreakNormal && (prev.wide || cur.wide)
}

// forcedBreakBefore reports a break after a literal "\n" escape.
func (c *monospaceComputer) forcedBreakBefore(clusters []cluster, i int) bool {
	return c.opts.WrapOnEscapedLineFeeds && i >= 2 &&
		clusters[i-1].text == "n" && clusters[i-2].text == `\`
}

func (c *monospaceComputer) hasEscapedLineFeed(clusters []cluster) bool {
	if !c.opts.WrapOnEscapedLineFeeds {
		return false
	}
	for i := 2; i < len(clusters); i++ {
		if c.forcedBreakBefore(clusters, i) {
			return true
		}
	}
	return false
}
