// Package gutter provides the column to the left of the view lines that
// shows model line numbers and fold markers.
//
// A model line that wraps into several view lines shows its number only on
// the first one; continuation rows get a blank gutter.
package gutter

// FoldMarker is drawn after the number of a line whose following lines are
// hidden.
const FoldMarker = '▸'

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display.
	ShowLineNumbers bool

	// MinDigits is the minimum width of the number column.
	MinDigits int

	// Mode selects absolute, relative or hybrid numbering.
	Mode LineNumberMode

	// ShowFoldMarkers reserves a column for FoldMarker.
	ShowFoldMarkers bool
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers: true,
		MinDigits:       3,
		Mode:            LineNumberAbsolute,
		ShowFoldMarkers: true,
	}
}

// Row is one formatted gutter row.
type Row struct {
	Text    string
	Current bool
}

// Gutter lays out the gutter for a model of a given size.
type Gutter struct {
	config    Config
	digits    int
	formatter *LineNumberFormatter
}

// New creates a gutter for a one-line model.
func New(config Config) *Gutter {
	g := &Gutter{config: config}
	g.digits = g.digitsFor(1)
	g.formatter = NewLineNumberFormatter(config.Mode, g.digits)
	return g
}

// Config returns the gutter configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetLineCount resizes the number column for lineCount model lines. It
// reports whether the gutter width changed.
func (g *Gutter) SetLineCount(lineCount int) bool {
	digits := g.digitsFor(lineCount)
	if digits == g.digits {
		return false
	}
	g.digits = digits
	g.formatter.SetWidth(digits)
	return true
}

// SetCurrentLine sets the cursor's model line.
func (g *Gutter) SetCurrentLine(line int) {
	g.formatter.SetCurrentLine(line)
}

// Width returns the gutter width in cells, including the trailing separator.
func (g *Gutter) Width() int {
	w := 0
	if g.config.ShowLineNumbers {
		w += g.digits
	}
	if g.config.ShowFoldMarkers {
		w++
	}
	if w > 0 {
		w++
	}
	return w
}

// Format returns the gutter row for a view line. first is true on the first
// view line of modelLine; folded is true when lines below it are hidden.
func (g *Gutter) Format(modelLine int, first, folded bool) Row {
	width := g.Width()
	if width == 0 {
		return Row{}
	}

	buf := make([]rune, 0, width)
	current := false
	if g.config.ShowLineNumbers {
		if first {
			var num string
			num, current = g.formatter.Format(modelLine)
			buf = append(buf, []rune(num)...)
		} else {
			buf = append(buf, []rune(PadLeft("", g.digits))...)
		}
	}
	if g.config.ShowFoldMarkers {
		if first && folded {
			buf = append(buf, FoldMarker)
		} else {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, ' ')
	return Row{Text: string(buf), Current: current}
}

func (g *Gutter) digitsFor(lineCount int) int {
	return max(CountDigits(lineCount), g.config.MinDigits)
}
