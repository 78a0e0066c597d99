package gutter

import "strconv"

// LineNumberMode defines how line numbers are displayed.
type LineNumberMode uint8

const (
	// LineNumberAbsolute shows model line numbers (1, 2, 3, ...).
	LineNumberAbsolute LineNumberMode = iota

	// LineNumberRelative shows the distance from the cursor line.
	LineNumberRelative

	// LineNumberHybrid shows the absolute number on the cursor line and
	// relative numbers elsewhere.
	LineNumberHybrid
)

// ParseLineNumberMode parses "absolute", "relative" or "hybrid".
func ParseLineNumberMode(s string) (LineNumberMode, bool) {
	switch s {
	case "absolute", "":
		return LineNumberAbsolute, true
	case "relative":
		return LineNumberRelative, true
	case "hybrid":
		return LineNumberHybrid, true
	}
	return LineNumberAbsolute, false
}

func (m LineNumberMode) String() string {
	switch m {
	case LineNumberRelative:
		return "relative"
	case LineNumberHybrid:
		return "hybrid"
	default:
		return "absolute"
	}
}

// LineNumberFormatter formats model line numbers to a fixed width.
type LineNumberFormatter struct {
	mode        LineNumberMode
	width       int
	currentLine int
}

// NewLineNumberFormatter creates a new line number formatter.
func NewLineNumberFormatter(mode LineNumberMode, width int) *LineNumberFormatter {
	return &LineNumberFormatter{
		mode:        mode,
		width:       width,
		currentLine: 1,
	}
}

// SetMode changes the line number mode.
func (f *LineNumberFormatter) SetMode(mode LineNumberMode) {
	f.mode = mode
}

// SetWidth sets the display width for line numbers.
func (f *LineNumberFormatter) SetWidth(width int) {
	f.width = width
}

// SetCurrentLine sets the cursor's model line for relative numbering.
func (f *LineNumberFormatter) SetCurrentLine(line int) {
	f.currentLine = line
}

// Format returns the padded number for a model line and whether it is the
// cursor line.
func (f *LineNumberFormatter) Format(line int) (string, bool) {
	s := strconv.Itoa(f.number(line))
	return PadLeft(s, f.width), line == f.currentLine
}

func (f *LineNumberFormatter) number(line int) int {
	switch f.mode {
	case LineNumberRelative:
		return absDiff(line, f.currentLine)
	case LineNumberHybrid:
		if line == f.currentLine {
			return line
		}
		return absDiff(line, f.currentLine)
	default:
		return line
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}

// CountDigits returns the number of decimal digits in n.
func CountDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
