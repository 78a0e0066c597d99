// Package viewport tracks which view lines are on screen.
//
// Lines are 1-based view line numbers. The viewport scrolls vertically
// only; long lines are either wrapped by the view model or clipped by the
// renderer.
package viewport

// maxMarginRatio bounds scroll margins to a third of the height.
const maxMarginRatio = 3

// Viewport represents the visible window over the view lines. It is not
// safe for concurrent use.
type Viewport struct {
	top       int
	height    int
	lineCount int

	// Scroll margins (keep the cursor this far from the edges)
	marginTop    int
	marginBottom int
}

// NewViewport creates a viewport with the given height. Height is clamped
// to a minimum of 1.
func NewViewport(height int) *Viewport {
	return &Viewport{
		top:          1,
		height:       max(1, height),
		marginTop:    3,
		marginBottom: 3,
	}
}

// Height returns the number of rows.
func (v *Viewport) Height() int {
	return v.height
}

// Top returns the first visible view line.
func (v *Viewport) Top() int {
	return v.top
}

// Bottom returns the last visible view line, or Top()-1 when there are no
// lines.
func (v *Viewport) Bottom() int {
	return min(v.top+v.height-1, v.lineCount)
}

// VisibleLineRange returns the first and last visible view lines.
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.top, v.Bottom()
}

// Resize changes the height.
func (v *Viewport) Resize(height int) {
	v.height = max(1, height)
	v.clamp()
}

// SetLineCount sets the number of view lines and clamps the top line.
func (v *Viewport) SetLineCount(n int) {
	v.lineCount = max(0, n)
	v.clamp()
}

// SetMargins sets the scroll margins. Negative values are treated as zero.
func (v *Viewport) SetMargins(top, bottom int) {
	v.marginTop = max(0, top)
	v.marginBottom = max(0, bottom)
}

// Margins returns the margins in effect, clamped to the height.
func (v *Viewport) Margins() (top, bottom int) {
	limit := v.height / maxMarginRatio
	return min(v.marginTop, limit), min(v.marginBottom, limit)
}

// IsLineVisible returns true if the view line is on screen.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.top && line <= v.Bottom()
}

// LineToScreenRow returns the row showing a view line, or -1.
func (v *Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.top
}

// ScreenRowToLine returns the view line shown on a row. Rows below the
// last line return 0.
func (v *Viewport) ScreenRowToLine(row int) int {
	line := v.top + row
	if row < 0 || row >= v.height || line > v.lineCount {
		return 0
	}
	return line
}

// ScrollTo shows the given line at the top. It returns true if the top
// line changed.
func (v *Viewport) ScrollTo(line int) bool {
	old := v.top
	v.top = line
	v.clamp()
	return v.top != old
}

// ScrollBy scrolls by a delta number of lines.
func (v *Viewport) ScrollBy(deltaLines int) bool {
	return v.ScrollTo(v.top + deltaLines)
}

// PageUp scrolls up by one page, keeping 2 lines of overlap.
func (v *Viewport) PageUp() bool {
	return v.ScrollBy(-v.pageSize())
}

// PageDown scrolls down by one page, keeping 2 lines of overlap.
func (v *Viewport) PageDown() bool {
	return v.ScrollBy(v.pageSize())
}

func (v *Viewport) pageSize() int {
	return max(1, v.height-2)
}

// ScrollToBottom shows the last page.
func (v *Viewport) ScrollToBottom() bool {
	return v.ScrollTo(v.lineCount - v.height + 1)
}

// CenterOn centers the viewport on the given line.
func (v *Viewport) CenterOn(line int) bool {
	return v.ScrollTo(line - v.height/2)
}

// ScrollToReveal scrolls minimally so line sits inside the margins.
// Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(line int) bool {
	top, bottom := v.Margins()
	switch {
	case line < v.top+top:
		return v.ScrollTo(line - top)
	case line > v.top+v.height-1-bottom:
		return v.ScrollTo(line - v.height + 1 + bottom)
	default:
		return false
	}
}

// clamp keeps the top line within 1..lineCount.
func (v *Viewport) clamp() {
	v.top = max(1, min(v.top, v.lineCount))
}
