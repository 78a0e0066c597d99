package renderer

import (
	textcore "github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/logging"
	"github.com/dshills/viewlines/internal/renderer/backend"
	"github.com/dshills/viewlines/internal/renderer/core"
	"github.com/dshills/viewlines/internal/renderer/dirty"
	"github.com/dshills/viewlines/internal/renderer/gutter"
	"github.com/dshills/viewlines/internal/renderer/layout"
	"github.com/dshills/viewlines/internal/renderer/viewport"
	"github.com/dshills/viewlines/internal/viewmodel"
)

// IndentGuideRune is drawn at every indent guide position.
const IndentGuideRune = '│'

// Styles holds the styles the view paints with.
type Styles struct {
	Text              core.Style
	LineNumber        core.Style
	CurrentLineNumber core.Style
	IndentGuide       core.Style
	InjectedText      core.Style
	FoldMarker        core.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Text:              core.DefaultStyle(),
		LineNumber:        core.DefaultStyle().WithForeground(core.ColorGray),
		CurrentLineNumber: core.DefaultStyle().WithForeground(core.ColorYellow).Bold(),
		IndentGuide:       core.DefaultStyle().WithForeground(core.ColorGray).Dim(),
		InjectedText:      core.DefaultStyle().WithForeground(core.ColorCyan).Dim(),
		FoldMarker:        core.DefaultStyle().WithForeground(core.ColorYellow),
	}
}

// Options configures a View.
type Options struct {
	Gutter           gutter.Config
	ShowIndentGuides bool
	TabSize          int
	Styles           Styles
	Logger           *logging.Logger
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Gutter:           gutter.DefaultConfig(),
		ShowIndentGuides: true,
		TabSize:          4,
		Styles:           DefaultStyles(),
	}
}

// View paints the view lines of a viewmodel.Lines into a backend and keeps
// a cursor in model coordinates.
//
// The top of the viewport is anchored to a model position. When view lines
// move because of folding or rewrapping, Apply re-derives the top line from
// the anchor so the same text stays on screen.
type View struct {
	model   textcore.Model
	lines   viewmodel.Lines
	backend backend.Backend
	opts    Options
	log     *logging.Logger

	gutter   *gutter.Gutter
	layout   *layout.Engine
	viewport *viewport.Viewport
	dirty    *dirty.Tracker

	rect core.ScreenRect

	anchor textcore.Position
	cursor textcore.Position

	// affinity keeps a cursor placed at the end of a wrapped view line on
	// that line instead of the start of the next one.
	affinity textcore.PositionAffinity

	// preferredColumn is the view column vertical moves aim for; 0 means
	// the cursor's own column.
	preferredColumn int

	// lastCursorLine is the view line the cursor was painted on.
	lastCursorLine int
}

// NewView creates a view over lines. model must be the model lines
// projects.
func NewView(model textcore.Model, lines viewmodel.Lines, b backend.Backend, opts Options) *View {
	v := &View{
		model:    model,
		lines:    lines,
		backend:  b,
		opts:     opts,
		log:      logging.OrDiscard(opts.Logger).WithComponent("view"),
		gutter:   gutter.New(opts.Gutter),
		layout:   layout.NewEngine(opts.TabSize),
		viewport: viewport.NewViewport(0),
		dirty:    dirty.NewTracker(),
		anchor:   textcore.Position{Line: 1, Column: 1},
		cursor:   textcore.Position{Line: 1, Column: 1},
	}
	v.gutter.SetLineCount(model.LineCount())
	v.viewport.SetLineCount(lines.ViewLineCount())
	return v
}

// SetRect places the view on screen.
func (v *View) SetRect(rect core.ScreenRect) {
	v.rect = rect
	v.viewport.Resize(rect.Height())
	v.dirty.MarkFullRedraw()
	v.revealCursor()
}

// Rect returns the screen area of the view.
func (v *View) Rect() core.ScreenRect {
	return v.rect
}

// TextWidth returns the number of cells available for view line text.
func (v *View) TextWidth() int {
	return max(0, v.rect.Width()-v.gutter.Width())
}

// SetTabSize changes tab expansion and repaints.
func (v *View) SetTabSize(tabSize int) {
	v.layout.SetTabWidth(tabSize)
	v.dirty.MarkFullRedraw()
}

// Top returns the first view line on screen.
func (v *View) Top() int {
	return v.viewport.Top()
}

// Viewport returns the viewport.
func (v *View) Viewport() *viewport.Viewport {
	return v.viewport
}

// Dirty returns the dirty tracker.
func (v *View) Dirty() *dirty.Tracker {
	return v.dirty
}

// Apply records view events produced by lines. It must be called after
// every change to lines, before the next Render.
func (v *View) Apply(events []viewmodel.Event) {
	if len(events) == 0 {
		return
	}
	v.dirty.MarkEvents(events)
	v.viewport.SetLineCount(v.lines.ViewLineCount())
	if v.gutter.SetLineCount(v.model.LineCount()) {
		v.dirty.MarkFullRedraw()
	}

	v.anchor = v.model.ValidatePosition(v.anchor)
	top := v.lines.ConvertModelPositionToViewPosition(v.anchor.Line, v.anchor.Column, textcore.AffinityNone, false, true).Line
	if top != v.viewport.Top() {
		v.log.Debug("top moved from %d to %d", v.viewport.Top(), top)
		v.viewport.ScrollTo(top)
		v.dirty.MarkFullRedraw()
	}

	v.cursor = v.snapToView(v.cursor)
	v.updateAnchor()
}

// CursorModelPosition returns the cursor in model coordinates.
func (v *View) CursorModelPosition() textcore.Position {
	return v.cursor
}

// CursorViewPosition returns the cursor in view coordinates.
func (v *View) CursorViewPosition() textcore.Position {
	return v.lines.ConvertModelPositionToViewPosition(v.cursor.Line, v.cursor.Column, v.affinity, false, false)
}

// SetCursor moves the cursor to a model position, snapping it out of hidden
// lines.
func (v *View) SetCursor(pos textcore.Position) {
	v.cursor = v.snapToView(v.model.ValidatePosition(pos))
	v.affinity = textcore.AffinityNone
	v.preferredColumn = 0
	v.revealCursor()
}

// CursorUp moves the cursor one view line up.
func (v *View) CursorUp() {
	v.moveVertically(-1)
}

// CursorDown moves the cursor one view line down.
func (v *View) CursorDown() {
	v.moveVertically(1)
}

// CursorLeft moves the cursor one model column left, wrapping to the end
// of the previous view line.
func (v *View) CursorLeft() {
	v.preferredColumn = 0
	v.affinity = textcore.AffinityNone
	if v.cursor.Column > 1 {
		v.cursor.Column--
		v.revealCursor()
		return
	}
	vp := v.CursorViewPosition()
	if vp.Line > 1 {
		prev := vp.Line - 1
		v.cursor = v.lines.ConvertViewPositionToModelPosition(prev, v.lines.ViewLineMaxColumn(prev))
		v.affinity = textcore.AffinityLeft
	}
	v.revealCursor()
}

// CursorRight moves the cursor one model column right, wrapping to the
// start of the next view line. Injected text is stepped over.
func (v *View) CursorRight() {
	v.preferredColumn = 0
	v.affinity = textcore.AffinityNone
	if v.cursor.Column < v.model.LineMaxColumn(v.cursor.Line) {
		v.cursor.Column++
		v.revealCursor()
		return
	}
	vp := v.CursorViewPosition()
	if vp.Line < v.lines.ViewLineCount() {
		next := vp.Line + 1
		v.cursor = v.lines.ConvertViewPositionToModelPosition(next, v.lines.ViewLineMinColumn(next))
	}
	v.revealCursor()
}

// CursorHome moves the cursor to the start of its view line.
func (v *View) CursorHome() {
	vp := v.CursorViewPosition()
	v.cursor = v.lines.ConvertViewPositionToModelPosition(vp.Line, v.lines.ViewLineMinColumn(vp.Line))
	v.affinity = textcore.AffinityNone
	v.preferredColumn = 0
	v.revealCursor()
}

// CursorEnd moves the cursor to the end of its view line.
func (v *View) CursorEnd() {
	vp := v.CursorViewPosition()
	v.cursor = v.lines.ConvertViewPositionToModelPosition(vp.Line, v.lines.ViewLineMaxColumn(vp.Line))
	v.affinity = textcore.AffinityLeft
	v.preferredColumn = 0
	v.revealCursor()
}

// PageUp scrolls one page up and moves the cursor with it.
func (v *View) PageUp() {
	v.page(v.viewport.PageUp)
}

// PageDown scrolls one page down and moves the cursor with it.
func (v *View) PageDown() {
	v.page(v.viewport.PageDown)
}

func (v *View) page(scroll func() bool) {
	before := v.viewport.Top()
	if !scroll() {
		return
	}
	v.dirty.MarkFullRedraw()
	v.updateAnchor()

	// Keep the cursor inside the margins so revealing it does not undo the
	// scroll.
	top := v.viewport.Top()
	marginTop, marginBottom := v.viewport.Margins()
	line := v.CursorViewPosition().Line + top - before
	line = max(top+marginTop, min(line, top+v.viewport.Height()-1-marginBottom))
	v.moveToViewLine(line)
}

// ScrollBy scrolls without moving the cursor.
func (v *View) ScrollBy(deltaLines int) {
	if v.viewport.ScrollBy(deltaLines) {
		v.dirty.MarkFullRedraw()
		v.updateAnchor()
	}
}

// ClickAt moves the cursor to the text under screen cell (x, y). It returns
// false if the cell is outside the text area.
func (v *View) ClickAt(x, y int) bool {
	row := y - v.rect.Top
	cell := x - v.rect.Left - v.gutter.Width()
	if row < 0 || row >= v.rect.Height() || cell < 0 || x >= v.rect.Right {
		return false
	}
	line := v.viewport.ScreenRowToLine(row)
	if line == 0 {
		return false
	}
	data := v.lines.ViewLineData(line)
	col := v.layout.Layout(&data, v.opts.Styles.Text).ColumnOfCell(cell)
	col = max(data.MinColumn, min(col, data.MaxColumn))
	v.cursor = v.lines.ConvertViewPositionToModelPosition(line, col)
	v.affinity = affinityAt(col, data.MaxColumn)
	v.preferredColumn = 0
	v.revealCursor()
	return true
}

func (v *View) moveVertically(delta int) {
	v.moveToViewLine(v.CursorViewPosition().Line + delta)
}

func (v *View) moveToViewLine(line int) {
	if v.preferredColumn == 0 {
		v.preferredColumn = v.CursorViewPosition().Column
	}
	line = max(1, min(line, v.lines.ViewLineCount()))
	maxCol := v.lines.ViewLineMaxColumn(line)
	col := max(v.lines.ViewLineMinColumn(line), min(v.preferredColumn, maxCol))
	v.cursor = v.lines.ConvertViewPositionToModelPosition(line, col)
	v.affinity = affinityAt(col, maxCol)
	v.revealCursor()
}

func affinityAt(col, maxCol int) textcore.PositionAffinity {
	if col == maxCol {
		return textcore.AffinityLeft
	}
	return textcore.AffinityNone
}

// snapToView moves a model position out of hidden lines.
func (v *View) snapToView(pos textcore.Position) textcore.Position {
	if v.lines.ModelPositionIsVisible(pos.Line, pos.Column) {
		return pos
	}
	vp := v.lines.ConvertModelPositionToViewPosition(pos.Line, pos.Column, textcore.AffinityNone, false, false)
	return v.lines.ConvertViewPositionToModelPosition(vp.Line, vp.Column)
}

func (v *View) revealCursor() {
	if v.viewport.Height() == 0 {
		return
	}
	if v.viewport.ScrollToReveal(v.CursorViewPosition().Line) {
		v.dirty.MarkFullRedraw()
		v.updateAnchor()
	}
}

func (v *View) updateAnchor() {
	top := v.viewport.Top()
	v.anchor = v.lines.ConvertViewPositionToModelPosition(top, v.lines.ViewLineMinColumn(top))
}
