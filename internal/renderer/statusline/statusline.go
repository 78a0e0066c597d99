// Package statusline provides the status bar drawn below the view.
package statusline

import (
	"strconv"

	"github.com/dshills/viewlines/internal/renderer/backend"
	"github.com/dshills/viewlines/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Status is the state the bar displays.
type Status struct {
	// Mode is a short label such as "WRAP" or "NOWRAP".
	Mode     string
	Filename string

	// Line and Column are the cursor's model position.
	Line   int
	Column int

	// ViewLine and ViewLines locate the cursor among view lines.
	ViewLine  int
	ViewLines int

	// Folds is the number of hidden ranges.
	Folds int
}

// StatusLine renders the bottom status line.
type StatusLine struct {
	status      Status
	message     string
	messageType MessageType
	width       int

	barStyle  core.Style
	modeStyle core.Style
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		barStyle:  core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite),
		modeStyle: core.DefaultStyle().Bold().WithBackground(core.ColorCyan).WithForeground(core.ColorBlack),
	}
}

// SetStatus replaces the displayed state.
func (s *StatusLine) SetStatus(status Status) {
	s.status = status
}

// SetMessage displays a status message until ClearMessage.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 1
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.message != "" {
		s.renderMessage(b, row)
		return
	}
	s.renderStatusBar(b, row)
}

func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	b.Fill(core.NewScreenRect(row, 0, row+1, s.width), core.NewStyledCell(' ', s.barStyle))

	col := 0
	if s.status.Mode != "" {
		col = s.put(b, row, col, s.width, " "+s.status.Mode+" ", s.modeStyle)
		col++
	}

	filename := s.status.Filename
	if filename == "" {
		filename = "[No Name]"
	}
	if s.status.Folds > 0 {
		filename += " [" + strconv.Itoa(s.status.Folds) + " folded]"
	}

	// Filename gives way to the position info.
	pos := s.formatPosition()
	posStart := s.width - len(pos) - 1
	s.put(b, row, col, posStart-1, filename, s.barStyle)
	if posStart > col {
		s.put(b, row, posStart, s.width, pos, s.barStyle)
	}
}

func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	var style core.Style
	switch s.messageType {
	case MessageError:
		style = core.DefaultStyle().WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		style = core.DefaultStyle().WithForeground(core.ColorYellow)
	default:
		style = core.DefaultStyle()
	}
	b.Fill(core.NewScreenRect(row, 0, row+1, s.width), core.NewStyledCell(' ', style))
	s.put(b, row, 0, s.width, s.message, style)
}

// put writes text from column col, stopping before limit. It returns the
// column after the last cell written.
func (s *StatusLine) put(b backend.Backend, row, col, limit int, text string, style core.Style) int {
	for _, c := range core.CellsFromString(text, style) {
		if col >= limit {
			break
		}
		b.SetCell(col, row, c)
		col++
	}
	return col
}

// formatPosition formats the position info for the right side, e.g.
// "Ln 12, Col 4 | 14/40 | 35%".
func (s *StatusLine) formatPosition() string {
	line := max(1, s.status.Line)
	col := max(1, s.status.Column)
	result := "Ln " + strconv.Itoa(line) + ", Col " + strconv.Itoa(col)

	total := s.status.ViewLines
	if total <= 0 {
		return result
	}
	view := max(1, min(s.status.ViewLine, total))
	result += " | " + strconv.Itoa(view) + "/" + strconv.Itoa(total) + " | "
	switch {
	case view == 1:
		result += "Top"
	case view == total:
		result += "Bot"
	default:
		result += strconv.Itoa(view*100/total) + "%"
	}
	return result
}
