package textmodel

import (
	"strings"

	"github.com/dshills/viewlines/internal/core"
)

// Model is a line-based text buffer.
type Model struct {
	lines     []string
	versionID int
	tabSize   int

	decorations map[string]*decoration
	newID       func() string
	seq         int
}

// New creates a model holding text. Line endings are normalized to \n.
func New(text string, opts ...Option) *Model {
	m := &Model{
		lines:       splitLines(text),
		versionID:   1,
		tabSize:     4,
		decorations: make(map[string]*decoration),
		newID:       defaultID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FromLines creates a model from individual lines.
func FromLines(lines []string, opts ...Option) *Model {
	return New(strings.Join(lines, "\n"), opts...)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Text returns the full content joined with \n.
func (m *Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// TabSize returns the tab size used for guides.
func (m *Model) TabSize() int {
	return m.tabSize
}

// LinesContent returns a copy of every line.
func (m *Model) LinesContent() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// LineCount returns the number of lines. It is always at least 1.
func (m *Model) LineCount() int {
	return len(m.lines)
}

// LineContent returns the text of a line, or "" for an invalid line.
func (m *Model) LineContent(line int) string {
	if line < 1 || line > len(m.lines) {
		return ""
	}
	return m.lines[line-1]
}

// LineLength returns the length of a line in runes.
func (m *Model) LineLength(line int) int {
	return len([]rune(m.LineContent(line)))
}

// LineMinColumn is always 1.
func (m *Model) LineMinColumn(int) int {
	return 1
}

// LineMaxColumn returns the column after the last rune.
func (m *Model) LineMaxColumn(line int) int {
	return m.LineLength(line) + 1
}

// LineIndentColumn returns the column of the first non-whitespace rune, or
// the max column for blank lines.
func (m *Model) LineIndentColumn(line int) int {
	runes := []rune(m.LineContent(line))
	for i, r := range runes {
		if r != ' ' && r != '\t' {
			return i + 1
		}
	}
	return len(runes) + 1
}

// ValidatePosition clamps p into the buffer.
func (m *Model) ValidatePosition(p core.Position) core.Position {
	if p.Line < 1 {
		return core.NewPosition(1, 1)
	}
	if p.Line > len(m.lines) {
		last := len(m.lines)
		return core.NewPosition(last, m.LineMaxColumn(last))
	}
	maxCol := m.LineMaxColumn(p.Line)
	return core.NewPosition(p.Line, min(max(p.Column, 1), maxCol))
}

// ValidateRange clamps both ends of r into the buffer.
func (m *Model) ValidateRange(r core.Range) core.Range {
	return core.RangeFromPositions(m.ValidatePosition(r.Start()), m.ValidatePosition(r.End()))
}

// NormalizePosition validates p. Columns are rune based, so there is no
// surrogate pair to step over.
func (m *Model) NormalizePosition(p core.Position, _ core.PositionAffinity) core.Position {
	return m.ValidatePosition(p)
}

// VersionID returns the current version. It increases with every edit.
func (m *Model) VersionID() int {
	return m.versionID
}

// Guides returns the guide engine for this model.
func (m *Model) Guides() core.Guides {
	return guides{m: m}
}
