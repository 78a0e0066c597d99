package textmodel

import (
	"fmt"
	"slices"

	"github.com/dshills/viewlines/internal/core"
)

// InsertLines inserts texts as new lines before line at. at may be
// LineCount()+1 to append. Texts containing line breaks are split.
func (m *Model) InsertLines(at int, texts []string) (core.ContentChangeBatch, error) {
	if at < 1 || at > len(m.lines)+1 {
		return core.ContentChangeBatch{}, fmt.Errorf("%w: insert before line %d of %d", ErrLineOutOfRange, at, len(m.lines))
	}
	var inserted []string
	for _, t := range texts {
		inserted = append(inserted, splitLines(t)...)
	}
	if len(inserted) == 0 {
		return core.ContentChangeBatch{VersionID: m.versionID}, nil
	}

	n := len(inserted)
	m.lines = slices.Insert(m.lines, at-1, inserted...)
	m.transformDecorations(func(p core.Position) core.Position {
		if p.Line >= at {
			p.Line += n
		}
		return p
	})

	m.versionID++
	to := at + n - 1
	return core.ContentChangeBatch{
		VersionID: m.versionID,
		Changes: []core.ContentChange{{
			Kind:     core.ChangeLinesInserted,
			FromLine: at,
			ToLine:   to,
			Texts:    slices.Clone(inserted),
			Injected: m.InjectedTextsByLine(at, to),
		}},
	}, nil
}

// DeleteLines removes lines from..to inclusive. Decorations inside the
// removed lines collapse onto the line that takes their place.
func (m *Model) DeleteLines(from, to int) (core.ContentChangeBatch, error) {
	if from < 1 || to > len(m.lines) || from > to {
		return core.ContentChangeBatch{}, fmt.Errorf("%w: delete lines %d..%d of %d", ErrRangeInvalid, from, to, len(m.lines))
	}
	if from == 1 && to == len(m.lines) {
		return core.ContentChangeBatch{}, fmt.Errorf("%w: cannot delete every line", ErrRangeInvalid)
	}

	n := to - from + 1
	m.lines = slices.Delete(m.lines, from-1, to)
	count := len(m.lines)
	m.transformDecorations(func(p core.Position) core.Position {
		switch {
		case p.Line < from:
			return p
		case p.Line > to:
			return core.NewPosition(p.Line-n, p.Column)
		case from <= count:
			return core.NewPosition(from, 1)
		default:
			return core.NewPosition(count, m.LineMaxColumn(count))
		}
	})

	m.versionID++
	return core.ContentChangeBatch{
		VersionID: m.versionID,
		Changes: []core.ContentChange{{
			Kind:     core.ChangeLinesDeleted,
			FromLine: from,
			ToLine:   to,
		}},
	}, nil
}

// SetLineContent replaces the text of one line.
func (m *Model) SetLineContent(line int, text string) (core.ContentChangeBatch, error) {
	if line < 1 || line > len(m.lines) {
		return core.ContentChangeBatch{}, fmt.Errorf("%w: line %d of %d", ErrLineOutOfRange, line, len(m.lines))
	}
	return m.ApplyEdit(core.NewRange(line, 1, line, m.LineMaxColumn(line)), text)
}

// SetContent replaces the whole buffer and drops every decoration.
func (m *Model) SetContent(text string) core.ContentChangeBatch {
	m.lines = splitLines(text)
	clear(m.decorations)
	m.versionID++
	return core.ContentChangeBatch{
		VersionID: m.versionID,
		Changes:   []core.ContentChange{{Kind: core.ChangeFlush}},
	}
}

// ApplyEdit replaces the text in r. The returned changes list the edited
// lines as changed first, then the surplus as deleted or inserted lines.
func (m *Model) ApplyEdit(r core.Range, text string) (core.ContentChangeBatch, error) {
	if r.Start().After(r.End()) || m.ValidateRange(r) != r {
		return core.ContentChangeBatch{}, fmt.Errorf("%w: %v", ErrRangeInvalid, r)
	}

	s, e := r.Start(), r.End()
	prefix := string([]rune(m.lines[s.Line-1])[:s.Column-1])
	suffix := string([]rune(m.lines[e.Line-1])[e.Column-1:])

	inserted := splitLines(text)
	lastLen := len([]rune(inserted[len(inserted)-1]))
	replacement := slices.Clone(inserted)
	replacement[0] = prefix + replacement[0]
	replacement[len(replacement)-1] += suffix

	deleting := e.Line - s.Line
	inserting := len(inserted) - 1
	m.lines = slices.Replace(m.lines, s.Line-1, e.Line, replacement...)

	m.transformDecorations(func(p core.Position) core.Position {
		if !p.After(s) {
			return p
		}
		if p.Before(e) {
			return s
		}
		if p.Line == e.Line {
			col := lastLen + 1 + (p.Column - e.Column)
			if inserting == 0 {
				col = s.Column + lastLen + (p.Column - e.Column)
			}
			return core.NewPosition(s.Line+inserting, col)
		}
		return core.NewPosition(p.Line+inserting-deleting, p.Column)
	})

	m.versionID++
	batch := core.ContentChangeBatch{VersionID: m.versionID}

	editing := min(deleting, inserting)
	for i := 0; i <= editing; i++ {
		line := s.Line + i
		batch.Changes = append(batch.Changes, core.ContentChange{
			Kind:     core.ChangeLineChanged,
			FromLine: line,
			ToLine:   line,
			Texts:    []string{m.lines[line-1]},
			Injected: m.InjectedTextsByLine(line, line),
		})
	}
	switch {
	case deleting > inserting:
		batch.Changes = append(batch.Changes, core.ContentChange{
			Kind:     core.ChangeLinesDeleted,
			FromLine: s.Line + editing + 1,
			ToLine:   s.Line + deleting,
		})
	case inserting > deleting:
		from, to := s.Line+editing+1, s.Line+inserting
		batch.Changes = append(batch.Changes, core.ContentChange{
			Kind:     core.ChangeLinesInserted,
			FromLine: from,
			ToLine:   to,
			Texts:    slices.Clone(m.lines[from-1 : to]),
			Injected: m.InjectedTextsByLine(from, to),
		})
	}
	return batch, nil
}
