package textmodel

import (
	"cmp"
	"slices"

	"github.com/dshills/viewlines/internal/core"
)

type decoration struct {
	id    string
	owner int
	rng   core.Range
	opts  core.DecorationOptions
	seq   int
}

func (d *decoration) export() core.Decoration {
	return core.Decoration{ID: d.id, OwnerID: d.owner, Range: d.rng, Options: d.opts}
}

// DeltaDecorations removes oldIDs and adds decorations without an owner.
func (m *Model) DeltaDecorations(oldIDs []string, decorations []core.NewDecoration) []string {
	return m.DeltaOwnedDecorations(0, oldIDs, decorations)
}

// DeltaOwnedDecorations removes oldIDs and adds decorations belonging to
// owner. Unknown old ids are ignored. New ranges are validated against the
// current content.
func (m *Model) DeltaOwnedDecorations(owner int, oldIDs []string, decorations []core.NewDecoration) []string {
	for _, id := range oldIDs {
		delete(m.decorations, id)
	}
	if len(decorations) == 0 {
		return nil
	}
	ids := make([]string, len(decorations))
	for i, nd := range decorations {
		m.seq++
		d := &decoration{
			id:    m.newID(),
			owner: owner,
			rng:   m.ValidateRange(nd.Range),
			opts:  nd.Options,
			seq:   m.seq,
		}
		m.decorations[d.id] = d
		ids[i] = d.id
	}
	return ids
}

// DecorationRange returns the current range of a decoration.
func (m *Model) DecorationRange(id string) (core.Range, bool) {
	d, ok := m.decorations[id]
	if !ok {
		return core.Range{}, false
	}
	return d.rng, true
}

// DecorationCount returns the number of live decorations.
func (m *Model) DecorationCount() int {
	return len(m.decorations)
}

// DecorationsInRange returns the decorations intersecting r that pass
// filter, sorted by range start then id. Whole-line decorations match any
// range touching one of their lines.
func (m *Model) DecorationsInRange(r core.Range, filter core.DecorationFilter) []core.Decoration {
	var out []core.Decoration
	for _, d := range m.decorations {
		rng := d.rng
		if d.opts.IsWholeLine {
			rng = core.NewRange(rng.StartLine, 1, rng.EndLine, m.LineMaxColumn(rng.EndLine))
		}
		if !rng.Intersects(r) {
			continue
		}
		dec := d.export()
		if !filter.Matches(dec) {
			continue
		}
		out = append(out, dec)
	}
	slices.SortFunc(out, func(a, b core.Decoration) int {
		if c := core.CompareRangesUsingStarts(a.Range, b.Range); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// InjectedTexts returns the text injected by Before and After options,
// sorted by line, column and insertion order.
func (m *Model) InjectedTexts() []core.LineInjectedText {
	var out []core.LineInjectedText
	for _, d := range m.decorations {
		if d.opts.Before != nil && d.opts.Before.Content != "" {
			out = append(out, core.LineInjectedText{
				Line:   d.rng.StartLine,
				Column: d.rng.StartColumn,
				Order:  2 * d.seq,
				Text:   *d.opts.Before,
			})
		}
		if d.opts.After != nil && d.opts.After.Content != "" {
			out = append(out, core.LineInjectedText{
				Line:   d.rng.EndLine,
				Column: d.rng.EndColumn,
				Order:  2*d.seq + 1,
				Text:   *d.opts.After,
			})
		}
	}
	slices.SortFunc(out, func(a, b core.LineInjectedText) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Column, b.Column); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// InjectedTextsByLine groups InjectedTexts for lines from..to.
func (m *Model) InjectedTextsByLine(from, to int) [][]core.LineInjectedText {
	if to < from {
		return nil
	}
	out := make([][]core.LineInjectedText, to-from+1)
	for _, t := range m.InjectedTexts() {
		if t.Line >= from && t.Line <= to {
			out[t.Line-from] = append(out[t.Line-from], t)
		}
	}
	return out
}

func (m *Model) transformDecorations(fn func(p core.Position) core.Position) {
	for _, d := range m.decorations {
		d.rng = core.RangeFromPositions(fn(d.rng.Start()), fn(d.rng.End()))
	}
}
