package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
)

// ApplyContentChanges feeds one batch of raw model changes into lines and
// returns the resulting view events in order. Break data for every inserted
// or changed line is computed in a single pass before any change is
// applied. The batch version is accepted at the end; if the changes left
// no visible line, accepting it reveals everything and a FlushedEvent is
// appended.
func ApplyContentChanges(lines Lines, batch core.ContentChangeBatch) []Event {
	computer := lines.CreateLineBreaksComputer()
	for _, c := range batch.Changes {
		switch c.Kind {
		case core.ChangeLinesInserted:
			for i, text := range c.Texts {
				computer.AddRequest(text, injectedAt(c, i), nil)
			}
		case core.ChangeLineChanged:
			computer.AddRequest(changedText(c), injectedAt(c, 0), nil)
		}
	}
	queue := computer.Finalize()
	take := func(n int) []*linebreak.LineBreakData {
		n = min(n, len(queue))
		out := queue[:n:n]
		queue = queue[n:]
		return out
	}

	var events []Event
	for _, c := range batch.Changes {
		switch c.Kind {
		case core.ChangeFlush:
			lines.OnModelFlushed()
			events = append(events, FlushedEvent{})

		case core.ChangeLinesDeleted:
			if e := lines.OnModelLinesDeleted(batch.VersionID, c.FromLine, c.ToLine); e != nil {
				events = append(events, *e)
			}

		case core.ChangeLinesInserted:
			breaks := take(len(c.Texts))
			if e := lines.OnModelLinesInserted(batch.VersionID, c.FromLine, c.ToLine, breaks); e != nil {
				events = append(events, *e)
			}

		case core.ChangeLineChanged:
			var data *linebreak.LineBreakData
			if d := take(1); len(d) == 1 {
				data = d[0]
			}
			_, changed, inserted, deleted := lines.OnModelLineChanged(batch.VersionID, c.FromLine, data)
			if changed != nil {
				events = append(events, *changed)
			}
			if inserted != nil {
				events = append(events, *inserted)
			}
			if deleted != nil {
				events = append(events, *deleted)
			}
		}
	}

	empty := lines.ViewLineCount() == 0
	lines.AcceptVersionID(batch.VersionID)
	if empty && lines.ViewLineCount() > 0 {
		events = append(events, FlushedEvent{})
	}
	return events
}

func changedText(c core.ContentChange) string {
	if len(c.Texts) == 0 {
		return ""
	}
	return c.Texts[0]
}

func injectedAt(c core.ContentChange, i int) []core.LineInjectedText {
	if i < len(c.Injected) {
		return c.Injected[i]
	}
	return nil
}
