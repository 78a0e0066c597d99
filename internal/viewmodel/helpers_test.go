package viewmodel

import (
	"fmt"
	"slices"
	"testing"

	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/textmodel"
)

// chunkFactory hard-wraps every line into pieces of WrappingColumn runes,
// counting injected text, and indents continuations by indent spaces.
type chunkFactory struct {
	indent int

	// reused counts requests that arrived with previous break data.
	reused int
}

func (f *chunkFactory) CreateLineBreaksComputer(opts linebreak.Options) linebreak.Computer {
	return &chunkComputer{factory: f, column: opts.WrappingColumn}
}

type chunkRequest struct {
	text     string
	injected []core.LineInjectedText
}

type chunkComputer struct {
	factory *chunkFactory
	column  int
	reqs    []chunkRequest
}

func (c *chunkComputer) AddRequest(text string, injected []core.LineInjectedText, previous *linebreak.LineBreakData) {
	if previous != nil {
		c.factory.reused++
	}
	c.reqs = append(c.reqs, chunkRequest{text: text, injected: injected})
}

func (c *chunkComputer) Finalize() []*linebreak.LineBreakData {
	out := make([]*linebreak.LineBreakData, len(c.reqs))
	for i, r := range c.reqs {
		out[i] = chunk(r.text, r.injected, c.column, c.factory.indent)
	}
	c.reqs = nil
	return out
}

func chunk(text string, injected []core.LineInjectedText, column, indent int) *linebreak.LineBreakData {
	offsets, texts := linebreak.InjectionsFor(injected)
	n := len([]rune(linebreak.ApplyInjections(text, offsets, texts)))
	if (column <= 0 || n <= column) && len(offsets) == 0 {
		return nil
	}
	var breaks []int
	if column > 0 {
		for b := column; b < n; b += column {
			breaks = append(breaks, b)
		}
	}
	breaks = append(breaks, n)
	return &linebreak.LineBreakData{
		InjectionOffsets:          offsets,
		InjectedTexts:             texts,
		BreakOffsets:              breaks,
		BreakOffsetsVisibleColumn: slices.Clone(breaks),
		WrappedTextIndentLength:   indent,
	}
}

func seqIDs() textmodel.Option {
	n := 0
	return textmodel.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("d%02d", n)
	})
}

type fixture struct {
	model   *textmodel.Model
	lines   *ProjectedLines
	factory *chunkFactory
}

// newFixture wraps lines at column (0 disables wrapping).
func newFixture(t *testing.T, content []string, column int) fixture {
	t.Helper()
	return newIndentedFixture(t, content, column, 0)
}

func newIndentedFixture(t *testing.T, content []string, column, indent int) fixture {
	t.Helper()
	model := textmodel.FromLines(content, seqIDs())
	factory := &chunkFactory{indent: indent}
	opts := linebreak.DefaultOptions()
	opts.WrappingColumn = column
	lines := NewProjectedLines(model, linebreak.Factories{Simple: factory}, opts)
	checkInvariants(t, lines)
	return fixture{model: model, lines: lines, factory: factory}
}

// checkInvariants verifies the index against the projections.
func checkInvariants(t *testing.T, l *ProjectedLines) {
	t.Helper()
	if got, want := len(l.projections), l.model.LineCount(); got != want {
		t.Fatalf("%d projections for %d model lines", got, want)
	}
	if l.counts.Len() != len(l.projections) {
		t.Fatalf("index has %d entries for %d projections", l.counts.Len(), len(l.projections))
	}
	sum, visible := 0, false
	for i, p := range l.projections {
		if got := l.counts.Value(i); got != p.ViewLineCount() {
			t.Fatalf("index[%d] = %d, projection has %d view lines", i, got, p.ViewLineCount())
		}
		sum += p.ViewLineCount()
		visible = visible || p.IsVisible()
	}
	if sum != l.counts.TotalSum() {
		t.Fatalf("TotalSum() = %d, sum of projections = %d", l.counts.TotalSum(), sum)
	}
	if !visible {
		t.Fatal("no visible line")
	}
}

func lineNumbers(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d", i+1)
	}
	return out
}
