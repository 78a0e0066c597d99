package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/logging"
	"github.com/dshills/viewlines/internal/prefixsum"
	"github.com/dshills/viewlines/internal/projection"
)

const hiddenAreaDescription = "hidden-area"

// ProjectedLines maps model lines to view lines through word wrap and
// hidden areas.
type ProjectedLines struct {
	model     core.Model
	factories linebreak.Factories
	opts      linebreak.Options
	log       *logging.Logger

	projections []projection.Projection
	counts      *prefixsum.Index

	// hiddenIDs are the model decorations marking hidden areas. The model
	// moves them with edits.
	hiddenIDs []string

	validVersionID int
}

// NewProjectedLines builds the projections of every model line. opts.TabSize
// doubles as the view tab size; opts.Strategy selects the factory.
func NewProjectedLines(model core.Model, factories linebreak.Factories, opts linebreak.Options, options ...Option) *ProjectedLines {
	s := applyOptions(options)
	l := &ProjectedLines{
		model:     model,
		factories: factories,
		opts:      opts,
		log:       s.logger.WithComponent("viewmodel"),
	}
	l.constructLines(true, nil)
	return l
}

// constructLines rebuilds every projection and the index. previous seeds the
// computer with break data from before a wrapping-column-only change.
func (l *ProjectedLines) constructLines(resetHiddenAreas bool, previous []*linebreak.LineBreakData) {
	if resetHiddenAreas {
		l.hiddenIDs = l.model.DeltaDecorations(l.hiddenIDs, nil)
	}

	content := l.model.LinesContent()
	injected := groupInjectedTexts(l.model.InjectedTexts(), len(content))

	computer := l.CreateLineBreaksComputer()
	for i, text := range content {
		var prev *linebreak.LineBreakData
		if i < len(previous) {
			prev = previous[i]
		}
		computer.AddRequest(text, injected[i], prev)
	}
	breaks := computer.Finalize()

	hidden := l.HiddenAreas()
	projections := make([]projection.Projection, len(content))
	values := make([]int, len(content))
	h := 0
	for i := range content {
		line := i + 1
		for h < len(hidden) && hidden[h].EndLine < line {
			h++
		}
		inHidden := h < len(hidden) && hidden[h].StartLine <= line

		var data *linebreak.LineBreakData
		if i < len(breaks) {
			data = breaks[i]
		}
		projections[i] = projection.New(data, !inHidden)
		values[i] = projections[i].ViewLineCount()
	}

	l.projections = projections
	l.counts = prefixsum.New(values)
	l.validVersionID = l.model.VersionID()

	if len(l.projections) > 0 && l.counts.TotalSum() == 0 {
		l.log.Debug("hidden areas cover every line after rebuild, revealing all")
		l.revealAll()
	}
}

// groupInjectedTexts splits sorted injected texts into one slice per line.
func groupInjectedTexts(all []core.LineInjectedText, lineCount int) [][]core.LineInjectedText {
	out := make([][]core.LineInjectedText, lineCount)
	start := 0
	for start < len(all) {
		line := all[start].Line
		end := start + 1
		for end < len(all) && all[end].Line == line {
			end++
		}
		if line >= 1 && line <= lineCount {
			out[line-1] = all[start:end]
		}
		start = end
	}
	return out
}

// CreateLineBreaksComputer returns a computer for the current settings.
func (l *ProjectedLines) CreateLineBreaksComputer() linebreak.Computer {
	return l.factories.For(l.opts.Strategy).CreateLineBreaksComputer(l.opts)
}

// SetTabSize rebuilds all lines when the tab size changes.
func (l *ProjectedLines) SetTabSize(tabSize int) bool {
	if l.opts.TabSize == tabSize {
		return false
	}
	l.opts.TabSize = tabSize
	l.constructLines(false, nil)
	return true
}

// SetWrappingSettings rebuilds all lines when the wrapping settings change.
// opts.TabSize is ignored; use SetTabSize. When only the wrapping column
// changed, the previous break data is handed to the computer for reuse.
func (l *ProjectedLines) SetWrappingSettings(opts linebreak.Options) bool {
	opts.TabSize = l.opts.TabSize
	if opts == l.opts {
		return false
	}

	var previous []*linebreak.LineBreakData
	if l.opts.OnlyWrappingColumnDiffers(opts) {
		previous = make([]*linebreak.LineBreakData, len(l.projections))
		for i, p := range l.projections {
			previous[i] = p.Data()
		}
	}
	l.opts = opts
	l.constructLines(false, previous)
	return true
}

// Options returns the wrapping settings in effect.
func (l *ProjectedLines) Options() linebreak.Options {
	return l.opts
}

// OnModelFlushed rebuilds everything and drops the hidden areas.
func (l *ProjectedLines) OnModelFlushed() {
	l.constructLines(true, nil)
}

// Dispose removes the hidden area decorations from the model.
func (l *ProjectedLines) Dispose() {
	l.hiddenIDs = l.model.DeltaDecorations(l.hiddenIDs, nil)
}

// CoordinatesConverter returns a converter backed by these lines.
func (l *ProjectedLines) CoordinatesConverter() CoordinatesConverter {
	return projectedConverter{lines: l}
}

// ViewLineCount returns the number of view lines.
func (l *ProjectedLines) ViewLineCount() int {
	return l.counts.TotalSum()
}

// ProjectionData returns the break data of a model line, or nil.
func (l *ProjectedLines) ProjectionData(modelLine int) *linebreak.LineBreakData {
	if modelLine < 1 || modelLine > len(l.projections) {
		return nil
	}
	return l.projections[modelLine-1].Data()
}

// ViewLineInfo returns the model line and sub-line of a view line.
func (l *ProjectedLines) ViewLineInfo(viewLine int) core.ViewLineInfo {
	idx, sub := l.locate(viewLine)
	return core.ViewLineInfo{ModelLine: idx + 1, SublineIndex: sub}
}

func (l *ProjectedLines) toValidViewLine(viewLine int) int {
	if viewLine < 1 {
		return 1
	}
	if total := l.counts.TotalSum(); viewLine > total {
		return total
	}
	return viewLine
}

// locate returns the 0-based model line index and sub-line of a view line.
func (l *ProjectedLines) locate(viewLine int) (int, int) {
	r := l.counts.IndexOf(l.toValidViewLine(viewLine) - 1)
	return r.Index, r.Remainder
}

// viewLinesBefore returns the number of view lines above model line index
// idx.
func (l *ProjectedLines) viewLinesBefore(idx int) int {
	if idx <= 0 {
		return 0
	}
	return l.counts.PrefixSum(idx - 1)
}
