package linebreak

import "github.com/dshills/viewlines/internal/core"

// Computer accumulates line break requests and computes them in one batch.
type Computer interface {
	// AddRequest queues a model line. previous is the line's break data from
	// before a wrapping-column-only change, or nil.
	AddRequest(lineText string, injected []core.LineInjectedText, previous *LineBreakData)

	// Finalize computes every queued request and returns one result per
	// request, in order. Nil results mean "unwrapped, no injected text".
	Finalize() []*LineBreakData
}

// Factory creates computers for a set of wrapping options.
type Factory interface {
	CreateLineBreaksComputer(opts Options) Computer
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(opts Options) Computer

// CreateLineBreaksComputer implements Factory.
func (f FactoryFunc) CreateLineBreaksComputer(opts Options) Computer {
	return f(opts)
}

// Factories pairs the factory for each Strategy.
type Factories struct {
	Simple   Factory
	Advanced Factory
}

// For returns the factory serving a strategy, falling back to Simple.
func (f Factories) For(s Strategy) Factory {
	if s == StrategyAdvanced && f.Advanced != nil {
		return f.Advanced
	}
	return f.Simple
}

// InjectionsFor splits sorted line injected texts into the offset and text
// slices of LineBreakData. It returns nils for an empty input.
func InjectionsFor(injected []core.LineInjectedText) ([]int, []core.InjectedText) {
	if len(injected) == 0 {
		return nil, nil
	}
	offsets := make([]int, len(injected))
	texts := make([]core.InjectedText, len(injected))
	for i, inj := range injected {
		offsets[i] = inj.Column - 1
		texts[i] = inj.Text
	}
	return offsets, texts
}

// ApplyInjections returns text with injected texts spliced in at their
// rune offsets.
func ApplyInjections(text string, offsets []int, texts []core.InjectedText) string {
	if len(offsets) == 0 {
		return text
	}
	runes := []rune(text)
	out := make([]rune, 0, len(runes)+16)
	last := 0
	for i, at := range offsets {
		at = min(max(at, last), len(runes))
		out = append(out, runes[last:at]...)
		out = append(out, []rune(texts[i].Content)...)
		last = at
	}
	out = append(out, runes[last:]...)
	return string(out)
}
