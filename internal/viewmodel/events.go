package viewmodel

import "fmt"

// Event is a view line change for the renderer. Line numbers are view
// lines.
type Event interface {
	fmt.Stringer
	viewEvent()
}

// FlushedEvent means every view line must be rebuilt.
type FlushedEvent struct{}

// LinesChangedEvent means Count view lines starting at FromLine changed
// content but not position.
type LinesChangedEvent struct {
	FromLine int
	Count    int
}

// ToLine returns the last changed view line.
func (e LinesChangedEvent) ToLine() int {
	return e.FromLine + e.Count - 1
}

// LinesInsertedEvent means view lines FromLine..ToLine were inserted. ToLine
// is FromLine-1 when nothing became visible.
type LinesInsertedEvent struct {
	FromLine int
	ToLine   int
}

// LinesDeletedEvent means view lines FromLine..ToLine were removed. ToLine is
// FromLine-1 when only hidden lines were removed.
type LinesDeletedEvent struct {
	FromLine int
	ToLine   int
}

func (FlushedEvent) viewEvent()       {}
func (LinesChangedEvent) viewEvent()  {}
func (LinesInsertedEvent) viewEvent() {}
func (LinesDeletedEvent) viewEvent()  {}

func (FlushedEvent) String() string { return "flushed" }

func (e LinesChangedEvent) String() string {
	return fmt.Sprintf("changed %d+%d", e.FromLine, e.Count)
}

func (e LinesInsertedEvent) String() string {
	return fmt.Sprintf("inserted %d..%d", e.FromLine, e.ToLine)
}

func (e LinesDeletedEvent) String() string {
	return fmt.Sprintf("deleted %d..%d", e.FromLine, e.ToLine)
}
