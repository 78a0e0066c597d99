package core

import "fmt"

// Range is a span between two positions. Start is inclusive, end is
// exclusive for text, but line-range users (folding) treat both lines as
// inclusive.
type Range struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// NewRange creates a range, swapping the ends if they are reversed.
func NewRange(startLine, startColumn, endLine, endColumn int) Range {
	if startLine > endLine || (startLine == endLine && startColumn > endColumn) {
		return Range{StartLine: endLine, StartColumn: endColumn, EndLine: startLine, EndColumn: startColumn}
	}
	return Range{StartLine: startLine, StartColumn: startColumn, EndLine: endLine, EndColumn: endColumn}
}

// LineRange creates a range covering whole lines start..end as used by
// hidden areas: both columns are 1.
func LineRange(startLine, endLine int) Range {
	return NewRange(startLine, 1, endLine, 1)
}

// RangeFromPositions creates a range between two positions.
func RangeFromPositions(start, end Position) Range {
	return NewRange(start.Line, start.Column, end.Line, end.Column)
}

// EmptyRangeAt creates an empty range at p.
func EmptyRangeAt(p Position) Range {
	return Range{StartLine: p.Line, StartColumn: p.Column, EndLine: p.Line, EndColumn: p.Column}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d -> %d,%d]", r.StartLine, r.StartColumn, r.EndLine, r.EndColumn)
}

// Start returns the start position.
func (r Range) Start() Position {
	return Position{Line: r.StartLine, Column: r.StartColumn}
}

// End returns the end position.
func (r Range) End() Position {
	return Position{Line: r.EndLine, Column: r.EndColumn}
}

// IsEmpty returns true if start and end are equal.
func (r Range) IsEmpty() bool {
	return r.StartLine == r.EndLine && r.StartColumn == r.EndColumn
}

// ContainsPosition returns true if p lies within the range, ends included.
func (r Range) ContainsPosition(p Position) bool {
	return !p.Before(r.Start()) && !p.After(r.End())
}

// Intersects returns true if the two ranges share at least one position.
func (r Range) Intersects(other Range) bool {
	return !other.End().Before(r.Start()) && !other.Start().After(r.End())
}

// CompareRangesUsingStarts orders ranges by start position, then by end
// position.
func CompareRangesUsingStarts(a, b Range) int {
	if c := a.Start().Compare(b.Start()); c != 0 {
		return c
	}
	return a.End().Compare(b.End())
}
