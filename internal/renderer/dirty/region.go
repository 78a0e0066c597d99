// Package dirty tracks which view lines need repainting.
//
// A Tracker is fed the view events produced by the view model and
// coalesces the affected lines into a small set of regions. Inserting or
// deleting view lines shifts everything below, so those events dirty an
// open-ended region reaching to the last line.
package dirty

import "math"

// Unbounded is the EndLine of a region that reaches the last view line.
const Unbounded = math.MaxInt

// Region is an inclusive range of view lines.
type Region struct {
	StartLine int
	EndLine   int
}

// NewLineRegion creates a region covering startLine..endLine.
func NewLineRegion(startLine, endLine int) Region {
	if endLine < startLine {
		startLine, endLine = endLine, startLine
	}
	return Region{StartLine: startLine, EndLine: endLine}
}

// NewSingleLine creates a region for a single line.
func NewSingleLine(line int) Region {
	return Region{StartLine: line, EndLine: line}
}

// NewRegionFrom creates a region from line to the last view line.
func NewRegionFrom(line int) Region {
	return Region{StartLine: line, EndLine: Unbounded}
}

// IsEmpty returns true if the region covers no lines.
func (r Region) IsEmpty() bool {
	return r.StartLine > r.EndLine
}

// IsUnbounded returns true if the region reaches the last view line.
func (r Region) IsUnbounded() bool {
	return r.EndLine == Unbounded
}

// ContainsLine returns true if the region covers the given line.
func (r Region) ContainsLine(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// Overlaps returns true if two regions share a line.
func (r Region) Overlaps(other Region) bool {
	return r.StartLine <= other.EndLine && other.StartLine <= r.EndLine
}

// Adjacent returns true if one region ends on the line before the other
// starts.
func (r Region) Adjacent(other Region) bool {
	return (r.EndLine != Unbounded && r.EndLine+1 == other.StartLine) ||
		(other.EndLine != Unbounded && other.EndLine+1 == r.StartLine)
}

// Merge combines two overlapping or adjacent regions.
func (r Region) Merge(other Region) (Region, bool) {
	if !r.Overlaps(other) && !r.Adjacent(other) {
		return Region{}, false
	}
	return Region{
		StartLine: min(r.StartLine, other.StartLine),
		EndLine:   max(r.EndLine, other.EndLine),
	}, true
}

// Intersect returns the lines two regions share; the result is empty when
// they are disjoint.
func (r Region) Intersect(other Region) Region {
	return Region{
		StartLine: max(r.StartLine, other.StartLine),
		EndLine:   min(r.EndLine, other.EndLine),
	}
}
