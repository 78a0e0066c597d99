package linebreak

import (
	"github.com/dshills/viewlines/internal/core"
)

// LineBreakData describes how one model line is split into view lines and
// where injected text is spliced in.
type LineBreakData struct {
	// InjectionOffsets are model rune offsets where InjectedTexts are placed,
	// sorted ascending. Nil when the line has no injected text.
	InjectionOffsets []int
	InjectedTexts    []core.InjectedText

	// BreakOffsets are the exclusive ends of each output line, as offsets in
	// the input with injections.
	BreakOffsets []int
	// BreakOffsetsVisibleColumn are the visible columns of BreakOffsets.
	BreakOffsetsVisibleColumn []int

	// WrappedTextIndentLength is the number of spaces prepended to every
	// output line after the first.
	WrappedTextIndentLength int
}

// OutputPosition is a position within the output lines of one model line.
type OutputPosition struct {
	OutputLineIndex int
	OutputOffset    int
}

// ToPosition converts to a view position given the view line number of the
// first output line.
func (p OutputPosition) ToPosition(baseLine int) core.Position {
	return core.Position{Line: baseLine + p.OutputLineIndex, Column: p.OutputOffset + 1}
}

// OutputLineCount returns the number of view lines this data produces.
func (d *LineBreakData) OutputLineCount() int {
	return len(d.BreakOffsets)
}

// MinOutputOffset returns the first valid offset of an output line.
func (d *LineBreakData) MinOutputOffset(outputLineIndex int) int {
	if outputLineIndex > 0 {
		return d.WrappedTextIndentLength
	}
	return 0
}

// LineStartOffset returns where an output line starts in the input with
// injections.
func (d *LineBreakData) LineStartOffset(outputLineIndex int) int {
	if outputLineIndex > 0 {
		return d.BreakOffsets[outputLineIndex-1]
	}
	return 0
}

// LineLength returns the length of an output line including its wrapped
// indent.
func (d *LineBreakData) LineLength(outputLineIndex int) int {
	length := d.BreakOffsets[outputLineIndex] - d.LineStartOffset(outputLineIndex)
	if outputLineIndex > 0 {
		length += d.WrappedTextIndentLength
	}
	return length
}

// MaxOutputOffset returns the last valid offset of an output line.
func (d *LineBreakData) MaxOutputOffset(outputLineIndex int) int {
	return d.LineLength(outputLineIndex)
}

// StartVisibleColumn returns the visible column where an output line starts.
func (d *LineBreakData) StartVisibleColumn(outputLineIndex int) int {
	if outputLineIndex > 0 && outputLineIndex-1 < len(d.BreakOffsetsVisibleColumn) {
		return d.BreakOffsetsVisibleColumn[outputLineIndex-1]
	}
	return 0
}

// TranslateToInputOffset maps an output position to a model rune offset.
// Offsets inside injected text map to the injection point.
func (d *LineBreakData) TranslateToInputOffset(outputLineIndex, outputOffset int) int {
	offset := d.outputToOffsetWithInjections(outputLineIndex, outputOffset)
	for i, at := range d.InjectionOffsets {
		if offset <= at {
			break
		}
		n := injectedLen(d.InjectedTexts[i])
		if offset < at+n {
			offset = at
		} else {
			offset -= n
		}
	}
	return offset
}

// TranslateToOutputPosition maps a model rune offset to an output position.
// AffinityLeft keeps an offset sitting on a wrap boundary at the end of the
// previous output line; the other affinities move it to the next one.
func (d *LineBreakData) TranslateToOutputPosition(inputOffset int, affinity core.PositionAffinity) OutputPosition {
	offset := inputOffset
	for i, at := range d.InjectionOffsets {
		if inputOffset < at {
			break
		}
		if affinity != core.AffinityRight && inputOffset == at {
			break
		}
		offset += injectedLen(d.InjectedTexts[i])
	}
	return d.offsetWithInjectionsToOutputPosition(offset, affinity)
}

// NormalizeOutputPosition moves a position out of injected text and across
// a wrap boundary according to affinity.
func (d *LineBreakData) NormalizeOutputPosition(outputLineIndex, outputOffset int, affinity core.PositionAffinity) OutputPosition {
	if len(d.InjectionOffsets) > 0 {
		offset := d.outputToOffsetWithInjections(outputLineIndex, outputOffset)
		normalized := d.normalizeAroundInjections(offset, affinity)
		if normalized != offset {
			return d.offsetWithInjectionsToOutputPosition(normalized, affinity)
		}
	}

	switch affinity {
	case core.AffinityLeft:
		if outputLineIndex > 0 && outputOffset == d.MinOutputOffset(outputLineIndex) {
			return OutputPosition{OutputLineIndex: outputLineIndex - 1, OutputOffset: d.MaxOutputOffset(outputLineIndex - 1)}
		}
	case core.AffinityRight:
		if outputLineIndex < d.OutputLineCount()-1 && outputOffset == d.MaxOutputOffset(outputLineIndex) {
			return OutputPosition{OutputLineIndex: outputLineIndex + 1, OutputOffset: d.MinOutputOffset(outputLineIndex + 1)}
		}
	}
	return OutputPosition{OutputLineIndex: outputLineIndex, OutputOffset: outputOffset}
}

// InjectedTextAt returns the injected text touching an output position, or
// nil.
func (d *LineBreakData) InjectedTextAt(outputLineIndex, outputOffset int) *core.InjectedText {
	offset := d.outputToOffsetWithInjections(outputLineIndex, outputOffset)
	idx, _, _, ok := d.injectionAt(offset)
	if !ok {
		return nil
	}
	text := d.InjectedTexts[idx]
	return &text
}

func (d *LineBreakData) outputToOffsetWithInjections(outputLineIndex, outputOffset int) int {
	if outputLineIndex > 0 {
		outputOffset = max(0, outputOffset-d.WrappedTextIndentLength)
	}
	return d.LineStartOffset(outputLineIndex) + outputOffset
}

// offsetWithInjectionsToOutputPosition binary searches the output line that
// owns offset.
func (d *LineBreakData) offsetWithInjectionsToOutputPosition(offset int, affinity core.PositionAffinity) OutputPosition {
	low, high := 0, len(d.BreakOffsets)-1
	mid, midStart := 0, 0

	for low <= high {
		mid = low + (high-low)/2
		midStop := d.BreakOffsets[mid]
		midStart = d.LineStartOffset(mid)

		if affinity == core.AffinityLeft {
			if offset <= midStart {
				high = mid - 1
			} else if offset > midStop {
				low = mid + 1
			} else {
				break
			}
		} else {
			if offset < midStart {
				high = mid - 1
			} else if offset >= midStop {
				low = mid + 1
			} else {
				break
			}
		}
	}

	outputOffset := offset - midStart
	if mid > 0 {
		outputOffset += d.WrappedTextIndentLength
	}
	return OutputPosition{OutputLineIndex: mid, OutputOffset: outputOffset}
}

func (d *LineBreakData) normalizeAroundInjections(offset int, affinity core.PositionAffinity) int {
	idx, start, length, ok := d.injectionAt(offset)
	if !ok {
		return offset
	}

	switch affinity {
	case core.AffinityRight:
		result := start + length
		for idx+1 < len(d.InjectionOffsets) && d.InjectionOffsets[idx+1] == d.InjectionOffsets[idx] {
			result += injectedLen(d.InjectedTexts[idx+1])
			idx++
		}
		return result
	case core.AffinityNone:
		if offset == start+length {
			return offset
		}
		return start
	default:
		result := start
		for idx-1 >= 0 && d.InjectionOffsets[idx-1] == d.InjectionOffsets[idx] {
			result -= injectedLen(d.InjectedTexts[idx-1])
			idx--
		}
		return result
	}
}

// injectionAt finds the injected text whose span (ends included) contains
// offset in the input with injections.
func (d *LineBreakData) injectionAt(offset int) (idx, start, length int, ok bool) {
	before := 0
	for i, at := range d.InjectionOffsets {
		n := injectedLen(d.InjectedTexts[i])
		s := at + before
		if s > offset {
			break
		}
		if offset <= s+n {
			return i, s, n, true
		}
		before += n
	}
	return 0, 0, 0, false
}

func injectedLen(t core.InjectedText) int {
	return len([]rune(t.Content))
}
