// Package linebreak defines the wrap data a view line projection is built
// from and the builder interface used to compute it.
//
// A Computer is a batch accumulator: callers AddRequest once per model line
// and then Finalize to receive one *LineBreakData per request, in order. A
// nil result means the line is shown unwrapped and without injected text.
//
// LineBreakData offsets are rune offsets in the model line text with all
// injected text spliced in ("input with injections"). BreakOffsets[i] is the
// exclusive end of output line i; the last entry is the total length.
//
// MonospaceFactory is a reference computer for fixed-width cell grids.
package linebreak
