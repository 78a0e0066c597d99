// Package viewmodel projects model lines onto view lines.
//
// A model line renders as zero view lines when it sits inside a hidden
// (folded) area, and as one or more view lines otherwise, depending on word
// wrap. ProjectedLines keeps one projection per model line and a prefix sum
// index over their view line counts, so positions convert between the two
// coordinate spaces in logarithmic time. Model edits patch the projections
// in place and return the view line events a renderer needs to repaint.
//
// AsIsLines implements the same Lines interface as the identity mapping, for
// models shown without wrapping or folding.
//
// Neither implementation is safe for concurrent use. Mutating calls carry
// the model version id they were computed for; calls older than the last
// accepted version are ignored.
package viewmodel
