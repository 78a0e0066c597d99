package core

// ViewLineInfo addresses one view line: a model line and the index of its
// wrapped sub-line.
type ViewLineInfo struct {
	ModelLine    int
	SublineIndex int
}

// IsWrappedContinuation returns true for every sub-line after the first.
func (v ViewLineInfo) IsWrappedContinuation() bool {
	return v.SublineIndex > 0
}

// ViewLineData is the rendering payload of one view line.
type ViewLineData struct {
	Content string

	// ContinuesWithWrappedLine is true if the next view line is a wrapped
	// continuation of the same model line.
	ContinuesWithWrappedLine bool

	MinColumn int
	MaxColumn int

	// StartVisibleColumn is the visible column in the model line where this
	// view line starts.
	StartVisibleColumn int
}
