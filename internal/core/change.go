package core

// ContentChangeKind identifies a raw model content change.
type ContentChangeKind uint8

const (
	// ChangeFlush means the whole content was replaced.
	ChangeFlush ContentChangeKind = iota

	// ChangeLinesDeleted means lines FromLine..ToLine were removed.
	ChangeLinesDeleted

	// ChangeLinesInserted means lines FromLine..ToLine were added.
	ChangeLinesInserted

	// ChangeLineChanged means the content of FromLine changed.
	ChangeLineChanged
)

// String returns the change kind name.
func (k ContentChangeKind) String() string {
	switch k {
	case ChangeFlush:
		return "flush"
	case ChangeLinesDeleted:
		return "linesDeleted"
	case ChangeLinesInserted:
		return "linesInserted"
	case ChangeLineChanged:
		return "lineChanged"
	default:
		return "unknown"
	}
}

// ContentChange is one raw model change. Texts and Injected carry the line
// contents at the time of the change for inserted and changed lines, one
// entry per line.
type ContentChange struct {
	Kind     ContentChangeKind
	FromLine int
	ToLine   int
	Texts    []string
	Injected [][]LineInjectedText
}

// ContentChangeBatch groups the raw changes of one model edit. VersionID is
// the model version after the edit.
type ContentChangeBatch struct {
	VersionID int
	Changes   []ContentChange
}
