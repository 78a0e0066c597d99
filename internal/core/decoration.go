package core

// InjectedText is text shown in the view that does not exist in the model.
type InjectedText struct {
	Content   string
	ClassName string
}

// LineInjectedText places injected text before a model column of a line.
type LineInjectedText struct {
	Line   int
	Column int
	// Order breaks ties between injections at the same column.
	Order int
	Text  InjectedText
}

// DecorationOptions describes how a decoration is rendered.
type DecorationOptions struct {
	Description string
	ClassName   string
	IsWholeLine bool

	// Validation marks diagnostics (errors, warnings).
	Validation bool

	// Margin marks decorations rendered only in the glyph/line-number margin.
	Margin bool

	// Before and After inject text at the start and end of the range.
	Before *InjectedText
	After  *InjectedText
}

// Decoration is a tracked range with rendering options.
type Decoration struct {
	ID      string
	OwnerID int
	Range   Range
	Options DecorationOptions
}

// NewDecoration describes a decoration to add through DeltaDecorations.
type NewDecoration struct {
	Range   Range
	Options DecorationOptions
}

// DecorationFilter restricts a decoration query.
type DecorationFilter struct {
	// OwnerID limits results to one owner; 0 means any owner.
	OwnerID int

	FilterOutValidation bool
	OnlyMargin          bool
}

// Matches reports whether d passes the filter.
func (f DecorationFilter) Matches(d Decoration) bool {
	if f.OwnerID != 0 && d.OwnerID != 0 && d.OwnerID != f.OwnerID {
		return false
	}
	if f.FilterOutValidation && d.Options.Validation {
		return false
	}
	if f.OnlyMargin && !d.Options.Margin {
		return false
	}
	return true
}
