// Package projection maps one model line onto the view lines it renders as.
//
// A Projection is an immutable value: changing its visibility or wrap data
// produces a new value, so the view model replaces entries instead of
// mutating them.
package projection
