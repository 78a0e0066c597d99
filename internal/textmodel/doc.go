// Package textmodel is an in-memory text buffer implementing core.Model.
//
// It stores content as a slice of lines, tracks decorations across edits,
// derives injected text from decoration options and answers indent and
// bracket guide queries. Every edit bumps the version id and returns the raw
// content changes the view model consumes.
//
// A Model is not safe for concurrent use.
package textmodel
