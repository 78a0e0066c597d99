// Package core provides the value types shared by the view-model packages
// and the interfaces of the collaborators they consume.
//
// Lines and columns are 1-based. Columns count Unicode code points of the
// line text, so the column after the last character of a line of n runes
// is n+1 (the line's max column).
//
// This package breaks import cycles between the projection engine
// (projection, viewmodel) and the concrete text model (textmodel).
package core
