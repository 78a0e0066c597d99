// Package renderer paints the view lines of a viewmodel.Lines into a
// backend.
//
// The pieces:
//
//	┌─────────────────────────────────────────┐
//	│                 View                    │
//	├─────────────────────────────────────────┤
//	│  Viewport │ Dirty tracker │ Gutter      │
//	│  Layout (tabs, wide runes, guides)      │
//	├─────────────────────────────────────────┤
//	│           Backend abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend         │
//	└─────────────────────────────────────────┘
//
// The View never computes wrapping or folding itself. It asks the view
// model for view line payloads and converts between model and view
// coordinates for the cursor. View events from the view model feed the
// dirty tracker so Render repaints only the rows that changed.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	v := renderer.NewView(model, lines, b, renderer.DefaultOptions())
//	v.SetRect(core.RectFromSize(0, 0, height, width))
//	v.Apply(viewmodel.ApplyContentChanges(lines, batch))
//	v.Render()
package renderer
