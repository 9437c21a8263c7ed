// Package layout flows a document tree across fixed-size pages.
//
// The [Engine] walks a [model.Document] section by section, measures each
// block against the remaining space on the current page, and emits draw
// commands into a [pages.Result]. Pages break automatically; splittable
// blocks (paragraph lines, list items, table rows) are divided at safe
// boundaries, while atomic blocks move whole to a fresh page.
//
// # Usage
//
//	engine := layout.New()
//	result, err := engine.Render(doc, model.LetterGeometry(), canvas.NewFixed())
//
// Custom typography and guard limits go through [Config]:
//
//	config := layout.DefaultConfig()
//	config.HeaderLabel = "Salescope Intelligence"
//	engine := layout.NewWithConfig(config)
//
// # Pagination Invariants
//
// No block content is dropped or duplicated across a page break; tables
// split only at row boundaries and re-emit their header row on
// continuation pages when configured; the table of contents prints the
// exact first page of each section, resolved by an initial measurement
// pass. Rendering is pure: the engine keeps no state between calls and
// the same inputs always produce the same command sequence.
//
// # Degenerate Input
//
// A single unit taller than the usable page (an enormous table row, a
// heading at an absurd size) is force-placed and clipped at the page
// boundary instead of looping; the condition is reported as a
// [pages.Warning] and, when a logger is configured, logged.
package layout
