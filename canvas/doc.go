// Package canvas defines the drawing-surface capability consumed by the
// layout engine, plus measurement backends.
//
// The engine itself only measures: it asks a [Measurer] how wide a run of
// text is and emits draw commands into the result rather than drawing
// directly. A full [Canvas] additionally accepts draw primitives, which is
// the surface encoders implement.
//
// Two measurement backends ship with the package:
//
//   - [Fixed] - deterministic per-rune advance, for tests and layout
//     previews that must not depend on font files.
//   - [GoFont] - real glyph metrics from the Go font family via
//     golang.org/x/image/font.
package canvas
