// Package model defines the declarative document tree consumed by the
// layout engine.
//
// A [Document] is an ordered list of sections, each holding an ordered
// list of blocks (headings, paragraphs, lists, key/value grids, tables).
// The tree is built once, carries no positional information, and is never
// mutated by layout except for the write-once first-page number recorded
// on each [Section].
//
// # Page Geometry
//
// [PageGeometry] describes the fixed page box a document is laid out
// into. Built-in presets are available:
//
//	geom := model.LetterGeometry()
//	geom := model.A4Geometry()
//
// Presets can also be loaded from YAML configuration:
//
//	geom, err := model.GeometryFromYAML(data)
//
// # Blocks
//
// Blocks implement the [Block] interface and are distinguished by
// [BlockType]. Splittable blocks (paragraphs, lists, tables) may be
// divided across a page boundary at safe internal boundaries; atomic
// blocks (headings, individual grid cells) may not.
//
// # Coordinates
//
// All geometry is expressed in points with the origin at the top-left
// corner of the page and Y increasing downward.
package model
