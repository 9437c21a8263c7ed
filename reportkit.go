// Package reportkit provides a fluent API for laying multi-page reports
// out across fixed-size pages.
//
// Basic usage:
//
//	result, warnings, err := reportkit.Layout(doc).Render()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", reportkit.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := reportkit.Layout(doc).
//	    Geometry(model.A4Geometry()).
//	    Measurer(goFont).
//	    Render()
//
// Upstream scan records can be assembled and laid out in one chain:
//
//	result, warnings, err := reportkit.FromScan(record).Render()
//
// For advanced use cases the lower-level layout, model, and pages
// packages are also available.
package reportkit

import (
	"strings"

	"github.com/salescope/reportkit/assemble"
	"github.com/salescope/reportkit/model"
	"github.com/salescope/reportkit/pages"
)

// Warning is a non-fatal layout condition carried in the result.
type Warning = pages.Warning

// Layout starts a fluent render chain for an assembled document.
//
// Example:
//
//	result, warnings, err := reportkit.Layout(doc).Render()
func Layout(doc *model.Document) *Renderer {
	return &Renderer{doc: doc, options: defaultOptions()}
}

// FromScan assembles an upstream scan record with the default assembler
// and starts a render chain for it.
//
// Example:
//
//	result, warnings, err := reportkit.FromScan(record).Render()
func FromScan(rec assemble.ScanRecord) *Renderer {
	return Layout(assemble.New().Build(rec))
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender wraps a Render call, panics on error, and discards
// warnings. It is intended for use in scripts or tests.
//
// Example:
//
//	result := reportkit.MustRender(reportkit.Layout(doc).Render())
func MustRender[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
