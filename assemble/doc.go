// Package assemble maps upstream sales-intelligence records into the
// document tree the layout engine consumes.
//
// Assembly is pure data transformation: no layout decisions are made
// here, and no error is ever raised for absent upstream data. Every
// missing field is resolved to a labeled placeholder at this boundary so
// the layout engine never reasons about missing values.
//
// Upstream narrative fields frequently arrive with embedded HTML from the
// research pipeline; [StripHTML] flattens them to plain text during
// assembly. Monetary and percentage figures are formatted with locale
// aware grouping via golang.org/x/text.
package assemble
