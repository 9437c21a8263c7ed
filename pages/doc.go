// Package pages defines the rendered output of a layout pass.
//
// A layout pass produces a [Result]: an ordered list of [Page] values,
// each holding the draw commands for one page plus its header and footer
// bands, together with the section-to-first-page map and any non-fatal
// warnings raised during placement.
//
// # Draw Commands
//
// Pages carry flat [Command] values (text, line, rectangle at absolute
// coordinates). An external encoder walks them in order to produce the
// final artifact. [Replay] forwards a whole result to any drawing
// backend:
//
//	pages.Replay(result, backend)
//
// [Recorder] is a backend that simply collects the commands it receives,
// useful for tests and for adapting encoders that want a flat stream.
package pages
