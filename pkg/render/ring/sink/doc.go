// Package sink renders computed ring layouts to output formats.
//
// # Overview
//
// Sinks are the rendering boundary of the library: the layout engine fixes
// angles, ring indices, values, labels, and colors, and a sink turns that
// into bytes. Three sinks are provided:
//
//   - [RenderSVG]: annular sector paths with rotated labels, no external
//     tooling required.
//   - [RenderPNG]: rasterized via the 2D drawing library
//     github.com/fogleman/gg, which owns arc drawing, text placement, and
//     the canvas.
//   - [RenderJSON]: machine-readable geometry for external renderers and
//     round-trip tests.
//
// # Radial placement
//
// All sinks share the same radial convention, inherited from the layout's
// FigSize hint: the canvas is a square of FigSize x 100 pixels, the ring
// band width is radius/(rings+1), ring i occupies radii (i+1) and (i+2)
// band widths, and the innermost band is left empty as the chart's hole.
//
// Degenerate (zero-sweep) wedges are skipped by every sink.
package sink
