// Package render provides chart rendering for count trees.
//
// # Overview
//
// This package contains the rendering pipeline that transforms balanced
// count trees into visual outputs. The [ring] subpackage holds the onion
// ring chart engine:
//
//   - [ring/layout]: Wedge geometry computation (angles, values, labels, colors)
//   - [ring/palette]: Discrete base palettes and the branch shading function
//   - [ring/sink]: Output formats (SVG, PNG, JSON)
//
// The layout is renderer-agnostic: sinks own pixels, paths, and text
// placement, while the layout fixes only angular spans, ring indices, and
// styling inputs.
//
// [ring]: github.com/matzehuels/onionring/pkg/render/ring
// [ring/layout]: github.com/matzehuels/onionring/pkg/render/ring/layout
// [ring/palette]: github.com/matzehuels/onionring/pkg/render/ring/palette
// [ring/sink]: github.com/matzehuels/onionring/pkg/render/ring/sink
package render
