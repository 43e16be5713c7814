// Package ring provides the onion ring chart engine.
//
// # Overview
//
// An onion ring chart is a nested pie chart: each ring corresponds to one
// level of a balanced count tree, and each wedge subdivides its parent's
// angular span proportionally to sub-category counts. The engine is split
// into three stages:
//
//  1. Layout ([layout]): Compute start and sweep angles, displayed values,
//     threshold-filtered labels, and colors for every tree node.
//  2. Palette ([palette]): One base color per top-level branch, tints of
//     that color for its descendants.
//  3. Sink ([sink]): Export the computed layout as SVG, PNG, or JSON.
//
// # Rendering Pipeline
//
// The rendering process typically follows these steps:
//
//	tree, _ := counttree.New(values, labels)
//
//	// 1. Compute the wedge geometry
//	l, err := layout.Build(tree, layout.WithThreshold(0.05))
//
//	// 2. Render to a specific format
//	svg := sink.RenderSVG(l)
//
// [layout]: github.com/matzehuels/onionring/pkg/render/ring/layout
// [palette]: github.com/matzehuels/onionring/pkg/render/ring/palette
// [sink]: github.com/matzehuels/onionring/pkg/render/ring/sink
package ring
