// Package pkg provides the core libraries for onionring chart generation.
//
// # Overview
//
// Onionring renders nested ("onion ring") pie charts from hierarchical
// count data or tabular data. The pkg directory is organized into four
// main areas:
//
//  1. [counttree] - The balanced count tree data model
//  2. [table] - Aggregation of tabular records into count trees
//  3. [render/ring] - Wedge layout, palettes, and output sinks
//  4. [pipeline] - Orchestration (build → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	Nested values / tabular records
//	         ↓
//	    [counttree] / [table] (balanced count tree)
//	         ↓
//	    [render/ring/layout] (wedge geometry + colors)
//	         ↓
//	    [render/ring/sink] (SVG/PNG/JSON output)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(pipeline.TabularData{
//	    Table:   rows,
//	    Columns: []string{"region", "tier"},
//	}, pipeline.Options{Formats: []string{"svg"}})
//
// [counttree]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/counttree
// [table]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/table
// [render/ring]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/render/ring
// [render/ring/layout]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/render/ring/layout
// [render/ring/sink]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/render/ring/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/onionring/pkg/pipeline
package pkg
