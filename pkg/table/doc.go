// Package table aggregates tabular records into balanced count trees.
//
// # Overview
//
// A [Table] is an ordered collection of rows with categorical columns.
// [Aggregate] groups the rows by an ordered list of grouping columns and
// produces a [counttree.Tree] of the same depth, where each node's total is
// the number of rows matching the node's path and each node's label is the
// column value it groups.
//
//	tbl := table.Table{
//	    {"region": "eu", "tier": "pro"},
//	    {"region": "eu", "tier": "free"},
//	    {"region": "us", "tier": "pro"},
//	}
//	tree, err := table.Aggregate(tbl, []string{"region", "tier"})
//
// Group order within a level defaults to first-seen order; [WithSortedLabels]
// switches to lexicographic order. [WithLevelLabels] pins an explicit label
// sequence per level: groups with no matching rows still appear with a zero
// count, and rows whose value is missing from the explicit list fail fast
// with DATA_MISMATCH. Silently dropping such rows would make totals lie
// about the table, so it is rejected rather than tolerated.
package table
