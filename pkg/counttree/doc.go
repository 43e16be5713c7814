// Package counttree provides the balanced count tree that backs onion ring
// charts.
//
// # Overview
//
// An onion ring chart is driven by a fixed-depth hierarchy of counts: only
// the leaves carry values, and every internal node's total is the sum of its
// subtree. This package defines that hierarchy and its invariants:
//
//   - Uniform depth: every leaf sits at the same level. Unbalanced
//     hierarchies are rejected with SHAPE_MISMATCH.
//   - Ordered children: sibling order is semantically meaningful. It
//     determines angular placement and is preserved from input order.
//   - Derived totals: node totals are computed once at construction and
//     never mutated afterwards.
//
// # Construction
//
// Hierarchical data is expressed with the tagged [Leaf] and [Branch]
// constructors and zipped with per-level label lists:
//
//	data := counttree.Branch(
//	    counttree.Branch(counttree.Leaf(1), counttree.Leaf(3)),
//	    counttree.Branch(counttree.Leaf(1), counttree.Leaf(1)),
//	)
//	tree, err := counttree.New(data, [][]string{
//	    {"alpha", "beta"},
//	    {"one", "two"},
//	})
//
// Trees whose node labels are already attached (for example the output of
// table aggregation) are built from a root node with [FromRoot], which
// runs the same validation.
package counttree
