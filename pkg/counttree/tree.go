package counttree

import (
	"math"

	"github.com/matzehuels/onionring/pkg/errors"
)

// Node is one vertex of a count tree. Internal nodes hold their ordered
// children; leaves hold a non-negative value. Total is derived at
// construction: for leaves it equals Value, for internal nodes the sum of
// the subtree's leaves.
//
// Nodes are not mutated after the owning Tree is built.
type Node struct {
	Label    string  // Display label (may be empty)
	Value    float64 // Leaf value (0 for internal nodes)
	Total    float64 // Sum of the subtree's leaf values
	Children []*Node // Ordered children (nil for leaves)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is a balanced count tree of uniform depth. The root is synthetic:
// its children are the depth-1 ring of the chart. Use New or FromRoot to
// construct a valid Tree; the zero value is not usable.
//
// A Tree holds no process-wide state and is safe for concurrent readers.
type Tree struct {
	root  *Node
	depth int
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return t.root }

// Depth returns the number of levels below the root.
func (t *Tree) Depth() int { return t.depth }

// GrandTotal returns the sum of all leaf values.
func (t *Tree) GrandTotal() float64 { return t.root.Total }

// New builds a Tree from nested values zipped with per-level labels.
// labels[i] is applied positionally to every sibling group at level i, so
// each parent at level i must have exactly len(labels[i]) children.
//
// New returns SHAPE_MISMATCH when the value structure is unbalanced, when
// the label depth disagrees with the value depth, or when a sibling group's
// size disagrees with its level's label list. Leaf values must be finite
// and non-negative (INVALID_INPUT otherwise).
func New(values Values, labels [][]string) (*Tree, error) {
	if values.IsLeaf() {
		return nil, errors.New(errors.ErrCodeShapeMismatch, "top level must be a branch, got a single leaf")
	}
	if len(values.Children()) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "top level has no entries")
	}

	depth := valueDepth(values)
	if len(labels) != depth {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"label depth %d does not match value depth %d", len(labels), depth)
	}
	for i, lv := range labels {
		if len(lv) == 0 {
			return nil, errors.New(errors.ErrCodeShapeMismatch, "label level %d is empty", i)
		}
		for _, l := range lv {
			if err := errors.ValidateLabel(l); err != nil {
				return nil, err
			}
		}
	}

	root, err := buildNode(values, labels, 0, depth)
	if err != nil {
		return nil, err
	}
	root.Label = ""
	return &Tree{root: root, depth: depth}, nil
}

// FromRoot builds a Tree from an already-labelled node hierarchy. The root
// is treated as synthetic (its label is ignored). Node totals are
// recomputed from the leaves; any Total already present is overwritten.
//
// Returns SHAPE_MISMATCH when leaves sit at different depths and
// INVALID_INPUT when a leaf value is negative or not finite.
func FromRoot(root *Node) (*Tree, error) {
	if root == nil || len(root.Children) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "tree has no nodes below the root")
	}

	depth := -1
	if err := checkBalanced(root, 0, &depth); err != nil {
		return nil, err
	}

	computeTotals(root)
	return &Tree{root: root, depth: depth}, nil
}

// valueDepth follows the first child down to a leaf. Balance against this
// reference depth is enforced node by node in buildNode.
func valueDepth(v Values) int {
	depth := 0
	for !v.IsLeaf() {
		depth++
		v = v.Children()[0]
	}
	return depth
}

func buildNode(v Values, labels [][]string, level, depth int) (*Node, error) {
	if v.IsLeaf() {
		if level != depth {
			return nil, errors.New(errors.ErrCodeShapeMismatch,
				"leaf at level %d, expected uniform depth %d", level, depth)
		}
		if err := checkLeafValue(v.Value()); err != nil {
			return nil, err
		}
		return &Node{Value: v.Value(), Total: v.Value()}, nil
	}

	if level == depth {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"branch at level %d, expected leaves at uniform depth %d", level, depth)
	}

	kids := v.Children()
	if want := len(labels[level]); len(kids) != want {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"level %d has %d entries, label list has %d", level, len(kids), want)
	}

	node := &Node{Children: make([]*Node, 0, len(kids))}
	for i, kid := range kids {
		child, err := buildNode(kid, labels, level+1, depth)
		if err != nil {
			return nil, err
		}
		child.Label = labels[level][i]
		node.Total += child.Total
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func checkLeafValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "leaf value must be finite")
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "leaf value must be non-negative, got %v", v)
	}
	return nil
}

// checkBalanced verifies every leaf sits at the same depth. The first leaf
// encountered fixes the reference depth.
func checkBalanced(n *Node, level int, depth *int) error {
	if n.IsLeaf() {
		if err := checkLeafValue(n.Value); err != nil {
			return err
		}
		if *depth == -1 {
			*depth = level
			return nil
		}
		if level != *depth {
			return errors.New(errors.ErrCodeShapeMismatch,
				"leaf at level %d, expected uniform depth %d", level, *depth)
		}
		return nil
	}
	for _, c := range n.Children {
		if err := checkBalanced(c, level+1, depth); err != nil {
			return err
		}
	}
	return nil
}

func computeTotals(n *Node) float64 {
	if n.IsLeaf() {
		n.Total = n.Value
		return n.Total
	}
	n.Total = 0
	for _, c := range n.Children {
		n.Total += computeTotals(c)
	}
	return n.Total
}
