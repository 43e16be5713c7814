package counttree

// Values is one node of a nested value structure: either a single leaf
// number or an ordered sequence of child structures. The zero value is not
// usable - construct with [Leaf] and [Branch].
//
// Values replaces shape-based input detection with an explicit tagged
// union: a Values is a leaf or a branch by construction, never by
// inspection of its contents.
type Values struct {
	leaf     bool
	value    float64
	children []Values
}

// Leaf returns a Values holding a single leaf count.
func Leaf(v float64) Values {
	return Values{leaf: true, value: v}
}

// Branch returns a Values holding an ordered sequence of children.
func Branch(children ...Values) Values {
	return Values{children: children}
}

// IsLeaf reports whether v is a leaf.
func (v Values) IsLeaf() bool { return v.leaf }

// Value returns the leaf count. It is 0 for branches.
func (v Values) Value() float64 { return v.value }

// Children returns the ordered child structures. It is nil for leaves.
func (v Values) Children() []Values { return v.children }
