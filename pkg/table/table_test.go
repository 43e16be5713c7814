package table

import (
	"testing"

	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/errors"
)

func ordersTable() Table {
	return Table{
		{"region": "eu", "tier": "pro"},
		{"region": "eu", "tier": "free"},
		{"region": "us", "tier": "pro"},
		{"region": "eu", "tier": "pro"},
		{"region": "us", "tier": "free"},
		{"region": "us", "tier": "pro"},
	}
}

func TestAggregateTotals(t *testing.T) {
	tree, err := Aggregate(ordersTable(), []string{"region", "tier"})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if tree.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", tree.Depth())
	}
	if tree.GrandTotal() != 6 {
		t.Errorf("GrandTotal() = %v, want row count 6", tree.GrandTotal())
	}

	top := tree.Root().Children
	if len(top) != 2 {
		t.Fatalf("top groups = %d, want 2", len(top))
	}
	// First-seen order: eu then us.
	if top[0].Label != "eu" || top[1].Label != "us" {
		t.Errorf("top labels = [%q %q], want [eu us]", top[0].Label, top[1].Label)
	}
	if top[0].Total != 3 || top[1].Total != 3 {
		t.Errorf("top totals = [%v %v], want [3 3]", top[0].Total, top[1].Total)
	}

	eu := top[0]
	if eu.Children[0].Label != "pro" || eu.Children[0].Total != 2 {
		t.Errorf("eu/pro = (%q, %v), want (pro, 2)", eu.Children[0].Label, eu.Children[0].Total)
	}
	if eu.Children[1].Label != "free" || eu.Children[1].Total != 1 {
		t.Errorf("eu/free = (%q, %v), want (free, 1)", eu.Children[1].Label, eu.Children[1].Total)
	}
}

// Summing every leaf total must reproduce the row count of the table.
func TestAggregateRoundTrip(t *testing.T) {
	tbl := ordersTable()
	tree, err := Aggregate(tbl, []string{"tier", "region"})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	var sum float64
	var walk func(n *counttree.Node)
	walk = func(n *counttree.Node) {
		if n.IsLeaf() {
			sum += n.Total
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Root())

	if sum != float64(len(tbl)) {
		t.Errorf("leaf sum = %v, want %d", sum, len(tbl))
	}
}

func TestAggregateSortedLabels(t *testing.T) {
	tree, err := Aggregate(ordersTable(), []string{"region"}, WithSortedLabels())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	top := tree.Root().Children
	if top[0].Label != "eu" || top[1].Label != "us" {
		t.Errorf("sorted labels = [%q %q], want [eu us]", top[0].Label, top[1].Label)
	}

	tree, err = Aggregate(ordersTable(), []string{"tier"}, WithSortedLabels())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	top = tree.Root().Children
	if top[0].Label != "free" || top[1].Label != "pro" {
		t.Errorf("sorted labels = [%q %q], want [free pro]", top[0].Label, top[1].Label)
	}
}

func TestAggregateExplicitLabels(t *testing.T) {
	// Pin the tier order and force an "enterprise" group nobody bought.
	tree, err := Aggregate(ordersTable(), []string{"region", "tier"},
		WithLevelLabels([][]string{nil, {"free", "pro", "enterprise"}}))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	eu := tree.Root().Children[0]
	if len(eu.Children) != 3 {
		t.Fatalf("eu groups = %d, want 3", len(eu.Children))
	}
	labels := []string{eu.Children[0].Label, eu.Children[1].Label, eu.Children[2].Label}
	want := []string{"free", "pro", "enterprise"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
	if eu.Children[2].Total != 0 {
		t.Errorf("enterprise total = %v, want 0", eu.Children[2].Total)
	}
	if tree.GrandTotal() != 6 {
		t.Errorf("GrandTotal() = %v, want 6", tree.GrandTotal())
	}
}

func TestAggregateExplicitLabelsZeroTopGroup(t *testing.T) {
	// A zero-count top-level group still spans the full depth.
	tree, err := Aggregate(ordersTable(), []string{"region", "tier"},
		WithLevelLabels([][]string{{"eu", "us", "apac"}, nil}))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	apac := tree.Root().Children[2]
	if apac.Label != "apac" || apac.Total != 0 {
		t.Fatalf("apac = (%q, %v), want (apac, 0)", apac.Label, apac.Total)
	}
	if len(apac.Children) == 0 {
		t.Fatal("apac has no children, want zero-count leaves at full depth")
	}
	for _, c := range apac.Children {
		if !c.IsLeaf() || c.Total != 0 {
			t.Errorf("apac child %q = %v, want zero leaf", c.Label, c.Total)
		}
	}
}

func TestAggregateErrors(t *testing.T) {
	tests := []struct {
		name    string
		tbl     Table
		columns []string
		opts    []Option
		code    errors.Code
	}{
		{
			name:    "no columns",
			tbl:     ordersTable(),
			columns: nil,
			code:    errors.ErrCodeInvalidInput,
		},
		{
			name:    "empty table",
			tbl:     Table{},
			columns: []string{"region"},
			code:    errors.ErrCodeEmptyData,
		},
		{
			name:    "unknown column",
			tbl:     ordersTable(),
			columns: []string{"region", "channel"},
			code:    errors.ErrCodeUnknownColumn,
		},
		{
			name:    "empty column name",
			tbl:     ordersTable(),
			columns: []string{""},
			code:    errors.ErrCodeUnknownColumn,
		},
		{
			name:    "value missing from explicit labels",
			tbl:     ordersTable(),
			columns: []string{"region"},
			opts:    []Option{WithLevelLabels([][]string{{"eu"}})},
			code:    errors.ErrCodeDataMismatch,
		},
		{
			name:    "explicit label level count mismatch",
			tbl:     ordersTable(),
			columns: []string{"region", "tier"},
			opts:    []Option{WithLevelLabels([][]string{{"eu", "us"}})},
			code:    errors.ErrCodeShapeMismatch,
		},
		{
			name:    "duplicate explicit label",
			tbl:     ordersTable(),
			columns: []string{"region"},
			opts:    []Option{WithLevelLabels([][]string{{"eu", "eu", "us"}})},
			code:    errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.tbl, tt.columns, tt.opts...)
			if err == nil {
				t.Fatal("Aggregate() = nil error, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestAggregateSingleColumn(t *testing.T) {
	tree, err := Aggregate(ordersTable(), []string{"tier"})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if tree.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", tree.Depth())
	}
	top := tree.Root().Children
	if top[0].Label != "pro" || top[0].Total != 4 {
		t.Errorf("pro = (%q, %v), want (pro, 4)", top[0].Label, top[0].Total)
	}
	if top[1].Label != "free" || top[1].Total != 2 {
		t.Errorf("free = (%q, %v), want (free, 2)", top[1].Label, top[1].Total)
	}
}

// Aggregation is a pure function of its input: same table, same tree.
func TestAggregateDeterministic(t *testing.T) {
	a, err := Aggregate(ordersTable(), []string{"region", "tier"})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	b, err := Aggregate(ordersTable(), []string{"region", "tier"})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	var flatten func(n *counttree.Node, out *[]string)
	flatten = func(n *counttree.Node, out *[]string) {
		*out = append(*out, n.Label)
		for _, c := range n.Children {
			flatten(c, out)
		}
	}
	var fa, fb []string
	flatten(a.Root(), &fa)
	flatten(b.Root(), &fb)

	if len(fa) != len(fb) {
		t.Fatalf("node counts differ: %d vs %d", len(fa), len(fb))
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Errorf("node %d: %q vs %q", i, fa[i], fb[i])
		}
	}
}
