package table_test

import (
	"fmt"

	"github.com/matzehuels/onionring/pkg/table"
)

func ExampleAggregate() {
	tickets := table.Table{
		{"team": "frontend", "kind": "bug"},
		{"team": "frontend", "kind": "feature"},
		{"team": "backend", "kind": "bug"},
		{"team": "frontend", "kind": "bug"},
	}

	tree, _ := table.Aggregate(tickets, []string{"team", "kind"})
	for _, team := range tree.Root().Children {
		fmt.Printf("%s: %v\n", team.Label, team.Total)
		for _, kind := range team.Children {
			fmt.Printf("  %s: %v\n", kind.Label, kind.Total)
		}
	}
	// Output:
	// frontend: 3
	//   bug: 2
	//   feature: 1
	// backend: 1
	//   bug: 1
}

func ExampleWithLevelLabels() {
	tickets := table.Table{
		{"team": "frontend", "kind": "bug"},
		{"team": "backend", "kind": "bug"},
	}

	// Force a "feature" group even though no row has one.
	tree, _ := table.Aggregate(tickets, []string{"team", "kind"},
		table.WithLevelLabels([][]string{nil, {"bug", "feature"}}))

	frontend := tree.Root().Children[0]
	for _, kind := range frontend.Children {
		fmt.Printf("%s: %v\n", kind.Label, kind.Total)
	}
	// Output:
	// bug: 1
	// feature: 0
}
