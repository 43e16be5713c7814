package table

import (
	"slices"

	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/errors"
)

// Row maps column names to categorical values.
type Row map[string]string

// Table is an ordered collection of rows. Row order matters: it fixes the
// first-seen order of group labels.
type Table []Row

// Option configures an aggregation.
type Option func(*config)

type config struct {
	levelLabels [][]string
	sorted      bool
}

// WithLevelLabels pins an explicit ordered label sequence per grouping
// level. The outer slice must have one entry per grouping column; a nil
// entry keeps the default ordering for that level. Explicit labels force
// zero-count groups into the tree and make unknown values an error.
func WithLevelLabels(labels [][]string) Option {
	return func(c *config) { c.levelLabels = labels }
}

// WithSortedLabels orders each level's observed labels lexicographically
// instead of by first appearance. Levels with explicit labels keep their
// given order.
func WithSortedLabels() Option {
	return func(c *config) { c.sorted = true }
}

// Aggregate groups tbl by the given ordered grouping columns and returns a
// balanced count tree of depth len(columns). Every node's total equals the
// number of rows whose column values match the node's path from the root.
//
// Errors are detected eagerly, before any tree is produced:
//   - INVALID_INPUT: no grouping columns, or duplicate explicit labels
//   - UNKNOWN_COLUMN: a grouping column missing from a row
//   - EMPTY_DATA: tbl has no rows
//   - SHAPE_MISMATCH: explicit label levels do not match the column count
//   - DATA_MISMATCH: a row's value is absent from an explicit label list
func Aggregate(tbl Table, columns []string, opts ...Option) (*counttree.Tree, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at least one grouping column is required")
	}
	for _, col := range columns {
		if err := errors.ValidateColumnName(col); err != nil {
			return nil, err
		}
	}
	if len(tbl) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "table has no rows")
	}
	for i, row := range tbl {
		for _, col := range columns {
			if _, ok := row[col]; !ok {
				return nil, errors.New(errors.ErrCodeUnknownColumn,
					"column %q missing from row %d", col, i)
			}
		}
	}

	if cfg.levelLabels != nil {
		if len(cfg.levelLabels) != len(columns) {
			return nil, errors.New(errors.ErrCodeShapeMismatch,
				"explicit labels cover %d levels, aggregation has %d", len(cfg.levelLabels), len(columns))
		}
		for level, lv := range cfg.levelLabels {
			seen := make(map[string]struct{}, len(lv))
			for _, l := range lv {
				if _, dup := seen[l]; dup {
					return nil, errors.New(errors.ErrCodeInvalidInput,
						"duplicate explicit label %q at level %d", l, level)
				}
				seen[l] = struct{}{}
			}
		}
	}

	// Global first-seen (or sorted) label order per level. Zero-count
	// groups forced by explicit labels borrow these for their subtrees so
	// the tree keeps uniform depth.
	global := make([][]string, len(columns))
	for i, col := range columns {
		global[i] = observedOrder(tbl, col, cfg.sorted)
	}

	root := &counttree.Node{}
	if err := groupInto(root, tbl, columns, global, 0, cfg); err != nil {
		return nil, err
	}
	return counttree.FromRoot(root)
}

// groupInto partitions rows by columns[level] and attaches one child per
// group, recursing until the last column, where groups become leaves.
func groupInto(parent *counttree.Node, rows []Row, columns []string, global [][]string, level int, cfg config) error {
	col := columns[level]

	order, buckets, err := partition(rows, col, levelLabels(cfg, level), cfg.sorted)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		// Zero-count group: no observed values, fall back to the global
		// label order unless an explicit list already pinned one.
		if levelLabels(cfg, level) == nil {
			order = global[level]
		}
	}

	last := level == len(columns)-1
	for _, label := range order {
		group := buckets[label]
		child := &counttree.Node{Label: label}
		if last {
			child.Value = float64(len(group))
		} else if err := groupInto(child, group, columns, global, level+1, cfg); err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)
	}
	return nil
}

// observedOrder returns the distinct values of col across the whole table,
// in first-seen or sorted order.
func observedOrder(tbl Table, col string, sorted bool) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, row := range tbl {
		v := row[col]
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			order = append(order, v)
		}
	}
	if sorted {
		slices.Sort(order)
	}
	return order
}

// partition splits rows into per-value buckets. With explicit labels the
// given order is kept and every bucket exists (possibly empty); otherwise
// labels appear in first-seen or sorted order and empty groups are absent.
func partition(rows []Row, col string, explicit []string, sorted bool) ([]string, map[string][]Row, error) {
	buckets := make(map[string][]Row)
	var order []string

	if explicit != nil {
		order = explicit
		for _, label := range explicit {
			buckets[label] = nil
		}
		for _, row := range rows {
			v := row[col]
			if _, ok := buckets[v]; !ok {
				return nil, nil, errors.New(errors.ErrCodeDataMismatch,
					"value %q in column %q is not in the explicit label list", v, col)
			}
			buckets[v] = append(buckets[v], row)
		}
		return order, buckets, nil
	}

	for _, row := range rows {
		v := row[col]
		if _, ok := buckets[v]; !ok {
			order = append(order, v)
		}
		buckets[v] = append(buckets[v], row)
	}
	if sorted {
		slices.Sort(order)
	}
	return order, buckets, nil
}

func levelLabels(cfg config, level int) []string {
	if cfg.levelLabels == nil {
		return nil
	}
	return cfg.levelLabels[level]
}
