// Package layout computes wedge geometry for onion ring charts.
//
// # Overview
//
// [Build] walks a balanced count tree and assigns every node an angular
// span: the tree's top level partitions the full 360 degrees proportionally
// to branch totals, and each deeper level subdivides its parent's span the
// same way. Children are laid out contiguously in sibling order, starting
// at their parent's start angle, so a parent's span always equals the sum
// of its children's spans.
//
// The result is a flat, ring-major sequence of [Wedge] descriptors: ring 0
// first, wedges within a ring in depth-first branch order. The sequence is
// a pure function of the tree and options - two calls with equal input
// yield identical output.
//
// Radial placement (ring radii, canvas size) is left to the sinks; the
// layout fixes only the ring index.
package layout

import (
	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/errors"
	"github.com/matzehuels/onionring/pkg/render/ring/palette"
)

// FullTurn is the angular extent of a complete ring, in degrees.
const FullTurn = 360.0

// Defaults for the layout configuration.
const (
	DefaultThreshold = 0.02
	DefaultFontSize  = 7.0
	DefaultFigSize   = 10.0
)

// Layout is the computed geometry of one chart: every node of the count
// tree (excluding the synthetic root) as a wedge, plus the configuration
// echo the sinks need to render values and labels consistently.
type Layout struct {
	Rings      int     // Number of rings (tree depth)
	Total      float64 // Grand total of the tree
	Threshold  float64 // Label threshold the wedges were built with
	RelPercent bool    // Whether Value fields are percentages
	Palette    string  // Base palette name
	FontSize   float64 // Label font size hint (points)
	FigSize    float64 // Canvas size hint (inches)
	Wedges     []Wedge // Ring-major, branch order within each ring
}

// Ring returns the wedges of ring i in angular order. The returned slice
// aliases the layout's backing array.
func (l Layout) Ring(i int) []Wedge {
	lo := 0
	for ; lo < len(l.Wedges) && l.Wedges[lo].Ring < i; lo++ {
	}
	hi := lo
	for ; hi < len(l.Wedges) && l.Wedges[hi].Ring == i; hi++ {
	}
	return l.Wedges[lo:hi]
}

// Option configures Build.
type Option func(*engine)

// WithThreshold sets the minimum share of the grand total a wedge needs
// for its label to be emitted. Wedges below the threshold keep their
// geometry but carry an empty label. Default 0.02.
func WithThreshold(t float64) Option {
	return func(e *engine) { e.threshold = t }
}

// WithRelPercent makes wedge values percentages of the grand total instead
// of absolute counts.
func WithRelPercent() Option {
	return func(e *engine) { e.relPercent = true }
}

// WithPalette selects the base colormap by name (default "tab10").
func WithPalette(name string) Option {
	return func(e *engine) { e.paletteName = name }
}

// WithFontSize sets the label font size hint passed through to sinks.
func WithFontSize(size float64) Option {
	return func(e *engine) { e.fontSize = size }
}

// WithFigSize sets the square canvas size hint passed through to sinks.
func WithFigSize(size float64) Option {
	return func(e *engine) { e.figSize = size }
}

type engine struct {
	threshold   float64
	relPercent  bool
	paletteName string
	fontSize    float64
	figSize     float64

	grand  float64
	pal    palette.Palette
	wedges [][]Wedge // per ring, filled in depth-first branch order
}

// Build computes the wedge layout for a count tree.
//
// Configuration is validated eagerly and the tree's grand total must be
// positive; on any error no partial layout is returned. Error codes:
// INVALID_CONFIG for out-of-range options, INVALID_PALETTE for an unknown
// colormap, EMPTY_DATA when the grand total is zero.
func Build(t *counttree.Tree, opts ...Option) (Layout, error) {
	e := engine{
		threshold:   DefaultThreshold,
		paletteName: palette.DefaultName,
		fontSize:    DefaultFontSize,
		figSize:     DefaultFigSize,
	}
	for _, opt := range opts {
		opt(&e)
	}

	if err := errors.ValidateThreshold(e.threshold); err != nil {
		return Layout{}, err
	}
	if err := errors.ValidateFontSize(e.fontSize); err != nil {
		return Layout{}, err
	}
	if err := errors.ValidateFigureSize(e.figSize); err != nil {
		return Layout{}, err
	}
	pal, err := palette.Lookup(e.paletteName)
	if err != nil {
		return Layout{}, err
	}
	e.pal = pal

	if t == nil {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "count tree is nil")
	}
	e.grand = t.GrandTotal()
	if e.grand == 0 {
		return Layout{}, errors.New(errors.ErrCodeEmptyData, "grand total is zero, ring geometry is undefined")
	}

	e.wedges = make([][]Wedge, t.Depth())
	cursor := 0.0
	for b, branch := range t.Root().Children {
		sweep := FullTurn * branch.Total / e.grand
		e.walk(branch, b, 0, cursor, sweep)
		cursor += sweep
	}
	e.colorize()

	l := Layout{
		Rings:      t.Depth(),
		Total:      e.grand,
		Threshold:  e.threshold,
		RelPercent: e.relPercent,
		Palette:    e.paletteName,
		FontSize:   e.fontSize,
		FigSize:    e.figSize,
	}
	for _, ring := range e.wedges {
		l.Wedges = append(l.Wedges, ring...)
	}
	return l, nil
}

// walk emits the wedge for one node and partitions its span among its
// children. Zero-total subtrees emit zero-sweep wedges at the inherited
// start angle.
func (e *engine) walk(n *counttree.Node, branch, ring int, start, sweep float64) {
	share := n.Total / e.grand

	w := Wedge{
		Ring:   ring,
		Branch: branch,
		Start:  start,
		Sweep:  sweep,
		Share:  share,
		Value:  n.Total,
	}
	if e.relPercent {
		w.Value = 100 * share
	}
	if share >= e.threshold && sweep > 0 {
		w.Label = n.Label
	}
	e.wedges[ring] = append(e.wedges[ring], w)

	cursor := start
	for _, child := range n.Children {
		childSweep := 0.0
		if n.Total > 0 {
			childSweep = sweep * child.Total / n.Total
		}
		e.walk(child, branch, ring+1, cursor, childSweep)
		cursor += childSweep
	}
}

// colorize assigns each wedge a tint of its branch's base color. On every
// ring, the wedges sharing a top-level branch split the tint range evenly
// by position, so siblings and cousins under one branch stay visually
// distinct while reading as one family.
func (e *engine) colorize() {
	for ring, wedges := range e.wedges {
		perBranch := make(map[int]int)
		for _, w := range wedges {
			perBranch[w.Branch]++
		}
		index := make(map[int]int)
		for i := range wedges {
			w := &wedges[i]
			base := e.pal.Base(w.Branch)
			w.Color = palette.Hex(palette.Shade(base, ring, index[w.Branch], perBranch[w.Branch]))
			index[w.Branch]++
		}
	}
}
