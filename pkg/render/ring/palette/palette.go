// Package palette provides the discrete base palettes and the shading
// function used to color onion ring wedges.
//
// Each top-level branch of the chart receives one base color from the
// configured palette, cycling when there are more branches than palette
// entries. Descendants of a branch are tints of that base color: the
// deeper rings blend the base toward white, so everything under one
// top-level branch reads as a family while staying distinguishable from
// its siblings.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/onionring/pkg/errors"
)

// Palette is an ordered list of base colors.
type Palette []colorful.Color

// Palette identifiers. Names and colors follow the matplotlib colormaps
// of the same name, so configs written for matplotlib charts carry over.
const (
	Tab10 = "tab10"
	Tab20 = "tab20"
)

// DefaultName is the palette used when none is configured.
const DefaultName = Tab10

var registry = map[string][]string{
	Tab10: {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
	Tab20: {
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	},
}

// Names returns the registered palette names.
func Names() []string {
	return []string{Tab10, Tab20}
}

// Lookup returns the palette registered under name, or INVALID_PALETTE if
// the name is unknown.
func Lookup(name string) (Palette, error) {
	if err := errors.ValidatePaletteName(name); err != nil {
		return nil, err
	}
	hexes, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "unknown palette: %q", name)
	}

	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse palette color %q", h)
		}
		p[i] = c
	}
	return p, nil
}

// Base returns the base color for top-level branch i, cycling through the
// palette when i exceeds its length.
func (p Palette) Base(i int) colorful.Color {
	return p[i%len(p)]
}
