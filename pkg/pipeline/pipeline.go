// Package pipeline orchestrates the full chart-building flow: aggregate
// or assemble a count tree, compute the ring layout, and render the
// requested artifact formats in one call.
//
// Inputs are expressed as a small tagged union so callers state up front
// whether they bring pre-aggregated hierarchical values or raw tabular
// records. Options carry every knob the stages accept and can be loaded
// from TOML for file-driven configuration.
package pipeline

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/errors"
	"github.com/matzehuels/onionring/pkg/render/ring/layout"
	"github.com/matzehuels/onionring/pkg/render/ring/palette"
	"github.com/matzehuels/onionring/pkg/table"
)

// Artifact format identifiers accepted in Options.Formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats enumerates the renderable artifact formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Default option values applied by ValidateAndSetDefaults.
const (
	DefaultThreshold = layout.DefaultThreshold
	DefaultFontSize  = layout.DefaultFontSize
	DefaultFigSize   = layout.DefaultFigSize
	DefaultPNGScale  = 2.0
)

// Options configures a pipeline run. The zero value is usable after
// ValidateAndSetDefaults, which fills in defaults and rejects
// out-of-range settings.
type Options struct {
	// Threshold is the minimum share a wedge needs to receive a label.
	// Nil selects the default; an explicit zero labels every wedge.
	Threshold *float64 `toml:"threshold" json:"threshold,omitempty"`

	// RelPercent reports wedge values as percentages of the grand total
	// instead of raw counts.
	RelPercent bool `toml:"rel_percent" json:"rel_percent,omitempty"`

	// Palette names the base color palette. Empty selects the default.
	Palette string `toml:"basecolormap" json:"basecolormap,omitempty"`

	// FontSize is the label font size in points.
	FontSize float64 `toml:"fontsize" json:"fontsize,omitempty"`

	// FigSize is the square canvas edge length in inches.
	FigSize float64 `toml:"figsize" json:"figsize,omitempty"`

	// ShortLabels drops the percentage line from wedge labels.
	ShortLabels bool `toml:"shortlabels" json:"shortlabels,omitempty"`

	// Formats lists the artifact formats to render. Empty renders SVG.
	Formats []string `toml:"formats" json:"formats,omitempty"`

	// PNGScale multiplies the raster resolution of PNG artifacts.
	PNGScale float64 `toml:"png_scale" json:"png_scale,omitempty"`

	// Logger receives stage-level progress events. Nil discards them.
	Logger *log.Logger `toml:"-" json:"-"`
}

// ValidateAndSetDefaults fills unset fields with defaults and validates
// the result. It must be called before the options are used; Runner
// methods call it on the caller's behalf.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Threshold == nil {
		t := DefaultThreshold
		o.Threshold = &t
	}
	if o.Palette == "" {
		o.Palette = palette.DefaultName
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FigSize == 0 {
		o.FigSize = DefaultFigSize
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}

	if err := errors.ValidateThreshold(*o.Threshold); err != nil {
		return err
	}
	if err := errors.ValidatePaletteName(o.Palette); err != nil {
		return err
	}
	if _, err := palette.Lookup(o.Palette); err != nil {
		return err
	}
	if err := errors.ValidateFontSize(o.FontSize); err != nil {
		return err
	}
	if err := errors.ValidateFigureSize(o.FigSize); err != nil {
		return err
	}
	if o.PNGScale <= 0 || math.IsInf(o.PNGScale, 0) || math.IsNaN(o.PNGScale) {
		return errors.New(errors.ErrCodeInvalidConfig, "png scale must be positive and finite")
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	o.Formats = dedupeFormats(o.Formats)
	return nil
}

// ValidateFormat checks that format names a renderable artifact format.
func ValidateFormat(format string) error {
	if !ValidFormats[strings.ToLower(format)] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format: %s", format)
	}
	return nil
}

func dedupeFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(f)
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// layoutOptions translates pipeline options into layout engine options.
func (o *Options) layoutOptions() []layout.Option {
	opts := []layout.Option{
		layout.WithThreshold(*o.Threshold),
		layout.WithPalette(o.Palette),
		layout.WithFontSize(o.FontSize),
		layout.WithFigSize(o.FigSize),
	}
	if o.RelPercent {
		opts = append(opts, layout.WithRelPercent())
	}
	return opts
}

// Input is the source data for a pipeline run. Exactly two shapes
// exist: HierarchicalData for pre-aggregated nested values and
// TabularData for flat records grouped by column.
type Input interface {
	buildTree() (*counttree.Tree, error)
}

// HierarchicalData supplies pre-aggregated nested leaf values plus
// per-level label lists.
type HierarchicalData struct {
	Values counttree.Values
	Labels [][]string
}

func (h HierarchicalData) buildTree() (*counttree.Tree, error) {
	return counttree.New(h.Values, h.Labels)
}

// TabularData supplies flat records aggregated by the named grouping
// columns, outermost first.
type TabularData struct {
	Table   table.Table
	Columns []string

	// LevelLabels optionally pins the label set and order per level.
	LevelLabels [][]string

	// SortedLabels sorts observed labels lexicographically instead of
	// keeping first-appearance order. Ignored for levels covered by
	// LevelLabels.
	SortedLabels bool
}

func (t TabularData) buildTree() (*counttree.Tree, error) {
	var opts []table.Option
	if t.LevelLabels != nil {
		opts = append(opts, table.WithLevelLabels(t.LevelLabels))
	}
	if t.SortedLabels {
		opts = append(opts, table.WithSortedLabels())
	}
	return table.Aggregate(t.Table, t.Columns, opts...)
}
