package sink

import (
	"encoding/json"

	"github.com/matzehuels/onionring/pkg/errors"
	"github.com/matzehuels/onionring/pkg/render/ring/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent     bool
	degenerate bool
}

// WithJSONIndent pretty-prints the output with two-space indentation.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithJSONDegenerate includes zero-sweep wedges in the output. They are
// omitted by default, matching what the drawing sinks render.
func WithJSONDegenerate() JSONOption { return func(r *jsonRenderer) { r.degenerate = true } }

type jsonOutput struct {
	Rings      int         `json:"rings"`
	Total      float64     `json:"total"`
	Threshold  float64     `json:"threshold"`
	RelPercent bool        `json:"rel_percent,omitempty"`
	Palette    string      `json:"palette"`
	FontSize   float64     `json:"fontsize"`
	FigSize    float64     `json:"figsize"`
	Wedges     []jsonWedge `json:"wedges"`
}

type jsonWedge struct {
	Ring   int     `json:"ring"`
	Branch int     `json:"branch"`
	Start  float64 `json:"start"`
	Sweep  float64 `json:"sweep"`
	Value  float64 `json:"value"`
	Share  float64 `json:"share"`
	Label  string  `json:"label,omitempty"`
	Color  string  `json:"color"`
}

// RenderJSON renders the layout as machine-readable JSON: the full wedge
// geometry plus the configuration echo, for external renderers and
// round-trip comparisons.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Rings:      l.Rings,
		Total:      l.Total,
		Threshold:  l.Threshold,
		RelPercent: l.RelPercent,
		Palette:    l.Palette,
		FontSize:   l.FontSize,
		FigSize:    l.FigSize,
		Wedges:     make([]jsonWedge, 0, len(l.Wedges)),
	}
	for _, w := range l.Wedges {
		if w.Degenerate() && !r.degenerate {
			continue
		}
		out.Wedges = append(out.Wedges, jsonWedge{
			Ring:   w.Ring,
			Branch: w.Branch,
			Start:  w.Start,
			Sweep:  w.Sweep,
			Value:  w.Value,
			Share:  w.Share,
			Label:  w.Label,
			Color:  w.Color,
		})
	}

	var (
		data []byte
		err  error
	)
	if r.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}
