package sink

import (
	"bytes"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/onionring/pkg/errors"
	"github.com/matzehuels/onionring/pkg/render/ring/layout"
)

// arcStepDeg is the angular resolution used to trace wedge outlines.
const arcStepDeg = 1.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale       float64
	background  string
	shortLabels bool
}

// WithPNGScale sets the raster scale factor (default 2.0 for 2x
// resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground fills the canvas with the given #rrggbb color before
// drawing. By default the background is transparent.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

// WithPNGShortLabels drops the value line from wedge labels.
func WithPNGShortLabels() PNGOption {
	return func(r *pngRenderer) { r.shortLabels = true }
}

// RenderPNG rasterizes the layout to PNG. All drawing is delegated to
// github.com/fogleman/gg: wedge outlines are traced as paths and filled,
// labels are drawn with the embedded Go Regular typeface.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "png scale must be positive, got %v", r.scale)
	}

	f := newFrame(l)
	px := int(math.Ceil(f.size * r.scale))
	dc := gg.NewContext(px, px)
	dc.Scale(r.scale, r.scale)

	if r.background != "" {
		dc.SetHexColor(r.background)
		dc.Clear()
	}

	for _, w := range l.Wedges {
		if w.Degenerate() {
			continue
		}
		traceSector(dc, f, w)
		dc.SetHexColor(w.Color)
		dc.FillPreserve()
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	face, err := labelFace(l.FontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for _, w := range l.Wedges {
		if w.Degenerate() || w.Label == "" {
			continue
		}
		drawLabel(dc, f, l, w, r.shortLabels)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// traceSector outlines an annular sector as a closed path: outer arc
// forward, inner arc back. Arcs are traced in one-degree steps, which is
// below a pixel of error at the radii the charts use.
func traceSector(dc *gg.Context, f frame, w layout.Wedge) {
	inner, outer := f.radii(w.Ring)

	steps := int(math.Ceil(w.Sweep/arcStepDeg)) + 1
	if steps < 2 {
		steps = 2
	}

	dc.NewSubPath()
	for i := 0; i < steps; i++ {
		a := w.Start + w.Sweep*float64(i)/float64(steps-1)
		x, y := f.point(a, outer)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	for i := steps - 1; i >= 0; i-- {
		a := w.Start + w.Sweep*float64(i)/float64(steps-1)
		x, y := f.point(a, inner)
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

func drawLabel(dc *gg.Context, f frame, l layout.Layout, w layout.Wedge, short bool) {
	lines := labelLines(l, w, short)
	if len(lines) == 0 {
		return
	}

	inner, outer := f.radii(w.Ring)
	x, y := f.point(w.Mid(), (inner+outer)/2)
	size := fontPixels(l.FontSize)
	rot := labelAngle(w.Mid())

	dc.Push()
	dc.RotateAbout(gg.Radians(rot), x, y)
	dc.SetRGB(1, 1, 1)
	offset := -size * float64(len(lines)-1) / 2
	for _, line := range lines {
		dc.DrawStringAnchored(line, x, y+offset, 0.5, 0.5)
		offset += size
	}
	dc.Pop()
}

// labelFace parses the embedded Go Regular font at the layout's font size
// hint. The font ships with golang.org/x/image, so PNG output needs no
// font files on the host.
func labelFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
	}
	return truetype.NewFace(f, &truetype.Options{Size: fontPixels(points)}), nil
}
