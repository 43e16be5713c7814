package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/onionring/pkg/render/ring/layout"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background  string
	stroke      string
	strokeWidth float64
	shortLabels bool
}

// WithSVGBackground fills the canvas with the given color before drawing.
// By default the background is transparent.
func WithSVGBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithSVGStroke overrides the wedge separator color and width (default
// white, 1px).
func WithSVGStroke(color string, width float64) SVGOption {
	return func(r *svgRenderer) { r.stroke = color; r.strokeWidth = width }
}

// WithSVGShortLabels drops the value line from wedge labels, keeping only
// the category text.
func WithSVGShortLabels() SVGOption {
	return func(r *svgRenderer) { r.shortLabels = true }
}

// RenderSVG renders the layout as a standalone SVG document. Wedges are
// drawn ring by ring in layout order; degenerate wedges are skipped.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{stroke: "#ffffff", strokeWidth: 1}
	for _, opt := range opts {
		opt(&r)
	}

	f := newFrame(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.size, f.size, f.size, f.size)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			f.size, f.size, escapeXML(r.background))
	}

	for _, w := range l.Wedges {
		if w.Degenerate() {
			continue
		}
		r.renderWedge(&buf, f, w)
	}
	for _, w := range l.Wedges {
		if w.Degenerate() || w.Label == "" {
			continue
		}
		r.renderLabel(&buf, f, l, w)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderWedge(buf *bytes.Buffer, f frame, w layout.Wedge) {
	inner, outer := f.radii(w.Ring)

	var d string
	if fullTurn(w) {
		d = annulusPath(f, inner, outer)
	} else {
		d = sectorPath(f, w, inner, outer)
	}

	fmt.Fprintf(buf, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%.1f" fill-rule="evenodd"/>`+"\n",
		d, escapeXML(w.Color), escapeXML(r.stroke), r.strokeWidth)
}

// sectorPath builds an annular sector: outer arc forward, inner arc back.
// Angles run counterclockwise on screen, so the forward arc uses SVG
// sweep-flag 0 and the return arc sweep-flag 1.
func sectorPath(f frame, w layout.Wedge, inner, outer float64) string {
	x0, y0 := f.point(w.Start, inner)
	x1, y1 := f.point(w.Start, outer)
	x2, y2 := f.point(w.End(), outer)
	x3, y3 := f.point(w.End(), inner)

	large := 0
	if w.Sweep > 180 {
		large = 1
	}

	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		x0, y0, x1, y1,
		outer, outer, large, x2, y2,
		x3, y3,
		inner, inner, large, x0, y0)
}

// annulusPath builds a complete ring band from two circles and the
// even-odd fill rule, since a 360 degree arc collapses to nothing in SVG.
func annulusPath(f frame, inner, outer float64) string {
	circle := func(r float64) string {
		return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f Z",
			f.center+r, f.center,
			r, r, f.center-r, f.center,
			r, r, f.center+r, f.center)
	}
	return circle(outer) + " " + circle(inner)
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, f frame, l layout.Layout, w layout.Wedge) {
	lines := labelLines(l, w, r.shortLabels)
	if len(lines) == 0 {
		return
	}

	inner, outer := f.radii(w.Ring)
	x, y := f.point(w.Mid(), (inner+outer)/2)
	size := fontPixels(l.FontSize)
	rot := labelAngle(w.Mid())

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" fill="white" font-weight="bold" text-anchor="middle" dominant-baseline="middle" transform="rotate(%.1f %.2f %.2f)">`+"\n",
		x, y, size, rot, x, y)
	offset := -size * float64(len(lines)-1) / 2
	for _, line := range lines {
		fmt.Fprintf(buf, `    <tspan x="%.2f" dy="%.2f">%s</tspan>`+"\n", x, offset, escapeXML(line))
		offset = size
	}
	buf.WriteString("  </text>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
