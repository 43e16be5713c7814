package sink

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/onionring/pkg/render/ring/layout"
)

// pixelsPerInch converts the layout's FigSize hint (inches) into canvas
// pixels, and font points into pixels at that density.
const pixelsPerInch = 100.0

const fullTurnEps = 1e-9

// frame is the shared radial geometry of one chart canvas.
type frame struct {
	size   float64 // canvas edge in pixels
	center float64 // center coordinate (square canvas)
	band   float64 // radial width of one ring band
}

func newFrame(l layout.Layout) frame {
	size := l.FigSize * pixelsPerInch
	radius := size / 2
	return frame{
		size:   size,
		center: radius,
		// The innermost band stays empty, leaving a hole in the middle.
		band: radius / float64(l.Rings+1),
	}
}

// radii returns the inner and outer radius of a ring band.
func (f frame) radii(ring int) (inner, outer float64) {
	return f.band * float64(ring+1), f.band * float64(ring+2)
}

// point maps polar coordinates (degrees, counterclockwise from east) to
// canvas coordinates with the y axis pointing down.
func (f frame) point(angleDeg, r float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return f.center + r*math.Cos(rad), f.center - r*math.Sin(rad)
}

// fontPixels converts a point size to canvas pixels.
func fontPixels(points float64) float64 {
	return points / 72 * pixelsPerInch
}

// fullTurn reports whether a wedge spans the complete ring.
func fullTurn(w layout.Wedge) bool {
	return w.Sweep >= layout.FullTurn-fullTurnEps
}

// labelLines composes the text block of a labelled wedge: the category
// label followed by a percent line and a count line, e.g. "12.5%" and
// "(12)". With short labels only the category line is kept.
func labelLines(l layout.Layout, w layout.Wedge, short bool) []string {
	if w.Label == "" {
		return nil
	}
	if short {
		return []string{w.Label}
	}
	lines := strings.Split(w.Label, "\n")
	lines = append(lines, formatPercent(100*w.Share))
	return append(lines, "("+formatCount(w.Share*l.Total)+")")
}

// labelAngle returns the text rotation in screen degrees (clockwise
// positive) for a wedge's mid angle, flipped on the left half of the chart
// so labels never render upside down.
func labelAngle(mid float64) float64 {
	m := math.Mod(mid, layout.FullTurn)
	if m < 0 {
		m += layout.FullTurn
	}
	rot := -m
	if m > 90 && m < 270 {
		rot += 180
	}
	return rot
}

func formatPercent(v float64) string {
	return trimZeros(v, 1) + "%"
}

func formatCount(v float64) string {
	return trimZeros(v, 2)
}

// trimZeros formats v with up to prec decimals, dropping the trailing
// fraction when it is zero.
func trimZeros(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
