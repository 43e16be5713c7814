package palette

import "github.com/lucasb-eyer/go-colorful"

// Tint strength bounds. A wedge on the innermost ring uses the pure base
// color (tint 0); the strongest tint blends 60% toward white, keeping
// every shade clearly attributable to its base hue.
const (
	tintMin = 0.0
	tintMax = 0.6
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Shade returns the fill color for a wedge on ring (0-based, innermost
// first), where index is the wedge's position among the count wedges that
// share its top-level branch on that ring.
//
// Ring 0 always returns the base color unchanged. On deeper rings the
// available tint range is split evenly among the branch's wedges, so
// siblings are distinguishable while all of them stay tints of base.
// Blending happens in RGB, which matches alpha compositing on a white
// background.
func Shade(base colorful.Color, ring, index, count int) colorful.Color {
	if ring <= 0 {
		return base
	}
	if count < 1 {
		count = 1
	}
	if index < 0 {
		index = 0
	}
	t := tintMin + (tintMax-tintMin)*float64(index+1)/float64(count+1)
	return base.BlendRgb(white, t)
}

// Hex renders a color as a lowercase #rrggbb string, clamped to the RGB
// gamut.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}
