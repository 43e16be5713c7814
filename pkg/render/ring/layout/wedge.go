package layout

// Wedge is one angular, radially-banded segment of an onion ring chart,
// corresponding to one node of the count tree. Angles are in degrees; a
// full ring spans 360.
type Wedge struct {
	Ring   int     // Ring index, 0-based from the innermost data ring
	Branch int     // Index of the wedge's top-level branch
	Start  float64 // Start angle in degrees
	Sweep  float64 // Angular extent in degrees (0 for zero-total wedges)
	Value  float64 // Displayed value: count, or percent of total with rel_percent
	Share  float64 // Node total as a fraction of the grand total
	Label  string  // Display label (empty below the label threshold)
	Color  string  // Fill color as #rrggbb
}

// End returns the angle at which the wedge ends.
func (w Wedge) End() float64 { return w.Start + w.Sweep }

// Mid returns the angle through the middle of the wedge, where labels are
// anchored.
func (w Wedge) Mid() float64 { return w.Start + w.Sweep/2 }

// Degenerate reports whether the wedge has no angular extent. Degenerate
// wedges keep their position in the sequence but are skipped by renderers.
func (w Wedge) Degenerate() bool { return w.Sweep <= 0 }
