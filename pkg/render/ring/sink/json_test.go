package sink

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/render/ring/layout"
)

func TestRenderJSONRoundTrip(t *testing.T) {
	l := fixtureLayout(t)

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Rings     int     `json:"rings"`
		Total     float64 `json:"total"`
		Threshold float64 `json:"threshold"`
		Palette   string  `json:"palette"`
		FontSize  float64 `json:"fontsize"`
		FigSize   float64 `json:"figsize"`
		Wedges    []struct {
			Ring  int     `json:"ring"`
			Start float64 `json:"start"`
			Sweep float64 `json:"sweep"`
			Value float64 `json:"value"`
			Share float64 `json:"share"`
			Label string  `json:"label"`
			Color string  `json:"color"`
		} `json:"wedges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Rings != 2 || out.Total != 13 {
		t.Errorf("rings/total = %d/%v, want 2/13", out.Rings, out.Total)
	}
	if out.Threshold != layout.DefaultThreshold {
		t.Errorf("threshold = %v, want %v", out.Threshold, layout.DefaultThreshold)
	}
	if out.Palette != "tab10" {
		t.Errorf("palette = %q, want tab10", out.Palette)
	}
	if len(out.Wedges) != len(l.Wedges) {
		t.Fatalf("wedge count = %d, want %d", len(out.Wedges), len(l.Wedges))
	}
	for i, w := range out.Wedges {
		orig := l.Wedges[i]
		if w.Ring != orig.Ring || math.Abs(w.Sweep-orig.Sweep) > 1e-9 || w.Color != orig.Color {
			t.Errorf("wedge %d does not round-trip: %+v vs %+v", i, w, orig)
		}
	}
}

func TestRenderJSONSkipsDegenerate(t *testing.T) {
	data := counttree.Branch(
		counttree.Branch(counttree.Leaf(0)),
		counttree.Branch(counttree.Leaf(5)),
	)
	tree, err := counttree.New(data, [][]string{{"dead", "live"}, {"x"}})
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	l, err := layout.Build(tree)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	out, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	var decoded struct {
		Wedges []json.RawMessage `json:"wedges"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Wedges) != 2 {
		t.Errorf("wedges = %d, want 2 (degenerate skipped)", len(decoded.Wedges))
	}

	out, err = RenderJSON(l, WithJSONDegenerate())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Wedges) != 4 {
		t.Errorf("wedges = %d, want 4 with degenerate included", len(decoded.Wedges))
	}
}

func TestRenderJSONIndent(t *testing.T) {
	l := fixtureLayout(t)

	compact, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact JSON should be single-line")
	}

	pretty, err := RenderJSON(l, WithJSONIndent())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("indented JSON should be multi-line")
	}
}
