package export

import (
	"strings"
	"testing"

	"github.com/san-kum/kinelab/internal/analysis"
	"github.com/san-kum/kinelab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)

	svg := CanvasToSVG(c, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %q", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Error("size should be sub-pixels times scale")
	}
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestTrajectorySVG(t *testing.T) {
	points := []analysis.Point{{X: 0, Y: 0}, {X: 20, Y: 10}, {X: 40, Y: 0}}

	svg := TrajectorySVG(points, 400, 200, "")
	if !strings.Contains(svg, "<path") {
		t.Fatal("missing path")
	}
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %q", svg)
	}
	if !strings.Contains(svg, "<line") {
		t.Error("ground line should be drawn when y=0 is in view")
	}
	if !strings.Contains(svg, foreground) {
		t.Error("empty stroke should fall back to the default color")
	}

	if TrajectorySVG(points[:1], 400, 200, "red") != "" {
		t.Error("a single point is not a trajectory")
	}
}
