package export

import (
	"strings"
	"testing"

	"github.com/mkarev/trajlab/internal/physics"
	"github.com/mkarev/trajlab/internal/viz"
)

func TestCanvasToSVGDots(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	svg := CanvasToSVG(c, 10)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML prologue")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing svg tag")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d circles", got)
	}
	// First dot sits at the center of sub-pixel (0,0).
	if !strings.Contains(svg, `cx="5.0" cy="5.0"`) {
		t.Error("expected dot centered at (5.0, 5.0)")
	}
}

func TestCanvasToSVGTextRuns(t *testing.T) {
	c := viz.NewCanvas(12, 2)
	c.Label(1, 0, "v<10 & up")

	svg := CanvasToSVG(c, 8)
	if got := strings.Count(svg, "<text"); got != 1 {
		t.Errorf("expected one text run, got %d", got)
	}
	if !strings.Contains(svg, "v&lt;10 &amp; up") {
		t.Error("expected markup-escaped label text")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if got := CanvasToSVG(nil, 10); got != "" {
		t.Errorf("expected empty string for nil canvas, got %q", got)
	}
}

func TestFlightToSVG(t *testing.T) {
	l := physics.Launch{Velocity: 20, Angle: 45}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	svg := FlightToSVG(sol, 800, 500)
	for _, want := range []string{"<svg", "<path", "stroke-dasharray", "apex", "range", "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected svg to contain %q", want)
		}
	}
	// One path segment per trajectory sample after the first.
	if got := strings.Count(svg, " L"); got != len(sol.Trajectory)-1 {
		t.Errorf("expected %d segments, got %d", len(sol.Trajectory)-1, got)
	}
}

func TestFlightToSVGEmpty(t *testing.T) {
	if got := FlightToSVG(nil, 800, 500); got != "" {
		t.Errorf("expected empty string for nil solution, got %q", got)
	}
	if got := FlightToSVG(&physics.Solution{}, 800, 500); got != "" {
		t.Errorf("expected empty string for empty trajectory, got %q", got)
	}
	l := physics.Launch{Velocity: 20, Angle: 45}
	sol, _ := l.Solve()
	if got := FlightToSVG(sol, 0, 500); got != "" {
		t.Errorf("expected empty string for degenerate size, got %q", got)
	}
}
