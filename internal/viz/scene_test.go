package viz

import (
	"math"
	"testing"
	"unicode"

	"github.com/mkarev/trajlab/internal/physics"
)

func solveFlight(t *testing.T, l physics.Launch) *physics.Solution {
	t.Helper()
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return sol
}

func TestOverlayLinesFull(t *testing.T) {
	sol := &physics.Solution{
		Velocity:       20,
		Angle:          45,
		MaxHeight:      10.19,
		Range:          40.77,
		TotalTime:      2.88,
		ImpactVelocity: 20,
		Trajectory: []physics.Sample{
			{Time: 0, X: 0, Y: 0, V: 20, TotalEnergy: 200},
			{Time: 1.44, X: 20.39, Y: 10.19, V: 14.14, TotalEnergy: 200},
		},
	}

	lines := OverlayLines(sol, 1, false)
	want := []string{
		"Time: 1.44 s",
		"Position: (20.4, 10.2) m",
		"Velocity: 14.14 m/s",
		"Energy: 200 J/kg",
		"Max H: 10.19 m",
		"Range: 40.77 m",
		"Total T: 2.88 s",
		"Impact V: 20.00 m/s",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestOverlayLinesMasked(t *testing.T) {
	sol := solveFlight(t, physics.Launch{Velocity: 42.5, Angle: 37})

	lines := OverlayLines(sol, len(sol.Trajectory)/2, true)
	want := []string{
		"Practice Mode",
		"Time: --.-- s",
		"Position: (--.-, --.-) m",
		"Velocity: --.-- m/s",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	// Nothing derived from the flight may leak through the mask.
	for _, l := range lines {
		for _, r := range l {
			if unicode.IsDigit(r) {
				t.Fatalf("masked overlay contains a digit: %q", l)
			}
		}
	}
}

func TestRenderEmptySolution(t *testing.T) {
	tests := []struct {
		name string
		sol  *physics.Solution
	}{
		{"nil solution", nil},
		{"empty trajectory", &physics.Solution{Velocity: 5, Angle: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(tt.sol, nil, 40, 15, false)
			s.Render(0)
			for i, row := range s.Canvas.Grid {
				for j, cell := range row {
					if cell != 0x2800 {
						t.Fatalf("expected background only, found dots at (%d,%d)", j, i)
					}
					if s.Canvas.Text[i][j] != 0 {
						t.Fatalf("expected no text, found %q at (%d,%d)", s.Canvas.Text[i][j], j, i)
					}
				}
			}
		})
	}
}

func countDots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestRenderClampsIndex(t *testing.T) {
	sol := solveFlight(t, physics.Launch{Velocity: 30, Angle: 45})
	s := NewScene(sol, nil, 60, 20, false)

	for _, idx := range []int{-5, 0, len(sol.Trajectory) - 1, len(sol.Trajectory) + 100} {
		s.Render(idx)
		if countDots(s.Canvas) == 0 {
			t.Errorf("expected a drawn frame for index %d", idx)
		}
	}
}

func TestRenderMaskedOmitsResults(t *testing.T) {
	sol := solveFlight(t, physics.Launch{Velocity: 30, Angle: 45})
	s := NewScene(sol, nil, 60, 20, true)
	if !s.Masked() {
		t.Fatal("expected masked scene")
	}
	s.Render(len(sol.Trajectory) - 1)

	text := s.Canvas.String()
	for _, word := range []string{"Practice Mode", "Time: --.-- s"} {
		if !containsRow(text, word) {
			t.Errorf("expected masked overlay to contain %q", word)
		}
	}
	if containsRow(text, "Max H") || containsRow(text, "Impact V") {
		t.Error("expected masked overlay to omit the flight summary")
	}
}

func containsRow(s, sub string) bool {
	rs, rsub := []rune(s), []rune(sub)
	for i := 0; i+len(rsub) <= len(rs); i++ {
		match := true
		for j := range rsub {
			if rs[i+j] != rsub[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestSceneResize(t *testing.T) {
	sol := solveFlight(t, physics.Launch{Velocity: 30, Angle: 45})
	s := NewScene(sol, nil, 60, 20, false)

	s.Resize(0, 10)
	if s.Canvas.Width != 60 || s.Canvas.Height != 20 {
		t.Errorf("expected zero resize to be ignored, got %dx%d", s.Canvas.Width, s.Canvas.Height)
	}

	s.Resize(30, 12)
	if s.Canvas.Width != 30 || s.Canvas.Height != 12 {
		t.Errorf("expected 30x12 canvas, got %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	wantX, wantY := sol.Bounds()
	if s.Mapper.MaxX != wantX || s.Mapper.MaxY != wantY {
		t.Errorf("expected mapper extents (%v, %v), got (%v, %v)",
			wantX, wantY, s.Mapper.MaxX, s.Mapper.MaxY)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{-math.Pi / 2, '↑'},
		{math.Pi / 2, '↓'},
		{-math.Pi / 4, '↗'},
		{math.Pi / 4, '↘'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
	}
	for _, tt := range tests {
		if got := headingGlyph(tt.angle); got != tt.want {
			t.Errorf("headingGlyph(%v): expected %q, got %q", tt.angle, tt.want, got)
		}
	}
}
