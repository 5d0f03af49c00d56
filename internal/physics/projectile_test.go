package physics

import (
	"errors"
	"math"
	"testing"
)

func TestSolveFlatGround(t *testing.T) {
	l := &Launch{Velocity: 20, Angle: 45}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v0y := 20 * math.Sin(45*math.Pi/180)
	wantTime := 2 * v0y / G
	wantRange := 400 * math.Sin(90*math.Pi/180) / G
	wantMaxH := v0y * v0y / (2 * G)

	if math.Abs(sol.TotalTime-wantTime) > 1e-9 {
		t.Errorf("total time: got %.9f, expected %.9f", sol.TotalTime, wantTime)
	}
	if math.Abs(sol.Range-wantRange) > 1e-6 {
		t.Errorf("range: got %.6f, expected %.6f", sol.Range, wantRange)
	}
	if math.Abs(sol.MaxHeight-wantMaxH) > 1e-9 {
		t.Errorf("max height: got %.9f, expected %.9f", sol.MaxHeight, wantMaxH)
	}
	if math.Abs(sol.ImpactVelocity-20) > 1e-9 {
		t.Errorf("impact velocity: got %.9f, expected 20", sol.ImpactVelocity)
	}
	if math.Abs(sol.ImpactAngle+45) > 1e-6 {
		t.Errorf("impact angle: got %.6f, expected -45", sol.ImpactAngle)
	}
}

func TestSolveHorizontalFromHeight(t *testing.T) {
	l := &Launch{Velocity: 10, Angle: 0, InitialHeight: 50}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTime := math.Sqrt(2 * 50 / G)
	if math.Abs(sol.TotalTime-wantTime) > 1e-9 {
		t.Errorf("total time: got %.9f, expected %.9f", sol.TotalTime, wantTime)
	}
	if math.Abs(sol.MaxHeight-50) > 1e-9 {
		t.Errorf("max height: got %.9f, expected 50", sol.MaxHeight)
	}

	wantImpact := math.Sqrt(100 + 2*G*50)
	if math.Abs(sol.ImpactVelocity-wantImpact) > 1e-9 {
		t.Errorf("impact velocity: got %.9f, expected %.9f", sol.ImpactVelocity, wantImpact)
	}
}

func TestSolveNeverReachesTarget(t *testing.T) {
	// Apex rise of ~0.32 m cannot reach a landing plane 10 m up.
	l := &Launch{Velocity: 5, Angle: 30, InitialHeight: 0, FinalHeight: 10}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sol.TotalTime != 0 {
		t.Errorf("total time: got %f, expected 0", sol.TotalTime)
	}
	if sol.Range != 0 {
		t.Errorf("range: got %f, expected 0", sol.Range)
	}
	if sol.ImpactVelocity != 0 {
		t.Errorf("impact velocity: got %f, expected 0", sol.ImpactVelocity)
	}
	if len(sol.Trajectory) != 0 {
		t.Errorf("trajectory: got %d samples, expected none", len(sol.Trajectory))
	}
}

func TestSolveDownwardLaunch(t *testing.T) {
	l := &Launch{Velocity: 30, Angle: -45, InitialHeight: 100}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, v0y := l.Components()
	wantVertex := 100 + v0y*v0y/(2*G)
	if math.Abs(sol.MaxHeight-wantVertex) > 1e-9 {
		t.Errorf("vertex height: got %.9f, expected %.9f", sol.MaxHeight, wantVertex)
	}
	if sol.TotalTime <= 0 {
		t.Fatalf("expected positive flight time, got %f", sol.TotalTime)
	}

	if len(sol.Trajectory) == 0 {
		t.Fatal("expected trajectory samples")
	}
	if sol.Trajectory[0].Y != 100 {
		t.Errorf("first sample height: got %f, expected 100", sol.Trajectory[0].Y)
	}
	for i := 1; i < len(sol.Trajectory); i++ {
		if sol.Trajectory[i].Y >= sol.Trajectory[i-1].Y {
			t.Fatalf("sample %d: height should strictly descend", i)
		}
	}
}

func TestTrajectorySamples(t *testing.T) {
	l := &Launch{Velocity: 25, Angle: 60}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(sol.Trajectory)
	if n < TrajectoryPoints-1 || n > TrajectoryPoints {
		t.Fatalf("expected ~%d samples, got %d", TrajectoryPoints, n)
	}

	first := sol.Trajectory[0]
	if first.Time != 0 || first.X != 0 || first.Y != 0 {
		t.Errorf("first sample should be the launch point, got %+v", first)
	}

	e0 := 0.5 * 25 * 25
	for i, s := range sol.Trajectory {
		if s.Y < 0 {
			t.Fatalf("sample %d below landing height: y=%f", i, s.Y)
		}
		if i > 0 && s.Time <= sol.Trajectory[i-1].Time {
			t.Fatalf("sample %d: time not ascending", i)
		}
		if math.Abs(s.TotalEnergy-e0) > 1e-6 {
			t.Errorf("sample %d: energy drifted: got %.9f, expected %.9f", i, s.TotalEnergy, e0)
		}
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		angle   float64
		wantV0X float64
		wantV0Y float64
	}{
		{0, 10, 0},
		{90, 0, 10},
		{-90, 0, -10},
		{30, 10 * math.Cos(30*math.Pi/180), 5},
	}

	for _, tt := range tests {
		l := &Launch{Velocity: 10, Angle: tt.angle}
		v0x, v0y := l.Components()
		if math.Abs(v0x-tt.wantV0X) > 1e-9 {
			t.Errorf("angle %.0f: v0x got %.9f, expected %.9f", tt.angle, v0x, tt.wantV0X)
		}
		if math.Abs(v0y-tt.wantV0Y) > 1e-9 {
			t.Errorf("angle %.0f: v0y got %.9f, expected %.9f", tt.angle, v0y, tt.wantV0Y)
		}
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name string
		l    Launch
	}{
		{"velocity too small", Launch{Velocity: 0.05, Angle: 45}},
		{"velocity NaN", Launch{Velocity: math.NaN(), Angle: 45}},
		{"angle too steep", Launch{Velocity: 10, Angle: 95}},
		{"angle too shallow", Launch{Velocity: 10, Angle: -95}},
		{"negative initial height", Launch{Velocity: 10, Angle: 45, InitialHeight: -1}},
		{"negative final height", Launch{Velocity: 10, Angle: 45, FinalHeight: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.l.Solve(); !errors.Is(err, ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	l := &Launch{Velocity: 1, Angle: 45}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxX, maxY := sol.Bounds()
	if math.Abs(maxX-11) > 1e-9 {
		t.Errorf("maxX floor: got %f, expected 11", maxX)
	}
	if math.Abs(maxY-12) > 1e-9 {
		t.Errorf("maxY floor: got %f, expected 12", maxY)
	}
}

func TestSetParam(t *testing.T) {
	l := NewLaunch()
	if err := l.SetParam("angle", 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Angle != 30 {
		t.Errorf("expected angle 30, got %f", l.Angle)
	}
	if err := l.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}
