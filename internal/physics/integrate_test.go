package physics

import (
	"math"
	"testing"
)

func TestRK4BallisticStep(t *testing.T) {
	integ := NewRK4()
	x := integ.Step(Ballistic, []float64{0, 0, 10, 10}, 0, 0.1)

	wantY := 10*0.1 - 0.5*G*0.1*0.1
	wantVY := 10 - G*0.1

	if math.Abs(x[0]-1.0) > 1e-12 {
		t.Errorf("x: got %.12f, expected 1.0", x[0])
	}
	if math.Abs(x[1]-wantY) > 1e-12 {
		t.Errorf("y: got %.12f, expected %.12f", x[1], wantY)
	}
	if math.Abs(x[2]-10) > 1e-12 {
		t.Errorf("vx: got %.12f, expected 10", x[2])
	}
	if math.Abs(x[3]-wantVY) > 1e-12 {
		t.Errorf("vy: got %.12f, expected %.12f", x[3], wantVY)
	}
}

func TestIntegrateMatchesClosedForm(t *testing.T) {
	l := &Launch{Velocity: 20, Angle: 45}
	sol, err := l.Solve()
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	dt := 0.01
	samples, err := l.Integrate(dt)
	if err != nil {
		t.Fatalf("integrate: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("expected integrated samples")
	}

	// RK4 is exact for constant acceleration, so interior samples must
	// match the kinematic formulas to rounding error.
	v0x, v0y := l.Components()
	for _, s := range samples {
		wantX := v0x * s.Time
		wantY := v0y*s.Time - 0.5*G*s.Time*s.Time
		if math.Abs(s.X-wantX) > 1e-8 {
			t.Fatalf("t=%.2f: x got %.10f, expected %.10f", s.Time, s.X, wantX)
		}
		if math.Abs(s.Y-wantY) > 1e-8 {
			t.Fatalf("t=%.2f: y got %.10f, expected %.10f", s.Time, s.Y, wantY)
		}
	}

	last := samples[len(samples)-1]
	if math.Abs(last.Time-sol.TotalTime) > 2*dt {
		t.Errorf("final time: got %.4f, closed form %.4f", last.Time, sol.TotalTime)
	}
	if math.Abs(last.X-sol.Range) > 2*dt*v0x {
		t.Errorf("final x: got %.4f, closed form range %.4f", last.X, sol.Range)
	}
}

func TestIntegrateRejectsBadLaunch(t *testing.T) {
	l := &Launch{Velocity: 0, Angle: 45}
	if _, err := l.Integrate(0.01); err == nil {
		t.Error("expected error for invalid launch")
	}
}
