package physics

import (
	"fmt"
	"math"
)

// G is the gravitational acceleration used throughout, m/s^2.
const G = 9.81

// TrajectoryPoints is the number of evenly spaced samples generated per solve.
const TrajectoryPoints = 100

type Launch struct {
	Velocity      float64
	Angle         float64
	InitialHeight float64
	FinalHeight   float64
}

func NewLaunch() *Launch {
	return &Launch{
		Velocity:      30.0,
		Angle:         45.0,
		InitialHeight: 0.0,
		FinalHeight:   0.0,
	}
}

func (l *Launch) Validate() error {
	if math.IsNaN(l.Velocity) || l.Velocity < MinVelocity {
		return fmt.Errorf("%w: velocity %.2f below %.1f m/s", ErrParameterBounds, l.Velocity, MinVelocity)
	}
	if math.IsNaN(l.Angle) || l.Angle < MinAngle || l.Angle > MaxAngle {
		return fmt.Errorf("%w: angle %.2f outside [%.0f, %.0f] degrees", ErrParameterBounds, l.Angle, MinAngle, MaxAngle)
	}
	if math.IsNaN(l.InitialHeight) || l.InitialHeight < 0 {
		return fmt.Errorf("%w: initial height %.2f negative", ErrParameterBounds, l.InitialHeight)
	}
	if math.IsNaN(l.FinalHeight) || l.FinalHeight < 0 {
		return fmt.Errorf("%w: final height %.2f negative", ErrParameterBounds, l.FinalHeight)
	}
	return nil
}

// Components resolves the launch speed into horizontal and vertical parts.
func (l *Launch) Components() (v0x, v0y float64) {
	theta := l.Angle * math.Pi / 180.0
	return l.Velocity * math.Cos(theta), l.Velocity * math.Sin(theta)
}

func (l *Launch) GetParams() map[string]float64 {
	return map[string]float64{
		"velocity":       l.Velocity,
		"angle":          l.Angle,
		"initial_height": l.InitialHeight,
		"final_height":   l.FinalHeight,
	}
}

func (l *Launch) SetParam(name string, value float64) error {
	switch name {
	case "velocity":
		l.Velocity = value
	case "angle":
		l.Angle = value
	case "initial_height":
		l.InitialHeight = value
	case "final_height":
		l.FinalHeight = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Solve computes the full closed-form solution for the launch.
func (l *Launch) Solve() (*Solution, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	v0x, v0y := l.Components()

	// Vertex of the height parabola. For downward launches the vertex
	// lies before t=0; the height reported is still the parabola's peak.
	tApex := v0y / G
	maxHeight := l.InitialHeight + v0y*tApex - 0.5*G*tApex*tApex

	totalTime := flightTime(v0y, l.InitialHeight, l.FinalHeight)

	sol := &Solution{
		Velocity:      l.Velocity,
		Angle:         l.Angle,
		InitialHeight: l.InitialHeight,
		FinalHeight:   l.FinalHeight,
		V0X:           v0x,
		V0Y:           v0y,
		MaxHeight:     maxHeight,
		MaxHeightTime: tApex,
		TotalTime:     totalTime,
		Range:         v0x * totalTime,
	}

	if totalTime > 0 {
		vy := v0y - G*totalTime
		sol.ImpactVelocity = math.Sqrt(v0x*v0x + vy*vy)
		sol.ImpactAngle = math.Atan2(vy, v0x) * 180.0 / math.Pi
	}

	sol.Trajectory = sampleTrajectory(v0x, v0y, l.InitialHeight, l.FinalHeight, totalTime, TrajectoryPoints)
	return sol, nil
}

// flightTime solves 0.5*G*t^2 - v0y*t - (h0-hf) = 0 for the landing time,
// taking the larger root. A negative discriminant means the projectile
// never reaches hf (launched below it without enough speed); zero is
// returned so callers treat the flight as degenerate.
func flightTime(v0y, h0, hf float64) float64 {
	a := 0.5 * G
	b := -v0y
	c := -(h0 - hf)

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}

	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	return math.Max(t1, t2)
}

// sampleTrajectory evaluates the kinematic equations at n evenly spaced
// times in [0, totalTime]. Samples below the landing height are dropped.
// Energies are per unit mass, with potential referenced to launch height.
func sampleTrajectory(v0x, v0y, h0, hf, totalTime float64, n int) []Sample {
	if totalTime <= 0 || n < 2 {
		return []Sample{}
	}

	out := make([]Sample, 0, n)
	dt := totalTime / float64(n-1)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		y := h0 + v0y*t - 0.5*G*t*t
		if y < hf {
			continue
		}
		vy := v0y - G*t
		v := math.Sqrt(v0x*v0x + vy*vy)
		ke := 0.5 * v * v
		pe := G * (y - h0)
		out = append(out, Sample{
			Time:        t,
			X:           v0x * t,
			Y:           y,
			VX:          v0x,
			VY:          vy,
			V:           v,
			Kinetic:     ke,
			Potential:   pe,
			TotalEnergy: ke + pe,
		})
	}
	return out
}
