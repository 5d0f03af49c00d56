package physics

import "math"

// Launch parameter bounds. Angles are degrees from horizontal; negative
// angles launch downward.
const (
	MinVelocity = 0.1
	MinAngle    = -90.0
	MaxAngle    = 90.0
)

// Sample is one point along the flight path. Energies are per unit mass
// (J/kg); Potential is referenced to the launch height, so TotalEnergy
// stays constant along an ideal trajectory.
type Sample struct {
	Time        float64 `json:"time"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	V           float64 `json:"v"`
	Kinetic     float64 `json:"ke"`
	Potential   float64 `json:"pe"`
	TotalEnergy float64 `json:"e_total"`
}

func (s Sample) IsValid() bool {
	for _, v := range []float64{s.Time, s.X, s.Y, s.VX, s.VY, s.V, s.Kinetic, s.Potential, s.TotalEnergy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return s.Time >= 0 && s.X >= 0 && s.Y >= 0 && s.V >= 0
}

// Solution is the complete result of one solve: the echoed launch
// parameters, the summary scalars, and the sampled trajectory.
type Solution struct {
	Velocity      float64 `json:"initial_velocity"`
	Angle         float64 `json:"angle"`
	InitialHeight float64 `json:"initial_height"`
	FinalHeight   float64 `json:"final_height"`

	V0X float64 `json:"v0x"`
	V0Y float64 `json:"v0y"`

	MaxHeight     float64 `json:"max_height"`
	MaxHeightTime float64 `json:"max_height_time"`

	TotalTime float64 `json:"total_time"`
	Range     float64 `json:"range"`

	ImpactVelocity float64 `json:"impact_velocity"`
	ImpactAngle    float64 `json:"impact_angle"`

	Trajectory []Sample `json:"trajectory"`
}

// Bounds returns the axis extents used for plotting: the largest x and y
// over all samples, floored at 10, with headroom factors of 1.1
// horizontally and 1.2 vertically.
func (s *Solution) Bounds() (maxX, maxY float64) {
	maxX, maxY = 10.0, 10.0
	for _, p := range s.Trajectory {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX * 1.1, maxY * 1.2
}

// Summary returns the headline scalars keyed the same way as the JSON
// payload, for answer checking and report formatting.
func (s *Solution) Summary() map[string]float64 {
	return map[string]float64{
		"max_height":      s.MaxHeight,
		"range":           s.Range,
		"total_time":      s.TotalTime,
		"impact_velocity": s.ImpactVelocity,
		"impact_angle":    s.ImpactAngle,
	}
}
