package analysis

import (
	"math"

	"github.com/mkarev/trajlab/internal/physics"
)

// Apex returns the highest sample of a trajectory.
func Apex(samples []physics.Sample) (physics.Sample, bool) {
	if len(samples) == 0 {
		return physics.Sample{}, false
	}
	best := samples[0]
	for _, p := range samples[1:] {
		if p.Y > best.Y {
			best = p
		}
	}
	return best, true
}

// PathLength sums straight-line distances between consecutive samples,
// approximating the arc length of the flight path.
func PathLength(samples []physics.Sample) float64 {
	total := 0.0
	for i := 1; i < len(samples); i++ {
		dx := samples[i].X - samples[i-1].X
		dy := samples[i].Y - samples[i-1].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// Heights projects a trajectory onto its height series.
func Heights(samples []physics.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, p := range samples {
		out[i] = p.Y
	}
	return out
}

// Speeds projects a trajectory onto its speed series.
func Speeds(samples []physics.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, p := range samples {
		out[i] = p.V
	}
	return out
}

// DriftMeter tracks the worst relative drift of total energy from its
// first observed value. Closed-form trajectories show nothing beyond
// rounding; integrated ones reveal their step error here.
type DriftMeter struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewDriftMeter() *DriftMeter {
	return &DriftMeter{}
}

func (d *DriftMeter) Observe(p physics.Sample) {
	if d.samples == 0 {
		d.initial = p.TotalEnergy
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(p.TotalEnergy-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *DriftMeter) Value() float64 {
	return d.maxDrift
}

func (d *DriftMeter) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}

// Report summarizes a sampled trajectory against the flight's
// closed-form summary values.
type Report struct {
	SampledApex float64 `json:"sampled_apex"`
	ApexTime    float64 `json:"apex_time"`
	PathLength  float64 `json:"path_length"`
	AvgSpeed    float64 `json:"avg_speed"`
	EnergyDrift float64 `json:"energy_drift"`

	// ApexGap is the closed-form maximum height minus the sampled apex.
	// Launches that never rise above their start point report the full
	// vertex height here.
	ApexGap float64 `json:"apex_gap"`

	// ImpactGap is the closed-form range minus the last sampled x.
	ImpactGap float64 `json:"impact_gap"`
}

func Analyze(sol *physics.Solution) (*Report, error) {
	if sol == nil || len(sol.Trajectory) == 0 {
		return nil, physics.ErrEmptyTrajectory
	}

	traj := sol.Trajectory
	apex, _ := Apex(traj)
	length := PathLength(traj)

	drift := NewDriftMeter()
	for _, p := range traj {
		drift.Observe(p)
	}

	avg := 0.0
	if span := traj[len(traj)-1].Time - traj[0].Time; span > 0 {
		avg = length / span
	}

	return &Report{
		SampledApex: apex.Y,
		ApexTime:    apex.Time,
		PathLength:  length,
		AvgSpeed:    avg,
		EnergyDrift: drift.Value(),
		ApexGap:     sol.MaxHeight - apex.Y,
		ImpactGap:   sol.Range - traj[len(traj)-1].X,
	}, nil
}
