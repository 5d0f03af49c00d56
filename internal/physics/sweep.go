package physics

// SweepPoint records the outcome of one candidate launch angle.
type SweepPoint struct {
	Angle     float64 `json:"angle"`
	Range     float64 `json:"range"`
	MaxHeight float64 `json:"max_height"`
	TotalTime float64 `json:"total_time"`
}

// SweepAngles solves the launch across steps+1 evenly spaced angles in
// [lo, hi], holding the other parameters fixed. Angles whose solve fails
// validation are skipped.
func SweepAngles(base Launch, lo, hi float64, steps int) []SweepPoint {
	if steps < 1 || hi <= lo {
		return nil
	}

	out := make([]SweepPoint, 0, steps+1)
	dA := (hi - lo) / float64(steps)
	for i := 0; i <= steps; i++ {
		l := base
		l.Angle = lo + float64(i)*dA
		sol, err := l.Solve()
		if err != nil {
			continue
		}
		out = append(out, SweepPoint{
			Angle:     l.Angle,
			Range:     sol.Range,
			MaxHeight: sol.MaxHeight,
			TotalTime: sol.TotalTime,
		})
	}
	return out
}

// BestAngle finds the launch angle maximizing range via a coarse sweep
// refined around the best candidate. On flat ground this converges near
// 45 degrees; with a height difference the optimum shifts.
func BestAngle(base Launch, lo, hi float64) (angle, rng float64) {
	const rounds = 4
	const steps = 30

	for round := 0; round < rounds; round++ {
		points := SweepAngles(base, lo, hi, steps)
		if len(points) == 0 {
			return 0, 0
		}

		best := points[0]
		for _, p := range points[1:] {
			if p.Range > best.Range {
				best = p
			}
		}
		angle, rng = best.Angle, best.Range

		// Zoom into the bracket around the winner.
		span := (hi - lo) / float64(steps)
		lo = clampAngle(angle - span)
		hi = clampAngle(angle + span)
	}
	return angle, rng
}

func clampAngle(a float64) float64 {
	if a < MinAngle {
		return MinAngle
	}
	if a > MaxAngle {
		return MaxAngle
	}
	return a
}
