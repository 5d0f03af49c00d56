package physics

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParseSolution decodes a JSON trajectory payload and validates it.
// The payload shape matches what Solve produces, so solutions round-trip
// through storage and external producers alike.
func ParseSolution(data []byte) (*Solution, error) {
	var sol Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if err := sol.Validate(); err != nil {
		return nil, err
	}
	return &sol, nil
}

// Validate checks the solution is renderable: at least one sample,
// finite summary scalars, finite non-negative sample fields, and
// strictly ascending sample times.
func (s *Solution) Validate() error {
	if len(s.Trajectory) == 0 {
		return ErrEmptyTrajectory
	}

	for _, v := range []float64{s.MaxHeight, s.Range, s.TotalTime, s.ImpactVelocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite summary value", ErrBadPayload)
		}
	}

	prev := math.Inf(-1)
	for i, p := range s.Trajectory {
		if !p.IsValid() {
			return &PayloadError{Index: i, Wrapped: fmt.Errorf("%w at index %d", ErrInvalidSample, i)}
		}
		if p.Time <= prev {
			return &PayloadError{Index: i, Wrapped: fmt.Errorf("%w at index %d", ErrNotTimeOrdered, i)}
		}
		prev = p.Time
	}
	return nil
}

// EncodeJSON marshals the solution in the payload shape with indentation.
func (s *Solution) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
