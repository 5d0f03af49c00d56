package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mkarev/trajlab/internal/physics"
)

// Question is one thing the player must compute for the current flight.
type Question struct {
	Type   QuestionType
	Text   string
	Unit   string
	Target float64
}

// Answer is the accepted integer answer, the exact value rounded to the
// nearest whole unit.
func (q Question) Answer() int {
	return int(math.Round(q.Target))
}

// Problem is one generated exercise: randomized launch parameters, the
// solved flight, and the questions the level asks about it.
type Problem struct {
	Level     int
	Launch    physics.Launch
	Solution  *physics.Solution
	Questions []Question
}

// NewProblem rolls launch parameters for the level and solves them.
func NewProblem(level int, rng *rand.Rand) (*Problem, error) {
	def, ok := LevelAt(level)
	if !ok {
		return nil, fmt.Errorf("game: no level %d", level)
	}

	l := physics.Launch{
		Velocity: float64(randBetween(rng, def.VelocityLo, def.VelocityHi)),
		Angle:    float64(randBetween(rng, def.AngleLo, def.AngleHi)),
	}
	if def.HeightHi > 0 {
		l.InitialHeight = float64(randBetween(rng, def.HeightLo, def.HeightHi))
	}

	sol, err := l.Solve()
	if err != nil {
		return nil, fmt.Errorf("game: generate level %d: %w", level, err)
	}

	p := &Problem{Level: level, Launch: l, Solution: sol}
	summary := sol.Summary()
	for _, qt := range def.Questions {
		text := questionText[qt]
		p.Questions = append(p.Questions, Question{
			Type:   qt,
			Text:   text.Text,
			Unit:   text.Unit,
			Target: summary[string(qt)],
		})
	}
	return p, nil
}

// randBetween draws an integer in [lo, hi]. A degenerate range returns lo.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
