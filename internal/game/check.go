package game

import (
	"fmt"

	"github.com/mkarev/trajlab/internal/physics"
)

// Verdict is the graded outcome of one answered question.
type Verdict struct {
	Question Question
	Given    int
	Correct  bool
	Message  string
	Hint     string
}

// Check grades a full answer sheet. Every question must be answered;
// a missing answer counts as wrong. allCorrect is true only when every
// verdict passed, which is what advances the level.
func (p *Problem) Check(answers map[QuestionType]int) (verdicts []Verdict, allCorrect bool) {
	allCorrect = true
	for _, q := range p.Questions {
		given, answered := answers[q.Type]
		v := Verdict{Question: q, Given: given}

		if answered && given == q.Answer() {
			v.Correct = true
			v.Message = fmt.Sprintf("Correct! Exact: %.2f", q.Target)
		} else {
			allCorrect = false
			v.Message = fmt.Sprintf("Incorrect. You entered %d.", given)
			v.Hint = HintFor(q.Type, p.Launch)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, allCorrect
}

// HintFor builds the formula walkthrough shown after a wrong answer.
func HintFor(qt QuestionType, l physics.Launch) string {
	switch qt {
	case QuestionMaxHeight:
		return fmt.Sprintf(
			"Hint: Use H = h0 + v0y^2/(2g). First decompose velocity: v0y = %.0f x sin(%.0f deg). Then apply the maximum height formula with g = 9.81 m/s^2.",
			l.Velocity, l.Angle)
	case QuestionRange:
		return fmt.Sprintf(
			"Hint: Calculate horizontal velocity v0x = %.0f x cos(%.0f deg). Then multiply by total flight time. Use the quadratic formula to find the time when y = 0.",
			l.Velocity, l.Angle)
	case QuestionTotalTime:
		return fmt.Sprintf(
			"Hint: Use the quadratic formula with vertical motion: h = h0 + v0y*t - (1/2)g*t^2. Set h = 0 (ground level) and solve for t. Your h0 = %.0f m.",
			l.InitialHeight)
	case QuestionImpactVelocity:
		return fmt.Sprintf(
			"Hint: Find the final velocity components at landing. vx stays constant = %.0f x cos(%.0f deg). vy changes: v0y - g*t. Use the Pythagorean theorem: v = sqrt(vx^2 + vy^2).",
			l.Velocity, l.Angle)
	}
	return "Hint: Review the projectile motion formulas."
}
