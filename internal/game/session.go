package game

import (
	"math/rand"
	"time"
)

// Session drives one player's progress through the levels. The active
// problem is held until it is either solved (advancing the level) or
// explicitly regenerated, so replaying the view never rerolls it.
type Session struct {
	level   int
	rng     *rand.Rand
	problem *Problem
}

// NewSession resumes at the given level. A seed of 0 uses the clock.
func NewSession(level int, seed int64) *Session {
	if level < 1 {
		level = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		level: level,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (s *Session) Level() int {
	return s.level
}

// Won reports whether the player has cleared the final level.
func (s *Session) Won() bool {
	return s.level > MaxLevel
}

// Problem returns the active problem, generating one on first use.
func (s *Session) Problem() (*Problem, error) {
	if s.Won() {
		return nil, nil
	}
	if s.problem == nil {
		p, err := NewProblem(s.level, s.rng)
		if err != nil {
			return nil, err
		}
		s.problem = p
	}
	return s.problem, nil
}

// Regenerate discards the active problem so the next Problem call rolls
// a fresh one at the same level.
func (s *Session) Regenerate() {
	s.problem = nil
}

// StepBack returns to the previous level with a fresh problem. At level
// one it only rerolls.
func (s *Session) StepBack() {
	if s.level > 1 {
		s.level--
	}
	s.problem = nil
}

// Submit grades the answers against the active problem. A perfect sheet
// advances the level and clears the problem.
func (s *Session) Submit(answers map[QuestionType]int) ([]Verdict, bool, error) {
	p, err := s.Problem()
	if err != nil {
		return nil, false, err
	}
	if p == nil {
		return nil, false, nil
	}

	verdicts, allCorrect := p.Check(answers)
	if allCorrect {
		s.level++
		s.problem = nil
	}
	return verdicts, allCorrect, nil
}

// Reset starts over at level one.
func (s *Session) Reset() {
	s.level = 1
	s.problem = nil
}
