package viz

import "time"

// FlightDuration is the wall-clock length of one trajectory playback,
// independent of the simulated flight time.
const FlightDuration = 3000 * time.Millisecond

// Timeline maps wall-clock time onto trajectory sample indices. One
// forward-only run per Start; there is no pause. Restarting a flight
// means calling Start again with a fresh anchor.
type Timeline struct {
	anchor   time.Time
	started  bool
	duration time.Duration
	samples  int
}

func NewTimeline(samples int) *Timeline {
	return &Timeline{duration: FlightDuration, samples: samples}
}

func (t *Timeline) Start(now time.Time) {
	t.anchor = now
	t.started = true
}

func (t *Timeline) Started() bool {
	return t.started
}

// Progress returns the normalized elapsed fraction in [0, 1].
func (t *Timeline) Progress(now time.Time) float64 {
	if !t.started || t.samples == 0 {
		return 0
	}
	p := float64(now.Sub(t.anchor)) / float64(t.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Index returns the current sample index, floor(progress*(n-1)),
// always within [0, n-1] for a non-empty trajectory.
func (t *Timeline) Index(now time.Time) int {
	if t.samples == 0 {
		return 0
	}
	idx := int(t.Progress(now) * float64(t.samples-1))
	if idx > t.samples-1 {
		idx = t.samples - 1
	}
	return idx
}

// Done reports whether playback has reached the end of its duration.
// An empty timeline is immediately done; the caller never starts it.
func (t *Timeline) Done(now time.Time) bool {
	if t.samples == 0 {
		return true
	}
	return t.started && t.Progress(now) >= 1
}
