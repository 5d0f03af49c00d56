package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferLen  = 100 * time.Millisecond
)

// Player synthesizes short cues for flight and grading events. Before
// Start, or after a failed Start, every cue is a silent no-op, so the
// rest of the program never checks whether audio came up.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLen)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Launch plays a quick two-note rise as the projectile takes off.
func (p *Player) Launch() { p.play(launchCue()) }

// Impact plays a low thud at touchdown.
func (p *Player) Impact() { p.play(impactCue()) }

// Correct plays a bell for a fully correct answer sheet.
func (p *Player) Correct() { p.play(correctCue()) }

// Wrong plays a short buzz for a miss.
func (p *Player) Wrong() { p.play(wrongCue()) }
