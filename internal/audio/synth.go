package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator emits one wave shape for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream. math.Log2(0) is -Inf, so zero volume is
// silenced outright.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	launchNoteDuration = 90 * time.Millisecond
	impactDuration     = 220 * time.Millisecond
	bellDuration       = 350 * time.Millisecond
	buzzDuration       = 160 * time.Millisecond
	cueAttack          = 8 * time.Millisecond
)

// launchCue rises through two notes, A4 to E5.
func launchCue() beep.Streamer {
	n1 := newOscillator(440.0, launchNoteDuration, waveSquare, sampleRate)
	n2 := newOscillator(659.26, launchNoteDuration, waveSquare, sampleRate)
	seq := beep.Seq(
		newEnvelope(n1, launchNoteDuration, cueAttack, 30*time.Millisecond, sampleRate),
		newEnvelope(n2, launchNoteDuration, cueAttack, 40*time.Millisecond, sampleRate),
	)
	return newVolume(seq, 0.35)
}

// impactCue is a low thud with a short noise tail.
func impactCue() beep.Streamer {
	thud := newEnvelope(
		newOscillator(80.0, impactDuration, waveSine, sampleRate),
		impactDuration, cueAttack, 160*time.Millisecond, sampleRate)
	dust := newEnvelope(
		newOscillator(0, impactDuration/2, waveNoise, sampleRate),
		impactDuration/2, cueAttack, 90*time.Millisecond, sampleRate)
	return newVolume(beep.Mix(newVolume(thud, 0.8), newVolume(dust, 0.2)), 0.5)
}

// correctCue is a bell: A5 fundamental plus one octave overtone.
func correctCue() beep.Streamer {
	fund := newEnvelope(
		newOscillator(880.0, bellDuration, waveSine, sampleRate),
		bellDuration, cueAttack, 300*time.Millisecond, sampleRate)
	over := newEnvelope(
		newOscillator(1760.0, bellDuration, waveSine, sampleRate),
		bellDuration, cueAttack, 200*time.Millisecond, sampleRate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), 0.4)
}

// wrongCue is a short low saw buzz.
func wrongCue() beep.Streamer {
	buzz := newEnvelope(
		newOscillator(100.0, buzzDuration, waveSaw, sampleRate),
		buzzDuration, cueAttack, 60*time.Millisecond, sampleRate)
	return newVolume(buzz, 0.4)
}
