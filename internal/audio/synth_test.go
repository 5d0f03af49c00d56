package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestOscillatorRange(t *testing.T) {
	tests := []struct {
		name string
		wave waveType
		freq float64
	}{
		{"sine", waveSine, 440},
		{"saw", waveSaw, 110},
		{"noise", waveNoise, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := newOscillator(tt.freq, 100*time.Millisecond, tt.wave, sampleRate)

			samples := make([][2]float64, 200)
			n, ok := osc.Stream(samples)
			if !ok || n != 200 {
				t.Fatalf("expected 200 samples streamed, got %d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("sample %d not mono across channels", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("expected no error, got %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := newOscillator(220, 50*time.Millisecond, waveSquare, sampleRate)

	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Fatalf("square sample %d should be -1 or 1, got %f", i, samples[i][0])
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	d := 10 * time.Millisecond
	want := sampleRate.N(d)
	osc := newOscillator(440, d, waveSine, sampleRate)

	samples := make([][2]float64, want*2)
	n, _ := osc.Stream(samples)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("expected exhausted oscillator, got n=%d ok=%v", n2, ok2)
	}
}

func TestEnvelopeAttackRampsUp(t *testing.T) {
	d := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	osc := newOscillator(100, d, waveSquare, sampleRate)
	env := newEnvelope(osc, d, attack, 10*time.Millisecond, sampleRate)

	samples := make([][2]float64, sampleRate.N(attack))
	n, ok := env.Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("expected streamed attack, got n=%d ok=%v", n, ok)
	}

	if first, last := absf(samples[0][0]), absf(samples[n-1][0]); first >= last {
		t.Errorf("expected rising attack, first=%f last=%f", first, last)
	}
}

func TestEnvelopeEndsStream(t *testing.T) {
	d := 20 * time.Millisecond
	// Inner stream runs longer than the envelope, which must cut it.
	osc := newOscillator(440, time.Second, waveSine, sampleRate)
	env := newEnvelope(osc, d, time.Millisecond, time.Millisecond, sampleRate)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := env.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(d); total != want {
		t.Errorf("expected %d samples through envelope, got %d", want, total)
	}
}

func TestCuesStream(t *testing.T) {
	tests := []struct {
		name string
		cue  func() beep.Streamer
	}{
		{"launch", launchCue},
		{"impact", impactCue},
		{"correct", correctCue},
		{"wrong", wrongCue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.cue()
			if s == nil {
				t.Fatal("expected non-nil cue")
			}
			samples := make([][2]float64, 256)
			n, ok := s.Stream(samples)
			if !ok || n == 0 {
				t.Errorf("expected cue to produce samples, got n=%d ok=%v", n, ok)
			}
		})
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	osc := newOscillator(440, 50*time.Millisecond, waveSine, sampleRate)
	vol := newVolume(osc, 0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("expected silent stream to still run, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("expected silence, got %f at %d", samples[i][0], i)
		}
	}
}

func TestPlayerDisabledIsNoOp(t *testing.T) {
	p := NewPlayer()
	// Never started: cues must be safe no-ops.
	p.Launch()
	p.Impact()
	p.Correct()
	p.Wrong()
	p.Stop()
}
