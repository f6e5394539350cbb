package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
)

// Every tone starts at startGain and decays exponentially to endGain.
const (
	startGain = 0.1
	endGain   = 0.01
)

// tone is a fixed-length oscillator with an exponential gain ramp.
type tone struct {
	freq     float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
}

// newTone creates a streamer playing freq for d.
func newTone(freq float64, wave Wave, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		freq:   freq,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		}
		val *= t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain follows startGain * (endGain/startGain)^progress.
func (t *tone) gain() float64 {
	if t.length == 0 {
		return 0
	}
	progress := float64(t.position) / float64(t.length)
	return startGain * math.Pow(endGain/startGain, progress)
}

// withVolume scales s by a linear volume factor; zero mutes.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound effects

func jumpSound(rate beep.SampleRate) beep.Streamer {
	return newTone(400, WaveSine, 100*time.Millisecond, rate)
}

func collectSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newTone(800, WaveSine, 100*time.Millisecond, rate),
		newTone(1200, WaveSine, 100*time.Millisecond, rate),
	)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return newTone(150, WaveSaw, 500*time.Millisecond, rate)
}
