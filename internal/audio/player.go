// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dolphin-dash/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player implements core.Audio by mixing synthesized tones into the speaker.
// Sounds are queued on the mixer and never block the caller.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

var _ core.Audio = (*Player)(nil)

// NewPlayer creates a player at the given linear volume (1.0 = unchanged).
// It stays silent until Initialize succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every queued sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) JumpSound()     { p.play(jumpSound(sampleRate)) }
func (p *Player) CollectSound()  { p.play(collectSound(sampleRate)) }
func (p *Player) GameOverSound() { p.play(gameOverSound(sampleRate)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Open returns an initialized Player, or silent audio when muted or when no
// output device is available.
func Open(muted bool, volume float64, logger *log.Logger) core.Audio {
	if muted {
		return core.SilentAudio{}
	}

	p := NewPlayer(volume)
	if err := p.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return core.SilentAudio{}
	}
	return p
}
