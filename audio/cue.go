// Package audio plays the glide cue while continuous motion is held
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue owns the output mixer and the looping glide tone
// SetGliding is safe from any goroutine
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	glide       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewCue creates a cue at the given volume, 0 is unity gain, negative is quieter
func NewCue(volume float64) *Cue {
	return &Cue{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker and starts playing the mixer
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything
func (c *Cue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	if c.glide != nil {
		c.glide.Paused = true
	}
	c.mixer.Clear()
	speaker.Unlock()
	c.glide = nil
	c.initialized = false
}

// SetGliding starts the tone when active and pauses it otherwise
func (c *Cue) SetGliding(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}

	if c.glide == nil {
		if !active {
			return
		}
		c.glide = &beep.Ctrl{Streamer: &effects.Volume{
			Streamer: newGlideTone(sampleRate),
			Base:     2,
			Volume:   c.volume,
		}}
		c.mixer.Add(c.glide)
		return
	}
	c.glide.Paused = !active
}

// Gliding reports whether the tone is audible
func (c *Cue) Gliding() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.glide != nil && !c.glide.Paused
}
