package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// glideTone is a soft wind-like sweep, endless
type glideTone struct {
	sr    beep.SampleRate
	pos   int
	cycle int
}

func newGlideTone(sr beep.SampleRate) *glideTone {
	return &glideTone{sr: sr, cycle: sr.N(2 * time.Second)}
}

func (g *glideTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// sweep 80Hz to 200Hz and back over one cycle
		c := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := 80 + 120*math.Sin(c*math.Pi)
		amp := 0.15 * (0.5 + 0.5*math.Sin(c*math.Pi*2))
		s := amp * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *glideTone) Err() error {
	return nil
}
