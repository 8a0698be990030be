package sound

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Cue names a fixed sound effect.
type Cue string

const (
	PowerUp Cue = "power-up"
	PewPew  Cue = "pew-pew"
)

// Tone is one square-wave note. A zero Freq is a rest.
type Tone struct {
	Freq physic.Frequency
	Dur  time.Duration
}

type Melody []Tone

func (m Melody) Duration() time.Duration {
	var d time.Duration
	for _, t := range m {
		d += t.Dur
	}
	return d
}

// Player plays cues. Play blocks until the cue has finished.
type Player interface {
	Play(ctx context.Context, c Cue) error
}

var melodies = map[Cue]Melody{
	// rising arpeggio, C5 E5 G5 C6 with a held top note
	PowerUp: {
		{Freq: 523 * physic.Hertz, Dur: 60 * time.Millisecond},
		{Freq: 659 * physic.Hertz, Dur: 60 * time.Millisecond},
		{Freq: 784 * physic.Hertz, Dur: 60 * time.Millisecond},
		{Freq: 1047 * physic.Hertz, Dur: 180 * time.Millisecond},
	},
	// two quick falling sweeps
	PewPew: append(sweep(2400, 600, 6, 15*time.Millisecond),
		append(Melody{{Dur: 40 * time.Millisecond}},
			sweep(2400, 600, 6, 15*time.Millisecond)...)...),
}

// sweep walks linearly from hz to toHz in n steps.
func sweep(hz, toHz int64, n int, step time.Duration) Melody {
	m := make(Melody, 0, n)
	for i := 0; i < n; i++ {
		f := hz + (toHz-hz)*int64(i)/int64(n-1)
		m = append(m, Tone{Freq: physic.Frequency(f) * physic.Hertz, Dur: step})
	}
	return m
}

// MelodyFor returns the fixed melody of c.
func MelodyFor(c Cue) (Melody, error) {
	m, ok := melodies[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue: %q", c)
	}
	return m, nil
}
