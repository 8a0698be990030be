package sound

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Logger stands in for a speaker on boards without one: it logs the cue
// and returns without waiting.
type Logger struct {
	Played []Cue
}

func (l *Logger) Play(_ context.Context, c Cue) error {
	m, err := MelodyFor(c)
	if err != nil {
		return err
	}
	l.Played = append(l.Played, c)
	log.Info().Str("cue", string(c)).Int("tones", len(m)).Dur("len", m.Duration()).Msg("sound")
	return nil
}
