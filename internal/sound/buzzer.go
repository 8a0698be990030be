package sound

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
)

// Buzzer plays melodies on a piezo driven by a PWM-capable pin.
type Buzzer struct {
	pin gpio.PinOut
}

func NewBuzzer(p gpio.PinOut) *Buzzer {
	return &Buzzer{pin: p}
}

func (b *Buzzer) Play(ctx context.Context, c Cue) error {
	m, err := MelodyFor(c)
	if err != nil {
		return err
	}
	log.Debug().Str("cue", string(c)).Str("pin", b.pin.Name()).Dur("len", m.Duration()).Msg("buzzer")
	defer b.silence()

	for _, t := range m {
		if t.Freq == 0 {
			if err := b.pin.Out(gpio.Low); err != nil {
				return fmt.Errorf("buzzer rest: %w", err)
			}
		} else if err := b.pin.PWM(gpio.DutyHalf, t.Freq); err != nil {
			return fmt.Errorf("buzzer %s: %w", t.Freq, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.Dur):
		}
	}
	return nil
}

func (b *Buzzer) silence() {
	if err := b.pin.Halt(); err != nil {
		log.Warn().Err(err).Str("pin", b.pin.Name()).Msg("buzzer halt failed")
	}
	_ = b.pin.Out(gpio.Low)
}
