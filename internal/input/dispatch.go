package input

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Handler reacts to one click. It runs to completion before the next click
// is looked at.
type Handler func(ctx context.Context) error

// Dispatcher runs click handlers one at a time.
type Dispatcher struct {
	handlers map[Button]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[Button]Handler{}}
}

// Handle registers h for btn, replacing any earlier handler.
func (d *Dispatcher) Handle(btn Button, h Handler) {
	d.handlers[btn] = h
}

// Run consumes events until the channel closes or ctx is done. Clicks that
// arrive while a handler is busy wait in the channel. A handler error stops
// the loop and is returned.
func (d *Dispatcher) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h, found := d.handlers[ev.Button]
			if !found {
				log.Debug().Str("button", string(ev.Button)).Msg("no handler")
				continue
			}
			log.Info().Str("button", string(ev.Button)).Msg("click")
			if err := h(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("button %s: %w", ev.Button, err)
			}
		}
	}
}
