package input

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
)

// Button identifies one of the board's push buttons.
type Button string

const (
	A Button = "A"
	B Button = "B"

	DFLT_DEBOUNCE = 50 * time.Millisecond

	// how often a pin watcher wakes up to check for shutdown
	pollInterval = 100 * time.Millisecond
)

// Event is a single click.
type Event struct {
	Button Button
	At     time.Time
}

// WatchPin turns rising edges on p into clicks on btn. Edges closer than
// debounce to the last accepted one are dropped. The channel closes when ctx
// is done.
func WatchPin(ctx context.Context, btn Button, p gpio.PinIn, debounce time.Duration) (<-chan Event, error) {
	if err := p.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return nil, err
	}
	if debounce < 0 {
		debounce = 0
	}
	out := make(chan Event, 1)
	go func() {
		defer close(out)
		var last time.Time
		for {
			if ctx.Err() != nil {
				return
			}
			if !p.WaitForEdge(pollInterval) {
				continue
			}
			now := time.Now()
			if !last.IsZero() && now.Sub(last) < debounce {
				continue
			}
			last = now
			select {
			case out <- Event{Button: btn, At: now}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Keys reads clicks from text, one per line: "a" or "b", case-insensitive.
// Anything else is ignored. The channel closes at EOF or when ctx is done.
func Keys(ctx context.Context, r io.Reader) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			var btn Button
			switch strings.ToLower(strings.TrimSpace(sc.Text())) {
			case "a":
				btn = A
			case "b":
				btn = B
			default:
				continue
			}
			select {
			case out <- Event{Button: btn, At: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Warn().Err(err).Msg("key input closed")
		}
	}()
	return out
}

// Merge fans several sources into one channel, closed once they all are.
func Merge(ctx context.Context, srcs ...<-chan Event) <-chan Event {
	out := make(chan Event)
	wg := &sync.WaitGroup{}
	wg.Add(len(srcs))
	for _, src := range srcs {
		go func(src <-chan Event) {
			defer wg.Done()
			for ev := range src {
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}(src)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
