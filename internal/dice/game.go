package dice

import (
	"context"
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-diceroll/internal/animation"
	"github.com/coreman2200/funtimes-diceroll/internal/model"
	"github.com/coreman2200/funtimes-diceroll/internal/sound"
)

const (
	MinPixels = 10

	// Bounds of the rainbow preamble, in milliseconds.
	MinAnimationMS = 500
	MaxAnimationMS = 6000
)

// Display is the strip surface the game draws on.
type Display interface {
	Len() int
	SetAll(c model.Color) error
	SetPixel(i int, c model.Color) error
	ShowAnimation(ctx context.Context, k animation.Kind, d time.Duration) error
}

// Game holds the two button handlers and the start-up sequence. It keeps no
// state between presses.
type Game struct {
	display Display
	audio   sound.Player
	rnd     Random
}

func New(d Display, a sound.Player, rnd Random) (*Game, error) {
	if d.Len() < MinPixels {
		return nil, fmt.Errorf("display has %d pixels, need at least %d", d.Len(), MinPixels)
	}
	return &Game{display: d, audio: a, rnd: rnd}, nil
}

// Start fills the strip with one random solid color.
func (g *Game) Start(ctx context.Context) error {
	return g.display.SetAll(RandomColor(g.rnd))
}

// PressA rolls one die across the whole strip and plays the power-up cue.
func (g *Game) PressA(ctx context.Context) error {
	if err := g.preamble(ctx); err != nil {
		return err
	}
	if err := Render(g.display, &TableA, RollDie(g.rnd)); err != nil {
		return err
	}
	return g.audio.Play(ctx, sound.PowerUp)
}

// PressB rolls two dice, one either side of the 4/5 boundary, and plays the
// pew-pew cue.
func (g *Game) PressB(ctx context.Context) error {
	if err := g.preamble(ctx); err != nil {
		return err
	}
	if err := Render(g.display, &TableB1, RollDie(g.rnd)); err != nil {
		return err
	}
	if err := Render(g.display, &TableB2, RollDie(g.rnd)); err != nil {
		return err
	}
	return g.audio.Play(ctx, sound.PewPew)
}

// preamble plays the rainbow for a random time and then clears the strip.
func (g *Game) preamble(ctx context.Context) error {
	ms := g.rnd.Int(MinAnimationMS, MaxAnimationMS)
	if err := g.display.ShowAnimation(ctx, animation.Rainbow, time.Duration(ms)*time.Millisecond); err != nil {
		return fmt.Errorf("rainbow: %w", err)
	}
	return g.display.SetAll(model.Off)
}

// Render lights the pattern for r, in table order.
func Render(d Display, t *Table, r Roll) error {
	p := t.Pattern(r)
	for _, i := range p.Pixels {
		if err := d.SetPixel(i, p.Color); err != nil {
			return fmt.Errorf("pixel %d: %w", i, err)
		}
	}
	return nil
}
