package board

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-diceroll/internal/animation"
	"github.com/coreman2200/funtimes-diceroll/internal/model"
)

// Board is the strip-backed display the dice game draws on. Every write is
// shown immediately, the way the board runtime's light API behaves.
type Board struct {
	Strip *model.Strip
	FPS   int
}

func New(s *model.Strip, fps int) *Board {
	if fps <= 0 {
		fps = animation.DFLT_FPS
	}
	return &Board{Strip: s, FPS: fps}
}

func (b *Board) Len() int { return b.Strip.Len() }

func (b *Board) SetAll(c model.Color) error {
	b.Strip.SetAll(c)
	return b.Strip.Show()
}

func (b *Board) SetPixel(i int, c model.Color) error {
	b.Strip.SetPixel(i, c)
	return b.Strip.Show()
}

func (b *Board) ShowAnimation(ctx context.Context, k animation.Kind, d time.Duration) error {
	a, err := animation.Lookup(k)
	if err != nil {
		return err
	}
	return animation.Play(ctx, b.Strip, a, d, b.FPS)
}
