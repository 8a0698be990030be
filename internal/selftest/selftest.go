package selftest

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-diceroll/internal/model"
)

type Kind string

const (
	None        Kind = ""
	IndexSweep  Kind = "index_sweep"
	RGBChannels Kind = "rgb_channels"
)

type Plan struct{ Kind Kind }

type Runner struct {
	plan Plan
	step int
}

func NewRunner(plan Plan) *Runner { return &Runner{plan: plan} }
func (r *Runner) Kind() Kind      { return r.plan.Kind }

// Step draws the next frame into s; returns false when complete.
func (r *Runner) Step(s *model.Strip) bool {
	n := s.Len()
	s.SetAll(model.Off)

	switch r.plan.Kind {
	case IndexSweep:
		if r.step >= n {
			return false
		}
		s.SetPixel(r.step, model.White)
	case RGBChannels:
		if r.step >= 3 {
			return false
		}
		s.SetAll([]model.Color{model.Red, model.Green, model.Blue}[r.step])
	default:
		return false
	}
	r.step++
	return true
}

// Run steps through every plan in order, showing each frame for hold.
func Run(ctx context.Context, s *model.Strip, hold time.Duration, plans ...Plan) error {
	for _, p := range plans {
		r := NewRunner(p)
		for r.Step(s) {
			if err := s.Show(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(hold):
			}
		}
	}
	s.SetAll(model.Off)
	return s.Show()
}
