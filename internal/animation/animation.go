package animation

/*
Canned whole-strip animations. An Animation only fills frames; Play owns the
timing and pushes each frame out through the Canvas.
*/

import (
	"context"
	"fmt"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/coreman2200/funtimes-diceroll/internal/model"
)

const DFLT_FPS = 30

// Kind names a canned animation.
type Kind string

const (
	Rainbow Kind = "rainbow"
)

// Animation fills dst with the frame at the given elapsed time.
type Animation interface {
	Frame(dst []model.Color, elapsed time.Duration)
}

// Canvas is what Play draws on; *model.Strip satisfies it.
type Canvas interface {
	Buffer() []model.Color
	Show() error
}

// Lookup resolves a Kind to its animation.
func Lookup(k Kind) (Animation, error) {
	switch k {
	case Rainbow:
		return RainbowCycle{Period: time.Second}, nil
	default:
		return nil, fmt.Errorf("unknown animation: %q", k)
	}
}

// RainbowCycle spreads one full hue turn along the strip and rotates it once
// per Period.
type RainbowCycle struct {
	Period time.Duration
}

func (r RainbowCycle) Frame(dst []model.Color, elapsed time.Duration) {
	n := len(dst)
	if n == 0 {
		return
	}
	phase := 0.0
	if r.Period > 0 {
		phase = math.Mod(elapsed.Seconds()/r.Period.Seconds(), 1.0)
	}
	for i := range dst {
		h := math.Mod(float64(i)/float64(n)+phase, 1.0)
		cr, cg, cb := colorful.Hsv(h*360, 1, 1).Clamped().RGB255()
		dst[i] = model.RGB(cr, cg, cb)
	}
}

// Frames is the number of frames Play renders for duration d at fps.
func Frames(d time.Duration, fps int) int {
	if fps <= 0 {
		fps = DFLT_FPS
	}
	if d <= 0 {
		return 1
	}
	n := int64(d) * int64(fps)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}

// Play runs a for d, rendering at a fixed frame rate. It blocks until the
// animation is over, the canvas fails, or ctx is done.
func Play(ctx context.Context, c Canvas, a Animation, d time.Duration, fps int) error {
	if fps <= 0 {
		fps = DFLT_FPS
	}
	frames := Frames(d, fps)
	delta := time.Second / time.Duration(fps)
	ticker := time.NewTicker(delta)
	defer ticker.Stop()

	for f := 0; f < frames; f++ {
		a.Frame(c.Buffer(), time.Duration(f)*delta)
		if err := c.Show(); err != nil {
			return fmt.Errorf("animation frame %d: %w", f, err)
		}
		if f == frames-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
