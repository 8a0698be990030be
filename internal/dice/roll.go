package dice

import (
	"math/rand"
	"time"

	"github.com/coreman2200/funtimes-diceroll/internal/model"
)

const (
	MinRoll Roll = 1
	MaxRoll Roll = 4
)

// Roll is one simulated die outcome in [MinRoll, MaxRoll].
type Roll int

// Random draws uniform integers in [lo, hi], inclusive on both ends.
type Random interface {
	Int(lo, hi int) int
}

// MathRandom adapts math/rand to Random.
type MathRandom struct {
	r *rand.Rand
}

// NewRandom seeds a generator; seed 0 seeds from the clock.
func NewRandom(seed int64) *MathRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathRandom{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRandom) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Intn(hi-lo+1)
}

// RollDie draws a fresh roll.
func RollDie(rnd Random) Roll {
	return clampRoll(Roll(rnd.Int(int(MinRoll), int(MaxRoll))))
}

func clampRoll(r Roll) Roll {
	if r < MinRoll {
		return MinRoll
	}
	if r > MaxRoll {
		return MaxRoll
	}
	return r
}

// RandomColor draws each channel independently from [0,255], in R, G, B order.
func RandomColor(rnd Random) model.Color {
	r := uint8(rnd.Int(0, 255))
	g := uint8(rnd.Int(0, 255))
	b := uint8(rnd.Int(0, 255))
	return model.RGB(r, g, b)
}
