package dice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-diceroll/internal/animation"
	"github.com/coreman2200/funtimes-diceroll/internal/model"
	"github.com/coreman2200/funtimes-diceroll/internal/sound"
)

// scripted returns queued values in order and records the ranges asked for.
type scripted struct {
	vals   []int
	ranges [][2]int
}

func (s *scripted) Int(lo, hi int) int {
	s.ranges = append(s.ranges, [2]int{lo, hi})
	if len(s.vals) == 0 {
		panic(fmt.Sprintf("scripted random exhausted at [%d,%d]", lo, hi))
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

// fakeDisplay applies writes to an in-memory strip and logs every call.
type fakeDisplay struct {
	strip *model.Strip
	ops   []string
	anims []time.Duration
	fail  error
}

func newFakeDisplay(t *testing.T, n int) *fakeDisplay {
	s, err := model.NewStrip(n, nil)
	require.NoError(t, err)
	return &fakeDisplay{strip: s}
}

func (f *fakeDisplay) Len() int { return f.strip.Len() }

func (f *fakeDisplay) SetAll(c model.Color) error {
	f.ops = append(f.ops, "all "+c.String())
	f.strip.SetAll(c)
	return nil
}

func (f *fakeDisplay) SetPixel(i int, c model.Color) error {
	if f.fail != nil {
		return f.fail
	}
	f.ops = append(f.ops, fmt.Sprintf("px %d %s", i, c))
	f.strip.SetPixel(i, c)
	return nil
}

func (f *fakeDisplay) ShowAnimation(_ context.Context, k animation.Kind, d time.Duration) error {
	f.ops = append(f.ops, "anim "+string(k))
	f.anims = append(f.anims, d)
	// leave the strip dirty so a missing clear would show up
	f.strip.SetAll(model.White)
	return nil
}

type fakeAudio struct {
	played []sound.Cue
}

func (a *fakeAudio) Play(_ context.Context, c sound.Cue) error {
	a.played = append(a.played, c)
	return nil
}

func newGame(t *testing.T, rnd Random) (*Game, *fakeDisplay, *fakeAudio) {
	d := newFakeDisplay(t, 10)
	a := &fakeAudio{}
	g, err := New(d, a, rnd)
	require.NoError(t, err)
	return g, d, a
}

func colorsOf(s *model.Strip) map[int]model.Color {
	out := map[int]model.Color{}
	for _, i := range s.Lit() {
		out[i] = s.Pixel(i)
	}
	return out
}

func patternColors(ps ...Pattern) map[int]model.Color {
	out := map[int]model.Color{}
	for _, p := range ps {
		for _, i := range p.Pixels {
			out[i] = p.Color
		}
	}
	return out
}

func TestPressARollThree(t *testing.T) {
	rnd := &scripted{vals: []int{1234, 3}}
	g, d, a := newGame(t, rnd)

	require.NoError(t, g.PressA(context.Background()))

	assert.Equal(t, map[int]model.Color{3: model.Yellow, 4: model.Yellow, 5: model.Yellow}, colorsOf(d.strip))
	assert.Equal(t, []sound.Cue{sound.PowerUp}, a.played)
	assert.Equal(t, []time.Duration{1234 * time.Millisecond}, d.anims)
	assert.Equal(t, [][2]int{{500, 6000}, {1, 4}}, rnd.ranges)
	assert.Equal(t, []string{
		"anim rainbow",
		"all #000000",
		"px 3 #ffff00", "px 4 #ffff00", "px 5 #ffff00",
	}, d.ops)
}

func TestPressBRollsOneAndFour(t *testing.T) {
	rnd := &scripted{vals: []int{500, 1, 4}}
	g, d, a := newGame(t, rnd)

	require.NoError(t, g.PressB(context.Background()))

	assert.Equal(t, map[int]model.Color{
		4: model.Red,
		5: model.Cyan, 6: model.Cyan, 7: model.Cyan, 8: model.Cyan,
	}, colorsOf(d.strip))
	assert.Equal(t, []sound.Cue{sound.PewPew}, a.played)
	assert.Equal(t, [][2]int{{500, 6000}, {1, 4}, {1, 4}}, rnd.ranges)
}

func TestPressBSecondRollDrawnLast(t *testing.T) {
	rnd := &scripted{vals: []int{6000, 4, 4}}
	g, d, _ := newGame(t, rnd)

	require.NoError(t, g.PressB(context.Background()))
	assert.Equal(t, []string{
		"anim rainbow",
		"all #000000",
		"px 4 #00ffff", "px 3 #00ffff", "px 2 #00ffff", "px 1 #00ffff",
		"px 5 #00ffff", "px 6 #00ffff", "px 7 #00ffff", "px 8 #00ffff",
	}, d.ops)
}

func TestPressAEveryRoll(t *testing.T) {
	for r := MinRoll; r <= MaxRoll; r++ {
		t.Run(fmt.Sprintf("roll %d", r), func(t *testing.T) {
			g, d, a := newGame(t, &scripted{vals: []int{500, int(r)}})
			require.NoError(t, g.PressA(context.Background()))
			assert.Equal(t, patternColors(TableA.Pattern(r)), colorsOf(d.strip))
			assert.Len(t, d.strip.Lit(), int(r))
			assert.Len(t, a.played, 1)
		})
	}
}

func TestPressBEveryPair(t *testing.T) {
	for r1 := MinRoll; r1 <= MaxRoll; r1++ {
		for r2 := MinRoll; r2 <= MaxRoll; r2++ {
			g, d, _ := newGame(t, &scripted{vals: []int{500, int(r1), int(r2)}})
			require.NoError(t, g.PressB(context.Background()))
			assert.Equal(t, patternColors(TableB1.Pattern(r1), TableB2.Pattern(r2)), colorsOf(d.strip), "rolls %d,%d", r1, r2)
		}
	}
}

func TestBoundaryRolls(t *testing.T) {
	for _, tbl := range []*Table{&TableA, &TableB1, &TableB2} {
		assert.Len(t, tbl.Pattern(MinRoll).Pixels, 1)
		assert.Len(t, tbl.Pattern(MaxRoll).Pixels, 4)
	}
	assert.Contains(t, TableB1.Pattern(MinRoll).Pixels, 4)
	assert.Contains(t, TableB2.Pattern(MinRoll).Pixels, 5)
}

func TestOutOfRangeRollIsClamped(t *testing.T) {
	assert.Equal(t, MaxRoll, RollDie(&scripted{vals: []int{9}}))
	assert.Equal(t, MinRoll, RollDie(&scripted{vals: []int{-2}}))
	assert.Equal(t, TableA[0], TableA.Pattern(0))
}

func TestConsecutivePressesClearFirst(t *testing.T) {
	rnd := &scripted{vals: []int{500, 4, 500, 1, 500, 2, 1}}
	g, d, a := newGame(t, rnd)

	require.NoError(t, g.PressA(context.Background()))
	assert.Equal(t, patternColors(TableA.Pattern(4)), colorsOf(d.strip))

	require.NoError(t, g.PressA(context.Background()))
	assert.Equal(t, patternColors(TableA.Pattern(1)), colorsOf(d.strip))

	require.NoError(t, g.PressB(context.Background()))
	assert.Equal(t, patternColors(TableB1.Pattern(2), TableB2.Pattern(1)), colorsOf(d.strip))

	assert.Equal(t, []sound.Cue{sound.PowerUp, sound.PowerUp, sound.PewPew}, a.played)
}

func TestButtonARandomTrials(t *testing.T) {
	g, d, _ := newGame(t, NewRandom(7))

	for i := 0; i < 1000; i++ {
		d.anims = d.anims[:0]
		require.NoError(t, g.PressA(context.Background()))

		lit := d.strip.Lit()
		require.NotEmpty(t, lit)
		r := Roll(len(lit))
		require.True(t, r >= MinRoll && r <= MaxRoll, "roll %d", r)
		require.Equal(t, patternColors(TableA.Pattern(r)), colorsOf(d.strip))

		ms := d.anims[0] / time.Millisecond
		require.True(t, ms >= MinAnimationMS && ms <= MaxAnimationMS, "animation %v", d.anims[0])
	}
}

func TestButtonBRollsAreUniform(t *testing.T) {
	const trials = 4000
	g, d, _ := newGame(t, NewRandom(99))

	var first, second [MaxRoll]int
	for i := 0; i < trials; i++ {
		require.NoError(t, g.PressB(context.Background()))
		// each group's length is its roll: B1 spans 1..4, B2 spans 5..8
		r1, r2 := 0, 0
		for _, p := range d.strip.Lit() {
			if p <= 4 {
				r1++
			} else {
				r2++
			}
		}
		require.True(t, r1 >= 1 && r1 <= 4, "first roll %d", r1)
		require.True(t, r2 >= 1 && r2 <= 4, "second roll %d", r2)
		first[r1-1]++
		second[r2-1]++
	}

	expect := trials / int(MaxRoll)
	for i := range first {
		assert.InDelta(t, expect, first[i], float64(expect)/5, "first roll %d", i+1)
		assert.InDelta(t, expect, second[i], float64(expect)/5, "second roll %d", i+1)
	}
}

func TestStartFillsOneRandomColor(t *testing.T) {
	rnd := &scripted{vals: []int{0x12, 0x34, 0x56}}
	g, d, a := newGame(t, rnd)

	require.NoError(t, g.Start(context.Background()))
	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, model.Color(0x123456), d.strip.Pixel(i))
	}
	assert.Equal(t, [][2]int{{0, 255}, {0, 255}, {0, 255}}, rnd.ranges)
	assert.Empty(t, a.played)
}

func TestNewRejectsShortStrip(t *testing.T) {
	_, err := New(newFakeDisplay(t, 9), &fakeAudio{}, NewRandom(1))
	assert.Error(t, err)
}

func TestDriverFailureAborts(t *testing.T) {
	boom := errors.New("spi gone")
	g, d, a := newGame(t, &scripted{vals: []int{500, 2}})
	d.fail = boom

	err := g.PressA(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, a.played)
}

func TestMathRandomBounds(t *testing.T) {
	r := NewRandom(3)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Int(1, 4)
		require.True(t, v >= 1 && v <= 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 5, r.Int(5, 5))
}
