package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-diceroll/internal/animation"
	"github.com/coreman2200/funtimes-diceroll/internal/model"
)

func TestBoardWritesThroughToStrip(t *testing.T) {
	s, err := model.NewStrip(10, nil)
	require.NoError(t, err)
	b := New(s, 0)
	assert.Equal(t, animation.DFLT_FPS, b.FPS)
	assert.Equal(t, 10, b.Len())

	require.NoError(t, b.SetAll(model.Red))
	require.NoError(t, b.SetPixel(3, model.Cyan))
	assert.Equal(t, model.Cyan, s.Pixel(3))
	assert.Equal(t, model.Red, s.Pixel(2))
}

func TestBoardShowAnimation(t *testing.T) {
	s, err := model.NewStrip(10, nil)
	require.NoError(t, err)
	b := New(s, 500)

	require.NoError(t, b.ShowAnimation(context.Background(), animation.Rainbow, 10*time.Millisecond))
	assert.Len(t, s.Lit(), 10)

	assert.Error(t, b.ShowAnimation(context.Background(), "strobe", time.Millisecond))
}
