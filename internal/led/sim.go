package led

import (
	"encoding/hex"
	"image"
	"image/color"
	"sync"

	"github.com/rs/zerolog/log"
)

// SimDrawer stands in for a strip when no hardware is attached. It keeps the
// last frame as packed RGB and logs each frame at debug level.
type SimDrawer struct {
	mu     sync.Mutex
	n      int
	rgb    []byte
	frames int
}

func NewSimDrawer(n int) *SimDrawer {
	return &SimDrawer{n: n, rgb: make([]byte, n*3)}
}

func (s *SimDrawer) String() string          { return "sim" }
func (s *SimDrawer) ColorModel() color.Model { return color.NRGBAModel }
func (s *SimDrawer) Bounds() image.Rectangle { return image.Rect(0, 0, s.n, 1) }

func (s *SimDrawer) Halt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rgb {
		s.rgb[i] = 0
	}
	return nil
}

func (s *SimDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r = r.Intersect(s.Bounds())
	for x := r.Min.X; x < r.Max.X; x++ {
		c := color.NRGBAModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y)).(color.NRGBA)
		s.rgb[x*3+0] = c.R
		s.rgb[x*3+1] = c.G
		s.rgb[x*3+2] = c.B
	}
	s.frames++
	log.Debug().Int("frame", s.frames).Str("rgb", hex.EncodeToString(s.rgb)).Msg("sim")
	return nil
}

// Frame returns a copy of the last frame, three bytes per pixel.
func (s *SimDrawer) Frame() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.rgb))
	copy(out, s.rgb)
	return out
}

func (s *SimDrawer) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
