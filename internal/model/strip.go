package model

import (
	"errors"
	"image"

	"periph.io/x/conn/v3/display"
)

// Strip is the in-memory state of a linear LED strip. Writes only touch the
// buffer; Show pushes it out to the drawer.
type Strip struct {
	pixels     []Color
	drawer     display.Drawer
	Brightness float64
}

// NewStrip allocates a strip of n pixels, all off. A nil drawer makes Show a
// no-op, which is handy for tests and dry runs.
func NewStrip(n int, d display.Drawer) (*Strip, error) {
	if n <= 0 {
		return nil, errors.New("strip needs at least one pixel")
	}
	return &Strip{
		pixels:     make([]Color, n),
		drawer:     d,
		Brightness: 1.0,
	}, nil
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) SetAll(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// SetPixel writes one pixel. Indices outside the strip are ignored.
func (s *Strip) SetPixel(i int, c Color) {
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = c
}

func (s *Strip) Pixel(i int) Color {
	if i < 0 || i >= len(s.pixels) {
		return Off
	}
	return s.pixels[i]
}

// Pixels returns a copy of the current buffer.
func (s *Strip) Pixels() []Color {
	out := make([]Color, len(s.pixels))
	copy(out, s.pixels)
	return out
}

// Buffer exposes the live buffer for animations that fill whole frames.
func (s *Strip) Buffer() []Color {
	return s.pixels
}

// Lit lists the indices of every pixel that is not off, ascending.
func (s *Strip) Lit() []int {
	var out []int
	for i, c := range s.pixels {
		if c != Off {
			out = append(out, i)
		}
	}
	return out
}

func (s *Strip) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, len(s.pixels), 1))
	for x := 0; x < im.Rect.Max.X; x++ {
		im.SetNRGBA(x, 0, s.pixels[x].NRGBA(s.Brightness))
	}
	return im
}

func (s *Strip) Show() error {
	if s.drawer == nil {
		return nil
	}
	return s.drawer.Draw(s.drawer.Bounds(), s.Image(), image.Point{})
}

// Clear turns every pixel off, shows it, and halts the drawer.
func (s *Strip) Clear() error {
	s.SetAll(Off)
	if err := s.Show(); err != nil {
		return err
	}
	if s.drawer == nil {
		return nil
	}
	return s.drawer.Halt()
}
