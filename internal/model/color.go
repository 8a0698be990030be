package model

import (
	"fmt"
	"image/color"
)

const (
	RED_OFFSET   uint8 = 0x10
	GREEN_OFFSET uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// Color is a packed 24-bit RGB value, 0xRRGGBB.
type Color uint32

const (
	Off    Color = 0x000000
	Red    Color = 0xff0000
	Green  Color = 0x00ff00
	Blue   Color = 0x0000ff
	Yellow Color = 0xffff00
	Cyan   Color = 0x00ffff
	White  Color = 0xffffff
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	var c Color
	c.SetR(r)
	c.SetG(g)
	c.SetB(b)
	return c
}

func setcolor(c uint32, n uint8, off uint8) uint32 {
	var val uint32 = uint32(n) << off
	var mask uint32 = 0xFF << off
	return (c & (^mask)) | val
}

func getcolor(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & mask) >> off)
}

func (c *Color) SetR(r uint8) { *c = Color(setcolor(uint32(*c), r, RED_OFFSET)) }
func (c *Color) SetG(g uint8) { *c = Color(setcolor(uint32(*c), g, GREEN_OFFSET)) }
func (c *Color) SetB(b uint8) { *c = Color(setcolor(uint32(*c), b, BLUE_OFFSET)) }

func (c Color) R() uint8 { return getcolor(uint32(c), RED_OFFSET) }
func (c Color) G() uint8 { return getcolor(uint32(c), GREEN_OFFSET) }
func (c Color) B() uint8 { return getcolor(uint32(c), BLUE_OFFSET) }

// NRGBA converts to an opaque image color, scaling every channel by
// brightness. Brightness is clamped to [0,1].
func (c Color) NRGBA(brightness float64) color.NRGBA {
	if brightness > 1 {
		brightness = 1
	}
	if brightness < 0 {
		brightness = 0
	}
	return color.NRGBA{
		R: uint8(float64(c.R()) * brightness),
		G: uint8(float64(c.G()) * brightness),
		B: uint8(float64(c.B()) * brightness),
		A: 255,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}
