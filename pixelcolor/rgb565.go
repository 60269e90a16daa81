package pixelcolor

import "image/color"

// RGB565 is a direct 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
// Its value is the ILI9341 wire format.
type RGB565 uint16

const (
	rWidth = 5
	gWidth = 6
	bWidth = 5

	bShift = 0
	gShift = bShift + bWidth
	rShift = gShift + gWidth

	// MaxR is the largest red channel value.
	MaxR = 1<<rWidth - 1
	// MaxG is the largest green channel value.
	MaxG = 1<<gWidth - 1
	// MaxB is the largest blue channel value.
	MaxB = 1<<bWidth - 1
)

// Named colors.
const (
	Black   RGB565 = 0x0000
	White   RGB565 = 0xFFFF
	Red     RGB565 = MaxR << rShift
	Green   RGB565 = MaxG << gShift
	Blue    RGB565 = MaxB << bShift
	Yellow  RGB565 = Red | Green
	Magenta RGB565 = Red | Blue
	Cyan    RGB565 = Green | Blue

	// CSS colors, scaled from 8-bit channels with rounding.
	DarkSlateGray RGB565 = 6<<rShift | 20<<gShift | 10<<bShift
	LightGray     RGB565 = 26<<rShift | 52<<gShift | 26<<bShift
	Purple        RGB565 = 16<<rShift | 16<<bShift
	OrangeRed     RGB565 = 31<<rShift | 17<<gShift
	DarkRed       RGB565 = 17 << rShift
)

// NewRGB565 builds a color from channel values. r and b are 5 bits wide, g
// is 6 bits wide; higher bits are ignored.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&MaxR)<<rShift | uint16(g&MaxG)<<gShift | uint16(b&MaxB)<<bShift)
}

// R returns the 5-bit red channel.
func (c RGB565) R() uint8 { return uint8(c>>rShift) & MaxR }

// G returns the 6-bit green channel.
func (c RGB565) G() uint8 { return uint8(c>>gShift) & MaxG }

// B returns the 5-bit blue channel.
func (c RGB565) B() uint8 { return uint8(c>>bShift) & MaxB }

// Native returns the controller color word, which is c's bit pattern.
func (c RGB565) Native() uint16 {
	return uint16(c)
}

// Model returns RGB565Model.
func (c RGB565) Model() color.Model {
	return RGB565Model
}

// RGBA implements color.Color. Channels are widened by replicating their
// high bits into the low bits, so full scale maps to 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8 := uint32(c.R())<<(8-rWidth) | uint32(c.R())>>(2*rWidth-8)
	g8 := uint32(c.G())<<(8-gWidth) | uint32(c.G())>>(2*gWidth-8)
	b8 := uint32(c.B())<<(8-bWidth) | uint32(c.B())>>(2*bWidth-8)
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565 by dropping low channel bits.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return NewRGB565(uint8(r>>(16-rWidth)), uint8(g>>(16-gWidth)), uint8(b>>(16-bWidth)))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)
