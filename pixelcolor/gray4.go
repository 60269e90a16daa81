package pixelcolor

import "image/color"

// PaletteSize is the number of entries in the indexed palette.
const PaletteSize = 16

const (
	halfYellow RGB565 = (MaxR/2)<<rShift | (MaxG/2)<<gShift
	halfGreen  RGB565 = (MaxG / 2) << gShift
)

// palette is the fixed lookup table behind Gray4. It is never written.
var palette = [PaletteSize]RGB565{
	Black,         // 0
	DarkSlateGray, // 1
	Yellow,        // 2
	Green,         // 3
	Red,           // 4
	Magenta,       // 5
	Cyan,          // 6
	LightGray,     // 7
	Purple,        // 8
	OrangeRed,     // 9
	DarkRed,       // 10
	halfYellow,    // 11
	halfGreen,     // 12
	White,         // 13
	White,         // 14
	White,         // 15
}

// paletteModel holds the same entries as palette for nearest-color lookups.
var paletteModel = func() color.Palette {
	p := make(color.Palette, PaletteSize)
	for i, c := range palette {
		p[i] = c
	}
	return p
}()

// Palette returns a copy of the indexed palette.
func Palette() [PaletteSize]RGB565 {
	return palette
}

// Gray4 is a 4-bit palette index. Only values 0 to 15 are valid; the name
// follows the 4-bit grayscale storage format it shares with grayscale
// panels.
type Gray4 struct {
	Y uint8
}

// entry returns the palette color for c. It panics if c.Y is not a valid
// index.
func (c Gray4) entry() RGB565 {
	if c.Y >= PaletteSize {
		panic("pixelcolor: palette index out of range")
	}
	return palette[c.Y]
}

// Native returns the controller color word of palette entry c.Y.
func (c Gray4) Native() uint16 {
	return c.entry().Native()
}

// Model returns Gray4Model.
func (c Gray4) Model() color.Model {
	return Gray4Model
}

// RGBA implements color.Color and reports the palette color.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	return c.entry().RGBA()
}

// toGray4 converts any color.Color to the index of the closest palette
// entry. Ties resolve to the lowest index.
func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	return Gray4{Y: uint8(paletteModel.Index(c))}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)
