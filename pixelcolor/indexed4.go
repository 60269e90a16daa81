package pixelcolor

import (
	"image"
	"image/color"
)

// Indexed4 is an image of Gray4 palette indices packed two per byte.
// The high nibble holds the left (even column) pixel, the low nibble the
// right one. Rows start on a byte boundary.
type Indexed4 struct {
	Pix    []byte          // Pixel data (2 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewIndexed4 returns a new Indexed4 image with the given bounds, filled
// with index 0.
func NewIndexed4(r image.Rectangle) *Indexed4 {
	if r.Empty() {
		return &Indexed4{Rect: r}
	}
	stride := (r.Dx() + 1) / 2
	return &Indexed4{
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns Gray4Model.
func (p *Indexed4) ColorModel() color.Model {
	return Gray4Model
}

// Bounds returns the image bounds.
func (p *Indexed4) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Indexed4) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the palette index at (x, y), or index 0 outside the
// bounds.
func (p *Indexed4) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	offset, shift := p.pixOffset(x, y)
	return Gray4{Y: (p.Pix[offset] >> shift) & 0x0F}
}

// Set implements draw.Image, converting c to the closest palette entry.
func (p *Indexed4) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the palette index at (x, y). Points outside the bounds are
// ignored. It panics if c is not a valid index.
func (p *Indexed4) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	if c.Y >= PaletteSize {
		panic("pixelcolor: palette index out of range")
	}
	offset, shift := p.pixOffset(x, y)
	p.Pix[offset] = (p.Pix[offset] &^ (0x0F << shift)) | (c.Y << shift)
}

// pixOffset returns the byte offset and bit shift of (x, y). Columns are
// counted from Rect.Min.X, so even columns land in the high nibble.
func (p *Indexed4) pixOffset(x, y int) (offset int, shift uint) {
	col := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + col/2
	shift = uint(4 * (1 - (col & 1)))
	return
}
