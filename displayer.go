package ili9341

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ili9341/pixelcolor"
	"tinygo.org/x/drivers"
)

// Displayer adapts a DrawTarget to the tinygo.org/x/drivers.Displayer
// interface.
//
// Pixels are written immediately; Display only reports the first error
// SetPixel ran into since the previous call.
type Displayer[C Color] struct {
	t   *DrawTarget[C]
	err error
}

var _ drivers.Displayer = (*Displayer[pixelcolor.RGB565])(nil)

// NewDisplayer returns a Displayer painting through t.
func NewDisplayer[C Color](t *DrawTarget[C]) *Displayer[C] {
	return &Displayer[C]{t: t}
}

// Size returns the panel size.
func (d *Displayer[C]) Size() (x, y int16) {
	s := d.t.Size()
	return int16(s.X), int16(s.Y)
}

// SetPixel converts c with the target's color model and writes it at
// (x, y). Pixels outside the panel are dropped. Once a write fails, further
// pixels are ignored until Display is called.
func (d *Displayer[C]) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil {
		return
	}
	p := Pixel[C]{
		Point: image.Pt(int(x), int(y)),
		Color: d.t.ColorModel().Convert(c).(C),
	}
	d.err = d.t.DrawPixels(func(yield func(Pixel[C]) bool) {
		yield(p)
	})
}

// Display returns and clears the pending write error.
func (d *Displayer[C]) Display() error {
	err := d.err
	d.err = nil
	return err
}
