package ili9341

import (
	"fmt"
	"image"
	"image/color"
	"iter"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ili9341/pixelcolor"
)

// Controller is the hardware interface a DrawTarget writes through.
//
// Coordinates are inclusive panel coordinates. Every error is returned to the
// caller of the draw operation unchanged.
type Controller interface {
	// Width and Height return the panel size in pixels.
	Width() uint16
	Height() uint16
	// SetWindow sets the rectangle subsequent pixel data is written into and
	// resets the controller's write cursor to (x0, y0).
	SetWindow(x0, y0, x1, y1 uint16) error
	// WriteColors streams native color words into the current window.
	WriteColors(colors iter.Seq[uint16]) error
	// ClearScreen fills every panel pixel with c.
	ClearScreen(c uint16) error
}

// Color is a logical color a DrawTarget accepts. The implementations are
// pixelcolor.RGB565 and pixelcolor.Gray4.
type Color interface {
	color.Color
	comparable
	// Native returns the controller's 16-bit 5-6-5 color word.
	Native() uint16
	// Model returns the model converting arbitrary colors to this type.
	Model() color.Model
}

// Pixel is a color at a panel coordinate.
type Pixel[C Color] struct {
	Point image.Point
	Color C
}

// DrawTarget paints logical colors of type C onto a controller.
//
// The color type is fixed when the DrawTarget is instantiated, so a target
// never mixes direct and indexed colors. A DrawTarget is not safe for
// concurrent use.
type DrawTarget[C Color] struct {
	ctrl Controller
}

var _ display.Drawer = (*DrawTarget[pixelcolor.RGB565])(nil)

// NewDrawTarget returns a DrawTarget writing through ctrl.
func NewDrawTarget[C Color](ctrl Controller) *DrawTarget[C] {
	return &DrawTarget[C]{ctrl: ctrl}
}

// Bounds returns the panel rectangle. Pixels outside of it are clipped.
func (d *DrawTarget[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(d.ctrl.Width()), int(d.ctrl.Height()))
}

// Size returns the panel size in pixels.
func (d *DrawTarget[C]) Size() image.Point {
	return d.Bounds().Size()
}

// ColorModel returns the model of C.
func (d *DrawTarget[C]) ColorModel() color.Model {
	var c C
	return c.Model()
}

// DrawPixels writes each pixel in stream order, one single-pixel window at a
// time. Pixels outside the panel are dropped. It stops at the first
// controller error.
func (d *DrawTarget[C]) DrawPixels(pixels iter.Seq[Pixel[C]]) error {
	bounds := d.Bounds()
	for p := range pixels {
		if !p.Point.In(bounds) {
			continue
		}
		r := image.Rectangle{Min: p.Point, Max: p.Point.Add(image.Pt(1, 1))}
		if err := d.drawRaw(r, single(p.Color.Native())); err != nil {
			return err
		}
	}
	return nil
}

// FillArea fills area with colors, given in row-major order of area's
// points. The part of area outside the panel is clipped: the window covers
// only the visible part and the colors of hidden points are skipped. If no
// part of area is visible, colors is not read and nothing is written.
func (d *DrawTarget[C]) FillArea(area image.Rectangle, colors iter.Seq[C]) error {
	drawable := area.Intersect(d.Bounds())
	if drawable.Empty() {
		return nil
	}
	var keep func(image.Point) bool
	if drawable != area {
		keep = func(p image.Point) bool { return p.In(drawable) }
	}
	return d.drawRaw(drawable, nativeColors(area, colors, keep))
}

// FillSolid fills area with a single color.
func (d *DrawTarget[C]) FillSolid(area image.Rectangle, c C) error {
	return d.FillArea(area, func(yield func(C) bool) {
		for yield(c) {
		}
	})
}

// Clear fills the whole panel with c.
func (d *DrawTarget[C]) Clear(c C) error {
	return d.ctrl.ClearScreen(c.Native())
}

// Draw implements display.Drawer. It copies src, starting at sp, into the
// dst rectangle of the panel. Source colors of type C are written as is,
// others are converted with C's model.
func (d *DrawTarget[C]) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	clipped := dst.Intersect(d.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	model := d.ColorModel()
	return d.FillArea(clipped, func(yield func(C) bool) {
		for y := 0; y < clipped.Dy(); y++ {
			for x := 0; x < clipped.Dx(); x++ {
				v := src.At(sp.X+x, sp.Y+y)
				c, ok := v.(C)
				if !ok {
					c = model.Convert(v).(C)
				}
				if !yield(c) {
					return
				}
			}
		}
	})
}

// Halt halts the controller if it is a conn.Resource.
func (d *DrawTarget[C]) Halt() error {
	if r, ok := d.ctrl.(conn.Resource); ok {
		return r.Halt()
	}
	return nil
}

// String returns a string representation of the draw target.
func (d *DrawTarget[C]) String() string {
	return fmt.Sprintf("ili9341.DrawTarget{%dx%d}", d.ctrl.Width(), d.ctrl.Height())
}

// drawRaw sets the window to r and streams colors into it.
func (d *DrawTarget[C]) drawRaw(r image.Rectangle, colors iter.Seq[uint16]) error {
	x0, y0 := uint16(r.Min.X), uint16(r.Min.Y)
	x1, y1 := uint16(r.Max.X-1), uint16(r.Max.Y-1)
	if err := d.ctrl.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.ctrl.WriteColors(colors)
}

// nativeColors pairs colors with the row-major points of area by position
// and yields the native word of every pair keep accepts; a nil keep accepts
// all pairs. Pairing happens before filtering, so a rejected point still
// consumes its color. It stops once either side runs out.
func nativeColors[C Color](area image.Rectangle, colors iter.Seq[C], keep func(image.Point) bool) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		w, n := area.Dx(), area.Dx()*area.Dy()
		if n <= 0 {
			return
		}
		i := 0
		for c := range colors {
			p := image.Pt(area.Min.X+i%w, area.Min.Y+i/w)
			i++
			if keep == nil || keep(p) {
				if !yield(c.Native()) {
					return
				}
			}
			if i == n {
				return
			}
		}
	}
}

// single yields one color word.
func single(c uint16) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		yield(c)
	}
}
