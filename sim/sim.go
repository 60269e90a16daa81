// Package sim emulates an ILI9341 panel in memory.
//
// A Panel implements ili9341.Controller: it keeps a framebuffer of native
// color words, the address window and the write cursor, and advances the
// cursor through the window the way the controller does. It is used by tests
// and by the desktop simulator.
package sim

import (
	"errors"
	"image"
	"image/color"
	"iter"
	"sync"

	"periph.io/x/devices/v3/ili9341/pixelcolor"
)

// Stats counts the transactions a Panel received.
type Stats struct {
	Windows int // SetWindow calls
	Words   int // color words written by WriteColors
	Clears  int // ClearScreen calls
}

// Panel is an in-memory ILI9341 framebuffer.
//
// It is safe to read the framebuffer (At, Word, Snapshot) from another
// goroutine while a single writer draws to it.
type Panel struct {
	mu    sync.Mutex
	rect  image.Rectangle
	pix   []uint16
	win   image.Rectangle
	cur   image.Point
	fail  error
	stats Stats
}

// New returns a black w×h panel with the address window covering all of
// it, as after a controller reset.
func New(w, h int) *Panel {
	r := image.Rect(0, 0, w, h)
	return &Panel{
		rect: r,
		pix:  make([]uint16, w*h),
		win:  r,
		cur:  r.Min,
	}
}

// Width returns the panel width in pixels.
func (p *Panel) Width() uint16 {
	return uint16(p.rect.Dx())
}

// Height returns the panel height in pixels.
func (p *Panel) Height() uint16 {
	return uint16(p.rect.Dy())
}

// SetWindow sets the inclusive address window and moves the write cursor to
// its top-left corner.
func (p *Panel) SetWindow(x0, y0, x1, y1 uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	win := image.Rect(int(x0), int(y0), int(x1)+1, int(y1)+1)
	if x0 > x1 || y0 > y1 || !win.In(p.rect) {
		return errors.New("sim: window out of range")
	}
	p.win = win
	p.cur = win.Min
	p.stats.Windows++
	return nil
}

// WriteColors writes colors at the cursor. The cursor moves right, wraps
// to the next row of the window and from the last row back to the first.
func (p *Panel) WriteColors(colors iter.Seq[uint16]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	for c := range colors {
		p.pix[p.offset(p.cur.X, p.cur.Y)] = c
		p.stats.Words++
		p.cur.X++
		if p.cur.X == p.win.Max.X {
			p.cur.X = p.win.Min.X
			p.cur.Y++
			if p.cur.Y == p.win.Max.Y {
				p.cur.Y = p.win.Min.Y
			}
		}
	}
	return nil
}

// ClearScreen fills the panel with c. Like the driver, it leaves the window
// covering the full panel.
func (p *Panel) ClearScreen(c uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	for i := range p.pix {
		p.pix[i] = c
	}
	p.win = p.rect
	p.cur = p.rect.Min
	p.stats.Clears++
	return nil
}

// Fail makes every following operation return err. Fail(nil) restores
// normal operation.
func (p *Panel) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = err
}

// Stats returns the transaction counters.
func (p *Panel) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Window returns the current address window.
func (p *Panel) Window() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.win
}

// Word returns the native color word at (x, y), or 0 outside the panel.
func (p *Panel) Word(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}.In(p.rect)) {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pix[p.offset(x, y)]
}

// ColorModel returns pixelcolor.RGB565Model.
func (p *Panel) ColorModel() color.Model {
	return pixelcolor.RGB565Model
}

// Bounds returns the panel rectangle.
func (p *Panel) Bounds() image.Rectangle {
	return p.rect
}

// At implements image.Image.
func (p *Panel) At(x, y int) color.Color {
	return pixelcolor.RGB565(p.Word(x, y))
}

// Snapshot copies the framebuffer into dst, which must have the panel's
// bounds.
func (p *Panel) Snapshot(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, w := range p.pix {
		r, g, b, _ := pixelcolor.RGB565(w).RGBA()
		j := i * 4
		dst.Pix[j+0] = uint8(r >> 8)
		dst.Pix[j+1] = uint8(g >> 8)
		dst.Pix[j+2] = uint8(b >> 8)
		dst.Pix[j+3] = 0xFF
	}
}

func (p *Panel) offset(x, y int) int {
	return y*p.rect.Dx() + x
}
