package sim_test

import (
	"errors"
	"image"
	"slices"
	"testing"

	"periph.io/x/devices/v3/ili9341"
	"periph.io/x/devices/v3/ili9341/pixelcolor"
	"periph.io/x/devices/v3/ili9341/sim"
)

var _ ili9341.Controller = (*sim.Panel)(nil)

func TestNew(t *testing.T) {
	p := sim.New(240, 320)
	if p.Width() != 240 || p.Height() != 320 {
		t.Errorf("size = %dx%d, want 240x320", p.Width(), p.Height())
	}
	if got, want := p.Window(), image.Rect(0, 0, 240, 320); got != want {
		t.Errorf("Window() = %v, want %v", got, want)
	}
	if got := p.Word(100, 100); got != 0 {
		t.Errorf("Word(100, 100) = 0x%04X, want 0", got)
	}
}

func TestCursorWrapsInWindow(t *testing.T) {
	p := sim.New(8, 8)
	if err := p.SetWindow(2, 3, 3, 4); err != nil {
		t.Fatal(err)
	}
	// 2x2 window, six words: the last two wrap back to the top-left.
	if err := p.WriteColors(slices.Values([]uint16{1, 2, 3, 4, 5, 6})); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want uint16
	}{
		{2, 3, 5},
		{3, 3, 6},
		{2, 4, 3},
		{3, 4, 4},
		{1, 3, 0},
		{4, 3, 0},
	}
	for _, tt := range tests {
		if got := p.Word(tt.x, tt.y); got != tt.want {
			t.Errorf("Word(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWriteContinuesAcrossCalls(t *testing.T) {
	p := sim.New(4, 4)
	if err := p.SetWindow(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	for _, c := range []uint16{7, 8, 9} {
		if err := p.WriteColors(slices.Values([]uint16{c})); err != nil {
			t.Fatal(err)
		}
	}
	if p.Word(0, 0) != 7 || p.Word(1, 0) != 8 || p.Word(0, 1) != 9 {
		t.Errorf("cursor did not advance between writes")
	}
}

func TestSetWindowOutOfRange(t *testing.T) {
	p := sim.New(10, 10)
	for _, w := range [][4]uint16{{0, 0, 10, 0}, {0, 0, 0, 10}, {3, 0, 2, 0}, {0, 3, 0, 2}} {
		if err := p.SetWindow(w[0], w[1], w[2], w[3]); err == nil {
			t.Errorf("SetWindow(%v) should fail", w)
		}
	}
	if s := p.Stats(); s.Windows != 0 {
		t.Errorf("Stats().Windows = %d, want 0", s.Windows)
	}
}

func TestClearScreen(t *testing.T) {
	p := sim.New(5, 3)
	if err := p.SetWindow(1, 1, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := p.ClearScreen(0xABCD); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := p.Word(x, y); got != 0xABCD {
				t.Errorf("Word(%d, %d) = 0x%04X, want 0xABCD", x, y, got)
			}
		}
	}
	if got := p.Window(); got != p.Bounds() {
		t.Errorf("Window() after clear = %v, want full panel", got)
	}
}

func TestFail(t *testing.T) {
	p := sim.New(4, 4)
	errBus := errors.New("bus error")
	p.Fail(errBus)

	if err := p.SetWindow(0, 0, 1, 1); err != errBus {
		t.Errorf("SetWindow() = %v, want %v", err, errBus)
	}
	if err := p.WriteColors(slices.Values([]uint16{1})); err != errBus {
		t.Errorf("WriteColors() = %v, want %v", err, errBus)
	}
	if err := p.ClearScreen(1); err != errBus {
		t.Errorf("ClearScreen() = %v, want %v", err, errBus)
	}

	p.Fail(nil)
	if err := p.ClearScreen(1); err != nil {
		t.Errorf("ClearScreen() after Fail(nil) = %v", err)
	}
}

func TestImage(t *testing.T) {
	p := sim.New(2, 1)
	if err := p.WriteColors(slices.Values([]uint16{pixelcolor.Red.Native(), pixelcolor.White.Native()})); err != nil {
		t.Fatal(err)
	}
	if c, ok := p.At(0, 0).(pixelcolor.RGB565); !ok || c != pixelcolor.Red {
		t.Errorf("At(0, 0) = %v, want red", p.At(0, 0))
	}
	if p.ColorModel() != pixelcolor.RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}

	dst := image.NewRGBA(p.Bounds())
	p.Snapshot(dst)
	want := []uint8{0xFF, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if !slices.Equal(dst.Pix, want) {
		t.Errorf("Snapshot() = % X, want % X", dst.Pix, want)
	}
}

func TestStats(t *testing.T) {
	p := sim.New(4, 4)
	d := ili9341.NewDrawTarget[pixelcolor.RGB565](p)
	if err := d.FillSolid(image.Rect(0, 0, 2, 3), pixelcolor.Green); err != nil {
		t.Fatal(err)
	}
	if err := d.Clear(pixelcolor.Black); err != nil {
		t.Fatal(err)
	}
	want := sim.Stats{Windows: 1, Words: 6, Clears: 1}
	if got := p.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
