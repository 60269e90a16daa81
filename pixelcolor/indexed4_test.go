package pixelcolor

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewIndexed4(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x320", image.Rect(0, 0, 240, 320), 120, 38400},
		{"4x2", image.Rect(0, 0, 4, 2), 2, 4},
		{"odd width", image.Rect(0, 0, 5, 2), 3, 6},
		{"offset rect", image.Rect(10, 20, 14, 22), 2, 4},
		{"empty", image.Rect(0, 0, 0, 4), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewIndexed4(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestIndexed4NibblePacking(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 4, 1))

	img.SetGray4(0, 0, Gray4{Y: 5})
	img.SetGray4(1, 0, Gray4{Y: 10})
	img.SetGray4(2, 0, Gray4{Y: 3})
	img.SetGray4(3, 0, Gray4{Y: 12})

	// High nibble = even column, low nibble = odd column
	if img.Pix[0] != 0x5A {
		t.Errorf("Pix[0] = 0x%02X, want 0x5A", img.Pix[0])
	}
	if img.Pix[1] != 0x3C {
		t.Errorf("Pix[1] = 0x%02X, want 0x3C", img.Pix[1])
	}
}

func TestIndexed4SetGet(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 3, 2))

	rows := [][3]uint8{
		{0, 1, 2},
		{15, 14, 13},
	}
	for y, row := range rows {
		for x, v := range row {
			img.SetGray4(x, y, Gray4{Y: v})
		}
	}
	for y, row := range rows {
		for x, want := range row {
			if got := img.Gray4At(x, y); got.Y != want {
				t.Errorf("Gray4At(%d, %d).Y = %d, want %d", x, y, got.Y, want)
			}
		}
	}
}

func TestIndexed4At(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 2, 2))
	img.SetGray4(1, 1, Gray4{Y: 7})

	c := img.At(1, 1)
	g, ok := c.(Gray4)
	if !ok {
		t.Fatalf("At(1, 1) returned %T, want Gray4", c)
	}
	if g.Y != 7 {
		t.Errorf("At(1, 1).Y = %d, want 7", g.Y)
	}
}

func TestIndexed4Set(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, Gray4{Y: 9})
	if got := img.Gray4At(0, 0); got.Y != 9 {
		t.Errorf("after Set(0, 0, Gray4{9}), Gray4At(0, 0).Y = %d, want 9", got.Y)
	}

	img.Set(1, 0, color.RGBA{0, 0xFF, 0, 0xFF})
	if got := img.Gray4At(1, 0); got.Y != 3 {
		t.Errorf("after Set(1, 0, green), Gray4At(1, 0).Y = %d, want 3", got.Y)
	}
}

func TestIndexed4OutOfBounds(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 4, 4))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		img.SetGray4(p.X, p.Y, Gray4{Y: 15})
		if got := img.Gray4At(p.X, p.Y); got.Y != 0 {
			t.Errorf("Gray4At(%d, %d).Y = %d, want 0 (out of bounds)", p.X, p.Y, got.Y)
		}
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
}

func TestIndexed4OffsetRect(t *testing.T) {
	img := NewIndexed4(image.Rect(101, 50, 105, 52))

	// Column 101 is the first column, so it takes the high nibble.
	img.SetGray4(101, 50, Gray4{Y: 11})
	if got := img.Gray4At(101, 50); got.Y != 11 {
		t.Errorf("Gray4At(101, 50).Y = %d, want 11", got.Y)
	}
	if img.Pix[0]>>4 != 11 {
		t.Errorf("Pix[0]>>4 = %d, want 11", img.Pix[0]>>4)
	}
}

func TestIndexed4PixOffset(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 7, 2))

	tests := []struct {
		x, y   int
		offset int
		shift  uint
	}{
		{0, 0, 0, 4},
		{1, 0, 0, 0},
		{2, 0, 1, 4},
		{6, 0, 3, 4},
		{0, 1, 4, 4}, // 4 bytes per row for 7 columns
		{1, 1, 4, 0},
	}

	for _, tt := range tests {
		offset, shift := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || shift != tt.shift {
			t.Errorf("pixOffset(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, offset, shift, tt.offset, tt.shift)
		}
	}
}

func TestIndexed4InvalidIndexPanics(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 2, 1))
	defer func() {
		if recover() == nil {
			t.Error("SetGray4 with index 0xF5 did not panic")
		}
	}()
	img.SetGray4(0, 0, Gray4{Y: 0xF5})
}

func TestIndexed4DrawUniform(t *testing.T) {
	img := NewIndexed4(image.Rect(0, 0, 4, 4))
	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(Gray4{Y: 6}), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 6
			}
			if got := img.Gray4At(x, y); got.Y != want {
				t.Errorf("Gray4At(%d, %d).Y = %d, want %d", x, y, got.Y, want)
			}
		}
	}
}
