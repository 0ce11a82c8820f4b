package spriteanim

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestEncodePixel(t *testing.T) {
	tests := []struct {
		name      string
		col       color.Color
		pixFormat PixelFormat
		want      []byte
	}{
		{"white rgb32", color.White, RGB32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"red rgb32", color.RGBA{0xFF, 0, 0, 0xFF}, RGB32, []byte{0, 0, 0xFF, 0xFF}},
		{"white rgb16", color.White, RGB16, []byte{0xFF, 0xFF}},
		{"red rgb16", color.RGBA{0xFF, 0, 0, 0xFF}, RGB16, []byte{0x00, 0xF8}},
		{"green rgb16", color.RGBA{0, 0xFF, 0, 0xFF}, RGB16, []byte{0xE0, 0x07}},
		{"blue rgb16", color.RGBA{0, 0, 0xFF, 0xFF}, RGB16, []byte{0x1F, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := make([]byte, GetPixelSize(test.pixFormat))
			EncodePixel(got, test.col, test.pixFormat)
			if !bytes.Equal(got, test.want) {
				t.Errorf("got % x, want % x", got, test.want)
			}
		})
	}
}

func TestParsePixelFormat(t *testing.T) {
	for _, pixFormat := range []PixelFormat{RGB32, RGB16} {
		parsed, err := ParsePixelFormat(pixFormat.String())
		if err != nil {
			t.Fatalf("ParsePixelFormat(%q): %v", pixFormat.String(), err)
		}
		if parsed != pixFormat {
			t.Errorf("ParsePixelFormat(%q) = %v", pixFormat.String(), parsed)
		}
	}
	if _, err := ParsePixelFormat("yuv"); err == nil {
		t.Error("expected an error for yuv")
	}
}

func TestCanvasFill(t *testing.T) {
	target, err := NewPixmap(4, 3, RGB32)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	canvas := NewCanvas(target)

	canvas.Fill(image.Rect(2, 1, 10, 10), color.White)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			filled := x >= 2 && y >= 1
			px := target.Row(y, x, x+1)
			if filled && !bytes.Equal(px, []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
				t.Errorf("(%d,%d) = % x, want white", x, y, px)
			}
			if !filled && !bytes.Equal(px, []byte{0, 0, 0, 0}) {
				t.Errorf("(%d,%d) = % x, want untouched", x, y, px)
			}
		}
	}
}

// numberedPixmap returns an RGB16 pixmap whose pixel (x, y) holds the
// value y*16+x in its low byte.
func numberedPixmap(t *testing.T, width int, height int) *Pixmap {
	pixmap, err := NewPixmap(width, height, RGB16)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixmap.Row(y, x, x+1)[0] = byte(y*16 + x)
		}
	}
	return pixmap
}

func TestCanvasBlit(t *testing.T) {
	sheet := numberedPixmap(t, 6, 2)
	target, _ := NewPixmap(3, 3, RGB16)
	canvas := NewCanvas(target)

	// Columns 2..3 of the sheet, placed so only the first column and
	// first row fit.
	if err := canvas.Blit(sheet, image.Rect(2, 0, 4, 2), image.Point{2, 2}); err != nil {
		t.Fatalf("Blit: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got := target.Row(y, x, x+1)[0]
			want := byte(0)
			if x == 2 && y == 2 {
				want = 2
			}
			if got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestCanvasBlitClipsSourceOutsidePixmap(t *testing.T) {
	sheet := numberedPixmap(t, 2, 2)
	target, _ := NewPixmap(4, 4, RGB16)
	canvas := NewCanvas(target)

	// The source starts one column left of the sheet: its first column is
	// skipped and the destination shifts right by one.
	if err := canvas.Blit(sheet, image.Rect(-1, 0, 2, 2), image.Point{0, 0}); err != nil {
		t.Fatalf("Blit: %v", err)
	}

	if got := target.Row(0, 1, 2)[0]; got != 0 {
		t.Errorf("(1,0) = %d, want 0", got)
	}
	if got := target.Row(1, 2, 3)[0]; got != 17 {
		t.Errorf("(2,1) = %d, want 17", got)
	}
	if got := target.Row(0, 0, 1)[0]; got != 0 {
		t.Errorf("(0,0) = %d, want untouched", got)
	}
}

func TestCanvasBlitRejectsOtherPixelFormat(t *testing.T) {
	sheet, _ := NewPixmap(2, 2, RGB32)
	target, _ := NewPixmap(2, 2, RGB16)
	if err := NewCanvas(target).Blit(sheet, sheet.Bounds(), image.Point{}); err == nil {
		t.Fatal("expected a pixel format error")
	}
}

func TestSubPixmapSharesMemory(t *testing.T) {
	pixmap := numberedPixmap(t, 4, 4)
	sub := pixmap.SubPixmap(image.Rect(1, 1, 3, 3))
	if sub.Width != 2 || sub.Height != 2 {
		t.Fatalf("sub size %dx%d, want 2x2", sub.Width, sub.Height)
	}
	if got := sub.Row(0, 0, 1)[0]; got != 17 {
		t.Errorf("sub (0,0) = %d, want 17", got)
	}

	NewCanvas(sub).Fill(sub.Bounds(), color.White)
	if got := pixmap.Row(2, 2, 3); !bytes.Equal(got, []byte{0xFF, 0xFF}) {
		t.Errorf("parent (2,2) = % x, want white", got)
	}
	if got := pixmap.Row(3, 3, 4)[0]; got != 51 {
		t.Errorf("parent (3,3) = %d, want untouched", got)
	}
}

func TestPixmapCloneAndRelease(t *testing.T) {
	pixmap := numberedPixmap(t, 3, 2)
	clone := pixmap.Clone()
	pixmap.Release()

	if pixmap.Data != nil || pixmap.Width != 0 {
		t.Error("Release kept pixel memory")
	}
	if got := clone.Row(1, 2, 3)[0]; got != 18 {
		t.Errorf("clone (2,1) = %d, want 18", got)
	}
}
