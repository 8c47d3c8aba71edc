package raster

import (
	"testing"

	"softraster/internal/pixel"
)

// lit returns the set of pixels that differ from bg.
func lit(fb *FrameBuffer, bg pixel.Color) map[[2]int]pixel.Color {
	out := make(map[[2]int]pixel.Color)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if c := fb.GetPixel(x, y); c != bg {
				out[[2]int{x, y}] = c
			}
		}
	}
	return out
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [][2]int
	}{
		{"horizontal", 0, 0, 5, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"vertical up", 2, 4, 2, 1, [][2]int{{2, 4}, {2, 3}, {2, 2}, {2, 1}}},
		{"single point", 3, 3, 3, 3, [][2]int{{3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTestBuffer(t, 8, 8)
			NewLine(tt.x1, tt.y1, tt.x2, tt.y2, pixel.Green).Draw(fb)
			got := lit(fb, pixel.Transparent)
			if len(got) != len(tt.want) {
				t.Fatalf("plotted %d pixels, want %d: %v", len(got), len(tt.want), got)
			}
			for _, p := range tt.want {
				if got[p] != pixel.Green {
					t.Errorf("pixel %v = %v, want green", p, got[p])
				}
			}
		})
	}
}

func TestBresenhamSymmetric(t *testing.T) {
	a := newTestBuffer(t, 16, 16)
	b := newTestBuffer(t, 16, 16)
	NewLine(1, 2, 13, 7, pixel.White).Draw(a)
	NewLine(13, 7, 1, 2, pixel.White).Draw(b)

	pa, pb := lit(a, pixel.Transparent), lit(b, pixel.Transparent)
	// One pixel per column along the dominant x axis, connected path.
	if len(pa) != 13 || len(pb) != 13 {
		t.Fatalf("pixels = %d / %d, want 13", len(pa), len(pb))
	}
	for x := 1; x <= 13; x++ {
		n := 0
		for p := range pa {
			if p[0] == x {
				n++
			}
		}
		if n != 1 {
			t.Errorf("column %d has %d pixels", x, n)
		}
	}
}

func TestBresenhamClipped(t *testing.T) {
	fb := newTestBuffer(t, 4, 4)
	NewLine(-10, 1, 10, 1, pixel.Red).Draw(fb)
	for x := 0; x < 4; x++ {
		if fb.GetPixel(x, 1) != pixel.Red {
			t.Errorf("pixel (%d,1) not drawn", x)
		}
	}
}

func TestWuHorizontal(t *testing.T) {
	fb := newTestBuffer(t, 12, 4)
	l := NewAntialiasedLine(0, 0, 10, 0, pixel.White)
	l.Draw(fb)

	for x := 1; x <= 9; x++ {
		if got := fb.GetPixel(x, 0); got != pixel.White {
			t.Errorf("main row (%d,0) = %v, want full intensity", x, got)
		}
		if got := fb.GetPixel(x, 1); got != pixel.Black {
			t.Errorf("fringe (%d,1) = %v, want background", x, got)
		}
	}
	// endpoints carry half coverage from the x gap
	for _, x := range []int{0, 10} {
		if got := fb.GetPixel(x, 0); got != pixel.RGB(128, 128, 128) {
			t.Errorf("endpoint (%d,0) = %v, want half intensity", x, got)
		}
	}
}

func TestWuSteepMatchesTranspose(t *testing.T) {
	a := newTestBuffer(t, 16, 16)
	b := newTestBuffer(t, 16, 16)
	NewAntialiasedLine(2, 1, 7, 13, pixel.Yellow).Draw(a)
	NewAntialiasedLine(1, 2, 13, 7, pixel.Yellow).Draw(b)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.GetPixel(x, y) != b.GetPixel(y, x) {
				t.Fatalf("(%d,%d) = %v, transposed = %v", x, y, a.GetPixel(x, y), b.GetPixel(y, x))
			}
		}
	}
}

func TestWuBlendsAgainstBackground(t *testing.T) {
	fb := newTestBuffer(t, 10, 10)
	fb.Clear(pixel.Blue)
	l := NewAntialiasedLine(0, 0, 8, 4, pixel.White)
	l.Background = pixel.White
	l.Draw(fb)
	// Every touched pixel blends white over white, whatever the coverage.
	for p, c := range lit(fb, pixel.Blue) {
		if c != pixel.White {
			t.Errorf("pixel %v = %v, want white", p, c)
		}
	}
}

func TestLineClone(t *testing.T) {
	l := NewLine(0, 0, 1, 1, pixel.Red)
	c := l.Clone().(*Line)
	c.X2 = 9
	if l.X2 != 1 {
		t.Error("clone shares state with original")
	}
}
