package raster

import (
	"testing"

	"softraster/internal/pixel"
	"softraster/internal/texture"
)

func TestImageBlit(t *testing.T) {
	img := texture.NewImage(3, 2, 4, pixel.Transparent)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, pixel.RGB(uint8(x*10), uint8(y*10), 7))
		}
	}

	fb := newTestBuffer(t, 4, 4)
	NewImageBlit(img, 2, 3).Draw(fb)

	if got, want := fb.GetPixel(2, 3), pixel.RGB(0, 0, 7); got != want {
		t.Errorf("(2,3) = %v, want %v", got, want)
	}
	if got, want := fb.GetPixel(3, 3), pixel.RGB(10, 0, 7); got != want {
		t.Errorf("(3,3) = %v, want %v", got, want)
	}
	if n := len(lit(fb, pixel.Transparent)); n != 2 {
		t.Errorf("blit wrote %d pixels, want 2 after clipping", n)
	}

	neg := newTestBuffer(t, 4, 4)
	b := NewImageBlit(img, 0, 0)
	b.Move(-2, -1)
	b.Draw(neg)
	if got, want := neg.GetPixel(0, 0), pixel.RGB(20, 10, 7); got != want {
		t.Errorf("negative offset (0,0) = %v, want %v", got, want)
	}
}

func TestImageBlitNil(t *testing.T) {
	fb := newTestBuffer(t, 2, 2)
	NewImageBlit(nil, 0, 0).Draw(fb)
	if len(lit(fb, pixel.Transparent)) != 0 {
		t.Error("nil image wrote pixels")
	}
}

func TestRendererRetainedList(t *testing.T) {
	fb := newTestBuffer(t, 8, 8)
	r := NewRenderer(fb)

	p := NewPoint(1, 1, pixel.Red)
	l := NewLine(0, 5, 7, 5, pixel.Green)
	r.Add(p, nil, l)
	if n := len(r.Primitives()); n != 2 {
		t.Fatalf("retained %d primitives, want 2", n)
	}

	r.Frame(pixel.Black)
	if fb.GetPixel(1, 1) != pixel.Red || fb.GetPixel(3, 5) != pixel.Green {
		t.Fatal("Frame did not draw retained primitives")
	}
	if fb.GetPixel(6, 1) != pixel.Black {
		t.Error("Frame did not clear to background")
	}

	if !r.Remove(p) {
		t.Fatal("Remove(point) = false")
	}
	if r.Remove(p) {
		t.Error("second Remove(point) = true")
	}
	r.Frame(pixel.Black)
	if fb.GetPixel(1, 1) != pixel.Black {
		t.Error("removed point still drawn")
	}

	r.ClearPrimitives()
	if len(r.Primitives()) != 0 {
		t.Error("ClearPrimitives left primitives")
	}
}

func TestRendererDrawOrder(t *testing.T) {
	fb := newTestBuffer(t, 4, 4)
	r := NewRenderer(fb)
	r.Add(NewPoint(2, 2, pixel.Red), NewPoint(2, 2, pixel.Blue))
	r.DrawAll()
	if got := fb.GetPixel(2, 2); got != pixel.Blue {
		t.Errorf("(2,2) = %v, want last-added colour", got)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	r := NewRenderer(newTestBuffer(t, 4, 4))
	p := NewPoint(0, 0, pixel.Red)
	r.Add(p)

	snap := r.Snapshot()
	p.X = 3
	if got := snap[0].(*Point).X; got != 0 {
		t.Errorf("snapshot X = %d after mutating original", got)
	}
}

func TestImmediateHelpers(t *testing.T) {
	fb := newTestBuffer(t, 8, 8)
	r := NewRenderer(fb)
	r.Clear(pixel.Black)
	r.DrawPoint(7, 7, pixel.White)
	r.DrawLine(0, 0, 3, 0, pixel.Red)
	r.DrawTriangle(0, 4, 2, 4, 0, 6, pixel.Green)
	r.DrawAntialiasedLine(4, 2, 7, 2, pixel.Blue)
	r.DrawImage(texture.NewImage(1, 1, 4, pixel.Yellow), 6, 6)

	checks := []struct {
		x, y int
		want pixel.Color
	}{
		{7, 7, pixel.White},
		{2, 0, pixel.Red},
		{0, 5, pixel.Green},
		{5, 2, pixel.Blue},
		{6, 6, pixel.Yellow},
	}
	for _, c := range checks {
		if got := fb.GetPixel(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	if len(r.Primitives()) != 0 {
		t.Error("immediate helpers retained primitives")
	}
}
