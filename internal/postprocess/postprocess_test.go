package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSize(t *testing.T) {
	src := solid(64, 48, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	out := Downsample(src, 32, 24)
	if b := out.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("bounds = %v", b)
	}
	if c := out.NRGBAAt(10, 10); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("solid colour changed to %+v", c)
	}
}

func TestDownsampleNoop(t *testing.T) {
	src := solid(8, 8, color.NRGBA{A: 255})
	if Downsample(src, 8, 8) != src {
		t.Error("same-size downsample should return the input")
	}
	if Downsample(src, 0, 4) != src {
		t.Error("zero target should return the input")
	}
}

func TestDownsampleNoDarkFringe(t *testing.T) {
	// Left half transparent black, right half opaque white.
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	out := Downsample(src, 8, 8)
	for x := 0; x < 8; x++ {
		c := out.NRGBAAt(x, 4)
		if c.A > 16 && c.R < 240 {
			t.Errorf("x=%d: %+v darkened at the alpha edge", x, c)
		}
	}
}

func TestFlip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 2, A: 255})

	Flip(img, true, false)
	if img.NRGBAAt(2, 0).R != 1 || img.NRGBAAt(0, 1).R != 2 {
		t.Fatalf("horizontal flip wrong: %v", img.Pix)
	}
	Flip(img, false, true)
	if img.NRGBAAt(2, 1).R != 1 || img.NRGBAAt(0, 0).R != 2 {
		t.Fatalf("vertical flip wrong: %v", img.Pix)
	}
	Flip(img, true, true)
	if img.NRGBAAt(0, 0).R != 1 || img.NRGBAAt(2, 1).R != 2 {
		t.Errorf("double flip did not restore: %v", img.Pix)
	}
}
