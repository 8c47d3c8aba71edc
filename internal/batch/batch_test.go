package batch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"softraster/internal/pixel"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	d, err := scene.Parse([]byte(`{
		"width": 8, "height": 6, "background": "#204060",
		"textures": {"t": {"wrap": "repeat"}},
		"primitives": [
			{"type": "sprite", "rect": [4, 0, 4, 4], "texture": "t", "scroll": {"u": 1}},
			{"type": "point", "points": [[0, 5]], "color": "#ffffff"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	res := resolver{"t": texture.NewImage(2, 1, 4, pixel.Red)}
	sc, err := scene.Build(d, res, 1)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

type resolver map[string]*texture.Image

func (r resolver) Resolve(name string) (*texture.Image, error) {
	return r[name], nil
}

func TestRunWritesFrames(t *testing.T) {
	sc := testScene(t)
	out := t.TempDir()
	cfg := Config{Scene: sc, OutputDir: out, Frames: 4, FPS: 4, Workers: 3}

	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	for i, r := range results {
		if !r.Success || r.Frame != i || r.Path != FrameName(i) {
			t.Fatalf("result %d = %+v", i, r)
		}
		img, err := texture.Load(filepath.Join(out, r.Path), 4)
		if err != nil {
			t.Fatalf("decode frame %d: %v", i, err)
		}
		if img.Width != 8 || img.Height != 6 {
			t.Errorf("frame %d size = %dx%d", i, img.Width, img.Height)
		}
		if got := img.At(0, 0); got != pixel.RGB(0x20, 0x40, 0x60) {
			t.Errorf("frame %d background = %v", i, got)
		}
		if got := img.At(0, 5); got != pixel.White {
			t.Errorf("frame %d point = %v", i, got)
		}
		if got := img.At(5, 1); got != pixel.Red {
			t.Errorf("frame %d sprite = %v", i, got)
		}
	}

	// Four steps of 250ms at 1 UV/s.
	sp := sc.Primitives[0]
	if u, _ := sp.(interface{ UVOffset() (float64, float64) }).UVOffset(); u != 1 {
		t.Errorf("animation advanced to u = %v, want 1", u)
	}
	if results[2].Time.Milliseconds() != 500 {
		t.Errorf("frame 2 time = %v", results[2].Time)
	}
}

func TestRunSupersampledFlipped(t *testing.T) {
	d, _ := scene.Parse([]byte(`{"width": 8, "height": 6, "primitives": [{"type": "point", "points": [[0, 0]]}]}`))
	sc, err := scene.Build(d, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	sc.Primitives = append(sc.Primitives, raster.NewTriangle(0, 0, 15, 0, 0, 11, pixel.Green))

	out := t.TempDir()
	results, err := Run(context.Background(), Config{
		Scene: sc, OutputDir: out, Frames: 1, Supersample: 2, FlipY: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	img, err := texture.Load(filepath.Join(out, results[0].Path), 4)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 8 || img.Height != 6 {
		t.Fatalf("size = %dx%d, want downsampled 8x6", img.Width, img.Height)
	}
	// The triangle covers the top-left corner; flipped it lands bottom-left.
	if c := img.At(0, 5); c.G() < 200 {
		t.Errorf("bottom-left = %v, want green", c)
	}
	if c := img.At(7, 0); c != pixel.Black {
		t.Errorf("top-right = %v, want background", c)
	}
}

func TestRunValidation(t *testing.T) {
	if _, err := Run(context.Background(), Config{Scene: testScene(t)}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("zero frames err = %v", err)
	}
	if _, err := Run(context.Background(), Config{Frames: 1}); err == nil {
		t.Error("nil scene accepted")
	}
	bad := testScene(t)
	bad.Width = 0
	if _, err := Run(context.Background(), Config{Scene: bad, Frames: 1, OutputDir: t.TempDir()}); !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("zero width err = %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, Config{Scene: testScene(t), OutputDir: t.TempDir(), Frames: 500, Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) >= 500 {
		t.Errorf("cancelled run rendered all %d frames", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Errorf("queued frame %d failed: %s", i, r.Error)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Frame: 0, Path: FrameName(0), Success: true},
		{Frame: 1, Path: FrameName(1), Error: "disk full"},
	}
	cfg := Config{Width: 8, Height: 6, FPS: 24, WebPQuality: 90}
	if err := WriteManifest(path, cfg, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.FPS != 24 || len(m.Frames) != 2 || m.Frames[1].Image != "frame_0001.webp" || m.Frames[1].Error != "disk full" {
		t.Errorf("manifest = %+v", m)
	}
}
