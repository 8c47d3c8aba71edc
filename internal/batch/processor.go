// Package batch renders an animated scene to a numbered WebP frame sequence
// using a pool of workers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"softraster/internal/logging"
	"softraster/internal/postprocess"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// ErrNoFrames is returned when a run is configured with zero frames.
var ErrNoFrames = errors.New("batch: frame count must be positive")

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Width       int // output size; the framebuffer is Width*Supersample wide
	Height      int
	Supersample int
	Frames      int
	FPS         int
	WebPQuality int // recorded in the manifest; nativewebp always encodes lossless
	Workers     int
	FlipX       bool
	FlipY       bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int           `json:"frame"`
	Time    time.Duration `json:"-"`
	Path    string        `json:"image"`
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
}

type job struct {
	frame int
	at    time.Duration
	prims []raster.Primitive
}

// Run renders cfg.Frames frames. The calling goroutine owns the scene: it
// advances the animator by one frame interval at a time and hands each
// worker a cloned snapshot of the primitives, so workers never share
// mutable state. Each worker renders into its own framebuffer.
//
// Frame failures are reported per Result. The returned error is non-nil
// only for invalid configuration or when ctx is cancelled, in which case
// the frames that were already queued still finish.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Frames <= 0 {
		return nil, ErrNoFrames
	}
	if cfg.Scene == nil {
		return nil, errors.New("batch: no scene")
	}
	cfg = withDefaults(cfg)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	fbs := make([]*raster.FrameBuffer, cfg.Workers)
	for i := range fbs {
		fb, err := raster.NewFrameBuffer(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
		if err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
		fbs[i] = fb
	}

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan job, cfg.Workers*2)
	var wg sync.WaitGroup

	for _, fb := range fbs {
		wg.Add(1)
		go func(fb *raster.FrameBuffer) {
			defer wg.Done()
			for j := range jobs {
				results[j.frame] = renderFrame(cfg, fb, j)
				processed.Add(1)
			}
		}(fb)
	}

	// Send work
	step := time.Second / time.Duration(cfg.FPS)
	var at time.Duration
	sent := 0
	anims := cfg.Scene.Animator
feed:
	for i := 0; i < total; i++ {
		j := job{frame: i, at: at, prims: raster.CloneAll(cfg.Scene.Primitives)}
		select {
		case jobs <- j:
			sent++
		case <-ctx.Done():
			break feed
		}
		if anims != nil {
			anims.Update(step)
		}
		at += step
	}
	close(jobs)

	wg.Wait()
	close(done)

	logging.Logger().Info("batch finished", "frames", sent, "elapsed", time.Since(start))
	if sent < total {
		return results[:sent], ctx.Err()
	}
	return results, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Width <= 0 {
		cfg.Width = cfg.Scene.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = cfg.Scene.Height
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg
}

// FrameName returns the file name used for frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

func renderFrame(cfg Config, fb *raster.FrameBuffer, j job) Result {
	res := Result{Frame: j.frame, Time: j.at, Path: FrameName(j.frame)}

	fb.Clear(cfg.Scene.Background)
	for _, p := range j.prims {
		p.Draw(fb)
	}

	// The framebuffer is reused by the next job, so copy before post-processing.
	var img *image.NRGBA
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(fb.Image(), cfg.Width, cfg.Height)
	} else {
		view := fb.Image()
		img = image.NewNRGBA(view.Rect)
		copy(img.Pix, view.Pix)
	}
	img = postprocess.Flip(img, cfg.FlipX, cfg.FlipY)

	outPath := filepath.Join(cfg.OutputDir, res.Path)
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
