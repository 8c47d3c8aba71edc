package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"softraster/internal/config"
	"softraster/internal/logging"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

// viewer presents a scene in a window, advancing its animations by one tick
// per Update.
type viewer struct {
	sc       *scene.Scene
	renderer *raster.Renderer
	window   *ebiten.Image
	scratch  []byte
	paused   bool
	shots    int
	shotDir  string
}

func newViewer(sc *scene.Scene, w, h int, shotDir string) (*viewer, error) {
	fb, err := raster.NewFrameBuffer(w, h)
	if err != nil {
		return nil, err
	}
	r := raster.NewRenderer(fb)
	r.Add(sc.Primitives...)
	return &viewer{
		sc:       sc,
		renderer: r,
		scratch:  make([]byte, len(fb.Pix())),
		shotDir:  shotDir,
	}, nil
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := v.snapshot(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: snapshot: %v\n", err)
		}
	}
	if !v.paused {
		v.sc.Animator.Update(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	fb := v.renderer.Buffer()
	if v.window == nil {
		v.window = ebiten.NewImage(fb.Width(), fb.Height())
	}
	v.renderer.Frame(v.sc.Background)

	// WritePixels takes premultiplied alpha.
	pix := fb.Pix()
	for i := 0; i < len(pix); i += 4 {
		a := uint32(pix[i+3])
		v.scratch[i] = uint8((uint32(pix[i])*a + 127) / 255)
		v.scratch[i+1] = uint8((uint32(pix[i+1])*a + 127) / 255)
		v.scratch[i+2] = uint8((uint32(pix[i+2])*a + 127) / 255)
		v.scratch[i+3] = uint8(a)
	}
	v.window.WritePixels(v.scratch)
	screen.DrawImage(v.window, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	fb := v.renderer.Buffer()
	return fb.Width(), fb.Height()
}

func (v *viewer) snapshot() error {
	path := filepath.Join(v.shotDir, fmt.Sprintf("snapshot_%03d.webp", v.shots))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := nativewebp.Encode(f, v.renderer.Buffer().Image(), nil); err != nil {
		return err
	}
	v.shots++
	fmt.Printf("Saved %s\n", path)
	return nil
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene description (JSON)")
	assetDir := flag.String("assets", "", "Texture directory (default: scene directory)")
	zoom := flag.Int("zoom", 2, "Window scale factor")
	verbose := flag.Bool("v", false, "Log texture loading and other details")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{SceneFile: *sceneFile, AssetDir: *assetDir})
	if cfg.SceneFile == "" {
		fmt.Fprintln(os.Stderr, "Error: no scene. Use -scene flag or scene_file in config.json.")
		os.Exit(1)
	}

	desc, err := scene.Load(cfg.SceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplySceneSize(desc.Width, desc.Height)

	sc, err := scene.Build(desc, texture.NewCache(texture.BuildIndex(cfg.AssetDir), cfg.Channels), 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(sc, cfg.Width, cfg.Height, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width*max(*zoom, 1), cfg.Height*max(*zoom, 1))
	ebiten.SetWindowTitle("softraster - " + filepath.Base(cfg.SceneFile))
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
