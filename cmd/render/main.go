package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/logging"
	"softraster/internal/pixel"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene description (JSON)")
	assetDir := flag.String("assets", "", "Texture directory (default: scene directory)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	width := flag.Int("width", 0, "Output width (default: scene width or 320)")
	height := flag.Int("height", 0, "Output height (default: scene height or 240)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 1)")
	fps := flag.Int("fps", 0, "Frames per second of scene time (default: 30)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	quality := flag.Int("quality", 0, "WebP quality 1-100, recorded in the manifest (default: 90)")
	verbose := flag.Bool("v", false, "Log texture loading and other details")

	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		AssetDir:    *assetDir,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		FPS:         *fps,
		Frames:      *frames,
		Quality:     *quality,
		Workers:     *workers,
	})

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

	// Build texture index
	texIndex := texture.BuildIndex(cfg.AssetDir)
	texCache := texture.NewCache(texIndex, cfg.Channels)
	fmt.Printf("Textures: %d indexed in %s\n", texIndex.Len(), cfg.AssetDir)

	sc, err := scene.Build(desc, texCache, cfg.Supersample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Background != "" {
		if sc.Background, err = pixel.ParseHex(cfg.Background); err != nil {
			fmt.Fprintf(os.Stderr, "Error: background: %v\n", err)
			os.Exit(1)
		}
	}

	// Print summary
	fmt.Printf("Scene: %s (%d primitives, %d animations)\n", cfg.SceneFile, len(sc.Primitives), sc.Animator.Len())
	fmt.Printf("Frames: %d @ %d fps, %dx%d (x%d supersample), Workers: %d\n",
		cfg.Frames, cfg.FPS, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		WebPQuality: cfg.WebPQuality,
		Workers:     cfg.Workers,
		FlipX:       cfg.FlipX,
		FlipY:       cfg.FlipY,
	}

	results, runErr := batch.Run(ctx, batchCfg)
	if runErr != nil && results == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	if runErr != nil {
		fmt.Printf("Interrupted: %v\n", runErr)
	}

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 || runErr != nil {
		os.Exit(1)
	}
}
