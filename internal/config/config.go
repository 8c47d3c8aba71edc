package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Defaults applied by Resolve when neither the file, the flags nor the
// scene provide a value.
const (
	DefaultWidth       = 320
	DefaultHeight      = 240
	DefaultFPS         = 30
	DefaultWebPQuality = 90
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile string `json:"scene_file"`
	AssetDir  string `json:"asset_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	FPS         int    `json:"fps"`
	Frames      int    `json:"frames"`
	Channels    int    `json:"channels"`
	WebPQuality int    `json:"webp_quality"`
	Workers     int    `json:"workers"`
	Background  string `json:"background"`
	FlipX       bool   `json:"flip_x"`
	FlipY       bool   `json:"flip_y"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. Relative paths in the
// file are taken relative to the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for _, p := range []*string{&cfg.SceneFile, &cfg.AssetDir, &cfg.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile   string
	AssetDir    string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	FPS         int
	Frames      int
	Quality     int
	Workers     int
}

// Resolve applies flag overrides and fills in defaults. Width and Height
// stay zero so the scene's own size can apply; see ApplySceneSize.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Textures live next to the scene unless told otherwise
	if c.AssetDir == "" && c.SceneFile != "" {
		c.AssetDir = filepath.Dir(c.SceneFile)
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	// Defaults for render settings
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = DefaultWebPQuality
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// ApplySceneSize fills an unset output size from the scene, then from the
// package defaults.
func (c *Config) ApplySceneSize(w, h int) {
	if c.Width <= 0 {
		c.Width = w
	}
	if c.Height <= 0 {
		c.Height = h
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
}
