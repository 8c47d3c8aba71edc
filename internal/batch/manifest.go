package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	FPS         int             `json:"fps"`
	WebPQuality int             `json:"webp_quality"`
	Frames      []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame   int     `json:"frame"`
	TimeSec float64 `json:"time_sec"`
	Image   string  `json:"image"`
	Error   string  `json:"error,omitempty"`
}

// WriteManifest writes the manifest for results to path.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Width:       cfg.Width,
		Height:      cfg.Height,
		FPS:         cfg.FPS,
		WebPQuality: cfg.WebPQuality,
		Frames:      make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		m.Frames[i] = ManifestEntry{
			Frame:   r.Frame,
			TimeSec: r.Time.Seconds(),
			Image:   r.Path,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
