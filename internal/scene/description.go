// Package scene reads JSON scene files and turns them into primitives and
// animations ready for the renderer.
package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Description is the on-disk form of a scene.
//
//	{
//	  "width": 320, "height": 240, "background": "#101018",
//	  "textures": {"brick": {"file": "brick.png", "sample": "bilinear", "wrap": "repeat"}},
//	  "primitives": [
//	    {"type": "triangle", "points": [[10,10],[100,20],[40,90]], "colors": ["#f00","#0f0","#00f"]},
//	    {"type": "sprite", "rect": [120,40,96,96], "texture": "brick", "scroll": {"u": 0.5}}
//	  ]
//	}
type Description struct {
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Background string                 `json:"background"`
	Textures   map[string]TextureDesc `json:"textures"`
	Primitives []PrimitiveDesc        `json:"primitives"`
}

// TextureDesc names an image file and how to sample it.
type TextureDesc struct {
	File   string `json:"file"`
	Sample string `json:"sample"`
	Wrap   string `json:"wrap"`
}

// PrimitiveDesc is one drawable. Which fields apply depends on Type:
//
//	point     points[0], color
//	line      points[0..1], color, antialias, line_background
//	triangle  points[0..2], color or colors, texture + uv
//	sprite    rect, texture, uv_offset, scroll
//	image     points[0] (top-left), texture
//
// Lines and triangles may be rotated by Rotate degrees around Pivot
// (default: the centroid of their points).
type PrimitiveDesc struct {
	Type           string       `json:"type"`
	Points         [][2]int     `json:"points,omitempty"`
	Color          string       `json:"color,omitempty"`
	Colors         []string     `json:"colors,omitempty"`
	Antialias      bool         `json:"antialias,omitempty"`
	LineBackground string       `json:"line_background,omitempty"`
	Texture        string       `json:"texture,omitempty"`
	UV             [][2]float64 `json:"uv,omitempty"`
	Rect           []int        `json:"rect,omitempty"`
	UVOffset       [2]float64   `json:"uv_offset,omitempty"`
	Scroll         *ScrollDesc  `json:"scroll,omitempty"`
	Rotate         float64      `json:"rotate,omitempty"`
	Pivot          *[2]float64  `json:"pivot,omitempty"`
}

// ScrollDesc attaches a UV scroll animation to a sprite. Speeds are in
// texture widths/heights per second.
type ScrollDesc struct {
	U    float64 `json:"u"`
	V    float64 `json:"v"`
	Rate float64 `json:"rate,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a scene from JSON.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if d.Width < 0 || d.Height < 0 {
		return nil, fmt.Errorf("negative scene size %dx%d", d.Width, d.Height)
	}
	return &d, nil
}
