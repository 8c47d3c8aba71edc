package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// extRank orders formats when two files share a stem; lower wins.
// Formats that can carry alpha come first.
var extRank = map[string]int{
	".png":  0,
	".webp": 1,
	".tga":  2,
	".gif":  3,
	".tif":  4,
	".tiff": 4,
	".bmp":  5,
	".jpg":  6,
	".jpeg": 6,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	root    string
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans root and all of its subdirectories for image files.
// A missing root yields an empty index.
func BuildIndex(root string) *Index {
	idx := &Index{root: root, entries: make(map[string]string)}
	if root == "" {
		return idx
	}

	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := extRank[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || rank < extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Names may carry a directory prefix and extension ("ui\\brick.png" → "brick").
// A name that is itself an existing file path resolves to that path first.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	if texName == "" {
		return "", false
	}
	candidates := []string{texName}
	if idx.root != "" && !filepath.IsAbs(texName) {
		candidates = append(candidates, filepath.Join(idx.root, texName))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}

	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
