package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	// ErrEmptyData is returned when there are no bytes to decode.
	ErrEmptyData = errors.New("texture: empty data")

	// ErrUnsupportedFormat is returned when no decoder accepts the data.
	ErrUnsupportedFormat = errors.New("texture: unsupported format")

	// ErrBadChannels is returned for a channel count outside 0..4.
	ErrBadChannels = errors.New("texture: unsupported channel count")
)

type codec struct {
	name         string
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

var (
	codecPNG  = codec{"png", png.Decode, png.DecodeConfig}
	codecJPEG = codec{"jpeg", jpeg.Decode, jpeg.DecodeConfig}
	codecGIF  = codec{"gif", gif.Decode, gif.DecodeConfig}
	codecBMP  = codec{"bmp", bmp.Decode, bmp.DecodeConfig}
	codecTIFF = codec{"tiff", tiff.Decode, tiff.DecodeConfig}
	codecWebP = codec{"webp", webp.Decode, webp.DecodeConfig}
	codecTGA  = codec{"tga", tga.Decode, tga.DecodeConfig}
)

// sniff picks a decoder from the leading magic bytes. TGA has no magic, so
// it is the fallback when the hint extension says so or nothing else matched.
func sniff(data []byte, ext string) (codec, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return codecPNG, true
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return codecJPEG, true
	case bytes.HasPrefix(data, []byte("GIF8")):
		return codecGIF, true
	case bytes.HasPrefix(data, []byte("BM")):
		return codecBMP, true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return codecTIFF, true
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return codecWebP, true
	}
	if ext == "" || ext == ".tga" {
		return codecTGA, true
	}
	return codec{}, false
}

// Load reads and decodes an image file. channels follows FromImage.
func Load(path string, channels int) (*Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := decode(raw, strings.ToLower(filepath.Ext(path)), channels)
	if err != nil {
		return nil, fmt.Errorf("texture: load %s: %w", path, err)
	}
	return img, nil
}

// DecodeBytes decodes an in-memory encoded image.
func DecodeBytes(data []byte, channels int) (*Image, error) {
	return decode(data, "", channels)
}

// Decode reads r to the end and decodes it.
func Decode(r io.Reader, channels int) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("texture: read: %w", err)
	}
	return decode(data, "", channels)
}

func decode(data []byte, ext string, channels int) (*Image, error) {
	if channels < 0 || channels > 4 {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	c, ok := sniff(data, ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	src, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", c.name, err)
	}
	return FromImage(src, channels)
}

// Info describes an encoded image without decoding its pixels.
type Info struct {
	Width  int
	Height int
	Format string
}

// Stat reads only the header of an image file.
func Stat(path string) (Info, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Info{}, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, 16)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return Info{}, fmt.Errorf("texture: stat %s: %w", path, ErrEmptyData)
		}
		return Info{}, fmt.Errorf("texture: stat %s: %w", path, err)
	}
	c, ok := sniff(head[:n], strings.ToLower(filepath.Ext(path)))
	if !ok {
		return Info{}, fmt.Errorf("texture: stat %s: %w", path, ErrUnsupportedFormat)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("texture: stat %s: %w", path, err)
	}
	cfg, err := c.decodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("texture: stat %s: %w", path, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: c.name}, nil
}
