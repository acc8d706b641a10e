// Package media copies post images into the static site, scaling oversized
// rasters down to a maximum width.
package media

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

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxWidth is used when no positive width is configured.
const DefaultMaxWidth = 960

const jpegQuality = 85

// ErrUnsupportedFormat is returned for images that cannot be re-encoded.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Resize decodes an image from r and writes it to w, scaled down to maxWidth
// when wider. The aspect ratio is preserved and the input format is kept.
// WebP can be decoded but not encoded, so it yields ErrUnsupportedFormat.
func Resize(r io.Reader, w io.Writer, maxWidth int) (string, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	src, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	dst := src
	if bounds.Dx() > maxWidth {
		height := bounds.Dy() * maxWidth / bounds.Dx()
		if height < 1 {
			height = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Over, nil)
		dst = scaled
	}

	switch format {
	case "jpeg":
		return format, jpeg.Encode(w, dst, &jpeg.Options{Quality: jpegQuality})
	case "png":
		return format, png.Encode(w, dst)
	case "gif":
		return format, gif.Encode(w, dst, nil)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// CopyFile writes src to dst. Raster images wider than maxWidth are resized;
// every other file is copied byte for byte, as are images that cannot be
// re-encoded.
func CopyFile(src, dst string, maxWidth int) error {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}

	if isRaster(src) && wider(data, maxWidth) {
		var buf bytes.Buffer
		if _, err := Resize(bytes.NewReader(data), &buf, maxWidth); err == nil {
			data = buf.Bytes()
		}
	}
	return os.WriteFile(dst, data, 0o644)
}

func isRaster(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	default:
		return false
	}
}

// wider reports whether the encoded image is wider than maxWidth. Only the
// header is decoded.
func wider(data []byte, maxWidth int) bool {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil && cfg.Width > maxWidth
}
