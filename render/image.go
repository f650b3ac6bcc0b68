package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/mandelbrot/fractal"
)

// ToImage copies a pixel raster into an opaque RGBA image
func ToImage(buf []fractal.Color, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	FillRGBA(img.Pix, buf)
	return img
}

// FillRGBA writes buf as RGBA bytes into dst, which must hold 4 bytes per pixel
func FillRGBA(dst []byte, buf []fractal.Color) {
	n := min(len(buf), len(dst)/4)
	for i := 0; i < n; i++ {
		r, g, b := buf[i].Components()
		o := i * 4
		dst[o] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = 0xff
	}
}

// SnapshotName returns the file name of a snapshot taken at t
func SnapshotName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.png", prefix, t.Format("20060102-150405.000"))
}

// SavePNG encodes the raster into dir, creating it if needed, and returns the written path
func SavePNG(dir, prefix string, t time.Time, buf []fractal.Color, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(buf) < width*height {
		return "", fmt.Errorf("snapshot: invalid raster %dx%d with %d pixels", width, height, len(buf))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}

	path := filepath.Join(dir, SnapshotName(prefix, t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot create: %w", err)
	}

	if err := png.Encode(f, ToImage(buf, width, height)); err != nil {
		f.Close()
		return "", fmt.Errorf("snapshot encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot close: %w", err)
	}
	return path, nil
}
