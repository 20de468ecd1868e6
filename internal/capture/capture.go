// Package capture writes rendered frames to image files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for unsupported image formats.
var ErrUnknownFormat = errors.New("capture: unknown format")

// Format is an output image format.
type Format int

const (
	// FormatPNG writes lossless PNG files (default).
	FormatPNG Format = iota
	// FormatBMP writes uncompressed BMP files.
	FormatBMP
	// FormatTIFF writes Deflate-compressed TIFF files.
	FormatTIFF
)

// String returns the format name, which is also its file extension.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

// Writer stores numbered frames in a directory.
type Writer struct {
	dir    string
	format Format
	every  uint64
}

// NewWriter creates dir if needed and returns a Writer that keeps one
// frame out of every. An every of zero keeps all frames.
func NewWriter(dir string, f Format, every uint64) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: create %s: %w", dir, err)
	}
	if every == 0 {
		every = 1
	}
	return &Writer{dir: dir, format: f, every: every}, nil
}

// Path returns the file name used for frame n.
func (w *Writer) Path(n uint64) string {
	return filepath.Join(w.dir, fmt.Sprintf("frame-%06d.%s", n, w.format))
}

// Write stores frame n unless it is skipped by the sampling interval.
// It returns the written path, or "" when the frame was skipped.
func (w *Writer) Write(n uint64, img image.Image) (string, error) {
	if n%w.every != 0 {
		return "", nil
	}

	path := w.Path(n)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	if err := Encode(f, img, w.format); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("capture: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	return path, nil
}
