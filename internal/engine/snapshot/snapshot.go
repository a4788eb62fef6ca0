// Package snapshot saves rendered frames as image files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Supported formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Capture writes timestamped frame files into a directory.
type Capture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// New creates a capture handler. An empty format means PNG.
func New(outputDir, prefix, format string) (*Capture, error) {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatBMP {
		return nil, fmt.Errorf("unsupported capture format %q", format)
	}
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// GenerateFilename returns the path the next Save would write, without saving.
func (c *Capture) GenerateFilename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save writes img to a new timestamped file and returns its path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.GenerateFilename()
	if err := writeFile(filename, c.format, img); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveTo writes img to path, choosing the format from its extension.
func SaveTo(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	return writeFile(path, format, img)
}

// FormatFromPath maps a .png or .bmp extension to its format name.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, format string, img image.Image) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		return fmt.Errorf("unsupported capture format %q", format)
	}
	return nil
}

func writeFile(path, format string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(file, format, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
