package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
)

func testFrame() *framebuffer.Buffer {
	b := framebuffer.New(4, 3)
	b.Clear(framebuffer.RGB(10, 10, 40))
	b.Put(1, 2, framebuffer.RGB(255, 255, 0))
	return b
}

func checkDecoded(t *testing.T, img image.Image) {
	t.Helper()
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("decoded bounds %v", img.Bounds())
	}
	got := color.NRGBAModel.Convert(img.At(1, 2)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 255, B: 0, A: 255}) {
		t.Errorf("pixel (1,2) = %v", got)
	}
	got = color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{R: 10, G: 10, B: 40, A: 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c, err := New(dir, "capture", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	path, err := c.Save(testFrame())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(dir, "capture_2025-03-04_05-06-07.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open capture: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	checkDecoded(t, img)
}

func TestSaveBMP(t *testing.T) {
	c, err := New(t.TempDir(), "frame", FormatBMP)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := c.Save(testFrame())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(path, ".bmp") {
		t.Errorf("expected .bmp file, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read capture: %v", err)
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode BMP: %v", err)
	}
	checkDecoded(t, img)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("", "x", "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "sub/out.BMP"} {
		path := filepath.Join(dir, name)
		if err := SaveTo(path, testFrame()); err != nil {
			t.Fatalf("SaveTo(%s) failed: %v", name, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	if err := SaveTo(filepath.Join(dir, "out.jpg"), testFrame()); err == nil {
		t.Error("expected error for .jpg")
	}
}

func TestGenerateFilenameWithoutDir(t *testing.T) {
	c, err := New("", "shot", FormatPNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	if got := c.GenerateFilename(); got != "shot_2024-01-02_03-04-05.png" {
		t.Errorf("GenerateFilename() = %s", got)
	}
}
