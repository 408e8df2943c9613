package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

const stampLayout = "2006-01-02_15-04-05.000"

// ScreenshotCapture turns framebuffer read-backs into PNG files named
// prefix_timestamp.png.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// Filename is the path the next capture would be written to.
func (sc *ScreenshotCapture) Filename() string {
	return filepath.Join(sc.outputDir, sc.prefix+"_"+sc.now().Format(stampLayout)+".png")
}

// CaptureFromPixels writes an RGBA read-back, bottom row first as GL
// returns it, and returns the file written.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	stride := width * 4
	if want := stride * height; len(pixels) != want {
		return "", fmt.Errorf("screenshot: got %d bytes for %dx%d, want %d", len(pixels), width, height, want)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		src := pixels[(height-1-row)*stride:][:stride]
		copy(img.Pix[row*img.Stride:], src)
	}

	path := sc.Filename()
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
