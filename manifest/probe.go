package manifest

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoders are picked by content, not extension, so a frame saved as .png
// that is really WebP or AVIF still reports its size.

// FrameResult is the outcome of probing one frame: either a positive size or
// the error that prevented reading it.
type FrameResult struct {
	Width  int
	Height int
	Err    error
}

func (r FrameResult) OK() bool {
	return r.Err == nil
}

var errEmptyImage = errors.New("image has no pixels")

// Probe reads the image header at path and returns its dimensions. Pixel
// data is not decoded.
func Probe(path string) FrameResult {
	f, err := os.Open(path)
	if err != nil {
		return FrameResult{Err: err}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return FrameResult{Err: fmt.Errorf("decode header: %w", err)}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return FrameResult{Err: fmt.Errorf("%s %dx%d: %w", format, cfg.Width, cfg.Height, errEmptyImage)}
	}

	return FrameResult{Width: cfg.Width, Height: cfg.Height}
}
