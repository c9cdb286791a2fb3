package imageio

import (
	"errors"
	"fmt"

	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/disintegration/imaging"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

var ErrDecode = errors.New("could not open input image")

// Load decodes the image at path into the working space of tf.
// PNG, JPEG, GIF, TIFF, BMP and WebP files are accepted.
func Load(path string, tf transfer.Func) (*pixel.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return pixel.FromImage(src, tf), nil
}

// Save encodes an interleaved RGBA8 buffer to path. The format follows the
// file extension.
func Save(path string, width, height int, pix []byte) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("buffer holds %d bytes, want %d for %dx%d", len(pix), width*height*4, width, height)
	}
	if err := imaging.Save(pixel.Build(width, height, pix), path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
