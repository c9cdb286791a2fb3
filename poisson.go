package poisson

import (
	"context"
	"fmt"
	"image"

	"github.com/yyyoichi/poisson_blend/internal/blend"
	"github.com/yyyoichi/poisson_blend/internal/imageio"
	"github.com/yyyoichi/poisson_blend/internal/mask"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

var (
	ErrInvalidPlacement = blend.ErrInvalidPlacement
	ErrSolverFailure    = blend.ErrSolverFailure
	ErrDecode           = imageio.ErrDecode
)

// Image is a picture decoded into a Blender's working color space.
type Image = pixel.Image

// Blend pastes the masked part of source into target with its top-left corner
// at (mx, my). This is a convenience function that creates a Blender instance
// and calls its Blend method.
func Blend(ctx context.Context, maskImg, source, target image.Image, mx, my int, opts ...Option) (image.Image, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, err
	}
	out, err := b.Blend(ctx, b.Decode(maskImg), b.Decode(source), b.Decode(target), mx, my)
	if err != nil {
		return nil, err
	}
	return out.Image(), nil
}

type Blender struct {
	transfer  transfer.Func
	threshold float32
	serial    bool
}

// New initializes a blender.
// The transfer curve and mask threshold can be optionally specified.
// For default values, refer to the init function.
func New(opts ...Option) (*Blender, error) {
	b := new(Blender)
	if err := b.init(opts...); err != nil {
		return nil, err
	}
	return b, nil
}

// Decode converts src into the blender's working color space.
func (b *Blender) Decode(src image.Image) *Image {
	return pixel.FromImage(src, b.transfer)
}

// Load reads and decodes the image file at path.
// The returned error wraps ErrDecode.
func (b *Blender) Load(path string) (*Image, error) {
	return imageio.Load(path, b.transfer)
}

// Blend performs Poisson blending of source into target.
//
// Process:
//  1. Checks that the mask footprint at (mx, my) keeps a 1 pixel margin
//     inside target.
//  2. Numbers every mask pixel whose red value reaches the threshold.
//  3. Builds the Laplacian over those pixels and factorizes it once.
//  4. Solves for R, G and B with the source gradients as guidance and the
//     surrounding target pixels as boundary values.
//  5. Writes the clamped result over an opaque copy of target.
//
// Returns an error wrapping ErrInvalidPlacement or ErrSolverFailure;
// no output is produced in either case.
func (b *Blender) Blend(ctx context.Context, maskImg, source, target *Image, mx, my int) (*Output, error) {
	logger := Logger()
	pix, err := blend.Run(ctx, blend.Params{
		Mask:      maskImg,
		Source:    source,
		Target:    target,
		MX:        mx,
		MY:        my,
		Threshold: b.threshold,
		Transfer:  b.transfer,
		Serial:    b.serial,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	return &Output{Width: target.Width(), Height: target.Height(), Pix: pix}, nil
}

func (b *Blender) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return err
		}
	}
	if b.transfer == nil {
		b.transfer = transfer.Gamma(transfer.DefaultGamma)
	}
	if b.threshold == 0 {
		b.threshold = mask.DefaultThreshold
	}
	return nil
}

// Output is a blended picture as interleaved RGBA8, row-major.
type Output struct {
	Width, Height int
	Pix           []byte
}

// Image wraps the output buffer without copying it.
func (o *Output) Image() *image.RGBA {
	return pixel.Build(o.Width, o.Height, o.Pix)
}

// Save writes the output to path; the format follows the extension.
func (o *Output) Save(path string) error {
	if err := imageio.Save(path, o.Width, o.Height, o.Pix); err != nil {
		return fmt.Errorf("save output: %w", err)
	}
	return nil
}
