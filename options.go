package poisson

import (
	"fmt"

	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

type Option func(*Blender) error

// WithGamma decodes channels with (raw/255)^(1/gamma) and encodes them back
// with the inverse power. The default gamma is 2.2.
// gamma must be positive.
func WithGamma(gamma float64) Option {
	return func(b *Blender) error {
		if !(gamma > 0) {
			return fmt.Errorf("gamma must be positive, got %v", gamma)
		}
		b.transfer = transfer.Gamma(gamma)
		return nil
	}
}

// WithSRGB blends in linear light using the sRGB transfer curve instead of
// a plain power law.
func WithSRGB() Option {
	return func(b *Blender) error {
		b.transfer = transfer.SRGB()
		return nil
	}
}

// WithThreshold sets the red level at or above which a mask pixel takes part
// in the blend. The level is compared after decoding, in (0, 1].
func WithThreshold(t float64) Option {
	return func(b *Blender) error {
		if !(t > 0 && t <= 1) {
			return fmt.Errorf("threshold must be in (0, 1], got %v", t)
		}
		b.threshold = float32(t)
		return nil
	}
}

// WithSerialSolve solves the three color channels one after another.
// By default they are solved concurrently against the shared factorization.
func WithSerialSolve() Option {
	return func(b *Blender) error {
		b.serial = true
		return nil
	}
}
