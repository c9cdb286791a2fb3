package transfer

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGamma is the exponent used when no transfer is configured.
const DefaultGamma = 2.2

// Func converts 8-bit channel values to the working space and back.
type Func interface {
	Decode(raw uint8) float32
	Encode(v float32) uint8
}

// Gamma decodes with (raw/255)^(1/g) and encodes with round(v^g * 255).
type Gamma float32

func (g Gamma) Decode(raw uint8) float32 {
	return float32(math.Pow(float64(raw)/255.0, 1.0/float64(g)))
}

func (g Gamma) Encode(v float32) uint8 {
	return clip8(math.Pow(float64(Clamp(v)), float64(g)))
}

type srgb struct{}

// SRGB returns the piecewise sRGB transfer curve.
func SRGB() Func { return srgb{} }

func (srgb) Decode(raw uint8) float32 {
	r, _, _ := colorful.Color{R: float64(raw) / 255.0}.LinearRgb()
	return float32(r)
}

func (srgb) Encode(v float32) uint8 {
	return clip8(colorful.LinearRgb(float64(Clamp(v)), 0, 0).R)
}

// Clamp limits v to [0,1].
func Clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func clip8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255.0))
}

// ColorToRGBBatch decodes pixels into the planar r, g, b slices.
// Alpha is dropped.
func ColorToRGBBatch(pixels []color.Color, r, g, b []float32, tf Func) {
	for i, pixel := range pixels {
		c := color.NRGBAModel.Convert(pixel).(color.NRGBA)
		r[i] = tf.Decode(c.R)
		g[i] = tf.Decode(c.G)
		b[i] = tf.Decode(c.B)
	}
}

// RGBToRGBA8Batch encodes planar channels into interleaved opaque RGBA8.
func RGBToRGBA8Batch(r, g, b []float32, pix []byte, tf Func) {
	for i := range r {
		o := i * 4
		pix[o+0] = tf.Encode(r[i])
		pix[o+1] = tf.Encode(g[i])
		pix[o+2] = tf.Encode(b[i])
		pix[o+3] = 0xff
	}
}
