package pixel

import (
	"image"
	"image/color"

	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

// Image is a decoded picture in the working color space.
type Image struct {
	width, height int
	area          int

	// R[]float32, G[]float32, B[]float32
	colors [3][]float32
}

// New returns a black image of the given size.
func New(width, height int) *Image {
	area := width * height
	return &Image{
		width:  width,
		height: height,
		area:   area,
		colors: [3][]float32{
			make([]float32, area), // R
			make([]float32, area), // G
			make([]float32, area), // B
		},
	}
}

// FromImage decodes src with tf. The result is anchored at (0,0)
// regardless of src.Bounds().Min.
func FromImage(src image.Image, tf transfer.Func) *Image {
	bounds := src.Bounds()
	img := New(bounds.Dx(), bounds.Dy())

	pixels := make([]color.Color, img.area)
	idx := 0
	for y := range img.height {
		for x := range img.width {
			pixels[idx] = src.At(bounds.Min.X+x, bounds.Min.Y+y)
			idx++
		}
	}
	transfer.ColorToRGBBatch(pixels, img.colors[0], img.colors[1], img.colors[2], tf)
	return img
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool { return img == nil || img.area == 0 }

// In reports whether (x, y) lies inside the image.
func (img *Image) In(x, y int) bool {
	return 0 <= x && x < img.width && 0 <= y && y < img.height
}

// Flatten returns the row-major offset of (x, y).
func (img *Image) Flatten(x, y int) int {
	return img.width*y + x
}

// At returns channel c at (x, y). The caller guarantees bounds.
func (img *Image) At(c, x, y int) float32 {
	return img.colors[c][img.Flatten(x, y)]
}

// Set writes channel c at (x, y).
func (img *Image) Set(c, x, y int, v float32) {
	img.colors[c][img.Flatten(x, y)] = v
}

// Fill sets every pixel to (r, g, b).
func (img *Image) Fill(r, g, b float32) {
	for i := range img.area {
		img.colors[0][i] = r
		img.colors[1][i] = g
		img.colors[2][i] = b
	}
}

// Channel exposes the backing slice of channel c.
func (img *Image) Channel(c int) []float32 {
	return img.colors[c]
}

// Encode returns the image as interleaved, fully opaque RGBA8.
func (img *Image) Encode(tf transfer.Func) []byte {
	pix := make([]byte, img.area*4)
	transfer.RGBToRGBA8Batch(img.colors[0], img.colors[1], img.colors[2], pix, tf)
	return pix
}

// Build wraps an interleaved RGBA8 buffer as an image.RGBA.
// pix is used without copying.
func Build(width, height int, pix []byte) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
