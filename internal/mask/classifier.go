package mask

import (
	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
)

// DefaultThreshold is the red level at or above which a mask pixel is inside.
const DefaultThreshold = 0.99

// Classifier answers whether a mask-local pixel belongs to the blend region.
type Classifier struct {
	width, height int
	bits          *bitstream.BitReader[uint64]
}

// NewClassifier thresholds the red channel of m once and keeps one bit per pixel.
func NewClassifier(m *pixel.Image, threshold float32) *Classifier {
	w := bitstream.NewBitWriter[uint64](0, 0)
	red := m.Channel(0)
	for _, v := range red {
		w.WriteBool(v >= threshold)
	}
	reader := bitstream.NewBitReader(w.Data(), 0, 0)
	reader.SetBits(w.Bits())
	return &Classifier{
		width:  m.Width(),
		height: m.Height(),
		bits:   reader,
	}
}

func (c *Classifier) Width() int  { return c.width }
func (c *Classifier) Height() int { return c.height }

// IsMask reports whether (x, y) is inside the blend region.
// Coordinates outside the mask rectangle are never inside.
func (c *Classifier) IsMask(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	bit, err := c.bits.ReadBitAt(c.width*y + x)
	if err != nil {
		return false
	}
	return bit
}
