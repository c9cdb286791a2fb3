package blend

import (
	"github.com/yyyoichi/poisson_blend/internal/mask"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
	"github.com/yyyoichi/poisson_blend/internal/transfer"
)

// Composite encodes target as opaque RGBA8 and overwrites the colour of
// every unknown with its clamped solution.
func Composite(target *pixel.Image, idx *mask.Index, solutions [3][]float64, mx, my int, tf transfer.Func) []byte {
	pix := target.Encode(tf)
	for id := range idx.Len() {
		x, y := idx.Pos(id)
		o := target.Flatten(x+mx, y+my) * 4
		for c := range 3 {
			pix[o+c] = tf.Encode(float32(solutions[c][id]))
		}
	}
	return pix
}
