package blend

import (
	"github.com/yyyoichi/poisson_blend/internal/mask"
	"github.com/yyyoichi/poisson_blend/internal/pixel"
	"github.com/yyyoichi/poisson_blend/internal/sparse"
)

// neighbours in the order up, right, down, left.
var neighbours = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// AssembleMatrix builds the discrete Laplacian over the unknowns of idx.
// Row r belongs to unknown r. Every row has 4 on the diagonal and -1 for
// each neighbour that is also unknown; other neighbours are boundary values
// and go to the right-hand side instead.
func AssembleMatrix(idx *mask.Index) (*sparse.Matrix, error) {
	n := idx.Len()
	ts := make([]sparse.Triplet, 0, n*5)
	for row := range n {
		x, y := idx.Pos(row)
		ts = append(ts, sparse.Triplet{Row: row, Col: row, Value: 4})
		for _, d := range neighbours {
			if col := idx.ID(x+d[0], y+d[1]); col >= 0 {
				ts = append(ts, sparse.Triplet{Row: row, Col: col, Value: -1})
			}
		}
	}
	return sparse.Build(n, ts)
}

// AssembleRHS builds the right-hand side for channel c.
//
// Each entry is the sum of source differences to the four neighbours plus
// the target value of every neighbour outside the mask. Source reads beyond
// the source rectangle are 0.
func AssembleRHS(c int, idx *mask.Index, source, target *pixel.Image, mx, my int) []float64 {
	n := idx.Len()
	b := make([]float64, n)
	sourceAt := func(x, y int) float32 {
		if !source.In(x, y) {
			return 0
		}
		return source.At(c, x, y)
	}
	for row := range n {
		x, y := idx.Pos(row)
		v := sourceAt(x, y)
		var grad, boundary float32
		for _, d := range neighbours {
			qx, qy := x+d[0], y+d[1]
			grad += v - sourceAt(qx, qy)
			if idx.ID(qx, qy) < 0 {
				boundary += target.At(c, qx+mx, qy+my)
			}
		}
		b[row] = float64(grad) + float64(boundary)
	}
	return b
}
