package solver

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/poisson_blend/internal/sparse"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotPositiveDefinite = errors.New("matrix is not positive definite")
	ErrNotFactorized       = errors.New("solver has no factorization")
)

// Cholesky solves symmetric positive definite sparse systems through a
// banded Cholesky factor. One factorization serves any number of
// right-hand sides, and Solve may be called from several goroutines.
type Cholesky struct {
	n, k int
	chol *mat.BandCholesky
}

func New() *Cholesky {
	return &Cholesky{}
}

// Factorize computes the factor of m. m must be square and symmetric.
func (c *Cholesky) Factorize(m *sparse.Matrix) error {
	n, _ := m.Dims()
	if n == 0 {
		c.n, c.k, c.chol = 0, 0, nil
		return nil
	}
	band := m.SymBand()
	_, k := band.SymBand()
	var chol mat.BandCholesky
	if ok := chol.Factorize(band); !ok {
		c.chol = nil
		return fmt.Errorf("%w: %dx%d band %d", ErrNotPositiveDefinite, n, n, k)
	}
	c.n, c.k = n, k
	c.chol = &chol
	return nil
}

// Bandwidth returns the half bandwidth of the factorized matrix.
func (c *Cholesky) Bandwidth() int { return c.k }

// Solve returns x with M·x = b.
func (c *Cholesky) Solve(b []float64) ([]float64, error) {
	if c.n == 0 && len(b) == 0 {
		return []float64{}, nil
	}
	if c.chol == nil {
		return nil, ErrNotFactorized
	}
	if len(b) != c.n {
		return nil, fmt.Errorf("rhs length %d, want %d", len(b), c.n)
	}
	var x mat.VecDense
	if err := c.chol.SolveVecTo(&x, mat.NewVecDense(c.n, b)); err != nil {
		return nil, fmt.Errorf("cannot solve: %w", err)
	}
	return x.RawVector().Data, nil
}
