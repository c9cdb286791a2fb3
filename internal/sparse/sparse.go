package sparse

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Triplet is one coordinate-list entry.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Matrix is a square matrix in compressed sparse row form.
type Matrix struct {
	n      int
	rowPtr []int // len n+1
	cols   []int
	vals   []float64
}

// Build assembles an n×n CSR matrix from triplets. Entries are sorted by
// row then column and duplicates are summed.
func Build(n int, ts []Triplet) (*Matrix, error) {
	for _, t := range ts {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return nil, fmt.Errorf("triplet (%d,%d) out of range for %dx%d", t.Row, t.Col, n, n)
		}
	}
	sorted := slices.Clone(ts)
	slices.SortStableFunc(sorted, func(a, b Triplet) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	m := &Matrix{
		n:      n,
		rowPtr: make([]int, n+1),
		cols:   make([]int, 0, len(sorted)),
		vals:   make([]float64, 0, len(sorted)),
	}
	for i, t := range sorted {
		if i > 0 && sorted[i-1].Row == t.Row && sorted[i-1].Col == t.Col {
			m.vals[len(m.vals)-1] += t.Value
			continue
		}
		m.cols = append(m.cols, t.Col)
		m.vals = append(m.vals, t.Value)
		m.rowPtr[t.Row+1]++
	}
	for r := range n {
		m.rowPtr[r+1] += m.rowPtr[r]
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.n, m.n }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.vals) }

// At returns the entry at (i, j).
func (m *Matrix) At(i, j int) float64 {
	row := m.cols[m.rowPtr[i]:m.rowPtr[i+1]]
	if k, ok := slices.BinarySearch(row, j); ok {
		return m.vals[m.rowPtr[i]+k]
	}
	return 0
}

// DoNonZero calls fn for every stored entry in row-major order.
func (m *Matrix) DoNonZero(fn func(i, j int, v float64)) {
	for i := range m.n {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fn(i, m.cols[k], m.vals[k])
		}
	}
}

// Bandwidth returns the largest |i-j| over stored entries.
func (m *Matrix) Bandwidth() int {
	var k int
	m.DoNonZero(func(i, j int, _ float64) {
		k = max(k, i-j, j-i)
	})
	return k
}

// IsSymmetric reports whether At(i, j) == At(j, i) for every stored entry.
func (m *Matrix) IsSymmetric() bool {
	sym := true
	m.DoNonZero(func(i, j int, v float64) {
		if sym && m.At(j, i) != v {
			sym = false
		}
	})
	return sym
}

// MulVec returns m·x.
func (m *Matrix) MulVec(x []float64) []float64 {
	if len(x) != m.n {
		panic(mat.ErrShape)
	}
	y := make([]float64, m.n)
	m.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
	return y
}

// SymBand copies the upper triangle of a symmetric m into a band matrix.
// m must have at least one row.
func (m *Matrix) SymBand() *mat.SymBandDense {
	k := m.Bandwidth()
	band := mat.NewSymBandDense(m.n, k, nil)
	m.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			band.SetSymBand(i, j, v)
		}
	})
	return band
}
