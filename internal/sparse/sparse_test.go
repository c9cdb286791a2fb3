package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m, err := Build(3, []Triplet{
		{2, 2, 4},
		{0, 1, -1},
		{0, 0, 4},
		{1, 0, -1},
		{1, 1, 3},
		{1, 1, 1}, // summed with the entry above
		{2, 0, 5},
	})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.NNZ())

	want := [3][3]float64{
		{4, -1, 0},
		{-1, 4, 0},
		{5, 0, 4},
	}
	for i := range 3 {
		for j := range 3 {
			assert.Equal(t, want[i][j], m.At(i, j), "(%d,%d)", i, j)
		}
	}

	var order [][2]int
	m.DoNonZero(func(i, j int, _ float64) {
		order = append(order, [2]int{i, j})
	})
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 2}}, order)

	assert.Equal(t, 2, m.Bandwidth())
	assert.False(t, m.IsSymmetric())
	assert.Equal(t, []float64{2, 7, 17}, m.MulVec([]float64{1, 2, 3}))
}

func TestBuildOutOfRange(t *testing.T) {
	_, err := Build(2, []Triplet{{0, 2, 1}})
	assert.Error(t, err)
	_, err = Build(2, []Triplet{{-1, 0, 1}})
	assert.Error(t, err)
}

func TestBuildEmpty(t *testing.T) {
	m, err := Build(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
	assert.Equal(t, 0, m.Bandwidth())
	assert.True(t, m.IsSymmetric())
}

func TestSymBand(t *testing.T) {
	// 1-D Laplacian with one long-range coupling
	ts := []Triplet{
		{0, 0, 4}, {1, 1, 4}, {2, 2, 4}, {3, 3, 4}, {4, 4, 4},
		{0, 1, -1}, {1, 0, -1},
		{1, 2, -1}, {2, 1, -1},
		{2, 3, -1}, {3, 2, -1},
		{3, 4, -1}, {4, 3, -1},
		{0, 3, -1}, {3, 0, -1},
	}
	m, err := Build(5, ts)
	require.NoError(t, err)
	require.True(t, m.IsSymmetric())

	band := m.SymBand()
	n, k := band.SymBand()
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, k)
	for i := range 5 {
		for j := range 5 {
			assert.Equal(t, m.At(i, j), band.At(i, j), "(%d,%d)", i, j)
		}
	}
}
