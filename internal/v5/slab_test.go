package v5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/types"
)

func TestReadSlab2D(t *testing.T) {
	// column-major 3x3: columns are [1 2 3], [4 5 6], [7 8 9]
	mv := types.NewNumeric("m", types.Double, []int{3, 3},
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	got, err := ReadSlab(mv, Slab{Start: []int{1, 1}, Stride: []int{1, 1}, Edge: []int{2, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got.Dims())
	assert.Equal(t, []float64{5, 6, 8, 9}, got.Numeric.Real)
}

func TestReadSlabStride(t *testing.T) {
	mv := types.NewNumeric("v", types.Double, []int{6}, []float64{0, 1, 2, 3, 4, 5})
	got, err := ReadSlab(mv, Slab{Start: []int{0}, Stride: []int{2}, Edge: []int{3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4}, got.Numeric.Real)
}

func TestReadSlabOutOfRange(t *testing.T) {
	mv := types.NewNumeric("v", types.Double, []int{3}, []float64{0, 1, 2})
	_, err := ReadSlab(mv, Slab{Start: []int{2}, Stride: []int{1}, Edge: []int{2}})
	assert.ErrorIs(t, err, errOutOfRange())
}
