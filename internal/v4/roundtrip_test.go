package v4

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/types"
)

func TestDoubleRoundTrip(t *testing.T) {
	mv := types.NewNumeric("x", types.Double, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	mv.DataType = types.DKDouble

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, mv, binary.LittleEndian))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].Name)
	assert.Equal(t, []int{2, 3}, out[0].Dims())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out[0].Numeric.Real)
}

func TestComplexDoubleRoundTrip(t *testing.T) {
	mv := types.NewNumericComplex("z", types.Double, []int{2, 1}, []float64{1, 2}, []float64{3, 4})
	mv.DataType = types.DKDouble

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, mv, binary.LittleEndian))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsComplex)
	assert.Equal(t, []float64{1, 2}, out[0].Numeric.Real)
	assert.Equal(t, []float64{3, 4}, out[0].Numeric.Imag)
}

func TestBigEndianRoundTrip(t *testing.T) {
	mv := types.NewNumeric("be", types.Double, []int{1, 2}, []float64{9, 8})
	mv.DataType = types.DKDouble

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, mv, binary.BigEndian))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []float64{9, 8}, out[0].Numeric.Real)
}

func TestSparseRoundTrip(t *testing.T) {
	mv := types.NewSparse("sp", 3, 2, 2, []int32{0, 2}, []int32{0, 1, 2}, []float64{5, 7})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, mv, binary.LittleEndian))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Sparse)
	assert.Equal(t, []int{3, 2}, out[0].Dims())
	assert.Equal(t, []int32{0, 2}, out[0].Sparse.IR)
	assert.Equal(t, []float64{5, 7}, out[0].Sparse.Data)
}

func TestMultipleVariablesRoundTrip(t *testing.T) {
	a := types.NewNumeric("a", types.Double, []int{1, 1}, []float64{1})
	b := types.NewNumeric("b", types.Double, []int{1, 1}, []float64{2})
	a.DataType, b.DataType = types.DKDouble, types.DKDouble

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, a, binary.LittleEndian))
	require.NoError(t, Encode(&buf, b, binary.LittleEndian))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}

func TestDecodeMOPTRejectsGarbage(t *testing.T) {
	_, _, err := decodeMOPT([4]byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}
