package v5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/internal/stream"
	"github.com/scigolib/matcore/types"
)

func encodeDecode(t *testing.T, mv *types.MatVar, compress bool) *types.MatVar {
	t.Helper()
	var buf bytes.Buffer
	w := stream.NewWriter(&buf, littleEndianForTest())
	require.NoError(t, Encode(w, mv, compress))

	r := stream.NewReader(bytes.NewReader(buf.Bytes()), littleEndianForTest())
	out, err := Decode(r)
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

func TestNumericRoundTrip(t *testing.T) {
	mv := types.NewNumeric("x", types.Double, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	got := encodeDecode(t, mv, false)
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, []int{2, 3}, got.Dims())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Numeric.Real)
}

func TestNumericRoundTripCompressed(t *testing.T) {
	mv := types.NewNumeric("y", types.Int32, []int{4}, []int32{10, 20, 30, 40})
	got := encodeDecode(t, mv, true)
	assert.Equal(t, []int32{10, 20, 30, 40}, got.Numeric.Real)
}

func TestComplexRoundTrip(t *testing.T) {
	mv := types.NewNumericComplex("z", types.Double, []int{2}, []float64{1, 2}, []float64{3, 4})
	got := encodeDecode(t, mv, false)
	assert.True(t, got.IsComplex)
	assert.Equal(t, []float64{1, 2}, got.Numeric.Real)
	assert.Equal(t, []float64{3, 4}, got.Numeric.Imag)
}

func TestLogicalRoundTrip(t *testing.T) {
	mv := types.NewLogical("mask", []int{3}, []byte{1, 0, 1})
	got := encodeDecode(t, mv, false)
	assert.True(t, got.IsLogical)
	assert.Equal(t, []uint8{1, 0, 1}, got.Numeric.Real)
}

func TestCellRoundTrip(t *testing.T) {
	c := types.NewCell("c", []int{2})
	require.NoError(t, c.SetCell(0, types.NewNumeric("", types.Double, []int{1}, []float64{9})))
	require.NoError(t, c.SetCell(1, types.NewNumeric("", types.Double, []int{1}, []float64{8})))

	got := encodeDecode(t, c, false)
	require.Len(t, got.Cell, 2)
	assert.Equal(t, []float64{9}, got.Cell[0].Numeric.Real)
	assert.Equal(t, []float64{8}, got.Cell[1].Numeric.Real)
}

func TestStructRoundTrip(t *testing.T) {
	s := types.NewStruct("s", []string{"a", "b"}, []int{1, 2})
	require.NoError(t, s.SetStructField(0, 0, types.NewNumeric("", types.Double, []int{1}, []float64{1})))
	require.NoError(t, s.SetStructField(1, 0, types.NewNumeric("", types.Double, []int{1}, []float64{2})))
	require.NoError(t, s.SetStructField(0, 1, types.NewNumeric("", types.Double, []int{1}, []float64{3})))
	require.NoError(t, s.SetStructField(1, 1, types.NewNumeric("", types.Double, []int{1}, []float64{4})))

	got := encodeDecode(t, s, false)
	require.NotNil(t, got.Struct)
	assert.Equal(t, []string{"a", "b"}, got.Struct.FieldNames)

	f, err := got.GetStructField(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, f.Numeric.Real)
}

func TestSparseRoundTrip(t *testing.T) {
	mv := types.NewSparse("sp", 3, 3, 2, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{5, 7})
	got := encodeDecode(t, mv, false)
	require.NotNil(t, got.Sparse)
	assert.Equal(t, []int{3, 3}, got.Dims())
	assert.Equal(t, []int32{0, 2}, got.Sparse.IR)
	assert.Equal(t, []int32{0, 1, 1, 2}, got.Sparse.JC)
	assert.Equal(t, []float64{5, 7}, got.Sparse.Data)
}

func TestSparseLogicalRoundTrip(t *testing.T) {
	ir := []int32{0, 3, 2}
	jc := []int32{0, 1, 1, 1, 2}
	mv := types.NewSparse("spmask", 4, 4, 3, ir, jc, []bool{true, true, true})
	mv.IsLogical = true
	got := encodeDecode(t, mv, false)
	require.NotNil(t, got.Sparse)
	assert.True(t, got.IsLogical)
	assert.Equal(t, []int{4, 4}, got.Dims())
	assert.Equal(t, ir, got.Sparse.IR)
	assert.Equal(t, jc, got.Sparse.JC)
	assert.Equal(t, []bool{true, true, true}, got.Sparse.Data)
}

func TestMultipleVariablesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf, littleEndianForTest())
	a := types.NewNumeric("a", types.Double, []int{1}, []float64{1})
	b := types.NewNumeric("b", types.Double, []int{1}, []float64{2})
	require.NoError(t, Encode(w, a, false))
	require.NoError(t, Encode(w, b, true))

	r := stream.NewReader(bytes.NewReader(buf.Bytes()), littleEndianForTest())
	out, err := Decode(r)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}
