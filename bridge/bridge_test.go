package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/types"
)

func TestNumericRoundTrip(t *testing.T) {
	mv := types.NewNumeric("x", types.Double, []int{2, 2}, []float64{1, 2, 3, 4})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	r, ok := hv.(types.Real64)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 4}, r.Data)

	back, err := FromHostValue("x", r)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, back.Numeric.Real)
}

func TestComplexToHost(t *testing.T) {
	mv := types.NewNumericComplex("z", types.Double, []int{2}, []float64{1, 2}, []float64{3, 4})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	c, ok := hv.(types.ComplexVec)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 4}, c.Imag)
}

func TestLogicalToHost(t *testing.T) {
	mv := types.NewLogical("mask", []int{3}, []byte{1, 0, 1})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	b, ok := hv.(types.BoolVec)
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, b.Data)
}

func TestEmptyToNull(t *testing.T) {
	hv, err := ToHostValue(types.NewEmptyDouble())
	require.NoError(t, err)
	_, ok := hv.(types.Null)
	assert.True(t, ok)

	back, err := FromHostValue("", types.Null{Dims: []int{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, back.Size())
}

func TestCharSingleRowToStr(t *testing.T) {
	mv := types.NewNumeric("s", types.Char, []int{1, 5}, []uint16{'h', 'e', 'l', 'l', 'o'})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	s, ok := hv.(types.Str)
	require.True(t, ok)
	assert.Equal(t, "hello", s.Value)

	back, err := FromHostValue("s", s)
	require.NoError(t, err)
	assert.Equal(t, types.Char, back.Class)
}

func TestCharMultiRowToStrArray(t *testing.T) {
	// column-major 2x2 char matrix: rows "ab" and "cd"
	// stored as columns ['a','c'], ['b','d']
	mv := types.NewNumeric("rows", types.Char, []int{2, 2}, []uint16{'a', 'c', 'b', 'd'})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	sa, ok := hv.(types.StrArray)
	require.True(t, ok)
	assert.Equal(t, []string{"ab", "cd"}, sa.Values)

	back, err := FromHostValue("rows", sa)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, back.Dims())
}

func TestCellRoundTrip(t *testing.T) {
	c := types.NewCell("c", []int{2})
	require.NoError(t, c.SetCell(0, types.NewNumeric("", types.Double, []int{1}, []float64{1})))
	require.NoError(t, c.SetCell(1, types.NewNumeric("", types.Double, []int{1}, []float64{2})))

	hv, err := ToHostValue(c)
	require.NoError(t, err)
	l, ok := hv.(types.List)
	require.True(t, ok)
	assert.Nil(t, l.Names)
	require.Len(t, l.Values, 2)

	back, err := FromHostValue("c", l)
	require.NoError(t, err)
	assert.Equal(t, types.Cell, back.Class)
}

func TestScalarStructRoundTrip(t *testing.T) {
	s := types.NewStruct("s", []string{"a", "b"}, []int{1, 1})
	require.NoError(t, s.SetStructField(0, 0, types.NewNumeric("", types.Double, []int{1}, []float64{1})))
	require.NoError(t, s.SetStructField(1, 0, types.NewNumeric("", types.Double, []int{1}, []float64{2})))

	hv, err := ToHostValue(s)
	require.NoError(t, err)
	l, ok := hv.(types.List)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, l.Names)

	back, err := FromHostValue("s", l)
	require.NoError(t, err)
	assert.Equal(t, types.Struct, back.Class)
	assert.Equal(t, []string{"a", "b"}, back.Struct.FieldNames)
}

func TestStructArrayRoundTrip(t *testing.T) {
	s := types.NewStruct("s", []string{"a"}, []int{1, 2})
	require.NoError(t, s.SetStructField(0, 0, types.NewNumeric("", types.Double, []int{1}, []float64{1})))
	require.NoError(t, s.SetStructField(0, 1, types.NewNumeric("", types.Double, []int{1}, []float64{2})))

	hv, err := ToHostValue(s)
	require.NoError(t, err)
	l, ok := hv.(types.List)
	require.True(t, ok)
	assert.Nil(t, l.Names)
	require.Len(t, l.Values, 2)

	back, err := FromHostValue("s", l)
	require.NoError(t, err)
	assert.Equal(t, types.Struct, back.Class)
	assert.Equal(t, []int{1, 2}, back.Dims())
	f, err := back.GetStructField(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, f.Numeric.Real)
}

func TestSparseRoundTrip(t *testing.T) {
	mv := types.NewSparse("sp", 3, 3, 2, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{5, 7})
	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	sv, ok := hv.(types.SparseValue)
	require.True(t, ok)
	assert.Equal(t, 3, sv.Rows)

	back, err := FromHostValue("sp", sv)
	require.NoError(t, err)
	assert.Equal(t, types.Sparse, back.Class)
}

func TestSparseLogicalRoundTrip(t *testing.T) {
	// 4x4, nonzeros at (0,0), (3,1), (2,3), all true.
	mv := types.NewSparse("spmask", 4, 4, 3, []int32{0, 3, 2}, []int32{0, 1, 1, 1, 2}, []bool{true, true, true})
	mv.IsLogical = true

	hv, err := ToHostValue(mv)
	require.NoError(t, err)
	sv, ok := hv.(types.SparseValue)
	require.True(t, ok)
	assert.True(t, sv.Logical)
	assert.Equal(t, []float64{1, 1, 1}, sv.Data)

	back, err := FromHostValue("spmask", sv)
	require.NoError(t, err)
	assert.True(t, back.IsLogical)
	assert.Equal(t, []bool{true, true, true}, back.Sparse.Data)
}

func TestRaggedCellFromList(t *testing.T) {
	// [[1.0, 2.0], [10.0, 20.0, 30.0]]: inner_len 2 vs 3, so the outer cell's
	// elements become CELLs of their own, rather than a flat 2xN numeric.
	item := func(v float64) types.HostValue { return types.Real64{Dims: []int{1, 1}, Data: []float64{v}} }
	l := types.List{Values: []types.HostValue{
		types.List{Values: []types.HostValue{item(1), item(2)}},
		types.List{Values: []types.HostValue{item(10), item(20), item(30)}},
	}}
	back, err := FromHostValue("r", l)
	require.NoError(t, err)
	assert.Equal(t, types.Cell, back.Class)
	require.Len(t, back.Cell, 2)

	assert.Equal(t, types.Cell, back.Cell[0].Class)
	require.Len(t, back.Cell[0].Cell, 2)
	assert.Equal(t, []float64{1}, back.Cell[0].Cell[0].Numeric.Real)
	assert.Equal(t, []float64{2}, back.Cell[0].Cell[1].Numeric.Real)

	assert.Equal(t, types.Cell, back.Cell[1].Class)
	require.Len(t, back.Cell[1].Cell, 3)
	assert.Equal(t, []float64{10}, back.Cell[1].Cell[0].Numeric.Real)
	assert.Equal(t, []float64{20}, back.Cell[1].Cell[1].Numeric.Real)
	assert.Equal(t, []float64{30}, back.Cell[1].Cell[2].Numeric.Real)
}

func TestEmptyListToEmptyCell(t *testing.T) {
	back, err := FromHostValue("empty", types.List{})
	require.NoError(t, err)
	assert.Equal(t, types.Cell, back.Class)
	assert.Equal(t, []int{0, 0}, back.Dims())
}
