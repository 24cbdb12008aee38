package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumeric(t *testing.T) {
	mv := NewNumeric("x", Double, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []int{2, 3}, mv.Dims())
	assert.Equal(t, 6, mv.Size())
	assert.Equal(t, DKDouble, mv.ElementType())
	assert.False(t, mv.IsComplex)
	assert.Equal(t, "x: double[2 3]", mv.String())
}

func TestNewNumericComplex(t *testing.T) {
	mv := NewNumericComplex("z", Single, []int{2}, []float32{1, 2}, []float32{3, 4})
	assert.True(t, mv.IsComplex)
	require.NotNil(t, mv.Numeric.Imag)
	assert.Equal(t, []float32{3, 4}, mv.Numeric.Imag)
}

func TestNewLogical(t *testing.T) {
	mv := NewLogical("mask", []int{3}, []byte{1, 0, 1})
	assert.True(t, mv.IsLogical)
	assert.Equal(t, Uint8, mv.Class)
}

func TestNewEmptyDouble(t *testing.T) {
	mv := NewEmptyDouble()
	assert.Equal(t, 0, mv.Size())
	assert.Equal(t, []int{0, 0}, mv.Dims())
}

func TestStructFieldAccess(t *testing.T) {
	s := NewStruct("s", []string{"a", "b"}, []int{1, 3})
	require.NoError(t, s.SetStructField(0, 0, NewNumeric("", Double, []int{1}, []float64{1})))
	require.NoError(t, s.SetStructField(1, 0, NewNumeric("", Double, []int{1}, []float64{2})))
	require.NoError(t, s.SetStructField(0, 1, NewNumeric("", Double, []int{1}, []float64{3})))

	got, err := s.GetStructField(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got.Numeric.Real)

	got, err = s.GetStructField(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got.Numeric.Real)

	// element 2's fields were never set, so both remain the empty-double
	// placeholder NewStruct pre-fills.
	got, err = s.GetStructField(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Size())
}

func TestStructFieldOutOfRange(t *testing.T) {
	s := NewStruct("s", []string{"a"}, []int{1, 1})

	_, err := s.GetStructField(1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = s.GetStructField(0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = s.SetStructField(0, 1, NewEmptyDouble())
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSetStructFieldOnNonStruct(t *testing.T) {
	mv := NewNumeric("x", Double, []int{1}, []float64{1})
	err := mv.SetStructField(0, 0, NewEmptyDouble())
	assert.ErrorIs(t, err, ErrInvalidMAT)
}

func TestCellAccess(t *testing.T) {
	c := NewCell("c", []int{2, 2})
	require.NoError(t, c.SetCell(0, NewNumeric("", Double, []int{1}, []float64{9})))
	assert.Equal(t, []float64{9}, c.Cell[0].Numeric.Real)
	// untouched slots stay the NewEmptyDouble placeholder.
	assert.Equal(t, 0, c.Cell[1].Size())

	err := c.SetCell(4, NewEmptyDouble())
	assert.ErrorIs(t, err, ErrOutOfRange)

	mv := NewNumeric("x", Double, []int{1}, []float64{1})
	err = mv.SetCell(0, NewEmptyDouble())
	assert.ErrorIs(t, err, ErrInvalidMAT)
}

func TestNewSparse(t *testing.T) {
	mv := NewSparse("sp", 3, 3, 2, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{5, 7})
	assert.Equal(t, Sparse, mv.Class)
	assert.Equal(t, []int{3, 3}, mv.Dims())
	require.NotNil(t, mv.Sparse)
	assert.Equal(t, 2, mv.Sparse.NZMax)
}

func TestProd(t *testing.T) {
	assert.Equal(t, 0, Prod(nil))
	assert.Equal(t, 0, Prod([]int{}))
	assert.Equal(t, 6, Prod([]int{2, 3}))
	assert.Equal(t, 0, Prod([]int{0, 5}))
}

func TestClassKindIsNumeric(t *testing.T) {
	assert.True(t, Double.IsNumeric())
	assert.True(t, Uint64.IsNumeric())
	assert.False(t, Char.IsNumeric())
	assert.False(t, Cell.IsNumeric())
	assert.False(t, Struct.IsNumeric())
}

func TestDataKindSizeOf(t *testing.T) {
	assert.Equal(t, 1, SizeOf(DKInt8))
	assert.Equal(t, 2, SizeOf(DKUint16))
	assert.Equal(t, 4, SizeOf(DKSingle))
	assert.Equal(t, 8, SizeOf(DKDouble))
}

func TestDataKindSizeOfPanicsOnVariableLength(t *testing.T) {
	assert.Panics(t, func() { SizeOf(DKMatrix) })
	assert.Panics(t, func() { SizeOf(DKCellMarker) })
}

func TestDefaultDataType(t *testing.T) {
	assert.Equal(t, DKDouble, DefaultDataType(Double))
	assert.Equal(t, DKUTF16, DefaultDataType(Char))
	assert.Equal(t, DKCellMarker, DefaultDataType(Cell))
	assert.Equal(t, DKStructMarker, DefaultDataType(Struct))
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(Double, DKDouble))
	assert.True(t, Compatible(Double, DKInt32))
	assert.False(t, Compatible(Double, DKCellMarker))

	assert.True(t, Compatible(Char, DKUTF16))
	assert.True(t, Compatible(Char, DKUint16))
	assert.False(t, Compatible(Char, DKDouble))

	assert.True(t, Compatible(Sparse, DKDouble))
	assert.True(t, Compatible(Sparse, DKUint8))
	assert.False(t, Compatible(Sparse, DKInt32))

	assert.True(t, Compatible(Cell, DKCellMarker))
	assert.False(t, Compatible(Cell, DKStructMarker))

	assert.True(t, Compatible(Struct, DKStructMarker))
	assert.False(t, Compatible(Struct, DKCellMarker))
}

func TestHostValueShapes(t *testing.T) {
	var hv HostValue = Null{Dims: []int{0, 0}}
	assert.Equal(t, []int{0, 0}, hv.Shape())

	hv = Real64{Dims: []int{2, 2}, Data: []float64{1, 2, 3, 4}}
	assert.Equal(t, []int{2, 2}, hv.Shape())

	hv = Str{Value: "hello"}
	assert.Nil(t, hv.Shape())

	hv = SparseValue{Rows: 3, Cols: 4}
	assert.Equal(t, []int{3, 4}, hv.Shape())
}

func TestHostValueStringers(t *testing.T) {
	assert.Contains(t, Str{Value: "hi"}.String(), "hi")
	assert.Contains(t, List{Names: []string{"a"}}.String(), "named=true")
	assert.Contains(t, List{}.String(), "named=false")
}

func TestErrorsAreWrappable(t *testing.T) {
	wrapped := errors.New("outer")
	_ = wrapped
	mv := NewNumeric("x", Double, []int{1}, []float64{1})
	err := mv.SetCell(0, nil)
	assert.True(t, errors.Is(err, ErrInvalidMAT))
}
