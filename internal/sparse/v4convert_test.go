package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromV4FlatReal(t *testing.T) {
	// 3x2 sparse with nonzeros at (0,0)=5 and (2,1)=7, 1-based encoding.
	encodedRows := 3 // nnz=2, +1 sentinel row
	buf := []float64{
		1, 3, 3, // col0: ir (1-based), ir, nrows-sentinel
		1, 2, 2, // col1: jc (1-based), jc, ncols-sentinel
		5, 7, 0, // col2: data
	}
	nrows, ncols, ir, jc, data, imag, err := FromV4Flat(buf, encodedRows, false)
	require.NoError(t, err)
	assert.Nil(t, imag)
	assert.Equal(t, 3, nrows)
	assert.Equal(t, 2, ncols)
	assert.Equal(t, []int32{0, 2}, ir)
	assert.Equal(t, []float64{5, 7}, data)
	require.NoError(t, Validate(nrows, ncols, ir, jc))
}

func TestToV4FlatInverse(t *testing.T) {
	ir := []int32{0, 2}
	jc := []int32{0, 1, 2}
	data := []float64{5, 7}
	buf := ToV4Flat(3, 2, ir, jc, data, nil, false)

	nrows, ncols, gotIR, gotJC, gotData, _, err := FromV4Flat(buf, len(ir)+1, false)
	require.NoError(t, err)
	assert.Equal(t, 3, nrows)
	assert.Equal(t, 2, ncols)
	assert.Equal(t, ir, gotIR)
	assert.Equal(t, jc, gotJC)
	assert.Equal(t, data, gotData)
}

func TestValidateRejectsBadJC(t *testing.T) {
	err := Validate(3, 2, []int32{0, 1}, []int32{1, 1, 2})
	assert.Error(t, err)
}

func TestValidateRejectsOutOfRangeIR(t *testing.T) {
	err := Validate(2, 1, []int32{5}, []int32{0, 1})
	assert.Error(t, err)
}
