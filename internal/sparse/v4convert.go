package sparse

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// FromV4Flat converts a v4 sparse element's flat column-major double
// buffer into CSC form. The buffer holds encodedRows rows by either 3
// columns (real) or 4 (complex): column 0 is 1-based row indices (with
// the final entry instead holding the true row count), column 1 is
// 1-based column indices (final entry holds true column count), column 2
// is the real data, column 3 (if complex) the imaginary data — the exact
// layout matio's Read4/MAT_C_SPARSE case expects.
func FromV4Flat(buf []float64, encodedRows int, isComplex bool) (nrows, ncols int, ir, jc []int32, data, imag []float64, err error) {
	if encodedRows < 1 {
		return 0, 0, nil, nil, nil, nil, fmt.Errorf("%w: v4 sparse element has %d encoded rows, want >=1", types.ErrInvalidMAT, encodedRows)
	}
	nnz := encodedRows - 1
	cols := 3
	if isComplex {
		cols = 4
	}
	if len(buf) != encodedRows*cols {
		return 0, 0, nil, nil, nil, nil, fmt.Errorf("%w: v4 sparse buffer has %d elements, want %d", types.ErrInvalidMAT, len(buf), encodedRows*cols)
	}

	ir = make([]int32, nnz)
	data = make([]float64, nnz)
	if isComplex {
		imag = make([]float64, nnz)
	}

	ncols = int(buf[2*encodedRows-1])
	jc = make([]int32, ncols+1)

	for i := 0; i < nnz; i++ {
		ir[i] = int32(buf[i]) - 1
		j := int(buf[encodedRows+i]) - 1
		if j != 0 && jc[j] == 0 {
			jc[j] = int32(i)
		}
		data[i] = buf[2*encodedRows+i]
		if isComplex {
			imag[i] = buf[3*encodedRows+i]
		}
	}

	jc[ncols] = int32(nnz)
	for i := ncols - 1; i > 0; i-- {
		if jc[i] == 0 {
			jc[i] = jc[i+1]
		}
	}

	nrows = int(buf[encodedRows-1])
	return nrows, ncols, ir, jc, data, imag, nil
}

// ToV4Flat is FromV4Flat's inverse, used by the v4 writer.
func ToV4Flat(nrows, ncols int, ir, jc []int32, data, imag []float64, isComplex bool) []float64 {
	nnz := len(ir)
	encodedRows := nnz + 1
	cols := 3
	if isComplex {
		cols = 4
	}
	buf := make([]float64, encodedRows*cols)

	for i := 0; i < nnz; i++ {
		buf[i] = float64(ir[i] + 1)
		buf[2*encodedRows+i] = data[i]
		if isComplex {
			buf[3*encodedRows+i] = imag[i]
		}
	}
	// column index per nonzero, derived from jc's run lengths.
	col := 0
	for i := 0; i < nnz; i++ {
		for col < ncols && int32(i) >= jc[col+1] {
			col++
		}
		buf[encodedRows+i] = float64(col + 1)
	}

	buf[encodedRows-1] = float64(nrows)
	buf[2*encodedRows-1] = float64(ncols)
	return buf
}
