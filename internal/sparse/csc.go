// Package sparse holds the compressed-column (CSC) validation and the
// v4-flat-buffer<->CSC conversion shared by the v4 and v5 codecs, ported
// from matio's mat4.c ReadData/MAT_C_SPARSE case.
package sparse

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// Validate checks a CSC triple is internally consistent: jc has ncols+1
// monotonically non-decreasing entries starting at 0 and ending at nnz,
// and every row index in ir is within [0, nrows).
func Validate(nrows, ncols int, ir, jc []int32) error {
	if len(jc) != ncols+1 {
		return fmt.Errorf("%w: jc length %d does not match ncols+1=%d", types.ErrInvalidMAT, len(jc), ncols+1)
	}
	if jc[0] != 0 {
		return fmt.Errorf("%w: jc[0]=%d, want 0", types.ErrInvalidMAT, jc[0])
	}
	for i := 1; i < len(jc); i++ {
		if jc[i] < jc[i-1] {
			return fmt.Errorf("%w: jc not non-decreasing at index %d (%d < %d)", types.ErrInvalidMAT, i, jc[i], jc[i-1])
		}
	}
	nnz := int(jc[len(jc)-1])
	if nnz != len(ir) {
		return fmt.Errorf("%w: jc implies %d nonzeros but ir has %d entries", types.ErrInvalidMAT, nnz, len(ir))
	}
	for i, r := range ir {
		if r < 0 || int(r) >= nrows {
			return fmt.Errorf("%w: ir[%d]=%d out of range [0,%d)", types.ErrOutOfRange, i, r, nrows)
		}
	}
	return nil
}
