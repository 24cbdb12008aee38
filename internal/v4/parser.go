package v4

import (
	"errors"
	"fmt"
	"io"

	"github.com/scigolib/matcore/internal/sparse"
	"github.com/scigolib/matcore/types"
)

// Decode reads every variable from r until EOF. Each variable re-detects
// its own byte order from its MOPT header, the same per-variable
// tolerance mat4.c's Mat_VarReadNextInfo4 shows (v4 predates any
// file-level endian indicator).
func Decode(r io.Reader) ([]*types.MatVar, error) {
	var out []*types.MatVar
	for {
		mv, err := decodeOne(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, nil
}

func readInt32(r io.Reader, order interface{ Uint32([]byte) uint32 }) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(order.Uint32(buf[:])), nil
}

func decodeOne(r io.Reader) (*types.MatVar, error) {
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: truncated v4 MOPT header", types.ErrInvalidMAT)
		}
		return nil, err
	}
	mo, order, err := decodeMOPT(raw)
	if err != nil {
		return nil, err
	}
	dataKind, err := mo.dataKind()
	if err != nil {
		return nil, err
	}
	class, err := mo.classKind()
	if err != nil {
		return nil, err
	}

	mrows, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: reading mrows: %v", types.ErrIoError, err)
	}
	ncols, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ncols: %v", types.ErrIoError, err)
	}
	imagf, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: reading imagf: %v", types.ErrIoError, err)
	}
	isComplex := imagf != 0

	nameLen, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: reading name length: %v", types.ErrIoError, err)
	}
	if nameLen < 1 {
		return nil, fmt.Errorf("%w: v4 variable name length %d must be >=1", types.ErrInvalidMAT, nameLen)
	}
	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("%w: reading name: %v", types.ErrIoError, err)
	}
	name := trimNUL(nameBuf)

	// Sparse complex matrices are never flagged via imagf; they are
	// recognized by having exactly 4 stored columns instead of 3.
	if !isComplex && class == types.Sparse && ncols == 4 {
		isComplex = true
	}

	width := elementSize(dataKind)
	n := int(mrows) * int(ncols)
	nbytes := n * width

	switch class {
	case types.Sparse:
		buf := make([]byte, nbytes)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: reading sparse payload: %v", types.ErrIoError, err)
		}
		flat := decodeDoubles(buf, order)
		nrows, ncolsOut, ir, jc, data, imag, err := sparse.FromV4Flat(flat, int(mrows), isComplex)
		if err != nil {
			return nil, err
		}
		mv := types.NewSparse(name, nrows, ncolsOut, len(ir), ir, jc, data)
		mv.IsComplex = isComplex
		mv.Sparse.Imag = imag
		return mv, nil

	case types.Char, types.Double:
		readBytes := nbytes
		if isComplex {
			readBytes *= 2
		}
		buf := make([]byte, readBytes)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: reading payload: %v", types.ErrIoError, err)
		}
		real, err := decodeNumeric(dataKind, buf[:nbytes], order)
		if err != nil {
			return nil, err
		}
		mv := types.NewNumeric(name, class, []int{int(mrows), int(ncols)}, real)
		mv.DataType = dataKind
		if isComplex {
			imag, err := decodeNumeric(dataKind, buf[nbytes:], order)
			if err != nil {
				return nil, err
			}
			mv.IsComplex = true
			mv.Numeric.Imag = imag
		}
		return mv, nil

	default:
		return nil, fmt.Errorf("%w: unsupported v4 class %s", types.ErrUnsupportedClass, class)
	}
}

func trimNUL(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
