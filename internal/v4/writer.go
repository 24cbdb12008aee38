package v4

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/scigolib/matcore/internal/sparse"
	"github.com/scigolib/matcore/types"
)

// Encode writes one variable in v4 format using the given byte order
// (matio's v4 writer always emits native order; we let the caller pick,
// defaulting to little-endian at the session layer).
func Encode(w io.Writer, mv *types.MatVar, order binary.ByteOrder) error {
	classDigit, err := classToMOPTDigit(mv.Class)
	if err != nil {
		return err
	}

	dataKind := mv.DataType
	if mv.Class == types.Char {
		dataKind = types.DKUint8
	}
	dataDigit, err := dataKindToMOPTDigit(dataKind)
	if err != nil {
		return err
	}

	mo := mopt{BigEndian: order == binary.BigEndian, DataType: dataDigit, Class: classDigit}
	if err := writeInt32(w, order, mo.encode()); err != nil {
		return err
	}

	dims := mv.Dims()
	if len(dims) != 2 {
		return fmt.Errorf("%w: v4 only supports rank-2 arrays, got rank %d", types.ErrInvalidMAT, len(dims))
	}

	switch mv.Class {
	case types.Sparse:
		return encodeSparse(w, order, mv, dims)
	case types.Char, types.Double:
		return encodeNumericVar(w, order, mv, dims, dataKind)
	default:
		return fmt.Errorf("%w: v4 cannot write class %s", types.ErrUnsupportedClass, mv.Class)
	}
}

func writeInt32(w io.Writer, order binary.ByteOrder, v int32) error {
	var buf [4]byte
	order.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func writeNameAndImagFlag(w io.Writer, order binary.ByteOrder, name string, isComplex bool) error {
	var imagf int32
	if isComplex {
		imagf = 1
	}
	if err := writeInt32(w, order, imagf); err != nil {
		return err
	}
	nameBuf := append([]byte(name), 0)
	if err := writeInt32(w, order, int32(len(nameBuf))); err != nil {
		return err
	}
	_, err := w.Write(nameBuf)
	return err
}

func encodeNumericVar(w io.Writer, order binary.ByteOrder, mv *types.MatVar, dims []int, dataKind types.DataKind) error {
	if err := writeInt32(w, order, int32(dims[0])); err != nil {
		return err
	}
	if err := writeInt32(w, order, int32(dims[1])); err != nil {
		return err
	}
	if err := writeNameAndImagFlag(w, order, mv.Name, mv.IsComplex); err != nil {
		return err
	}

	realBuf, err := encodeNumeric(dataKind, mv.Numeric.Real, order)
	if err != nil {
		return err
	}
	if _, err := w.Write(realBuf); err != nil {
		return err
	}
	if mv.IsComplex {
		imagBuf, err := encodeNumeric(dataKind, mv.Numeric.Imag, order)
		if err != nil {
			return err
		}
		if _, err := w.Write(imagBuf); err != nil {
			return err
		}
	}
	return nil
}

func encodeSparse(w io.Writer, order binary.ByteOrder, mv *types.MatVar, dims []int) error {
	sp := mv.Sparse
	if err := sparse.Validate(dims[0], dims[1], sp.IR, sp.JC); err != nil {
		return err
	}

	data, _ := sp.Data.([]float64)
	var imag []float64
	if mv.IsComplex {
		imag, _ = sp.Imag.([]float64)
	}
	flat := sparse.ToV4Flat(dims[0], dims[1], sp.IR, sp.JC, data, imag, mv.IsComplex)

	encodedRows := len(sp.IR) + 1
	ncolsOnDisk := 3
	if mv.IsComplex {
		ncolsOnDisk = 4
	}
	if err := writeInt32(w, order, int32(encodedRows)); err != nil {
		return err
	}
	if err := writeInt32(w, order, int32(ncolsOnDisk)); err != nil {
		return err
	}
	// Sparse complex is signaled by ncolsOnDisk==4, never imagf, matching
	// mat4.c's read-side quirk; imagf is always written 0 here.
	if err := writeNameAndImagFlag(w, order, mv.Name, false); err != nil {
		return err
	}

	buf := encodeDoubles(flat, order)
	_, err := w.Write(buf)
	return err
}
