package v5

import (
	"bytes"
	"fmt"

	"github.com/scigolib/matcore/internal/stream"
	"github.com/scigolib/matcore/types"
)

// fieldNameLength is the fixed field-name slot width v5 struct elements
// use; 32 matches what MATLAB itself writes.
const fieldNameLength = 32

// Encode writes one variable as a top-level miMATRIX element, optionally
// wrapped in miCOMPRESSED.
func Encode(w *stream.Writer, mv *types.MatVar, compress bool) error {
	var body bytes.Buffer
	bw := stream.NewWriter(&body, w.Order)
	if err := encodeMatrixBody(bw, mv); err != nil {
		return err
	}

	if compress {
		return writeCompressed(w, body.Bytes())
	}
	return writeTag(w, miMatrix, body.Bytes())
}

func encodeMatrixBody(w *stream.Writer, mv *types.MatVar) error {
	class, err := kindToClass(mv.Class)
	if err != nil {
		return err
	}
	if err := writeArrayFlags(w, mv, class); err != nil {
		return err
	}
	if err := writeDims(w, mv.Dims()); err != nil {
		return err
	}
	if err := writeTag(w, miInt8, []byte(mv.Name)); err != nil {
		return err
	}

	switch mv.Class {
	case types.Cell:
		return encodeCell(w, mv)
	case types.Struct:
		return encodeStruct(w, mv)
	case types.Sparse:
		return encodeSparse(w, mv)
	default:
		return encodeNumericOrChar(w, mv)
	}
}

func writeArrayFlags(w *stream.Writer, mv *types.MatVar, class mxClass) error {
	var word0, word1 uint32
	word0 = uint32(class)
	if mv.IsLogical {
		word0 |= 0x0200
	}
	if mv.IsComplex {
		word0 |= 0x0800
	}
	if mv.Class == types.Sparse && mv.Sparse != nil {
		word1 = uint32(mv.Sparse.NZMax)
	}

	buf := make([]byte, 8)
	w.Order.PutUint32(buf[0:4], word0)
	w.Order.PutUint32(buf[4:8], word1)
	return writeTag(w, miUint32, buf)
}

func writeDims(w *stream.Writer, dims []int) error {
	buf := make([]byte, len(dims)*4)
	for i, d := range dims {
		w.Order.PutUint32(buf[i*4:], uint32(int32(d)))
	}
	return writeTag(w, miInt32, buf)
}

func encodeNumericOrChar(w *stream.Writer, mv *types.MatVar) error {
	mt, err := dataKindToMI(mv.DataType)
	if err != nil {
		return err
	}
	realBuf, err := encodeNumeric(mt, mv.Numeric.Real, w.Order)
	if err != nil {
		return err
	}
	if err := writeTag(w, mt, realBuf); err != nil {
		return err
	}
	if mv.IsComplex {
		imagBuf, err := encodeNumeric(mt, mv.Numeric.Imag, w.Order)
		if err != nil {
			return err
		}
		if err := writeTag(w, mt, imagBuf); err != nil {
			return err
		}
	}
	return nil
}

func encodeCell(w *stream.Writer, mv *types.MatVar) error {
	for i, child := range mv.Cell {
		if child == nil {
			return fmt.Errorf("%w: cell element %d is nil", errInvalid(), i)
		}
		var sub bytes.Buffer
		sw := stream.NewWriter(&sub, w.Order)
		if err := encodeMatrixBody(sw, child); err != nil {
			return fmt.Errorf("encoding cell element %d: %w", i, err)
		}
		if err := writeTag(w, miMatrix, sub.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func encodeStruct(w *stream.Writer, mv *types.MatVar) error {
	fnLenBuf := make([]byte, 4)
	w.Order.PutUint32(fnLenBuf, fieldNameLength)
	if err := writeTag(w, miInt32, fnLenBuf); err != nil {
		return err
	}

	names := mv.Struct.FieldNames
	buf := make([]byte, len(names)*fieldNameLength)
	for i, name := range names {
		if len(name) >= fieldNameLength {
			return fmt.Errorf("%w: field name %q exceeds %d bytes", errInvalid(), name, fieldNameLength-1)
		}
		copy(buf[i*fieldNameLength:], name)
	}
	if err := writeTag(w, miInt8, buf); err != nil {
		return err
	}

	nfields := len(names)
	n := types.Prod(mv.Dims())
	for e := 0; e < n; e++ {
		for f := 0; f < nfields; f++ {
			child := mv.Struct.Children[e*nfields+f]
			if child == nil {
				return fmt.Errorf("%w: struct field %q elem %d is nil", errInvalid(), names[f], e)
			}
			var sub bytes.Buffer
			sw := stream.NewWriter(&sub, w.Order)
			if err := encodeMatrixBody(sw, child); err != nil {
				return fmt.Errorf("encoding struct field %q elem %d: %w", names[f], e, err)
			}
			if err := writeTag(w, miMatrix, sub.Bytes()); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeSparse(w *stream.Writer, mv *types.MatVar) error {
	sp := mv.Sparse
	irBuf := make([]byte, len(sp.IR)*4)
	for i, v := range sp.IR {
		w.Order.PutUint32(irBuf[i*4:], uint32(v))
	}
	if err := writeTag(w, miInt32, irBuf); err != nil {
		return err
	}

	jcBuf := make([]byte, len(sp.JC)*4)
	for i, v := range sp.JC {
		w.Order.PutUint32(jcBuf[i*4:], uint32(v))
	}
	if err := writeTag(w, miInt32, jcBuf); err != nil {
		return err
	}

	dataType := types.DKDouble
	if mv.IsLogical {
		dataType = types.DKUint8
	}
	mt, err := dataKindToMI(dataType)
	if err != nil {
		return err
	}
	dataBuf, err := encodeNumeric(mt, sp.Data, w.Order)
	if err != nil {
		return err
	}
	if err := writeTag(w, mt, dataBuf); err != nil {
		return err
	}

	if mv.IsComplex {
		imagBuf, err := encodeNumeric(mt, sp.Imag, w.Order)
		if err != nil {
			return err
		}
		if err := writeTag(w, mt, imagBuf); err != nil {
			return err
		}
	}
	return nil
}
