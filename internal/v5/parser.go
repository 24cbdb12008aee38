package v5

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/scigolib/matcore/internal/stream"
	"github.com/scigolib/matcore/types"
)

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }

// arrayFlags is the 8-byte array-flags sub-element: a flags/class word
// followed by an nzmax word (only meaningful for Sparse), per the MAT
// v5 format.
type arrayFlags struct {
	Class     mxClass
	IsLogical bool
	IsGlobal  bool
	IsComplex bool
	NZMax     uint32
}

func readArrayFlags(r *stream.Reader) (arrayFlags, error) {
	t, err := readTag(r)
	if err != nil {
		return arrayFlags{}, err
	}
	if t.Type != miUint32 || t.Size != 8 {
		return arrayFlags{}, fmt.Errorf("%w: array flags sub-element must be miUINT32 size 8, got type %d size %d", errInvalid(), t.Type, t.Size)
	}
	buf, err := readPayload(r, t)
	if err != nil {
		return arrayFlags{}, err
	}

	word0 := r.Order.Uint32(buf[0:4])
	word1 := r.Order.Uint32(buf[4:8])
	return arrayFlags{
		Class:     mxClass(word0 & 0xFF),
		IsLogical: word0&0x0200 != 0,
		IsGlobal:  word0&0x0400 != 0,
		IsComplex: word0&0x0800 != 0,
		NZMax:     word1,
	}, nil
}

func readDims(r *stream.Reader) ([]int, error) {
	t, err := readTag(r)
	if err != nil {
		return nil, err
	}
	buf, err := readPayload(r, t)
	if err != nil {
		return nil, err
	}
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("%w: dimensions sub-element size %d not a multiple of 4", errInvalid(), len(buf))
	}
	dims := make([]int, len(buf)/4)
	for i := range dims {
		dims[i] = int(int32(r.Order.Uint32(buf[i*4:])))
	}
	return dims, nil
}

func readName(r *stream.Reader) (string, error) {
	t, err := readTag(r)
	if err != nil {
		return "", err
	}
	buf, err := readPayload(r, t)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Decode reads every top-level element remaining on r (each a miMATRIX,
// bare or wrapped in miCOMPRESSED) until EOF. r must already be positioned
// past the 128-byte header with its Order set by ReadHeader.
func Decode(r *stream.Reader) ([]*types.MatVar, error) {
	var out []*types.MatVar
	for {
		t, err := readTag(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		mv, err := decodeElement(r, t)
		if err != nil {
			return nil, err
		}
		if mv != nil {
			out = append(out, mv)
		}
	}
	return out, nil
}

func decodeElement(r *stream.Reader, t tag) (*types.MatVar, error) {
	switch t.Type {
	case miMatrix:
		payload, err := readPayload(r, t)
		if err != nil {
			return nil, err
		}
		inner := stream.NewReader(bytesReader(payload), r.Order)
		return decodeMatrixBody(inner)
	case miCompressed:
		inner, err := readCompressed(r, t)
		if err != nil {
			return nil, err
		}
		innerTag, err := readTag(inner)
		if err != nil {
			return nil, err
		}
		if innerTag.Type != miMatrix {
			return nil, fmt.Errorf("%w: miCOMPRESSED element does not wrap a matrix", errInvalid())
		}
		payload, err := readPayload(inner, innerTag)
		if err != nil {
			return nil, err
		}
		body := stream.NewReader(bytesReader(payload), inner.Order)
		return decodeMatrixBody(body)
	default:
		// Unknown top-level element: skip its payload and move on, the
		// same tolerant stance matio takes toward elements it doesn't
		// recognize at the file level.
		if _, err := readPayload(r, t); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func decodeMatrixBody(r *stream.Reader) (*types.MatVar, error) {
	flags, err := readArrayFlags(r)
	if err != nil {
		return nil, err
	}
	dims, err := readDims(r)
	if err != nil {
		return nil, err
	}
	name, err := readName(r)
	if err != nil {
		return nil, err
	}

	switch flags.Class {
	case mxCell:
		return decodeCell(r, name, dims)
	case mxStruct:
		return decodeStruct(r, name, dims)
	case mxSparse:
		return decodeSparse(r, name, dims, flags)
	case mxObject:
		return nil, fmt.Errorf("%w: object array %q", types.ErrUnsupportedClass, name)
	default:
		return decodeNumericOrChar(r, name, dims, flags)
	}
}

func decodeNumericOrChar(r *stream.Reader, name string, dims []int, flags arrayFlags) (*types.MatVar, error) {
	class, err := classToKind(flags.Class)
	if err != nil {
		return nil, err
	}

	realTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	realBuf, err := readPayload(r, realTag)
	if err != nil {
		return nil, err
	}
	dataType, err := miToDataKind(realTag.Type)
	if err != nil {
		return nil, err
	}
	real, err := decodeNumeric(realTag.Type, realBuf, r.Order)
	if err != nil {
		return nil, err
	}

	mv := types.NewNumeric(name, class, dims, real)
	mv.DataType = dataType
	mv.IsLogical = flags.IsLogical

	if flags.IsComplex {
		imagTag, err := readTag(r)
		if err != nil {
			return nil, err
		}
		imagBuf, err := readPayload(r, imagTag)
		if err != nil {
			return nil, err
		}
		imag, err := decodeNumeric(imagTag.Type, imagBuf, r.Order)
		if err != nil {
			return nil, err
		}
		mv.IsComplex = true
		mv.Numeric.Imag = imag
	}
	return mv, nil
}

func decodeCell(r *stream.Reader, name string, dims []int) (*types.MatVar, error) {
	n := types.Prod(dims)
	mv := types.NewCell(name, dims)
	mv.Name = name
	for i := 0; i < n; i++ {
		t, err := readTag(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading cell element %d: %v", errInvalid(), i, err)
		}
		if t.Type != miMatrix {
			return nil, fmt.Errorf("%w: cell element %d is not a matrix (type %d)", errInvalid(), i, t.Type)
		}
		payload, err := readPayload(r, t)
		if err != nil {
			return nil, err
		}
		child, err := decodeMatrixBody(stream.NewReader(bytesReader(payload), r.Order))
		if err != nil {
			return nil, err
		}
		if err := mv.SetCell(i, child); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

func decodeStruct(r *stream.Reader, name string, dims []int) (*types.MatVar, error) {
	fnLenTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	fnLenBuf, err := readPayload(r, fnLenTag)
	if err != nil {
		return nil, err
	}
	if len(fnLenBuf) != 4 {
		return nil, fmt.Errorf("%w: field-name-length sub-element must be 4 bytes", errInvalid())
	}
	fieldNameLen := int(r.Order.Uint32(fnLenBuf))

	namesTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	namesBuf, err := readPayload(r, namesTag)
	if err != nil {
		return nil, err
	}
	if fieldNameLen == 0 || len(namesBuf)%fieldNameLen != 0 {
		return nil, fmt.Errorf("%w: field names sub-element size %d not a multiple of field length %d", errInvalid(), len(namesBuf), fieldNameLen)
	}
	nfields := len(namesBuf) / fieldNameLen
	names := make([]string, nfields)
	for i := range names {
		chunk := namesBuf[i*fieldNameLen : (i+1)*fieldNameLen]
		end := 0
		for end < len(chunk) && chunk[end] != 0 {
			end++
		}
		names[i] = string(chunk[:end])
	}

	mv := types.NewStruct(name, names, dims)
	n := types.Prod(dims)
	for e := 0; e < n; e++ {
		for f := 0; f < nfields; f++ {
			t, err := readTag(r)
			if err != nil {
				return nil, fmt.Errorf("%w: reading struct field %q elem %d: %v", errInvalid(), names[f], e, err)
			}
			if t.Type != miMatrix {
				return nil, fmt.Errorf("%w: struct field %q elem %d is not a matrix", errInvalid(), names[f], e)
			}
			payload, err := readPayload(r, t)
			if err != nil {
				return nil, err
			}
			child, err := decodeMatrixBody(stream.NewReader(bytesReader(payload), r.Order))
			if err != nil {
				return nil, err
			}
			if err := mv.SetStructField(f, e, child); err != nil {
				return nil, err
			}
		}
	}
	return mv, nil
}

func decodeSparse(r *stream.Reader, name string, dims []int, flags arrayFlags) (*types.MatVar, error) {
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: sparse array must be rank 2, got %d", errInvalid(), len(dims))
	}

	irTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	irBuf, err := readPayload(r, irTag)
	if err != nil {
		return nil, err
	}
	ir := make([]int32, len(irBuf)/4)
	for i := range ir {
		ir[i] = int32(r.Order.Uint32(irBuf[i*4:]))
	}

	jcTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	jcBuf, err := readPayload(r, jcTag)
	if err != nil {
		return nil, err
	}
	jc := make([]int32, len(jcBuf)/4)
	for i := range jc {
		jc[i] = int32(r.Order.Uint32(jcBuf[i*4:]))
	}

	dataTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	dataBuf, err := readPayload(r, dataTag)
	if err != nil {
		return nil, err
	}
	data, err := decodeNumeric(dataTag.Type, dataBuf, r.Order)
	if err != nil {
		return nil, err
	}
	if flags.IsLogical {
		bytes, ok := data.([]uint8)
		if !ok {
			return nil, fmt.Errorf("%w: logical sparse data has non-byte payload %T", errInvalid(), data)
		}
		bits := make([]bool, len(bytes))
		for i, b := range bytes {
			bits[i] = b != 0
		}
		data = bits
	}

	mv := types.NewSparse(name, dims[0], dims[1], int(flags.NZMax), ir, jc, data)
	mv.IsLogical = flags.IsLogical

	if flags.IsComplex {
		imagTag, err := readTag(r)
		if err != nil {
			return nil, err
		}
		imagBuf, err := readPayload(r, imagTag)
		if err != nil {
			return nil, err
		}
		imag, err := decodeNumeric(imagTag.Type, imagBuf, r.Order)
		if err != nil {
			return nil, err
		}
		mv.IsComplex = true
		mv.Sparse.Imag = imag
	}
	return mv, nil
}
