package v5

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/scigolib/matcore/internal/stream"
)

// decodeNumeric turns a raw on-disk buffer of the given wire type into the
// matching Go slice, widening nothing (widening to a host type is the
// bridge, not the codec).
func decodeNumeric(mt miType, data []byte, order binary.ByteOrder) (interface{}, error) {
	width := miSize(mt)
	if width == 0 {
		return nil, fmt.Errorf("%w: numeric payload has no fixed width (type %d)", errInvalid(), mt)
	}
	if width > 0 && len(data)%width != 0 {
		return nil, fmt.Errorf("%w: numeric payload size %d not a multiple of element width %d", errInvalid(), len(data), width)
	}
	n := len(data) / max(width, 1)

	switch mt {
	case miInt8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(data[i])
		}
		return out, nil
	case miUint8, miUTF8:
		out := make([]uint8, n)
		copy(out, data)
		return out, nil
	case miInt16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(data[i*2:]))
		}
		return out, nil
	case miUint16, miUTF16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(data[i*2:])
		}
		return out, nil
	case miInt32, miUTF32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(data[i*4:]))
		}
		return out, nil
	case miUint32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(data[i*4:])
		}
		return out, nil
	case miSingle:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(data[i*4:]))
		}
		return out, nil
	case miDouble:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(data[i*8:]))
		}
		return out, nil
	case miInt64:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(order.Uint64(data[i*8:]))
		}
		return out, nil
	case miUint64:
		out := make([]uint64, n)
		for i := range out {
			out[i] = order.Uint64(data[i*8:])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported numeric wire type %d", errInvalid(), mt)
	}
}

func encodeNumeric(mt miType, v interface{}, order binary.ByteOrder) ([]byte, error) {
	switch data := v.(type) {
	case []bool:
		out := make([]byte, len(data))
		for i, x := range data {
			if x {
				out[i] = 1
			}
		}
		return out, nil
	case []int8:
		out := make([]byte, len(data))
		for i, x := range data {
			out[i] = byte(x)
		}
		return out, nil
	case []uint8:
		return append([]byte(nil), data...), nil
	case []int16:
		out := make([]byte, len(data)*2)
		for i, x := range data {
			order.PutUint16(out[i*2:], uint16(x))
		}
		return out, nil
	case []uint16:
		out := make([]byte, len(data)*2)
		for i, x := range data {
			order.PutUint16(out[i*2:], x)
		}
		return out, nil
	case []int32:
		out := make([]byte, len(data)*4)
		for i, x := range data {
			order.PutUint32(out[i*4:], uint32(x))
		}
		return out, nil
	case []uint32:
		out := make([]byte, len(data)*4)
		for i, x := range data {
			order.PutUint32(out[i*4:], x)
		}
		return out, nil
	case []float32:
		out := make([]byte, len(data)*4)
		for i, x := range data {
			order.PutUint32(out[i*4:], math.Float32bits(x))
		}
		return out, nil
	case []float64:
		out := make([]byte, len(data)*8)
		for i, x := range data {
			order.PutUint64(out[i*8:], math.Float64bits(x))
		}
		return out, nil
	case []int64:
		out := make([]byte, len(data)*8)
		for i, x := range data {
			order.PutUint64(out[i*8:], uint64(x))
		}
		return out, nil
	case []uint64:
		out := make([]byte, len(data)*8)
		for i, x := range data {
			order.PutUint64(out[i*8:], x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported numeric Go type %T for wire type %d", errInvalid(), v, mt)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// readerOrder/writerOrder return the binary.ByteOrder of a
// stream.Reader/Writer; both types expose it as an exported field already.
func readerOrder(r *stream.Reader) binary.ByteOrder { return r.Order }
func writerOrder(w *stream.Writer) binary.ByteOrder { return w.Order }
