package v4

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/scigolib/matcore/types"
)

func elementSize(d types.DataKind) int {
	switch d {
	case types.DKUint8:
		return 1
	case types.DKInt16, types.DKUint16:
		return 2
	case types.DKInt32, types.DKSingle:
		return 4
	case types.DKDouble:
		return 8
	default:
		return 0
	}
}

func decodeNumeric(d types.DataKind, buf []byte, order binary.ByteOrder) (interface{}, error) {
	width := elementSize(d)
	if width == 0 || len(buf)%width != 0 {
		return nil, fmt.Errorf("%w: v4 numeric payload size %d incompatible with element width for %s", types.ErrInvalidMAT, len(buf), d)
	}
	n := len(buf) / width
	switch d {
	case types.DKUint8:
		out := make([]uint8, n)
		copy(out, buf)
		return out, nil
	case types.DKInt16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(buf[i*2:]))
		}
		return out, nil
	case types.DKUint16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(buf[i*2:])
		}
		return out, nil
	case types.DKInt32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(buf[i*4:]))
		}
		return out, nil
	case types.DKSingle:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(buf[i*4:]))
		}
		return out, nil
	case types.DKDouble:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(buf[i*8:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: v4 cannot decode data kind %s", types.ErrInvalidMAT, d)
	}
}

func decodeDoubles(buf []byte, order binary.ByteOrder) []float64 {
	n := len(buf) / 8
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(order.Uint64(buf[i*8:]))
	}
	return out
}

func encodeDoubles(data []float64, order binary.ByteOrder) []byte {
	buf := make([]byte, len(data)*8)
	for i, x := range data {
		order.PutUint64(buf[i*8:], math.Float64bits(x))
	}
	return buf
}

func encodeNumeric(d types.DataKind, v interface{}, order binary.ByteOrder) ([]byte, error) {
	switch data := v.(type) {
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
	case []float32:
		out := make([]byte, len(data)*4)
		for i, x := range data {
			order.PutUint32(out[i*4:], math.Float32bits(x))
		}
		return out, nil
	case []float64:
		return encodeDoubles(data, order), nil
	default:
		return nil, fmt.Errorf("%w: v4 cannot encode Go type %T as %s", types.ErrInvalidMAT, v, d)
	}
}
