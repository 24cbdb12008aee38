package bridge

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// toFloat64Slice widens any numeric buffer the v4/v5 codecs can produce to
// float64, the host's default numeric representation.
func toFloat64Slice(v interface{}) ([]float64, error) {
	switch data := v.(type) {
	case []float64:
		return data, nil
	case []float32:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []int8:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []uint8:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []uint16:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []uint32:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case []uint64:
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: cannot widen %T to float64", types.ErrShapeMismatch, v)
	}
}

func toBoolSlice(v interface{}) ([]bool, error) {
	switch data := v.(type) {
	case []bool:
		return data, nil
	case []uint8:
		out := make([]bool, len(data))
		for i, x := range data {
			out[i] = x != 0
		}
		return out, nil
	case []int8:
		out := make([]bool, len(data))
		for i, x := range data {
			out[i] = x != 0
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: logical array has non-byte payload %T", types.ErrShapeMismatch, v)
	}
}

func toRunes(v interface{}) ([]rune, error) {
	switch data := v.(type) {
	case []uint8:
		out := make([]rune, len(data))
		for i, x := range data {
			out[i] = rune(x)
		}
		return out, nil
	case []uint16:
		out := make([]rune, len(data))
		for i, x := range data {
			out[i] = rune(x)
		}
		return out, nil
	case []int32:
		out := make([]rune, len(data))
		for i, x := range data {
			out[i] = x
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: char array has unsupported payload %T", types.ErrShapeMismatch, v)
	}
}
