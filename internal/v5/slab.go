package v5

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// Slab describes a column-major hyperslab read: for each dimension, start
// the read at Start[i], take Edge[i] elements, stepping Stride[i] apart
// hyperslab read. Stride defaults to 1 when the slice is nil
// or the entry is 0.
type Slab struct {
	Start  []int
	Stride []int
	Edge   []int
}

// ReadSlab extracts a sub-region of an already-decoded numeric MatVar
// without touching disk again — the codec reads the whole element once,
// and slabbing is a pure in-memory reshape, the same tradeoff matio makes
// for anything smaller than its memory-mapped path.
func ReadSlab(mv *types.MatVar, s Slab) (*types.MatVar, error) {
	if mv.Numeric == nil {
		return nil, fmt.Errorf("%w: ReadSlab requires a numeric node, got class %s", errInvalid(), mv.Class)
	}
	dims := mv.Dims()
	if len(s.Start) != len(dims) || len(s.Edge) != len(dims) {
		return nil, fmt.Errorf("%w: slab rank %d/%d does not match array rank %d", errInvalid(), len(s.Start), len(s.Edge), len(dims))
	}
	stride := make([]int, len(dims))
	for i := range stride {
		stride[i] = 1
		if i < len(s.Stride) && s.Stride[i] > 0 {
			stride[i] = s.Stride[i]
		}
	}

	for i, d := range dims {
		st := stride[i]
		if st <= 0 {
			st = 1
		}
		last := s.Start[i] + (s.Edge[i]-1)*st
		if s.Start[i] < 0 || s.Edge[i] < 0 || (s.Edge[i] > 0 && last >= d) {
			return nil, fmt.Errorf("%w: slab dimension %d (start=%d stride=%d edge=%d) exceeds extent %d", errOutOfRange(), i, s.Start[i], st, s.Edge[i], d)
		}
	}

	outDims := append([]int(nil), s.Edge...)
	outN := types.Prod(outDims)

	out, err := gatherNumeric(mv.Numeric.Real, dims, s, stride, outN)
	if err != nil {
		return nil, err
	}
	result := types.NewNumeric(mv.Name, mv.Class, outDims, out)
	result.DataType = mv.DataType
	result.IsLogical = mv.IsLogical

	if mv.IsComplex {
		outImag, err := gatherNumeric(mv.Numeric.Imag, dims, s, stride, outN)
		if err != nil {
			return nil, err
		}
		result.IsComplex = true
		result.Numeric.Imag = outImag
	}
	return result, nil
}

func errOutOfRange() error { return types.ErrOutOfRange }

// gatherNumeric walks the output hyperslab in column-major order, mapping
// each output linear index back to a source linear index through
// start+stride, and copies via reflection-free type switches.
func gatherNumeric(src interface{}, dims []int, s Slab, stride []int, outN int) (interface{}, error) {
	srcIndex := func(outLinear int) int {
		rem := outLinear
		coord := make([]int, len(dims))
		for i := 0; i < len(s.Edge); i++ {
			if s.Edge[i] == 0 {
				continue
			}
			coord[i] = rem % s.Edge[i]
			rem /= s.Edge[i]
		}
		srcLinear, mul := 0, 1
		for i := range dims {
			pos := s.Start[i] + coord[i]*stride[i]
			srcLinear += pos * mul
			mul *= dims[i]
		}
		return srcLinear
	}

	switch data := src.(type) {
	case []float64:
		out := make([]float64, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []float32:
		out := make([]float32, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []int8:
		out := make([]int8, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []uint8:
		out := make([]uint8, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []int16:
		out := make([]int16, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []uint16:
		out := make([]uint16, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []int32:
		out := make([]int32, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []uint32:
		out := make([]uint32, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []int64:
		out := make([]int64, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case []uint64:
		out := make([]uint64, outN)
		for i := range out {
			out[i] = data[srcIndex(i)]
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unsupported numeric Go type %T in slab gather", errInvalid(), src)
	}
}
