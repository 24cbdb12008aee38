// Package bridge converts between the on-disk types.MatVar variant tree
// and the host-side types.HostValue union. It is the only
// package that knows both shapes; the v4/v5 codecs never see a
// HostValue, and nothing outside this package constructs one from a
// MatVar by hand.
package bridge

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// ToHostValue converts a decoded MatVar into its host-side representation.
func ToHostValue(mv *types.MatVar) (types.HostValue, error) {
	if mv == nil {
		return types.Null{}, nil
	}
	if mv.Size() == 0 && mv.Class != types.Cell && mv.Class != types.Struct {
		return types.Null{Dims: mv.Dims()}, nil
	}

	switch mv.Class {
	case types.Char:
		return charToHost(mv)
	case types.Cell:
		return cellToHost(mv)
	case types.Struct:
		return structToHost(mv)
	case types.Sparse:
		return sparseToHost(mv)
	default:
		return numericToHost(mv)
	}
}

func numericToHost(mv *types.MatVar) (types.HostValue, error) {
	if mv.IsLogical {
		bits, err := toBoolSlice(mv.Numeric.Real)
		if err != nil {
			return nil, err
		}
		return types.BoolVec{Dims: mv.Dims(), Data: bits}, nil
	}
	real, err := toFloat64Slice(mv.Numeric.Real)
	if err != nil {
		return nil, err
	}
	if mv.IsComplex {
		imag, err := toFloat64Slice(mv.Numeric.Imag)
		if err != nil {
			return nil, err
		}
		return types.ComplexVec{Dims: mv.Dims(), Real: real, Imag: imag}, nil
	}
	return types.Real64{Dims: mv.Dims(), Data: real}, nil
}

func charToHost(mv *types.MatVar) (types.HostValue, error) {
	dims := mv.Dims()
	runes, err := toRunes(mv.Numeric.Real)
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 || dims[0] <= 1 {
		return types.Str{Value: string(runes)}, nil
	}

	rows, cols := dims[0], dims[1]
	values := make([]string, rows)
	for r := 0; r < rows; r++ {
		line := make([]rune, cols)
		for c := 0; c < cols; c++ {
			line[c] = runes[c*rows+r] // column-major storage
		}
		values[r] = string(line)
	}
	return types.StrArray{Dims: dims, Values: values}, nil
}

func cellToHost(mv *types.MatVar) (types.HostValue, error) {
	values := make([]types.HostValue, len(mv.Cell))
	for i, child := range mv.Cell {
		hv, err := ToHostValue(child)
		if err != nil {
			return nil, fmt.Errorf("cell element %d: %w", i, err)
		}
		values[i] = hv
	}
	return types.List{Dims: mv.Dims(), Values: values}, nil
}

func structToHost(mv *types.MatVar) (types.HostValue, error) {
	nfields := len(mv.Struct.FieldNames)
	n := types.Prod(mv.Dims())

	if n == 1 {
		values := make([]types.HostValue, nfields)
		for f := 0; f < nfields; f++ {
			child, err := mv.GetStructField(f, 0)
			if err != nil {
				return nil, err
			}
			hv, err := ToHostValue(child)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", mv.Struct.FieldNames[f], err)
			}
			values[f] = hv
		}
		return types.List{Dims: mv.Dims(), Names: append([]string(nil), mv.Struct.FieldNames...), Values: values}, nil
	}

	elems := make([]types.HostValue, n)
	for e := 0; e < n; e++ {
		values := make([]types.HostValue, nfields)
		for f := 0; f < nfields; f++ {
			child, err := mv.GetStructField(f, e)
			if err != nil {
				return nil, err
			}
			hv, err := ToHostValue(child)
			if err != nil {
				return nil, fmt.Errorf("element %d field %q: %w", e, mv.Struct.FieldNames[f], err)
			}
			values[f] = hv
		}
		elems[e] = types.List{Names: append([]string(nil), mv.Struct.FieldNames...), Values: values}
	}
	return types.List{Dims: mv.Dims(), Values: elems}, nil
}

func sparseToHost(mv *types.MatVar) (types.HostValue, error) {
	sp := mv.Sparse
	var data []float64
	if mv.IsLogical {
		bits, err := toBoolSlice(sp.Data)
		if err != nil {
			return nil, err
		}
		data = make([]float64, len(bits))
		for i, b := range bits {
			if b {
				data[i] = 1
			}
		}
	} else {
		var err error
		data, err = toFloat64Slice(sp.Data)
		if err != nil {
			return nil, err
		}
	}
	sv := types.SparseValue{
		Rows: mv.Dims()[0], Cols: mv.Dims()[1],
		IR: append([]int32(nil), sp.IR...), JC: append([]int32(nil), sp.JC...),
		Data: data, Logical: mv.IsLogical,
	}
	if mv.IsComplex {
		imag, err := toFloat64Slice(sp.Imag)
		if err != nil {
			return nil, err
		}
		sv.Imag = imag
	}
	return sv, nil
}
