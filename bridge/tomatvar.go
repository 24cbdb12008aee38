package bridge

import (
	"fmt"

	"github.com/scigolib/matcore/types"
)

// FromHostValue builds the MatVar a writer would serialize for hv,
// naming the top-level node name.
func FromHostValue(name string, hv types.HostValue) (*types.MatVar, error) {
	switch v := hv.(type) {
	case types.Null:
		dims := v.Dims
		if dims == nil {
			dims = []int{0, 0}
		}
		mv := types.NewNumeric(name, types.Double, dims, []float64{})
		return mv, nil

	case types.Real64:
		return types.NewNumeric(name, types.Double, dimsOrVector(v.Dims, len(v.Data)), v.Data), nil

	case types.Int32Vec:
		mv := types.NewNumeric(name, types.Int32, dimsOrVector(v.Dims, len(v.Data)), v.Data)
		mv.DataType = types.DKInt32
		return mv, nil

	case types.ComplexVec:
		return types.NewNumericComplex(name, types.Double, dimsOrVector(v.Dims, len(v.Real)), v.Real, v.Imag), nil

	case types.BoolVec:
		bytes := make([]byte, len(v.Data))
		for i, b := range v.Data {
			if b {
				bytes[i] = 1
			}
		}
		return types.NewLogical(name, dimsOrVector(v.Dims, len(v.Data)), bytes), nil

	case types.Str:
		runes := []rune(v.Value)
		data := make([]uint16, len(runes))
		for i, r := range runes {
			data[i] = uint16(r)
		}
		mv := types.NewNumeric(name, types.Char, []int{1, len(runes)}, data)
		mv.DataType = types.DKUTF16
		return mv, nil

	case types.StrArray:
		return strArrayToMatVar(name, v)

	case types.List:
		return listToMatVar(name, v)

	case types.SparseValue:
		var data interface{} = v.Data
		if v.Logical {
			bits := make([]bool, len(v.Data))
			for i, x := range v.Data {
				bits[i] = x != 0
			}
			data = bits
		}
		mv := types.NewSparse(name, v.Rows, v.Cols, len(v.IR), v.IR, v.JC, data)
		mv.IsLogical = v.Logical
		if v.Imag != nil {
			mv.IsComplex = true
			mv.Sparse.Imag = v.Imag
		}
		return mv, nil

	default:
		return nil, fmt.Errorf("%w: unrecognized host value type %T", types.ErrShapeMismatch, hv)
	}
}

func dimsOrVector(dims []int, n int) []int {
	if dims != nil {
		return dims
	}
	return []int{1, n}
}

func strArrayToMatVar(name string, v types.StrArray) (*types.MatVar, error) {
	rows := len(v.Values)
	cols := 0
	for _, s := range v.Values {
		if len(s) > cols {
			cols = len(s)
		}
	}
	data := make([]uint16, rows*cols)
	for r, s := range v.Values {
		runes := []rune(s)
		for c := 0; c < cols; c++ {
			var ch rune = ' '
			if c < len(runes) {
				ch = runes[c]
			}
			data[c*rows+r] = uint16(ch) // column-major
		}
	}
	mv := types.NewNumeric(name, types.Char, []int{rows, cols}, data)
	mv.DataType = types.DKUTF16
	return mv, nil
}

// listToMatVar builds a Cell (unnamed list), a scalar Struct (named list
// whose values are themselves plain), or a Struct array (named list
// whose Values are nested per-element Lists all sharing the same field
// names) — the three shapes a List can map onto.
func listToMatVar(name string, v types.List) (*types.MatVar, error) {
	if v.Names != nil {
		return scalarStructFromList(name, v)
	}
	if isStructArrayList(v) {
		return structArrayFromList(name, v)
	}
	return cellFromList(name, v)
}

func cellFromList(name string, v types.List) (*types.MatVar, error) {
	if len(v.Values) == 0 {
		return types.NewCell(name, []int{0, 0}), nil
	}

	lens := make([]int, len(v.Values))
	ragged := false
	for i, item := range v.Values {
		lens[i] = innerLen(item)
		if lens[i] != lens[0] {
			ragged = true
		}
	}
	if ragged {
		return raggedCellFromList(name, v, lens)
	}

	dims := v.Dims
	if dims == nil {
		dims = []int{1, len(v.Values)}
	}
	mv := types.NewCell(name, dims)
	for i, child := range v.Values {
		childVar, err := FromHostValue("", child)
		if err != nil {
			return nil, fmt.Errorf("cell element %d: %w", i, err)
		}
		if err := mv.SetCell(i, childVar); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

// innerLen is the element count of a nested list that is unnamed or empty,
// or 1 for anything else (including a non-empty named list) — the measure
// cellFromList compares across items to detect a ragged list.
func innerLen(v types.HostValue) int {
	l, ok := v.(types.List)
	if !ok {
		return 1
	}
	if l.Names == nil || len(l.Values) == 0 {
		return len(l.Values)
	}
	return 1
}

// raggedCellFromList handles a List whose items report different
// innerLen: the result is a CELL of length len(v.Values) whose i-th child
// is itself a CELL of length lens[i], holding item i's own elements when
// item i is an unnamed or empty list (or, for any other item, the item
// itself as the sole element).
func raggedCellFromList(name string, v types.List, lens []int) (*types.MatVar, error) {
	mv := types.NewCell(name, []int{1, len(v.Values)})
	for i, item := range v.Values {
		inner := types.NewCell("", []int{1, lens[i]})
		if l, ok := item.(types.List); ok && (l.Names == nil || len(l.Values) == 0) {
			for j, sub := range l.Values {
				subVar, err := FromHostValue("", sub)
				if err != nil {
					return nil, fmt.Errorf("cell element %d.%d: %w", i, j, err)
				}
				if err := inner.SetCell(j, subVar); err != nil {
					return nil, err
				}
			}
		} else {
			itemVar, err := FromHostValue("", item)
			if err != nil {
				return nil, fmt.Errorf("cell element %d: %w", i, err)
			}
			if err := inner.SetCell(0, itemVar); err != nil {
				return nil, err
			}
		}
		if err := mv.SetCell(i, inner); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

// isStructArrayList reports whether v represents a struct array: Names
// is empty at this level but every value is itself a named List sharing
// the same field names, the shape structToHost produces for n>1. This is
// a heuristic — a Cell that happens to hold only scalar structs with
// identical field names is indistinguishable from a struct array once
// bridged to HostValue, so FromHostValue treats it as one; callers that
// need a genuine Cell-of-structs should build the MatVar directly
// instead of round-tripping through HostValue.
func isStructArrayList(v types.List) bool {
	if len(v.Values) == 0 {
		return false
	}
	first, ok := v.Values[0].(types.List)
	if !ok || first.Names == nil {
		return false
	}
	for _, elem := range v.Values[1:] {
		other, ok := elem.(types.List)
		if !ok || len(other.Names) != len(first.Names) {
			return false
		}
		for i, n := range first.Names {
			if other.Names[i] != n {
				return false
			}
		}
	}
	return true
}

func scalarStructFromList(name string, v types.List) (*types.MatVar, error) {
	mv := types.NewStruct(name, v.Names, []int{1, 1})
	for f, child := range v.Values {
		childVar, err := FromHostValue("", child)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", v.Names[f], err)
		}
		if err := mv.SetStructField(f, 0, childVar); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

func structArrayFromList(name string, v types.List) (*types.MatVar, error) {
	if len(v.Values) == 0 {
		return types.NewStruct(name, v.Names, []int{0, 0}), nil
	}
	first, ok := v.Values[0].(types.List)
	if !ok {
		return nil, fmt.Errorf("%w: struct array element 0 is not a List", types.ErrShapeMismatch)
	}
	names := first.Names
	dims := v.Dims
	if dims == nil {
		dims = []int{1, len(v.Values)}
	}
	mv := types.NewStruct(name, names, dims)
	for e, elem := range v.Values {
		elemList, ok := elem.(types.List)
		if !ok {
			return nil, fmt.Errorf("%w: struct array element %d is not a List", types.ErrShapeMismatch, e)
		}
		if len(elemList.Values) != len(names) {
			return nil, fmt.Errorf("%w: struct array element %d has %d fields, want %d", types.ErrShapeMismatch, e, len(elemList.Values), len(names))
		}
		for f, child := range elemList.Values {
			childVar, err := FromHostValue("", child)
			if err != nil {
				return nil, fmt.Errorf("element %d field %q: %w", e, names[f], err)
			}
			if err := mv.SetStructField(f, e, childVar); err != nil {
				return nil, err
			}
		}
	}
	return mv, nil
}
