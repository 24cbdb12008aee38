package types

import "fmt"

// NumericPayload holds a numeric or char node's buffer. Real holds the
// element type matching DataType (e.g. []float64, []int32, []uint16);
// Imag is nil unless the node is complex, in which case it is an
// equally sized buffer of the same element type.
type NumericPayload struct {
	Real interface{}
	Imag interface{}
}

// SparsePayload holds CSC sparse data. IR and JC are
// int32-width on disk and are kept as int32 in memory too; Data is
// []float64 normally or []bool when IsLogical.
// Imag is nil unless IsComplex.
type SparsePayload struct {
	NZMax int
	IR    []int32
	JC    []int32
	Data  interface{}
	Imag  interface{}
}

// StructPayload holds struct-class children as a flat nfields×N table,
// column-major over (field, element): element e's field f lives at
// Children[e*len(FieldNames)+f]. Field names are unique within a node.
type StructPayload struct {
	FieldNames []string
	Children   []*MatVar
}

// MatVar is the recursive variant node: a common header
// (name, class, data type, dims, flags) plus a payload selected by
// Class. Exactly one of Numeric, Sparse, Cell, Struct is populated,
// matching Class; the others are nil/empty.
//
// A MatVar exclusively owns its Dims, Name, payload buffers and any
// Cell/Struct children — freeing a node in a GC'd language just means
// dropping the last reference, so there is no explicit Free; overwriting
// a Cell/Struct slot (SetCell/SetStructField) simply drops the prior
// occupant for the collector.
type MatVar struct {
	Name      string
	Class     ClassKind
	DataType  DataKind
	dims      []int
	IsComplex bool
	IsLogical bool

	Numeric *NumericPayload
	Sparse  *SparsePayload
	Cell    []*MatVar
	Struct  *StructPayload
}

// Dims implements Array.
func (v *MatVar) Dims() []int { return v.dims }

// Size implements Array: total element count (product of dims).
func (v *MatVar) Size() int { return Prod(v.dims) }

// ElementType implements Array.
func (v *MatVar) ElementType() DataKind { return v.DataType }

// Rank returns len(Dims).
func (v *MatVar) Rank() int { return len(v.dims) }

func (v *MatVar) String() string {
	return fmt.Sprintf("%s: %s%v", v.Name, v.Class, v.dims)
}

// NewNumeric constructs a real (non-complex) numeric or char node.
// data must be a slice of the Go type matching DefaultDataType(class)
// (e.g. []float64 for Double, []uint16 for Char); its length must equal
// Prod(dims).
func NewNumeric(name string, class ClassKind, dims []int, data interface{}) *MatVar {
	return &MatVar{
		Name:     name,
		Class:    class,
		DataType: DefaultDataType(class),
		dims:     append([]int(nil), dims...),
		Numeric:  &NumericPayload{Real: data},
	}
}

// NewNumericComplex constructs a complex numeric node with a split
// real/imaginary buffer pair.
func NewNumericComplex(name string, class ClassKind, dims []int, real, imag interface{}) *MatVar {
	mv := NewNumeric(name, class, dims, real)
	mv.IsComplex = true
	mv.Numeric.Imag = imag
	return mv
}

// NewLogical constructs a UINT8 logical array (is_logical is only valid
// for a UINT8 numeric or a sparse node).
func NewLogical(name string, dims []int, data []byte) *MatVar {
	mv := NewNumeric(name, Uint8, dims, data)
	mv.IsLogical = true
	return mv
}

// NewEmptyDouble constructs a [0,0] double array, MATLAB's canonical
// representation of "no value" (used for Null host values and for
// filling missing struct fields / ragged cell gaps).
func NewEmptyDouble() *MatVar {
	return NewNumeric("", Double, []int{0, 0}, []float64{})
}

// NewStruct constructs a struct node with the given field names and
// shape, pre-filling every field of every element with an empty double
// placeholder so SetStructField only ever replaces, never appends,
// so missing fields are represented by an EMPTY child, never a null.
func NewStruct(name string, fieldNames []string, dims []int) *MatVar {
	n := Prod(dims)
	children := make([]*MatVar, n*len(fieldNames))
	for i := range children {
		children[i] = NewEmptyDouble()
	}
	return &MatVar{
		Name:     name,
		Class:    Struct,
		DataType: DKStructMarker,
		dims:     append([]int(nil), dims...),
		Struct:   &StructPayload{FieldNames: append([]string(nil), fieldNames...), Children: children},
	}
}

// NewCell constructs a cell node with the given shape, pre-filling every
// slot with an empty double placeholder.
func NewCell(name string, dims []int) *MatVar {
	n := Prod(dims)
	cells := make([]*MatVar, n)
	for i := range cells {
		cells[i] = NewEmptyDouble()
	}
	return &MatVar{
		Name:     name,
		Class:    Cell,
		DataType: DKCellMarker,
		dims:     append([]int(nil), dims...),
		Cell:     cells,
	}
}

// NewSparse constructs a sparse node. data and (for complex) imag must
// have length ndata; ir has length ndata; jc has length ncols+1.
func NewSparse(name string, nrows, ncols, nzmax int, ir, jc []int32, data interface{}) *MatVar {
	return &MatVar{
		Name:     name,
		Class:    Sparse,
		DataType: DKDouble,
		dims:     []int{nrows, ncols},
		Sparse: &SparsePayload{
			NZMax: nzmax,
			IR:    ir,
			JC:    jc,
			Data:  data,
		},
	}
}

// SetStructField installs child at (fieldIndex, elemIndex), taking
// ownership. A second call on the same slot replaces the prior
// occupant; the caller is not responsible for "freeing" it (Go's
// collector reclaims it once unreferenced).
func (v *MatVar) SetStructField(fieldIndex, elemIndex int, child *MatVar) error {
	if v.Class != Struct || v.Struct == nil {
		return fmt.Errorf("%w: SetStructField on non-struct node %q", ErrInvalidMAT, v.Name)
	}
	nfields := len(v.Struct.FieldNames)
	if fieldIndex < 0 || fieldIndex >= nfields {
		return fmt.Errorf("%w: field index %d out of range [0,%d)", ErrOutOfRange, fieldIndex, nfields)
	}
	n := Prod(v.dims)
	if elemIndex < 0 || elemIndex >= n {
		return fmt.Errorf("%w: element index %d out of range [0,%d)", ErrOutOfRange, elemIndex, n)
	}
	v.Struct.Children[elemIndex*nfields+fieldIndex] = child
	return nil
}

// GetStructField retrieves the child at (fieldIndex, elemIndex).
func (v *MatVar) GetStructField(fieldIndex, elemIndex int) (*MatVar, error) {
	if v.Class != Struct || v.Struct == nil {
		return nil, fmt.Errorf("%w: GetStructField on non-struct node %q", ErrInvalidMAT, v.Name)
	}
	nfields := len(v.Struct.FieldNames)
	if fieldIndex < 0 || fieldIndex >= nfields {
		return nil, fmt.Errorf("%w: field index %d out of range [0,%d)", ErrOutOfRange, fieldIndex, nfields)
	}
	n := Prod(v.dims)
	if elemIndex < 0 || elemIndex >= n {
		return nil, fmt.Errorf("%w: element index %d out of range [0,%d)", ErrOutOfRange, elemIndex, n)
	}
	return v.Struct.Children[elemIndex*nfields+fieldIndex], nil
}

// SetCell installs child at the given column-major linear index, taking
// ownership; a second call on the same slot replaces the prior
// occupant.
func (v *MatVar) SetCell(linearIndex int, child *MatVar) error {
	if v.Class != Cell {
		return fmt.Errorf("%w: SetCell on non-cell node %q", ErrInvalidMAT, v.Name)
	}
	if linearIndex < 0 || linearIndex >= len(v.Cell) {
		return fmt.Errorf("%w: cell index %d out of range [0,%d)", ErrOutOfRange, linearIndex, len(v.Cell))
	}
	v.Cell[linearIndex] = child
	return nil
}
