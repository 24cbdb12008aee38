// Package types provides the MAT-file variant model: the closed
// ClassKind/DataKind enumerations and the recursive MatVar node that
// carries them.
package types

// ClassKind is the semantic MATLAB class of a variable — what it *is*,
// independent of how its elements happen to be stored on disk.
type ClassKind int

// MATLAB class constants.
const (
	Double ClassKind = iota
	Single
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Char
	Sparse
	Cell
	Struct
	Object
	Function
	Empty
)

func (c ClassKind) String() string {
	return [...]string{
		"double", "single", "int8", "uint8", "int16", "uint16",
		"int32", "uint32", "int64", "uint64", "char", "sparse",
		"cell", "struct", "object", "function", "empty",
	}[c]
}

// IsNumeric reports whether c is one of the plain numeric classes
// (double through uint64). Char, Sparse, Cell, Struct, Object, Function
// and Empty are not numeric in this sense even though Sparse carries
// numeric payload.
func (c ClassKind) IsNumeric() bool {
	return c >= Double && c <= Uint64
}
