package types

import "fmt"

// DataKind is the on-disk element type of a numeric buffer: how its bytes
// are actually laid out, independent of the semantic ClassKind the bytes
// are being interpreted as (a Double variable can be stored with an
// integer DataKind). The codecs do not convert elements on read: a decoded
// buffer keeps the stored element type, and the bridge widens it to
// float64 for the host.
type DataKind int

// MAT on-disk data type identifiers, numbered to match the miINT8..miUTF8
// wire constants used throughout internal/v5 and internal/v4.
const (
	DKInt8 DataKind = iota + 1
	DKUint8
	DKInt16
	DKUint16
	DKInt32
	DKUint32
	DKSingle
	dkReserved8
	DKDouble
	dkReserved10
	dkReserved11
	DKInt64
	DKUint64
	DKMatrix
	DKCompressed
	DKUTF8
	DKUTF16
	DKUTF32

	// Synthetic markers: never appear as a wire miXxx tag, only ever used
	// as a MatVar's "default data type" bookkeeping value for classes
	// whose payload isn't itself one flat numeric buffer.
	DKCellMarker
	DKStructMarker
	DKStringMarker
)

func (d DataKind) String() string {
	switch d {
	case DKInt8:
		return "int8"
	case DKUint8:
		return "uint8"
	case DKInt16:
		return "int16"
	case DKUint16:
		return "uint16"
	case DKInt32:
		return "int32"
	case DKUint32:
		return "uint32"
	case DKSingle:
		return "single"
	case DKDouble:
		return "double"
	case DKInt64:
		return "int64"
	case DKUint64:
		return "uint64"
	case DKMatrix:
		return "matrix"
	case DKCompressed:
		return "compressed"
	case DKUTF8:
		return "utf8"
	case DKUTF16:
		return "utf16"
	case DKUTF32:
		return "utf32"
	case DKCellMarker:
		return "cell"
	case DKStructMarker:
		return "struct"
	case DKStringMarker:
		return "string"
	default:
		return fmt.Sprintf("DataKind(%d)", int(d))
	}
}

// SizeOf returns the fixed element size in bytes for the on-disk numeric
// data types. It panics for the variable-length/synthetic kinds
// (Matrix, Compressed, the Cell/Struct/String markers) since those have
// no single element size — callers must not call SizeOf on them.
func SizeOf(d DataKind) int {
	switch d {
	case DKInt8, DKUint8, DKUTF8:
		return 1
	case DKInt16, DKUint16, DKUTF16:
		return 2
	case DKInt32, DKUint32, DKSingle, DKUTF32:
		return 4
	case DKInt64, DKUint64, DKDouble:
		return 8
	default:
		panic(fmt.Sprintf("types: SizeOf called on variable-length DataKind %v", d))
	}
}

// DefaultDataType returns the canonical on-disk DataKind for a ClassKind,
// the type a writer picks when the caller hasn't overridden it.
func DefaultDataType(c ClassKind) DataKind {
	switch c {
	case Double:
		return DKDouble
	case Single:
		return DKSingle
	case Int8:
		return DKInt8
	case Uint8:
		return DKUint8
	case Int16:
		return DKInt16
	case Uint16:
		return DKUint16
	case Int32:
		return DKInt32
	case Uint32:
		return DKUint32
	case Int64:
		return DKInt64
	case Uint64:
		return DKUint64
	case Char:
		return DKUTF16
	case Sparse:
		return DKDouble
	case Cell:
		return DKCellMarker
	case Struct:
		return DKStructMarker
	default:
		return DKDouble
	}
}

// Compatible reports whether data is an allowed on-disk representation
// for class (a numeric/char class only accepts its matching family of
// on-disk data types).
// Numeric classes accept any numeric DataKind (the codecs cast nothing:
// a read keeps the stored element type, and a write emits the buffer's own
// elements under the DataType tag); Char accepts any of the UTF kinds or
// UINT16; Sparse accepts DOUBLE or UINT8 (logical); Cell/Struct only
// accept their own marker.
func Compatible(class ClassKind, data DataKind) bool {
	switch class {
	case Char:
		switch data {
		case DKUTF8, DKUTF16, DKUTF32, DKUint16:
			return true
		}
		return false
	case Sparse:
		return data == DKDouble || data == DKUint8
	case Cell:
		return data == DKCellMarker
	case Struct:
		return data == DKStructMarker
	case Object, Function, Empty:
		return true
	default:
		if !class.IsNumeric() {
			return false
		}
		switch data {
		case DKInt8, DKUint8, DKInt16, DKUint16, DKInt32, DKUint32,
			DKSingle, DKDouble, DKInt64, DKUint64:
			return true
		}
		return false
	}
}
