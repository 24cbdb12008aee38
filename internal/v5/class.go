package v5

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/matcore/types"
)

var orderLittle = binary.ByteOrder(binary.LittleEndian)

// mxClass is the on-disk array-flags class byte, distinct
// from types.ClassKind's ordering.
type mxClass uint32

const (
	mxCell   mxClass = 1
	mxStruct mxClass = 2
	mxObject mxClass = 3
	mxChar   mxClass = 4
	mxSparse mxClass = 5
	mxDouble mxClass = 6
	mxSingle mxClass = 7
	mxInt8   mxClass = 8
	mxUint8  mxClass = 9
	mxInt16  mxClass = 10
	mxUint16 mxClass = 11
	mxInt32  mxClass = 12
	mxUint32 mxClass = 13
	mxInt64  mxClass = 14
	mxUint64 mxClass = 15
)

func classToKind(c mxClass) (types.ClassKind, error) {
	switch c {
	case mxDouble:
		return types.Double, nil
	case mxSingle:
		return types.Single, nil
	case mxInt8:
		return types.Int8, nil
	case mxUint8:
		return types.Uint8, nil
	case mxInt16:
		return types.Int16, nil
	case mxUint16:
		return types.Uint16, nil
	case mxInt32:
		return types.Int32, nil
	case mxUint32:
		return types.Uint32, nil
	case mxInt64:
		return types.Int64, nil
	case mxUint64:
		return types.Uint64, nil
	case mxChar:
		return types.Char, nil
	case mxSparse:
		return types.Sparse, nil
	case mxCell:
		return types.Cell, nil
	case mxStruct:
		return types.Struct, nil
	case mxObject:
		return types.Object, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized array class %d", errInvalid(), c)
	}
}

func kindToClass(k types.ClassKind) (mxClass, error) {
	switch k {
	case types.Double:
		return mxDouble, nil
	case types.Single:
		return mxSingle, nil
	case types.Int8:
		return mxInt8, nil
	case types.Uint8:
		return mxUint8, nil
	case types.Int16:
		return mxInt16, nil
	case types.Uint16:
		return mxUint16, nil
	case types.Int32:
		return mxInt32, nil
	case types.Uint32:
		return mxUint32, nil
	case types.Int64:
		return mxInt64, nil
	case types.Uint64:
		return mxUint64, nil
	case types.Char:
		return mxChar, nil
	case types.Sparse:
		return mxSparse, nil
	case types.Cell:
		return mxCell, nil
	case types.Struct:
		return mxStruct, nil
	default:
		return 0, fmt.Errorf("%w: class %s cannot be written in v5", errInvalid(), k)
	}
}

// miType is the on-disk data-type tag (the mi* table).
type miType uint32

const (
	miInt8       miType = 1
	miUint8      miType = 2
	miInt16      miType = 3
	miUint16     miType = 4
	miInt32      miType = 5
	miUint32     miType = 6
	miSingle     miType = 7
	miDouble     miType = 9
	miInt64      miType = 12
	miUint64     miType = 13
	miMatrix     miType = 14
	miCompressed miType = 15
	miUTF8       miType = 16
	miUTF16      miType = 17
	miUTF32      miType = 18
)

func dataKindToMI(d types.DataKind) (miType, error) {
	switch d {
	case types.DKInt8:
		return miInt8, nil
	case types.DKUint8:
		return miUint8, nil
	case types.DKInt16:
		return miInt16, nil
	case types.DKUint16:
		return miUint16, nil
	case types.DKInt32:
		return miInt32, nil
	case types.DKUint32:
		return miUint32, nil
	case types.DKSingle:
		return miSingle, nil
	case types.DKDouble:
		return miDouble, nil
	case types.DKInt64:
		return miInt64, nil
	case types.DKUint64:
		return miUint64, nil
	case types.DKUTF8:
		return miUTF8, nil
	case types.DKUTF16:
		return miUTF16, nil
	case types.DKUTF32:
		return miUTF32, nil
	default:
		return 0, fmt.Errorf("%w: data kind %s has no v5 wire type", errInvalid(), d)
	}
}

func miToDataKind(m miType) (types.DataKind, error) {
	switch m {
	case miInt8:
		return types.DKInt8, nil
	case miUint8:
		return types.DKUint8, nil
	case miInt16:
		return types.DKInt16, nil
	case miUint16:
		return types.DKUint16, nil
	case miInt32:
		return types.DKInt32, nil
	case miUint32:
		return types.DKUint32, nil
	case miSingle:
		return types.DKSingle, nil
	case miDouble:
		return types.DKDouble, nil
	case miInt64:
		return types.DKInt64, nil
	case miUint64:
		return types.DKUint64, nil
	case miUTF8:
		return types.DKUTF8, nil
	case miUTF16:
		return types.DKUTF16, nil
	case miUTF32:
		return types.DKUTF32, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized wire data type %d", errInvalid(), m)
	}
}

func miSize(m miType) int {
	switch m {
	case miInt8, miUint8, miUTF8:
		return 1
	case miInt16, miUint16, miUTF16:
		return 2
	case miInt32, miUint32, miSingle, miUTF32:
		return 4
	case miInt64, miUint64, miDouble:
		return 8
	default:
		return 0
	}
}
