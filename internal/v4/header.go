// Package v4 implements the MAT-file v4 codec: the 20-byte
// per-variable MOPT header (with its byte-swap recovery) and the flat
// Double/Char/Sparse payload model v4 supports, grounded on matio's
// mat4.c.
package v4

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/matcore/types"
)

// mopt is the decoded MOPT integer 1000*M + 100*O + 10*P + T, where P is
// the data type digit and T the class digit.
type mopt struct {
	BigEndian bool
	DataType  int // 0 double, 1 single, 2 int32, 3 int16, 4 uint16, 5 uint8
	Class     int // 0 double, 1 char, 2 sparse
}

// decodeMOPT tries both byte orders on the raw 4 bytes until one falls in
// MOPT's range (0-4052) and decodes to M in {0,1}, O == 0 and a known
// data type and class digit, the
// same recovery mat4.c's Mat_VarReadNextInfo4 performs when a file's
// endianness doesn't match the reading host's.
func decodeMOPT(raw [4]byte) (mopt, binary.ByteOrder, error) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		tmp := int32(order.Uint32(raw[:]))
		if tmp < 0 || tmp > 4052 {
			continue
		}
		m := tmp / 1000
		tmp -= m * 1000
		o := tmp / 100
		tmp -= o * 100
		dataType := tmp / 10
		tmp -= dataType * 10
		class := tmp

		if o != 0 {
			continue
		}
		var bigEndian bool
		switch m {
		case 0:
			bigEndian = false
		case 1:
			bigEndian = true
		default:
			continue
		}
		mo := mopt{BigEndian: bigEndian, DataType: int(dataType), Class: int(class)}
		if _, err := mo.dataKind(); err != nil {
			continue
		}
		if _, err := mo.classKind(); err != nil {
			continue
		}
		return mo, byteOrderFor(bigEndian), nil
	}
	return mopt{}, nil, fmt.Errorf("%w: no byte order yields a valid v4 MOPT header", types.ErrInvalidMAT)
}

func byteOrderFor(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (m mopt) encode() int32 {
	var mBit int32
	if m.BigEndian {
		mBit = 1
	}
	return mBit*1000 + int32(m.DataType)*10 + int32(m.Class)
}

func (m mopt) dataKind() (types.DataKind, error) {
	switch m.DataType {
	case 0:
		return types.DKDouble, nil
	case 1:
		return types.DKSingle, nil
	case 2:
		return types.DKInt32, nil
	case 3:
		return types.DKInt16, nil
	case 4:
		return types.DKUint16, nil
	case 5:
		return types.DKUint8, nil
	default:
		return 0, fmt.Errorf("%w: v4 MOPT data type %d out of range [0,5]", types.ErrInvalidMAT, m.DataType)
	}
}

func (m mopt) classKind() (types.ClassKind, error) {
	switch m.Class {
	case 0:
		return types.Double, nil
	case 1:
		return types.Char, nil
	case 2:
		return types.Sparse, nil
	default:
		return 0, fmt.Errorf("%w: v4 MOPT class %d out of range [0,2]", types.ErrInvalidMAT, m.Class)
	}
}

func dataKindToMOPTDigit(d types.DataKind) (int, error) {
	switch d {
	case types.DKDouble:
		return 0, nil
	case types.DKSingle:
		return 1, nil
	case types.DKInt32:
		return 2, nil
	case types.DKInt16:
		return 3, nil
	case types.DKUint16:
		return 4, nil
	case types.DKUint8:
		return 5, nil
	default:
		return 0, fmt.Errorf("%w: v4 has no MOPT digit for data kind %s", types.ErrInvalidMAT, d)
	}
}

func classToMOPTDigit(c types.ClassKind) (int, error) {
	switch c {
	case types.Double:
		return 0, nil
	case types.Char:
		return 1, nil
	case types.Sparse:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: v4 cannot represent class %s", types.ErrInvalidMAT, c)
	}
}
