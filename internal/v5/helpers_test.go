package v5

import "encoding/binary"

func littleEndianForTest() binary.ByteOrder { return binary.LittleEndian }
