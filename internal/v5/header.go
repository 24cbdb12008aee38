// Package v5 implements the MAT-file v5 codec: the 128-byte
// file header, the miMATRIX/miCOMPRESSED element framing, and the
// recursive read/write of the full types.MatVar tree (numeric, complex,
// logical, cell, struct, sparse).
package v5

import (
	"fmt"
	"strings"

	"github.com/scigolib/matcore/internal/stream"
)

const headerSize = 128

// Header is the 128-byte MAT-file v5 preamble.
type Header struct {
	Description string
	Version     uint16
	Endian      [2]byte
}

// ReadHeader reads and validates the 128-byte header, detecting byte order
// from the endian indicator at offset 126 (the "MI"/"IM" check).
// On success r is positioned past the header and its Order is set to the
// detected byte order.
func ReadHeader(r *stream.Reader) (*Header, error) {
	buf := make([]byte, headerSize)
	if err := r.ReadExact(buf); err != nil {
		return nil, fmt.Errorf("%w: reading v5 header: %v", errIO(), err)
	}

	var endian [2]byte
	copy(endian[:], buf[126:128])
	order, ok := stream.DetectV5Endian(endian)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized endian indicator %q", errInvalid(), string(endian[:]))
	}
	r.Order = order

	return &Header{
		Description: strings.TrimRight(string(buf[:116]), "\x00 "),
		Version:     order.Uint16(buf[124:126]),
		Endian:      endian,
	}, nil
}

// WriteHeader writes the 128-byte header, padding the description with
// spaces and filling bytes 116-124 with zero, matching the layout matio
// and MATLAB itself both produce.
func WriteHeader(w *stream.Writer, description string) error {
	buf := make([]byte, headerSize)
	for i := range buf[:116] {
		buf[i] = ' '
	}
	copy(buf[:116], description)
	w.Order.PutUint16(buf[124:126], 0x0100)
	if w.Order == orderLittle {
		copy(buf[126:128], []byte("MI"))
	} else {
		copy(buf[126:128], []byte("IM"))
	}
	return w.WriteAll(buf)
}
