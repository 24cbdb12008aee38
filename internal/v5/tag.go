package v5

import (
	"fmt"

	"github.com/scigolib/matcore/internal/stream"
)

// maxTagSize guards against a corrupt or hostile tag claiming an
// unreasonable element size.
const maxTagSize = 1 << 31

// tag is an 8-byte element tag: either the regular (type, size) form or
// the compact form used when size<=4, which packs the 4 data bytes
// straight into the tag's second word.
type tag struct {
	Type    miType
	Size    uint32
	Compact bool
	Inline  [4]byte // valid only when Compact
}

func readTag(r *stream.Reader) (tag, error) {
	var buf [8]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return tag{}, fmt.Errorf("%w: reading element tag: %v", errIO(), err)
	}

	first := r.Order.Uint32(buf[0:4])
	if small := first >> 16; small > 0 && small <= 4 {
		var t tag
		t.Type = miType(first & 0xFFFF)
		t.Size = small
		t.Compact = true
		copy(t.Inline[:], buf[4:8])
		return t, nil
	}

	size := r.Order.Uint32(buf[4:8])
	if size > maxTagSize {
		return tag{}, fmt.Errorf("%w: element size %d exceeds limit", errAlloc(), size)
	}
	return tag{Type: miType(first), Size: size}, nil
}

func errAlloc() error { return allocErr }

func padded(n uint32) int64 {
	if n%8 == 0 {
		return int64(n)
	}
	return int64(n) + (8 - int64(n%8))
}

// readPayload reads a tag's payload, consuming trailing padding for the
// regular form (the compact form's "padding" is already folded into the
// tag itself).
func readPayload(r *stream.Reader, t tag) ([]byte, error) {
	if t.Compact {
		return t.Inline[:t.Size], nil
	}
	buf := make([]byte, t.Size)
	if err := r.ReadExact(buf); err != nil {
		return nil, fmt.Errorf("%w: reading element payload: %v", errIO(), err)
	}
	if pad := padded(t.Size) - int64(t.Size); pad > 0 {
		if err := r.Skip(pad); err != nil {
			return nil, fmt.Errorf("%w: skipping element padding: %v", errIO(), err)
		}
	}
	return buf, nil
}

// writeTag writes a tag plus its payload, choosing the compact form when
// the payload is 1 to 4 bytes, exactly as matio and MATLAB itself do
// for small numeric/name sub-elements. An empty payload gets a regular
// tag with size 0.
func writeTag(w *stream.Writer, mt miType, payload []byte) error {
	if len(payload) <= 4 && len(payload) > 0 {
		var buf [8]byte
		w.Order.PutUint32(buf[0:4], uint32(mt)|uint32(len(payload))<<16)
		copy(buf[4:8], payload)
		return w.WriteAll(buf[:])
	}

	var head [8]byte
	w.Order.PutUint32(head[0:4], uint32(mt))
	w.Order.PutUint32(head[4:8], uint32(len(payload)))
	if err := w.WriteAll(head[:]); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if err := w.WriteAll(payload); err != nil {
		return err
	}
	if pad := padded(uint32(len(payload))) - int64(len(payload)); pad > 0 {
		return w.WriteAll(make([]byte, pad))
	}
	return nil
}
