// Package stream provides the byte stream and endian layer used by the
// v5 codec and the session layer: a seekable reader/writer plus
// byte-order-aware primitive reads and writes. The v4 codec does not use
// it.
package stream

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrNotSeekable is returned by Tell/Seek when the underlying stream does
// not support seeking.
var ErrNotSeekable = errors.New("matcore: stream is not seekable")

// Reader wraps an io.Reader with byte-order-aware primitive reads and
// optional seek/tell support.
//
// A Reader carries a single binary.ByteOrder for its lifetime; detecting
// that order from the v5 endian indicator is the caller's job, done once
// up front, as v5.ReadHeader does when it sets the Reader's Order field.
type Reader struct {
	r     io.Reader
	rs    io.ReadSeeker
	Order binary.ByteOrder
	pos   int64
}

// NewReader wraps r. If r also implements io.Seeker, Seek/Tell work;
// otherwise they return ErrNotSeekable.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	rs, _ := r.(io.ReadSeeker)
	return &Reader{r: r, rs: rs, Order: order}
}

// ReadExact reads exactly len(buf) bytes, advancing the position.
func (s *Reader) ReadExact(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return err
	}
	s.pos += int64(len(buf))
	return nil
}

// Skip discards n bytes.
func (s *Reader) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, s.r, n); err != nil {
		return err
	}
	s.pos += n
	return nil
}

// Tell returns the current logical position.
func (s *Reader) Tell() int64 { return s.pos }

// Seek repositions the stream to an absolute offset.
func (s *Reader) Seek(abs int64) error {
	if s.rs == nil {
		return ErrNotSeekable
	}
	n, err := s.rs.Seek(abs, io.SeekStart)
	if err != nil {
		return err
	}
	s.pos = n
	return nil
}

func (s *Reader) ReadUint16() (uint16, error) {
	var b [2]byte
	if err := s.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return s.Order.Uint16(b[:]), nil
}

func (s *Reader) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := s.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return s.Order.Uint32(b[:]), nil
}

func (s *Reader) ReadUint64() (uint64, error) {
	var b [8]byte
	if err := s.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return s.Order.Uint64(b[:]), nil
}

func (s *Reader) ReadFloat32() (float32, error) {
	bits, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (s *Reader) ReadFloat64() (float64, error) {
	bits, err := s.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// Writer wraps an io.Writer with byte-order-aware primitive writes and
// optional seek/tell support. The v5 writer does not seek: it deflates a
// miCOMPRESSED element in memory and writes its tag with the final size.
type Writer struct {
	w     io.Writer
	ws    io.WriteSeeker
	Order binary.ByteOrder
	pos   int64
}

// NewWriter wraps w. If w also implements io.WriteSeeker, Seek/Tell work.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	ws, _ := w.(io.WriteSeeker)
	return &Writer{w: w, ws: ws, Order: order}
}

// WriteAll writes every byte of buf.
func (s *Writer) WriteAll(buf []byte) error {
	n, err := s.w.Write(buf)
	s.pos += int64(n)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}

// Tell returns the current logical position.
func (s *Writer) Tell() int64 { return s.pos }

// Seek repositions the stream to an absolute offset.
func (s *Writer) Seek(abs int64) error {
	if s.ws == nil {
		return ErrNotSeekable
	}
	n, err := s.ws.Seek(abs, io.SeekStart)
	if err != nil {
		return err
	}
	s.pos = n
	return nil
}

func (s *Writer) WriteUint16(v uint16) error {
	var b [2]byte
	s.Order.PutUint16(b[:], v)
	return s.WriteAll(b[:])
}

func (s *Writer) WriteUint32(v uint32) error {
	var b [4]byte
	s.Order.PutUint32(b[:], v)
	return s.WriteAll(b[:])
}

func (s *Writer) WriteUint64(v uint64) error {
	var b [8]byte
	s.Order.PutUint64(b[:], v)
	return s.WriteAll(b[:])
}

func (s *Writer) WriteFloat32(v float32) error {
	return s.WriteUint32(math.Float32bits(v))
}

func (s *Writer) WriteFloat64(v float64) error {
	return s.WriteUint64(math.Float64bits(v))
}

// DetectV5Endian inspects the 2-byte v5 endian indicator and returns the
// byte order to use plus whether the indicator was recognized.
func DetectV5Endian(indicator [2]byte) (binary.ByteOrder, bool) {
	switch string(indicator[:]) {
	case "MI":
		return binary.LittleEndian, true
	case "IM":
		return binary.BigEndian, true
	default:
		return nil, false
	}
}
