// Package matcore reads and writes MATLAB MAT-files (v4 and v5), exposing
// a version-independent Session over the recursive types.MatVar tree.
//
// v7.3 (HDF5-based) files are out of scope: callers needing that format
// should reach for a dedicated HDF5 library instead.
package matcore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/scigolib/matcore/internal/stream"
	"github.com/scigolib/matcore/internal/v4"
	"github.com/scigolib/matcore/internal/v5"
	"github.com/scigolib/matcore/types"
)

// Version identifies a MAT-file format generation.
type Version int

const (
	// Version4 is the MAT-file v4 format: no file header, one variable
	// after another, byte order carried per-variable in its MOPT word.
	Version4 Version = 4
	// Version5 is the MAT-file v5 (through v7.2) format: a 128-byte file
	// header followed by miMATRIX/miCOMPRESSED elements.
	Version5 Version = 5
)

// ErrNoMoreVariables is returned by ReadNext once every variable in the
// session has already been read.
var ErrNoMoreVariables = errors.New("matcore: no more variables")

// Slab describes a column-major hyperslab read: for each dimension, start
// the read at Start[i], take Edge[i] elements, stepping Stride[i] apart.
// Stride defaults to 1 when the slice is nil or an entry is 0.
type Slab struct {
	Start  []int
	Stride []int
	Edge   []int
}

// Session represents an open MAT-file, either positioned for sequential
// reading (Open) or accepting variables for writing (Create). A Session
// only ever operates in the mode it was opened in.
type Session struct {
	version     Version
	endian      binary.ByteOrder
	description string

	// read mode
	variables []*types.MatVar
	pos       int

	// write mode
	v5w      *stream.Writer
	plainW   io.Writer
	compress bool
	closer   io.Closer
}

const v5HeaderSize = 128

// Open reads every variable out of r up front (both v4 and v5 files are
// small enough, and slab reads operate on an already-decoded MatVar
// anyway) and returns a Session positioned at the
// first variable.
//
// The v4/v5 distinction is detected the way matio does: a 128-byte file
// header whose bytes 126-128 read "MI" or "IM" identifies v5; anything
// else is treated as a v4 stream, which has no file-level header at all.
func Open(r io.Reader) (*Session, error) {
	peek := make([]byte, v5HeaderSize)
	n, err := io.ReadFull(r, peek)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: reading MAT-file header: %v", types.ErrIoError, err)
	}
	full := io.MultiReader(bytes.NewReader(peek[:n]), r)

	if n == v5HeaderSize {
		var indicator [2]byte
		copy(indicator[:], peek[126:128])
		if order, ok := stream.DetectV5Endian(indicator); ok {
			sr := stream.NewReader(full, order)
			hdr, err := v5.ReadHeader(sr)
			if err != nil {
				return nil, err
			}
			vars, err := v5.Decode(sr)
			if err != nil {
				return nil, err
			}
			return &Session{version: Version5, endian: order, description: hdr.Description, variables: vars}, nil
		}
	}

	vars, err := v4.Decode(full)
	if err != nil {
		return nil, err
	}
	return &Session{version: Version4, endian: binary.LittleEndian, variables: vars}, nil
}

// ReadNext returns the next variable in file order, or ErrNoMoreVariables
// once the session is exhausted.
func (s *Session) ReadNext() (*types.MatVar, error) {
	if s.pos >= len(s.variables) {
		return nil, ErrNoMoreVariables
	}
	mv := s.variables[s.pos]
	s.pos++
	return mv, nil
}

// Rewind resets ReadNext back to the first variable.
func (s *Session) Rewind() {
	s.pos = 0
}

// ReadVarFull looks up a variable by name without disturbing the ReadNext
// cursor, mirroring rmatio's named-variable lookup.
func (s *Session) ReadVarFull(name string) (*types.MatVar, error) {
	for _, mv := range s.variables {
		if mv.Name == name {
			return mv, nil
		}
	}
	return nil, fmt.Errorf("%w: variable %q not found", types.ErrInvalidMAT, name)
}

// ReadData extracts a hyperslab of a numeric variable by name, honoring
// (start, stride, edge) the same way mat4.c's ReadData4/ReadDataSlabN do.
func (s *Session) ReadData(name string, slab Slab) (*types.MatVar, error) {
	mv, err := s.ReadVarFull(name)
	if err != nil {
		return nil, err
	}
	return v5.ReadSlab(mv, v5.Slab{Start: slab.Start, Stride: slab.Stride, Edge: slab.Edge})
}

// Variables lists the names of every variable currently held by the
// session, in file order.
func (s *Session) Variables() []string {
	names := make([]string, len(s.variables))
	for i, mv := range s.variables {
		names[i] = mv.Name
	}
	return names
}

// Description returns the v5 file description, or "" for v4 files (which
// carry no file-level description).
func (s *Session) Description() string { return s.description }

// FileVersion reports which MAT-file generation the session is reading or
// writing.
func (s *Session) FileVersion() Version { return s.version }

// Close releases any underlying file handle. It is safe to call multiple
// times; only the first call does any work.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
