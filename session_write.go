package matcore

import (
	"errors"
	"fmt"
	"os"

	"github.com/scigolib/matcore/internal/stream"
	"github.com/scigolib/matcore/internal/v4"
	"github.com/scigolib/matcore/internal/v5"
	"github.com/scigolib/matcore/types"
)

// Create opens filename for writing in the requested format.
//
// Supported options:
//   - WithEndianness(binary.ByteOrder) - byte order (default: LittleEndian)
//   - WithDescription(string) - v5 file description (max 116 bytes, ignored for v4)
//   - WithCompression(bool) - wrap every v5 variable in miCOMPRESSED
//
// Example:
//
//	sess, err := matcore.Create("output.mat", matcore.Version5,
//	    matcore.WithDescription("simulation results"))
func Create(filename string, version Version, opts ...Option) (*Session, error) {
	if filename == "" {
		return nil, errors.New("matcore: filename cannot be empty")
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	//nolint:gosec // G304: filename is provided by the caller for MAT-file creation, expected behavior
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("matcore: creating %s: %w", filename, err)
	}

	s := &Session{
		version:     version,
		endian:      cfg.endianness,
		description: cfg.description,
		compress:    cfg.compression,
		closer:      f,
	}

	switch version {
	case Version5:
		sw := stream.NewWriter(f, cfg.endianness)
		if err := v5.WriteHeader(sw, cfg.description); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("matcore: writing v5 header: %w", err)
		}
		s.v5w = sw
	case Version4:
		s.plainW = f
		s.description = ""
	default:
		_ = f.Close()
		return nil, fmt.Errorf("matcore: unsupported MAT-file version: %d", version)
	}

	return s, nil
}

// WriteVar appends one variable to a session opened with Create.
//
// Example:
//
//	sess.WriteVar(types.NewNumeric("A", types.Double, []int{2, 3}, data))
func (s *Session) WriteVar(mv *types.MatVar) error {
	if mv == nil {
		return errors.New("matcore: variable cannot be nil")
	}

	switch s.version {
	case Version5:
		if s.v5w == nil {
			return errors.New("matcore: session is not open for v5 writing")
		}
		return v5.Encode(s.v5w, mv, s.compress)
	case Version4:
		if s.plainW == nil {
			return errors.New("matcore: session is not open for v4 writing")
		}
		return v4.Encode(s.plainW, mv, s.endian)
	default:
		return fmt.Errorf("matcore: unsupported version: %d", s.version)
	}
}
