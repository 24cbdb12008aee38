package types

import "errors"

// Error taxonomy shared by the v4/v5 codecs, the sparse codec and the
// host-value bridge. Codec code wraps these with
// fmt.Errorf("...: %w", ErrXxx) so callers can still errors.Is against
// the sentinel while getting a location-specific message.
var (
	// ErrIoError wraps an underlying stream read/write/seek failure.
	ErrIoError = errors.New("matcore: i/o error")
	// ErrInvalidMAT covers a malformed header, bad MOPT, unknown class or
	// data type, rank < 1, or dimension overflow.
	ErrInvalidMAT = errors.New("matcore: invalid MAT data")
	// ErrUnsupportedVersion covers MAT v7.3 or an unrecognized version word.
	ErrUnsupportedVersion = errors.New("matcore: unsupported MAT-file version")
	// ErrUnsupportedClass covers MAT_C_OBJECT, which the v5 reader rejects
	// as fatal. Function and opaque class bytes are not recognized by the
	// v5 reader and fail with ErrInvalidMAT; there is no non-fatal warning
	// path.
	ErrUnsupportedClass = errors.New("matcore: unsupported class")
	// ErrOutOfRange covers slab indices exceeding dims.
	ErrOutOfRange = errors.New("matcore: index out of range")
	// ErrShapeMismatch covers host-value bridge shapes the bridge cannot
	// coerce (ragged struct fields, mixed-length fields, unnamed+named
	// mixed lists).
	ErrShapeMismatch = errors.New("matcore: shape mismatch")
	// ErrAllocFailure covers allocator/size-limit refusals.
	ErrAllocFailure = errors.New("matcore: allocation refused")
	// ErrCompressionError covers deflate/inflate failures.
	ErrCompressionError = errors.New("matcore: compression error")
)
