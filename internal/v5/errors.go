package v5

import "github.com/scigolib/matcore/types"

// Thin accessors so error-producing call sites read as errIO()/errInvalid()
// rather than repeating the types.ErrXxx import qualifier everywhere.
func errIO() error      { return types.ErrIoError }
func errInvalid() error { return types.ErrInvalidMAT }

var allocErr = types.ErrAllocFailure
var compressionErr = types.ErrCompressionError
