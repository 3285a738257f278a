package fmi2

import "github.com/fmiwrap/fmiwrap-go/internal/native"

// Errors returned by the wrapper. Compare with errors.Is.
var (
	ErrLoad        = native.ErrLoad
	ErrUnsupported = native.ErrUnsupported
	ErrInstantiate = native.ErrInstantiate
	ErrMarshal     = native.ErrMarshal
	ErrClosed      = native.ErrClosed
	ErrNotBuilt    = native.ErrNotBuilt
)
