package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedMethod = errors.New("unsupported extraction method")
	ErrOutOfRange        = errors.New("index out of range")
	ErrArtifactExists    = errors.New("artifact already written")
)
