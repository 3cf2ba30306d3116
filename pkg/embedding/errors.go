package embedding

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown embedder kind")
	ErrInvalidDimension = errors.New("embedding dimension must be positive")
)
