package embedding

import "fmt"

// New returns the embedder for kind. An empty kind selects KindSeeded.
func New(kind string, dim int) (Embedder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	switch kind {
	case "", KindSeeded:
		return NewSeeded(dim), nil
	case KindLexical:
		return NewLexical(dim), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
