package vectorindex

import "errors"

var (
	ErrLengthMismatch    = errors.New("vectors and entries differ in length")
	ErrDimensionMismatch = errors.New("vector dimension differs from index dimension")
)
