package disambiguation

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid disambiguation selection")
)
