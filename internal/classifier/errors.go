package classifier

import (
	"errors"

	"intent-router/internal/disambiguation"
)

var (
	ErrIntentNotFound = errors.New("intent not found")
	ErrEmptyUtterance = errors.New("utterance is required")

	// ErrInvalidSelection is returned when a disambiguation choice is outside
	// the offered option range.
	ErrInvalidSelection = disambiguation.ErrInvalidSelection
)
