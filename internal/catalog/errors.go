package catalog

import "errors"

var (
	ErrEmptyCatalog      = errors.New("catalog has no intents")
	ErrDuplicateID       = errors.New("duplicate intent id")
	ErrDuplicateName     = errors.New("duplicate intent name")
	ErrMissingField      = errors.New("intent is missing a required field")
	ErrNoTrainingPhrases = errors.New("intent has no training phrases")
)
