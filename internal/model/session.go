package model

import "time"

// SessionTurn is one classified utterance in a session.
type SessionTurn struct {
	Utterance  string    `json:"utterance"`
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	Slots      SlotMap   `json:"slots"`
	SubIntents []string  `json:"multi_intents"`
	Resolved   bool      `json:"disambiguation_resolved,omitempty"`
}
