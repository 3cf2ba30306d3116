package model

// Disambiguation reasons
const (
	ReasonSingleCandidate = "single_candidate"
	ReasonClearWinner     = "clear_winner"
	ReasonAmbiguous       = "ambiguous_intent"
)

// DisambiguationOption is one choice offered to the user.
type DisambiguationOption struct {
	Rank        int    `json:"option_number"`
	Intent      string `json:"intent"`
	Description string `json:"description"`
	Agent       string `json:"agent"`
}

// DisambiguationOffer is recomputed on every call.
type DisambiguationOffer struct {
	Needed            bool                   `json:"needed"`
	Reason            string                 `json:"reason"`
	Gap               float64                `json:"confidence_gap"`
	Prompt            string                 `json:"prompt,omitempty"`
	Options           []DisambiguationOption `json:"options,omitempty"`
	OriginalUtterance string                 `json:"original_utterance,omitempty"`
}
