package model

// Intent is one entry of the intent catalog. Immutable after load.
type Intent struct {
	ID              string   `json:"intent_id"       yaml:"intent_id"`
	Name            string   `json:"intent_name"     yaml:"intent_name"`
	Category        string   `json:"category"        yaml:"category"`
	Agent           string   `json:"agent_routing"   yaml:"agent_routing"`
	Priority        int      `json:"priority"        yaml:"priority"` // Lower = more urgent
	TrainingPhrases []string `json:"-"               yaml:"training_utterances"`
	Keywords        []string `json:"keywords,omitempty" yaml:"keywords"`
}

// VectorEntry is one indexed training phrase.
type VectorEntry struct {
	IntentID     string
	IntentName   string
	Category     string
	Agent        string
	Priority     int
	SourcePhrase string
}

// Candidate is a per-query intent ranking entry.
type Candidate struct {
	Intent   string  `json:"intent"`
	IntentID string  `json:"intent_id"`
	Agent    string  `json:"agent"`
	Category string  `json:"category"`
	Score    float64 `json:"score"` // Averaged cosine similarity, rounded to 3 decimals
}
