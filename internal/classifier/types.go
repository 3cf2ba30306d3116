package classifier

import (
	"time"

	"intent-router/internal/model"
)

// --- UseCase Inputs ---

type ClassifyInput struct {
	Utterance    string
	SessionID    string // empty maps to DefaultSessionID
	ContextAware bool
}

type ResolveInput struct {
	SessionID         string
	Selected          int // 1-based option number
	OriginalUtterance string
}

// --- UseCase Outputs ---

// ContextTrace records what the context boost stage did.
type ContextTrace struct {
	Applied            bool
	Boosted            bool
	OriginalIntent     string
	OriginalConfidence float64
	Match              string
}

// SubIntent is the base classification of one segment of a compound utterance.
type SubIntent struct {
	Segment    string
	Intent     string
	Confidence float64
	Agent      string
	Priority   int
}

// Result is the full outcome of one classify call.
type Result struct {
	SessionID string

	Intent        string
	IntentID      string
	Agent         string
	Category      string
	Priority      int
	Confidence    float64
	TopMatchScore float64

	Context ContextTrace

	Slots               model.SlotMap
	MergedSlots         model.SlotMap
	MissingSlots        []model.MissingSlot
	SlotFillingComplete bool

	MultiIntents    []SubIntent // nil when the utterance is not compound
	HasMultiIntents bool

	NeedsDisambiguation bool
	Disambiguation      model.DisambiguationOffer
	Candidates          []model.Candidate

	ProcessingTime time.Duration
}

type MultiIntentReport struct {
	Utterance                string
	HasMultiple              bool
	Intents                  []SubIntent
	SuggestedOrder           []string
	CombinedResponsePossible bool
	UniqueAgents             []string
}

type SlotReport struct {
	Intent   string
	Slots    model.SlotMap
	Required []model.MissingSlot
	Missing  []model.MissingSlot
}

type DisambiguationReport struct {
	Offer          model.DisambiguationOffer
	Candidates     []model.Candidate
	Recommendation string
}

type Resolution struct {
	SessionID  string
	Intent     string
	IntentID   string
	Agent      string
	Category   string
	Confidence float64
}

type IntentList struct {
	Intents    []model.Intent
	Categories []string
	ByCategory map[string][]model.Intent
}

// SlotSpec describes one slot an intent collects.
type SlotSpec struct {
	Name   string
	Type   model.SlotType
	Prompt string
}

type IntentDetail struct {
	Intent      model.Intent
	Description string
	Slots       []SlotSpec
}

type SessionContext struct {
	SessionID     string
	History       []model.SessionTurn
	RecentIntents []string
	SlotMemory    model.SlotMap
	Pending       []string
	Summary       string
}

type PendingIntent struct {
	Intent    string
	Remaining int
}

type Health struct {
	Status      string
	IntentCount int
	VectorCount int
	Dimension   int
	Embedder    string
	Sessions    int
	Features    []string
}
