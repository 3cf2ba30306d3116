package http

import (
	"fmt"

	"intent-router/internal/classifier"
	"intent-router/internal/model"
	"intent-router/pkg/response"
)

// --- Request DTOs ---

type classifyReq struct {
	UserInput      string `json:"user_input"`
	ConversationID string `json:"conversation_id"`
	MemberID       string `json:"member_id"`
	ContextAware   *bool  `json:"context_aware"`
}

func (r classifyReq) validate() error {
	if r.UserInput == "" {
		return errEmptyUtterance
	}
	return nil
}

// sessionID prefers the conversation, then the member, then a fresh id.
func (r classifyReq) sessionID(newID func() string) string {
	switch {
	case r.ConversationID != "":
		return r.ConversationID
	case r.MemberID != "":
		return fmt.Sprintf("api-%s", r.MemberID)
	default:
		return newID()
	}
}

func (r classifyReq) toInput(sessionID string, contextAwareDefault bool) classifier.ClassifyInput {
	contextAware := contextAwareDefault
	if r.ContextAware != nil {
		contextAware = *r.ContextAware
	}
	return classifier.ClassifyInput{
		Utterance:    r.UserInput,
		SessionID:    sessionID,
		ContextAware: contextAware,
	}
}

// ---

type utteranceReq struct {
	UserInput string `json:"user_input"`
	TopK      int    `json:"top_k"`
	Intent    string `json:"intent"`
}

const defaultTopK = 3

func (r utteranceReq) validate() error {
	if r.UserInput == "" {
		return errEmptyUtterance
	}
	return nil
}

func (r utteranceReq) topK() int {
	if r.TopK <= 0 {
		return defaultTopK
	}
	return r.TopK
}

// ---

type resolveReq struct {
	ConversationID    string `json:"conversation_id"`
	SelectedOption    int    `json:"selected_option"`
	OriginalUtterance string `json:"original_utterance"`
}

func (r resolveReq) validate() error {
	if r.OriginalUtterance == "" {
		return errEmptyUtterance
	}
	return nil
}

func (r resolveReq) toInput() classifier.ResolveInput {
	return classifier.ResolveInput{
		SessionID:         r.ConversationID,
		Selected:          r.SelectedOption,
		OriginalUtterance: r.OriginalUtterance,
	}
}

// --- Response DTOs ---

type contextResp struct {
	Applied            bool    `json:"context_applied"`
	Boosted            bool    `json:"context_boosted"`
	OriginalIntent     string  `json:"original_intent,omitempty"`
	OriginalConfidence float64 `json:"original_confidence,omitempty"`
	Match              string  `json:"context_match,omitempty"`
}

type subIntentResp struct {
	Segment    string  `json:"segment"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Agent      string  `json:"agent"`
	Priority   int     `json:"priority"`
}

func newSubIntentResps(subs []classifier.SubIntent) []subIntentResp {
	out := make([]subIntentResp, len(subs))
	for i, s := range subs {
		out[i] = subIntentResp{
			Segment:    s.Segment,
			Intent:     s.Intent,
			Confidence: s.Confidence,
			Agent:      s.Agent,
			Priority:   s.Priority,
		}
	}
	return out
}

type classifyResp struct {
	ConversationID string  `json:"conversation_id"`
	Intent         string  `json:"intent"`
	IntentID       string  `json:"intent_id"`
	Agent          string  `json:"agent"`
	Category       string  `json:"category"`
	Priority       int     `json:"priority"`
	Confidence     float64 `json:"confidence"`
	TopMatchScore  float64 `json:"top_match_score"`

	Context contextResp `json:"context"`

	Slots               model.SlotMap       `json:"slots"`
	MergedSlots         model.SlotMap       `json:"merged_slots"`
	MissingSlots        []model.MissingSlot `json:"missing_slots"`
	SlotFillingComplete bool                `json:"slot_filling_complete"`

	MultiIntents    []subIntentResp `json:"multi_intents"`
	HasMultiIntents bool            `json:"has_multi_intents"`

	NeedsClarification bool                      `json:"needs_clarification"`
	Disambiguation     model.DisambiguationOffer `json:"disambiguation"`
	Candidates         []model.Candidate         `json:"candidates"`

	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

func (h *handler) newClassifyResp(r classifier.Result) classifyResp {
	return classifyResp{
		ConversationID: r.SessionID,
		Intent:         r.Intent,
		IntentID:       r.IntentID,
		Agent:          r.Agent,
		Category:       r.Category,
		Priority:       r.Priority,
		Confidence:     r.Confidence,
		TopMatchScore:  r.TopMatchScore,
		Context: contextResp{
			Applied:            r.Context.Applied,
			Boosted:            r.Context.Boosted,
			OriginalIntent:     r.Context.OriginalIntent,
			OriginalConfidence: r.Context.OriginalConfidence,
			Match:              r.Context.Match,
		},
		Slots:               r.Slots,
		MergedSlots:         r.MergedSlots,
		MissingSlots:        r.MissingSlots,
		SlotFillingComplete: r.SlotFillingComplete,
		MultiIntents:        newSubIntentResps(r.MultiIntents),
		HasMultiIntents:     r.HasMultiIntents,
		NeedsClarification:  r.NeedsDisambiguation,
		Disambiguation:      r.Disambiguation,
		Candidates:          r.Candidates,
		ProcessingTimeMS:    float64(r.ProcessingTime.Microseconds()) / 1000,
	}
}

type candidatesResp struct {
	UserInput  string            `json:"user_input"`
	Candidates []model.Candidate `json:"candidates"`
}

type multiIntentResp struct {
	UserInput                string          `json:"user_input"`
	HasMultipleIntents       bool            `json:"has_multiple_intents"`
	Intents                  []subIntentResp `json:"intents"`
	SuggestedOrder           []string        `json:"suggested_order"`
	CombinedResponsePossible bool            `json:"combined_response_possible"`
	UniqueAgents             []string        `json:"unique_agents"`
}

func (h *handler) newMultiIntentResp(r classifier.MultiIntentReport) multiIntentResp {
	return multiIntentResp{
		UserInput:                r.Utterance,
		HasMultipleIntents:       r.HasMultiple,
		Intents:                  newSubIntentResps(r.Intents),
		SuggestedOrder:           r.SuggestedOrder,
		CombinedResponsePossible: r.CombinedResponsePossible,
		UniqueAgents:             r.UniqueAgents,
	}
}

type slotsResp struct {
	Intent        string              `json:"intent"`
	Slots         model.SlotMap       `json:"extracted_slots"`
	RequiredSlots []model.MissingSlot `json:"required_slots"`
	MissingSlots  []model.MissingSlot `json:"missing_slots"`
}

func (h *handler) newSlotsResp(r classifier.SlotReport) slotsResp {
	return slotsResp{
		Intent:        r.Intent,
		Slots:         r.Slots,
		RequiredSlots: r.Required,
		MissingSlots:  r.Missing,
	}
}

type disambiguationResp struct {
	model.DisambiguationOffer
	Candidates     []model.Candidate `json:"candidates"`
	Recommendation string            `json:"recommendation"`
}

type resolutionResp struct {
	ConversationID string  `json:"conversation_id"`
	Intent         string  `json:"intent"`
	IntentID       string  `json:"intent_id"`
	Agent          string  `json:"agent"`
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	Resolved       bool    `json:"disambiguation_resolved"`
}

func (h *handler) newResolutionResp(r classifier.Resolution) resolutionResp {
	return resolutionResp{
		ConversationID: r.SessionID,
		Intent:         r.Intent,
		IntentID:       r.IntentID,
		Agent:          r.Agent,
		Category:       r.Category,
		Confidence:     r.Confidence,
		Resolved:       true,
	}
}

type intentsResp struct {
	Intents    []model.Intent            `json:"intents"`
	Count      int                       `json:"count"`
	Categories []string                  `json:"categories"`
	ByCategory map[string][]model.Intent `json:"by_category"`
}

func (h *handler) newIntentsResp(r classifier.IntentList) intentsResp {
	return intentsResp{
		Intents:    r.Intents,
		Count:      len(r.Intents),
		Categories: r.Categories,
		ByCategory: r.ByCategory,
	}
}

type slotSpecResp struct {
	Name   string         `json:"name"`
	Type   model.SlotType `json:"type"`
	Prompt string         `json:"prompt"`
}

type intentDetailResp struct {
	model.Intent
	Description string         `json:"description"`
	Slots       []slotSpecResp `json:"slots"`
}

func (h *handler) newIntentDetailResp(r classifier.IntentDetail) intentDetailResp {
	slots := make([]slotSpecResp, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = slotSpecResp{Name: s.Name, Type: s.Type, Prompt: s.Prompt}
	}
	return intentDetailResp{
		Intent:      r.Intent,
		Description: r.Description,
		Slots:       slots,
	}
}

type turnResp struct {
	Utterance  string            `json:"user_input"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Timestamp  response.DateTime `json:"timestamp"`
	Slots      model.SlotMap     `json:"slots,omitempty"`
	SubIntents []string          `json:"multi_intents,omitempty"`
	Resolved   bool              `json:"disambiguation_resolved,omitempty"`
}

type sessionResp struct {
	ConversationID string        `json:"conversation_id"`
	History        []turnResp    `json:"history"`
	RecentIntents  []string      `json:"recent_intents"`
	SlotMemory     model.SlotMap `json:"slot_memory"`
	PendingIntents []string      `json:"pending_intents"`
	Summary        string        `json:"context_summary"`
}

func (h *handler) newSessionResp(r classifier.SessionContext) sessionResp {
	history := make([]turnResp, len(r.History))
	for i, t := range r.History {
		history[i] = turnResp{
			Utterance:  t.Utterance,
			Intent:     t.Intent,
			Confidence: t.Confidence,
			Timestamp:  response.DateTime(t.Timestamp),
			Slots:      t.Slots,
			SubIntents: t.SubIntents,
			Resolved:   t.Resolved,
		}
	}
	return sessionResp{
		ConversationID: r.SessionID,
		History:        history,
		RecentIntents:  r.RecentIntents,
		SlotMemory:     r.SlotMemory,
		PendingIntents: r.Pending,
		Summary:        r.Summary,
	}
}

type pendingResp struct {
	HasPending     bool   `json:"has_pending"`
	Intent         string `json:"intent,omitempty"`
	RemainingCount int    `json:"remaining_count"`
}
