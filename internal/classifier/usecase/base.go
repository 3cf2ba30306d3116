package usecase

import (
	"intent-router/internal/classifier"
	"intent-router/internal/model"
)

// baseResult is the single-utterance classification without session context.
type baseResult struct {
	Intent     string
	IntentID   string
	Agent      string
	Category   string
	Priority   int
	Confidence float64
	TopMatch   float64
	Fallback   bool
}

func fallbackResult() baseResult {
	return baseResult{
		Intent:     FallbackIntent,
		IntentID:   FallbackIntentID,
		Agent:      FallbackAgent,
		Category:   FallbackCategory,
		Priority:   FallbackPriority,
		Confidence: FallbackConfidence,
		Fallback:   true,
	}
}

// classifyBase votes over the top hits: summed score of the first VoteWindow
// hits per intent picks the winner (first seen wins ties), confidence is the
// mean score of the winner's hits among the first ConfidenceWindow.
func (uc *implUseCase) classifyBase(utterance string) baseResult {
	hits := uc.index.Search(uc.embedder.Embed(utterance), SearchK)
	if len(hits) == 0 {
		return fallbackResult()
	}

	var order []string
	votes := make(map[string]float64)
	for _, h := range hits[:min(VoteWindow, len(hits))] {
		name := h.Entry.IntentName
		if _, ok := votes[name]; !ok {
			order = append(order, name)
		}
		votes[name] += h.Score
	}

	best := order[0]
	for _, name := range order[1:] {
		if votes[name] > votes[best] {
			best = name
		}
	}

	var meta model.VectorEntry
	for _, h := range hits {
		if h.Entry.IntentName == best {
			meta = h.Entry
			break
		}
	}

	confidence := FallbackConfidence
	var sum float64
	var n int
	for _, h := range hits[:min(ConfidenceWindow, len(hits))] {
		if h.Entry.IntentName == best {
			sum += h.Score
			n++
		}
	}
	if n > 0 {
		confidence = sum / float64(n)
	}

	return baseResult{
		Intent:     best,
		IntentID:   meta.IntentID,
		Agent:      meta.Agent,
		Category:   meta.Category,
		Priority:   meta.Priority,
		Confidence: round3(clamp01(confidence)),
		TopMatch:   hits[0].Score,
	}
}

func (b baseResult) subIntent(segment string) classifier.SubIntent {
	return classifier.SubIntent{
		Segment:    segment,
		Intent:     b.Intent,
		Confidence: b.Confidence,
		Agent:      b.Agent,
		Priority:   b.Priority,
	}
}
