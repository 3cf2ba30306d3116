package usecase

import (
	"slices"
	"strings"

	"intent-router/internal/classifier"
)

// applyContextBoost moves a low-confidence result toward an intent discussed
// in the last ContextWindow turns. The first candidate in rank order that
// appears in recent wins.
func (uc *implUseCase) applyContextBoost(b *baseResult, utterance string, recent []string) classifier.ContextTrace {
	if len(recent) == 0 {
		return classifier.ContextTrace{}
	}

	trace := classifier.ContextTrace{Applied: true}

	lower := strings.ToLower(utterance)
	hasCue := slices.ContainsFunc(continuationCues, func(cue string) bool {
		return strings.Contains(lower, cue)
	})
	isShort := len(strings.Fields(utterance)) <= ShortUtteranceWords

	if !(hasCue || isShort) || b.Confidence >= ContextMaxBaseConf {
		return trace
	}

	for _, c := range uc.candidates(utterance, ContextCandidateK) {
		if !slices.Contains(recent, c.Intent) {
			continue
		}

		boost := ShortBoost
		if hasCue {
			boost = CueBoost
		}

		trace.Boosted = true
		trace.OriginalIntent = b.Intent
		trace.OriginalConfidence = b.Confidence
		trace.Match = c.Intent

		b.Intent = c.Intent
		b.IntentID = c.IntentID
		b.Agent = c.Agent
		b.Category = c.Category
		if in, ok := uc.catalog.ByName(c.Intent); ok {
			b.Priority = in.Priority
		}
		b.Confidence = round3(min(BoostCap, b.Confidence+boost))
		b.Fallback = false
		return trace
	}

	return trace
}
