package usecase

import (
	"context"
	"time"

	"intent-router/internal/classifier"
	"intent-router/internal/disambiguation"
	"intent-router/internal/metrics"
	"intent-router/internal/model"
	"intent-router/internal/session"
	"intent-router/internal/slot"
)

// Classify runs the full pipeline for one utterance. The session write is the
// last step; a call cancelled before it leaves the session untouched.
func (uc *implUseCase) Classify(ctx context.Context, input classifier.ClassifyInput) (classifier.Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return classifier.Result{}, err
	}

	sessionID := sessionOrDefault(input.SessionID, classifier.DefaultSessionID)
	utterance := input.Utterance

	// 1. Multi-intent detection
	var subs []classifier.SubIntent
	if uc.segmenter.HasMultiple(utterance) {
		if segments := uc.segmenter.Segment(utterance); len(segments) > 1 {
			var err error
			if subs, err = uc.classifySegments(ctx, segments); err != nil {
				return classifier.Result{}, err
			}
		}
	}

	// 2. Base classification
	base := uc.classifyBase(utterance)
	if base.Fallback {
		uc.l.Warnf(ctx, "%s: "+LogMsgFallback, LogPrefixClassify, FallbackAgent)
	}

	var result classifier.Result
	err := uc.sessions.Update(sessionID, func(tx *session.Tx) error {
		// 3. Context boost
		var trace classifier.ContextTrace
		if input.ContextAware {
			trace = uc.applyContextBoost(&base, utterance, tx.RecentIntents(ContextWindow))
			if trace.Boosted {
				uc.l.Debugf(ctx, "%s: "+LogMsgContextBoost, LogPrefixClassify,
					trace.OriginalIntent, trace.OriginalConfidence, base.Intent, base.Confidence)
			}
		}

		// 4. Slots against the final intent
		slots := uc.slots.Extract(utterance, base.Intent)
		merged := slot.Merge(tx.SlotMemory(), slots)
		missing := uc.slots.MissingRequired(base.Intent, merged)

		// 5. Disambiguation from a fresh candidate pull
		candidates := uc.candidates(utterance, DisambiguationK)
		offer := disambiguation.Offer(candidates, utterance)

		result = classifier.Result{
			SessionID:           sessionID,
			Intent:              base.Intent,
			IntentID:            base.IntentID,
			Agent:               base.Agent,
			Category:            base.Category,
			Priority:            base.Priority,
			Confidence:          base.Confidence,
			TopMatchScore:       base.TopMatch,
			Context:             trace,
			Slots:               slots,
			MergedSlots:         merged,
			MissingSlots:        missing,
			SlotFillingComplete: len(missing) == 0,
			MultiIntents:        subs,
			HasMultiIntents:     len(subs) > 1,
			NeedsDisambiguation: offer.Needed,
			Disambiguation:      offer,
			Candidates:          candidates,
		}

		// 6. Session update
		if err := ctx.Err(); err != nil {
			return err
		}
		tx.Append(model.SessionTurn{
			Utterance:  utterance,
			Intent:     result.Intent,
			Confidence: result.Confidence,
			Slots:      slots,
			SubIntents: subIntentNames(subs),
		})
		return nil
	})
	if err != nil {
		return classifier.Result{}, err
	}

	result.ProcessingTime = time.Since(start)

	uc.l.Debugf(ctx, "%s: "+LogMsgClassified, LogPrefixClassify,
		result.Intent, result.Confidence, result.Context.Boosted, len(subs), result.NeedsDisambiguation)
	uc.rec.RecordClassification(metrics.Classification{
		Intent:      result.Intent,
		Agent:       result.Agent,
		Latency:     result.ProcessingTime,
		Boosted:     result.Context.Boosted,
		Ambiguous:   result.NeedsDisambiguation,
		MultiIntent: result.HasMultiIntents,
	})
	uc.rec.SetActiveSessions(uc.sessions.Len())

	return result, nil
}

func subIntentNames(subs []classifier.SubIntent) []string {
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.Intent
	}
	return names
}
