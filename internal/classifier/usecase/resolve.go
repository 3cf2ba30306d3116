package usecase

import (
	"context"
	"fmt"

	"intent-router/internal/classifier"
	"intent-router/internal/disambiguation"
	"intent-router/internal/model"
	"intent-router/internal/session"
)

func (uc *implUseCase) Disambiguate(ctx context.Context, utterance string) (classifier.DisambiguationReport, error) {
	if err := ctx.Err(); err != nil {
		return classifier.DisambiguationReport{}, err
	}

	candidates := uc.candidates(utterance, DisambiguationK)
	offer := disambiguation.Offer(candidates, utterance)

	report := classifier.DisambiguationReport{
		Offer:          offer,
		Candidates:     candidates,
		Recommendation: classifier.RecommendProceed,
	}
	if offer.Needed {
		report.Recommendation = classifier.RecommendClarify
	}
	return report, nil
}

// ResolveDisambiguation re-ranks the original utterance and records the chosen
// option as a resolved turn.
func (uc *implUseCase) ResolveDisambiguation(ctx context.Context, input classifier.ResolveInput) (classifier.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return classifier.Resolution{}, err
	}

	sessionID := sessionOrDefault(input.SessionID, classifier.DefaultSessionID)
	candidates := uc.candidates(input.OriginalUtterance, DisambiguationK)

	chosen, err := disambiguation.Resolve(candidates, input.Selected)
	if err != nil {
		uc.l.Warnf(ctx, "%s: "+LogMsgInvalidSelection, LogPrefixResolve, sessionID, err)
		return classifier.Resolution{}, fmt.Errorf("%s: %w", LogPrefixResolve, err)
	}

	err = uc.sessions.Update(sessionID, func(tx *session.Tx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tx.Append(model.SessionTurn{
			Utterance:  input.OriginalUtterance,
			Intent:     chosen.Intent,
			Confidence: chosen.Score,
			Resolved:   true,
		})
		return nil
	})
	if err != nil {
		return classifier.Resolution{}, err
	}

	uc.l.Infof(ctx, "%s: "+LogMsgResolved, LogPrefixResolve, sessionID, input.Selected, chosen.Intent)

	return classifier.Resolution{
		SessionID:  sessionID,
		Intent:     chosen.Intent,
		IntentID:   chosen.IntentID,
		Agent:      chosen.Agent,
		Category:   chosen.Category,
		Confidence: chosen.Score,
	}, nil
}
